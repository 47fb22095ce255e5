package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-play/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action. Ctrl+C aborts the
// program outright instead of ending the session.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, abort bool) {
	switch msg.String() {
	case "ctrl+c":
		return core.ActionNone, true
	case "q":
		return core.ActionQuit, false
	case "k", "up":
		return core.ActionUp, false
	case "j", "down":
		return core.ActionDown, false
	case "h", "left":
		return core.ActionLeft, false
	case "l", "right":
		return core.ActionRight, false
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was an abort request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, abort := km.MapKey(msg)
	frame.Set(action)
	return abort
}

// isArrow reports whether msg is an arrow key. Arrows do not dismiss the
// final frame, so a steering key pressed as the game ends is not lost
// as a dismissal.
func isArrow(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyUp, tea.KeyDown, tea.KeyLeft, tea.KeyRight:
		return true
	}
	return false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "up", "k":
		return MenuActionUp
	case "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}
