package snake

import (
	"strconv"

	"github.com/vovakirdan/tui-play/internal/core"
)

var (
	headStyle = core.Style{Bold: true}
	bodyStyle = core.Style{Fg: core.ColorYellow}

	foodGlyphs = map[Freshness]struct {
		r  rune
		st core.Style
	}{
		Fresh:   {'&', core.Style{Fg: core.ColorGreen}},
		Ripe:    {'%', core.Style{Fg: core.ColorYellow}},
		Spoiled: {'*', core.Style{Fg: core.ColorRed}},
	}
)

// endMessages are shown beside the arena once the session is over.
var endMessages = map[string]string{
	ReasonSpoiled: "You ate spoiled food!",
	ReasonWall:    "You hit the wall!",
	ReasonSelf:    "You ate yourself!",
	ReasonQuit:    "You are satisfied.",
}

// Render draws the arena with its border, the food, the snake and the score.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.engine == nil {
		return
	}
	r := g.engine.Rules()

	dst.DrawHLine(0, r.Rows, r.Cols, '─')
	dst.DrawVLine(r.Cols, 0, r.Rows, '│')
	dst.Set(r.Cols, r.Rows, '┘')

	hudX := r.Cols + 2
	dst.DrawText(hudX, 0, strconv.FormatUint(uint64(g.engine.Score()), 10))
	if reason := g.engine.Reason(); reason != "" {
		dst.DrawText(hudX, 2, endMessages[reason])
		dst.DrawText(hudX, 3, "Press any key to")
		dst.DrawText(hudX, 4, "view the scoreboard.")
	}
	if dst.Width() <= r.Cols || dst.Height() <= r.Rows {
		dst.DrawText(0, 0, "Terminal too small for the arena")
	}

	for _, f := range g.engine.Food() {
		glyph := foodGlyphs[r.Freshness(f)]
		dst.SetStyled(f.Pos.X, f.Pos.Y, glyph.r, glyph.st)
	}

	body := g.engine.Body()
	for i, p := range body {
		ch := '#'
		if i == len(body)-1 {
			ch = '*'
		}
		dst.SetStyled(p.X, p.Y, ch, bodyStyle)
	}

	head := g.engine.Head()
	dst.SetStyled(head.X, head.Y, '@', headStyle)
}
