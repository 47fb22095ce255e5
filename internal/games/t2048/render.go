package t2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-play/internal/core"
)

const (
	tileWidth  = 7
	tileHeight = 3
	gridY      = 2
	gridX      = 2
	scoreY     = 0
	scoreX     = gridX + BoardSize*tileWidth - 10
)

// tilePalette cycles through six base and six bright backgrounds.
var tilePalette = [...]core.Color{
	core.ColorRed, core.ColorGreen, core.ColorYellow,
	core.ColorBlue, core.ColorMagenta, core.ColorCyan,
	core.ColorBrightRed, core.ColorBrightGreen, core.ColorBrightYellow,
	core.ColorBrightBlue, core.ColorBrightMagenta, core.ColorBrightCyan,
}

// TileStyle returns the style used for a tile of the given rank.
func TileStyle(rank uint8) core.Style {
	if rank == 0 {
		return core.Style{Fg: core.ColorWhite, Bg: core.ColorBlack}
	}
	return core.Style{
		Fg:   core.ColorWhite,
		Bg:   tilePalette[int(rank-1)%len(tilePalette)],
		Bold: true,
	}
}

// Render draws the score and the grid.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.engine == nil {
		return
	}

	dst.DrawText(scoreX, scoreY, fmt.Sprintf("%10d", g.engine.Score()))

	grid := g.engine.Grid()
	for y := range BoardSize {
		for x := range BoardSize {
			drawTile(dst, y, x, grid[y][x])
		}
	}

	hintY := gridY + BoardSize*tileHeight + 1
	if g.quit {
		dst.DrawText(gridX, hintY, "Press any key to view the scoreboard.")
	} else if !HasPossibleMove(grid) {
		dst.DrawText(gridX, hintY, "No moves left. Press q to finish.")
	}
}

// drawTile paints one tile as a block with its value centred on the middle row.
func drawTile(dst *core.Screen, y, x int, rank uint8) {
	st := TileStyle(rank)
	left := gridX + tileWidth*x
	top := gridY + tileHeight*y
	dst.DrawRect(core.NewRect(left, top, tileWidth, tileHeight), ' ', st)

	label := "."
	if rank != 0 {
		label = strconv.FormatUint(uint64(Value(rank)), 10)
	}
	pad := (tileWidth - len(label) + 1) / 2
	dst.DrawStyledText(left+pad, top+1, label, st)
}
