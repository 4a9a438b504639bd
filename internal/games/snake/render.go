package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Layout: a HUD line and a separator, then the bordered board. Each
// terminal row shows two grid rows using half-block glyphs.
const (
	hudHeight   = 2
	borderWidth = 1
)

const (
	colorBody = core.ColorGreen
	colorHead = core.ColorBrightGreen
	colorFood = core.ColorBrightRed

	colorHeading = core.ColorYellow
)

// ScreenSize returns the screen dimensions Render needs for a full board.
func (g *Game) ScreenSize() (int, int) {
	return g.gridW + 2*borderWidth, hudHeight + (g.gridH+1)/2 + 2*borderWidth
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.Snapshot()

	g.renderHUD(dst, snap)

	boardRows := (g.gridH + 1) / 2
	dst.DrawBox(core.NewRect(0, hudHeight, g.gridW+2*borderWidth, boardRows+2*borderWidth), core.ColorGray)
	g.renderBoard(dst, snap)

	if !snap.Running {
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Length: %d", snap.Len()), "Press R to restart")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen, snap Snapshot) {
	hud := fmt.Sprintf(" Snake - Length: %d  Tick: %d  ", snap.Len(), snap.Tick)
	dst.DrawText(0, 0, hud, core.ColorWhite)
	dst.DrawText(len([]rune(hud)), 0, "Heading: "+snap.Direction.String(), colorHeading)

	for x := 0; x < dst.Width(); x++ {
		dst.SetColored(x, 1, '─', core.ColorGray)
	}
}

// renderBoard paints food and snake into the bordered area.
func (g *Game) renderBoard(dst *core.Screen, snap Snapshot) {
	// One color per grid cell, painted in draw order: food, body, head.
	grid := make([]core.Color, g.gridW*g.gridH)
	paint := func(c core.Cell, color core.Color) {
		col, row := c.X/g.unit, c.Y/g.unit
		if !g.bounds.ContainsCell(c) {
			return
		}
		grid[row*g.gridW+col] = color
	}

	paint(snap.Food, colorFood)
	for i := len(snap.Cells) - 1; i > 0; i-- {
		paint(snap.Cells[i], colorBody)
	}
	paint(snap.Head(), colorHead)

	at := func(col, row int) core.Color {
		if row >= g.gridH {
			return core.ColorDefault
		}
		return grid[row*g.gridW+col]
	}

	originX, originY := borderWidth, hudHeight+borderWidth
	for row := 0; row < g.gridH; row += 2 {
		for col := 0; col < g.gridW; col++ {
			dst.SetGlyph(originX+col, originY+row/2, halfBlock(at(col, row), at(col, row+1)))
		}
	}
}

// halfBlock combines two vertically stacked cells into one glyph.
func halfBlock(top, bottom core.Color) core.Glyph {
	switch {
	case top == core.ColorDefault && bottom == core.ColorDefault:
		return core.Glyph{Rune: ' '}
	case top == bottom:
		return core.Glyph{Rune: '█', Fg: top}
	case top == core.ColorDefault:
		return core.Glyph{Rune: '▄', Fg: bottom}
	default:
		return core.Glyph{Rune: '▀', Fg: top, Bg: bottom}
	}
}

// renderOverlay draws a centered box with one line of text per argument.
func (g *Game) renderOverlay(dst *core.Screen, lines ...string) {
	maxLen := 0
	for _, l := range lines {
		maxLen = max(maxLen, len([]rune(l)))
	}
	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := core.Clamp((dst.Width()-boxW)/2, 0, dst.Width())
	boxY := core.Clamp((dst.Height()-boxH)/2, 0, dst.Height())

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorBrightRed)

	for i, l := range lines {
		color := core.ColorWhite
		if i == 0 {
			color = core.ColorBrightRed
		}
		dst.DrawTextCentered(boxY+1+i, l, color)
	}
}
