package connect4

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/connect4/internal/core"
	"github.com/vovakirdan/connect4/internal/games/connect4/engine"
)

const (
	cellWidth = 4 // "│ ● " per column
	hudHeight = 5 // Title, status, blank, column numbers, cursor
)

// Colors for the frame and highlights.
const (
	frameColor   = core.ColorBlue
	winColor     = core.ColorBrightWhite
	noticeColor  = core.ColorGray
	numbersColor = core.ColorGray
)

// minSize returns the smallest screen that fits the board and HUD.
func (g *Game) minSize() (w, h int) {
	return g.width*cellWidth + 1, hudHeight + g.height + 2
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.err != nil {
		dst.DrawTextCentered(dst.Height()/2, "Cannot start game: "+g.err.Error())
		return
	}
	if g.table == nil {
		return
	}
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW, boardH := g.minSize()
	boardX := (g.screenW - boardW) / 2
	boardY := (g.screenH - boardH) / 2

	g.table.Read(func(c *engine.Controller) {
		status := c.Status()
		g.renderHUD(dst, boardX, boardY, boardW, status)
		g.renderBoard(dst, boardX, boardY+hudHeight, c)
		g.renderNotice(dst, boardY+hudHeight+g.height+1, status)
	})
}

// renderTooSmall shows a boxed "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	minW, minH := g.minSize()
	lines := []string{"Window too small", fmt.Sprintf("Need %dx%d", minW, minH)}

	box := core.NewRect(0, 0, g.screenW, g.screenH).Centered(len(lines[0])+4, len(lines)+2)
	dst.FillRect(box)
	dst.DrawBox(box)
	for i, line := range lines {
		dst.DrawText(box.X+(box.W-len(line))/2, box.Y+1+i, line)
	}
}

// renderHUD draws the title, whose turn it is or the result, and the column
// cursor.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardY, boardW int, status engine.Status) {
	dst.DrawTextCentered(boardY, g.title)

	var line string
	var color core.Color
	switch status.Phase {
	case engine.Won:
		line = g.resultText(status)
		color = g.player(status.Winner).PlayerColor()
	case engine.Tied:
		line = g.resultText(status)
		color = core.ColorWhite
	default:
		p := g.player(status.Active)
		line = fmt.Sprintf("%s %c to move", p.Name, p.PlayerGlyph())
		color = p.PlayerColor()
	}
	dst.DrawTextColored(boardX+(boardW-len([]rune(line)))/2, boardY+1, line, color)

	for col := 0; col < g.width; col++ {
		dst.DrawTextColored(boardX+col*cellWidth+2, boardY+3, strconv.Itoa(col+1), numbersColor)
	}

	if !status.Terminal() {
		dst.SetColored(boardX+g.cursor*cellWidth+2, boardY+4, '▼', g.player(status.Active).PlayerColor())
	}
}

// renderBoard draws the grid with pieces, top row first.
func (g *Game) renderBoard(dst *core.Screen, x0, y0 int, c *engine.Controller) {
	b := c.Board()

	winning := make(map[engine.Cell]bool)
	for _, cell := range c.WinningLine() {
		winning[cell] = true
	}

	for row := 0; row < b.Height(); row++ {
		y := y0 + row
		for col := 0; col < b.Width(); col++ {
			x := x0 + col*cellWidth
			dst.SetColored(x, y, '│', frameColor)

			p := b.CellAt(row, col)
			if p == engine.Empty {
				continue
			}
			pc := g.player(p)
			color := pc.PlayerColor()
			if winning[engine.Cell{Row: row, Col: col}] {
				color = winColor
			}
			dst.SetColored(x+2, y, pc.PlayerGlyph(), color)
		}
		dst.SetColored(x0+b.Width()*cellWidth, y, '│', frameColor)
	}

	y := y0 + b.Height()
	for col := 0; col < b.Width(); col++ {
		x := x0 + col*cellWidth
		corner := '┴'
		if col == 0 {
			corner = '└'
		}
		dst.SetColored(x, y, corner, frameColor)
		dst.DrawTextColored(x+1, y, "───", frameColor)
	}
	dst.SetColored(x0+b.Width()*cellWidth, y, '┘', frameColor)
}

// renderNotice draws feedback for the last action, or the restart hint once
// the game is over.
func (g *Game) renderNotice(dst *core.Screen, y int, status engine.Status) {
	switch {
	case g.notice != "":
		dst.DrawTextCentered(y, g.notice)
	case status.Terminal():
		dst.DrawTextCentered(y, "r: new game  b: menu")
	default:
		return
	}
	for x := 0; x < dst.Width(); x++ {
		if cell := dst.GetCell(x, y); cell.Rune != ' ' {
			dst.SetColored(x, y, cell.Rune, noticeColor)
		}
	}
}
