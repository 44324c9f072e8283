package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Glyphs for the snake itself.
const (
	HeadChar = '@'
	BodyChar = 'o'
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		need := fmt.Sprintf("Need %dx%d", g.grid.Width+2, g.grid.Height+2+hudHeight)
		g.renderOverlay(dst, "Window too small", need)
		return
	}

	// Board frame
	dst.DrawBox(core.NewRect(g.boardX-1, g.boardY-1, g.grid.Width+2, g.grid.Height+2), core.ColorBorder)

	for _, c := range g.field.Items() {
		if !c.Placed {
			continue
		}
		r, color := c.Kind.Glyph()
		g.setCell(dst, c.Pos, r, color)
	}

	g.renderSnake(dst)

	if g.paused {
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status line.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Snake | Score: %d  Length: %d  Best: %d  Runs: %d",
		g.score, g.body.Length(), g.best, g.runs)
	dst.DrawText(0, 0, hud, core.ColorHUD)
}

// renderSnake draws the body from tail to head so the head is always on top.
func (g *Game) renderSnake(dst *core.Screen) {
	cells := g.body.Cells()
	for i := len(cells) - 1; i >= 0; i-- {
		if i == 0 {
			g.setCell(dst, cells[i], HeadChar, core.ColorSnakeHead)
		} else {
			g.setCell(dst, cells[i], BodyChar, core.ColorSnakeBody)
		}
	}
}

func (g *Game) setCell(dst *core.Screen, p Point, r rune, c core.Color) {
	dst.SetCell(g.boardX+p.X, g.boardY+p.Y, r, c)
}

// renderOverlay draws a centered boxed message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := max(len([]rune(line1)), len([]rune(line2)))
	boxW := maxLen + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorOverlay)
	dst.DrawBox(box, core.ColorOverlay)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorOverlay)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorOverlay)
}
