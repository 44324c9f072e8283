package snake

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// DrawBoard renders the board at pixel scale: every occupied cell is a
// filled square outlined in the border color, on a plain background.
func (g *Game) DrawBoard(p config.Palette) *gg.Context {
	w, h := g.grid.PixelSize()
	dc := gg.NewContext(w, h)

	dc.SetHexColor(p.Background)
	dc.Clear()

	for _, c := range g.field.Items() {
		if !c.Placed {
			continue
		}
		var fill string
		switch c.Kind {
		case KindApple:
			fill = p.Apple
		case KindRottenApple:
			fill = p.RottenApple
		default:
			fill = p.Brick
		}
		g.drawCell(dc, c.Pos, fill, p.Border)
	}

	cells := g.body.Cells()
	for i := len(cells) - 1; i >= 0; i-- {
		fill := p.Snake
		if i == 0 {
			fill = p.SnakeHead
		}
		g.drawCell(dc, cells[i], fill, p.Border)
	}

	return dc
}

func (g *Game) drawCell(dc *gg.Context, pos Point, fill, border string) {
	px, py := pos.Pixels(g.grid.CellSize)
	size := float64(g.grid.CellSize)

	dc.DrawRectangle(float64(px), float64(py), size, size)
	dc.SetHexColor(fill)
	dc.Fill()

	dc.DrawRectangle(float64(px)+0.5, float64(py)+0.5, size-1, size-1)
	dc.SetHexColor(border)
	dc.SetLineWidth(1)
	dc.Stroke()
}

// EncodePNG writes the board as a PNG image.
func (g *Game) EncodePNG(w io.Writer, p config.Palette) error {
	if err := g.DrawBoard(p).EncodePNG(w); err != nil {
		return fmt.Errorf("snake: cannot encode png: %w", err)
	}
	return nil
}

// ExportPNG writes the board to path, creating parent directories.
func (g *Game) ExportPNG(path string, p config.Palette) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("snake: cannot create directory for %s: %w", path, err)
	}
	if err := g.DrawBoard(p).SavePNG(path); err != nil {
		return fmt.Errorf("snake: cannot save %s: %w", path, err)
	}
	return nil
}
