package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Point is a cell address on the board.
type Point struct {
	X, Y int
}

// Nowhere marks a collectible that could not be placed.
var Nowhere = Point{X: -1, Y: -1}

// Pixels returns the top-left pixel of the cell when each cell is cellSize
// pixels wide.
func (p Point) Pixels(cellSize int) (int, int) {
	return p.X * cellSize, p.Y * cellSize
}

// Grid is the fixed-size discrete board.
type Grid struct {
	Width    int
	Height   int
	CellSize int
}

// Center returns the cell the snake starts from.
func (g Grid) Center() Point {
	return Point{X: g.Width / 2, Y: g.Height / 2}
}

// Contains reports whether p lies on the board.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Wrap maps p onto the board; leaving one edge re-enters at the opposite one.
func (g Grid) Wrap(p Point) Point {
	return Point{X: core.Mod(p.X, g.Width), Y: core.Mod(p.Y, g.Height)}
}

// Cells returns every cell, row by row.
func (g Grid) Cells() []Point {
	cells := make([]Point, 0, g.Width*g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			cells = append(cells, Point{X: x, Y: y})
		}
	}
	return cells
}

// PixelSize returns the board size in pixels.
func (g Grid) PixelSize() (int, int) {
	return g.Width * g.CellSize, g.Height * g.CellSize
}
