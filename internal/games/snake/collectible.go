package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Kind identifies a collectible.
type Kind int

const (
	KindApple Kind = iota
	KindRottenApple
	KindBrick
)

// Kinds lists the collectibles in respawn order.
var Kinds = [...]Kind{KindApple, KindRottenApple, KindBrick}

func (k Kind) String() string {
	switch k {
	case KindApple:
		return "apple"
	case KindRottenApple:
		return "rotten_apple"
	case KindBrick:
		return "brick"
	default:
		return "unknown"
	}
}

// Glyph returns the rune and color role used to draw the collectible.
func (k Kind) Glyph() (rune, core.Color) {
	switch k {
	case KindApple:
		return '*', core.ColorApple
	case KindRottenApple:
		return '%', core.ColorRottenApple
	default:
		return '#', core.ColorBrick
	}
}

// Collectible is a single-cell item on the board.
type Collectible struct {
	Kind   Kind
	Pos    Point
	Placed bool // False when the board had no free cell
}

// At reports whether the collectible sits on p.
func (c Collectible) At(p Point) bool {
	return c.Placed && c.Pos == p
}

// Field holds one collectible of each kind and places them on free cells.
type Field struct {
	grid  Grid
	items [len(Kinds)]Collectible
}

// NewField creates a field with nothing placed.
func NewField(g Grid) *Field {
	f := &Field{grid: g}
	for i, k := range Kinds {
		f.items[i] = Collectible{Kind: k, Pos: Nowhere}
	}
	return f
}

// Get returns the collectible of the given kind.
func (f *Field) Get(k Kind) Collectible {
	return f.items[k]
}

// Items returns all collectibles in respawn order.
func (f *Field) Items() []Collectible {
	return f.items[:]
}

// Occupied reports whether a collectible other than skip sits on p.
func (f *Field) Occupied(p Point, skip Kind) bool {
	for _, c := range f.items {
		if c.Kind != skip && c.At(p) {
			return true
		}
	}
	return false
}

// Respawn moves the collectible of kind k to a cell chosen uniformly among
// cells free of the snake body and of the other collectibles. If no such
// cell exists the collectible is removed from the board.
func (f *Field) Respawn(k Kind, body *Body, rng *rand.Rand) Collectible {
	var free []Point
	for _, p := range f.grid.Cells() {
		if body.Occupies(p) || f.Occupied(p, k) {
			continue
		}
		free = append(free, p)
	}

	c := &f.items[k]
	if len(free) == 0 {
		c.Pos = Nowhere
		c.Placed = false
		return *c
	}
	c.Pos = free[rng.Intn(len(free))]
	c.Placed = true
	return *c
}

// RespawnAll places every collectible again in respawn order. Each one
// avoids the body and those placed before it.
func (f *Field) RespawnAll(body *Body, rng *rand.Rand) {
	for i := range f.items {
		f.items[i].Placed = false
		f.items[i].Pos = Nowhere
	}
	for _, k := range Kinds {
		f.Respawn(k, body, rng)
	}
}

// Set places a collectible directly. Used by tests and scripted scenarios.
func (f *Field) Set(k Kind, p Point) {
	f.items[k] = Collectible{Kind: k, Pos: p, Placed: f.grid.Contains(p)}
	if !f.items[k].Placed {
		f.items[k].Pos = Nowhere
	}
}
