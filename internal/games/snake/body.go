package snake

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Directions lists every direction, used for random resets.
var Directions = [...]Direction{DirRight, DirDown, DirLeft, DirUp}

// Delta returns the unit step for the direction.
func (d Direction) Delta() Point {
	switch d {
	case DirUp:
		return Point{X: 0, Y: -1}
	case DirDown:
		return Point{X: 0, Y: 1}
	case DirLeft:
		return Point{X: -1, Y: 0}
	default:
		return Point{X: 1, Y: 0}
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Body is the snake: an ordered list of cells with the head at index 0.
//
// length is the target length. After a shrink the body holds one cell more
// than length until the next move trims both surplus cells.
type Body struct {
	cells     []Point
	length    int
	direction Direction
	next      Direction
	hasNext   bool
}

// NewBody creates a one-cell snake at start heading dir.
func NewBody(start Point, dir Direction) *Body {
	b := &Body{}
	b.Reset(start, dir)
	return b
}

// Reset shrinks the snake back to a single cell at start.
func (b *Body) Reset(start Point, dir Direction) {
	b.cells = append(b.cells[:0], start)
	b.length = 1
	b.direction = dir
	b.hasNext = false
}

// Head returns the head cell.
func (b *Body) Head() Point {
	return b.cells[0]
}

// Cells returns the occupied cells, head first. The slice must not be modified.
func (b *Body) Cells() []Point {
	return b.cells
}

// Len returns the number of occupied cells.
func (b *Body) Len() int {
	return len(b.cells)
}

// Length returns the target length.
func (b *Body) Length() int {
	return b.length
}

// Direction returns the current heading.
func (b *Body) Direction() Direction {
	return b.direction
}

// Turn buffers a direction change for the next move. Requests opposite to
// the current heading are dropped; a later request replaces an earlier one.
// Returns whether the request was accepted.
func (b *Body) Turn(d Direction) bool {
	if d == b.direction.Opposite() {
		return false
	}
	b.next = d
	b.hasNext = true
	return true
}

// Pending returns the buffered direction, if any.
func (b *Body) Pending() (Direction, bool) {
	return b.next, b.hasNext
}

// Move applies the buffered direction, pushes a new wrapped head and trims
// the tail down to the target length.
func (b *Body) Move(g Grid) Point {
	if b.hasNext {
		b.direction = b.next
		b.hasNext = false
	}

	d := b.direction.Delta()
	head := g.Wrap(Point{X: b.cells[0].X + d.X, Y: b.cells[0].Y + d.Y})

	b.cells = append(b.cells, Point{})
	copy(b.cells[1:], b.cells)
	b.cells[0] = head

	for len(b.cells) > b.length {
		b.cells = b.cells[:len(b.cells)-1]
	}
	return head
}

// Grow extends the target length by one.
func (b *Body) Grow() {
	b.length++
}

// Shrink reduces the target length by one, never below a single cell.
// Returns whether the length changed.
func (b *Body) Shrink() bool {
	if b.length <= 1 {
		return false
	}
	b.length--
	return true
}

// Occupies reports whether any cell of the body is at p.
func (b *Body) Occupies(p Point) bool {
	for _, c := range b.cells {
		if c == p {
			return true
		}
	}
	return false
}

// HitsSelf reports whether the head overlaps another body cell.
func (b *Body) HitsSelf() bool {
	head := b.cells[0]
	for _, c := range b.cells[1:] {
		if c == head {
			return true
		}
	}
	return false
}
