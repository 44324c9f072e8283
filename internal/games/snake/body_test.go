package snake

import (
	"bytes"
	"image/png"
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/config"
)

func TestGridWrap(t *testing.T) {
	g := Grid{Width: 32, Height: 24, CellSize: 20}

	tests := []struct {
		in, want Point
	}{
		{Point{X: 32, Y: 0}, Point{X: 0, Y: 0}},
		{Point{X: -1, Y: 0}, Point{X: 31, Y: 0}},
		{Point{X: 0, Y: -1}, Point{X: 0, Y: 23}},
		{Point{X: 5, Y: 24}, Point{X: 5, Y: 0}},
		{Point{X: 10, Y: 10}, Point{X: 10, Y: 10}},
	}
	for _, tc := range tests {
		if got := g.Wrap(tc.in); got != tc.want {
			t.Errorf("Wrap(%+v) = %+v, expected %+v", tc.in, got, tc.want)
		}
	}

	if n := len(g.Cells()); n != 32*24 {
		t.Errorf("Cells() returned %d cells", n)
	}
	if w, h := g.PixelSize(); w != 640 || h != 480 {
		t.Errorf("PixelSize() = %dx%d, expected 640x480", w, h)
	}
	if x, y := (Point{X: 3, Y: 2}).Pixels(20); x != 60 || y != 40 {
		t.Errorf("Pixels() = (%d, %d)", x, y)
	}
}

func TestDirectionOpposite(t *testing.T) {
	for _, d := range Directions {
		if d.Opposite().Opposite() != d {
			t.Errorf("%s: double opposite should be identity", d)
		}
		delta, back := d.Delta(), d.Opposite().Delta()
		if delta.X+back.X != 0 || delta.Y+back.Y != 0 {
			t.Errorf("%s: opposite delta does not cancel", d)
		}
	}
}

func TestBodyShrinkFloor(t *testing.T) {
	b := NewBody(Point{X: 1, Y: 1}, DirRight)
	if b.Shrink() {
		t.Error("Shrink at length 1 should be a no-op")
	}
	b.Grow()
	if !b.Shrink() || b.Length() != 1 {
		t.Errorf("Shrink from 2 should give 1, got %d", b.Length())
	}
}

func TestBodyReset(t *testing.T) {
	b := NewBody(Point{X: 1, Y: 1}, DirRight)
	b.Grow()
	b.Grow()
	b.Turn(DirUp)

	b.Reset(Point{X: 4, Y: 4}, DirLeft)

	if b.Len() != 1 || b.Length() != 1 || b.Head() != (Point{X: 4, Y: 4}) {
		t.Errorf("unexpected body after reset: %+v", b.Cells())
	}
	if _, ok := b.Pending(); ok {
		t.Error("reset should clear the buffered direction")
	}
	if b.Direction() != DirLeft {
		t.Errorf("direction = %s, expected left", b.Direction())
	}
}

func TestFieldRespawnAvoidsOccupied(t *testing.T) {
	g := Grid{Width: 2, Height: 2, CellSize: 20}
	rng := rand.New(rand.NewSource(99))

	for i := 0; i < 50; i++ {
		f := NewField(g)
		body := NewBody(Point{X: 0, Y: 0}, DirRight)
		f.Set(KindApple, Point{X: 1, Y: 0})
		f.Set(KindBrick, Point{X: 0, Y: 1})

		c := f.Respawn(KindRottenApple, body, rng)
		if !c.Placed || c.Pos != (Point{X: 1, Y: 1}) {
			t.Fatalf("rotten apple should take the only free cell, got %+v", c)
		}
	}
}

func TestFieldRespawnNoFreeCell(t *testing.T) {
	g := Grid{Width: 2, Height: 1, CellSize: 20}
	f := NewField(g)
	body := NewBody(Point{X: 0, Y: 0}, DirRight)
	f.Set(KindApple, Point{X: 1, Y: 0})

	c := f.Respawn(KindRottenApple, body, rand.New(rand.NewSource(1)))
	if c.Placed || c.Pos != Nowhere {
		t.Errorf("expected unplaced collectible, got %+v", c)
	}
	if c.At(Nowhere) {
		t.Error("an unplaced collectible must not be hit")
	}
}

func TestFieldRespawnIsUniform(t *testing.T) {
	g := Grid{Width: 3, Height: 3, CellSize: 20}
	f := NewField(g)
	body := NewBody(g.Center(), DirRight)
	rng := rand.New(rand.NewSource(2024))

	const samples = 8000
	counts := make(map[Point]int)
	for i := 0; i < samples; i++ {
		counts[f.Respawn(KindApple, body, rng).Pos]++
	}

	if counts[g.Center()] != 0 {
		t.Error("apple spawned on the snake")
	}
	if len(counts) != 8 {
		t.Fatalf("expected 8 distinct cells, got %d", len(counts))
	}
	for p, n := range counts {
		if n < 800 || n > 1200 {
			t.Errorf("cell %+v drawn %d times out of %d", p, n, samples)
		}
	}
}

func TestFieldRespawnAllOrder(t *testing.T) {
	g := Grid{Width: 2, Height: 1, CellSize: 20}
	f := NewField(g)
	body := NewBody(Point{X: 0, Y: 0}, DirRight)

	f.RespawnAll(body, rand.New(rand.NewSource(3)))

	if a := f.Get(KindApple); !a.Placed || a.Pos != (Point{X: 1, Y: 0}) {
		t.Errorf("apple should take the single free cell, got %+v", a)
	}
	if f.Get(KindRottenApple).Placed || f.Get(KindBrick).Placed {
		t.Error("later collectibles should stay off a full board")
	}
}

func TestExportPNG(t *testing.T) {
	g := newTestGame(55)
	g.field.Set(KindApple, Point{X: 3, Y: 2})
	g.field.Set(KindRottenApple, Point{X: 4, Y: 2})
	g.field.Set(KindBrick, Point{X: 5, Y: 2})

	path := filepath.Join(t.TempDir(), "shots", "board.png")
	if err := g.ExportPNG(path, config.Default().Palette); err != nil {
		t.Fatalf("ExportPNG() error = %v", err)
	}

	var buf bytes.Buffer
	if err := g.EncodePNG(&buf, config.Default().Palette); err != nil {
		t.Fatalf("EncodePNG() error = %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if b := img.Bounds(); b.Dx() != 640 || b.Dy() != 480 {
		t.Errorf("image size = %dx%d, expected 640x480", b.Dx(), b.Dy())
	}

	r, gr, b, _ := img.At(70, 50).RGBA()
	if r>>8 != 0xFF || gr>>8 != 0xFF || b>>8 != 0x00 {
		t.Errorf("apple cell color = (%d, %d, %d), expected yellow", r>>8, gr>>8, b>>8)
	}
	r, gr, b, _ = img.At(630, 0).RGBA()
	if r != 0 || gr != 0 || b != 0 {
		t.Error("empty cells should keep the background color")
	}
}
