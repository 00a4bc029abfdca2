package tilemap

import (
	"errors"
	"math"
	"testing"

	"github.com/jakecoffman/cp"
)

func mustMap(t *testing.T, opts Options) *Map {
	t.Helper()
	m, err := New(opts)
	if err != nil {
		t.Fatalf("new map: %v", err)
	}
	return m
}

func TestNewRejectsInvalidSize(t *testing.T) {
	cases := []struct {
		name string
		opts Options
	}{
		{"zero_width", Options{TileW: 50, TileH: 50, Width: 0, Height: 4}},
		{"negative_height", Options{TileW: 50, TileH: 50, Width: 4, Height: -1}},
		{"zero_tile", Options{TileW: 0, TileH: 50, Width: 4, Height: 4}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := New(c.opts); !errors.Is(err, ErrInvalidSize) {
				t.Fatalf("expected ErrInvalidSize, got %v", err)
			}
		})
	}
}

func TestTileCenterRoundTrip(t *testing.T) {
	origins := []cp.Vector{
		{X: 0, Y: 0},
		CenteredOrigin(20, 20, 50, 50),
		{X: -123.3, Y: 77.7},
	}
	for _, origin := range origins {
		m := mustMap(t, Options{Origin: origin, TileW: 50, TileH: 40, Width: 20, Height: 20})
		for y := 0; y < m.Height(); y++ {
			for x := 0; x < m.Width(); x++ {
				gx, gy := m.IndexFromCenter(m.TileCenter(x, y))
				if gx != x || gy != y {
					t.Fatalf("origin %v: center of (%d,%d) maps back to (%d,%d)", origin, x, y, gx, gy)
				}
				lx, ly, ok := m.Locate(m.TileCenter(x, y))
				if !ok || lx != x || ly != y {
					t.Fatalf("origin %v: locate center of (%d,%d) = (%d,%d,%v)", origin, x, y, lx, ly, ok)
				}
			}
		}
	}
}

func TestTileCenterValues(t *testing.T) {
	m := mustMap(t, Options{TileW: 50, TileH: 50, Width: 4, Height: 4})
	got := m.TileCenter(2, 2)
	if got.X != 125 || got.Y != 125 {
		t.Fatalf("expected (125,125), got %v", got)
	}
	if size := m.TileSize(); size.X != 50 || size.Y != 50 {
		t.Fatalf("unexpected tile size %v", size)
	}
}

func TestContainsNegativeSide(t *testing.T) {
	m := mustMap(t, Options{Origin: CenteredOrigin(4, 4, 50, 50), TileW: 50, TileH: 50, Width: 4, Height: 4})

	cases := []struct {
		name string
		p    cp.Vector
		want bool
	}{
		{"center", cp.Vector{X: 0, Y: 0}, true},
		{"negative_inside", cp.Vector{X: -99, Y: -99}, true},
		{"min_corner", cp.Vector{X: -100, Y: -100}, true},
		{"negative_outside", cp.Vector{X: -101, Y: 0}, false},
		{"max_edge_excluded", cp.Vector{X: 100, Y: 0}, false},
		{"positive_outside", cp.Vector{X: 0, Y: 180}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := m.Contains(c.p); got != c.want {
				t.Fatalf("Contains(%v) = %v, want %v", c.p, got, c.want)
			}
		})
	}

	x, y, ok := m.Locate(cp.Vector{X: -99, Y: -1})
	if !ok || x != 0 || y != 1 {
		t.Fatalf("expected tile (0,1), got (%d,%d,%v)", x, y, ok)
	}
}

func TestNeighbors(t *testing.T) {
	m := mustMap(t, Options{TileW: 50, TileH: 50, Width: 4, Height: 4})
	m.Set(1, 0, &Tile{Kind: KindWall})
	m.Set(0, 1, nil)

	ns := m.Neighbors(0, 0)
	if len(ns) != 8 {
		t.Fatalf("expected 8 neighbors, got %d", len(ns))
	}

	cases := []struct {
		name        string
		x, y        int
		dx, dy      int
		wantOK      bool
		wantPresent bool
		wantBlocked bool
	}{
		{"east_wall", 0, 0, 1, 0, true, true, true},
		{"south_hole", 0, 0, 0, 1, true, false, false},
		{"west_outside", 0, 0, -1, 0, true, false, false},
		{"diagonal_floor", 0, 0, 1, 1, true, true, false},
		{"east_edge", 3, 2, 1, 0, true, false, false},
		{"not_adjacent", 0, 0, 2, 0, false, false, false},
		{"self", 1, 1, 0, 0, false, false, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			n, ok := m.Neighbor(c.x, c.y, c.dx, c.dy)
			if ok != c.wantOK {
				t.Fatalf("ok = %v, want %v", ok, c.wantOK)
			}
			if !ok {
				return
			}
			if n.X != c.x+c.dx || n.Y != c.y+c.dy {
				t.Fatalf("unexpected neighbor index (%d,%d)", n.X, n.Y)
			}
			if (n.Tile != nil) != c.wantPresent {
				t.Fatalf("present = %v, want %v", n.Tile != nil, c.wantPresent)
			}
			if n.Tile.Blocked() != c.wantBlocked {
				t.Fatalf("blocked = %v, want %v", n.Tile.Blocked(), c.wantBlocked)
			}
		})
	}
}

func TestBoundsMatchesPixelSize(t *testing.T) {
	m := mustMap(t, Options{Origin: CenteredOrigin(20, 20, 50, 50), TileW: 50, TileH: 50, Width: 20, Height: 20})
	bb := m.Bounds()
	if bb.L != -500 || bb.B != -500 || bb.R != 500 || bb.T != 500 {
		t.Fatalf("unexpected bounds %+v", bb)
	}
	if math.Abs(m.PixelSize().X-1000) > 1e-9 {
		t.Fatalf("unexpected pixel size %v", m.PixelSize())
	}
}

func TestBoundsOffsetOrigin(t *testing.T) {
	m := mustMap(t, Options{Origin: cp.Vector{X: -30, Y: 20}, TileW: 10, TileH: 5, Width: 3, Height: 4})
	bb := m.Bounds()
	if bb.L != -30 || bb.B != 20 || bb.R != 0 || bb.T != 40 {
		t.Fatalf("unexpected bounds %+v", bb)
	}
	if !m.Contains(cp.Vector{X: -30, Y: 20}) {
		t.Fatalf("expected near corner inside")
	}
	if m.Contains(cp.Vector{X: 0, Y: 30}) || m.Contains(cp.Vector{X: -10, Y: 40}) {
		t.Fatalf("expected far edges outside")
	}
}
