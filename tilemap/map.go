// Package tilemap holds the navigable tile grid: its placement in world
// space, tile presence and the neighbor lookup movement relies on.
package tilemap

import (
	"errors"
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
)

var ErrInvalidSize = errors.New("tilemap: invalid size")

type Kind uint8

const (
	KindFloor Kind = iota
	KindWall
)

func (k Kind) String() string {
	switch k {
	case KindFloor:
		return "floor"
	case KindWall:
		return "wall"
	default:
		return fmt.Sprintf("kind(%d)", k)
	}
}

type Tile struct {
	Kind Kind
}

// Blocked reports whether the tile exists but cannot be entered.
func (t *Tile) Blocked() bool {
	return t != nil && t.Kind == KindWall
}

// Neighbor is one entry of a neighbor lookup. Tile is nil when nothing is
// present at (X, Y), including positions outside the grid.
type Neighbor struct {
	X, Y int
	Tile *Tile
}

// neighborOffsets are north, south, west, east, then the diagonals.
var neighborOffsets = [8][2]int{
	{0, -1}, {0, 1}, {-1, 0}, {1, 0},
	{-1, -1}, {1, -1}, {-1, 1}, {1, 1},
}

type Options struct {
	Origin cp.Vector
	TileW  float64
	TileH  float64
	Width  int
	Height int
}

// Map is built once and treated as read-only afterwards.
type Map struct {
	origin cp.Vector
	tileW  float64
	tileH  float64
	width  int
	height int
	tiles  []*Tile
}

// New creates a map where every tile is floor.
func New(opts Options) (*Map, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d tiles", ErrInvalidSize, opts.Width, opts.Height)
	}
	if opts.TileW <= 0 || opts.TileH <= 0 {
		return nil, fmt.Errorf("%w: tile %gx%g", ErrInvalidSize, opts.TileW, opts.TileH)
	}
	m := &Map{
		origin: opts.Origin,
		tileW:  opts.TileW,
		tileH:  opts.TileH,
		width:  opts.Width,
		height: opts.Height,
		tiles:  make([]*Tile, opts.Width*opts.Height),
	}
	for i := range m.tiles {
		m.tiles[i] = &Tile{Kind: KindFloor}
	}
	return m, nil
}

// CenteredOrigin returns the origin that places the grid's pixel center on
// the world origin.
func CenteredOrigin(width, height int, tileW, tileH float64) cp.Vector {
	return cp.Vector{X: -float64(width) * tileW / 2, Y: -float64(height) * tileH / 2}
}

func (m *Map) Width() int  { return m.width }
func (m *Map) Height() int { return m.height }

func (m *Map) Origin() cp.Vector { return m.origin }

// TileSize is exposed for sprite sizing.
func (m *Map) TileSize() cp.Vector {
	return cp.Vector{X: m.tileW, Y: m.tileH}
}

// PixelSize is the world-space extent of the whole grid.
func (m *Map) PixelSize() cp.Vector {
	return cp.Vector{X: float64(m.width) * m.tileW, Y: float64(m.height) * m.tileH}
}

// Bounds is the axis-aligned box covered by the grid.
func (m *Map) Bounds() cp.BB {
	size := m.PixelSize()
	return cp.BB{L: m.origin.X, B: m.origin.Y, R: m.origin.X + size.X, T: m.origin.Y + size.Y}
}

// Contains reports whether p lies on the grid. The far edges belong to no
// tile and are excluded.
func (m *Map) Contains(p cp.Vector) bool {
	bb := m.Bounds()
	return bb.ContainsVect(p) && p.X < bb.R && p.Y < bb.T
}

func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < m.width && y < m.height
}

// Tile returns the tile at (x, y), or nil when out of range or absent.
func (m *Map) Tile(x, y int) *Tile {
	if !m.InBounds(x, y) {
		return nil
	}
	return m.tiles[y*m.width+x]
}

// Set replaces the tile at (x, y). A nil tile leaves a hole. Only loaders
// call this, before the map is handed to the world.
func (m *Map) Set(x, y int, t *Tile) {
	if !m.InBounds(x, y) {
		return
	}
	m.tiles[y*m.width+x] = t
}

// Locate returns the index of the tile under world point p.
func (m *Map) Locate(p cp.Vector) (int, int, bool) {
	if !m.Contains(p) {
		return 0, 0, false
	}
	x := int(math.Floor((p.X - m.origin.X) / m.tileW))
	y := int(math.Floor((p.Y - m.origin.Y) / m.tileH))
	if !m.InBounds(x, y) {
		return 0, 0, false
	}
	return x, y, true
}

// TileCenter returns the world-space rest position for tile (x, y).
func (m *Map) TileCenter(x, y int) cp.Vector {
	return cp.Vector{
		X: m.origin.X + m.tileW*float64(x) + m.tileW/2,
		Y: m.origin.Y + m.tileH*float64(y) + m.tileH/2,
	}
}

// IndexFromCenter inverts TileCenter. Rounding absorbs float error left by
// the origin offset so a tile center always maps back to its own index.
func (m *Map) IndexFromCenter(p cp.Vector) (int, int) {
	x := math.Round((p.X - m.origin.X - m.tileW/2) / m.tileW)
	y := math.Round((p.Y - m.origin.Y - m.tileH/2) / m.tileH)
	return int(x), int(y)
}

// Neighbors returns the 8 surrounding positions of (x, y).
func (m *Map) Neighbors(x, y int) []Neighbor {
	out := make([]Neighbor, 0, len(neighborOffsets))
	for _, off := range neighborOffsets {
		nx, ny := x+off[0], y+off[1]
		out = append(out, Neighbor{X: nx, Y: ny, Tile: m.Tile(nx, ny)})
	}
	return out
}

// Neighbor looks up the neighbor of (x, y) at offset (dx, dy). ok is false
// when the offset is not one of the 8 adjacent positions.
func (m *Map) Neighbor(x, y, dx, dy int) (Neighbor, bool) {
	tx, ty := x+dx, y+dy
	for _, n := range m.Neighbors(x, y) {
		if n.X == tx && n.Y == ty {
			return n, true
		}
	}
	return Neighbor{}, false
}

// Walkable reports whether an entity may rest on (x, y).
func (m *Map) Walkable(x, y int) bool {
	t := m.Tile(x, y)
	return t != nil && !t.Blocked()
}
