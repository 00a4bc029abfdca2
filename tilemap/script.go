package tilemap

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

const scriptTimeout = 2 * time.Second

// The rules script defines `tile := func(x, y, w, h)` returning "floor",
// "wall" or "void". This driver is appended to it.
const tileDispatchScript = `
__tiles := []
for __y := 0; __y < __height; __y++ {
	for __x := 0; __x < __width; __x++ {
		__tiles = append(__tiles, tile(__x, __y, __width, __height))
	}
}
`

// LoadScript builds a map and lets a tengo rules script decide every tile.
func LoadScript(ctx context.Context, src []byte, opts Options) (*Map, error) {
	m, err := New(opts)
	if err != nil {
		return nil, err
	}

	script := tengo.NewScript([]byte(string(src) + "\n" + tileDispatchScript))
	if err := script.Add("__width", opts.Width); err != nil {
		return nil, fmt.Errorf("tilemap: bind width: %w", err)
	}
	if err := script.Add("__height", opts.Height); err != nil {
		return nil, fmt.Errorf("tilemap: bind height: %w", err)
	}
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("tilemap: compile rules: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, scriptTimeout)
	defer cancel()
	if err := compiled.RunContext(ctx); err != nil {
		return nil, fmt.Errorf("tilemap: run rules: %w", err)
	}

	values := compiled.Get("__tiles").Array()
	if len(values) != opts.Width*opts.Height {
		return nil, fmt.Errorf("tilemap: rules produced %d tiles, want %d", len(values), opts.Width*opts.Height)
	}
	for i, v := range values {
		x, y := i%opts.Width, i/opts.Width
		t, err := parseTile(v)
		if err != nil {
			return nil, fmt.Errorf("tilemap: tile (%d,%d): %w", x, y, err)
		}
		m.Set(x, y, t)
	}
	return m, nil
}

func parseTile(v any) (*Tile, error) {
	name, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("expected string, got %T", v)
	}
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "floor":
		return &Tile{Kind: KindFloor}, nil
	case "wall":
		return &Tile{Kind: KindWall}, nil
	case "void", "none":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown tile %q", name)
	}
}
