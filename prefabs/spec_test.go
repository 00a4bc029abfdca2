package prefabs

import "testing"

func TestLoadMapSpec(t *testing.T) {
	cases := []struct {
		name     string
		file     string
		wantName string
		width    int
		centered bool
		rules    string
	}{
		{name: "default", file: "", wantName: "meadow", width: 20, centered: true, rules: "meadow.tengo"},
		{name: "open", file: "open.yaml", wantName: "open", width: 4},
		{name: "prefixed path", file: "prefabs/open.yaml", wantName: "open", width: 4},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			spec, err := LoadMapSpec(tc.file)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if spec.Name != tc.wantName || spec.Width != tc.width {
				t.Fatalf("spec = %+v", *spec)
			}
			if spec.Origin.Centered != tc.centered || spec.Rules != tc.rules {
				t.Fatalf("origin = %+v rules = %q", spec.Origin, spec.Rules)
			}
			if spec.TileSize.W != 50 || spec.TileSize.H != 50 {
				t.Fatalf("tile size = %+v", spec.TileSize)
			}
		})
	}
}

func TestLoadMapSpecMissing(t *testing.T) {
	if _, err := LoadMapSpec("nope.yaml"); err == nil {
		t.Fatalf("expected error for missing spec")
	}
}

func TestLoadPlayerSpec(t *testing.T) {
	spec, err := LoadPlayerSpec()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if spec.MoveSpeed != 150 || spec.ArrivalEpsilon != 0.4 {
		t.Fatalf("spec = %+v", *spec)
	}
}

func TestLoadCameraSpec(t *testing.T) {
	spec, err := LoadCameraSpec()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if spec.Zoom != 1 || spec.Follow || spec.Smoothness != 0.15 {
		t.Fatalf("spec = %+v", *spec)
	}
}

func TestIsPlayerSpec(t *testing.T) {
	cases := map[string]bool{
		"player.yaml":                   true,
		"prefabs/player.yaml":           true,
		"/tmp/game/prefabs/player.yaml": true,
		"prefabs/map.yaml":              false,
		"prefabs/scripts/meadow.tengo":  false,
	}
	for path, want := range cases {
		if got := IsPlayerSpec(path); got != want {
			t.Fatalf("IsPlayerSpec(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestCleanScriptPath(t *testing.T) {
	cases := map[string]string{
		"meadow.tengo":                 "scripts/meadow.tengo",
		"scripts/meadow.tengo":         "scripts/meadow.tengo",
		"prefabs/scripts/meadow.tengo": "scripts/meadow.tengo",
		"":                             "",
	}
	for in, want := range cases {
		if got := cleanScriptPath(in); got != want {
			t.Fatalf("cleanScriptPath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLoadScriptEmbedded(t *testing.T) {
	src, err := LoadScript("meadow.tengo")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(src) == 0 {
		t.Fatalf("empty script")
	}
}
