package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

const (
	DefaultMapSpec    = "map.yaml"
	PlayerSpecFile    = "player.yaml"
	CameraSpecFile    = "camera.yaml"
	defaultTileLength = 50.0
)

// MapSpec describes the grid. Rules names a tengo script under scripts/
// deciding each tile; without one every tile is floor.
type MapSpec struct {
	Name     string     `yaml:"name"`
	TileSize SizeSpec   `yaml:"tile_size"`
	Width    int        `yaml:"width"`
	Height   int        `yaml:"height"`
	Origin   OriginSpec `yaml:"origin"`
	Rules    string     `yaml:"rules"`
}

type SizeSpec struct {
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// OriginSpec places the grid corner in world space. Centered overrides X/Y
// and puts the grid's center on the world origin.
type OriginSpec struct {
	Centered bool    `yaml:"centered"`
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
}

func LoadMapSpec(name string) (*MapSpec, error) {
	if name == "" {
		name = DefaultMapSpec
	}
	spec, err := LoadSpec[MapSpec](name)
	if err != nil {
		return nil, err
	}
	if spec.TileSize.W == 0 {
		spec.TileSize.W = defaultTileLength
	}
	if spec.TileSize.H == 0 {
		spec.TileSize.H = spec.TileSize.W
	}
	return &spec, nil
}

type CameraSpec struct {
	Name       string        `yaml:"name"`
	Transform  TransformSpec `yaml:"transform"`
	Zoom       float64       `yaml:"zoom"`
	Follow     bool          `yaml:"follow"`
	Smoothness float64       `yaml:"smoothness"`
}

func LoadCameraSpec() (*CameraSpec, error) {
	spec, err := LoadSpec[CameraSpec](CameraSpecFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// PlayerSpec is the movement tuning read back out of player.yaml for hot
// reload.
type PlayerSpec struct {
	MoveSpeed      float64
	ArrivalEpsilon float64
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	build, err := LoadEntityBuildSpec(PlayerSpecFile)
	if err != nil {
		return nil, err
	}
	mover, err := DecodeComponentSpec[MoverComponentSpec](build.Components["mover"])
	if err != nil {
		return nil, fmt.Errorf("prefabs: decode mover in %s: %w", PlayerSpecFile, err)
	}
	return &PlayerSpec{MoveSpeed: mover.Speed, ArrivalEpsilon: mover.ArrivalEpsilon}, nil
}

type TransformSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	ScaleX   float64 `yaml:"scale_x"`
	ScaleY   float64 `yaml:"scale_y"`
	Rotation float64 `yaml:"rotation"`
}
