package prefabs

import "gopkg.in/yaml.v3"

type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type TransformComponentSpec = TransformSpec

type GridPositionComponentSpec struct {
	X uint32 `yaml:"x"`
	Y uint32 `yaml:"y"`
}

type MoverComponentSpec struct {
	Speed          float64 `yaml:"speed"`
	ArrivalEpsilon float64 `yaml:"arrival_epsilon"`
}

// SpriteComponentSpec sizes the sprite to the tile minus Border on each axis
// unless Width/Height are set.
type SpriteComponentSpec struct {
	Image  string  `yaml:"image"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Border float64 `yaml:"border"`
}

type RenderLayerComponentSpec struct {
	Index int `yaml:"index"`
}

type MovementAudioComponentSpec struct {
	File   string  `yaml:"file"`
	Volume float64 `yaml:"volume"`
}
