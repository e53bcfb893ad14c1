package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/milk9111/lifedrain/ability"
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

type TransformSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

type LinkSpec struct {
	Width      float32   `yaml:"width"`
	StartColor YAMLColor `yaml:"start_color"`
	EndColor   YAMLColor `yaml:"end_color"`
}

type EffectSpec struct {
	Rate       float64   `yaml:"rate"`
	Speed      float64   `yaml:"speed"`
	LifeFrames int       `yaml:"life_frames"`
	Radius     float64   `yaml:"radius"`
	Color      YAMLColor `yaml:"color"`
}

// DrainSpec is the designer surface of the drain ability.
type DrainSpec struct {
	Name            string     `yaml:"name"`
	Duration        float64    `yaml:"duration"`
	Radius          float64    `yaml:"radius"`
	DamagePerSecond float64    `yaml:"damage_per_second"`
	HealPercentage  float64    `yaml:"heal_percentage"`
	Filter          uint32     `yaml:"filter"`
	Key             string     `yaml:"key"`
	CancelKey       string     `yaml:"cancel_key"`
	Link            LinkSpec   `yaml:"link"`
	Effect          EffectSpec `yaml:"effect"`
}

// Config converts the prefab values into ability tuning and validates them.
func (s *DrainSpec) Config() (ability.Config, error) {
	if s == nil {
		return ability.DefaultConfig(), nil
	}
	cfg := ability.Config{
		Duration:        s.Duration,
		Radius:          s.Radius,
		DamagePerSecond: s.DamagePerSecond,
		HealPercentage:  s.HealPercentage,
		Filter:          ability.Filter(s.Filter),
	}
	if err := cfg.Validate(); err != nil {
		return ability.Config{}, fmt.Errorf("prefabs: drain %q: %w", s.Name, err)
	}
	return cfg, nil
}

func LoadDrainSpec() (*DrainSpec, error) {
	data, err := Load("drain.yaml")
	if err != nil {
		return nil, fmt.Errorf("prefabs: load drain.yaml: %w", err)
	}
	return ParseDrainSpec(data)
}

// ParseDrainSpec decodes drain.yaml content, filling unset keys.
func ParseDrainSpec(data []byte) (*DrainSpec, error) {
	spec := DrainSpec{Key: "W", CancelKey: "Q"}
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal drain.yaml: %w", err)
	}
	if spec.Link.Width <= 0 {
		spec.Link.Width = 0.05
	}
	if spec.Link.StartColor.Color == nil {
		spec.Link.StartColor.Color = color.NRGBA{R: 0xff, A: 0xff}
	}
	if spec.Link.EndColor.Color == nil {
		spec.Link.EndColor.Color = color.NRGBA{A: 0xff}
	}
	return &spec, nil
}

type PlayerSpec struct {
	Name        string        `yaml:"name"`
	MaxHealth   float64       `yaml:"max_health"`
	StartHealth float64       `yaml:"start_health"`
	MoveSpeed   float64       `yaml:"move_speed"`
	Radius      float64       `yaml:"radius"`
	Color       YAMLColor     `yaml:"color"`
	Transform   TransformSpec `yaml:"transform"`
	RenderLayer int           `yaml:"render_layer"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	data, err := Load("player.yaml")
	if err != nil {
		return nil, fmt.Errorf("prefabs: load player.yaml: %w", err)
	}
	var spec PlayerSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal player.yaml: %w", err)
	}
	return &spec, nil
}

type EnemySpec struct {
	Name        string    `yaml:"name"`
	Health      float64   `yaml:"health"`
	Radius      float64   `yaml:"radius"`
	Color       YAMLColor `yaml:"color"`
	Category    uint32    `yaml:"category"`
	Script      string    `yaml:"script"`
	Speed       float64   `yaml:"speed"`
	WanderRange float64   `yaml:"wander_range"`
	RenderLayer int       `yaml:"render_layer"`
}

func LoadEnemySpec() (*EnemySpec, error) {
	data, err := Load("enemy.yaml")
	if err != nil {
		return nil, fmt.Errorf("prefabs: load enemy.yaml: %w", err)
	}
	var spec EnemySpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal enemy.yaml: %w", err)
	}
	return &spec, nil
}

type SpawnSpec struct {
	Transform TransformSpec `yaml:"transform"`
	// Health overrides the enemy prefab when positive.
	Health float64 `yaml:"health"`
}

// ArenaSpec lays out one arena. Scale is pixels per world unit.
type ArenaSpec struct {
	Name       string      `yaml:"name"`
	Width      float64     `yaml:"width"`
	Height     float64     `yaml:"height"`
	Scale      float64     `yaml:"scale"`
	Background YAMLColor   `yaml:"background"`
	Enemies    []SpawnSpec `yaml:"enemies"`
}

func LoadArenaSpec() (*ArenaSpec, error) {
	spec, err := LoadSpec[ArenaSpec]("arena.yaml")
	if err != nil {
		return nil, err
	}
	if spec.Scale <= 0 {
		spec.Scale = 32
	}
	return &spec, nil
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

// Or returns the parsed color, or fallback when the key was absent.
func (c YAMLColor) Or(fallback color.Color) color.Color {
	if c.Color == nil {
		return fallback
	}
	return c.Color
}
