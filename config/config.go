// Package config provides configuration loading and access for the swarm.
package config

import (
	_ "embed"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Variant names select how much of the motion model is enabled.
const (
	VariantFull     = "full"     // flocking + pointer + drift + breakaway
	VariantFlocking = "flocking" // flocking + pointer
	VariantAttract  = "attract"  // pointer attraction only
)

// Population modes.
const (
	PopulationDensity = "density"
	PopulationFixed   = "fixed"
)

// Config holds all swarm configuration parameters.
type Config struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Population PopulationConfig `yaml:"population"`
	Flock      FlockConfig      `yaml:"flock"`
	Variant    string           `yaml:"variant"`
	Palette    []ColorConfig    `yaml:"palette"`
	Background BackgroundConfig `yaml:"background"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
	Title     string `yaml:"title"`
}

// PopulationConfig controls how many fish live in the viewport.
type PopulationConfig struct {
	Mode    string  `yaml:"mode"`    // density or fixed
	Density float64 `yaml:"density"` // fish per square pixel (density mode)
	Count   int     `yaml:"count"`   // fish count (fixed mode)
}

// FlockConfig holds the motion model tunables.
type FlockConfig struct {
	Speed                         float64 `yaml:"speed"`     // base speed for spawn velocity
	MaxSpeed                      float64 `yaml:"max_speed"` // hard cap applied every tick
	PerceptionRadius              float64 `yaml:"perception_radius"`
	AlignmentForce                float64 `yaml:"alignment_force"`
	CohesionForce                 float64 `yaml:"cohesion_force"`
	SeparationForce               float64 `yaml:"separation_force"`
	BreakawayAttractionMultiplier float64 `yaml:"breakaway_attraction_multiplier"`
	InteractionDist               float64 `yaml:"interaction_dist"`  // pointer reach
	PointerInfluence              float64 `yaml:"pointer_influence"` // 0 = variant default
	DriftChance                   float64 `yaml:"drift_chance"`
	DriftAngleDeg                 float64 `yaml:"drift_angle_deg"`
	BreakawayChance               float64 `yaml:"breakaway_chance"`
	BreakawayDuration             int     `yaml:"breakaway_duration"`      // ticks
	BreakawayTurnInterval         int     `yaml:"breakaway_turn_interval"` // ticks
	BreakawayTurnAngleDeg         float64 `yaml:"breakaway_turn_angle_deg"`
	MinTurnSpeed                  float64 `yaml:"min_turn_speed"` // below this, heading is undefined
}

// ColorConfig is an RGBA palette entry. A is opacity in [0, 1].
type ColorConfig struct {
	R uint8   `yaml:"r"`
	G uint8   `yaml:"g"`
	B uint8   `yaml:"b"`
	A float64 `yaml:"a"`
}

// BackgroundConfig controls the water behind the fish.
type BackgroundConfig struct {
	R     uint8   `yaml:"r"`
	G     uint8   `yaml:"g"`
	B     uint8   `yaml:"b"`
	Noise float64 `yaml:"noise"` // brightness swing in [0, 1], 0 = flat color
	Scale float64 `yaml:"scale"` // noise feature size in pixels
	Cell  int     `yaml:"cell"`  // pixels per noise sample
	Seed  int64   `yaml:"seed"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow int `yaml:"stats_window"` // ticks per stats record
	PerfWindow  int `yaml:"perf_window"`  // ticks averaged by the perf collector
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	DriftAngle         float64 // radians
	BreakawayTurnAngle float64 // radians
	PointerInfluence   float64 // resolved for the variant
	Flocking           bool
	Drift              bool
	Breakaway          bool
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Defaults returns a fresh copy of the embedded defaults.
func Defaults() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults are invalid: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// Validate checks values that would leave the swarm undefined.
func (c *Config) Validate() error {
	switch c.Variant {
	case VariantFull, VariantFlocking, VariantAttract:
	default:
		return fmt.Errorf("unknown variant %q", c.Variant)
	}

	switch c.Population.Mode {
	case PopulationDensity:
		if c.Population.Density < 0 {
			return fmt.Errorf("population density must be >= 0, got %v", c.Population.Density)
		}
	case PopulationFixed:
		if c.Population.Count < 0 {
			return fmt.Errorf("population count must be >= 0, got %d", c.Population.Count)
		}
	default:
		return fmt.Errorf("unknown population mode %q", c.Population.Mode)
	}

	if c.Flock.MaxSpeed <= 0 {
		return fmt.Errorf("flock max_speed must be > 0, got %v", c.Flock.MaxSpeed)
	}
	if c.Flock.BreakawayTurnInterval <= 0 {
		return fmt.Errorf("flock breakaway_turn_interval must be > 0, got %d", c.Flock.BreakawayTurnInterval)
	}
	if c.Background.Cell < 1 || c.Background.Scale <= 0 {
		return fmt.Errorf("background cell and scale must be positive, got %d and %v",
			c.Background.Cell, c.Background.Scale)
	}
	if len(c.Palette) == 0 {
		return fmt.Errorf("palette must have at least one color")
	}
	return nil
}

// SetVariant switches the variant and recomputes derived values.
func (c *Config) SetVariant(variant string) error {
	prev := c.Variant
	c.Variant = variant
	if err := c.Validate(); err != nil {
		c.Variant = prev
		return err
	}
	c.computeDerived()
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.DriftAngle = c.Flock.DriftAngleDeg * math.Pi / 180
	c.Derived.BreakawayTurnAngle = c.Flock.BreakawayTurnAngleDeg * math.Pi / 180

	c.Derived.Flocking = c.Variant != VariantAttract
	c.Derived.Drift = c.Variant == VariantFull
	c.Derived.Breakaway = c.Variant == VariantFull

	// The pointer-only variant pulls half as hard unless told otherwise
	c.Derived.PointerInfluence = c.Flock.PointerInfluence
	if c.Derived.PointerInfluence == 0 {
		c.Derived.PointerInfluence = 0.1
		if c.Variant == VariantAttract {
			c.Derived.PointerInfluence = 0.05
		}
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
