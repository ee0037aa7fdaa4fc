package systems

import (
	"math"

	"github.com/pthm-cable/shoal/config"
)

// pointerGain scales the quadratic pointer falloff before the influence coefficient.
const pointerGain = 1.2

// Spawn size range.
const (
	minSize   = 2.0
	sizeRange = 3.0
)

// Features toggles the optional leaves of the motion model.
// Pointer attraction, speed clamp, and wraparound are always on.
type Features struct {
	Flocking  bool
	Drift     bool
	Breakaway bool
}

// Params holds the motion model tunables for one flock.
type Params struct {
	Speed            float64 // base speed for spawn and breakaway re-randomization
	MaxSpeed         float64
	PerceptionRadius float64

	AlignmentForce                float64
	CohesionForce                 float64
	SeparationForce               float64
	BreakawayAttractionMultiplier float64

	InteractionDist  float64
	PointerInfluence float64

	DriftChance float64
	DriftAngle  float64 // radians

	BreakawayChance       float64
	BreakawayDuration     int
	BreakawayTurnInterval int
	BreakawayTurnAngle    float64 // radians
	MinTurnSpeed          float64

	Colors   int // palette size
	Features Features
}

// ParamsFromConfig builds Params from a loaded config.
func ParamsFromConfig(cfg *config.Config) Params {
	f := cfg.Flock
	return Params{
		Speed:                         f.Speed,
		MaxSpeed:                      f.MaxSpeed,
		PerceptionRadius:              f.PerceptionRadius,
		AlignmentForce:                f.AlignmentForce,
		CohesionForce:                 f.CohesionForce,
		SeparationForce:               f.SeparationForce,
		BreakawayAttractionMultiplier: f.BreakawayAttractionMultiplier,
		InteractionDist:               f.InteractionDist,
		PointerInfluence:              cfg.Derived.PointerInfluence,
		DriftChance:                   f.DriftChance,
		DriftAngle:                    cfg.Derived.DriftAngle,
		BreakawayChance:               f.BreakawayChance,
		BreakawayDuration:             f.BreakawayDuration,
		BreakawayTurnInterval:         f.BreakawayTurnInterval,
		BreakawayTurnAngle:            cfg.Derived.BreakawayTurnAngle,
		MinTurnSpeed:                  f.MinTurnSpeed,
		Colors:                        len(cfg.Palette),
		Features: Features{
			Flocking:  cfg.Derived.Flocking,
			Drift:     cfg.Derived.Drift,
			Breakaway: cfg.Derived.Breakaway,
		},
	}
}

// ApplyVariant copies the variant-dependent values of cfg into p, leaving
// the force tunables as they are.
func (p *Params) ApplyVariant(cfg *config.Config) {
	p.PointerInfluence = cfg.Derived.PointerInfluence
	p.Features = Features{
		Flocking:  cfg.Derived.Flocking,
		Drift:     cfg.Derived.Drift,
		Breakaway: cfg.Derived.Breakaway,
	}
}

// Viewport is the drawable extent in pixels.
type Viewport struct {
	Width, Height float64
}

// Pointer is the last known cursor position. Valid is false when the
// cursor left the viewport or was never seen.
type Pointer struct {
	X, Y  float64
	Valid bool
}

// PointerAt returns a valid pointer at (x, y).
func PointerAt(x, y float64) Pointer {
	return Pointer{X: x, Y: y, Valid: true}
}

// Env is the per-tick simulation context handed to Step.
type Env struct {
	Viewport Viewport
	Pointer  Pointer
}

// Population decides how many fish a viewport holds.
type Population struct {
	Mode    string
	Density float64
	Count   int
}

// PopulationFromConfig builds a Population from a loaded config.
func PopulationFromConfig(cfg *config.Config) Population {
	return Population{
		Mode:    cfg.Population.Mode,
		Density: cfg.Population.Density,
		Count:   cfg.Population.Count,
	}
}

// Target returns the population for a viewport.
func (p Population) Target(vp Viewport) int {
	if p.Mode == config.PopulationFixed {
		return max(p.Count, 0)
	}
	n := int(math.Floor(vp.Width * vp.Height * p.Density))
	return max(n, 0)
}
