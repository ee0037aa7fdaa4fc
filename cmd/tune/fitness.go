package main

import (
	"math"
	"sync"

	"github.com/pthm-cable/shoal/config"
	"github.com/pthm-cable/shoal/game"
	"github.com/pthm-cable/shoal/telemetry"
)

// Target is the schooling behavior the tuner steers toward.
type Target struct {
	Polarization float64 // mean unit heading length, [0, 1]
	SpeedFrac    float64 // mean speed as a fraction of max speed
}

// FitnessEvaluator runs headless simulations and scores them.
type FitnessEvaluator struct {
	params     *ParamVector
	ticks      int32
	warmup     int32 // windows ending at or before this tick are ignored
	seeds      []int64
	baseConfig *config.Config
	target     Target

	// Viewport for each run, 0 = config screen size
	Width, Height int

	mu   sync.Mutex
	last Score
}

// Score summarizes one evaluation averaged over seeds.
type Score struct {
	Fitness      float64
	Polarization float64
	SpeedFrac    float64
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, ticks, warmup int32, seeds []int64, baseCfg *config.Config, target Target) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:     params,
		ticks:      ticks,
		warmup:     warmup,
		seeds:      seeds,
		baseConfig: baseCfg,
		target:     target,
	}
}

// LastScore returns the score from the most recent Evaluate call.
func (fe *FitnessEvaluator) LastScore() Score {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.last
}

// Evaluate computes fitness for raw parameter values (lower = better).
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	cfg := fe.copyConfig()
	fe.params.ApplyToConfig(cfg, x)

	// Seeds share nothing but the read-only config, so run them in parallel
	scores := make([]Score, len(fe.seeds))
	var wg sync.WaitGroup
	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			scores[idx] = fe.score(fe.runSimulation(cfg, s), cfg.Flock.MaxSpeed)
		}(i, seed)
	}
	wg.Wait()

	var avg Score
	for _, s := range scores {
		avg.Fitness += s.Fitness
		avg.Polarization += s.Polarization
		avg.SpeedFrac += s.SpeedFrac
	}
	n := float64(len(scores))
	avg.Fitness /= n
	avg.Polarization /= n
	avg.SpeedFrac /= n

	fe.mu.Lock()
	fe.last = avg
	fe.mu.Unlock()

	return avg.Fitness
}

// runSimulation executes one headless run and returns its stats windows.
func (fe *FitnessEvaluator) runSimulation(cfg *config.Config, seed int64) []telemetry.WindowStats {
	var windows []telemetry.WindowStats
	g := game.NewGameWithOptions(game.Options{
		Config:         cfg,
		Seed:           seed,
		Headless:       true,
		Width:          fe.Width,
		Height:         fe.Height,
		StepsPerUpdate: 1,
		StatsCallback: func(stats telemetry.WindowStats) {
			windows = append(windows, stats)
		},
	})
	defer g.Unload()

	for g.Tick() < fe.ticks {
		g.UpdateHeadless()
	}
	return windows
}

// score averages the post-warmup windows and measures the squared distance
// from the target. Runs with no usable window score +Inf.
func (fe *FitnessEvaluator) score(windows []telemetry.WindowStats, maxSpeed float64) Score {
	var pol, speed float64
	n := 0
	for _, w := range windows {
		if w.WindowEndTick <= fe.warmup || w.Population == 0 {
			continue
		}
		pol += w.Polarization
		speed += w.SpeedMean / maxSpeed
		n++
	}
	if n == 0 {
		return Score{Fitness: math.Inf(1)}
	}

	s := Score{
		Polarization: pol / float64(n),
		SpeedFrac:    speed / float64(n),
	}
	dp := s.Polarization - fe.target.Polarization
	ds := s.SpeedFrac - fe.target.SpeedFrac
	s.Fitness = dp*dp + ds*ds
	return s
}

// copyConfig returns a deep-enough copy of the base config for one evaluation.
func (fe *FitnessEvaluator) copyConfig() *config.Config {
	cfg := *fe.baseConfig
	cfg.Palette = append([]config.ColorConfig(nil), fe.baseConfig.Palette...)
	return &cfg
}
