// Package game drives the flock: it owns the viewport, pointer, random
// source, and telemetry, and runs either headless or in a raylib window.
package game

import (
	"log/slog"
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/shoal/components"
	"github.com/pthm-cable/shoal/config"
	"github.com/pthm-cable/shoal/renderer"
	"github.com/pthm-cable/shoal/systems"
	"github.com/pthm-cable/shoal/telemetry"
	"github.com/pthm-cable/shoal/ui"
)

// Options configures a Game.
type Options struct {
	Config         *config.Config // nil = config.Cfg()
	Seed           int64
	LogStats       bool
	OutputDir      string
	Headless       bool
	StepsPerUpdate int
	Width, Height  int  // headless viewport, 0 = config screen size
	OrbitPointer   bool // drive the pointer around a circle instead of the mouse

	// StatsCallback, if set, receives every flushed stats window.
	StatsCallback func(telemetry.WindowStats)
}

// Game holds the complete simulation state.
type Game struct {
	cfg    config.Config
	rng    *rand.Rand
	params *systems.Params
	flock  *systems.Flock

	viewport systems.Viewport // requested; applied to the flock at the next tick
	pointer  systems.Pointer
	orbit    bool

	tick           int32
	paused         bool
	stepsPerUpdate int
	headless       bool

	// Telemetry
	collector     *telemetry.Collector
	perfCollector *telemetry.PerfCollector
	outputManager *telemetry.OutputManager
	logStats      bool
	statsCallback func(telemetry.WindowStats)
	speeds        []float64

	// Rendering, nil when headless
	background *renderer.Background
	fish       *renderer.FishRenderer
	hud        *ui.HUD
	panel      *ui.Panel
}

// NewGameWithOptions creates a game. The config is copied, so later edits
// to it do not reach the game.
// In windowed mode the raylib window must already be open.
func NewGameWithOptions(opts Options) *Game {
	base := opts.Config
	if base == nil {
		base = config.Cfg()
	}
	cfg := *base
	params := systems.ParamsFromConfig(&cfg)
	rng := rand.New(rand.NewSource(opts.Seed))

	g := &Game{
		cfg:            cfg,
		rng:            rng,
		params:         &params,
		flock:          systems.NewFlock(&params, systems.PopulationFromConfig(&cfg), rng),
		orbit:          opts.OrbitPointer,
		stepsPerUpdate: max(opts.StepsPerUpdate, 1),
		headless:       opts.Headless,
		collector:      telemetry.NewCollector(cfg.Telemetry.StatsWindow),
		perfCollector:  telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow),
		logStats:       opts.LogStats,
		statsCallback:  opts.StatsCallback,
	}

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		slog.Error("failed to create output manager", "error", err)
	}
	g.outputManager = om
	if err := g.outputManager.WriteConfig(&g.cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
	}

	if opts.Headless {
		w, h := opts.Width, opts.Height
		if w <= 0 || h <= 0 {
			w, h = cfg.Screen.Width, cfg.Screen.Height
		}
		g.viewport = systems.Viewport{Width: float64(w), Height: float64(h)}
	} else {
		g.viewport = systems.Viewport{
			Width:  float64(rl.GetScreenWidth()),
			Height: float64(rl.GetScreenHeight()),
		}
		g.background = renderer.NewBackground(cfg.Background)
		g.fish = renderer.NewFishRenderer(components.PaletteFromConfig(cfg.Palette))
		g.hud = ui.NewHUD()
		g.panel = ui.NewPanel(float32(g.viewport.Width)-panelWidth-10, 10, panelWidth)
	}

	g.syncViewport()
	return g
}

// panelWidth is the tuning panel width in pixels.
const panelWidth = 260

// Tick returns the number of simulation ticks run so far.
func (g *Game) Tick() int32 {
	return g.tick
}

// Flock returns the simulated flock.
func (g *Game) Flock() *systems.Flock {
	return g.flock
}

// Params returns the live tunables shared with the flock.
func (g *Game) Params() *systems.Params {
	return g.params
}

// SetViewport requests a new viewport size, applied at the next tick.
func (g *Game) SetViewport(width, height float64) {
	g.viewport = systems.Viewport{Width: width, Height: height}
}

// SetPointer sets the pointer used by subsequent ticks.
func (g *Game) SetPointer(p systems.Pointer) {
	g.pointer = p
}

// Unload releases rendering resources and closes output files.
func (g *Game) Unload() {
	if g.background != nil {
		g.background.Unload()
	}
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}
