package game

import (
	"log/slog"
	"math"

	"github.com/pthm-cable/shoal/systems"
	"github.com/pthm-cable/shoal/telemetry"
)

// orbitPeriod is the length in ticks of one scripted pointer lap.
const orbitPeriod = 720

// Update runs one frame in windowed mode.
func (g *Game) Update() {
	g.handleInput()

	if g.paused {
		g.syncViewport()
		return
	}
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.simulationStep()
	}
}

// UpdateHeadless runs stepsPerUpdate ticks without touching raylib.
func (g *Game) UpdateHeadless() {
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.simulationStep()
	}
}

// simulationStep runs one tick: apply any resize, step the flock, record telemetry.
func (g *Game) simulationStep() {
	g.perfCollector.StartTick()

	g.perfCollector.StartPhase(telemetry.PhaseResize)
	g.syncViewport()

	g.perfCollector.StartPhase(telemetry.PhaseFlock)
	ptr := g.pointer
	if g.orbit {
		ptr = orbitPointer(g.tick, g.flock.Viewport())
	}
	started := g.flock.Tick(ptr)
	g.tick++

	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	g.collector.RecordTick(ptr.Valid)
	g.collector.RecordBreakawayStarts(started)
	g.flushTelemetry()

	g.perfCollector.EndTick()
}

// syncViewport resizes the flock when the requested viewport changed.
func (g *Game) syncViewport() {
	if g.viewport == g.flock.Viewport() {
		return
	}
	added, removed := g.flock.Resize(g.viewport)
	g.collector.RecordResize(added, removed)
	if added > 0 || removed > 0 {
		slog.Debug("flock resized",
			"width", g.viewport.Width,
			"height", g.viewport.Height,
			"added", added,
			"removed", removed,
		)
	}
}

// applyVariant switches the motion model variant, keeping slider edits.
func (g *Game) applyVariant(variant string) {
	if err := g.cfg.SetVariant(variant); err != nil {
		slog.Error("failed to switch variant", "error", err)
		return
	}
	g.params.ApplyVariant(&g.cfg)
	slog.Info("variant changed", "variant", variant)
}

// resetParams discards slider edits.
func (g *Game) resetParams() {
	*g.params = systems.ParamsFromConfig(&g.cfg)
}

// orbitPointer circles the viewport center once every orbitPeriod ticks and
// lifts off for the last quarter of each lap.
func orbitPointer(tick int32, vp systems.Viewport) systems.Pointer {
	phase := tick % orbitPeriod
	if phase >= orbitPeriod*3/4 {
		return systems.Pointer{}
	}
	angle := 2 * math.Pi * float64(phase) / orbitPeriod
	r := 0.3 * min(vp.Width, vp.Height)
	sin, cos := math.Sincos(angle)
	return systems.PointerAt(vp.Width/2+r*cos, vp.Height/2+r*sin)
}
