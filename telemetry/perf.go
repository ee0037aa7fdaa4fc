package telemetry

import (
	"log/slog"
	"math"
	"time"

	"gonum.org/v1/gonum/floats"
)

// Phase names for one simulation tick.
const (
	PhaseResize    = "resize"
	PhaseFlock     = "flock"
	PhaseTelemetry = "telemetry"
)

// phases lists every phase in reporting order.
var phases = []string{PhaseResize, PhaseFlock, PhaseTelemetry}

// PerfCollector times ticks and their phases over a rolling window.
type PerfCollector struct {
	window int
	filled int
	next   int

	tickUS  []float64            // tick durations in microseconds, ring buffer
	phaseUS map[string][]float64 // per-phase durations, same ring indexing

	tickStart  time.Time
	phaseStart time.Time
	phase      string
	current    map[string]time.Duration

	lastFrame time.Time
	frame     time.Duration
}

// NewPerfCollector creates a collector averaging over window ticks.
func NewPerfCollector(window int) *PerfCollector {
	if window < 1 {
		window = 60
	}
	p := &PerfCollector{
		window:  window,
		tickUS:  make([]float64, window),
		phaseUS: make(map[string][]float64),
		current: make(map[string]time.Duration),
	}
	return p
}

// StartTick begins timing a new tick.
func (p *PerfCollector) StartTick() {
	p.tickStart = time.Now()
	p.phase = ""
	clear(p.current)
}

// StartPhase ends the running phase, if any, and starts timing phase.
func (p *PerfCollector) StartPhase(phase string) {
	now := time.Now()
	p.closePhase(now)
	p.phase = phase
	p.phaseStart = now
}

// EndTick ends the running phase and records the tick.
func (p *PerfCollector) EndTick() {
	now := time.Now()
	p.closePhase(now)

	p.tickUS[p.next] = micros(now.Sub(p.tickStart))
	for phase, d := range p.current {
		ring, ok := p.phaseUS[phase]
		if !ok {
			ring = make([]float64, p.window)
			p.phaseUS[phase] = ring
		}
		ring[p.next] = micros(d)
	}
	// Phases skipped this tick count as zero
	for phase, ring := range p.phaseUS {
		if _, ok := p.current[phase]; !ok {
			ring[p.next] = 0
		}
	}

	p.next = (p.next + 1) % p.window
	if p.filled < p.window {
		p.filled++
	}
}

// RecordFrame records the time since the previous rendered frame.
func (p *PerfCollector) RecordFrame() {
	now := time.Now()
	if !p.lastFrame.IsZero() {
		p.frame = now.Sub(p.lastFrame)
	}
	p.lastFrame = now
}

func (p *PerfCollector) closePhase(now time.Time) {
	if p.phase != "" {
		p.current[p.phase] += now.Sub(p.phaseStart)
	}
}

func micros(d time.Duration) float64 {
	return float64(d) / float64(time.Microsecond)
}

// PerfStats holds aggregated performance statistics.
type PerfStats struct {
	AvgTickDuration time.Duration
	MinTickDuration time.Duration
	MaxTickDuration time.Duration

	PhaseAvg map[string]time.Duration
	PhasePct map[string]float64 // share of average tick time, in percent

	TicksPerSecond float64

	FrameDuration time.Duration
	FPS           float64
}

// Stats aggregates the samples currently in the window.
func (p *PerfCollector) Stats() PerfStats {
	s := PerfStats{
		PhaseAvg:      make(map[string]time.Duration),
		PhasePct:      make(map[string]float64),
		FrameDuration: p.frame,
	}
	if p.frame > 0 {
		s.FPS = float64(time.Second) / float64(p.frame)
	}
	if p.filled == 0 {
		return s
	}

	ticks := p.tickUS[:p.filled]
	if p.filled == p.window {
		ticks = p.tickUS
	}
	n := float64(len(ticks))
	avg := floats.Sum(ticks) / n

	s.AvgTickDuration = fromMicros(avg)
	s.MinTickDuration = fromMicros(floats.Min(ticks))
	s.MaxTickDuration = fromMicros(floats.Max(ticks))
	if avg > 0 {
		s.TicksPerSecond = 1e6 / avg
	}

	for phase, ring := range p.phaseUS {
		phaseAvg := floats.Sum(ring[:len(ticks)]) / n
		s.PhaseAvg[phase] = fromMicros(phaseAvg)
		if avg > 0 {
			s.PhasePct[phase] = phaseAvg / avg * 100
		}
	}
	return s
}

func fromMicros(us float64) time.Duration {
	return time.Duration(us * float64(time.Microsecond))
}

// LogStats logs performance statistics.
func (s PerfStats) LogStats() {
	attrs := []any{
		"avg_tick_us", s.AvgTickDuration.Microseconds(),
		"min_tick_us", s.MinTickDuration.Microseconds(),
		"max_tick_us", s.MaxTickDuration.Microseconds(),
		"ticks_per_sec", int(s.TicksPerSecond),
	}
	if s.FPS > 0 {
		attrs = append(attrs, "fps", int(s.FPS))
	}
	for _, phase := range phases {
		if pct, ok := s.PhasePct[phase]; ok && pct > 0.1 {
			attrs = append(attrs, phase+"_pct", roundPct(pct))
		}
	}
	slog.Info("perf", attrs...)
}

// roundPct rounds a percentage to one decimal place.
func roundPct(pct float64) float64 {
	return math.Round(pct*10) / 10
}

// PerfStatsCSV is a flat struct for CSV export of performance stats.
type PerfStatsCSV struct {
	WindowEnd    int32   `csv:"window_end"`
	AvgTickUS    int64   `csv:"avg_tick_us"`
	MinTickUS    int64   `csv:"min_tick_us"`
	MaxTickUS    int64   `csv:"max_tick_us"`
	TicksPerSec  float64 `csv:"ticks_per_sec"`
	FPS          float64 `csv:"fps"`
	ResizePct    float64 `csv:"resize_pct"`
	FlockPct     float64 `csv:"flock_pct"`
	TelemetryPct float64 `csv:"telemetry_pct"`
}

// ToCSV converts PerfStats to a flat CSV-friendly struct.
func (s PerfStats) ToCSV(windowEnd int32) PerfStatsCSV {
	return PerfStatsCSV{
		WindowEnd:    windowEnd,
		AvgTickUS:    s.AvgTickDuration.Microseconds(),
		MinTickUS:    s.MinTickDuration.Microseconds(),
		MaxTickUS:    s.MaxTickDuration.Microseconds(),
		TicksPerSec:  s.TicksPerSecond,
		FPS:          s.FPS,
		ResizePct:    s.PhasePct[PhaseResize],
		FlockPct:     s.PhasePct[PhaseFlock],
		TelemetryPct: s.PhasePct[PhaseTelemetry],
	}
}
