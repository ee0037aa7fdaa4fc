package telemetry

// Collector accumulates events within tick windows and produces WindowStats.
type Collector struct {
	windowTicks     int32
	windowStartTick int32

	// Event counters for current window
	ticks           int
	pointerTicks    int
	breakawayStarts int
	spawned         int
	culled          int
}

// NewCollector creates a new stats collector flushing every windowTicks ticks.
func NewCollector(windowTicks int) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &Collector{windowTicks: int32(windowTicks)}
}

// RecordTick records one simulation tick.
func (c *Collector) RecordTick(pointerActive bool) {
	c.ticks++
	if pointerActive {
		c.pointerTicks++
	}
}

// RecordBreakawayStarts records fish that entered the breakaway state.
func (c *Collector) RecordBreakawayStarts(n int) {
	c.breakawayStarts += n
}

// RecordResize records fish spawned or culled by a population change.
func (c *Collector) RecordResize(added, removed int) {
	c.spawned += added
	c.culled += removed
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowTicks
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(currentTick int32, sample Sample) WindowStats {
	var pointerActive float64
	if c.ticks > 0 {
		pointerActive = float64(c.pointerTicks) / float64(c.ticks)
	}

	mean, p50, p90, maxSpeed := ComputeSpeedStats(sample.Speeds)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,

		Population:   sample.Population,
		Breakaway:    sample.Breakaway,
		Polarization: sample.Polarization,

		BreakawayStarts: c.breakawayStarts,
		Spawned:         c.spawned,
		Culled:          c.culled,

		SpeedMean: mean,
		SpeedP50:  p50,
		SpeedP90:  p90,
		SpeedMax:  maxSpeed,

		PointerActive: pointerActive,
	}

	// Reset for next window
	c.windowStartTick = currentTick
	c.ticks = 0
	c.pointerTicks = 0
	c.breakawayStarts = 0
	c.spawned = 0
	c.culled = 0

	return stats
}
