package systems

import (
	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/shoal/components"
)

// Flock owns every live fish. Fish are ECS entities; entities keeps them in
// collection order so resize truncates from the tail and Tick updates in order.
type Flock struct {
	world  *ecs.World
	mapper *ecs.Map4[
		components.Position,
		components.Velocity,
		components.Body,
		components.Breakaway,
	]
	filter *ecs.Filter4[
		components.Position,
		components.Velocity,
		components.Body,
		components.Breakaway,
	]

	entities []ecs.Entity
	viewport Viewport
	pop      Population
	params   *Params
	rng      Source
}

// Census summarizes the flock for telemetry.
type Census struct {
	Population int
	Breakaway  int
	Speeds     []float64

	// Polarization is the length of the mean unit heading: 1 when every
	// moving fish swims the same way, near 0 when headings cancel out.
	Polarization float64
}

// NewFlock creates an empty flock. Call Resize to populate it.
// params is shared, so edits made by the caller apply from the next tick.
func NewFlock(params *Params, pop Population, rng Source) *Flock {
	world := ecs.NewWorld()
	return &Flock{
		world: world,
		mapper: ecs.NewMap4[
			components.Position,
			components.Velocity,
			components.Body,
			components.Breakaway,
		](world),
		filter: ecs.NewFilter4[
			components.Position,
			components.Velocity,
			components.Body,
			components.Breakaway,
		](world),
		pop:    pop,
		params: params,
		rng:    rng,
	}
}

// Resize adopts a new viewport and grows or truncates the flock to the
// population target. New fish are appended; surplus fish are dropped from the
// tail regardless of their state.
func (f *Flock) Resize(vp Viewport) (added, removed int) {
	f.viewport = vp
	target := f.pop.Target(vp)
	current := len(f.entities)

	switch {
	case target > current:
		for i := current; i < target; i++ {
			f.spawn(NewAgent(f.rng, vp, f.params))
		}
		return target - current, 0
	case target < current:
		for _, e := range f.entities[target:] {
			f.world.RemoveEntity(e)
		}
		clear(f.entities[target:])
		f.entities = f.entities[:target]
		return 0, current - target
	}
	return 0, 0
}

// Tick steps every fish once, in collection order, writing each result back
// before the next fish reads the flock. It returns how many fish started a
// breakaway this tick.
func (f *Flock) Tick(ptr Pointer) (started int) {
	env := Env{Viewport: f.viewport, Pointer: ptr}
	for i, e := range f.entities {
		cur := f.load(e)
		next := Step(cur, i, f, env, f.params, f.rng)
		if next.Breakaway.Active && !cur.Breakaway.Active {
			started++
		}
		f.store(e, next)
	}
	return started
}

// Len returns the number of fish.
func (f *Flock) Len() int {
	return len(f.entities)
}

// At returns a snapshot of fish i.
func (f *Flock) At(i int) Agent {
	return f.load(f.entities[i])
}

// Set overwrites the state of fish i.
func (f *Flock) Set(i int, a Agent) {
	f.store(f.entities[i], a)
}

// Agents appends snapshots of every fish, in order, to dst.
func (f *Flock) Agents(dst []Agent) []Agent {
	for _, e := range f.entities {
		dst = append(dst, f.load(e))
	}
	return dst
}

// Viewport returns the current viewport.
func (f *Flock) Viewport() Viewport {
	return f.viewport
}

// Params returns the shared tunables.
func (f *Flock) Params() *Params {
	return f.params
}

// Census counts breakaway fish and collects speeds. dst is reused for speeds.
func (f *Flock) Census(dst []float64) Census {
	c := Census{Speeds: dst[:0]}

	var headings r2.Vec
	query := f.filter.Query()
	for query.Next() {
		_, vel, _, br := query.Get()
		c.Population++
		if br.Active {
			c.Breakaway++
		}
		speed := r2.Norm(r2.Vec(*vel))
		c.Speeds = append(c.Speeds, speed)
		if speed > 0 {
			headings = r2.Add(headings, r2.Scale(1/speed, r2.Vec(*vel)))
		}
	}
	if c.Population > 0 {
		c.Polarization = r2.Norm(headings) / float64(c.Population)
	}
	return c
}

func (f *Flock) spawn(a Agent) {
	pos := components.Position(a.Pos)
	vel := components.Velocity(a.Vel)
	body := a.Body
	br := a.Breakaway
	f.entities = append(f.entities, f.mapper.NewEntity(&pos, &vel, &body, &br))
}

func (f *Flock) load(e ecs.Entity) Agent {
	pos, vel, body, br := f.mapper.Get(e)
	return Agent{
		Pos:       r2.Vec(*pos),
		Vel:       r2.Vec(*vel),
		Body:      *body,
		Breakaway: *br,
	}
}

func (f *Flock) store(e ecs.Entity, a Agent) {
	pos, vel, body, br := f.mapper.Get(e)
	*pos = components.Position(a.Pos)
	*vel = components.Velocity(a.Vel)
	*body = a.Body
	*br = a.Breakaway
}
