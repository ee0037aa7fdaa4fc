package systems

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/shoal/components"
)

// Agent is a value snapshot of one fish. Step takes and returns Agents
// so no two fish ever alias the same state.
type Agent struct {
	Pos       r2.Vec
	Vel       r2.Vec
	Body      components.Body
	Breakaway components.Breakaway
}

// NewAgent spawns a fish at a random position inside vp with a slow random velocity.
func NewAgent(rng Source, vp Viewport, p *Params) Agent {
	a := Agent{}
	a.Pos.X = rng.Float64() * vp.Width
	a.Pos.Y = rng.Float64() * vp.Height
	a.Vel.X = (rng.Float64() - 0.5) * p.Speed
	a.Vel.Y = (rng.Float64() - 0.5) * p.Speed
	a.Body.Size = rng.Float64()*sizeRange + minSize

	colors := max(p.Colors, 1)
	c := int(rng.Float64() * float64(colors))
	if c >= colors {
		c = colors - 1
	}
	a.Body.Color = components.Color(c)
	return a
}

// Heading returns the direction of travel in radians.
func (a Agent) Heading() float64 {
	return heading(a.Vel)
}

// Speed returns the velocity magnitude.
func (a Agent) Speed() float64 {
	return r2.Norm(a.Vel)
}

// Neighbors is the read view of the flock that Step scans.
type Neighbors interface {
	Len() int
	At(i int) Agent
}

// AgentList is a Neighbors backed by a plain slice.
type AgentList []Agent

// Len returns the number of agents.
func (l AgentList) Len() int { return len(l) }

// At returns agent i.
func (l AgentList) At(i int) Agent { return l[i] }
