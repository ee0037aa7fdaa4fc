// Package systems implements the fish motion model and the flock that runs it.
package systems

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// Step advances one fish by one tick and returns its new state.
//
// self is the fish's index in others and is skipped during the neighbor scan.
// others is read as-is, so when the caller writes results back in place,
// fish later in the order see this tick's state for fish earlier in the order.
func Step(a Agent, self int, others Neighbors, env Env, p *Params, rng Source) Agent {
	if a.Breakaway.Active {
		a = stepBreakaway(a, p, rng)
	} else {
		if p.Features.Flocking {
			a.Vel = flock(a, self, others, p)
		}
		a.Vel = attract(a.Pos, a.Vel, env.Pointer, p)
		if p.Features.Drift {
			a.Vel = drift(a.Vel, p, rng)
		}
		if p.Features.Breakaway && rng.Float64() < p.BreakawayChance {
			a.Breakaway.Active = true
			a.Breakaway.Timer = p.BreakawayDuration
		}
	}

	// Limit speed (always apply)
	a.Vel = clampSpeed(a.Vel, p.MaxSpeed)

	a.Pos = r2.Add(a.Pos, a.Vel)
	a.Pos = wrap(a.Pos, env.Viewport)
	return a
}

// stepBreakaway runs one tick of the leader state machine. Every
// BreakawayTurnInterval ticks the fish veers by a fixed angle, or picks a
// fresh random velocity when it is too slow to have a heading.
func stepBreakaway(a Agent, p *Params, rng Source) Agent {
	if a.Breakaway.Timer%p.BreakawayTurnInterval == 0 {
		if r2.Norm(a.Vel) < p.MinTurnSpeed {
			a.Vel.X = (rng.Float64() - 0.5) * p.Speed * 2
			a.Vel.Y = (rng.Float64() - 0.5) * p.Speed * 2
		} else {
			turn := p.BreakawayTurnAngle
			if rng.Float64() < 0.5 {
				turn = -turn
			}
			a.Vel = rotate(a.Vel, turn)
		}
	}

	a.Breakaway.Timer--
	if a.Breakaway.Timer <= 0 {
		a.Breakaway.Active = false
	}
	return a
}
