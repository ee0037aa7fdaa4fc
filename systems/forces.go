package systems

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// flock applies alignment, cohesion, and separation from every fish within
// the perception radius and returns the new velocity.
//
// Breakaway neighbors pull immediately with an amplified cohesion term and are
// left out of the averages. The pull lands on the velocity before the
// alignment term reads it.
func flock(a Agent, self int, others Neighbors, p *Params) r2.Vec {
	vel := a.Vel
	var alignment, cohesion, separation r2.Vec
	total := 0

	leaderPull := p.CohesionForce * p.BreakawayAttractionMultiplier

	for i, n := 0, others.Len(); i < n; i++ {
		if i == self {
			continue
		}
		other := others.At(i)

		delta := r2.Sub(a.Pos, other.Pos)
		d := r2.Norm(delta)
		if d >= p.PerceptionRadius {
			continue
		}

		if other.Breakaway.Active {
			vel = r2.Add(vel, r2.Scale(leaderPull, r2.Sub(other.Pos, a.Pos)))
			continue
		}

		alignment = r2.Add(alignment, other.Vel)
		cohesion = r2.Add(cohesion, other.Pos)

		d2 := d * d
		if d2 == 0 {
			d2 = 1
		}
		separation = r2.Add(separation, r2.Scale(1/d2, delta))
		total++
	}

	if total == 0 {
		return vel
	}

	inv := 1 / float64(total)
	alignment = r2.Scale(inv, alignment)
	cohesion = r2.Scale(inv, cohesion)

	vel = r2.Add(vel, r2.Scale(p.AlignmentForce, r2.Sub(alignment, vel)))
	vel = r2.Add(vel, r2.Scale(p.CohesionForce, r2.Sub(cohesion, a.Pos)))
	vel = r2.Add(vel, r2.Scale(p.SeparationForce, separation))
	return vel
}

// attract pulls toward the pointer with a quadratic falloff that is 1 on the
// pointer and 0 at InteractionDist.
func attract(pos, vel r2.Vec, ptr Pointer, p *Params) r2.Vec {
	if !ptr.Valid {
		return vel
	}

	delta := r2.Sub(r2.Vec{X: ptr.X, Y: ptr.Y}, pos)
	d := r2.Norm(delta)
	if d >= p.InteractionDist || d == 0 {
		return vel
	}

	falloff := (p.InteractionDist - d) / p.InteractionDist
	force := falloff * falloff
	dir := r2.Scale(1/d, delta)
	return r2.Add(vel, r2.Scale(force*pointerGain*p.PointerInfluence, dir))
}

// drift randomly nudges the heading of a moving fish, keeping its speed.
func drift(vel r2.Vec, p *Params, rng Source) r2.Vec {
	if rng.Float64() >= p.DriftChance {
		return vel
	}
	if r2.Norm(vel) <= p.MinTurnSpeed {
		return vel
	}
	offset := (rng.Float64()*2 - 1) * p.DriftAngle
	return rotate(vel, offset)
}
