package systems

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

var origin r2.Vec

// clampSpeed rescales v to maxSpeed when it is faster, keeping its heading.
func clampSpeed(v r2.Vec, maxSpeed float64) r2.Vec {
	speed := r2.Norm(v)
	if speed > maxSpeed {
		return r2.Scale(maxSpeed/speed, v)
	}
	return v
}

// rotate turns v by angle radians around the origin, preserving its length.
func rotate(v r2.Vec, angle float64) r2.Vec {
	return r2.Rotate(v, angle, origin)
}

// wrap teleports each out-of-range coordinate to the opposite edge.
// A coordinate past the far edge resets to 0; a negative one resets to the extent.
// Axes are independent, and this is not a modulo wrap.
func wrap(p r2.Vec, vp Viewport) r2.Vec {
	if p.X > vp.Width {
		p.X = 0
	}
	if p.X < 0 {
		p.X = vp.Width
	}
	if p.Y > vp.Height {
		p.Y = 0
	}
	if p.Y < 0 {
		p.Y = vp.Height
	}
	return p
}

// heading returns the direction of v in radians.
func heading(v r2.Vec) float64 {
	return math.Atan2(v.Y, v.X)
}
