// Package renderer draws the flock with raylib.
package renderer

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// curveSamples is the number of segments each body curve is flattened into.
const curveSamples = 8

// Silhouette is a fish outline in body space: unit size, nose toward +X,
// screen orientation (Y down). It is split into two convex pieces so each
// can be filled as a triangle fan.
type Silhouette struct {
	Body []r2.Vec
	Tail []r2.Vec
}

// FishSilhouette builds the outline: a squat head tapering along two cubic
// curves into a forked tail.
func FishSilhouette() Silhouette {
	nose := r2.Vec{X: 0.8, Y: 0}
	tailTop := r2.Vec{X: -2.0, Y: 0.2}
	tailBottom := r2.Vec{X: -2.0, Y: -0.2}

	top := cubic(nose, r2.Vec{X: 0.4, Y: 0.8}, r2.Vec{X: -0.5, Y: 0.5}, tailTop, curveSamples)
	bottom := cubic(tailBottom, r2.Vec{X: -0.5, Y: -0.5}, r2.Vec{X: 0.4, Y: -0.8}, nose, curveSamples)

	// bottom ends back on the nose
	body := append(top, bottom[:len(bottom)-1]...)

	tail := []r2.Vec{
		tailTop,
		{X: -2.5, Y: 0.4},
		{X: -2.8, Y: 0},
		{X: -2.5, Y: -0.4},
		tailBottom,
	}

	// raylib fills counter-clockwise as seen on screen. The first vertex is
	// the fan center, so it stays put; the body is only star-shaped from the nose.
	s := Silhouette{Body: body, Tail: tail}
	for _, piece := range [][]r2.Vec{s.Body, s.Tail} {
		if signedArea(piece) > 0 {
			reverse(piece[1:])
		}
	}
	return s
}

// Place scales, rotates, and translates piece into screen space, appending to dst.
func Place(dst, piece []r2.Vec, x, y, heading, size float64) []r2.Vec {
	sin, cos := math.Sincos(heading)
	for _, p := range piece {
		dst = append(dst, r2.Vec{
			X: x + size*(p.X*cos-p.Y*sin),
			Y: y + size*(p.X*sin+p.Y*cos),
		})
	}
	return dst
}

// cubic samples a cubic Bezier curve at n+1 evenly spaced parameters.
func cubic(p0, p1, p2, p3 r2.Vec, n int) []r2.Vec {
	out := make([]r2.Vec, 0, n+1)
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		u := 1 - t
		p := r2.Scale(u*u*u, p0)
		p = r2.Add(p, r2.Scale(3*u*u*t, p1))
		p = r2.Add(p, r2.Scale(3*u*t*t, p2))
		p = r2.Add(p, r2.Scale(t*t*t, p3))
		out = append(out, p)
	}
	return out
}

// signedArea is positive for clockwise-on-screen polygons (Y down).
func signedArea(poly []r2.Vec) float64 {
	var a float64
	for i := range poly {
		j := (i + 1) % len(poly)
		a += r2.Cross(poly[i], poly[j])
	}
	return a / 2
}

func reverse(poly []r2.Vec) {
	for i, j := 0, len(poly)-1; i < j; i, j = i+1, j-1 {
		poly[i], poly[j] = poly[j], poly[i]
	}
}
