package renderer

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestFishSilhouetteWinding(t *testing.T) {
	s := FishSilhouette()

	for name, piece := range map[string][]r2.Vec{"body": s.Body, "tail": s.Tail} {
		if len(piece) < 3 {
			t.Fatalf("%s has %d vertices", name, len(piece))
		}
		if a := signedArea(piece); a >= 0 {
			t.Errorf("%s signed area = %v, want counter-clockwise on screen (< 0)", name, a)
		}
		// Every fan triangle from the first vertex must wind the same way
		for i := 1; i+1 < len(piece); i++ {
			tri := []r2.Vec{piece[0], piece[i], piece[i+1]}
			if a := signedArea(tri); a > 1e-12 {
				t.Errorf("%s fan triangle %d flips winding (area %v)", name, i, a)
			}
		}
	}
}

func TestFishSilhouetteShape(t *testing.T) {
	s := FishSilhouette()

	if s.Body[0] != (r2.Vec{X: 0.8, Y: 0}) {
		t.Errorf("body fan center = %v, want the nose", s.Body[0])
	}

	minX, maxX := math.Inf(1), math.Inf(-1)
	for _, p := range append(append([]r2.Vec{}, s.Body...), s.Tail...) {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		if math.Abs(p.Y) > 0.8 {
			t.Errorf("vertex %v wider than the head", p)
		}
	}
	if maxX != 0.8 || minX != -2.8 {
		t.Errorf("length spans [%v, %v], want [-2.8, 0.8]", minX, maxX)
	}
}

func TestPlace(t *testing.T) {
	piece := []r2.Vec{{X: 0.8, Y: 0}, {X: -2.8, Y: 0}}

	tests := []struct {
		name    string
		x, y    float64
		heading float64
		size    float64
		want    []r2.Vec
	}{
		{"identity", 0, 0, 0, 1, piece},
		{"scaled and moved", 10, 20, 0, 2, []r2.Vec{{X: 11.6, Y: 20}, {X: 4.4, Y: 20}}},
		{"facing down", 0, 0, math.Pi / 2, 1, []r2.Vec{{X: 0, Y: 0.8}, {X: 0, Y: -2.8}}},
		{"facing left", 5, 5, math.Pi, 1, []r2.Vec{{X: 4.2, Y: 5}, {X: 7.8, Y: 5}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Place(nil, piece, tt.x, tt.y, tt.heading, tt.size)
			for i := range tt.want {
				if r2.Norm(r2.Sub(got[i], tt.want[i])) > 1e-9 {
					t.Errorf("vertex %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}
