package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/shoal/components"
	"github.com/pthm-cable/shoal/systems"
)

// FishRenderer paints each fish as a filled silhouette along its heading.
type FishRenderer struct {
	shape   Silhouette
	palette []rl.Color

	// scratch buffers reused across fish
	placed []r2.Vec
	points []rl.Vector2
}

// NewFishRenderer creates a renderer for the given palette.
func NewFishRenderer(palette components.Palette) *FishRenderer {
	f := &FishRenderer{shape: FishSilhouette()}
	f.SetPalette(palette)
	return f
}

// SetPalette replaces the fill colors.
func (f *FishRenderer) SetPalette(palette components.Palette) {
	f.palette = f.palette[:0]
	for i := range palette {
		c := palette.At(components.Color(i))
		f.palette = append(f.palette, rl.NewColor(c.R, c.G, c.B, c.A))
	}
}

// Draw paints every fish in the flock.
func (f *FishRenderer) Draw(flock *systems.Flock) {
	for i, n := 0, flock.Len(); i < n; i++ {
		a := flock.At(i)
		f.DrawFish(a.Pos.X, a.Pos.Y, a.Heading(), a.Body.Size, f.color(a.Body.Color))
	}
}

// DrawFish paints one silhouette at (x, y) facing heading.
func (f *FishRenderer) DrawFish(x, y, heading, size float64, color rl.Color) {
	f.fill(f.shape.Body, x, y, heading, size, color)
	f.fill(f.shape.Tail, x, y, heading, size, color)
}

func (f *FishRenderer) fill(piece []r2.Vec, x, y, heading, size float64, color rl.Color) {
	f.placed = Place(f.placed[:0], piece, x, y, heading, size)
	f.points = f.points[:0]
	for _, p := range f.placed {
		f.points = append(f.points, rl.Vector2{X: float32(p.X), Y: float32(p.Y)})
	}
	rl.DrawTriangleFan(f.points, color)
}

func (f *FishRenderer) color(c components.Color) rl.Color {
	if len(f.palette) == 0 {
		return rl.White
	}
	return f.palette[int(c)%len(f.palette)]
}
