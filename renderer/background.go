package renderer

import (
	"image"
	"image/color"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/ojrac/opensimplex-go"

	"github.com/pthm-cable/shoal/config"
)

// Background clears the frame to a dim water color shaded by low-frequency
// simplex noise. The shading is baked into a small texture on resize and
// stretched over the window with bilinear filtering.
type Background struct {
	cfg   config.BackgroundConfig
	noise opensimplex.Noise

	tex           rl.Texture2D
	loaded        bool
	width, height int32
}

// NewBackground creates a background. Textures are built lazily on the first Draw.
func NewBackground(cfg config.BackgroundConfig) *Background {
	return &Background{
		cfg:   cfg,
		noise: opensimplex.New(cfg.Seed),
	}
}

// Base returns the flat clear color.
func (b *Background) Base() rl.Color {
	return rl.NewColor(b.cfg.R, b.cfg.G, b.cfg.B, 255)
}

// Resize rebuilds the shading texture for a new window size.
func (b *Background) Resize(width, height int32) {
	if width == b.width && height == b.height && b.loaded {
		return
	}
	b.Unload()
	b.width, b.height = width, height
	if b.cfg.Noise <= 0 || width <= 0 || height <= 0 {
		return
	}

	img := Shade(int(width), int(height), b.cfg, b.noise)
	rlImg := rl.NewImageFromImage(img)
	b.tex = rl.LoadTextureFromImage(rlImg)
	rl.UnloadImage(rlImg)
	rl.SetTextureFilter(b.tex, rl.FilterBilinear)
	b.loaded = true
}

// Draw clears the frame and paints the shading.
func (b *Background) Draw(width, height int32) {
	rl.ClearBackground(b.Base())

	b.Resize(width, height)
	if !b.loaded {
		return
	}
	src := rl.Rectangle{Width: float32(b.tex.Width), Height: float32(b.tex.Height)}
	dst := rl.Rectangle{Width: float32(width), Height: float32(height)}
	rl.DrawTexturePro(b.tex, src, dst, rl.Vector2{}, 0, rl.White)
}

// Unload frees the texture.
func (b *Background) Unload() {
	if b.loaded {
		rl.UnloadTexture(b.tex)
		b.loaded = false
	}
}

// Shade samples noise once per cell over a width x height window and returns
// the low-resolution image. Each pixel is the base color scaled by
// 1 + Noise*n, where n in [-1, 1] is the noise value.
func Shade(width, height int, cfg config.BackgroundConfig, noise opensimplex.Noise) *image.RGBA {
	cell := max(cfg.Cell, 1)
	cols := (width + cell - 1) / cell
	rows := (height + cell - 1) / cell
	img := image.NewRGBA(image.Rect(0, 0, cols, rows))

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			n := noise.Eval2(float64(x*cell)/cfg.Scale, float64(y*cell)/cfg.Scale)
			k := 1 + cfg.Noise*n
			img.SetRGBA(x, y, color.RGBA{
				R: channel(cfg.R, k),
				G: channel(cfg.G, k),
				B: channel(cfg.B, k),
				A: 255,
			})
		}
	}
	return img
}

func channel(v uint8, k float64) uint8 {
	return uint8(math.Max(0, math.Min(255, math.Round(float64(v)*k))))
}
