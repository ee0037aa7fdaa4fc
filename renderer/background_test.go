package renderer

import (
	"testing"

	"github.com/ojrac/opensimplex-go"

	"github.com/pthm-cable/shoal/config"
)

func testBackground() config.BackgroundConfig {
	return config.BackgroundConfig{R: 40, G: 100, B: 200, Noise: 0.5, Scale: 100, Cell: 8, Seed: 3}
}

func TestShadeSize(t *testing.T) {
	tests := []struct {
		width, height int
		cols, rows    int
	}{
		{800, 600, 100, 75},
		{801, 600, 101, 75},
		{7, 7, 1, 1},
	}

	for _, tt := range tests {
		img := Shade(tt.width, tt.height, testBackground(), opensimplex.New(1))
		b := img.Bounds()
		if b.Dx() != tt.cols || b.Dy() != tt.rows {
			t.Errorf("Shade(%d, %d) is %dx%d, want %dx%d", tt.width, tt.height, b.Dx(), b.Dy(), tt.cols, tt.rows)
		}
	}
}

func TestShadeStaysNearBase(t *testing.T) {
	cfg := testBackground()
	img := Shade(400, 400, cfg, opensimplex.New(cfg.Seed))

	varied := false
	for i := 0; i < len(img.Pix); i += 4 {
		r, g, b, a := img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3]
		if a != 255 {
			t.Fatalf("pixel %d alpha = %d, want opaque", i/4, a)
		}
		// Noise is within [-1, 1], so each channel stays within base*(1 -/+ 0.5)
		if r < 20 || r > 60 || g < 50 || g > 150 || b < 100 {
			t.Fatalf("pixel %d = (%d, %d, %d) outside the shading range", i/4, r, g, b)
		}
		if b != 200 {
			varied = true
		}
	}
	if !varied {
		t.Error("expected noise to vary the shading")
	}
}

func TestShadeFlatWithoutNoise(t *testing.T) {
	cfg := testBackground()
	cfg.Noise = 0
	img := Shade(64, 64, cfg, opensimplex.New(1))

	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 40 || img.Pix[i+1] != 100 || img.Pix[i+2] != 200 {
			t.Fatalf("pixel %d = %v, want the flat base color", i/4, img.Pix[i:i+4])
		}
	}
}
