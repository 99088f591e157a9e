package diorama

import (
	"math"
	"testing"
)

func TestCommandGeoM(t *testing.T) {
	proj := buildProjection(800, 600)
	obj := NewSprite("hero.png", LayerCharacter, 5)
	cmd := DrawCommand{
		Transform: resolveTransform(proj, obj),
		Texture:   &Texture{Path: "hero.png", Width: 64, Height: 64},
	}
	m := commandGeoM(cmd)

	// A unit sprite at the world origin fills a 300px square centered on
	// the viewport. Image coordinates are Y-down, so the top-left texel
	// lands at the square's top-left corner.
	tests := []struct {
		name   string
		ix, iy float64 // image pixel
		wx, wy float64 // expected screen pixel
	}{
		{"center", 32, 32, 400, 300},
		{"top-left", 0, 0, 250, 150},
		{"bottom-right", 64, 64, 550, 450},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gx, gy := m.Apply(tt.ix, tt.iy)
			if math.Abs(gx-tt.wx) > 1e-9 || math.Abs(gy-tt.wy) > 1e-9 {
				t.Errorf("(%v,%v) -> (%v,%v), want (%v,%v)", tt.ix, tt.iy, gx, gy, tt.wx, tt.wy)
			}
		})
	}
}

func TestCommandGeoMNonSquareTexture(t *testing.T) {
	// The quad mapping is per-axis, so a non-square image still covers the
	// full [-1, 1] quad.
	cmd := DrawCommand{
		Transform: identityTransform,
		Texture:   &Texture{Path: "wide.png", Width: 128, Height: 32},
	}
	m := commandGeoM(cmd)

	gx, gy := m.Apply(0, 0)
	if gx != -1 || gy != 1 {
		t.Errorf("top-left -> (%v,%v), want (-1, 1)", gx, gy)
	}
	gx, gy = m.Apply(128, 32)
	if gx != 1 || gy != -1 {
		t.Errorf("bottom-right -> (%v,%v), want (1, -1)", gx, gy)
	}
}
