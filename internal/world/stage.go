// Package world describes the fixed fighting stage.
package world

import "math"

const (
	// Stage dimensions in stage units (pixels in the original canvas).
	Width  = 800.0
	Height = 600.0

	// GroundHeight is the height of the grass band drawn at the bottom of the stage.
	GroundHeight = 100.0
)

// Stage is the rectangle fighters live in. The floor is the bottom edge.
type Stage struct {
	Width  float64
	Height float64
}

// Default returns the 800x600 stage every match is played on.
func Default() Stage {
	return Stage{Width: Width, Height: Height}
}

// Floor returns the y coordinate a fighter's bottom edge rests on.
func (s Stage) Floor() float64 {
	return s.Height
}

// GroundLine returns the y coordinate where the grass band starts.
func (s Stage) GroundLine() float64 {
	return s.Height - GroundHeight
}

// ClampX keeps a box of the given width inside [0, Width-w].
func (s Stage) ClampX(x, w float64) float64 {
	if x < 0 {
		return 0
	}
	if x+w > s.Width {
		return s.Width - w
	}
	return x
}

// Contains returns true if the point lies on the stage.
func (s Stage) Contains(x, y float64) bool {
	return x >= 0 && x < s.Width && y >= 0 && y < s.Height
}

// TerrainAt returns the backdrop feature visible at the given stage point.
// Ground is in front of mountains, which are in front of the sun and clouds.
func (s Stage) TerrainAt(x, y float64) Terrain {
	if !s.Contains(x, y) {
		return TerrainNone
	}
	if y >= s.GroundLine() {
		return TerrainGround
	}
	for _, m := range mountains {
		if m.contains(x, y) {
			return TerrainMountain
		}
	}
	if math.Hypot(x-(s.Width-50), y-50) <= 30 {
		return TerrainSun
	}
	for _, c := range clouds {
		if c.contains(x, y) {
			return TerrainCloud
		}
	}
	return TerrainSky
}
