package world

import "testing"

func TestStageClampX(t *testing.T) {
	s := Default()
	tests := []struct {
		x, w     float64
		expected float64
	}{
		{-10, 50, 0},
		{0, 50, 0},
		{400, 50, 400},
		{750, 50, 750},
		{760, 50, 750},
	}

	for _, tt := range tests {
		got := s.ClampX(tt.x, tt.w)
		if got != tt.expected {
			t.Errorf("ClampX(%v, %v) = %v, want %v", tt.x, tt.w, got, tt.expected)
		}
	}
}

func TestStageLines(t *testing.T) {
	s := Default()
	if s.Floor() != 600 {
		t.Errorf("Floor() = %v, want 600", s.Floor())
	}
	if s.GroundLine() != 500 {
		t.Errorf("GroundLine() = %v, want 500", s.GroundLine())
	}
}

func TestTerrainAt(t *testing.T) {
	s := Default()
	tests := []struct {
		x, y     float64
		expected Terrain
	}{
		{10, 550, TerrainGround},
		{750, 50, TerrainSun},
		{100, 100, TerrainCloud},
		{425, 400, TerrainMountain},
		{450, 20, TerrainSky},
		{-1, 20, TerrainNone},
		{10, 600, TerrainNone},
	}

	for _, tt := range tests {
		got := s.TerrainAt(tt.x, tt.y)
		if got != tt.expected {
			t.Errorf("TerrainAt(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.expected)
		}
	}
}

func TestTerrainRune(t *testing.T) {
	if TerrainNone.Rune() != ' ' {
		t.Errorf("TerrainNone.Rune() = %q, want ' '", TerrainNone.Rune())
	}
	if TerrainGround.Rune() != '"' {
		t.Errorf("TerrainGround.Rune() = %q, want '\"'", TerrainGround.Rune())
	}
}
