package world

import "math"

// Terrain is a backdrop feature of the stage.
type Terrain rune

const (
	TerrainNone     Terrain = 0
	TerrainSky      Terrain = ' '
	TerrainCloud    Terrain = '~'
	TerrainSun      Terrain = 'O'
	TerrainMountain Terrain = '^'
	TerrainGround   Terrain = '"'
)

// Rune returns the terrain's display character.
func (t Terrain) Rune() rune {
	if t == TerrainNone {
		return ' '
	}
	return rune(t)
}

// String returns a human-readable terrain name.
func (t Terrain) String() string {
	switch t {
	case TerrainSky:
		return "sky"
	case TerrainCloud:
		return "cloud"
	case TerrainSun:
		return "sun"
	case TerrainMountain:
		return "mountain"
	case TerrainGround:
		return "ground"
	default:
		return "none"
	}
}

// mountain is an isosceles triangle standing on baseY.
type mountain struct {
	x, baseY, width, height float64
}

func (m mountain) contains(x, y float64) bool {
	if x < m.x || x > m.x+m.width || y > m.baseY {
		return false
	}
	half := m.width / 2
	dist := math.Abs(x - (m.x + half))
	top := m.baseY - m.height*(1-dist/half)
	return y >= top
}

// cloud is three overlapping puffs around an anchor point.
type cloud struct {
	x, y, size float64
}

func (c cloud) contains(x, y float64) bool {
	puffs := [3][3]float64{
		{c.x, c.y, c.size * 0.5},
		{c.x + c.size*0.35, c.y - c.size*0.2, c.size * 0.4},
		{c.x + c.size*0.7, c.y, c.size * 0.5},
	}
	for _, p := range puffs {
		if math.Hypot(x-p[0], y-p[1]) <= p[2] {
			return true
		}
	}
	return false
}

var mountains = []mountain{
	{x: 0, baseY: Height, width: 300, height: 200},
	{x: 250, baseY: Height, width: 350, height: 250},
	{x: 500, baseY: Height, width: 400, height: 300},
}

var clouds = []cloud{
	{x: 100, y: 100, size: 60},
	{x: 300, y: 50, size: 80},
	{x: 600, y: 120, size: 70},
}
