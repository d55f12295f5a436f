package entity

import (
	"math/rand"

	"github.com/samdwyer/shinobiduel/internal/gamedata"
)

// NewFighter creates a primary fighter from a roster definition.
func NewFighter(def *gamedata.FighterDef) *Character {
	return New(def.Name, def.BodyColor(), def.X, def.Y, def.Width, def.Height, def.Health, def.Chakra)
}

// NewEnemy creates a leveled secondary enemy at x. Its body color is rolled from rng.
func NewEnemy(def *gamedata.EnemyDef, x float64, level int, rng *rand.Rand) *Character {
	c := New(def.Name, def.RandomColor(rng), x, def.SpawnY, def.Width, def.Height, def.HealthAt(level), def.Chakra)
	c.Level = level
	return c
}
