package gamedata

import (
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

// EnemyDef defines a secondary enemy type loaded from JSON.
// Health and speed grow linearly with the level the enemy is spawned at.
type EnemyDef struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Width          float64 `json:"width"`
	Height         float64 `json:"height"`
	SpawnY         float64 `json:"spawnY"`
	BaseHealth     float64 `json:"baseHealth"`
	HealthPerLevel float64 `json:"healthPerLevel"`
	Chakra         float64 `json:"chakra"`
	BaseSpeed      float64 `json:"baseSpeed"`
	SpeedPerLevel  float64 `json:"speedPerLevel"`
	RedMin         int     `json:"redMin"` // Body color is a random shade of red in [RedMin, RedMax]
	RedMax         int     `json:"redMax"`
	SpawnWeight    int     `json:"spawnWeight"` // Relative spawn frequency (higher = more common)
}

// HealthAt returns the starting health of an enemy of the given level.
func (e *EnemyDef) HealthAt(level int) float64 {
	return e.BaseHealth + float64(level)*e.HealthPerLevel
}

// SpeedAt returns the chase speed of an enemy of the given level.
func (e *EnemyDef) SpeedAt(level int) float64 {
	return e.BaseSpeed + float64(level)*e.SpeedPerLevel
}

// RandomColor picks a body color from the definition's red range.
func (e *EnemyDef) RandomColor(rng *rand.Rand) colorful.Color {
	lo, hi := e.RedMin, e.RedMax
	if hi < lo {
		lo, hi = hi, lo
	}
	red := lo + rng.Intn(hi-lo+1)
	return colorful.Color{R: float64(red) / 255}
}

// EnemiesFile represents the structure of enemies.json.
type EnemiesFile struct {
	Enemies []EnemyDef `json:"enemies"`
}

// LoadEnemies loads enemy definitions from the embedded enemies.json file.
func LoadEnemies() ([]EnemyDef, error) {
	file, err := Load[EnemiesFile]("enemies.json")
	if err != nil {
		return nil, err
	}
	return file.Enemies, nil
}
