package gamedata

import (
	"errors"
	"fmt"
	"math/rand"
)

// EnemyRegistry holds loaded enemy definitions and provides spawning utilities.
type EnemyRegistry struct {
	enemies     []EnemyDef
	totalWeight int
}

// NewEnemyRegistry creates a registry from loaded enemy definitions.
func NewEnemyRegistry(enemies []EnemyDef) *EnemyRegistry {
	totalWeight := 0
	for _, e := range enemies {
		totalWeight += e.SpawnWeight
	}
	return &EnemyRegistry{
		enemies:     enemies,
		totalWeight: totalWeight,
	}
}

// LoadEnemyRegistry loads and creates a registry from the embedded enemies.json.
func LoadEnemyRegistry() (*EnemyRegistry, error) {
	enemies, err := LoadEnemies()
	if err != nil {
		return nil, err
	}
	if len(enemies) == 0 {
		return nil, errors.New("no enemies loaded from enemies.json")
	}
	return NewEnemyRegistry(enemies), nil
}

// SpawnRandom selects a random enemy definition using weighted probability.
func (r *EnemyRegistry) SpawnRandom(rng *rand.Rand) *EnemyDef {
	if r.totalWeight <= 0 || len(r.enemies) == 0 {
		return nil
	}

	roll := rng.Intn(r.totalWeight)

	cumulative := 0
	for i := range r.enemies {
		cumulative += r.enemies[i].SpawnWeight
		if roll < cumulative {
			return &r.enemies[i]
		}
	}

	return &r.enemies[0]
}

// GetByID returns the enemy definition with the given ID, or nil if not found.
func (r *EnemyRegistry) GetByID(id string) *EnemyDef {
	for i := range r.enemies {
		if r.enemies[i].ID == id {
			return &r.enemies[i]
		}
	}
	return nil
}

// Count returns the number of enemy types in the registry.
func (r *EnemyRegistry) Count() int {
	return len(r.enemies)
}

// =============================================================================
// Roster
// =============================================================================

// Roster holds the two primary fighters of a match.
type Roster struct {
	Player   FighterDef
	Opponent FighterDef
}

// NewRoster picks the player and opponent out of the loaded fighter definitions.
func NewRoster(fighters []FighterDef) (*Roster, error) {
	var roster Roster
	var havePlayer, haveOpponent bool
	for _, f := range fighters {
		switch f.Role {
		case RolePlayer:
			roster.Player = f
			havePlayer = true
		case RoleOpponent:
			roster.Opponent = f
			haveOpponent = true
		}
	}
	if !havePlayer {
		return nil, fmt.Errorf("roster has no fighter with role %q", RolePlayer)
	}
	if !haveOpponent {
		return nil, fmt.Errorf("roster has no fighter with role %q", RoleOpponent)
	}
	return &roster, nil
}

// LoadRoster loads the roster from the embedded fighters.json.
func LoadRoster() (*Roster, error) {
	fighters, err := LoadFighters()
	if err != nil {
		return nil, err
	}
	return NewRoster(fighters)
}
