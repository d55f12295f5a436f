// Package ai provides control policies for computer-driven characters.
//
// Policies are stateless and reactive: each tick they look at the current
// positions of self and target and issue intents. Randomness comes from an
// injected *rand.Rand so a seeded match replays identically.
package ai

import (
	"math/rand"

	"github.com/samdwyer/shinobiduel/internal/combat"
	"github.com/samdwyer/shinobiduel/internal/entity"
)

const (
	// DefaultAttackChance is the per-tick probability of swinging at the target.
	DefaultAttackChance = 0.02
	// DefaultJumpChance is the per-tick probability of jumping while grounded.
	DefaultJumpChance = 0.01
)

// Chaser drives the AI opponent: it runs at the target at full speed, swings
// now and then and occasionally jumps.
type Chaser struct {
	rng          *rand.Rand
	AttackChance float64
	JumpChance   float64
}

// NewChaser creates a chaser with the default probabilities.
func NewChaser(rng *rand.Rand) *Chaser {
	return &Chaser{
		rng:          rng,
		AttackChance: DefaultAttackChance,
		JumpChance:   DefaultJumpChance,
	}
}

// Control issues this tick's intents. Both rolls are drawn every tick so the
// random stream does not depend on game state.
func (c *Chaser) Control(self, target *entity.Character) {
	if c.rng.Float64() < c.AttackChance {
		self.Attack(target, combat.KindBasic)
	}

	if target.X < self.X {
		self.MoveLeft()
	} else if target.X > self.X {
		self.MoveRight()
	}

	if c.rng.Float64() < c.JumpChance && !self.Jumping {
		self.Jump()
	}
}

// Pursuer drives a leveled secondary enemy: it walks at the target at its own
// speed, stops when lined up and swings now and then. It never jumps.
type Pursuer struct {
	rng          *rand.Rand
	Speed        float64
	AttackChance float64
}

// NewPursuer creates a pursuer walking at the given speed.
func NewPursuer(rng *rand.Rand, speed float64) *Pursuer {
	return &Pursuer{
		rng:          rng,
		Speed:        speed,
		AttackChance: DefaultAttackChance,
	}
}

// Control issues this tick's intents.
func (p *Pursuer) Control(self, target *entity.Character) {
	if p.rng.Float64() < p.AttackChance {
		self.Attack(target, combat.KindBasic)
	}

	switch {
	case target.X < self.X:
		self.VX = -p.Speed
		self.FacingRight = false
	case target.X > self.X:
		self.VX = p.Speed
		self.FacingRight = true
	default:
		self.VX = 0
	}
}

// Ensure the policies implement entity.Controller
var (
	_ entity.Controller = (*Chaser)(nil)
	_ entity.Controller = (*Pursuer)(nil)
)
