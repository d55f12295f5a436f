// Package entity provides the fighters that take part in a match.
package entity

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/samdwyer/shinobiduel/internal/combat"
	"github.com/samdwyer/shinobiduel/internal/world"
)

// Controller drives a character once per tick, after its own Tick.
// The player's character has no controller; its intents come from input.
type Controller interface {
	Control(self, target *Character)
}

// Character is a fighter on the stage: the player, the AI opponent or a secondary enemy.
type Character struct {
	Name  string
	Color colorful.Color
	Level int // 0 for the primary fighters

	X, Y          float64 // Top-left corner
	VX, VY        float64
	Width, Height float64

	Health, MaxHealth float64
	Chakra, MaxChakra float64

	Jumping     bool
	Sharingan   bool
	Attacking   bool
	FacingRight bool

	SpecialCooldown int
	AttackDuration  int
	JumpCooldown    int
	AttackAnimation int
	AttackDirection int // 1 right, -1 left, set when a swing starts
	Jumps           int

	Controller Controller

	stage          world.Stage
	spawnX, spawnY float64
}

// New creates a character at full resources on the default stage.
func New(name string, color colorful.Color, x, y, width, height, health, chakra float64) *Character {
	c := &Character{
		Name:      name,
		Color:     color,
		Width:     width,
		Height:    height,
		MaxHealth: health,
		MaxChakra: chakra,
		stage:     world.Default(),
		spawnX:    x,
		spawnY:    y,
	}
	c.Reset()
	return c
}

// Reset restores full resources, the spawn position and clears all timers and flags.
func (c *Character) Reset() {
	c.X, c.Y = c.spawnX, c.spawnY
	c.VX, c.VY = 0, 0
	c.Health = c.MaxHealth
	c.Chakra = c.MaxChakra
	c.Jumping = false
	c.Sharingan = false
	c.Attacking = false
	c.FacingRight = true
	c.SpecialCooldown = 0
	c.AttackDuration = 0
	c.JumpCooldown = 0
	c.AttackAnimation = 0
	c.AttackDirection = 1
	c.Jumps = 0
}

// =============================================================================
// Intents
// =============================================================================

// MoveLeft starts moving left at full speed.
func (c *Character) MoveLeft() {
	c.VX = -MoveSpeed
	c.FacingRight = false
}

// MoveRight starts moving right at full speed.
func (c *Character) MoveRight() {
	c.VX = MoveSpeed
	c.FacingRight = true
}

// StopMoving zeroes horizontal velocity.
func (c *Character) StopMoving() {
	c.VX = 0
}

// Jump launches the character if it has a jump left and is not recharging.
// The second jump in the air starts a one second recharge.
func (c *Character) Jump() bool {
	if c.Jumps >= MaxJumps || c.JumpCooldown > 0 {
		return false
	}
	c.VY = JumpForce
	c.Jumping = true
	c.Jumps++
	if c.Jumps == MaxJumps {
		c.JumpCooldown = JumpCooldownTicks
	}
	return true
}

// Attack swings at the opponent. The swing animation always plays; damage only
// lands if the underlying attack is legal.
func (c *Character) Attack(opponent *Character, kind combat.Kind) bool {
	var landed bool
	switch kind {
	case combat.KindBasic:
		landed = c.BasicAttack(opponent)
	case combat.KindSpecial:
		landed = c.SpecialAttack(opponent)
	}
	c.AttackAnimation = AttackAnimTicks
	if c.FacingRight {
		c.AttackDirection = 1
	} else {
		c.AttackDirection = -1
	}
	return landed
}

// BasicAttack hits the opponent if it is in range and no attack is in progress.
func (c *Character) BasicAttack(opponent *Character) bool {
	if opponent == nil || !c.IsInRange(opponent) || c.Attacking {
		return false
	}
	c.strike(opponent, combat.KindBasic)
	return true
}

// SpecialAttack hits harder at the cost of chakra and a cooldown.
func (c *Character) SpecialAttack(opponent *Character) bool {
	if opponent == nil ||
		c.Chakra < SpecialChakraCost ||
		c.SpecialCooldown > 0 ||
		!c.IsInRange(opponent) ||
		c.Attacking {
		return false
	}
	c.strike(opponent, combat.KindSpecial)
	c.Chakra -= SpecialChakraCost
	c.SpecialCooldown = SpecialCooldownTicks
	return true
}

func (c *Character) strike(opponent *Character, kind combat.Kind) {
	opponent.TakeDamage(combat.Scale(kind.BaseDamage(), c.Sharingan))
	c.Attacking = true
	c.AttackDuration = kind.Duration()
}

// ActivateSharingan toggles the buff. Turning it on needs at least 10 chakra.
func (c *Character) ActivateSharingan() bool {
	if c.Sharingan {
		c.Sharingan = false
		return true
	}
	if c.Chakra < SharinganMinChakra {
		return false
	}
	c.Sharingan = true
	return true
}

// UseKamui teleports beside the opponent: behind it relative to our facing.
// Bounds are enforced on the next tick.
func (c *Character) UseKamui(opponent *Character) bool {
	if opponent == nil || c.Chakra < KamuiChakraCost {
		return false
	}
	if c.FacingRight {
		c.X = opponent.X - KamuiOffset
	} else {
		c.X = opponent.X + KamuiOffset
	}
	c.Chakra -= KamuiChakraCost
	return true
}

// =============================================================================
// Simulation
// =============================================================================

// Update advances the character one tick and then lets its controller act.
func (c *Character) Update(target *Character) {
	c.Tick()
	if c.Controller != nil && target != nil {
		c.Controller.Control(c, target)
	}
}

// Tick advances physics, resources and timers by one frame. Order matters.
// Passive chakra regen pauses while the Sharingan is active.
func (c *Character) Tick() {
	c.X += c.VX
	c.Y += c.VY
	c.VY += Gravity

	if c.Y+c.Height > c.stage.Floor() {
		c.Y = c.stage.Floor() - c.Height
		c.VY = 0
		c.Jumping = false
		c.Jumps = 0
	}

	c.X = c.stage.ClampX(c.X, c.Width)

	if !c.Sharingan && c.Chakra < ChakraRegenCap {
		c.Chakra += ChakraRegen
	}

	if c.SpecialCooldown > 0 {
		c.SpecialCooldown--
	}
	if c.AttackDuration > 0 {
		c.AttackDuration--
	}
	if c.AttackDuration == 0 {
		c.Attacking = false
	}
	if c.JumpCooldown > 0 {
		c.JumpCooldown--
	}
	if c.AttackAnimation > 0 {
		c.AttackAnimation--
	}

	if c.Sharingan {
		c.Chakra -= SharinganDrain
		if c.Chakra <= chakraEpsilon {
			c.Sharingan = false
			c.Chakra = 0
		}
	}
}

// IsInRange returns true if the opponent is within attack reach.
func (c *Character) IsInRange(opponent *Character) bool {
	return combat.InRange(c.Bounds(), opponent.Bounds())
}

// IsColliding returns true if the two hit boxes overlap.
func (c *Character) IsColliding(other *Character) bool {
	return c.Bounds().Overlaps(other.Bounds())
}

// OnGround returns true if the character stands on the floor.
func (c *Character) OnGround() bool {
	return c.Y+c.Height >= c.stage.Floor()
}

// =============================================================================
// Combatant interface implementation
// =============================================================================

// GetName returns the character's name.
func (c *Character) GetName() string { return c.Name }

// Bounds returns the hit box.
func (c *Character) Bounds() combat.Box {
	return combat.Box{X: c.X, Y: c.Y, Width: c.Width, Height: c.Height}
}

// IsAttacking returns true while an attack is in progress.
func (c *Character) IsAttacking() bool { return c.Attacking }

// IsAlive returns true if the character has health remaining.
func (c *Character) IsAlive() bool { return c.Health > 0 }

// TakeDamage reduces health, clamping at zero, and returns actual damage taken.
func (c *Character) TakeDamage(amount float64) float64 {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if actual > c.Health {
		actual = c.Health
	}
	c.Health -= actual
	return actual
}

// Ensure Character implements combat.Combatant
var _ combat.Combatant = (*Character)(nil)
