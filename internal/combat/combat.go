// Package combat provides hit boxes, attack rules and contact-damage resolution.
package combat

// =============================================================================
// COMBAT MODEL
// =============================================================================
//
// Damage reaches a fighter through two independent channels:
//
// 1. Initiation: when an attack starts (basic or special) and the target is in
//    range, the attack's base damage is applied once. The attacker then stays
//    in the attacking state for the attack's duration and cannot start another.
//
// 2. Contact: every tick, for each ordered pair of overlapping fighters, if the
//    first one is attacking the second takes a flat contact damage.
//
// Both channels are active at the same time. A basic attack landed while the
// fighters overlap deals its burst plus contact damage for every tick of the
// swing.
//
// Range is an asymmetric box (100 across, 50 up/down) measured between the
// top-left corners of the two fighters, not a geometric distance.

const (
	// AttackRange is the horizontal reach of an attack.
	AttackRange = 100.0
	// VerticalReach is how far above or below the target an attack still lands.
	VerticalReach = 50.0
	// BuffMultiplier scales outgoing damage while the Sharingan is active.
	BuffMultiplier = 1.5

	// FighterContactDamage is applied between the two primary fighters.
	FighterContactDamage = 5.0
	// EnemyContactDamage is applied to secondary enemies.
	EnemyContactDamage = 10.0
)

// Kind identifies an attack.
type Kind int

const (
	// KindBasic is the free, short attack.
	KindBasic Kind = iota
	// KindSpecial costs chakra and has a cooldown.
	KindSpecial
)

// String returns a human-readable attack name.
func (k Kind) String() string {
	switch k {
	case KindBasic:
		return "basic"
	case KindSpecial:
		return "special"
	default:
		return "unknown"
	}
}

// BaseDamage returns the unbuffed initiation damage of the attack.
func (k Kind) BaseDamage() float64 {
	switch k {
	case KindBasic:
		return 10
	case KindSpecial:
		return 30
	default:
		return 0
	}
}

// Duration returns how many ticks the attacker stays in the attacking state.
func (k Kind) Duration() int {
	switch k {
	case KindBasic:
		return 20
	case KindSpecial:
		return 30
	default:
		return 0
	}
}

// Scale applies the buff multiplier to a damage amount.
func Scale(amount float64, buffed bool) float64 {
	if buffed {
		return amount * BuffMultiplier
	}
	return amount
}
