package combat

import "math"

// Box is an axis-aligned rectangle in stage coordinates, anchored at its top-left corner.
type Box struct {
	X, Y          float64
	Width, Height float64
}

// Overlaps returns true if this box overlaps another. Touching edges do not overlap.
func (b Box) Overlaps(other Box) bool {
	return b.X < other.X+other.Width &&
		b.X+b.Width > other.X &&
		b.Y < other.Y+other.Height &&
		b.Y+b.Height > other.Y
}

// InRange returns true if target is within attack reach of attacker.
func InRange(attacker, target Box) bool {
	return math.Abs(attacker.X-target.X) < AttackRange &&
		math.Abs(attacker.Y-target.Y) < VerticalReach
}
