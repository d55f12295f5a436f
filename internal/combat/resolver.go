package combat

// Combatant is the interface for anything that can deal or take contact damage.
type Combatant interface {
	GetName() string
	Bounds() Box
	IsAttacking() bool
	IsAlive() bool
	TakeDamage(amount float64) float64 // Returns actual damage taken
}

// Contact is an ordered pair checked for contact damage: Attacker hurts Defender.
type Contact struct {
	Attacker Combatant
	Defender Combatant
	Damage   float64
}

// Hit records contact damage that was applied during a resolver pass.
type Hit struct {
	Attacker string
	Defender string
	Damage   float64
}

// Resolver applies contact damage once per tick, after every fighter has moved.
type Resolver struct{}

// NewResolver creates a new contact resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve checks each contact in order and applies its damage when the two boxes
// overlap and the attacker is mid-attack. Nil combatants are skipped.
func (r *Resolver) Resolve(contacts []Contact) []Hit {
	var hits []Hit
	for _, c := range contacts {
		if c.Attacker == nil || c.Defender == nil {
			continue
		}
		if !c.Attacker.IsAttacking() {
			continue
		}
		if !c.Attacker.Bounds().Overlaps(c.Defender.Bounds()) {
			continue
		}
		dealt := c.Defender.TakeDamage(c.Damage)
		hits = append(hits, Hit{
			Attacker: c.Attacker.GetName(),
			Defender: c.Defender.GetName(),
			Damage:   dealt,
		})
	}
	return hits
}

// Mutual returns the two ordered contacts between a pair of fighters.
func Mutual(a, b Combatant, damage float64) []Contact {
	return []Contact{
		{Attacker: a, Defender: b, Damage: damage},
		{Attacker: b, Defender: a, Damage: damage},
	}
}
