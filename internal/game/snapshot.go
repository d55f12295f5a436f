package game

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/samdwyer/shinobiduel/internal/entity"
	"github.com/samdwyer/shinobiduel/internal/particle"
)

// FighterView is a read-only copy of what the renderer and HUD need from a character.
type FighterView struct {
	Name            string
	Color           colorful.Color
	Level           int
	X, Y            float64
	Width, Height   float64
	Health          float64
	MaxHealth       float64
	Chakra          float64
	Sharingan       bool
	Attacking       bool
	FacingRight     bool
	AttackAnimation int
	AttackDirection int
}

// Snapshot is the state handed to the render collaborator once per frame.
// It shares no memory with the simulation.
type Snapshot struct {
	State     State
	Tick      int
	Level     int
	Winner    string
	Player    FighterView
	Opponent  FighterView
	Enemies   []FighterView
	Particles []particle.Particle
}

// Snapshot captures the current state for rendering.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		State:     g.state,
		Tick:      g.tick,
		Level:     g.level,
		Player:    viewOf(g.player),
		Opponent:  viewOf(g.opponent),
		Enemies:   make([]FighterView, 0, len(g.enemies)),
		Particles: g.particles.Particles(),
	}
	if g.winner != nil {
		snap.Winner = g.winner.Name
	}
	for _, e := range g.enemies {
		snap.Enemies = append(snap.Enemies, viewOf(e))
	}
	return snap
}

func viewOf(c *entity.Character) FighterView {
	return FighterView{
		Name:            c.Name,
		Color:           c.Color,
		Level:           c.Level,
		X:               c.X,
		Y:               c.Y,
		Width:           c.Width,
		Height:          c.Height,
		Health:          c.Health,
		MaxHealth:       c.MaxHealth,
		Chakra:          c.Chakra,
		Sharingan:       c.Sharingan,
		Attacking:       c.Attacking,
		FacingRight:     c.FacingRight,
		AttackAnimation: c.AttackAnimation,
		AttackDirection: c.AttackDirection,
	}
}
