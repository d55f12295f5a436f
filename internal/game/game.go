package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/shinobiduel/internal/ai"
	"github.com/samdwyer/shinobiduel/internal/combat"
	"github.com/samdwyer/shinobiduel/internal/entity"
	"github.com/samdwyer/shinobiduel/internal/gamedata"
	"github.com/samdwyer/shinobiduel/internal/particle"
	"github.com/samdwyer/shinobiduel/internal/telemetry"
	"github.com/samdwyer/shinobiduel/internal/world"
)

const (
	// particleSpawnChance is the per-tick probability of a new background particle.
	particleSpawnChance = 0.1
	// enemySpawnChance is the per-tick probability of topping up an enemy wave.
	enemySpawnChance = 0.1

	enemySpawnMinX = 50
	enemySpawnMaxX = world.Width - 100
)

// Game is the simulation context: it owns the fighters, enemies, particles and
// match state. It is not safe for concurrent use; Run drives it from one goroutine.
type Game struct {
	cfg       Config
	seed      int64
	rng       *rand.Rand
	roster    *gamedata.Roster
	enemyDefs *gamedata.EnemyRegistry
	resolver  *combat.Resolver

	player    *entity.Character
	opponent  *entity.Character
	enemies   []*entity.Character
	particles *particle.System

	state   State
	winner  *entity.Character
	level   int
	tick    int
	pending []Action

	matchID   uuid.UUID
	matchSpan trace.Span
	stats     matchStats
}

// matchStats are reported on the match span when it ends.
type matchStats struct {
	intents         int
	contactHits     int
	contactDamage   float64
	enemiesSpawned  int
	enemiesDefeated int
}

// New creates a game on the title screen. Fighter and enemy definitions come
// from the embedded game data.
func New(cfg Config) (*Game, error) {
	roster, err := gamedata.LoadRoster()
	if err != nil {
		return nil, fmt.Errorf("load roster: %w", err)
	}
	enemyDefs, err := gamedata.LoadEnemyRegistry()
	if err != nil {
		return nil, fmt.Errorf("load enemies: %w", err)
	}

	if cfg.Level < 1 {
		cfg.Level = 1
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	g := &Game{
		cfg:       cfg,
		seed:      seed,
		rng:       rng,
		roster:    roster,
		enemyDefs: enemyDefs,
		resolver:  combat.NewResolver(),
		player:    entity.NewFighter(&roster.Player),
		opponent:  entity.NewFighter(&roster.Opponent),
		particles: particle.NewSystem(world.Width, world.Height, rng),
		state:     StateStart,
		level:     cfg.Level,
	}
	g.opponent.Controller = ai.NewChaser(rng)
	return g, nil
}

// Start begins a new match, fully resetting fighters, enemies and particles.
// It is also the replay transition from the game-over screen.
func (g *Game) Start(ctx context.Context) {
	g.endMatchSpan("abandoned")

	g.player.Reset()
	g.opponent.Reset()
	g.enemies = nil
	g.particles.Reset()
	g.winner = nil
	g.level = g.cfg.Level
	g.tick = 0
	g.pending = g.pending[:0]
	g.stats = matchStats{}
	g.matchID = uuid.New()

	tracer := telemetry.Tracer("game")
	_, g.matchSpan = tracer.Start(ctx, "match")
	g.matchSpan.SetAttributes(
		attribute.String("match.id", g.matchID.String()),
		attribute.Int64("match.seed", g.seed),
		attribute.Int("match.level", g.level),
		attribute.Int("match.max_enemies", g.cfg.MaxEnemies),
		attribute.String("match.player", g.player.Name),
		attribute.String("match.opponent", g.opponent.Name),
	)

	g.state = StatePlaying
}

// Input accepts an intent from the input collaborator. While playing, intents
// are queued and applied at the start of the next Step; otherwise only the
// start trigger is honoured, immediately.
func (g *Game) Input(ctx context.Context, a Action) {
	switch g.state {
	case StateStart, StateOver:
		if a.startsMatch() {
			g.Start(ctx)
		}
	case StatePlaying:
		if a != ActionNone && a != ActionQuit && a != ActionStart {
			g.pending = append(g.pending, a)
		}
	}
}

// Step advances the match by one tick. It does nothing unless a match is in progress.
// Order: queued intents, player, opponent, enemies, contact damage, win check,
// enemy upkeep, particles.
func (g *Game) Step() {
	if g.state != StatePlaying {
		return
	}
	g.tick++

	for _, a := range g.pending {
		g.apply(a)
	}
	g.pending = g.pending[:0]

	g.player.Update(g.opponent)
	g.opponent.Update(g.player)
	for _, e := range g.enemies {
		e.Update(g.player)
	}

	g.resolveContacts()
	g.checkWinCondition()
	g.maintainEnemies()

	if g.rng.Float64() < particleSpawnChance {
		g.particles.Spawn()
	}
	g.particles.Tick()
}

// apply performs a queued intent on the player's fighter.
func (g *Game) apply(a Action) {
	g.stats.intents++
	p := g.player
	switch a {
	case ActionMoveLeft:
		p.MoveLeft()
	case ActionMoveRight:
		p.MoveRight()
	case ActionStop:
		p.StopMoving()
	case ActionJump:
		p.Jump()
	case ActionBasicAttack:
		p.Attack(g.opponent, combat.KindBasic)
	case ActionSpecialAttack:
		p.Attack(g.opponent, combat.KindSpecial)
	case ActionKamui:
		p.UseKamui(g.opponent)
	case ActionSharingan:
		p.ActivateSharingan()
	}
}

// resolveContacts applies contact damage for this tick. The player only hurts
// enemies by contact; enemies hurt the player through their own attacks.
func (g *Game) resolveContacts() {
	contacts := combat.Mutual(g.player, g.opponent, combat.FighterContactDamage)
	for _, e := range g.enemies {
		contacts = append(contacts, combat.Contact{
			Attacker: g.player,
			Defender: e,
			Damage:   combat.EnemyContactDamage,
		})
	}

	for _, hit := range g.resolver.Resolve(contacts) {
		g.stats.contactHits++
		g.stats.contactDamage += hit.Damage
	}
}

// checkWinCondition ends the match when the player falls, or when the opponent
// and every enemy on the stage have fallen.
func (g *Game) checkWinCondition() {
	switch {
	case !g.player.IsAlive():
		g.finish(g.opponent)
	case !g.opponent.IsAlive() && g.enemiesDefeated():
		g.finish(g.player)
	}
}

func (g *Game) enemiesDefeated() bool {
	for _, e := range g.enemies {
		if e.IsAlive() {
			return false
		}
	}
	return true
}

func (g *Game) finish(winner *entity.Character) {
	g.state = StateOver
	g.winner = winner
	if g.matchSpan != nil {
		g.matchSpan.SetAttributes(attribute.String("match.winner", winner.Name))
	}
	g.endMatchSpan("finished")
}

// endMatchSpan closes the match span, if one is open.
func (g *Game) endMatchSpan(outcome string) {
	if g.matchSpan == nil {
		return
	}
	g.matchSpan.SetAttributes(
		attribute.String("match.outcome", outcome),
		attribute.Int("match.ticks", g.tick),
		attribute.Int("match.intents", g.stats.intents),
		attribute.Int("match.contact_hits", g.stats.contactHits),
		attribute.Float64("match.contact_damage", g.stats.contactDamage),
		attribute.Int("match.enemies_spawned", g.stats.enemiesSpawned),
		attribute.Int("match.enemies_defeated", g.stats.enemiesDefeated),
		attribute.Float64("player.health", g.player.Health),
		attribute.Float64("opponent.health", g.opponent.Health),
	)
	g.matchSpan.End()
	g.matchSpan = nil
}

// maintainEnemies removes defeated enemies and, when waves are enabled, tops
// the wave up.
func (g *Game) maintainEnemies() {
	alive := g.enemies[:0]
	for _, e := range g.enemies {
		if e.IsAlive() {
			alive = append(alive, e)
		} else {
			g.stats.enemiesDefeated++
		}
	}
	for i := len(alive); i < len(g.enemies); i++ {
		g.enemies[i] = nil
	}
	g.enemies = alive

	if g.state != StatePlaying || g.cfg.MaxEnemies <= 0 {
		return
	}
	if len(g.enemies) == 0 || (len(g.enemies) < g.cfg.MaxEnemies && g.rng.Float64() < enemySpawnChance) {
		g.SpawnEnemy()
	}
}

// SpawnEnemy adds a leveled enemy at a random spot on the stage and returns it.
func (g *Game) SpawnEnemy() *entity.Character {
	def := g.enemyDefs.SpawnRandom(g.rng)
	if def == nil {
		return nil
	}
	x := float64(enemySpawnMinX + g.rng.Intn(int(enemySpawnMaxX-enemySpawnMinX)+1))
	e := entity.NewEnemy(def, x, g.level, g.rng)
	e.Controller = ai.NewPursuer(g.rng, def.SpeedAt(g.level))
	g.enemies = append(g.enemies, e)
	g.stats.enemiesSpawned++
	return e
}

// Close ends any open match span.
func (g *Game) Close() {
	g.endMatchSpan("abandoned")
}

// =============================================================================
// Accessors
// =============================================================================

// State returns the current game state.
func (g *Game) State() State { return g.state }

// Winner returns the winning fighter once the match is over, or nil.
func (g *Game) Winner() *entity.Character { return g.winner }

// Player returns the player's fighter.
func (g *Game) Player() *entity.Character { return g.player }

// Opponent returns the AI opponent.
func (g *Game) Opponent() *entity.Character { return g.opponent }

// Enemies returns the secondary enemies currently on the stage. The slice is a
// copy; the characters are live.
func (g *Game) Enemies() []*entity.Character {
	out := make([]*entity.Character, len(g.enemies))
	copy(out, g.enemies)
	return out
}

// Level returns the current level.
func (g *Game) Level() int { return g.level }

// Ticks returns the number of ticks simulated in the current match.
func (g *Game) Ticks() int { return g.tick }

// Seed returns the seed the game's random source was created with.
func (g *Game) Seed() int64 { return g.seed }

// ParticleCount returns the number of live particles.
func (g *Game) ParticleCount() int { return g.particles.Len() }
