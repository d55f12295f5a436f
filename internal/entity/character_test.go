package entity

import (
	"math"
	"math/rand"
	"testing"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/samdwyer/shinobiduel/internal/combat"
	"github.com/samdwyer/shinobiduel/internal/gamedata"
)

// groundY puts a 80-tall character on the floor of the 600-tall stage.
const groundY = 520

func newTestCharacter(name string, x float64) *Character {
	return New(name, colorful.Color{R: 1}, x, groundY, 50, 80, 1000, 1000)
}

func TestNewCharacterFullResources(t *testing.T) {
	c := newTestCharacter("Obito", 100)

	if c.Health != 1000 || c.Chakra != 1000 {
		t.Errorf("New() health/chakra = %v/%v, want 1000/1000", c.Health, c.Chakra)
	}
	if !c.FacingRight {
		t.Error("New() should face right")
	}
	if c.Jumps != 0 || c.Attacking || c.Sharingan {
		t.Errorf("New() has leftover state: %+v", c)
	}
}

func TestMovement(t *testing.T) {
	c := newTestCharacter("Obito", 100)

	c.MoveLeft()
	if c.VX != -MoveSpeed || c.FacingRight {
		t.Errorf("MoveLeft() VX=%v facingRight=%v, want %v/false", c.VX, c.FacingRight, -MoveSpeed)
	}

	c.Tick()
	if c.X != 95 {
		t.Errorf("X after one tick left = %v, want 95", c.X)
	}

	c.MoveRight()
	if c.VX != MoveSpeed || !c.FacingRight {
		t.Errorf("MoveRight() VX=%v facingRight=%v, want %v/true", c.VX, c.FacingRight, MoveSpeed)
	}

	c.StopMoving()
	if c.VX != 0 {
		t.Errorf("StopMoving() VX = %v, want 0", c.VX)
	}
}

func TestTickClampsToStage(t *testing.T) {
	c := newTestCharacter("Obito", 2)
	c.MoveLeft()
	c.Tick()
	if c.X != 0 {
		t.Errorf("X after walking off left edge = %v, want 0", c.X)
	}

	c = newTestCharacter("Obito", 748)
	c.MoveRight()
	c.Tick()
	if c.X != 750 {
		t.Errorf("X after walking off right edge = %v, want 750", c.X)
	}
}

func TestTickFallsToFloor(t *testing.T) {
	c := New("Kakashi", colorful.Color{}, 600, 450, 50, 80, 1000, 1000)

	for i := 0; i < 60; i++ {
		c.Tick()
	}

	if c.Y != groundY {
		t.Errorf("Y after falling = %v, want %v", c.Y, float64(groundY))
	}
	if !c.OnGround() {
		t.Error("OnGround() = false after falling")
	}
}

func TestJumpDoubleJumpAndCooldown(t *testing.T) {
	c := newTestCharacter("Obito", 100)

	if !c.Jump() {
		t.Fatal("first Jump() rejected")
	}
	if c.VY != JumpForce || c.Jumps != 1 || !c.Jumping {
		t.Errorf("after first jump VY=%v jumps=%d jumping=%v", c.VY, c.Jumps, c.Jumping)
	}
	if c.JumpCooldown != 0 {
		t.Errorf("first jump set cooldown %d, want 0", c.JumpCooldown)
	}

	if !c.Jump() {
		t.Fatal("second Jump() rejected")
	}
	if c.Jumps != 2 || c.JumpCooldown != JumpCooldownTicks {
		t.Errorf("after second jump jumps=%d cooldown=%d, want 2/%d", c.Jumps, c.JumpCooldown, JumpCooldownTicks)
	}

	if c.Jump() {
		t.Error("third Jump() in the air should be rejected")
	}

	for i := 0; i < JumpCooldownTicks-1; i++ {
		c.Tick()
	}
	if !c.OnGround() || c.Jumps != 0 {
		t.Fatalf("character should have landed: y=%v jumps=%d", c.Y, c.Jumps)
	}
	if c.Jump() {
		t.Error("Jump() should be rejected one tick before the cooldown ends")
	}

	c.Tick()
	if !c.Jump() || !c.Jump() {
		t.Error("a new double jump should be available exactly 60 ticks after the second jump")
	}
}

func TestJumpsResetOnlyOnGround(t *testing.T) {
	c := newTestCharacter("Obito", 100)
	c.Jump()

	for i := 0; i < 5; i++ {
		c.Tick()
		if c.Jumps != 1 {
			t.Fatalf("tick %d: jumps = %d while airborne, want 1", i, c.Jumps)
		}
	}
}

func TestBasicAttack(t *testing.T) {
	a := newTestCharacter("Obito", 100)
	b := newTestCharacter("Kakashi", 180)

	if !a.BasicAttack(b) {
		t.Fatal("BasicAttack() in range rejected")
	}
	if b.Health != 990 {
		t.Errorf("target health = %v, want 990", b.Health)
	}
	if !a.Attacking || a.AttackDuration != 20 {
		t.Errorf("attacker state attacking=%v duration=%d, want true/20", a.Attacking, a.AttackDuration)
	}

	if a.BasicAttack(b) {
		t.Error("BasicAttack() while attacking should be a no-op")
	}
	if b.Health != 990 {
		t.Errorf("target health after rejected attack = %v, want 990", b.Health)
	}
}

func TestBasicAttackOutOfRange(t *testing.T) {
	a := newTestCharacter("Obito", 100)
	b := newTestCharacter("Kakashi", 200)

	if a.BasicAttack(b) {
		t.Error("BasicAttack() at distance 100 should miss")
	}
	if a.Attacking || b.Health != 1000 {
		t.Errorf("out of range attack changed state: attacking=%v health=%v", a.Attacking, b.Health)
	}
	if a.BasicAttack(nil) {
		t.Error("BasicAttack(nil) should be a no-op")
	}
}

func TestBasicAttackBuffed(t *testing.T) {
	a := newTestCharacter("Obito", 100)
	b := newTestCharacter("Kakashi", 150)
	a.ActivateSharingan()

	a.BasicAttack(b)
	if b.Health != 985 {
		t.Errorf("buffed basic attack left health %v, want 985", b.Health)
	}
}

func TestAttackingClearsAfterDuration(t *testing.T) {
	a := newTestCharacter("Obito", 100)
	b := newTestCharacter("Kakashi", 150)
	a.BasicAttack(b)

	for i := 0; i < 19; i++ {
		a.Tick()
	}
	if !a.Attacking {
		t.Error("attack ended before 20 ticks")
	}
	a.Tick()
	if a.Attacking {
		t.Error("attack still active after 20 ticks")
	}
}

func TestSpecialAttackChakraGate(t *testing.T) {
	a := newTestCharacter("Obito", 100)
	b := newTestCharacter("Kakashi", 150)

	a.Chakra = 19
	if a.SpecialAttack(b) {
		t.Error("SpecialAttack() with 19 chakra should be a no-op")
	}
	if b.Health != 1000 || a.Chakra != 19 {
		t.Errorf("rejected special changed state: health=%v chakra=%v", b.Health, a.Chakra)
	}

	a.Chakra = 20
	if !a.SpecialAttack(b) {
		t.Fatal("SpecialAttack() with 20 chakra rejected")
	}
	if a.Chakra != 0 {
		t.Errorf("chakra after special = %v, want 0", a.Chakra)
	}
	if b.Health != 970 {
		t.Errorf("target health = %v, want 970", b.Health)
	}
	if a.SpecialCooldown != SpecialCooldownTicks || a.AttackDuration != 30 {
		t.Errorf("cooldown=%d duration=%d, want %d/30", a.SpecialCooldown, a.AttackDuration, SpecialCooldownTicks)
	}

	a.Chakra = 1000
	if a.SpecialAttack(b) {
		t.Error("SpecialAttack() during cooldown should be a no-op")
	}
}

func TestSpecialAttackCooldownExpires(t *testing.T) {
	a := newTestCharacter("Obito", 100)
	b := newTestCharacter("Kakashi", 150)

	a.SpecialAttack(b)
	for i := 0; i < SpecialCooldownTicks-1; i++ {
		a.Tick()
	}
	if a.SpecialAttack(b) {
		t.Error("SpecialAttack() one tick before cooldown end should be rejected")
	}
	a.Tick()
	if !a.SpecialAttack(b) {
		t.Error("SpecialAttack() after cooldown should land")
	}
}

func TestAttackAlwaysAnimates(t *testing.T) {
	a := newTestCharacter("Obito", 100)
	far := newTestCharacter("Kakashi", 600)
	a.MoveLeft()

	if a.Attack(far, combat.KindBasic) {
		t.Error("Attack() out of range reported a hit")
	}
	if a.AttackAnimation != AttackAnimTicks {
		t.Errorf("AttackAnimation = %d, want %d", a.AttackAnimation, AttackAnimTicks)
	}
	if a.AttackDirection != -1 {
		t.Errorf("AttackDirection = %d, want -1", a.AttackDirection)
	}
}

func TestActivateSharingan(t *testing.T) {
	c := newTestCharacter("Obito", 100)

	c.Chakra = 9
	if c.ActivateSharingan() || c.Sharingan {
		t.Error("Sharingan should not turn on with 9 chakra")
	}

	c.Chakra = 10
	if !c.ActivateSharingan() || !c.Sharingan {
		t.Error("Sharingan should turn on with 10 chakra")
	}
	if c.Chakra != 10 {
		t.Errorf("toggling on consumed chakra: %v", c.Chakra)
	}

	c.Chakra = 0
	if !c.ActivateSharingan() || c.Sharingan {
		t.Error("Sharingan should always be able to turn off")
	}
}

func TestSharinganDrainsToZero(t *testing.T) {
	tests := []float64{10, 20, 55.5, 99.9}

	for _, start := range tests {
		c := newTestCharacter("Obito", 100)
		c.Chakra = start
		c.ActivateSharingan()

		limit := int(math.Ceil(start / SharinganDrain))
		ticks := 0
		for c.Sharingan && ticks <= limit {
			c.Tick()
			ticks++
		}

		if c.Sharingan {
			t.Errorf("chakra %v: buff still active after %d ticks", start, ticks)
		}
		if ticks > limit {
			t.Errorf("chakra %v: buff ended after %d ticks, want <= %d", start, ticks, limit)
		}
		if c.Chakra != 0 {
			t.Errorf("chakra %v: chakra after drain = %v, want 0", start, c.Chakra)
		}
	}
}

func TestChakraRegen(t *testing.T) {
	c := newTestCharacter("Obito", 100)

	c.Chakra = 50
	c.Tick()
	if math.Abs(c.Chakra-50.1) > 1e-9 {
		t.Errorf("chakra after regen tick = %v, want 50.1", c.Chakra)
	}

	c.Chakra = 99.95
	c.Tick()
	if c.Chakra <= 100 || c.Chakra > 100+ChakraRegen {
		t.Errorf("chakra overshoot = %v, want in (100, %v]", c.Chakra, 100+ChakraRegen)
	}
	before := c.Chakra
	c.Tick()
	if c.Chakra != before {
		t.Errorf("chakra regenerated above cap: %v -> %v", before, c.Chakra)
	}

	c.Chakra = 1000
	c.Tick()
	if c.Chakra != 1000 {
		t.Errorf("full chakra changed on tick: %v", c.Chakra)
	}
}

func TestUseKamui(t *testing.T) {
	a := newTestCharacter("Obito", 100)
	b := newTestCharacter("Kakashi", 400)

	if !a.UseKamui(b) {
		t.Fatal("UseKamui() rejected with full chakra")
	}
	if a.X != 300 || a.Chakra != 970 {
		t.Errorf("after Kamui facing right x=%v chakra=%v, want 300/970", a.X, a.Chakra)
	}

	a.MoveLeft()
	a.UseKamui(b)
	if a.X != 500 {
		t.Errorf("after Kamui facing left x=%v, want 500", a.X)
	}

	a.Chakra = 29
	if a.UseKamui(b) {
		t.Error("UseKamui() with 29 chakra should be a no-op")
	}
}

func TestUseKamuiClampedOnTick(t *testing.T) {
	a := newTestCharacter("Obito", 400)
	b := newTestCharacter("Kakashi", 20)

	a.UseKamui(b)
	if a.X != -80 {
		t.Fatalf("X right after Kamui = %v, want -80", a.X)
	}
	a.Tick()
	if a.X != 0 {
		t.Errorf("X after tick = %v, want 0", a.X)
	}
}

func TestTakeDamageClamps(t *testing.T) {
	c := newTestCharacter("Obito", 100)

	if got := c.TakeDamage(-5); got != 0 || c.Health != 1000 {
		t.Errorf("TakeDamage(-5) = %v health=%v, want 0/1000", got, c.Health)
	}
	if got := c.TakeDamage(1500); got != 1000 || c.Health != 0 {
		t.Errorf("TakeDamage(1500) = %v health=%v, want 1000/0", got, c.Health)
	}
	if c.IsAlive() {
		t.Error("IsAlive() = true at 0 health")
	}
}

func TestHundredBasicAttacksDefeatFighter(t *testing.T) {
	a := newTestCharacter("Obito", 100)
	b := newTestCharacter("Kakashi", 180)

	landed := 0
	for b.IsAlive() && landed < 200 {
		if !a.BasicAttack(b) {
			t.Fatalf("attack %d rejected", landed+1)
		}
		landed++
		for i := 0; i < 20; i++ {
			if i < 19 && a.BasicAttack(b) {
				t.Fatalf("attack re-triggered %d ticks into the swing", i)
			}
			a.Tick()
			b.Tick()
		}
	}

	if landed != 100 {
		t.Errorf("attacks needed = %d, want 100", landed)
	}
}

func TestCollision(t *testing.T) {
	a := newTestCharacter("Obito", 100)
	b := newTestCharacter("Kakashi", 100)

	if !a.IsColliding(b) {
		t.Error("characters at the same position should collide")
	}

	b.X = 150
	if a.IsColliding(b) {
		t.Error("characters a full width apart should not collide")
	}

	b.X = 149
	if !a.IsColliding(b) || !b.IsColliding(a) {
		t.Error("overlapping characters should collide both ways")
	}
}

func TestReset(t *testing.T) {
	c := newTestCharacter("Obito", 100)
	c.MoveLeft()
	c.Jump()
	c.ActivateSharingan()
	c.TakeDamage(500)
	c.Chakra = 5
	c.Tick()

	c.Reset()

	if c.X != 100 || c.Y != groundY || c.VX != 0 || c.VY != 0 {
		t.Errorf("Reset() position/velocity = (%v,%v,%v,%v)", c.X, c.Y, c.VX, c.VY)
	}
	if c.Health != 1000 || c.Chakra != 1000 {
		t.Errorf("Reset() health/chakra = %v/%v", c.Health, c.Chakra)
	}
	if c.Sharingan || c.Jumping || c.Jumps != 0 || c.JumpCooldown != 0 {
		t.Errorf("Reset() left flags set: %+v", c)
	}
}

type recordingController struct {
	calls  int
	target *Character
}

func (r *recordingController) Control(self, target *Character) {
	r.calls++
	r.target = target
}

func TestUpdateRunsControllerAfterTick(t *testing.T) {
	a := newTestCharacter("Kakashi", 100)
	b := newTestCharacter("Obito", 300)
	ctrl := &recordingController{}
	a.Controller = ctrl

	a.Update(b)
	if ctrl.calls != 1 || ctrl.target != b {
		t.Errorf("controller calls=%d target=%v, want 1/Obito", ctrl.calls, ctrl.target)
	}

	a.Update(nil)
	if ctrl.calls != 1 {
		t.Errorf("controller ran without a target")
	}
}

func TestNewEnemy(t *testing.T) {
	def := &gamedata.EnemyDef{
		ID: "rogue_ninja", Name: "Enemy", Width: 50, Height: 80, SpawnY: 450,
		BaseHealth: 50, HealthPerLevel: 10, Chakra: 1000, RedMin: 100, RedMax: 255,
	}
	e := NewEnemy(def, 300, 2, rand.New(rand.NewSource(1)))

	if e.Level != 2 || e.Health != 70 || e.MaxHealth != 70 {
		t.Errorf("NewEnemy() level=%d health=%v max=%v, want 2/70/70", e.Level, e.Health, e.MaxHealth)
	}
	if e.X != 300 || e.Y != 450 {
		t.Errorf("NewEnemy() position = (%v,%v), want (300,450)", e.X, e.Y)
	}
}

func TestNewFighter(t *testing.T) {
	roster, err := gamedata.LoadRoster()
	if err != nil {
		t.Fatalf("LoadRoster() error: %v", err)
	}
	c := NewFighter(&roster.Player)

	if c.Name != "Obito" || c.X != 100 || c.Y != 450 {
		t.Errorf("NewFighter() = %s at (%v,%v), want Obito at (100,450)", c.Name, c.X, c.Y)
	}
}

func TestChakraRegenPausedBySharingan(t *testing.T) {
	c := newTestCharacter("Obito", 100)
	c.Chakra = 50
	c.ActivateSharingan()

	c.Tick()

	if math.Abs(c.Chakra-49.8) > 1e-9 {
		t.Errorf("chakra after a buffed tick = %v, want 49.8 (drain only)", c.Chakra)
	}
}
