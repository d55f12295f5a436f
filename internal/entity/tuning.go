package entity

const (
	TicksPerSecond = 60

	Gravity   = 0.5
	JumpForce = -10.0
	MoveSpeed = 5.0

	MaxJumps             = 2
	JumpCooldownTicks    = TicksPerSecond // after the second jump
	SpecialCooldownTicks = 120
	SpecialChakraCost    = 20.0
	SharinganMinChakra   = 10.0
	SharinganDrain       = 0.2 // per tick while active
	KamuiChakraCost      = 30.0
	KamuiOffset          = 100.0
	ChakraRegen          = 0.1   // per tick while below ChakraRegenCap
	ChakraRegenCap       = 100.0 // regen stops at or above this, overshoot allowed
	AttackAnimTicks      = 10

	// chakraEpsilon absorbs float drift so a drained buff ends on the tick the math says it should.
	chakraEpsilon = 1e-9
)
