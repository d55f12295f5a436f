package game

// Action is a player intent produced by the input collaborator.
type Action int

const (
	ActionNone Action = iota
	// ActionStart begins a match from the title or game-over screen.
	ActionStart
	ActionMoveLeft
	ActionMoveRight
	ActionStop
	// ActionJump jumps while playing; on the title or game-over screen it starts a match.
	ActionJump
	ActionBasicAttack
	ActionSpecialAttack
	ActionKamui
	ActionSharingan
	// ActionQuit leaves the game loop.
	ActionQuit
)

// String returns a human-readable action name.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionStart:
		return "start"
	case ActionMoveLeft:
		return "move_left"
	case ActionMoveRight:
		return "move_right"
	case ActionStop:
		return "stop"
	case ActionJump:
		return "jump"
	case ActionBasicAttack:
		return "basic_attack"
	case ActionSpecialAttack:
		return "special_attack"
	case ActionKamui:
		return "kamui"
	case ActionSharingan:
		return "sharingan"
	case ActionQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// startsMatch returns true if the action begins a match when none is running.
func (a Action) startsMatch() bool {
	return a == ActionStart || a == ActionJump
}
