package ui

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/shinobiduel/internal/game"
)

// DefaultRelease is how long after the last movement key the fighter stops.
// Terminals report key repeats but never key releases, and the first repeat
// can take up to ~660ms to arrive.
const DefaultRelease = 700 * time.Millisecond

// Terminal is a game.Frontend backed by a tcell screen.
type Terminal struct {
	screen   *Screen
	renderer *Renderer
	actions  chan game.Action
	release  time.Duration
}

var _ game.Frontend = (*Terminal)(nil)

// NewTerminal creates a frontend for the screen. Call Listen to start
// reading keys.
func NewTerminal(screen *Screen) *Terminal {
	return &Terminal{
		screen:   screen,
		renderer: NewRenderer(screen),
		actions:  make(chan game.Action, 16),
		release:  DefaultRelease,
	}
}

// SetRelease changes the movement release delay.
func (t *Terminal) SetRelease(d time.Duration) {
	t.release = d
}

// Render draws a snapshot.
func (t *Terminal) Render(snap game.Snapshot) {
	t.renderer.Render(snap)
}

// Actions returns the channel of translated key presses. It is closed when
// the screen is closed or ctx passed to Listen is done.
func (t *Terminal) Actions() <-chan game.Action {
	return t.actions
}

// Listen starts reading terminal events until ctx is done or the screen closes.
func (t *Terminal) Listen(ctx context.Context) {
	events := make(chan tcell.Event)
	go t.poll(ctx, events)
	go t.pump(ctx, events)
}

// poll forwards screen events. PollEvent returns nil once the screen is finalized.
func (t *Terminal) poll(ctx context.Context, events chan<- tcell.Event) {
	defer close(events)
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// pump translates events into actions and synthesizes ActionStop when
// movement keys stop repeating. It is the only sender on t.actions.
func (t *Terminal) pump(ctx context.Context, events <-chan tcell.Event) {
	defer close(t.actions)

	release := time.NewTimer(t.release)
	release.Stop()
	moving := false

	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-events:
			if !ok {
				return
			}
			var a game.Action
			switch ev := ev.(type) {
			case *tcell.EventResize:
				t.screen.Sync()
				continue
			case *tcell.EventKey:
				a = ActionForKey(ev.Key(), ev.Rune(), ev.Modifiers())
			}
			if a == game.ActionNone {
				continue
			}
			if a == game.ActionMoveLeft || a == game.ActionMoveRight {
				moving = true
				release.Reset(t.release)
			}
			if !t.send(ctx, a) {
				return
			}

		case <-release.C:
			if moving {
				moving = false
				if !t.send(ctx, game.ActionStop) {
					return
				}
			}
		}
	}
}

func (t *Terminal) send(ctx context.Context, a game.Action) bool {
	select {
	case t.actions <- a:
		return true
	case <-ctx.Done():
		return false
	}
}

// ActionForKey maps a key press to a game action.
func ActionForKey(key tcell.Key, ch rune, mod tcell.ModMask) game.Action {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.ActionQuit
	case tcell.KeyEnter:
		return game.ActionStart
	case tcell.KeyLeft:
		return game.ActionMoveLeft
	case tcell.KeyRight:
		return game.ActionMoveRight
	case tcell.KeyRune:
	default:
		return game.ActionNone
	}

	if mod&tcell.ModCtrl != 0 {
		return game.ActionNone
	}
	switch ch {
	case 'a', 'A':
		return game.ActionMoveLeft
	case 'd', 'D':
		return game.ActionMoveRight
	case ' ':
		return game.ActionJump
	case 'q', 'Q':
		return game.ActionBasicAttack
	case 'w', 'W':
		return game.ActionSpecialAttack
	case 'e', 'E':
		return game.ActionKamui
	case 'r', 'R':
		return game.ActionSharingan
	default:
		return game.ActionNone
	}
}
