package game

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/shinobiduel/internal/entity"
	"github.com/samdwyer/shinobiduel/internal/telemetry"
)

// FrameInterval is the wall-clock length of one tick.
const FrameInterval = time.Second / entity.TicksPerSecond

// Frontend is the render and input collaborator the loop talks to.
type Frontend interface {
	// Render draws one frame. It must not keep the snapshot's slices.
	Render(snap Snapshot)
	// Actions delivers player intents. Closing the channel ends the loop.
	Actions() <-chan Action
}

// Run executes the main game loop until the player quits, the action channel
// closes or ctx is cancelled. A tick in progress always completes.
func (g *Game) Run(ctx context.Context, fe Frontend) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.run")
	span.SetAttributes(attribute.Int64("game.seed", g.seed))
	defer span.End()
	defer g.Close()

	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()

	fe.Render(g.Snapshot())
	dirty := false

	for {
		select {
		case <-ctx.Done():
			return nil

		case a, ok := <-fe.Actions():
			if !ok || a == ActionQuit {
				return nil
			}
			g.Input(ctx, a)
			dirty = true

		case <-ticker.C:
			if g.state != StatePlaying && !dirty {
				continue
			}
			g.Step()
			fe.Render(g.Snapshot())
			dirty = false
		}
	}
}
