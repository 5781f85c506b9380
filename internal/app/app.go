package app

import (
	"context"
	"errors"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/tileroom/internal/palette"
	"github.com/samdwyer/tileroom/internal/telemetry"
	"github.com/samdwyer/tileroom/internal/tiling"
	"github.com/samdwyer/tileroom/internal/ui"
)

// App plays a sequence of tiling snapshots on the terminal.
type App struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	cfg      Config

	steps   []tiling.Grid
	current int
	state   State
	running bool
}

// New creates a playback app, initializing the terminal screen.
func New(cfg Config) (*App, error) {
	reg, err := palette.LoadRegistry()
	if err != nil {
		return nil, err
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return &App{
		screen:   screen,
		renderer: ui.NewRenderer(screen, reg),
		cfg:      cfg,
		state:    StatePlaying,
		running:  true,
	}, nil
}

// Run plays the snapshots in order, one per frame delay, then waits for
// the user to quit. Space pauses and resumes; while paused the left and
// right arrows step backward and forward.
func (a *App) Run(ctx context.Context, steps []tiling.Grid) error {
	if len(steps) == 0 {
		a.screen.Close()
		return errors.New("no snapshots to play")
	}

	tracer := telemetry.Tracer("app")
	ctx, span := tracer.Start(ctx, "app.run")
	span.SetAttributes(attribute.Int("playback.steps", len(steps)))
	defer span.End()

	a.steps = steps
	a.current = 0

	// PollEvent blocks, so input is pumped from its own goroutine and
	// merged with the frame ticker here. The done channel unblocks the
	// pump when Run returns with events still queued.
	events := make(chan tcell.Event, 8)
	done := make(chan struct{})
	defer close(done)
	go func() {
		defer close(events)
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(a.cfg.frameDelay())
	defer ticker.Stop()

	for a.running {
		a.render()

		select {
		case <-ticker.C:
			if a.state == StatePlaying {
				a.advance()
			}
		case ev, ok := <-events:
			if !ok {
				a.running = false
				break
			}
			a.handleEvent(ev)
		case <-ctx.Done():
			a.screen.Close()
			return ctx.Err()
		}
	}

	a.screen.Close()
	return nil
}

// render draws the current snapshot.
func (a *App) render() {
	a.renderer.Render(a.steps[a.current], a.current+1, len(a.steps), a.state == StatePaused)
}

// advance moves playback one snapshot forward, entering StateFinished
// on the last one.
func (a *App) advance() {
	if a.current < len(a.steps)-1 {
		a.current++
		return
	}
	a.state = StateFinished
}

// handleEvent processes a single terminal event.
func (a *App) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		a.handleKeyEvent(ev)
	case *tcell.EventResize:
		a.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (a *App) handleKeyEvent(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		a.running = false

	case tcell.KeyLeft:
		a.pause()
		if a.current > 0 {
			a.current--
		}
	case tcell.KeyRight:
		a.pause()
		if a.current < len(a.steps)-1 {
			a.current++
		}

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			a.running = false
		case ' ':
			a.togglePause()
		}
	}
}

// pause stops automatic playback. Manual stepping also leaves the
// finished state, since the user may step back into the sequence.
func (a *App) pause() {
	a.state = StatePaused
}

// togglePause flips between playing and paused. Resuming after the end
// restarts playback from the first snapshot.
func (a *App) togglePause() {
	switch a.state {
	case StatePlaying:
		a.state = StatePaused
	case StatePaused:
		a.state = StatePlaying
	case StateFinished:
		a.current = 0
		a.state = StatePlaying
	}
}

// Close cleans up app resources.
func (a *App) Close() {
	if a.screen != nil {
		a.screen.Close()
	}
}
