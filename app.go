package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/matrix-rain/audio"
	"github.com/lixenwraith/matrix-rain/core"
	"github.com/lixenwraith/matrix-rain/engine"
	"github.com/lixenwraith/matrix-rain/input"
	"github.com/lixenwraith/matrix-rain/render"
	"github.com/lixenwraith/matrix-rain/systems"
)

// App owns the screen, the matrix state and the frame loop
type App struct {
	screen  tcell.Screen
	surface *render.ScreenSurface
	matrix  *systems.Matrix
	keys    *input.KeyTable
	cues    *audio.CuePlayer // nil when sound is off
}

// NewApp sizes the rain to an initialized screen
func NewApp(screen tcell.Screen, opts engine.Options) (*App, error) {
	cols, rows := screen.Size()
	cfg, err := engine.NewMatrixConfig(cols, rows, opts)
	if err != nil {
		return nil, err
	}

	keys, err := input.NewKeyTable(opts.Keys)
	if err != nil {
		return nil, err
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	surface := render.NewScreenSurface(screen)
	a := &App{
		screen:  screen,
		surface: surface,
		matrix:  systems.NewMatrix(cfg, surface, rand.New(rand.NewSource(seed))),
		keys:    keys,
	}

	if opts.Sound {
		cues := audio.NewCuePlayer()
		if err := cues.Initialize(); err != nil {
			// Non-fatal, the rain runs silently
			log.Printf("Audio initialization failed: %v", err)
		} else {
			a.cues = cues
		}
	}

	log.Printf("matrix: %dx%d tail=%d hue=%s interval=%v max_cells=%d spawn=%d seed=%d",
		cfg.Cols, cfg.Rows, cfg.TailLength, cfg.Hue, cfg.FrameInterval, cfg.MaxCells, cfg.SpawnProbability, seed)
	return a, nil
}

// Close releases audio; the screen is finalized by its owner
func (a *App) Close() {
	if a.cues != nil {
		a.cues.Cleanup()
	}
}

// Run paints the startup fill and drives frames until quit, context
// cancellation or a surface failure
func (a *App) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)
	return a.runLoop(ctx, startInputReader(a.screen, done))
}

func (a *App) runLoop(ctx context.Context, events <-chan tcell.Event) error {
	if err := a.matrix.Prepare(); err != nil {
		return fmt.Errorf("prepare: %w", err)
	}

	ticker := time.NewTicker(a.matrix.Config().FrameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Printf("matrix: stopped: %v", ctx.Err())
			return nil

		case ev, ok := <-events:
			if !ok {
				a.surface.Detach()
				return fmt.Errorf("input closed: %w", render.ErrSurfaceDetached)
			}
			if a.handleEvent(ev) {
				log.Printf("matrix: quit after %d frames", a.matrix.Frames())
				return nil
			}

		case <-ticker.C:
			res, err := a.matrix.Frame()
			if err != nil {
				return fmt.Errorf("frame %d: %w", a.matrix.Frames(), err)
			}
			if res.Pruned > 0 {
				log.Printf("matrix: frame %d live=%d spawned=%d pruned=%d painted=%d erased=%d",
					a.matrix.Frames(), res.Live, res.Spawned, res.Pruned, res.Painted, res.Erased)
			}
		}
	}
}

// handleEvent applies a key event and reports whether the loop should stop
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		intent := a.keys.Resolve(ev)
		quit := a.matrix.Apply(intent)
		switch intent.Type {
		case input.IntentPause:
			log.Printf("matrix: paused=%v", a.matrix.Paused())
			if a.cues != nil {
				a.cues.PlayPause(a.matrix.Paused())
			}
		case input.IntentHue:
			log.Printf("matrix: hue=%s", intent.Hue)
			if a.cues != nil {
				a.cues.PlayHue(intent.Hue)
			}
		}
		return quit

	case *tcell.EventResize:
		// Geometry is fixed for the session
		log.Printf("matrix: resize ignored")
	}
	return false
}

// startInputReader forwards screen events until the screen is finalized or done closes
func startInputReader(screen tcell.Screen, done <-chan struct{}) <-chan tcell.Event {
	ch := make(chan tcell.Event, 64)
	core.Go(func() {
		defer close(ch)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case ch <- ev:
			case <-done:
				return
			}
		}
	})
	return ch
}
