package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/matrix-rain/engine"
	"github.com/lixenwraith/matrix-rain/render"
)

func newTestApp(t *testing.T, opts engine.Options) (*App, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init screen: %v", err)
	}
	screen.SetSize(40, 30)
	t.Cleanup(screen.Fini)

	opts.Seed = 7
	opts.Sound = false
	app, err := NewApp(screen, opts)
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}
	t.Cleanup(app.Close)
	return app, screen
}

func keyEvent(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestNewAppGeometry(t *testing.T) {
	app, _ := newTestApp(t, engine.DefaultOptions())
	cfg := app.matrix.Config()
	if cfg.Cols != 40 || cfg.Rows != 30 {
		t.Errorf("Expected 40x30, got %dx%d", cfg.Cols, cfg.Rows)
	}
	if cfg.TailLength != 10 {
		t.Errorf("Expected tail 10, got %d", cfg.TailLength)
	}
}

func TestNewAppRejectsBadBindings(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init screen: %v", err)
	}
	defer screen.Fini()

	opts := engine.DefaultOptions()
	opts.Keys.Pause = "q"
	if _, err := NewApp(screen, opts); err == nil {
		t.Error("Expected duplicate binding error")
	}
}

func TestRunLoopQuitAfterHueChange(t *testing.T) {
	app, _ := newTestApp(t, engine.DefaultOptions())

	events := make(chan tcell.Event, 4)
	events <- keyEvent('r')
	events <- keyEvent('q')

	if err := app.runLoop(context.Background(), events); err != nil {
		t.Fatalf("Expected clean quit, got %v", err)
	}
	if got := app.matrix.Config().Hue; got != render.HueRed {
		t.Errorf("Expected red hue, got %s", got)
	}
}

func TestRunLoopEscQuits(t *testing.T) {
	app, _ := newTestApp(t, engine.DefaultOptions())

	events := make(chan tcell.Event, 1)
	events <- tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)

	if err := app.runLoop(context.Background(), events); err != nil {
		t.Fatalf("Expected clean quit, got %v", err)
	}
}

func TestRunLoopPauseToggle(t *testing.T) {
	app, _ := newTestApp(t, engine.DefaultOptions())

	events := make(chan tcell.Event, 2)
	events <- keyEvent('p')
	events <- keyEvent('q')

	if err := app.runLoop(context.Background(), events); err != nil {
		t.Fatalf("Expected clean quit, got %v", err)
	}
	if !app.matrix.Paused() {
		t.Error("Expected matrix to be paused")
	}
}

func TestRunLoopClosedInput(t *testing.T) {
	app, _ := newTestApp(t, engine.DefaultOptions())

	events := make(chan tcell.Event)
	close(events)

	err := app.runLoop(context.Background(), events)
	if !errors.Is(err, render.ErrSurfaceDetached) {
		t.Fatalf("Expected ErrSurfaceDetached, got %v", err)
	}
	if err := app.surface.Flush(); !errors.Is(err, render.ErrSurfaceDetached) {
		t.Errorf("Expected surface to be detached, got %v", err)
	}
}

func TestRunLoopContextCancel(t *testing.T) {
	opts := engine.DefaultOptions()
	opts.FrameIntervalMs = 10
	app, _ := newTestApp(t, opts)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	if err := app.runLoop(ctx, make(chan tcell.Event)); err != nil {
		t.Fatalf("Expected nil on cancel, got %v", err)
	}
	if app.matrix.Frames() == 0 {
		t.Error("Expected frames to run before cancel")
	}
	if app.matrix.Pool().Len() == 0 {
		t.Error("Expected live cells after frames")
	}
}

func TestRunReadsScreenEvents(t *testing.T) {
	app, screen := newTestApp(t, engine.DefaultOptions())
	screen.InjectKey(tcell.KeyRune, 'g', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.Run(ctx); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if ctx.Err() != nil {
		t.Fatal("Run returned on timeout instead of the injected quit key")
	}
}

func TestHandleEventIgnoresResize(t *testing.T) {
	app, _ := newTestApp(t, engine.DefaultOptions())
	if app.handleEvent(tcell.NewEventResize(80, 24)) {
		t.Error("Resize must not stop the loop")
	}
	if app.handleEvent(keyEvent('x')) {
		t.Error("Unbound key must not stop the loop")
	}
}
