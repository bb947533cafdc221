package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/matrix-rain/render"
)

func TestNewMatrixConfig(t *testing.T) {
	opts := DefaultOptions()
	opts.Hue = "blue"
	opts.FrameIntervalMs = 40

	cfg, err := NewMatrixConfig(80, 30, opts)
	if err != nil {
		t.Fatalf("NewMatrixConfig failed: %v", err)
	}

	if cfg.Cols != 80 || cfg.Rows != 30 {
		t.Errorf("Expected 80x30, got %dx%d", cfg.Cols, cfg.Rows)
	}
	if cfg.TailLength != 10 {
		t.Errorf("Expected tail 10, got %d", cfg.TailLength)
	}
	if len(cfg.Gradient) != cfg.TailLength {
		t.Errorf("Gradient length %d != tail %d", len(cfg.Gradient), cfg.TailLength)
	}
	if cfg.Hue != render.HueBlue {
		t.Errorf("Expected blue hue, got %s", cfg.Hue)
	}
	if cfg.FrameInterval != 40*time.Millisecond {
		t.Errorf("Expected 40ms interval, got %v", cfg.FrameInterval)
	}
	if cfg.SpawnBand() != 3 {
		t.Errorf("Expected spawn band 3, got %d", cfg.SpawnBand())
	}
	if cfg.Glyphs.Len() != 52 {
		t.Errorf("Expected default 52 glyphs, got %d", cfg.Glyphs.Len())
	}
}

func TestNewMatrixConfigDegenerateGeometry(t *testing.T) {
	cfg, err := NewMatrixConfig(0, -3, DefaultOptions())
	if err != nil {
		t.Fatalf("Degenerate geometry must not fail: %v", err)
	}
	if cfg.Rows != 0 || cfg.Cols != 0 {
		t.Errorf("Expected clamped 0x0, got %dx%d", cfg.Cols, cfg.Rows)
	}
	if cfg.TailLength != 1 || len(cfg.Gradient) != 1 {
		t.Errorf("Expected tail clamped to 1, got %d", cfg.TailLength)
	}
}

func TestNewMatrixConfigInvalidOptions(t *testing.T) {
	opts := DefaultOptions()
	opts.SpawnProbability = 200
	if _, err := NewMatrixConfig(80, 24, opts); err == nil {
		t.Error("Expected error for invalid options")
	}
}

func TestSetHueKeepsTail(t *testing.T) {
	cfg, err := NewMatrixConfig(80, 45, DefaultOptions())
	if err != nil {
		t.Fatalf("NewMatrixConfig failed: %v", err)
	}
	tail := cfg.TailLength
	head := cfg.Gradient[0]

	cfg.SetHue(render.HueRed)

	if cfg.TailLength != tail || len(cfg.Gradient) != tail {
		t.Errorf("Hue change altered tail: %d -> %d (gradient %d)", tail, cfg.TailLength, len(cfg.Gradient))
	}
	if cfg.Gradient[0] == head {
		t.Error("Expected a new gradient after hue change")
	}
	if cfg.Hue != render.HueRed {
		t.Errorf("Expected red hue, got %s", cfg.Hue)
	}
}
