package systems

import (
	"github.com/lixenwraith/matrix-rain/engine"
	"github.com/lixenwraith/matrix-rain/input"
	"github.com/lixenwraith/matrix-rain/render"
)

// FrameResult summarizes one frame for debug logging
type FrameResult struct {
	render.FrameStats
	Spawned int
	Pruned  int
	Live    int
}

// Matrix is the frame driver state: configuration, pool and renderer.
// It is owned by a single goroutine.
type Matrix struct {
	cfg      *engine.MatrixConfig
	pool     *CellPool
	renderer *render.TailRenderer
	surface  render.Surface
	rng      render.RandSource
	paused   bool
	frames   int64
}

// NewMatrix wires a pool and renderer for cfg onto surface
func NewMatrix(cfg *engine.MatrixConfig, surface render.Surface, rng render.RandSource) *Matrix {
	return &Matrix{
		cfg:      cfg,
		pool:     NewCellPool(cfg.MaxCells),
		renderer: render.NewTailRenderer(cfg.Glyphs, rng, cfg.Cols, cfg.Rows, cfg.Background),
		surface:  surface,
		rng:      rng,
	}
}

// Config returns the session configuration
func (m *Matrix) Config() *engine.MatrixConfig {
	return m.cfg
}

// Pool returns the cell pool
func (m *Matrix) Pool() *CellPool {
	return m.pool
}

// Paused reports whether frames are currently skipped
func (m *Matrix) Paused() bool {
	return m.paused
}

// Frames returns the number of frames advanced, excluding paused ones
func (m *Matrix) Frames() int64 {
	return m.frames
}

// Prepare clears the surface and paints the startup fill
func (m *Matrix) Prepare() error {
	if err := m.surface.Clear(); err != nil {
		return err
	}
	return m.renderer.Prepare(m.surface, m.cfg.Gradient, m.cfg.Prefill)
}

// Frame runs render, prune, spawn and tick in that order.
// Prune must follow the render that erased a dead cell's last row.
// A paused matrix does nothing.
func (m *Matrix) Frame() (FrameResult, error) {
	var res FrameResult
	if m.paused {
		return res, nil
	}

	stats, err := m.renderer.Render(m.surface, m.pool.Cells(), m.cfg.Gradient)
	res.FrameStats = stats
	if err != nil {
		return res, err
	}

	res.Pruned = m.pool.Prune(m.cfg.Rows, m.cfg.TailLength)
	res.Spawned = m.pool.Spawn(m.rng, m.cfg)
	m.pool.Tick(m.cfg.Rows)
	res.Live = m.pool.Len()
	m.frames++
	return res, nil
}

// Apply handles a resolved key intent and reports whether the loop should stop
func (m *Matrix) Apply(intent input.Intent) bool {
	switch intent.Type {
	case input.IntentQuit:
		return true
	case input.IntentPause:
		m.paused = !m.paused
	case input.IntentHue:
		m.cfg.SetHue(intent.Hue)
	}
	return false
}
