package engine

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/matrix-rain/constants"
	"github.com/lixenwraith/matrix-rain/render"
)

// MatrixConfig is the per-session configuration derived from the terminal
// geometry and Options. Only Hue and Gradient change after construction.
type MatrixConfig struct {
	Cols, Rows       int
	Background       tcell.Color
	FrameInterval    time.Duration
	MaxCells         int
	TailLength       int
	SpawnProbability int // 0-100
	Hue              render.Hue
	Gradient         render.Gradient
	Glyphs           render.GlyphSet
	Prefill          bool
}

// NewMatrixConfig validates opts and derives tail length and gradient from rows.
// Zero or negative geometry is accepted and yields an empty rain.
func NewMatrixConfig(cols, rows int, opts Options) (*MatrixConfig, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	hue, _ := render.ParseHue(opts.Hue)
	bg, _ := render.ParseBackground(opts.Background)
	glyphs, _ := render.NewGlyphSet(opts.Glyphs)

	cols = max(cols, 0)
	rows = max(rows, 0)
	tail := render.TailLength(rows)

	return &MatrixConfig{
		Cols:             cols,
		Rows:             rows,
		Background:       bg,
		FrameInterval:    time.Duration(opts.FrameIntervalMs) * time.Millisecond,
		MaxCells:         opts.MaxCells,
		TailLength:       tail,
		SpawnProbability: opts.SpawnProbability,
		Hue:              hue,
		Gradient:         render.NewGradient(hue, tail),
		Glyphs:           glyphs,
		Prefill:          opts.Prefill,
	}, nil
}

// SetHue replaces the gradient; tail length and cells are unaffected
func (c *MatrixConfig) SetHue(hue render.Hue) {
	c.Hue = hue
	c.Gradient = render.NewGradient(hue, c.TailLength)
}

// SpawnBand returns the lowest row a new cell may start on
func (c *MatrixConfig) SpawnBand() int {
	return c.Rows / constants.SpawnBandDivisor
}
