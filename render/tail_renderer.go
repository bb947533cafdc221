package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/matrix-rain/components"
	"github.com/lixenwraith/matrix-rain/constants"
)

// FrameStats counts the surface writes of one render pass
type FrameStats struct {
	Painted int
	Erased  int
}

// TailRenderer paints each cell's trail and erases the single row that left
// the trail window since the previous frame, so a frame costs O(tail) per
// cell instead of O(rows).
type TailRenderer struct {
	glyphs     GlyphSet
	rng        RandSource
	cols, rows int
	background tcell.Color
}

// NewTailRenderer creates a renderer for a cols x rows surface
func NewTailRenderer(glyphs GlyphSet, rng RandSource, cols, rows int, background tcell.Color) *TailRenderer {
	return &TailRenderer{
		glyphs:     glyphs,
		rng:        rng,
		cols:       cols,
		rows:       rows,
		background: background,
	}
}

// Prepare paints every screen cell once before the first frame.
// Animated fills each position with a random glyph in the head color,
// otherwise the screen is painted with the background.
func (r *TailRenderer) Prepare(s Surface, g Gradient, animated bool) error {
	for y := 0; y < r.rows; y++ {
		for x := 0; x < r.cols; x++ {
			var err error
			if animated {
				err = s.Paint(x, y, r.glyphs.Pick(r.rng), g.At(0), r.background)
			} else {
				err = r.erase(s, x, y)
			}
			if err != nil {
				return err
			}
		}
	}
	return s.Flush()
}

// Render draws one frame for the given cells. The gradient length is the
// tail length. The first surface error aborts the frame.
func (r *TailRenderer) Render(s Surface, cells []components.Cell, g Gradient) (FrameStats, error) {
	var stats FrameStats
	tail := len(g)
	if tail < constants.MinTailLength {
		tail = constants.MinTailLength
	}

	for i := range cells {
		if err := r.renderCell(s, &cells[i], g, tail, &stats); err != nil {
			return stats, err
		}
	}

	return stats, s.Flush()
}

func (r *TailRenderer) renderCell(s Surface, c *components.Cell, g Gradient, tail int, stats *FrameStats) error {
	if c.X < 0 || c.X >= r.cols {
		return nil
	}

	if c.Alive {
		// Oldest row first so the head is the last write in the column
		for k := c.Visible(tail); k >= 0; k-- {
			row := c.Y - k
			if !r.onScreen(row) {
				continue
			}
			if err := s.Paint(c.X, row, r.glyphs.Pick(r.rng), g.At(k), r.background); err != nil {
				return err
			}
			stats.Painted++
		}
	}

	// Trail shorter than the tail length has not dropped a row yet
	if !c.Sliding(tail) {
		return nil
	}

	row := c.TrailEnd(tail)
	if !r.onScreen(row) {
		return nil
	}
	if err := r.erase(s, c.X, row); err != nil {
		return err
	}
	stats.Erased++
	return nil
}

func (r *TailRenderer) erase(s Surface, x, y int) error {
	return s.Paint(x, y, constants.EraseRune, r.background, r.background)
}

func (r *TailRenderer) onScreen(row int) bool {
	return row >= 0 && row < r.rows
}
