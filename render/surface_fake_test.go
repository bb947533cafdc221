package render

import (
	"errors"

	"github.com/gdamore/tcell/v2"
)

type paintOp struct {
	col, row int
	glyph    rune
	fg, bg   tcell.Color
}

// recordingSurface keeps the last write per position and a log of every write
type recordingSurface struct {
	cols, rows int
	grid       map[[2]int]paintOp
	ops        []paintOp
	flushes    int
	failAfter  int // fail the Nth paint when > 0
}

func newRecordingSurface(cols, rows int) *recordingSurface {
	return &recordingSurface{cols: cols, rows: rows, grid: make(map[[2]int]paintOp)}
}

func (s *recordingSurface) Size() (int, int) { return s.cols, s.rows }

func (s *recordingSurface) Paint(col, row int, glyph rune, fg, bg tcell.Color) error {
	if s.failAfter > 0 && len(s.ops)+1 >= s.failAfter {
		return ErrSurfaceDetached
	}
	if col < 0 || col >= s.cols || row < 0 || row >= s.rows {
		return errors.New("paint out of bounds")
	}
	op := paintOp{col: col, row: row, glyph: glyph, fg: fg, bg: bg}
	s.ops = append(s.ops, op)
	s.grid[[2]int{col, row}] = op
	return nil
}

func (s *recordingSurface) Clear() error {
	s.grid = make(map[[2]int]paintOp)
	return nil
}

func (s *recordingSurface) Flush() error {
	s.flushes++
	return nil
}

func (s *recordingSurface) reset() {
	s.ops = s.ops[:0]
}

// lit reports whether a position currently shows a glyph rather than background
func (s *recordingSurface) lit(col, row int) bool {
	op, ok := s.grid[[2]int{col, row}]
	return ok && op.glyph != ' '
}

func (s *recordingSurface) erases() []paintOp {
	var out []paintOp
	for _, op := range s.ops {
		if op.glyph == ' ' {
			out = append(out, op)
		}
	}
	return out
}

// fixedRand always returns the same draw, clamped to n
type fixedRand int

func newFixedRand(v int) *fixedRand {
	f := fixedRand(v)
	return &f
}

func (f *fixedRand) Intn(n int) int {
	if int(*f) >= n {
		return n - 1
	}
	return int(*f)
}
