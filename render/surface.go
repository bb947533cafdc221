package render

import (
	"errors"

	"github.com/gdamore/tcell/v2"
)

// ErrSurfaceDetached is returned once the terminal can no longer be written
var ErrSurfaceDetached = errors.New("surface detached")

// Surface is the paint target for the rain. Coordinates are 0-based cells
// and callers keep them within Size().
type Surface interface {
	Size() (cols, rows int)
	Paint(col, row int, glyph rune, fg, bg tcell.Color) error
	Clear() error
	Flush() error
}

// ScreenSurface adapts a tcell.Screen.
// Alternate screen, raw mode and cursor visibility are owned by the
// screen's Init/Fini pair.
type ScreenSurface struct {
	screen   tcell.Screen
	detached bool
}

// NewScreenSurface wraps an initialized screen and hides its cursor
func NewScreenSurface(screen tcell.Screen) *ScreenSurface {
	screen.HideCursor()
	return &ScreenSurface{screen: screen}
}

// Detach marks the surface unusable; every later write fails
func (s *ScreenSurface) Detach() {
	s.detached = true
}

func (s *ScreenSurface) Size() (int, int) {
	return s.screen.Size()
}

func (s *ScreenSurface) Paint(col, row int, glyph rune, fg, bg tcell.Color) error {
	if s.detached {
		return ErrSurfaceDetached
	}
	s.screen.SetContent(col, row, glyph, nil, tcell.StyleDefault.Foreground(fg).Background(bg))
	return nil
}

func (s *ScreenSurface) Clear() error {
	if s.detached {
		return ErrSurfaceDetached
	}
	s.screen.Clear()
	return nil
}

func (s *ScreenSurface) Flush() error {
	if s.detached {
		return ErrSurfaceDetached
	}
	s.screen.Show()
	return nil
}
