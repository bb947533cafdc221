package render

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/matrix-rain/constants"
	"github.com/mattn/go-runewidth"
)

// RandSource is the subset of *rand.Rand used for spawning and glyph selection
type RandSource interface {
	Intn(n int) int
}

// GlyphSet is the alphabet glyphs are drawn from at paint time
type GlyphSet struct {
	runes []rune
}

// DefaultGlyphSet returns the 52 ASCII letters
func DefaultGlyphSet() GlyphSet {
	return GlyphSet{runes: constants.LetterRunes}
}

// NewGlyphSet validates that every rune occupies exactly one terminal cell
func NewGlyphSet(alphabet string) (GlyphSet, error) {
	if alphabet == "" {
		return GlyphSet{}, errors.New("glyph set cannot be empty")
	}
	runes := []rune(alphabet)
	for _, r := range runes {
		if w := runewidth.RuneWidth(r); w != 1 {
			return GlyphSet{}, fmt.Errorf("glyph %q has width %d, want 1", r, w)
		}
	}
	return GlyphSet{runes: runes}, nil
}

// Len returns the alphabet size
func (g GlyphSet) Len() int {
	return len(g.runes)
}

// Contains reports whether r is in the alphabet
func (g GlyphSet) Contains(r rune) bool {
	for _, c := range g.runes {
		if c == r {
			return true
		}
	}
	return false
}

// Pick returns a uniformly random glyph
func (g GlyphSet) Pick(rng RandSource) rune {
	if len(g.runes) == 0 {
		return constants.EraseRune
	}
	return g.runes[rng.Intn(len(g.runes))]
}
