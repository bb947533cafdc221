package input

import "github.com/lixenwraith/matrix-rain/render"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone  IntentType = iota
	IntentQuit             // q, Esc, Ctrl+C
	IntentPause            // p toggles
	IntentHue              // r/g/b re-color
)

// Intent is a resolved key press. Hue is set only for IntentHue.
type Intent struct {
	Type IntentType
	Hue  render.Hue
}
