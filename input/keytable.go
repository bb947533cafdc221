package input

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/matrix-rain/engine"
	"github.com/lixenwraith/matrix-rain/render"
)

// KeyTable maps key events to intents
type KeyTable struct {
	// Special keys (Esc, Ctrl+*); not rebindable
	SpecialKeys map[tcell.Key]Intent

	// Rune bindings from configuration
	Runes map[rune]Intent
}

// NewKeyTable builds a table from configured bindings
func NewKeyTable(b engine.KeyBindings) (*KeyTable, error) {
	runes, err := b.Runes()
	if err != nil {
		return nil, fmt.Errorf("key bindings: %w", err)
	}

	return &KeyTable{
		SpecialKeys: map[tcell.Key]Intent{
			tcell.KeyEscape: {Type: IntentQuit},
			tcell.KeyCtrlC:  {Type: IntentQuit},
		},
		Runes: map[rune]Intent{
			runes["quit"]:  {Type: IntentQuit},
			runes["pause"]: {Type: IntentPause},
			runes["red"]:   {Type: IntentHue, Hue: render.HueRed},
			runes["green"]: {Type: IntentHue, Hue: render.HueGreen},
			runes["blue"]:  {Type: IntentHue, Hue: render.HueBlue},
		},
	}, nil
}

// DefaultKeyTable returns the built-in bindings
func DefaultKeyTable() *KeyTable {
	t, err := NewKeyTable(engine.DefaultOptions().Keys)
	if err != nil {
		panic(err)
	}
	return t
}

// Resolve maps a key event to an intent; unknown keys yield IntentNone
func (t *KeyTable) Resolve(ev *tcell.EventKey) Intent {
	if ev.Key() == tcell.KeyRune {
		return t.Runes[ev.Rune()]
	}
	return t.SpecialKeys[ev.Key()]
}
