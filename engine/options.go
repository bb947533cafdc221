package engine

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/lixenwraith/matrix-rain/constants"
	"github.com/lixenwraith/matrix-rain/render"
)

// KeyBindings holds single-character bindings for the interactive controls.
// Esc and Ctrl+C always quit regardless of Quit.
type KeyBindings struct {
	Quit  string `toml:"quit" env:"QUIT"`
	Pause string `toml:"pause" env:"PAUSE"`
	Red   string `toml:"red" env:"RED"`
	Green string `toml:"green" env:"GREEN"`
	Blue  string `toml:"blue" env:"BLUE"`
}

// Options is the user-facing configuration surface.
// Layering: DefaultOptions < LoadFile < ApplyEnv < ApplyFlags.
type Options struct {
	FrameIntervalMs  int         `toml:"frame_interval_ms" env:"MATRIX_FRAME_INTERVAL_MS"`
	MaxCells         int         `toml:"max_cells" env:"MATRIX_MAX_CELLS"`
	SpawnProbability int         `toml:"spawn_probability" env:"MATRIX_SPAWN_PROBABILITY"`
	Hue              string      `toml:"hue" env:"MATRIX_HUE"`
	Background       string      `toml:"background" env:"MATRIX_BACKGROUND"`
	Glyphs           string      `toml:"glyphs" env:"MATRIX_GLYPHS"`
	Prefill          bool        `toml:"prefill" env:"MATRIX_PREFILL"`
	Sound            bool        `toml:"sound" env:"MATRIX_SOUND"`
	Seed             int64       `toml:"seed" env:"MATRIX_SEED"`
	Keys             KeyBindings `toml:"keys" envPrefix:"MATRIX_KEY_"`
}

// DefaultOptions returns the built-in configuration
func DefaultOptions() Options {
	return Options{
		FrameIntervalMs:  constants.FrameIntervalMs,
		MaxCells:         constants.DefaultMaxCells,
		SpawnProbability: constants.DefaultSpawnProbability,
		Hue:              constants.DefaultHue,
		Background:       constants.DefaultBackground,
		Glyphs:           constants.LetterString,
		Prefill:          true,
		Keys: KeyBindings{
			Quit:  string(constants.KeyQuit),
			Pause: string(constants.KeyPause),
			Red:   string(constants.KeyRed),
			Green: string(constants.KeyGreen),
			Blue:  string(constants.KeyBlue),
		},
	}
}

// LoadFile overlays a TOML config file onto opts. Unknown keys are rejected.
func LoadFile(path string, opts *Options) error {
	md, err := toml.DecodeFile(path, opts)
	if err != nil {
		return fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("load config %s: unknown key %q", path, undecoded[0].String())
	}
	return nil
}

// ApplyEnv overlays MATRIX_* environment variables onto opts
func ApplyEnv(opts *Options) error {
	if err := env.Parse(opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// RegisterFlags declares command-line flags on fs, writing into dst.
// dst should hold the defaults shown in usage.
func RegisterFlags(fs *flag.FlagSet, dst *Options) {
	fs.IntVar(&dst.FrameIntervalMs, "interval", dst.FrameIntervalMs, "frame interval in milliseconds")
	fs.IntVar(&dst.MaxCells, "max-cells", dst.MaxCells, "maximum number of falling cells")
	fs.IntVar(&dst.SpawnProbability, "spawn", dst.SpawnProbability, "spawn probability per check, 0-100")
	fs.StringVar(&dst.Hue, "hue", dst.Hue, "initial hue: red, green or blue")
	fs.StringVar(&dst.Background, "background", dst.Background, "background color as #rrggbb")
	fs.StringVar(&dst.Glyphs, "glyphs", dst.Glyphs, "glyph alphabet (single-width characters)")
	fs.BoolVar(&dst.Prefill, "prefill", dst.Prefill, "fill the screen with glyphs before the first frame")
	fs.BoolVar(&dst.Sound, "sound", dst.Sound, "play audio cues on hue change and pause")
	fs.Int64Var(&dst.Seed, "seed", dst.Seed, "random seed, 0 for time based")
}

// ApplyFlags copies only the flags explicitly set on fs from src into dst
func ApplyFlags(fs *flag.FlagSet, src Options, dst *Options) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "interval":
			dst.FrameIntervalMs = src.FrameIntervalMs
		case "max-cells":
			dst.MaxCells = src.MaxCells
		case "spawn":
			dst.SpawnProbability = src.SpawnProbability
		case "hue":
			dst.Hue = src.Hue
		case "background":
			dst.Background = src.Background
		case "glyphs":
			dst.Glyphs = src.Glyphs
		case "prefill":
			dst.Prefill = src.Prefill
		case "sound":
			dst.Sound = src.Sound
		case "seed":
			dst.Seed = src.Seed
		}
	})
}

// Validate checks ranges and that every named value resolves
func (o Options) Validate() error {
	var errs []error
	if o.FrameIntervalMs < constants.MinFrameIntervalMs || o.FrameIntervalMs > constants.MaxFrameIntervalMs {
		errs = append(errs, fmt.Errorf("frame interval %dms out of range %d-%d",
			o.FrameIntervalMs, constants.MinFrameIntervalMs, constants.MaxFrameIntervalMs))
	}
	if o.MaxCells < 0 || o.MaxCells > constants.MaxCellsLimit {
		errs = append(errs, fmt.Errorf("max cells %d out of range 0-%d", o.MaxCells, constants.MaxCellsLimit))
	}
	if o.SpawnProbability < 0 || o.SpawnProbability > 100 {
		errs = append(errs, fmt.Errorf("spawn probability %d out of range 0-100", o.SpawnProbability))
	}
	if _, err := render.ParseHue(o.Hue); err != nil {
		errs = append(errs, err)
	}
	if _, err := render.ParseBackground(o.Background); err != nil {
		errs = append(errs, err)
	}
	if _, err := render.NewGlyphSet(o.Glyphs); err != nil {
		errs = append(errs, err)
	}
	if _, err := o.Keys.Runes(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Rune aliases for keys that are awkward as bare TOML or env values
var keyAliases = map[string]rune{
	"space": ' ',
}

// ParseKey resolves a binding to its rune: a single character or an alias
func ParseKey(key string) (rune, error) {
	if r, ok := keyAliases[strings.ToLower(key)]; ok {
		return r, nil
	}
	r := []rune(key)
	if len(r) != 1 {
		return 0, fmt.Errorf("want a single character or alias, got %q", key)
	}
	return r[0], nil
}

// Runes returns the bindings keyed by action name
func (k KeyBindings) Runes() (map[string]rune, error) {
	out := make(map[string]rune, 5)
	seen := make(map[rune]string, 5)
	for _, b := range []struct{ name, key string }{
		{"quit", k.Quit}, {"pause", k.Pause}, {"red", k.Red}, {"green", k.Green}, {"blue", k.Blue},
	} {
		r, err := ParseKey(b.key)
		if err != nil {
			return nil, fmt.Errorf("key %s: %w", b.name, err)
		}
		if other, ok := seen[r]; ok {
			return nil, fmt.Errorf("key %q bound to both %s and %s", b.key, other, b.name)
		}
		seen[r] = b.name
		out[b.name] = r
	}
	return out, nil
}
