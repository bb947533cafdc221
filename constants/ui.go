package constants

// Gradient construction
const (
	// GradientBase is the fixed value of the two channels not driven by the hue
	GradientBase = 20

	// GradientBright and GradientDim are the driven channel at the head and tail end
	GradientBright = 250
	GradientDim    = 25

	// DefaultBackground is the default background color
	DefaultBackground = "#000000"

	// DefaultHue is the hue used when none is configured
	DefaultHue = "green"
)

// Default key bindings (single runes; Esc and Ctrl+C always quit)
const (
	KeyQuit  = 'q'
	KeyPause = 'p'
	KeyRed   = 'r'
	KeyGreen = 'g'
	KeyBlue  = 'b'
)

// Debug logging
const (
	LogDir      = "logs"
	LogFileName = "matrix-rain.log"
	MaxLogSize  = 10 * 1024 * 1024
)
