package constants

import "time"

// Audio cue settings
const (
	// CueSampleRate is the speaker sample rate in Hz
	CueSampleRate = 44100

	// CueBufferDuration is the speaker buffer length
	CueBufferDuration = 100 * time.Millisecond

	// HueCueDuration is the length of the tone played on a hue change
	HueCueDuration = 60 * time.Millisecond

	// PauseCueDuration is the length of the tone played on pause toggle
	PauseCueDuration = 40 * time.Millisecond
)

// Cue tone frequencies in Hz
const (
	CueFreqRed    = 440.0
	CueFreqGreen  = 554.37
	CueFreqBlue   = 659.25
	CueFreqPause  = 220.0
	CueFreqResume = 330.0
)
