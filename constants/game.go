package constants

import "time"

// Frame Loop Timing Constants
const (
	// FrameIntervalMs is the default delay between frames
	FrameIntervalMs = 50

	// FrameUpdateInterval is FrameIntervalMs as a duration
	FrameUpdateInterval = FrameIntervalMs * time.Millisecond

	// MinFrameIntervalMs and MaxFrameIntervalMs bound the configurable interval
	MinFrameIntervalMs = 10
	MaxFrameIntervalMs = 1000
)

// Population Constants
const (
	// DefaultMaxCells is the hard cap on concurrently tracked cells
	DefaultMaxCells = 200

	// MaxCellsLimit bounds the configurable cap
	MaxCellsLimit = 100000

	// DefaultSpawnProbability is the per-check chance (0-100) of another spawn in the same frame
	DefaultSpawnProbability = 60

	// SpawnBandDivisor: spawn rows are drawn from [0, rows/SpawnBandDivisor]
	SpawnBandDivisor = 10

	// TailDivisor: tail length is rows/TailDivisor, at least MinTailLength
	TailDivisor   = 3
	MinTailLength = 1
)
