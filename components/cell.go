package components

// Cell is one falling character stream.
// X is fixed for the cell's lifetime. Y is the head row and stops moving once
// the cell dies; Drift then counts the ticks since death so the trail can keep
// sliding off the bottom edge.
type Cell struct {
	X     int
	Y     int
	Age   int // Ticks since spawn, alive or dead
	Drift int // Ticks since death
	Alive bool
}

// NewCell creates a live cell at the given spawn position
func NewCell(x, y int) Cell {
	return Cell{X: x, Y: y, Alive: true}
}

// Head returns the virtual head row: Y while alive, Y plus Drift once dead
func (c Cell) Head() int {
	return c.Y + c.Drift
}

// Visible returns the number of trailing rows behind the head, capped at tail
func (c Cell) Visible(tail int) int {
	if c.Age < tail {
		return c.Age
	}
	return tail
}

// Sliding reports whether the trail is at full length and drops one row per tick
func (c Cell) Sliding(tail int) bool {
	return c.Age > tail
}

// TrailEnd returns the row that left the trail window on the last tick,
// clamped to 0 near the top of the screen
func (c Cell) TrailEnd(tail int) int {
	return ClampRow(c.Head() - tail - 1)
}

// Gone reports whether nothing of a dead cell remains on a screen of the given height
func (c Cell) Gone(rows, tail int) bool {
	return !c.Alive && c.Head()-tail >= rows
}

// ClampRow clamps a row computed by subtraction to 0
func ClampRow(row int) int {
	if row < 0 {
		return 0
	}
	return row
}
