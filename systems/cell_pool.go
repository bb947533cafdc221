package systems

import (
	"github.com/lixenwraith/matrix-rain/components"
	"github.com/lixenwraith/matrix-rain/engine"
	"github.com/lixenwraith/matrix-rain/render"
)

// CellPool owns the live and dying cells. Order is irrelevant and several
// cells may share a column.
type CellPool struct {
	cells    []components.Cell
	maxCells int
}

// NewCellPool creates an empty pool with a hard cap
func NewCellPool(maxCells int) *CellPool {
	return &CellPool{
		cells:    make([]components.Cell, 0, maxCells),
		maxCells: maxCells,
	}
}

// Len returns the number of tracked cells
func (p *CellPool) Len() int {
	return len(p.cells)
}

// Cap returns the hard cap
func (p *CellPool) Cap() int {
	return p.maxCells
}

// Cells exposes the pool for rendering; callers must not retain the slice across frames
func (p *CellPool) Cells() []components.Cell {
	return p.cells
}

// Add appends a cell unless the pool is full; reports whether it was kept
func (p *CellPool) Add(c components.Cell) bool {
	if len(p.cells) >= p.maxCells {
		return false
	}
	p.cells = append(p.cells, c)
	return true
}

// Spawn adds one cell, then keeps adding while a fresh draw in [0,100) falls
// below the spawn probability. Spawn rows are biased to the top band
// [0, rows/10]. Stops early once the pool is full.
func (p *CellPool) Spawn(rng render.RandSource, cfg *engine.MatrixConfig) int {
	if cfg.Cols <= 0 || cfg.Rows <= 0 {
		return 0
	}

	spawned := 0
	for len(p.cells) < p.maxCells {
		x := rng.Intn(cfg.Cols)
		y := rng.Intn(cfg.SpawnBand() + 1)
		p.cells = append(p.cells, components.NewCell(x, y))
		spawned++

		if rng.Intn(100) >= cfg.SpawnProbability {
			break
		}
	}
	return spawned
}

// Tick ages every cell and moves live heads down one row.
// A cell dies on the tick its head passes the last row; from then on its
// head stays put and Drift carries the trail off screen.
func (p *CellPool) Tick(rows int) {
	for i := range p.cells {
		c := &p.cells[i]
		c.Age++
		if !c.Alive {
			c.Drift++
			continue
		}
		c.Y++
		if c.Y > rows-1 {
			c.Alive = false
		}
	}
}

// Prune removes dead cells with nothing left on screen. Must run after the
// render pass that erased their last row. Returns the number removed.
func (p *CellPool) Prune(rows, tail int) int {
	kept := p.cells[:0]
	for _, c := range p.cells {
		if c.Gone(rows, tail) {
			continue
		}
		kept = append(kept, c)
	}
	removed := len(p.cells) - len(kept)
	p.cells = kept
	return removed
}
