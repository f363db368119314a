package life

import (
	"lifebox/internal/core"
)

// StepStats reports what a single generation changed.
type StepStats struct {
	Generation int
	Births     int
	Deaths     int
	Population int
}

// Engine implements Conway's Game of Life on a bounded grid. Cells beyond the
// edges count as dead; nothing wraps around.
//
// Coordinates are (x, y) with x the column and y the row. Every accessor
// tolerates out-of-range coordinates: reads report a dead cell and writes are
// dropped.
type Engine struct {
	grid *core.ByteGrid
	rng  *core.RNG

	kill  []int
	birth []int

	generation int
	last       StepStats
}

// New returns an engine with rows*cols dead cells. Dimensions below 1 are
// raised to 1.
func New(rows, cols int) *Engine {
	return &Engine{
		grid: core.NewByteGrid(cols, rows),
		rng:  core.NewRNG(0),
	}
}

// NewSeeded returns an engine whose randomisation is driven by seed.
func NewSeeded(rows, cols int, seed int64) *Engine {
	e := New(rows, cols)
	e.rng = core.NewRNG(seed)
	return e
}

// Size returns the grid dimensions.
func (e *Engine) Size() core.Size { return core.Size{W: e.grid.W, H: e.grid.H} }

// Rows returns the number of grid rows.
func (e *Engine) Rows() int { return e.grid.H }

// Cols returns the number of grid columns.
func (e *Engine) Cols() int { return e.grid.W }

// Cells exposes the current grid values in row-major order, 1 for alive and
// 0 for dead. Callers must treat the slice as read-only.
func (e *Engine) Cells() []uint8 { return e.grid.Cells() }

// Generation returns the number of steps taken since the last clear.
func (e *Engine) Generation() int { return e.generation }

// LastStep returns the statistics of the most recent step.
func (e *Engine) LastStep() StepStats { return e.last }

// Population returns the number of live cells.
func (e *Engine) Population() int { return e.grid.Count() }

// InBounds reports whether (x, y) addresses a grid cell.
func (e *Engine) InBounds(x, y int) bool { return e.grid.InBounds(x, y) }

// Get reports whether the cell at (x, y) is alive.
func (e *Engine) Get(x, y int) bool { return e.grid.At(x, y) != 0 }

// Set overwrites the cell at (x, y).
func (e *Engine) Set(x, y int, alive bool) {
	e.grid.Put(x, y, boolToCell(alive))
}

// Toggle flips the cell at (x, y).
func (e *Engine) Toggle(x, y int) {
	if !e.grid.InBounds(x, y) {
		return
	}
	e.Set(x, y, !e.Get(x, y))
}

// SetBlock applies Set to every cell of the w*h rectangle anchored at (x, y),
// clipped to the grid.
func (e *Engine) SetBlock(x, y, w, h int, alive bool) {
	x0, y0, x1, y1 := e.grid.Clip(x, y, w, h)
	v := boolToCell(alive)
	cells := e.grid.Cells()
	for yy := y0; yy < y1; yy++ {
		row := yy * e.grid.W
		for xx := x0; xx < x1; xx++ {
			cells[row+xx] = v
		}
	}
}

// Clear kills every cell and restarts the generation count.
func (e *Engine) Clear() {
	e.grid.Clear()
	e.generation = 0
	e.last = StepStats{}
}

// Randomize redraws every cell. A cell comes alive when a uniform draw r in
// [0,1) satisfies r-bias >= 0, so bias is the share of cells left dead. Bias
// is clamped to [0,1].
func (e *Engine) Randomize(bias float64) {
	e.rng.FillThreshold(e.grid.Cells(), clamp01(bias))
	e.generation = 0
	e.last = StepStats{}
}

// Step advances the grid by one generation. Kills and births are collected
// against the unmodified grid first and only then applied, so every neighbour
// count reflects the previous generation.
func (e *Engine) Step() {
	w, h := e.grid.W, e.grid.H
	cells := e.grid.Cells()
	e.kill = e.kill[:0]
	e.birth = e.birth[:0]

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			n := e.neighbors(x, y)
			idx := y*w + x
			if cells[idx] != 0 {
				if n < 2 || n > 3 {
					e.kill = append(e.kill, idx)
				}
				continue
			}
			if n == 3 {
				e.birth = append(e.birth, idx)
			}
		}
	}

	for _, idx := range e.kill {
		cells[idx] = 0
	}
	for _, idx := range e.birth {
		cells[idx] = 1
	}

	e.generation++
	e.last = StepStats{
		Generation: e.generation,
		Births:     len(e.birth),
		Deaths:     len(e.kill),
		Population: e.grid.Count(),
	}
}

// Neighbors returns the number of live cells among the eight cells adjacent
// to (x, y).
func (e *Engine) Neighbors(x, y int) int {
	return e.neighbors(x, y)
}

func (e *Engine) neighbors(x, y int) int {
	w, h := e.grid.W, e.grid.H
	cells := e.grid.Cells()
	n := 0
	for dy := -1; dy <= 1; dy++ {
		ny := y + dy
		if ny < 0 || ny >= h {
			continue
		}
		for dx := -1; dx <= 1; dx++ {
			nx := x + dx
			if (dx == 0 && dy == 0) || nx < 0 || nx >= w {
				continue
			}
			n += int(cells[ny*w+nx])
		}
	}
	return n
}

func boolToCell(alive bool) uint8 {
	if alive {
		return 1
	}
	return 0
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
