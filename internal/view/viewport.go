// Package view maps pointer coordinates onto grid cells and back, and keeps
// the camera, zoom and brush state the frontends share.
package view

import "math"

// MaxBrush bounds the brush radius.
const MaxBrush = 64

// Point is a screen or world position in pixels.
type Point struct {
	X, Y float64
}

// Viewport owns the camera offset, the cell size (pixels per cell), the brush
// radius and the pan gesture.
//
// Camera.Y is stored inverted relative to screen Y: moving the pointer down
// while dragging increases Camera.Y. ScreenToCell and CellToScreen both encode
// that convention and must stay in step with each other.
type Viewport struct {
	Camera   Point
	CellSize float64

	brush int

	held   *Point
	offset Point
}

// New returns a viewport with the camera at the origin.
func New(cellSize float64) *Viewport {
	return &Viewport{CellSize: max(cellSize, 0)}
}

// ScreenToCell returns the grid cell under the pointer. The committed camera
// is used; an in-progress pan does not move the mapping until it is
// committed. With a non-positive cell size the result is (-1, -1), which lies
// outside every grid.
func (v *Viewport) ScreenToCell(px, py float64) (int, int) {
	cs := v.CellSize
	if cs <= 0 {
		return -1, -1
	}
	x := math.Floor(px/cs) + math.Floor(v.Camera.X/cs)
	y := math.Floor(py/cs) - math.Floor(v.Camera.Y/cs)
	return toCell(x), toCell(y)
}

// CellToScreen returns the top-left screen position of a cell, including the
// live pan offset so a drag moves the picture before it is committed.
func (v *Viewport) CellToScreen(cx, cy int) (float64, float64) {
	cs := v.CellSize
	px := float64(cx)*cs - v.Camera.X + v.offset.X
	py := float64(cy)*cs + v.Camera.Y - v.offset.Y
	return px, py
}

// CellUnder is the exact inverse of CellToScreen: it returns the cell whose
// painted rectangle contains the screen point, pan offset included.
// Rasterising frontends use it to sample the grid per screen position.
func (v *Viewport) CellUnder(px, py float64) (int, int) {
	cs := v.CellSize
	if cs <= 0 {
		return -1, -1
	}
	x := math.Floor((px + v.Camera.X - v.offset.X) / cs)
	y := math.Floor((py - v.Camera.Y + v.offset.Y) / cs)
	return toCell(x), toCell(y)
}

// Dragging reports whether a pan gesture is latched.
func (v *Viewport) Dragging() bool { return v.held != nil }

// PanOffset returns the uncommitted pan offset. It is (0,0) while idle.
func (v *Viewport) PanOffset() Point { return v.offset }

// BeginPanIfNeeded latches the gesture start at p when a pan gesture is
// active and none is in progress. Re-entering while dragging is a no-op.
func (v *Viewport) BeginPanIfNeeded(p Point, active bool) {
	if !active || v.held != nil {
		return
	}
	start := p
	v.held = &start
}

// UpdatePan recomputes the pan offset from the latched start. The Y component
// is negated to match the camera's inverted Y.
func (v *Viewport) UpdatePan(p Point) {
	if v.held == nil {
		return
	}
	v.offset = Point{X: p.X - v.held.X, Y: -(p.Y - v.held.Y)}
}

// CommitPan folds the pan offset into the camera and returns to idle. It is
// called on every frame without an active pan gesture, so it is a no-op when
// nothing is pending.
func (v *Viewport) CommitPan() {
	v.Camera.X -= v.offset.X
	v.Camera.Y -= v.offset.Y
	v.offset = Point{}
	v.held = nil
}

// Zoom changes the cell size by delta, never going below zero, and nudges the
// camera by the applied change times the new cell size so the view stays
// roughly centred. The compensation is an approximation; the point under the
// cursor is not pinned exactly.
func (v *Viewport) Zoom(delta float64) {
	next := max(v.CellSize+delta, 0)
	applied := next - v.CellSize
	v.CellSize = next
	comp := applied * next
	v.Camera.X += comp
	v.Camera.Y -= comp
}

// FitToScreen sizes cells so the larger grid dimension spans the larger
// screen dimension, and moves the camera back to the origin.
func (v *Viewport) FitToScreen(screenW, screenH, rows, cols int) {
	cells := max(rows, cols, 1)
	v.CellSize = math.Floor(float64(max(screenW, screenH, 0)) / float64(cells))
	v.Camera = Point{}
}

// Brush returns the brush radius; 0 paints a single cell.
func (v *Viewport) Brush() int { return v.brush }

// BrushSpan returns the side length of the square a single edit covers.
func (v *Viewport) BrushSpan() int { return v.brush + 1 }

// SetBrush sets the brush radius, clamped to [0, MaxBrush].
func (v *Viewport) SetBrush(n int) { v.brush = min(max(n, 0), MaxBrush) }

// GrowBrush widens the brush by one cell.
func (v *Viewport) GrowBrush() { v.SetBrush(v.brush + 1) }

// ShrinkBrush narrows the brush by one cell.
func (v *Viewport) ShrinkBrush() { v.SetBrush(v.brush - 1) }

func toCell(f float64) int {
	if math.IsNaN(f) || f < math.MinInt32 || f > math.MaxInt32 {
		return -1
	}
	return int(f)
}
