//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"lifebox/internal/render"
	"lifebox/internal/sandbox"
)

// Overlay draws pointer feedback and a status line on top of the grid.
type Overlay struct {
	session    *sandbox.Session
	painter    *render.GridPainter
	pal        render.Palette
	showStatus bool
}

// NewOverlay constructs an overlay for the session.
func NewOverlay(s *sandbox.Session, painter *render.GridPainter, pal render.Palette) *Overlay {
	return &Overlay{session: s, painter: painter, pal: pal, showStatus: true}
}

// ToggleStatus shows or hides the status line.
func (o *Overlay) ToggleStatus() { o.showStatus = !o.showStatus }

// Draw renders the overlay for a pointer at (mx, my). The marker is skipped
// when hover is false or the pointer is off the grid.
func (o *Overlay) Draw(screen *ebiten.Image, mx, my int, hover bool) {
	v := o.session.Viewport()
	eng := o.session.Engine()
	if x, y, ok := o.session.Hover(float64(mx), float64(my)); ok && hover && !v.Dragging() {
		if !eng.Get(x, y) {
			o.painter.FillCell(screen, v, x, y, o.pal.Hover)
		}
		if span := v.BrushSpan(); span > 1 {
			px, py := v.CellToScreen(x, y)
			side := float32(float64(span) * v.CellSize)
			vector.StrokeRect(screen, float32(px), float32(py), side, side, 1, o.pal.Hover, false)
		}
	}
	if !o.showStatus {
		return
	}
	status := fmt.Sprintf("gen %d  pop %d  bias %.2f  brush %d  %d/s",
		eng.Generation(), eng.Population(), o.session.Bias(), v.BrushSpan(), o.session.SimulationRate())
	h := screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, float32(h-22), float32(len(status)*7+16), 22, color.RGBA{A: 180}, false)
	text.Draw(screen, status, basicfont.Face7x13, 8, h-7, color.RGBA{R: 220, G: 220, B: 230, A: 255})
}
