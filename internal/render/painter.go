//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"lifebox/internal/view"
)

// GridPainter keeps one pixel per cell in an image and draws it scaled by the
// viewport cell size.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
	pal  Palette
}

// NewGridPainter allocates a painter for a grid of w columns and h rows.
func NewGridPainter(w, h int, pal Palette) *GridPainter {
	w, h = max(w, 1), max(h, 1)
	return &GridPainter{
		w:   w,
		h:   h,
		img: ebiten.NewImage(w, h),
		buf: make([]byte, 4*w*h),
		pal: pal,
	}
}

// Blit uploads the cells and draws them through the viewport.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, v *view.Viewport) {
	if len(cells) != gp.w*gp.h || v.CellSize <= 0 {
		return
	}
	fillBinaryRGBA(gp.buf, cells, gp.pal.Alive, gp.pal.Dead)
	gp.img.WritePixels(gp.buf)

	ox, oy := v.CellToScreen(0, 0)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(v.CellSize, v.CellSize)
	op.GeoM.Translate(ox, oy)
	dst.DrawImage(gp.img, op)
}

// FillCell paints a single cell rectangle, used for hover markers.
func (gp *GridPainter) FillCell(dst *ebiten.Image, v *view.Viewport, x, y int, c color.Color) {
	r := CellRect(v, x, y, v.CellSize)
	b := dst.Bounds()
	if !r.Visible(b.Dx(), b.Dy()) {
		return
	}
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
