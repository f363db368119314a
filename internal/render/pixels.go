// Package render converts grid cells into pixels. The pixel conversion is
// build-tag free; the ebiten painter needs the ebiten tag.
package render

import "image/color"

// Palette holds the colours used to paint cells.
type Palette struct {
	Alive color.Color
	Dead  color.Color
	Hover color.Color
}

// DefaultPalette paints white cells on black with a grey hover marker.
func DefaultPalette() Palette {
	return Palette{
		Alive: color.White,
		Dead:  color.Black,
		Hover: color.RGBA{R: 128, G: 128, B: 128, A: 255},
	}
}

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// Rect is a screen rectangle in pixels.
type Rect struct {
	X, Y, W, H float64
}

// CellMapper is the part of the viewport painters need.
type CellMapper interface {
	CellToScreen(cx, cy int) (float64, float64)
}

// CellRect returns the screen rectangle of cell (x, y) at the given cell size.
func CellRect(m CellMapper, x, y int, cellSize float64) Rect {
	px, py := m.CellToScreen(x, y)
	return Rect{X: px, Y: py, W: cellSize, H: cellSize}
}

// Visible reports whether r overlaps a screen of size w*h.
func (r Rect) Visible(w, h int) bool {
	return r.W > 0 && r.H > 0 && r.X+r.W > 0 && r.Y+r.H > 0 && r.X < float64(w) && r.Y < float64(h)
}
