//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// HUD draws the parameter panel along the right edge of the window.
type HUD struct {
	controls *Controls
	width    int
	offsetX  int
	height   int
	title    string
	visible  bool

	rows []hudRow
}

type hudRow struct {
	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// NewHUD constructs a HUD for src with the given panel width.
func NewHUD(src ParameterSource, width int) *HUD {
	h := &HUD{
		controls: NewControls(src),
		width:    max(width, 0),
		title:    "Game Of Life",
		visible:  width > 0,
	}
	h.layout()
	return h
}

// Toggle shows or hides the panel.
func (h *HUD) Toggle() { h.visible = !h.visible }

// Visible reports whether the panel is shown.
func (h *HUD) Visible() bool { return h != nil && h.visible && h.width > 0 }

// Contains reports whether a screen point lies on the panel. Clicks there
// must not reach the grid.
func (h *HUD) Contains(x, y int) bool {
	if !h.Visible() {
		return false
	}
	return x >= h.offsetX && x < h.offsetX+h.width && y >= 0 && y < h.height
}

// Update refreshes the values and applies a click at (mx, my) when clicked is
// set. The panel sits against the right edge of a screen of the given size.
func (h *HUD) Update(screenW, screenH, mx, my int, clicked bool) {
	if !h.Visible() {
		return
	}
	h.offsetX = screenW - h.width
	h.height = screenH
	h.controls.Refresh()
	if !clicked || !h.Contains(mx, my) {
		return
	}
	px := mx - h.offsetX
	for i, row := range h.rows {
		if pointInRect(px, my, row.minusRect) {
			h.controls.Adjust(i, -1)
			return
		}
		if pointInRect(px, my, row.plusRect) {
			h.controls.Adjust(i, 1)
			return
		}
	}
}

// Draw paints the panel.
func (h *HUD) Draw(screen *ebiten.Image) {
	if !h.Visible() {
		return
	}
	ox := float32(h.offsetX)
	vector.DrawFilledRect(screen, ox, 0, float32(h.width), float32(h.height), color.RGBA{R: 16, G: 16, B: 20, A: 230}, false)

	face := basicfont.Face7x13
	text.Draw(screen, h.title, face, h.offsetX+panelPadding, panelPadding+headerBaseline, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	for i, row := range h.rows {
		labelY := row.top + labelBaseline
		text.Draw(screen, h.controls.Label(i), face, h.offsetX+panelPadding, labelY, color.RGBA{R: 220, G: 220, B: 230, A: 255})

		value := h.controls.Value(i)
		valueX := h.offsetX + row.minusRect.Min.X - buttonGap - text.BoundString(face, value).Dx()
		text.Draw(screen, value, face, valueX, labelY, color.RGBA{R: 220, G: 220, B: 230, A: 255})

		h.drawButton(screen, row.minusRect, "-", h.controls.CanAdjust(i, -1))
		h.drawButton(screen, row.plusRect, "+", h.controls.CanAdjust(i, 1))
	}
}

func (h *HUD) drawButton(screen *ebiten.Image, rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	rect = rect.Add(image.Pt(h.offsetX, 0))
	vector.DrawFilledRect(screen, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), bg, false)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(screen, label, face, x, y, fg)
}

func (h *HUD) layout() {
	h.rows = make([]hudRow, h.controls.Len())
	for i := range h.rows {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plus := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, buttonY, plus.Min.X-buttonGap, buttonY+buttonSize)
		h.rows[i] = hudRow{top: top, minusRect: minus, plusRect: plus}
	}
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return image.Pt(x, y).In(rect)
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	controlsTop    = panelPadding + headerBaseline + 14
)
