//go:build ebiten

package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"lifebox/internal/input"
	"lifebox/internal/render"
	"lifebox/internal/sandbox"
	"lifebox/internal/ui"
)

// HUDWidth is the width of the parameter panel in pixels.
const HUDWidth = 240

// Game adapts a sandbox session to the ebiten.Game interface.
type Game struct {
	session *sandbox.Session
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	keymap input.Keymap
	edges  *input.EdgeTracker
	queue  input.Queue

	keys     []ebiten.Key
	names    []string
	released []string
	title    string
}

// New constructs a Game for the provided session and key bindings.
func New(s *sandbox.Session, keymap input.Keymap) *Game {
	size := s.Engine().Size()
	pal := render.DefaultPalette()
	painter := render.NewGridPainter(size.W, size.H, pal)
	return &Game{
		session: s,
		painter: painter,
		overlay: ui.NewOverlay(s, painter, pal),
		hud:     ui.NewHUD(s, HUDWidth),
		keymap:  keymap,
		edges:   input.NewEdgeTracker(),
	}
}

// Update samples input, feeds it to the session and keeps the window title in
// sync with the simulation state.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.keys = inpututil.AppendPressedKeys(g.keys[:0])
	g.names = g.names[:0]
	for _, k := range g.keys {
		g.names = append(g.names, k.String())
	}
	g.released = g.edges.Released(g.released[:0], g.names)
	for _, name := range g.released {
		switch name {
		case "H":
			g.hud.Toggle()
		case "I":
			g.overlay.ToggleStatus()
		}
	}
	g.keymap.Decode(&g.queue, g.released)

	mx, my := ebiten.CursorPosition()
	sw, sh := g.session.ScreenSize()
	g.hud.Update(sw, sh, mx, my, inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft))

	f := input.Frame{
		PointerX: float64(mx),
		PointerY: float64(my),
		Pan:      ebiten.IsKeyPressed(ebiten.KeyShift),
		Boost:    ebiten.IsKeyPressed(ebiten.KeyControl),
	}
	if !g.hud.Contains(mx, my) || g.session.Viewport().Dragging() {
		f.Primary = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
		f.Secondary = ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	}
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyEqual) || ebiten.IsKeyPressed(ebiten.KeyNumpadAdd):
		f.Zoom = 1
	case ebiten.IsKeyPressed(ebiten.KeyMinus) || ebiten.IsKeyPressed(ebiten.KeyNumpadSubtract):
		f.Zoom = -1
	}

	g.session.Update(f, g.queue.Drain())

	if title := g.session.Title(); title != g.title {
		g.title = title
		ebiten.SetWindowTitle(title)
	}
	return nil
}

// Draw renders the grid, then the overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(render.DefaultPalette().Dead)
	g.painter.Blit(screen, g.session.Engine().Cells(), g.session.Viewport())
	mx, my := ebiten.CursorPosition()
	g.overlay.Draw(screen, mx, my, !g.hud.Contains(mx, my))
	g.hud.Draw(screen)
}

// Layout tracks the window size so FitToScreen uses the real drawable area.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.session.SetScreenSize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until it is closed.
func Run(g *Game) error {
	w, h := g.session.ScreenSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(g.session.FrameRate())
	g.title = g.session.Title()
	ebiten.SetWindowTitle(g.title)
	return ebiten.RunGame(g)
}
