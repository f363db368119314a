// Package tui runs a sandbox session in the terminal. Each character column
// is one virtual pixel wide and each row two pixels tall, so a cell size of 2
// draws cells two characters wide and one line tall.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"lifebox/internal/input"
	"lifebox/internal/sandbox"
	"lifebox/internal/telemetry"
)

const (
	pixelW = 1
	pixelH = 2

	// chrome is the number of terminal lines used by the header and footer.
	chrome    = 3
	plotLines = 8
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

const (
	glyphAlive = '█'
	glyphDead  = ' '
	glyphHover = '░'
	glyphEdge  = '·'
)

type tickMsg time.Time

// Model is the bubbletea model wrapping a session.
type Model struct {
	session  *sandbox.Session
	recorder *telemetry.Recorder
	keymap   input.Keymap
	queue    input.Queue

	width, height int

	pointerX, pointerY int
	pointerIn          bool
	primary, secondary bool
	pan                bool
	// sticky presses survive until a tick has applied them, so a click that
	// is released between two ticks still edits.
	stickyPrimary, stickySecondary bool
	zoom                           int
	boost                          bool

	showPlot bool
}

// New wraps a session. The recorder may be nil; when set it feeds the
// population plot and should already be attached to the session.
func New(s *sandbox.Session, keymap input.Keymap, rec *telemetry.Recorder) *Model {
	m := &Model{
		session:  s,
		recorder: rec,
		keymap:   keymap,
		width:    80,
		height:   24,
	}
	m.resize(m.width, m.height)
	return m
}

// Err returns the first telemetry error seen while running.
func (m *Model) Err() error {
	if m.recorder == nil {
		return nil
	}
	return m.recorder.Err()
}

func (m *Model) Init() tea.Cmd { return m.tick() }

func (m *Model) tick() tea.Cmd {
	d := time.Second / time.Duration(max(m.session.FrameRate(), 1))
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case tickMsg:
		m.step()
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()
	switch key {
	case "q", "esc", "ctrl+c":
		return tea.Quit
	case "v":
		m.showPlot = !m.showPlot
		m.resize(m.width, m.height)
		return nil
	case "=":
		m.zoom, m.boost = 1, false
		return nil
	case "-":
		m.zoom, m.boost = -1, false
		return nil
	case "+":
		m.zoom, m.boost = 1, true
		return nil
	case "_":
		m.zoom, m.boost = -1, true
		return nil
	}
	m.keymap.Decode(&m.queue, []string{key})
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	m.pointerX, m.pointerY = msg.X, msg.Y-1
	m.pointerIn = m.pointerY >= 0 && m.pointerY < m.gridLines()
	m.pan = msg.Shift || msg.Alt || msg.Ctrl

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			m.primary, m.stickyPrimary = true, m.pointerIn
		case tea.MouseButtonRight:
			m.secondary, m.stickySecondary = true, m.pointerIn
		case tea.MouseButtonWheelUp:
			m.zoom = 1
		case tea.MouseButtonWheelDown:
			m.zoom = -1
		}
	case tea.MouseActionRelease:
		m.primary, m.secondary = false, false
	}
}

// frame samples the current input state in session pixels.
func (m *Model) frame() input.Frame {
	f := input.Frame{
		PointerX: float64(m.pointerX*pixelW) + pixelW/2.0,
		PointerY: float64(m.pointerY*pixelH) + pixelH/2.0,
		Pan:      m.pan,
		Zoom:     m.zoom,
		Boost:    m.boost,
	}
	dragging := m.session.Viewport().Dragging()
	if m.pointerIn || dragging {
		f.Primary = m.primary || m.stickyPrimary
		f.Secondary = m.secondary || m.stickySecondary
	}
	return f
}

func (m *Model) step() {
	m.session.Update(m.frame(), m.queue.Drain())
	m.stickyPrimary, m.stickySecondary = false, false
	m.zoom, m.boost = 0, false
}

func (m *Model) gridLines() int {
	lines := m.height - chrome
	if m.showPlot {
		lines -= plotLines + 1
	}
	return max(lines, 1)
}

func (m *Model) resize(w, h int) {
	m.width, m.height = max(w, 1), max(h, 1)
	m.session.SetScreenSize(m.width*pixelW, m.gridLines()*pixelH)
}

func (m *Model) View() string {
	var b strings.Builder

	eng := m.session.Engine()
	icon, state := yellow.Render("○"), yellow.Render("paused")
	if m.session.Running() {
		icon, state = green.Render("●"), green.Render("running")
	}
	fmt.Fprintf(&b, "%s %s  %s  %s\n", icon, cyan.Render(m.session.Title()), state,
		dim.Render(fmt.Sprintf("gen %d  pop %d  bias %.2f  brush %d  %d/s",
			eng.Generation(), eng.Population(), m.session.Bias(),
			m.session.Viewport().BrushSpan(), m.session.SimulationRate())))

	b.WriteString(m.raster())

	if m.showPlot {
		b.WriteString(m.plot())
		b.WriteByte('\n')
	}
	if err := m.Err(); err != nil {
		b.WriteString(yellow.Render("telemetry: "+err.Error()) + "\n")
	}
	b.WriteString(dim.Render("p run  n step  c clear  r/g random  ↑↓ bias  [] brush  =/- zoom  f fit  t template  v plot  q quit"))
	return b.String()
}

// raster draws the visible part of the grid, one glyph per character.
// hoverCell returns the cell a click at the pointer would edit, or (-1, -1)
// when the pointer is off the grid. It follows the committed camera rather
// than the sampled raster.
func (m *Model) hoverCell() (int, int) {
	if !m.pointerIn {
		return -1, -1
	}
	f := m.frame()
	if x, y, ok := m.session.Hover(f.PointerX, f.PointerY); ok {
		return x, y
	}
	return -1, -1
}

func (m *Model) raster() string {
	v := m.session.Viewport()
	eng := m.session.Engine()
	hx, hy := m.hoverCell()

	alive := white.Render(string(glyphAlive))
	edge := dimmer.Render(string(glyphEdge))
	hover := dim.Render(string(glyphHover))

	var b strings.Builder
	lines := m.gridLines()
	for row := 0; row < lines; row++ {
		py := float64(row*pixelH) + pixelH/2.0
		for col := 0; col < m.width; col++ {
			px := float64(col*pixelW) + pixelW/2.0
			x, y := v.CellUnder(px, py)
			switch {
			case !eng.InBounds(x, y):
				b.WriteString(edge)
			case eng.Get(x, y):
				b.WriteString(alive)
			case x == hx && y == hy:
				b.WriteString(hover)
			default:
				b.WriteRune(glyphDead)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (m *Model) plot() string {
	if m.recorder == nil {
		return dim.Render("no population data")
	}
	data := m.recorder.History()
	if len(data) < 2 {
		return dim.Render("waiting for generations...")
	}
	width := max(m.width-12, 10)
	if len(data) > width {
		data = data[len(data)-width:]
	}
	return asciigraph.Plot(data,
		asciigraph.Height(plotLines-1),
		asciigraph.Width(width),
		asciigraph.Caption("population"),
	)
}
