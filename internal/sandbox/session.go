// Package sandbox drives one interactive Game of Life session: it owns the
// engine, the viewport and the simulation clock, and applies one frame of
// input at a time. Frontends call Update once per rendered frame and read the
// engine and viewport back to paint.
package sandbox

import (
	"log/slog"
	"math"

	"lifebox/internal/config"
	"lifebox/internal/core"
	"lifebox/internal/input"
	"lifebox/internal/sims/life"
	"lifebox/internal/view"
)

// BiasStep is the bias change applied by one BiasUp or BiasDown command.
const BiasStep = 0.01

const (
	titleRunning = "Simulating..."
	titleIdle    = "Game Of Life"
)

// Options configures a session. Zero values fall back to the config package
// defaults.
type Options struct {
	ScreenW, ScreenH int
	Rows, Cols       int
	CellSize         float64

	FrameRate      int
	SimulationRate int
	Bias           float64
	Seed           int64
	NoiseScale     float64
	Running        bool

	ZoomRate  float64
	ZoomBoost float64

	// Template loads the built-in seed at (TemplateX, TemplateY). A negative
	// coordinate anchors near the top-left corner of the initial view.
	Template             bool
	TemplateX, TemplateY int

	Logger *slog.Logger
}

// OptionsFromConfig derives session options from a configuration.
func OptionsFromConfig(cfg *config.Config) Options {
	rows, cols := cfg.GridSize()
	return Options{
		ScreenW:        cfg.Screen.Width,
		ScreenH:        cfg.Screen.Height,
		Rows:           rows,
		Cols:           cols,
		CellSize:       float64(cfg.Grid.CellSize),
		FrameRate:      cfg.Simulation.FrameRate,
		SimulationRate: cfg.Simulation.Rate,
		Bias:           cfg.Simulation.Bias,
		Seed:           cfg.Simulation.Seed,
		NoiseScale:     cfg.Simulation.NoiseScale,
		Running:        cfg.Simulation.Running,
		ZoomRate:       cfg.Controls.ZoomRate,
		ZoomBoost:      cfg.Controls.ZoomBoost,
		Template:       cfg.Grid.Template,
		TemplateX:      cfg.Grid.TemplateX,
		TemplateY:      cfg.Grid.TemplateY,
	}
}

func (o Options) withDefaults() Options {
	if o.ScreenW <= 0 {
		o.ScreenW = config.DefaultScreenWidth
	}
	if o.ScreenH <= 0 {
		o.ScreenH = config.DefaultScreenHeight
	}
	if o.CellSize <= 0 {
		o.CellSize = config.DefaultCellSize
	}
	if o.Rows <= 0 || o.Cols <= 0 {
		cs := int(o.CellSize)
		o.Rows = config.DefaultGridScale * ((o.ScreenH + cs - 1) / cs)
		o.Cols = config.DefaultGridScale * ((o.ScreenW + cs - 1) / cs)
	}
	if o.FrameRate <= 0 {
		o.FrameRate = config.DefaultFrameRate
	}
	if o.SimulationRate <= 0 {
		o.SimulationRate = config.DefaultRate
	}
	if o.NoiseScale <= 0 {
		o.NoiseScale = config.DefaultNoiseScale
	}
	if o.ZoomRate <= 0 {
		o.ZoomRate = config.DefaultZoomRate
	}
	if o.ZoomBoost < 1 {
		o.ZoomBoost = 1
	}
	o.Bias = clampBias(o.Bias)
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}

// Session is a single sandbox: grid, camera, simulation clock and the
// settings the input controls adjust.
type Session struct {
	opts   Options
	engine *life.Engine
	view   *view.Viewport
	clock  *core.FrameClock
	logger *slog.Logger

	running   bool
	bias      float64
	noiseSeed int64

	onStep  []func(life.StepStats)
	onReset []func()
}

// New builds a session. The camera starts half the row count across and a
// quarter of the column count down, in pixels.
func New(opts Options) *Session {
	opts = opts.withDefaults()
	s := &Session{
		opts:      opts,
		engine:    life.NewSeeded(opts.Rows, opts.Cols, opts.Seed),
		view:      view.New(opts.CellSize),
		clock:     core.NewFrameClock(opts.FrameRate, opts.SimulationRate),
		logger:    opts.Logger,
		running:   opts.Running,
		bias:      opts.Bias,
		noiseSeed: opts.Seed,
	}
	s.view.Camera = view.Point{
		X: float64(opts.Rows) / 2 * opts.CellSize,
		Y: -float64(opts.Cols) / 4 * opts.CellSize,
	}
	if opts.Template {
		x, y := s.view.ScreenToCell(2*opts.CellSize, 2*opts.CellSize)
		if opts.TemplateX >= 0 {
			x = opts.TemplateX
		}
		if opts.TemplateY >= 0 {
			y = opts.TemplateY
		}
		s.engine.LoadTemplate(life.SeedTemplate(), x, y)
	}
	s.logger.Info("session created",
		"rows", opts.Rows,
		"cols", opts.Cols,
		"cell_size", opts.CellSize,
		"frame_rate", opts.FrameRate,
		"rate", opts.SimulationRate,
		"template", opts.Template,
	)
	return s
}

// Engine exposes the grid for painting. Frontends must not mutate it
// directly.
func (s *Session) Engine() *life.Engine { return s.engine }

// Viewport exposes the camera for painting.
func (s *Session) Viewport() *view.Viewport { return s.view }

// Running reports whether the simulation is on.
func (s *Session) Running() bool { return s.running }

// SimulationRate returns the current steps per second.
func (s *Session) SimulationRate() int { return s.clock.Rate() }

// FrameRate returns the render frame rate the session was built for.
func (s *Session) FrameRate() int { return s.clock.FrameRate() }

// Bias returns the randomize bias.
func (s *Session) Bias() float64 { return s.bias }

// Title returns the window title for the current state.
func (s *Session) Title() string {
	if s.running {
		return titleRunning
	}
	return titleIdle
}

// ScreenSize returns the drawable area used by FitToScreen.
func (s *Session) ScreenSize() (int, int) { return s.opts.ScreenW, s.opts.ScreenH }

// SetScreenSize records a new drawable area. The grid keeps its dimensions.
func (s *Session) SetScreenSize(w, h int) {
	if w > 0 {
		s.opts.ScreenW = w
	}
	if h > 0 {
		s.opts.ScreenH = h
	}
}

// Hover returns the grid cell under a screen point and whether it lies on
// the grid.
func (s *Session) Hover(px, py float64) (int, int, bool) {
	x, y := s.view.ScreenToCell(px, py)
	return x, y, s.engine.InBounds(x, y)
}

// OnStep registers a callback invoked after every executed generation.
func (s *Session) OnStep(fn func(life.StepStats)) {
	if fn != nil {
		s.onStep = append(s.onStep, fn)
	}
}

// OnReset registers a callback invoked when the grid is cleared or reseeded.
func (s *Session) OnReset(fn func()) {
	if fn != nil {
		s.onReset = append(s.onReset, fn)
	}
}

// Update applies one frame: commands first, then zoom, then the pan gesture
// or cell editing, and finally the throttled simulation step. It reports
// whether a generation was computed.
func (s *Session) Update(f input.Frame, cmds []input.Command) bool {
	for _, cmd := range cmds {
		s.Apply(cmd, f)
	}

	if f.Zoom != 0 {
		s.zoom(f)
	}

	p := view.Point{X: f.PointerX, Y: f.PointerY}
	s.view.BeginPanIfNeeded(p, f.Panning())
	if f.Panning() {
		s.view.UpdatePan(p)
	} else {
		s.view.CommitPan()
		if f.Editing() {
			x, y := s.view.ScreenToCell(p.X, p.Y)
			span := s.view.BrushSpan()
			s.engine.SetBlock(x, y, span, span, f.Primary)
		}
	}

	if !s.running || !s.clock.Tick() {
		return false
	}
	s.step()
	return true
}

// Apply executes a single command. The frame supplies the pointer position
// for commands that act at the cursor.
func (s *Session) Apply(cmd input.Command, f input.Frame) {
	switch cmd {
	case input.ToggleSimulation:
		s.running = !s.running
		s.clock.Reset()
	case input.Clear:
		s.engine.Clear()
		s.notifyReset()
	case input.Randomize:
		s.engine.Randomize(s.bias)
		s.notifyReset()
	case input.RandomizeNoise:
		s.noiseSeed++
		s.engine.RandomizeNoise(s.noiseSeed, s.bias, s.opts.NoiseScale)
		s.notifyReset()
	case input.BiasUp:
		s.bias = stepBias(s.bias, BiasStep)
	case input.BiasDown:
		s.bias = stepBias(s.bias, -BiasStep)
	case input.BrushGrow:
		s.view.GrowBrush()
	case input.BrushShrink:
		s.view.ShrinkBrush()
	case input.FitToScreen:
		s.view.FitToScreen(s.opts.ScreenW, s.opts.ScreenH, s.engine.Rows(), s.engine.Cols())
	case input.LoadTemplate:
		x, y := s.view.ScreenToCell(f.PointerX, f.PointerY)
		s.engine.LoadTemplate(life.SeedTemplate(), x, y)
	case input.StepOnce:
		s.step()
	case input.SpeedUp:
		s.clock.SetRate(s.clock.Rate() + 1)
	case input.SpeedDown:
		s.clock.SetRate(s.clock.Rate() - 1)
	default:
		s.logger.Warn("ignoring unknown command", "command", cmd.String())
		return
	}
	s.logger.Debug("command",
		"command", cmd.String(),
		"running", s.running,
		"bias", s.bias,
		"brush", s.view.Brush(),
		"rate", s.clock.Rate(),
	)
}

func (s *Session) zoom(f input.Frame) {
	delta := float64(f.Zoom) * s.opts.ZoomRate / float64(s.clock.FrameRate())
	if f.Boost {
		delta *= s.opts.ZoomBoost
	}
	s.view.Zoom(delta)
}

func (s *Session) step() {
	s.engine.Step()
	stats := s.engine.LastStep()
	for _, fn := range s.onStep {
		fn(stats)
	}
}

func (s *Session) notifyReset() {
	for _, fn := range s.onReset {
		fn()
	}
}

// stepBias moves the bias by delta, rounded to whole hundredths so repeated
// steps do not accumulate float error.
func stepBias(bias, delta float64) float64 {
	return clampBias(math.Round((bias+delta)*100) / 100)
}

func clampBias(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
