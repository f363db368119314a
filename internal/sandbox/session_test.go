package sandbox

import (
	"io"
	"log/slog"
	"testing"

	. "github.com/onsi/gomega"

	"lifebox/internal/config"
	"lifebox/internal/input"
	"lifebox/internal/sims/life"
	"lifebox/internal/view"
)

func quietOptions() Options {
	return Options{
		ScreenW:        200,
		ScreenH:        100,
		Rows:           20,
		Cols:           30,
		CellSize:       10,
		FrameRate:      60,
		SimulationRate: 10,
		Bias:           0.5,
		Seed:           3,
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// origin returns a session whose camera sits at the origin, so screen pixel
// (10*x, 10*y) maps to cell (x, y).
func origin(t *testing.T) *Session {
	t.Helper()
	s := New(quietOptions())
	s.Viewport().Camera = view.Point{}
	return s
}

func at(x, y int) input.Frame {
	return input.Frame{PointerX: float64(x*10 + 5), PointerY: float64(y*10 + 5)}
}

func TestNewPlacesInitialCamera(t *testing.T) {
	g := NewWithT(t)

	s := New(quietOptions())
	g.Expect(s.Viewport().Camera).To(Equal(view.Point{X: 20.0 / 2 * 10, Y: -30.0 / 4 * 10}))
	g.Expect(s.Engine().Rows()).To(Equal(20))
	g.Expect(s.Engine().Cols()).To(Equal(30))
	g.Expect(s.Title()).To(Equal("Game Of Life"))
}

func TestOptionsFromConfig(t *testing.T) {
	g := NewWithT(t)

	cfg := config.Default()
	opts := OptionsFromConfig(cfg)
	g.Expect(opts.Rows).To(Equal(116))
	g.Expect(opts.Cols).To(Equal(208))
	g.Expect(opts.CellSize).To(Equal(25.0))
	g.Expect(opts.TemplateX).To(Equal(-1))
}

func TestPaintAndEraseWithBrush(t *testing.T) {
	g := NewWithT(t)

	s := origin(t)
	f := at(2, 3)
	f.Primary = true
	s.Update(f, nil)
	g.Expect(s.Engine().Get(2, 3)).To(BeTrue())
	g.Expect(s.Engine().Population()).To(Equal(1))

	s.Update(input.Frame{}, []input.Command{input.BrushGrow, input.BrushGrow})
	f = at(5, 5)
	f.Primary = true
	s.Update(f, nil)
	g.Expect(s.Engine().Population()).To(Equal(1 + 9))
	g.Expect(s.Engine().Get(7, 7)).To(BeTrue())

	f = at(5, 5)
	f.Secondary = true
	s.Update(f, nil)
	g.Expect(s.Engine().Population()).To(Equal(1))
}

func TestPanDragDoesNotPaint(t *testing.T) {
	g := NewWithT(t)

	s := origin(t)
	start := input.Frame{PointerX: 50, PointerY: 50, Primary: true, Pan: true}
	s.Update(start, nil)
	move := start
	move.PointerX, move.PointerY = 80, 30
	s.Update(move, nil)

	g.Expect(s.Viewport().Dragging()).To(BeTrue())
	g.Expect(s.Engine().Population()).To(Equal(0))
	g.Expect(s.Viewport().Camera).To(Equal(view.Point{}))

	// Releasing the button commits the pan: (dx, dy) = (30, -20).
	s.Update(input.Frame{PointerX: 80, PointerY: 30}, nil)
	g.Expect(s.Viewport().Dragging()).To(BeFalse())
	g.Expect(s.Viewport().Camera).To(Equal(view.Point{X: -30, Y: -20}))
	g.Expect(s.Viewport().PanOffset()).To(Equal(view.Point{}))
}

func TestPanModifierWithSecondaryStillErases(t *testing.T) {
	g := NewWithT(t)

	s := origin(t)
	s.Engine().Set(1, 1, true)
	f := at(1, 1)
	f.Pan = true
	f.Secondary = true
	s.Update(f, nil)
	g.Expect(s.Engine().Get(1, 1)).To(BeFalse())
	g.Expect(s.Viewport().Dragging()).To(BeFalse())
}

func TestSimulationThrottle(t *testing.T) {
	g := NewWithT(t)

	s := origin(t)
	s.Engine().SetBlock(0, 0, 3, 1, true)
	var steps []life.StepStats
	s.OnStep(func(st life.StepStats) { steps = append(steps, st) })

	for i := 0; i < 12; i++ {
		g.Expect(s.Update(input.Frame{}, nil)).To(BeFalse(), "paused sessions never step")
	}

	s.Update(input.Frame{}, []input.Command{input.ToggleSimulation})
	g.Expect(s.Running()).To(BeTrue())
	g.Expect(s.Title()).To(Equal("Simulating..."))

	stepped := 0
	for i := 1; i < 12; i++ {
		if s.Update(input.Frame{}, nil) {
			stepped++
		}
	}
	// The toggle frame counted as frame 1; steps fire on frames 6 and 12.
	g.Expect(stepped).To(Equal(2))
	g.Expect(steps).To(HaveLen(2))
	g.Expect(steps[1].Generation).To(Equal(2))
}

func TestStepOnceWhilePaused(t *testing.T) {
	g := NewWithT(t)

	s := origin(t)
	s.Engine().Set(4, 4, true)
	s.Update(input.Frame{}, []input.Command{input.StepOnce})
	g.Expect(s.Engine().Generation()).To(Equal(1))
	g.Expect(s.Engine().Population()).To(Equal(0))
}

func TestBiasCommands(t *testing.T) {
	g := NewWithT(t)

	s := origin(t)
	s.Update(input.Frame{}, []input.Command{input.BiasDown, input.BiasDown, input.BiasDown})
	g.Expect(s.Bias()).To(Equal(0.47))

	opts := quietOptions()
	opts.Bias = 0.995
	s = New(opts)
	s.Update(input.Frame{}, []input.Command{input.BiasUp, input.BiasUp})
	g.Expect(s.Bias()).To(Equal(1.0))

	opts.Bias = 0
	s = New(opts)
	s.Update(input.Frame{}, []input.Command{input.BiasDown})
	g.Expect(s.Bias()).To(Equal(0.0))
}

func TestRandomizeAndClearNotifyReset(t *testing.T) {
	g := NewWithT(t)

	opts := quietOptions()
	opts.Bias = 0
	s := New(opts)
	resets := 0
	s.OnReset(func() { resets++ })

	s.Update(input.Frame{}, []input.Command{input.Randomize})
	g.Expect(s.Engine().Population()).To(Equal(20 * 30))

	s.Update(input.Frame{}, []input.Command{input.Clear})
	g.Expect(s.Engine().Population()).To(Equal(0))

	s.Update(input.Frame{}, []input.Command{input.RandomizeNoise})
	g.Expect(s.Engine().Population()).To(Equal(20 * 30))
	g.Expect(resets).To(Equal(3))
}

func TestSpeedCommandsClamp(t *testing.T) {
	g := NewWithT(t)

	opts := quietOptions()
	opts.SimulationRate = 1
	s := New(opts)
	s.Update(input.Frame{}, []input.Command{input.SpeedDown})
	g.Expect(s.SimulationRate()).To(Equal(1))
	s.Update(input.Frame{}, []input.Command{input.SpeedUp, input.SpeedUp})
	g.Expect(s.SimulationRate()).To(Equal(3))
}

func TestZoomIsTimeScaled(t *testing.T) {
	g := NewWithT(t)

	opts := quietOptions()
	opts.ZoomRate = 60
	opts.ZoomBoost = 4
	s := New(opts)
	s.Update(input.Frame{Zoom: 1}, nil)
	g.Expect(s.Viewport().CellSize).To(Equal(11.0))
	s.Update(input.Frame{Zoom: -1, Boost: true}, nil)
	g.Expect(s.Viewport().CellSize).To(Equal(7.0))
}

func TestFitToScreenCommand(t *testing.T) {
	g := NewWithT(t)

	s := New(quietOptions())
	s.Update(input.Frame{}, []input.Command{input.FitToScreen})
	g.Expect(s.Viewport().CellSize).To(Equal(6.0))
	g.Expect(s.Viewport().Camera).To(Equal(view.Point{}))
}

func TestTemplateLoadsAtStartupAndAtPointer(t *testing.T) {
	g := NewWithT(t)

	opts := quietOptions()
	opts.Rows, opts.Cols = 40, 80
	opts.Template = true
	opts.TemplateX, opts.TemplateY = 0, 0
	s := New(opts)
	g.Expect(s.Engine().Population()).To(Equal(36))
	g.Expect(s.Engine().Get(25, 1)).To(BeTrue())

	s.Update(input.Frame{}, []input.Command{input.Clear})
	s.Viewport().Camera = view.Point{}
	s.Update(at(10, 20), []input.Command{input.LoadTemplate})
	g.Expect(s.Engine().Get(35, 21)).To(BeTrue())
}

func TestHoverReportsBounds(t *testing.T) {
	g := NewWithT(t)

	s := origin(t)
	x, y, ok := s.Hover(25, 35)
	g.Expect([]int{x, y}).To(Equal([]int{2, 3}))
	g.Expect(ok).To(BeTrue())

	_, _, ok = s.Hover(-5, 5)
	g.Expect(ok).To(BeFalse())
	_, _, ok = s.Hover(5000, 5)
	g.Expect(ok).To(BeFalse())
}

func TestParameterControls(t *testing.T) {
	g := NewWithT(t)

	s := origin(t)
	g.Expect(s.SetIntParameter(ParamRate, 20)).To(BeTrue())
	g.Expect(s.SimulationRate()).To(Equal(20))
	g.Expect(s.SetIntParameter(ParamBrush, 3)).To(BeTrue())
	g.Expect(s.Viewport().BrushSpan()).To(Equal(4))
	g.Expect(s.SetFloatParameter(ParamBias, 2)).To(BeTrue())
	g.Expect(s.Bias()).To(Equal(1.0))
	g.Expect(s.SetFloatParameter(ParamCellSize, 14)).To(BeTrue())
	g.Expect(s.Viewport().CellSize).To(Equal(14.0))
	g.Expect(s.SetIntParameter("nope", 1)).To(BeFalse())

	p, ok := s.Parameters().Lookup(ParamRate)
	g.Expect(ok).To(BeTrue())
	g.Expect(p.Value).To(Equal("20"))
	g.Expect(s.ParameterControls()).To(HaveLen(4))
}
