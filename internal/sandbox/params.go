package sandbox

import (
	"lifebox/internal/core"
	"lifebox/internal/view"
)

// Parameter keys exposed on the HUD.
const (
	ParamRate     = "sim_rate"
	ParamBias     = "bias"
	ParamBrush    = "brush"
	ParamCellSize = "cell_size"
)

// Parameters reports the session state for HUD and status displays.
func (s *Session) Parameters() core.ParameterSnapshot {
	cam := s.view.Camera
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Simulation",
			Params: []core.Parameter{
				core.BoolParam("running", "Running", s.running),
				core.IntParam("generation", "Generation", s.engine.Generation()),
				core.IntParam("population", "Population", s.engine.Population()),
				core.IntParam(ParamRate, "Steps/sec", s.clock.Rate()),
				core.FloatParam(ParamBias, "Bias", s.bias),
			},
		},
		{
			Name: "View",
			Params: []core.Parameter{
				core.FloatParam(ParamCellSize, "Cell size", s.view.CellSize),
				core.IntParam(ParamBrush, "Brush", s.view.Brush()),
				core.FloatParam("camera_x", "Camera X", cam.X),
				core.FloatParam("camera_y", "Camera Y", cam.Y),
			},
		},
	}}
}

// ParameterControls lists the HUD-adjustable settings.
func (s *Session) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: ParamRate, Label: "Steps/sec", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: float64(s.clock.FrameRate()), HasMin: true, HasMax: true},
		{Key: ParamBias, Label: "Bias", Type: core.ParamTypeFloat, Step: BiasStep, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: ParamBrush, Label: "Brush", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: view.MaxBrush, HasMin: true, HasMax: true},
		{Key: ParamCellSize, Label: "Cell size", Type: core.ParamTypeFloat, Step: 1, Min: 0, HasMin: true},
	}
}

// SetIntParameter updates an integer setting. It reports whether the key is
// known.
func (s *Session) SetIntParameter(key string, value int) bool {
	switch key {
	case ParamRate:
		s.clock.SetRate(value)
	case ParamBrush:
		s.view.SetBrush(value)
	default:
		return false
	}
	return true
}

// SetFloatParameter updates a floating point setting. It reports whether the
// key is known.
func (s *Session) SetFloatParameter(key string, value float64) bool {
	switch key {
	case ParamBias:
		s.bias = clampBias(value)
	case ParamCellSize:
		s.view.Zoom(value - s.view.CellSize)
	default:
		return false
	}
	return true
}

var (
	_ core.ParameterControlsProvider = (*Session)(nil)
	_ core.IntParameterSetter        = (*Session)(nil)
	_ core.FloatParameterSetter      = (*Session)(nil)
)
