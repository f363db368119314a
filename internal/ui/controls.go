// Package ui holds the on-screen controls of the graphical frontend. The
// control model in this file is build-tag free; drawing needs the ebiten tag.
package ui

import (
	"math"
	"strconv"

	"lifebox/internal/core"
)

// ParameterSource is what the control panel reads and adjusts.
type ParameterSource interface {
	core.ParameterControlsProvider
	Parameters() core.ParameterSnapshot
}

// Controls tracks the displayed value of each adjustable parameter and turns
// +/- presses into setter calls.
type Controls struct {
	src         ParameterSource
	intSetter   core.IntParameterSetter
	floatSetter core.FloatParameterSetter
	states      []controlState
}

type controlState struct {
	control core.ParameterControl
	value   string

	intValue   int
	floatValue float64
	hasValue   bool
}

// NewControls builds the control model for src. Setters are discovered by
// type assertion.
func NewControls(src ParameterSource) *Controls {
	c := &Controls{src: src}
	for _, ctrl := range src.ParameterControls() {
		c.states = append(c.states, controlState{control: ctrl, value: "--"})
	}
	if setter, ok := src.(core.IntParameterSetter); ok {
		c.intSetter = setter
	}
	if setter, ok := src.(core.FloatParameterSetter); ok {
		c.floatSetter = setter
	}
	return c
}

// Len returns the number of controls.
func (c *Controls) Len() int { return len(c.states) }

// Label returns the label of control i.
func (c *Controls) Label(i int) string { return c.states[i].control.Label }

// Value returns the formatted value of control i, or "--" when unknown.
func (c *Controls) Value(i int) string { return c.states[i].value }

// Refresh re-reads every value from the source.
func (c *Controls) Refresh() {
	snap := c.src.Parameters()
	for i := range c.states {
		st := &c.states[i]
		param, ok := snap.Lookup(st.control.Key)
		st.hasValue = false
		st.value = "--"
		if !ok {
			continue
		}
		switch st.control.Type {
		case core.ParamTypeInt:
			parsed, err := strconv.Atoi(param.Value)
			if err != nil {
				continue
			}
			st.intValue = parsed
			st.floatValue = float64(parsed)
			st.value = strconv.Itoa(parsed)
			st.hasValue = true
		case core.ParamTypeFloat:
			parsed, err := strconv.ParseFloat(param.Value, 64)
			if err != nil {
				continue
			}
			st.floatValue = parsed
			st.value = formatFloat(st.control, parsed)
			st.hasValue = true
		}
	}
}

// CanAdjust reports whether control i can move one step in direction.
func (c *Controls) CanAdjust(i, direction int) bool {
	st := &c.states[i]
	if !st.hasValue || direction == 0 {
		return false
	}
	switch st.control.Type {
	case core.ParamTypeInt:
		if c.intSetter == nil {
			return false
		}
		target := st.intValue + direction*intStep(st.control)
		if st.control.HasMin && direction < 0 && target < int(math.Round(st.control.Min)) {
			return false
		}
		if st.control.HasMax && direction > 0 && target > int(math.Round(st.control.Max)) {
			return false
		}
		return true
	case core.ParamTypeFloat:
		if c.floatSetter == nil {
			return false
		}
		target := st.floatValue + float64(direction)*floatStep(st.control)
		if st.control.HasMin && direction < 0 && target < st.control.Min-1e-9 {
			return false
		}
		if st.control.HasMax && direction > 0 && target > st.control.Max+1e-9 {
			return false
		}
		return true
	}
	return false
}

// Adjust moves control i one step in direction, clamped to its bounds. It
// reports whether the source accepted a new value.
func (c *Controls) Adjust(i, direction int) bool {
	st := &c.states[i]
	if !st.hasValue || direction == 0 {
		return false
	}
	switch st.control.Type {
	case core.ParamTypeInt:
		if c.intSetter == nil {
			return false
		}
		target := st.intValue + direction*intStep(st.control)
		if st.control.HasMin {
			target = max(target, int(math.Round(st.control.Min)))
		}
		if st.control.HasMax {
			target = min(target, int(math.Round(st.control.Max)))
		}
		if target == st.intValue || !c.intSetter.SetIntParameter(st.control.Key, target) {
			return false
		}
		st.intValue = target
		st.floatValue = float64(target)
		st.value = strconv.Itoa(target)
		return true
	case core.ParamTypeFloat:
		if c.floatSetter == nil {
			return false
		}
		target := st.floatValue + float64(direction)*floatStep(st.control)
		if st.control.HasMin {
			target = max(target, st.control.Min)
		}
		if st.control.HasMax {
			target = min(target, st.control.Max)
		}
		if math.Abs(target-st.floatValue) < 1e-9 || !c.floatSetter.SetFloatParameter(st.control.Key, target) {
			return false
		}
		st.floatValue = target
		st.value = formatFloat(st.control, target)
		return true
	}
	return false
}

func intStep(ctrl core.ParameterControl) int {
	if step := int(math.Round(ctrl.Step)); step > 0 {
		return step
	}
	return 1
}

func floatStep(ctrl core.ParameterControl) float64 {
	if ctrl.Step > 0 {
		return ctrl.Step
	}
	return 0.05
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	step := floatStep(ctrl)
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}
