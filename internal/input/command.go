// Package input turns raw key and pointer state into the per-frame values the
// sandbox consumes: level-triggered pointer state in a Frame and one-shot
// Commands that are applied exactly once.
package input

import (
	"fmt"
	"strings"
)

// Command is a discrete, edge-triggered action.
type Command int

const (
	ToggleSimulation Command = iota + 1
	Clear
	Randomize
	RandomizeNoise
	BiasUp
	BiasDown
	BrushGrow
	BrushShrink
	FitToScreen
	LoadTemplate
	StepOnce
	SpeedUp
	SpeedDown
)

var commandNames = map[Command]string{
	ToggleSimulation: "toggle_simulation",
	Clear:            "clear",
	Randomize:        "randomize",
	RandomizeNoise:   "randomize_noise",
	BiasUp:           "bias_up",
	BiasDown:         "bias_down",
	BrushGrow:        "brush_grow",
	BrushShrink:      "brush_shrink",
	FitToScreen:      "fit_to_screen",
	LoadTemplate:     "load_template",
	StepOnce:         "step_once",
	SpeedUp:          "speed_up",
	SpeedDown:        "speed_down",
}

// String returns the config-file name of the command.
func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return fmt.Sprintf("command(%d)", int(c))
}

// ParseCommand resolves a config-file command name.
func ParseCommand(name string) (Command, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for cmd, n := range commandNames {
		if n == name {
			return cmd, nil
		}
	}
	return 0, fmt.Errorf("unknown command %q", name)
}

// Queue collects the commands decoded during one frame.
type Queue struct {
	pending []Command
}

// Push appends a command.
func (q *Queue) Push(cmds ...Command) {
	q.pending = append(q.pending, cmds...)
}

// Len returns the number of queued commands.
func (q *Queue) Len() int { return len(q.pending) }

// Drain returns the queued commands in arrival order and empties the queue.
func (q *Queue) Drain() []Command {
	if len(q.pending) == 0 {
		return nil
	}
	out := q.pending
	q.pending = nil
	return out
}
