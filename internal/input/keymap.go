package input

import (
	"fmt"
	"sort"
)

// Keymap binds key names to commands. Key names are whatever the frontend
// reports: ebiten key names for the window, bubbletea key strings for the
// terminal.
type Keymap map[string]Command

// DefaultGUIKeymap returns the window bindings keyed by ebiten key name.
func DefaultGUIKeymap() Keymap {
	return Keymap{
		"P":            ToggleSimulation,
		"C":            Clear,
		"R":            Randomize,
		"G":            RandomizeNoise,
		"ArrowUp":      BiasUp,
		"ArrowDown":    BiasDown,
		"BracketRight": BrushGrow,
		"BracketLeft":  BrushShrink,
		"F":            FitToScreen,
		"T":            LoadTemplate,
		"N":            StepOnce,
		"Period":       SpeedUp,
		"Comma":        SpeedDown,
	}
}

// DefaultTUIKeymap returns the terminal bindings keyed by bubbletea key string.
func DefaultTUIKeymap() Keymap {
	return Keymap{
		"p":    ToggleSimulation,
		" ":    ToggleSimulation,
		"c":    Clear,
		"r":    Randomize,
		"g":    RandomizeNoise,
		"up":   BiasUp,
		"down": BiasDown,
		"]":    BrushGrow,
		"[":    BrushShrink,
		"f":    FitToScreen,
		"t":    LoadTemplate,
		"n":    StepOnce,
		".":    SpeedUp,
		",":    SpeedDown,
	}
}

// Lookup returns the command bound to key.
func (k Keymap) Lookup(key string) (Command, bool) {
	cmd, ok := k[key]
	return cmd, ok
}

// Merge applies key -> command-name overrides. An empty command name unbinds
// the key. Unknown command names are rejected and leave the keymap unchanged.
func (k Keymap) Merge(overrides map[string]string) error {
	parsed := make(map[string]Command, len(overrides))
	for key, name := range overrides {
		if name == "" {
			parsed[key] = 0
			continue
		}
		cmd, err := ParseCommand(name)
		if err != nil {
			return fmt.Errorf("binding %q: %w", key, err)
		}
		parsed[key] = cmd
	}
	for key, cmd := range parsed {
		if cmd == 0 {
			delete(k, key)
			continue
		}
		k[key] = cmd
	}
	return nil
}

// Decode appends the commands bound to the given keys, skipping unbound keys.
// Keys are processed in sorted order so simultaneous releases decode
// deterministically.
func (k Keymap) Decode(q *Queue, keys []string) {
	sort.Strings(keys)
	for _, key := range keys {
		if cmd, ok := k[key]; ok {
			q.Push(cmd)
		}
	}
}
