// Package config loads sandbox settings from YAML and command-line flags.
package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

const (
	DefaultScreenWidth  = 1280
	DefaultScreenHeight = 720
	DefaultCellSize     = 25
	DefaultGridScale    = 4
	DefaultFrameRate    = 60
	DefaultRate         = 10
	DefaultBias         = 0.5
	DefaultNoiseScale   = 0.12
	DefaultZoomRate     = 12.0
	DefaultZoomBoost    = 4.0
)

// Config is the full sandbox configuration.
type Config struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Grid       GridConfig       `yaml:"grid"`
	Simulation SimulationConfig `yaml:"simulation"`
	Controls   ControlsConfig   `yaml:"controls"`
	Output     OutputConfig     `yaml:"output"`
}

// ScreenConfig is the initial drawable area in pixels. Grid dimensions derive
// from it once at startup.
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GridConfig sizes the grid and places the built-in seed. A negative template
// anchor places the seed near the top-left corner of the initial view.
type GridConfig struct {
	CellSize  int  `yaml:"cell_size"`
	Scale     int  `yaml:"scale"`
	Template  bool `yaml:"template"`
	TemplateX int  `yaml:"template_x"`
	TemplateY int  `yaml:"template_y"`
}

// SimulationConfig controls cadence and seeding.
type SimulationConfig struct {
	FrameRate  int     `yaml:"frame_rate"`
	Rate       int     `yaml:"rate"`
	Bias       float64 `yaml:"bias"`
	Seed       int64   `yaml:"seed"`
	NoiseScale float64 `yaml:"noise_scale"`
	Running    bool    `yaml:"running"`
}

// ControlsConfig tunes zoom speed and remaps keys. Keys maps a frontend key
// name to a command name; an empty command unbinds the key.
type ControlsConfig struct {
	ZoomRate  float64           `yaml:"zoom_rate"`
	ZoomBoost float64           `yaml:"zoom_boost"`
	Keys      map[string]string `yaml:"keys,omitempty"`
}

// OutputConfig enables per-generation CSV output when Dir is set.
type OutputConfig struct {
	Dir string `yaml:"dir"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Screen: ScreenConfig{Width: DefaultScreenWidth, Height: DefaultScreenHeight},
		Grid: GridConfig{
			CellSize:  DefaultCellSize,
			Scale:     DefaultGridScale,
			TemplateX: -1,
			TemplateY: -1,
		},
		Simulation: SimulationConfig{
			FrameRate:  DefaultFrameRate,
			Rate:       DefaultRate,
			Bias:       DefaultBias,
			Seed:       1,
			NoiseScale: DefaultNoiseScale,
		},
		Controls: ControlsConfig{
			ZoomRate:  DefaultZoomRate,
			ZoomBoost: DefaultZoomBoost,
		},
	}
}

// Load reads a YAML file over the defaults. An empty path returns the
// defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Write encodes the configuration as YAML to w.
func Write(w io.Writer, cfg *Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return enc.Close()
}

// Save writes the configuration as YAML.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Bind attaches the most commonly tuned settings to the provided FlagSet.
// Values already in the config become the flag defaults, so binding after
// Load lets flags override the file.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.IntVar(&c.Screen.Width, "width", c.Screen.Width, "screen width in pixels")
	fs.IntVar(&c.Screen.Height, "height", c.Screen.Height, "screen height in pixels")
	fs.IntVar(&c.Grid.CellSize, "cell-size", c.Grid.CellSize, "initial pixels per cell")
	fs.IntVar(&c.Grid.Scale, "grid-scale", c.Grid.Scale, "grid size as a multiple of the visible area")
	fs.BoolVar(&c.Grid.Template, "template", c.Grid.Template, "load the built-in glider gun at startup")
	fs.IntVar(&c.Simulation.FrameRate, "fps", c.Simulation.FrameRate, "render frames per second")
	fs.IntVar(&c.Simulation.Rate, "rate", c.Simulation.Rate, "simulation steps per second")
	fs.Float64Var(&c.Simulation.Bias, "bias", c.Simulation.Bias, "share of cells left dead by randomize, 0..1")
	fs.Int64Var(&c.Simulation.Seed, "seed", c.Simulation.Seed, "seed for randomize")
	fs.BoolVar(&c.Simulation.Running, "running", c.Simulation.Running, "start with the simulation on")
	fs.StringVar(&c.Output.Dir, "output", c.Output.Dir, "directory for per-generation CSV output")
}

// ApplyFlags copies every flag explicitly set on fs onto c. It lets a flag set
// bound before the config file was known still override the file's values.
func (c *Config) ApplyFlags(fs *pflag.FlagSet) error {
	target := pflag.NewFlagSet("config", pflag.ContinueOnError)
	c.Bind(target)
	var err error
	fs.Visit(func(f *pflag.Flag) {
		if err != nil || target.Lookup(f.Name) == nil {
			return
		}
		if setErr := target.Set(f.Name, f.Value.String()); setErr != nil {
			err = fmt.Errorf("applying --%s: %w", f.Name, setErr)
		}
	})
	return err
}

// Validate reports every setting that cannot be used.
func (c *Config) Validate() error {
	var errs []error
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		errs = append(errs, fmt.Errorf("screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height))
	}
	if c.Grid.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("cell_size must be positive, got %d", c.Grid.CellSize))
	}
	if c.Grid.Scale <= 0 {
		errs = append(errs, fmt.Errorf("grid scale must be positive, got %d", c.Grid.Scale))
	}
	if c.Simulation.FrameRate <= 0 {
		errs = append(errs, fmt.Errorf("frame_rate must be positive, got %d", c.Simulation.FrameRate))
	}
	if c.Simulation.Rate <= 0 || c.Simulation.Rate > c.Simulation.FrameRate {
		errs = append(errs, fmt.Errorf("rate must be in [1, frame_rate], got %d", c.Simulation.Rate))
	}
	if math.IsNaN(c.Simulation.Bias) || c.Simulation.Bias < 0 || c.Simulation.Bias > 1 {
		errs = append(errs, fmt.Errorf("bias must be in [0, 1], got %v", c.Simulation.Bias))
	}
	if c.Controls.ZoomRate < 0 || c.Controls.ZoomBoost < 1 {
		errs = append(errs, fmt.Errorf("zoom_rate must be >= 0 and zoom_boost >= 1"))
	}
	return errors.Join(errs...)
}

// GridSize returns the grid dimensions derived from the screen: scale times
// the number of cells needed to cover each screen axis.
func (c *Config) GridSize() (rows, cols int) {
	cs := max(c.Grid.CellSize, 1)
	scale := max(c.Grid.Scale, 1)
	rows = scale * ceilDiv(max(c.Screen.Height, 1), cs)
	cols = scale * ceilDiv(max(c.Screen.Width, 1), cs)
	return rows, cols
}

func ceilDiv(a, b int) int { return (a + b - 1) / b }
