// Package telemetry records per-generation population statistics, writes them
// as CSV and summarises a run.
package telemetry

import (
	"log/slog"

	"gonum.org/v1/gonum/stat"

	"lifebox/internal/sims/life"
)

// DefaultWindow is the number of generations kept for history and summaries.
const DefaultWindow = 512

// Record is one generation's CSV row.
type Record struct {
	Generation int     `csv:"generation"`
	Population int     `csv:"population"`
	Births     int     `csv:"births"`
	Deaths     int     `csv:"deaths"`
	Density    float64 `csv:"density"`
}

// FromStep converts engine step statistics into a record for a grid of the
// given number of cells.
func FromStep(s life.StepStats, cells int) Record {
	density := 0.0
	if cells > 0 {
		density = float64(s.Population) / float64(cells)
	}
	return Record{
		Generation: s.Generation,
		Population: s.Population,
		Births:     s.Births,
		Deaths:     s.Deaths,
		Density:    density,
	}
}

// Summary describes the population over the recorded window.
type Summary struct {
	Generations int
	Final       int
	Peak        int
	Low         int
	Mean        float64
	StdDev      float64
	Births      int
	Deaths      int
}

// Recorder keeps a sliding window of population counts and forwards every
// record to an optional CSV output.
type Recorder struct {
	window  int
	history []float64
	out     *Output
	logger  *slog.Logger

	generations int
	births      int
	deaths      int
	last        Record
	err         error
}

// NewRecorder returns a recorder retaining window generations. A nil output
// disables CSV writing; a nil logger uses slog.Default.
func NewRecorder(window int, out *Output, logger *slog.Logger) *Recorder {
	if window <= 0 {
		window = DefaultWindow
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Recorder{window: window, out: out, logger: logger}
}

// Observe appends a record to the history and the CSV output.
func (r *Recorder) Observe(rec Record) error {
	r.history = append(r.history, float64(rec.Population))
	if over := len(r.history) - r.window; over > 0 {
		r.history = append(r.history[:0], r.history[over:]...)
	}
	r.generations++
	r.births += rec.Births
	r.deaths += rec.Deaths
	r.last = rec
	if err := r.out.Write(rec); err != nil {
		if r.err == nil {
			r.err = err
		}
		return err
	}
	return nil
}

// Err returns the first output error seen by Observe.
func (r *Recorder) Err() error { return r.err }

// StepSource reports executed generations and grid resets.
type StepSource interface {
	OnStep(func(life.StepStats))
	OnReset(func())
}

// Attach records every generation src executes and clears the history when
// src resets its grid. cells is the grid size used for density.
func (r *Recorder) Attach(src StepSource, cells int) {
	src.OnStep(func(st life.StepStats) {
		_ = r.Observe(FromStep(st, cells))
	})
	src.OnReset(r.Reset)
}

// Reset forgets the history, for example after the grid was cleared.
func (r *Recorder) Reset() {
	r.history = r.history[:0]
	r.generations, r.births, r.deaths = 0, 0, 0
	r.last = Record{}
}

// History returns a copy of the population window, oldest first.
func (r *Recorder) History() []float64 {
	return append([]float64(nil), r.history...)
}

// Last returns the most recent record.
func (r *Recorder) Last() Record { return r.last }

// Summary computes statistics over the retained window. Births and deaths
// cover every observed generation.
func (r *Recorder) Summary() Summary {
	s := Summary{Generations: r.generations, Births: r.births, Deaths: r.deaths, Final: r.last.Population}
	if len(r.history) == 0 {
		return s
	}
	s.Mean, s.StdDev = stat.MeanStdDev(r.history, nil)
	if len(r.history) == 1 {
		s.StdDev = 0
	}
	peak, low := r.history[0], r.history[0]
	for _, v := range r.history[1:] {
		peak = max(peak, v)
		low = min(low, v)
	}
	s.Peak, s.Low = int(peak), int(low)
	return s
}

// LogSummary writes the summary as a structured log line.
func (r *Recorder) LogSummary() {
	s := r.Summary()
	r.logger.Info("population summary",
		"generations", s.Generations,
		"final", s.Final,
		"peak", s.Peak,
		"low", s.Low,
		"mean", s.Mean,
		"stddev", s.StdDev,
		"births", s.Births,
		"deaths", s.Deaths,
	)
}

// Close flushes and closes the CSV output.
func (r *Recorder) Close() error {
	return r.out.Close()
}
