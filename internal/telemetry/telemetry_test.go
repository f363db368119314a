package telemetry

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/gocarina/gocsv"

	"lifebox/internal/sims/life"
)

func TestFromStepDensity(t *testing.T) {
	rec := FromStep(life.StepStats{Generation: 3, Births: 2, Deaths: 1, Population: 25}, 100)
	if rec.Generation != 3 || rec.Population != 25 || rec.Births != 2 || rec.Deaths != 1 {
		t.Fatalf("fields not copied: %+v", rec)
	}
	if math.Abs(rec.Density-0.25) > 1e-12 {
		t.Fatalf("density = %v, want 0.25", rec.Density)
	}
	if FromStep(life.StepStats{Population: 4}, 0).Density != 0 {
		t.Fatal("zero-cell grids should report zero density")
	}
}

func TestRecorderSummary(t *testing.T) {
	r := NewRecorder(4, nil, nil)
	for i, pop := range []int{10, 2, 4, 6, 8} {
		if err := r.Observe(Record{Generation: i + 1, Population: pop, Births: 1, Deaths: 2}); err != nil {
			t.Fatalf("observe: %v", err)
		}
	}
	s := r.Summary()
	if s.Generations != 5 || s.Births != 5 || s.Deaths != 10 {
		t.Fatalf("totals wrong: %+v", s)
	}
	// Window of 4 drops the first value.
	if s.Final != 8 || s.Peak != 8 || s.Low != 2 {
		t.Fatalf("extremes wrong: %+v", s)
	}
	if math.Abs(s.Mean-5) > 1e-9 {
		t.Fatalf("mean = %v, want 5", s.Mean)
	}
	// Sample standard deviation of 2,4,6,8.
	if math.Abs(s.StdDev-math.Sqrt(20.0/3)) > 1e-9 {
		t.Fatalf("stddev = %v", s.StdDev)
	}
	if h := r.History(); len(h) != 4 || h[0] != 2 || h[3] != 8 {
		t.Fatalf("history = %v", h)
	}
}

func TestRecorderEmptyAndReset(t *testing.T) {
	r := NewRecorder(0, nil, nil)
	if s := r.Summary(); s.Generations != 0 || s.Mean != 0 {
		t.Fatalf("empty summary should be zero, got %+v", s)
	}
	_ = r.Observe(Record{Population: 7})
	if s := r.Summary(); s.StdDev != 0 || s.Mean != 7 {
		t.Fatalf("single sample summary wrong: %+v", s)
	}
	r.Reset()
	if len(r.History()) != 0 || r.Summary().Generations != 0 {
		t.Fatal("reset should clear history")
	}
}

func TestOutputWritesCSV(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	out, err := NewOutput(dir)
	if err != nil {
		t.Fatalf("new output: %v", err)
	}
	r := NewRecorder(8, out, nil)
	for i := 1; i <= 3; i++ {
		if err := r.Observe(Record{Generation: i, Population: i * 10, Density: 0.5}); err != nil {
			t.Fatalf("observe: %v", err)
		}
	}
	if err := r.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	f, err := os.Open(out.Path())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	var rows []Record
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows with a single header, got %d", len(rows))
	}
	if rows[2].Generation != 3 || rows[2].Population != 30 {
		t.Fatalf("last row = %+v", rows[2])
	}
}

func TestDisabledOutput(t *testing.T) {
	out, err := NewOutput("")
	if err != nil || out != nil {
		t.Fatalf("empty dir should disable output, got %v %v", out, err)
	}
	if err := out.Write(Record{}); err != nil {
		t.Fatalf("nil output write: %v", err)
	}
	if out.Path() != "" || out.Close() != nil {
		t.Fatal("nil output should be inert")
	}
}

type fakeSource struct {
	steps  []func(life.StepStats)
	resets []func()
}

func (f *fakeSource) OnStep(fn func(life.StepStats)) { f.steps = append(f.steps, fn) }
func (f *fakeSource) OnReset(fn func())              { f.resets = append(f.resets, fn) }

func TestAttachFollowsSource(t *testing.T) {
	src := &fakeSource{}
	r := NewRecorder(8, nil, nil)
	r.Attach(src, 50)
	if len(src.steps) != 1 || len(src.resets) != 1 {
		t.Fatal("attach should register one step and one reset observer")
	}

	src.steps[0](life.StepStats{Generation: 1, Population: 5})
	src.steps[0](life.StepStats{Generation: 2, Population: 10})
	if got := r.Last(); got.Generation != 2 || got.Density != 0.2 {
		t.Fatalf("unexpected last record %+v", got)
	}
	if len(r.History()) != 2 {
		t.Fatalf("expected two samples, got %d", len(r.History()))
	}

	src.resets[0]()
	if len(r.History()) != 0 || r.Summary().Generations != 0 {
		t.Fatal("reset should clear the history")
	}
	if r.Err() != nil {
		t.Fatalf("unexpected error %v", r.Err())
	}
}

func TestAttachKeepsFirstWriteError(t *testing.T) {
	out, err := NewOutput(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	// Writes fail once the underlying file is gone.
	if err := out.file.Close(); err != nil {
		t.Fatal(err)
	}
	src := &fakeSource{}
	r := NewRecorder(8, out, nil)
	r.Attach(src, 50)

	src.steps[0](life.StepStats{Generation: 1, Population: 5})
	first := r.Err()
	if first == nil {
		t.Fatal("a failed write should be reported by Err")
	}
	src.steps[0](life.StepStats{Generation: 2, Population: 6})
	if r.Err() != first {
		t.Fatalf("Err changed to %v, want the first error %v", r.Err(), first)
	}
	if r.Last().Generation != 2 {
		t.Fatal("records should still be observed after a write error")
	}
}
