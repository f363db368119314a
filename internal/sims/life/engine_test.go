package life

import (
	"slices"
	"testing"
)

func alive(e *Engine) map[[2]int]bool {
	out := map[[2]int]bool{}
	for y := 0; y < e.Rows(); y++ {
		for x := 0; x < e.Cols(); x++ {
			if e.Get(x, y) {
				out[[2]int{x, y}] = true
			}
		}
	}
	return out
}

func expectAlive(t *testing.T, e *Engine, want [][2]int, context string) {
	t.Helper()
	got := alive(e)
	if len(got) != len(want) {
		t.Fatalf("%s: expected %d live cells, got %d (%v)", context, len(want), len(got), got)
	}
	for _, c := range want {
		if !got[c] {
			t.Fatalf("%s: cell (%d,%d) should be alive", context, c[0], c[1])
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	life := New(5, 5)
	life.Set(1, 2, true)
	life.Set(2, 2, true)
	life.Set(3, 2, true)

	life.Step()
	expectAlive(t, life, [][2]int{{2, 1}, {2, 2}, {2, 3}}, "after first step")

	life.Step()
	expectAlive(t, life, [][2]int{{1, 2}, {2, 2}, {3, 2}}, "after second step")

	if life.Generation() != 2 {
		t.Fatalf("expected generation 2, got %d", life.Generation())
	}
}

func TestAllDeadStaysDead(t *testing.T) {
	life := New(7, 9)
	for i := 0; i < 3; i++ {
		life.Step()
	}
	if life.Population() != 0 {
		t.Fatalf("empty grid grew %d cells", life.Population())
	}
}

func TestLoneCellDies(t *testing.T) {
	life := New(5, 5)
	life.Set(2, 2, true)
	life.Step()
	if life.Get(2, 2) {
		t.Fatal("isolated cell should die of underpopulation")
	}
	if stats := life.LastStep(); stats.Deaths != 1 || stats.Births != 0 || stats.Population != 0 {
		t.Fatalf("unexpected step stats %+v", stats)
	}
}

func TestBlockIsStillLife(t *testing.T) {
	life := New(6, 6)
	life.SetBlock(2, 2, 2, 2, true)
	for _, c := range [][2]int{{2, 2}, {3, 2}, {2, 3}, {3, 3}} {
		if n := life.Neighbors(c[0], c[1]); n != 3 {
			t.Fatalf("block cell (%d,%d) has %d neighbours, expected 3", c[0], c[1], n)
		}
	}
	before := slices.Clone(life.Cells())
	for i := 0; i < 5; i++ {
		life.Step()
	}
	if !slices.Equal(before, life.Cells()) {
		t.Fatal("2x2 block must be stable")
	}
}

func TestEdgesDoNotWrap(t *testing.T) {
	life := New(4, 4)
	// A vertical blinker hugging the left edge would seed column 3 on a torus.
	life.Set(0, 0, true)
	life.Set(0, 1, true)
	life.Set(0, 2, true)
	life.Step()
	for y := 0; y < 4; y++ {
		if life.Get(3, y) {
			t.Fatalf("cell (3,%d) came alive through wraparound", y)
		}
	}
	expectAlive(t, life, [][2]int{{0, 1}, {1, 1}}, "edge blinker")
}

func TestOutOfBoundsIsNoOp(t *testing.T) {
	life := New(3, 4)
	life.Set(1, 1, true)
	before := slices.Clone(life.Cells())

	coords := [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 3}, {100, 100}}
	for _, c := range coords {
		life.Set(c[0], c[1], true)
		life.Toggle(c[0], c[1])
		if life.Get(c[0], c[1]) {
			t.Fatalf("out-of-bounds read (%d,%d) reported alive", c[0], c[1])
		}
	}
	life.SetBlock(-10, -10, 5, 5, true)
	life.SetBlock(4, 0, 3, 3, true)
	life.SetBlock(0, 3, 3, 3, true)

	if !slices.Equal(before, life.Cells()) {
		t.Fatal("out-of-bounds writes modified the grid")
	}
}

func TestSetBlockClips(t *testing.T) {
	life := New(4, 4)
	life.SetBlock(2, 2, 5, 5, true)
	expectAlive(t, life, [][2]int{{2, 2}, {3, 2}, {2, 3}, {3, 3}}, "clipped block")

	life.SetBlock(3, 3, 1, 1, false)
	if life.Get(3, 3) {
		t.Fatal("SetBlock with alive=false should erase")
	}
}

func TestToggle(t *testing.T) {
	life := New(2, 2)
	life.Toggle(1, 0)
	if !life.Get(1, 0) {
		t.Fatal("toggle should revive a dead cell")
	}
	life.Toggle(1, 0)
	if life.Get(1, 0) {
		t.Fatal("toggle should kill a live cell")
	}
}

func TestRandomizeBiasExtremes(t *testing.T) {
	life := NewSeeded(20, 30, 11)
	life.Randomize(1)
	if life.Population() != 0 {
		t.Fatalf("bias 1 should leave the grid dead, got %d live", life.Population())
	}
	life.Randomize(0)
	if life.Population() != 20*30 {
		t.Fatalf("bias 0 should fill the grid, got %d live", life.Population())
	}
	life.Randomize(7)
	if life.Population() != 0 {
		t.Fatal("bias above 1 should clamp to 1")
	}
	life.Randomize(-3)
	if life.Population() != 20*30 {
		t.Fatal("bias below 0 should clamp to 0")
	}
}

func TestRandomizeDeterministic(t *testing.T) {
	a := NewSeeded(16, 16, 42)
	b := NewSeeded(16, 16, 42)
	a.Randomize(0.5)
	b.Randomize(0.5)
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("equal seeds should produce equal boards")
	}
	if pop := a.Population(); pop == 0 || pop == 256 {
		t.Fatalf("bias 0.5 should produce a mixed board, got %d live", pop)
	}
}

func TestClearResetsGeneration(t *testing.T) {
	life := New(5, 5)
	life.SetBlock(0, 0, 3, 1, true)
	life.Step()
	life.Clear()
	if life.Population() != 0 || life.Generation() != 0 {
		t.Fatalf("clear left population=%d generation=%d", life.Population(), life.Generation())
	}
}

func TestNewClampsDimensions(t *testing.T) {
	life := New(0, -4)
	if life.Rows() != 1 || life.Cols() != 1 {
		t.Fatalf("expected 1x1 grid, got %dx%d", life.Rows(), life.Cols())
	}
}
