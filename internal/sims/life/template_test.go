package life

import (
	"slices"
	"testing"
)

func TestSeedTemplateShape(t *testing.T) {
	p := SeedTemplate()
	if p.Rows() != 11 || p.Cols() != 38 {
		t.Fatalf("expected an 11x38 template, got %dx%d", p.Rows(), p.Cols())
	}
	live := 0
	for _, row := range p {
		for _, v := range row {
			if v {
				live++
			}
		}
	}
	if live != 36 {
		t.Fatalf("glider gun has 36 live cells, template has %d", live)
	}
}

func TestSeedTemplateIsCopied(t *testing.T) {
	p := SeedTemplate()
	p[1][25] = false
	if !SeedTemplate()[1][25] {
		t.Fatal("mutating a returned template must not change the built-in seed")
	}
}

func TestTemplateStepIsDeterministicAndMoves(t *testing.T) {
	run := func() []uint8 {
		life := New(40, 60)
		life.LoadTemplate(SeedTemplate(), 0, 0)
		life.Step()
		return slices.Clone(life.Cells())
	}

	life := New(40, 60)
	life.LoadTemplate(SeedTemplate(), 0, 0)
	seeded := slices.Clone(life.Cells())

	first, second := run(), run()
	if !slices.Equal(first, second) {
		t.Fatal("stepping the template must be deterministic")
	}
	if slices.Equal(first, seeded) {
		t.Fatal("glider gun seed should not be stationary")
	}
	if slices.Index(first, 1) < 0 {
		t.Fatal("glider gun should not die out after one step")
	}
}

func TestLoadTemplateClipsAndPreservesSurroundings(t *testing.T) {
	life := New(5, 5)
	life.Set(0, 0, true)
	life.Set(4, 4, true)

	p := ParsePattern(`
.O
O.
`)
	life.LoadTemplate(p, 3, 3)
	life.LoadTemplate(p, -1, 2)

	expectAlive(t, life, [][2]int{{0, 0}, {4, 3}, {3, 4}, {0, 2}}, "after template loads")
	if life.Get(4, 4) {
		t.Fatal("dead pattern cells inside the footprint should overwrite")
	}
}

func TestParsePatternPadsRows(t *testing.T) {
	p := ParsePattern("O\n..O\n")
	if p.Rows() != 2 || len(p[0]) != 3 || len(p[1]) != 3 {
		t.Fatalf("rows should pad to width 3, got %v", p)
	}
	if !p[0][0] || !p[1][2] || p[0][2] {
		t.Fatalf("unexpected parse result %v", p)
	}
}

func TestRandomizeNoise(t *testing.T) {
	a := New(24, 24)
	b := New(24, 24)
	a.RandomizeNoise(5, 0.5, 0.15)
	b.RandomizeNoise(5, 0.5, 0.15)
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("noise seeding must be deterministic per seed")
	}

	a.RandomizeNoise(5, 0, 0.15)
	if a.Population() != 24*24 {
		t.Fatalf("bias 0 should fill the grid, got %d", a.Population())
	}
	a.RandomizeNoise(5, 1.5, 0.15)
	if a.Population() != 0 {
		t.Fatalf("bias above 1 should clamp to 1 and leave the grid dead, got %d", a.Population())
	}
}
