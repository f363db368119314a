package life

import "strings"

// Pattern is a rectangular boolean stamp indexed as pattern[row][col].
type Pattern [][]bool

// Rows returns the pattern height.
func (p Pattern) Rows() int { return len(p) }

// Cols returns the width of the widest pattern row.
func (p Pattern) Cols() int {
	cols := 0
	for _, row := range p {
		cols = max(cols, len(row))
	}
	return cols
}

// ParsePattern reads a plaintext drawing where 'O' marks a live cell and any
// other rune a dead one. Blank lines are skipped; lines are padded to the
// widest row.
func ParsePattern(src string) Pattern {
	var lines []string
	width := 0
	for _, line := range strings.Split(src, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
		width = max(width, len(line))
	}
	p := make(Pattern, len(lines))
	for y, line := range lines {
		p[y] = make([]bool, width)
		for x := 0; x < len(line); x++ {
			p[y][x] = line[x] == 'O'
		}
	}
	return p
}

// gosperGun is the Gosper glider gun framed by a dead one-cell border.
const gosperGun = `
......................................
.........................O............
.......................O.O............
.............OO......OO............OO.
............O...O....OO............OO.
.OO........O.....O...OO...............
.OO........O...O.OO....O.O............
...........O.....O.......O............
............O...O.....................
.............OO.......................
......................................
`

var seedTemplate = ParsePattern(gosperGun)

// SeedTemplate returns a copy of the built-in 11x38 glider gun seed.
func SeedTemplate() Pattern {
	out := make(Pattern, len(seedTemplate))
	for i, row := range seedTemplate {
		out[i] = append([]bool(nil), row...)
	}
	return out
}

// LoadTemplate writes the pattern's footprint onto the grid with its top-left
// corner at (anchorX, anchorY). Both live and dead pattern cells overwrite the
// grid; cells outside the footprint or outside the grid are untouched.
func (e *Engine) LoadTemplate(p Pattern, anchorX, anchorY int) {
	for y, row := range p {
		for x, alive := range row {
			e.Set(anchorX+x, anchorY+y, alive)
		}
	}
}
