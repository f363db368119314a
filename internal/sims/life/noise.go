package life

import (
	"math"

	perlin "github.com/aquilax/go-perlin"
)

const (
	noiseAlpha  = 2.0
	noiseBeta   = 2.0
	noiseOctave = 3
)

// RandomizeNoise redraws every cell from 2D Perlin noise sampled at
// (x*scale, y*scale). The noise value is remapped to [0,1) and compared with
// bias the same way Randomize compares its uniform draw. Non-positive scales
// fall back to 0.1.
func (e *Engine) RandomizeNoise(seed int64, bias, scale float64) {
	if scale <= 0 {
		scale = 0.1
	}
	bias = clamp01(bias)
	gen := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctave, seed)
	below1 := math.Nextafter(1, 0)
	w, h := e.grid.W, e.grid.H
	cells := e.grid.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			n := (gen.Noise2D(float64(x)*scale, float64(y)*scale) + 1) / 2
			n = min(clamp01(n), below1)
			cells[y*w+x] = boolToCell(n-bias >= 0)
		}
	}
	e.generation = 0
	e.last = StepStats{}
}
