package life

import (
	"fmt"
	"math"

	"github.com/aquilax/go-perlin"
)

// NoiseParams shapes the coherent-noise fill used by RandomizeNoise.
type NoiseParams struct {
	Alpha     float64 // weight falloff between octaves
	Beta      float64 // frequency multiplier between octaves
	Octaves   int32
	Scale     float64 // grid units to noise units
	Threshold float64 // cells with noise above this are alive, in [-1, 1]
}

// DefaultNoise returns parameters that produce blobby clusters on a 50x50 grid.
func DefaultNoise() NoiseParams {
	return NoiseParams{Alpha: 2, Beta: 2, Octaves: 3, Scale: 0.12, Threshold: 0.15}
}

func (np NoiseParams) validate() error {
	switch {
	case np.Octaves <= 0:
		return fmt.Errorf("%w: noise octaves %d must be positive", ErrInvalidConfiguration, np.Octaves)
	case !(np.Scale > 0) || math.IsInf(np.Scale, 0):
		return fmt.Errorf("%w: noise scale %v must be positive", ErrInvalidConfiguration, np.Scale)
	case math.IsNaN(np.Threshold) || np.Threshold < -1 || np.Threshold > 1:
		return fmt.Errorf("%w: noise threshold %v outside [-1,1]", ErrInvalidConfiguration, np.Threshold)
	}
	return nil
}

// RandomizeNoise replaces the grid with a thresholded Perlin noise field.
// Neighboring cells are correlated, unlike Randomize.
func (e *Engine) RandomizeNoise(np NoiseParams) error {
	if err := e.editable("randomize"); err != nil {
		return err
	}
	if err := np.validate(); err != nil {
		return err
	}
	gen := perlin.NewPerlin(np.Alpha, np.Beta, np.Octaves, e.rng.Int64())
	w := e.next.w
	for i := range e.next.cells {
		row, col := i/w, i%w
		v := gen.Noise2D(float64(col)*np.Scale, float64(row)*np.Scale)
		if v > np.Threshold {
			e.next.cells[i] = Alive
		} else {
			e.next.cells[i] = Dead
		}
	}
	e.commit()
	return nil
}
