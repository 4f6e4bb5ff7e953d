package phonio

import (
	"fmt"
	"math"

	"github.com/mailhexu/anaddb-irreps/symmetry"
)

// Eigenvector converts a Cartesian displacement to a phonon
// eigenvector. Each atom's three components are scaled by the square
// root of its mass and by the phase exp(-2*pi*i q.r) for its fractional
// position r, then the whole vector is normalized to unit norm.
func Eigenvector(displ []complex128, masses []float64, positions []symmetry.Vec3, q symmetry.Vec3) ([]complex128, error) {
	n := len(masses)
	if len(positions) != n {
		return nil, &FormatError{
			Section: "structure",
			Reason:  fmt.Sprintf("%d positions for %d masses", len(positions), n),
		}
	}
	if len(displ) != 3*n {
		return nil, &FormatError{
			Section: "qpoints",
			Reason:  fmt.Sprintf("displacement length %d, want %d", len(displ), 3*n),
		}
	}

	out := make([]complex128, len(displ))
	norm := 0.0
	for k := 0; k < n; k++ {
		w := math.Sqrt(masses[k])
		arg := -2 * math.Pi * positions[k].Dot(q)
		ph := complex(w*math.Cos(arg), w*math.Sin(arg))
		for a := 0; a < 3; a++ {
			v := displ[3*k+a] * ph
			out[3*k+a] = v
			norm += real(v)*real(v) + imag(v)*imag(v)
		}
	}
	if norm == 0 {
		return nil, ErrZeroDisplacement
	}

	scale := complex(1/math.Sqrt(norm), 0)
	for i := range out {
		out[i] *= scale
	}
	return out, nil
}
