package irreps

import (
	"math"
	"math/cmplx"

	"github.com/mailhexu/anaddb-irreps/symmetry"
)

// BlockTraces computes the character of a degenerate block under every
// little-group operation: the sum over the block's modes of each mode's
// trace under the operation.
func BlockTraces(lg *symmetry.LittleGroup, modes []Mode, block []int, gauge Gauge) []complex128 {
	traces := make([]complex128, lg.Order())
	for i, op := range lg.Ops {
		var tr complex128
		for _, m := range block {
			tr += modeTrace(op, lg.Qpoint, modes[m].Displacement, gauge)
		}
		traces[i] = tr
	}
	return traces
}

// modeTrace evaluates one mode's contribution under one operation:
// sum over atoms k of phase_k * conj(u_j) . R u_k with j the image of k.
// In the r-gauge phase_k carries the lattice correction of the atom pair;
// the R-gauge fixes it to one.
func modeTrace(op symmetry.Operation, q symmetry.Vec3, u []complex128, gauge Gauge) complex128 {
	var tr complex128
	for k := range op.Perm {
		j := op.Perm[k]

		var ru [3]complex128
		for a := 0; a < 3; a++ {
			for b := 0; b < 3; b++ {
				ru[a] += complex(op.RotCart[a][b], 0) * u[3*k+b]
			}
		}

		var dot complex128
		for a := 0; a < 3; a++ {
			dot += cmplx.Conj(u[3*j+a]) * ru[a]
		}

		if gauge == GaugeAtom {
			dot *= cmplx.Exp(complex(0, -2*math.Pi*q.Dot(op.LatCorr[k])))
		}
		tr += dot
	}
	return tr
}
