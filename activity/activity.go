package activity

import (
	"errors"
	"fmt"
	"math/cmplx"

	"github.com/mailhexu/anaddb-irreps/chartab"
	"github.com/mailhexu/anaddb-irreps/symmetry"
)

// ErrNonZeroWavevector rejects activity classification away from the zone
// center, where dipole/polarizability selection rules do not apply.
var ErrNonZeroWavevector = errors.New("activity: wavevector must be zero")

// Tag holds the spectroscopic activity of one irrep label. Both fields
// false means the mode is silent.
type Tag struct {
	IR    bool
	Raman bool
}

// DefaultEpsilon absorbs floating-point noise in the multiplicity
// projections: a representation counts as contained when its projected
// multiplicity reaches 1 - epsilon.
const DefaultEpsilon = 0.1

// Classify tags every irrep of the table as IR- and/or Raman-active.
//
// The polar-vector character is the trace of each Cartesian rotation; the
// symmetric-square character chi_a(R) = (chi_V(R)^2 + chi_V(R^2)) / 2 uses
// composition lookup within the group for R^2. The group must be a Γ-point
// little group; tol is the geometric tolerance for the zero-q check and
// the composition lookup.
func Classify(lg *symmetry.LittleGroup, table *chartab.Table, eps, tol float64) (map[string]Tag, error) {
	if !lg.IsGamma(tol) {
		return nil, fmt.Errorf("%w, got q=(%g,%g,%g)", ErrNonZeroWavevector,
			lg.Qpoint[0], lg.Qpoint[1], lg.Qpoint[2])
	}
	if table.Order() != lg.Order() {
		return nil, fmt.Errorf("activity: table order %d does not match group order %d",
			table.Order(), lg.Order())
	}

	g := lg.Order()
	chiV := make([]float64, g)
	for i, op := range lg.Ops {
		chiV[i] = op.RotCart.Trace()
	}

	chiA := make([]float64, g)
	for i := range lg.Ops {
		j, err := lg.SquareIndex(i, tol)
		if err != nil {
			return nil, fmt.Errorf("activity: operation %d: %w", i, err)
		}
		chiA[i] = 0.5 * (chiV[i]*chiV[i] + chiV[j])
	}

	tags := make(map[string]Tag, len(table.Entries))
	for _, e := range table.Entries {
		tags[e.Label] = Tag{
			IR:    project(e.Chars, chiV) >= 1-eps,
			Raman: project(e.Chars, chiA) >= 1-eps,
		}
	}
	return tags, nil
}

// project returns the real part of the multiplicity of an irrep inside a
// real-charactered representation.
func project(chars []complex128, rep []float64) float64 {
	var n complex128
	for k, c := range chars {
		n += cmplx.Conj(c) * complex(rep[k], 0)
	}
	return real(n) / float64(len(chars))
}
