package symmetry

import (
	"errors"
	"fmt"
)

var (
	// ErrSingularCell is returned when the lattice matrix cannot be inverted.
	ErrSingularCell = errors.New("lattice matrix is singular")
	// ErrNotClosed is returned when a composition lookup finds no group element.
	ErrNotClosed = errors.New("group is not closed under composition")
)

// MappingError reports that an atom has no unique image under a symmetry
// operation within the geometric tolerance. It aborts the whole query;
// the caller may retry with an adjusted tolerance.
type MappingError struct {
	Operation int     // index of the offending operation
	Atom      int     // index of the unmapped atom
	Tolerance float64 // geometric tolerance that was in effect
	Ambiguous bool    // true when more than one image matched
}

func (e *MappingError) Error() string {
	if e.Ambiguous {
		return fmt.Sprintf("symmetry: operation %d maps atom %d onto multiple sites (tolerance %g)",
			e.Operation, e.Atom, e.Tolerance)
	}
	return fmt.Sprintf("symmetry: operation %d has no image for atom %d within tolerance %g",
		e.Operation, e.Atom, e.Tolerance)
}

// WavevectorError reports that an operation claimed for a little group does
// not map the wavevector onto itself modulo a reciprocal lattice vector.
type WavevectorError struct {
	Operation int
	Qpoint    Vec3
	Residual  float64
}

func (e *WavevectorError) Error() string {
	return fmt.Sprintf("symmetry: operation %d does not leave q=(%g,%g,%g) invariant (residual %g)",
		e.Operation, e.Qpoint[0], e.Qpoint[1], e.Qpoint[2], e.Residual)
}
