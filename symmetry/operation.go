package symmetry

// Operation is one space-group element resolved against a concrete
// structure. It is immutable after construction.
type Operation struct {
	// RotFrac is the rotation in fractional (lattice) coordinates.
	RotFrac Mat3
	// Trans is the fractional translation.
	Trans Vec3
	// RotCart is the rotation acting on Cartesian polar vectors.
	RotCart Mat3
	// Perm maps each atom to its image: atom k lands on site Perm[k].
	Perm []int
	// LatCorr[k] is the integer lattice vector separating the rotated
	// position of atom k from its image site.
	LatCorr []Vec3
}

// CartesianRotation converts a fractional rotation to the Cartesian
// rotation acting on polar vectors. cell rows are the lattice vectors.
func CartesianRotation(rotFrac, cell Mat3) (Mat3, error) {
	inv, ok := cell.Inverse()
	if !ok {
		return Mat3{}, ErrSingularCell
	}
	// R_cart = L^T R_frac (L^-1)^T
	return cell.Transpose().Mul(rotFrac).Mul(inv.Transpose()), nil
}

// BuildOperation resolves a fractional rotation/translation pair against a
// structure: it derives the Cartesian rotation and the atom permutation
// with per-atom lattice corrections. positions are fractional coordinates.
// opIndex only labels errors. A missing or ambiguous atom image yields a
// *MappingError.
func BuildOperation(rotFrac Mat3, trans Vec3, cell Mat3, positions []Vec3, tol float64, opIndex int) (Operation, error) {
	rotCart, err := CartesianRotation(rotFrac, cell)
	if err != nil {
		return Operation{}, err
	}

	op := Operation{
		RotFrac: rotFrac,
		Trans:   trans,
		RotCart: rotCart,
		Perm:    make([]int, len(positions)),
		LatCorr: make([]Vec3, len(positions)),
	}

	for k, pos := range positions {
		image := rotFrac.MulVec(pos).Add(trans)

		found := -1
		for j, cand := range positions {
			diff := image.Sub(cand)
			if diff.Sub(diff.Round()).IsZero(tol) {
				if found >= 0 {
					return Operation{}, &MappingError{Operation: opIndex, Atom: k, Tolerance: tol, Ambiguous: true}
				}
				found = j
				op.Perm[k] = j
				op.LatCorr[k] = diff.Round()
			}
		}
		if found < 0 {
			return Operation{}, &MappingError{Operation: opIndex, Atom: k, Tolerance: tol}
		}
	}

	return op, nil
}

// LeavesInvariant reports whether the operation maps q onto itself modulo
// an integer reciprocal lattice vector, and returns the residual.
func (op Operation) LeavesInvariant(q Vec3, tol float64) (bool, float64) {
	dq := op.RotFrac.MulVec(q).Sub(q)
	res := dq.Sub(dq.Round()).MaxAbs()
	return res <= tol, res
}
