package symmetry

// LittleGroup is the ordered set of operations leaving a wavevector
// invariant modulo a reciprocal lattice vector, together with the group
// labels the character table repository is keyed by. It is read-only
// after construction and safe to share across concurrent queries.
type LittleGroup struct {
	Qpoint     Vec3
	Ops        []Operation
	PointGroup string
	SpaceGroup string
}

// NewLittleGroup validates that every operation leaves q invariant and
// returns the assembled group. A violating operation yields a
// *WavevectorError naming it.
func NewLittleGroup(ops []Operation, q Vec3, tol float64, pointGroup, spaceGroup string) (*LittleGroup, error) {
	for i, op := range ops {
		if ok, res := op.LeavesInvariant(q, tol); !ok {
			return nil, &WavevectorError{Operation: i, Qpoint: q, Residual: res}
		}
	}
	return &LittleGroup{
		Qpoint:     q,
		Ops:        ops,
		PointGroup: pointGroup,
		SpaceGroup: spaceGroup,
	}, nil
}

// SelectLittleGroup filters a full space-group operation list down to the
// operations leaving q invariant, preserving order.
func SelectLittleGroup(ops []Operation, q Vec3, tol float64, pointGroup, spaceGroup string) *LittleGroup {
	kept := make([]Operation, 0, len(ops))
	for _, op := range ops {
		if ok, _ := op.LeavesInvariant(q, tol); ok {
			kept = append(kept, op)
		}
	}
	return &LittleGroup{
		Qpoint:     q,
		Ops:        kept,
		PointGroup: pointGroup,
		SpaceGroup: spaceGroup,
	}
}

// Order returns the number of operations in the group.
func (lg *LittleGroup) Order() int { return len(lg.Ops) }

// IsGamma reports whether the wavevector is zero modulo a lattice
// translation.
func (lg *LittleGroup) IsGamma(tol float64) bool {
	q := lg.Qpoint
	return q.Sub(q.Round()).IsZero(tol)
}

// Rotations returns the Cartesian rotation of every operation, in order.
func (lg *LittleGroup) Rotations() []Mat3 {
	rots := make([]Mat3, len(lg.Ops))
	for i, op := range lg.Ops {
		rots[i] = op.RotCart
	}
	return rots
}

// SquareIndex returns the index of the operation whose Cartesian rotation
// equals the square of operation i. The lookup uses composition within the
// group, not reapplication to mode data. ErrNotClosed is returned when no
// element matches, which indicates an inconsistent operation set.
func (lg *LittleGroup) SquareIndex(i int, tol float64) (int, error) {
	sq := lg.Ops[i].RotCart.Mul(lg.Ops[i].RotCart)
	for j, op := range lg.Ops {
		if op.RotCart.ApproxEqual(sq, tol) {
			return j, nil
		}
	}
	return 0, ErrNotClosed
}
