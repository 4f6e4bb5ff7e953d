package chartab

import (
	"math"

	"github.com/mailhexu/anaddb-irreps/symmetry"
)

// Entry is one irreducible representation of a table: its label, its
// dimension (the rounded identity character), and one complex character
// per group operation, ordered like Table.Ops.
type Entry struct {
	Label string
	Dim   int
	Chars []complex128
}

// Table is the character table of one group. Ops holds the Cartesian
// rotation of every operation in the table's canonical order; Entries
// carry per-operation characters in the same order.
type Table struct {
	Group       string
	Schoenflies string
	Ops         []symmetry.Mat3
	Entries     []Entry
}

// Order returns the group order.
func (t *Table) Order() int { return len(t.Ops) }

// MinDimension returns the smallest irrep dimension in the table.
func (t *Table) MinDimension() int {
	m := 0
	for _, e := range t.Entries {
		if m == 0 || e.Dim < m {
			m = e.Dim
		}
	}
	return m
}

// identityIndex returns the position of the identity operation, or -1.
func (t *Table) identityIndex(tol float64) int {
	id := symmetry.Identity3()
	for i, op := range t.Ops {
		if op.ApproxEqual(id, tol) {
			return i
		}
	}
	return -1
}

// validate derives entry dimensions from the identity character and checks
// the sum rule sum(dim^2) == order.
func (t *Table) validate() error {
	idIdx := t.identityIndex(1e-8)
	if idIdx < 0 {
		return ErrNoIdentity
	}

	sum := 0
	for i := range t.Entries {
		e := &t.Entries[i]
		e.Dim = int(math.Round(real(e.Chars[idIdx])))
		sum += e.Dim * e.Dim
	}
	if sum != t.Order() {
		return sumRuleError(t.Group, sum, t.Order())
	}
	return nil
}

// Align reorders the table's characters to follow a caller-supplied
// operation ordering, matching operations by their Cartesian rotation
// within tol. Every caller operation must match exactly one table column;
// the operation counts must agree.
func (t *Table) Align(rots []symmetry.Mat3, tol float64) (*Table, error) {
	if len(rots) != len(t.Ops) {
		return nil, &AlignmentError{Group: t.Group, Operation: -1, Have: len(rots), Want: len(t.Ops)}
	}

	perm := make([]int, len(rots))
	used := make([]bool, len(t.Ops))
	for i, rot := range rots {
		found := -1
		for j, op := range t.Ops {
			if used[j] || !op.ApproxEqual(rot, tol) {
				continue
			}
			found = j
			break
		}
		if found < 0 {
			return nil, &AlignmentError{Group: t.Group, Operation: i}
		}
		perm[i] = found
		used[found] = true
	}

	out := &Table{
		Group:       t.Group,
		Schoenflies: t.Schoenflies,
		Ops:         make([]symmetry.Mat3, len(rots)),
		Entries:     make([]Entry, len(t.Entries)),
	}
	copy(out.Ops, rots)
	for i, e := range t.Entries {
		chars := make([]complex128, len(rots))
		for k, j := range perm {
			chars[k] = e.Chars[j]
		}
		out.Entries[i] = Entry{Label: e.Label, Dim: e.Dim, Chars: chars}
	}
	return out, nil
}
