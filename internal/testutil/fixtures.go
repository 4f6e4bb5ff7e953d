package testutil

import (
	"fmt"
	"math"

	"github.com/mailhexu/anaddb-irreps/chartab"
	"github.com/mailhexu/anaddb-irreps/symmetry"
)

// Perovskite is a cubic ABO3 structure (space group Pm-3m), the standard
// 15-branch fixture: A at the corner, B at the body center, three O at
// the face centers.
type Perovskite struct {
	Cell      symmetry.Mat3
	Positions []symmetry.Vec3
}

// NewPerovskite returns the fixture with lattice constant a.
func NewPerovskite(a float64) Perovskite {
	return Perovskite{
		Cell: symmetry.Mat3{{a, 0, 0}, {0, a, 0}, {0, 0, a}},
		Positions: []symmetry.Vec3{
			{0, 0, 0},
			{0.5, 0.5, 0.5},
			{0.5, 0.5, 0},
			{0.5, 0, 0.5},
			{0, 0.5, 0.5},
		},
	}
}

// NAtoms returns the atom count.
func (p Perovskite) NAtoms() int { return len(p.Positions) }

// GammaGroup resolves a table's canonical operations against the
// structure and assembles the Γ-point little group. For cubic cells the
// fractional and Cartesian forms coincide, so table operations serve
// directly as fractional rotations.
func (p Perovskite) GammaGroup(table *chartab.Table, tol float64) (*symmetry.LittleGroup, error) {
	ops := make([]symmetry.Operation, table.Order())
	for i, rot := range table.Ops {
		op, err := symmetry.BuildOperation(rot, symmetry.Vec3{}, p.Cell, p.Positions, tol, i)
		if err != nil {
			return nil, fmt.Errorf("operation %d: %w", i, err)
		}
		ops[i] = op
	}
	return symmetry.NewLittleGroup(ops, symmetry.Vec3{}, tol, table.Group, "Pm-3m")
}

// SublatticeTriple returns the three unit patterns displacing one atom
// along x, y, z within a structure of natoms atoms.
func SublatticeTriple(atom, natoms int) [][]float64 {
	out := make([][]float64, 3)
	for a := 0; a < 3; a++ {
		v := make([]float64, 3*natoms)
		v[3*atom+a] = 1
		out[a] = v
	}
	return out
}

// UniformTriple returns the three normalized patterns displacing a set of
// atoms rigidly along x, y, z.
func UniformTriple(atoms []int, natoms int) [][]float64 {
	norm := 1.0 / math.Sqrt(float64(len(atoms)))

	out := make([][]float64, 3)
	for a := 0; a < 3; a++ {
		v := make([]float64, 3*natoms)
		for _, k := range atoms {
			v[3*k+a] = norm
		}
		out[a] = v
	}
	return out
}
