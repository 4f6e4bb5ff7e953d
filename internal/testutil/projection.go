package testutil

import (
	"math"

	"github.com/mailhexu/anaddb-irreps/symmetry"
)

// RepMatrices builds the zone-center displacement representation of every
// operation in the group: 3N x 3N real matrices combining the atom
// permutation with the Cartesian rotation. Lattice-correction phases are
// unity at Γ, so the representation is real orthogonal.
func RepMatrices(lg *symmetry.LittleGroup, natoms int) [][][]float64 {
	mats := make([][][]float64, lg.Order())
	for i, op := range lg.Ops {
		d := zeros(3 * natoms)
		for k := 0; k < natoms; k++ {
			j := op.Perm[k]
			for a := 0; a < 3; a++ {
				for b := 0; b < 3; b++ {
					d[3*j+a][3*k+b] = op.RotCart[a][b]
				}
			}
		}
		mats[i] = d
	}
	return mats
}

// Projector builds the projection operator onto the isotypic component of
// an irrep with the given (real) characters and dimension:
// P = (dim/g) sum_R conj(chi(R)) D(R).
func Projector(mats [][][]float64, chars []complex128, dim int) [][]float64 {
	n := len(mats[0])
	p := zeros(n)
	scale := float64(dim) / float64(len(mats))
	for r, d := range mats {
		c := real(chars[r])
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				p[i][j] += scale * c * d[i][j]
			}
		}
	}
	return p
}

// ImageBasis returns an orthonormal basis of the image of p, obtained by
// Gram-Schmidt over its columns with drop tolerance eps.
func ImageBasis(p [][]float64, eps float64) [][]float64 {
	n := len(p)
	var basis [][]float64
	for j := 0; j < n; j++ {
		col := make([]float64, n)
		for i := 0; i < n; i++ {
			col[i] = p[i][j]
		}
		if v, ok := orthogonalize(col, basis, eps); ok {
			basis = append(basis, v)
		}
	}
	return basis
}

// Complement orthogonalizes vecs against the spanned slice and against
// each other, returning an orthonormal basis of the residual space.
func Complement(vecs, spanned [][]float64, eps float64) [][]float64 {
	var out [][]float64
	for _, v := range vecs {
		w := append([]float64(nil), v...)
		if u, ok := orthogonalize(w, spanned, eps); ok {
			if u2, ok2 := orthogonalize(u, out, eps); ok2 {
				out = append(out, u2)
			}
		}
	}
	return out
}

// ToDisplacement converts a real pattern to a complex eigenvector.
func ToDisplacement(v []float64) []complex128 {
	u := make([]complex128, len(v))
	for i, x := range v {
		u[i] = complex(x, 0)
	}
	return u
}

func orthogonalize(v []float64, basis [][]float64, eps float64) ([]float64, bool) {
	out := append([]float64(nil), v...)
	for _, b := range basis {
		d := dot(out, b)
		for i := range out {
			out[i] -= d * b[i]
		}
	}
	norm := math.Sqrt(dot(out, out))
	if norm < eps {
		return nil, false
	}
	for i := range out {
		out[i] /= norm
	}
	return out, true
}

func dot(a, b []float64) float64 {
	s := 0.0
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}

func zeros(n int) [][]float64 {
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
	}
	return m
}
