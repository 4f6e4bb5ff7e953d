package irreps

// Mode is one phonon branch at one wavevector. A negative frequency marks
// an imaginary (unstable) mode, following the usual convention of lattice
// dynamics codes.
type Mode struct {
	// Frequency in the caller's unit, typically THz.
	Frequency float64
	// Displacement is the complex eigenvector, three components per atom.
	Displacement []complex128
	// Band is the branch index.
	Band int
}
