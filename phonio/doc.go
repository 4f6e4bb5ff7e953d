// Package phonio reads phonon band-structure documents: crystal
// structure, symmetry operations, q-points, and per-q mode lists.
//
// Cartesian displacements stored in a document are converted to
// eigenvectors on the way out: mass-weighted, phase-fixed against the
// q-point, and normalized to unit norm.
package phonio
