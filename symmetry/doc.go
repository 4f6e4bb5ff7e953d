// Package symmetry provides crystal symmetry operations and little groups.
//
// The package intentionally does not detect symmetry from atomic
// coordinates. It operates on rotation/translation pairs produced by
// external symmetry finders and provides the derived quantities the
// classification engine needs: Cartesian rotations for polar vectors,
// atom-to-atom permutations with lattice corrections, wavevector
// invariance checks, and composition lookup within a group.
package symmetry
