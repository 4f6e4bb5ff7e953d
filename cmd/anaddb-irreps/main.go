// Command anaddb-irreps labels phonon modes with irreducible
// representations of the little group at a chosen q-point and, at the
// zone center, tags infrared and Raman activity.
//
// Usage:
//
//	anaddb-irreps -p phonons.yaml -q 0
//	anaddb-irreps -p phonons.yaml -q 2 -s 1e-4 -d 1e-3 --no-pairing -v
package main

import "os"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
