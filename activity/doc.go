// Package activity derives infrared and Raman activity of irreducible
// representations at the zone center.
//
// IR activity follows from the decomposition of the polar-vector
// representation, Raman activity from the symmetric square of it. Both
// depend only on the point group, never on mode data, so one
// classification serves every mode carrying the same label.
package activity
