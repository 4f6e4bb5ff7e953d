// Package irreps classifies phonon modes by irreducible representation.
//
// The engine consumes a little group, an ordered mode list, and a
// character table; it groups modes into degenerate blocks, computes each
// block's character under every group operation, and projects the result
// onto the table to assign labels with confidence scores. At the zone
// center the assignments additionally carry IR/Raman activity tags.
//
// The engine performs no I/O and holds no state beyond a single query;
// queries over different wavevectors may run concurrently as long as the
// little groups and tables are not mutated.
package irreps
