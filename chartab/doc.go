// Package chartab supplies irreducible-representation character tables.
//
// Tables are keyed by point-group label (Hermann-Mauguin, e.g. "mmm",
// "m-3m") and carry one complex character per group operation. A built-in
// repository ships the tables whose conventional-axis operation matrices
// are integer valued; additional tables (k-point specific BCS tables
// included) load from YAML documents in the same schema.
//
// The repository is immutable after construction and safe to share across
// concurrent classification queries.
package chartab
