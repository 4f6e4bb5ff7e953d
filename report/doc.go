// Package report renders classification results for the terminal: a
// concise per-mode summary table and a verbose listing with block
// characters and activity.
package report
