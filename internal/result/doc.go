// Package result turns matched dataset rows into the records written to
// result tables.
//
// Aggregate sums the coefficients of the rows matched for one section.
// Group folds per-container hits into one record per (section, coefficient).
package result
