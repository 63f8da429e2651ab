// Package dataset reads the coefficient dataset and writes result tables.
//
// Three backends are selected by file extension: .xlsx workbooks, .csv files
// and .db/.sqlite databases. A dataset has the columns
//
//	section | basket 1 | basket 2 | basket 3 | basket 4 | coefficient
//
// Workbooks and CSV files carry a header row; the sqlite backend reads the
// table "dataset". Result tables never overwrite an existing file, see
// UniquePath.
package dataset
