package dataset

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"basket-reconciler/internal/diagnostic"
	"basket-reconciler/internal/match"
)

// ErrMissingInput is returned when the dataset file does not exist.
var ErrMissingInput = errors.New("dataset not found")

// ErrUnsupportedFormat is returned for unknown file extensions.
var ErrUnsupportedFormat = errors.New("unsupported dataset format")

// Column layout of a dataset record.
const (
	colSection     = 0
	colFirstBasket = 1
	colCoefficient = colFirstBasket + match.MaxBaskets
	recordWidth    = colCoefficient + 1
)

// Table is a loaded dataset.
type Table struct {
	Source string
	Rows   []match.Row
	// Skipped counts records dropped for a blank section.
	Skipped int
	// Diagnostics lists unparsable records.
	Diagnostics diagnostic.Diagnostics
}

// Load reads the dataset at path, picking the backend from its extension.
func Load(path string) (*Table, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrMissingInput, path)
	}

	var (
		records [][]string
		first   int
		err     error
	)

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx":
		records, err = readXLSX(path)
		first = 1
	case ".csv":
		records, err = readCSV(path)
		first = 1
	case ".db", ".sqlite", ".sqlite3":
		records, err = readSQLite(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read dataset %s: %w", path, err)
	}

	t := &Table{Source: path}

	// Line numbers are 1-based and count the header.
	for i := first; i < len(records); i++ {
		t.add(i+1, records[i])
	}

	return t, nil
}

func (t *Table) add(line int, cells []string) {
	row, ok, err := parseRecord(line, cells)

	switch {
	case err != nil:
		t.Diagnostics.AddWarning(diagnostic.CodeUnparsableRow, err.Error(), row.Section, fmt.Sprintf("line %d", line))
	case !ok:
		t.Skipped++
	default:
		t.Rows = append(t.Rows, row)
	}
}

// parseRecord converts one record. ok is false for records with a blank
// section.
func parseRecord(line int, cells []string) (match.Row, bool, error) {
	padded := make([]string, recordWidth)
	copy(padded, cells)

	row := match.Row{
		Section: strings.TrimSpace(padded[colSection]),
		Line:    line,
	}

	if row.Section == "" {
		return row, false, nil
	}

	for _, b := range padded[colFirstBasket:colCoefficient] {
		if b = strings.TrimSpace(b); b != "" {
			row.Baskets = append(row.Baskets, b)
		}
	}

	coef, err := ParseCoefficient(padded[colCoefficient])
	if err != nil {
		return row, false, err
	}

	row.Coefficient = coef

	return row, true, nil
}

// ParseCoefficient parses a coefficient cell; a decimal comma is accepted.
func ParseCoefficient(cell string) (float64, error) {
	s := strings.ReplaceAll(strings.TrimSpace(cell), ",", ".")
	if s == "" {
		return 0, errors.New("coefficient is empty")
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("coefficient %q is not a number", cell)
	}

	return v, nil
}
