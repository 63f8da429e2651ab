package dataset

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"basket-reconciler/internal/match"
	"basket-reconciler/internal/result"
)

const dirPerm = 0o755

// Sheet is a result table ready to be written.
type Sheet struct {
	Name   string
	Header []string
	Rows   []SheetRow
	// FlagColumn is the 0-based column highlighted on flagged rows.
	FlagColumn int
}

// SheetRow is one line of a Sheet. Cells may extend past the header.
type SheetRow struct {
	Cells   []string
	Flagged bool
}

// Flagged returns how many rows are flagged.
func (s *Sheet) Flagged() int {
	n := 0

	for _, r := range s.Rows {
		if r.Flagged {
			n++
		}
	}

	return n
}

func recordCells(section string, rec result.Record) []string {
	cells := make([]string, 0, recordWidth)
	cells = append(cells, section)

	for i := range match.MaxBaskets {
		if i < len(rec.Baskets) {
			cells = append(cells, rec.Baskets[i])
		} else {
			cells = append(cells, "")
		}
	}

	return append(cells, rec.Coefficient)
}

// SectionSheet lays out per-section records; rows without a coefficient are
// flagged.
func SectionSheet(records []result.Record) *Sheet {
	sheet := &Sheet{
		Name:       "Sections",
		Header:     []string{"Section", "Basket 1", "Basket 2", "Basket 3", "Basket 4", "Coefficient"},
		FlagColumn: colCoefficient,
	}

	for _, rec := range records {
		sheet.Rows = append(sheet.Rows, SheetRow{
			Cells:   recordCells(rec.Section, rec),
			Flagged: !rec.Matched(),
		})
	}

	return sheet
}

// WallSheet lays out grouped wall records. Wall IDs fill the columns from
// the seventh on.
func WallSheet(records []result.Record) *Sheet {
	sheet := &Sheet{
		Name:       "Walls",
		Header:     []string{"Section Number", "Basket 1", "Basket 2", "Basket 3", "Basket 4", "Coefficient", "Wall ID"},
		FlagColumn: colCoefficient,
	}

	for _, rec := range records {
		cells := recordCells(rec.Section, rec)
		cells = append(cells, rec.ContainerIDs...)

		sheet.Rows = append(sheet.Rows, SheetRow{Cells: cells, Flagged: !rec.Matched()})
	}

	return sheet
}

// UniquePath returns path if nothing exists there, otherwise the first free
// "name_N.ext" next to it. Stat failures other than not-exist are returned.
func UniquePath(path string) (string, error) {
	free, err := isFree(path)
	if err != nil || free {
		return path, err
	}

	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)

	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s_%d%s", base, i, ext)

		free, err := isFree(candidate)
		if err != nil {
			return "", err
		}

		if free {
			return candidate, nil
		}
	}
}

// LatestPath returns the last existing path of the sequence path, name_1.ext,
// name_2.ext, ... that UniquePath produces. When path itself does not exist
// it is returned unchanged.
func LatestPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}

	free, err := isFree(path)
	if err != nil || free {
		return path, err
	}

	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	latest := path

	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s_%d%s", base, i, ext)

		free, err := isFree(candidate)
		if err != nil {
			return "", err
		}

		if free {
			return latest, nil
		}

		latest = candidate
	}
}

func isFree(path string) (bool, error) {
	_, err := os.Stat(path)

	switch {
	case err == nil:
		return false, nil
	case errors.Is(err, fs.ErrNotExist):
		return true, nil
	default:
		return false, fmt.Errorf("checking output path: %w", err)
	}
}

// Write stores sheet at a free path derived from path and returns the path
// used. The format follows the extension.
func Write(path string, sheet *Sheet) (string, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return "", fmt.Errorf("creating output directory: %w", err)
		}
	}

	target, err := UniquePath(path)
	if err != nil {
		return "", err
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx":
		err = writeXLSX(target, sheet)
	case ".csv":
		err = writeCSV(target, sheet)
	case ".db", ".sqlite", ".sqlite3":
		err = writeSQLite(target, sheet)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	if err != nil {
		return "", fmt.Errorf("writing results %s: %w", target, err)
	}

	return target, nil
}
