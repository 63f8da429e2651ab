package dataset

import (
	"database/sql"
	"fmt"
	"strings"
	"unicode"

	_ "modernc.org/sqlite"
)

const (
	datasetTable = "dataset"
	resultsTable = "results"
)

func readSQLite(path string) ([][]string, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query(`SELECT section, basket1, basket2, basket3, basket4, coefficient FROM "` +
		datasetTable + `" ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records [][]string

	for rows.Next() {
		var cols [recordWidth]sql.NullString

		dest := make([]any, recordWidth)
		for i := range cols {
			dest[i] = &cols[i]
		}

		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}

		rec := make([]string, recordWidth)
		for i, c := range cols {
			rec[i] = c.String
		}

		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// columnName turns a header label into a column name: "Basket 1" -> "basket_1".
func columnName(label string) string {
	var b strings.Builder

	for _, r := range strings.TrimSpace(label) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteByte('_')
		}
	}

	return b.String()
}

func writeSQLite(path string, sheet *Sheet) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return err
	}
	defer db.Close()

	cols := make([]string, 0, len(sheet.Header)+1)
	defs := make([]string, 0, len(sheet.Header)+1)

	for _, h := range sheet.Header {
		c := columnName(h)
		cols = append(cols, fmt.Sprintf("%q", c))
		defs = append(defs, fmt.Sprintf("%q TEXT", c))
	}

	cols = append(cols, `"flagged"`)
	defs = append(defs, `"flagged" INTEGER`)

	if _, err := db.Exec(`DROP TABLE IF EXISTS "` + resultsTable + `"`); err != nil {
		return err
	}

	if _, err := db.Exec(`CREATE TABLE "` + resultsTable + `" (` + strings.Join(defs, ",") + `)`); err != nil {
		return err
	}

	ph := strings.TrimRight(strings.Repeat("?,", len(cols)), ",")

	stmt, err := db.Prepare(`INSERT INTO "` + resultsTable + `" (` + strings.Join(cols, ",") + `) VALUES (` + ph + `)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	width := len(sheet.Header)

	for _, row := range sheet.Rows {
		args := make([]any, 0, len(cols))

		for i := range width {
			var v string

			switch {
			case i == width-1 && len(row.Cells) > width:
				// Overflow cells, such as extra wall IDs, share the last column.
				v = strings.Join(row.Cells[i:], ",")
			case i < len(row.Cells):
				v = row.Cells[i]
			}

			args = append(args, v)
		}

		flagged := 0
		if row.Flagged {
			flagged = 1
		}

		if _, err := stmt.Exec(append(args, flagged)...); err != nil {
			return err
		}
	}

	return nil
}
