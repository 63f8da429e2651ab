package dataset

import (
	"encoding/csv"
	"os"
)

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	return r.ReadAll()
}

func writeCSV(path string, sheet *Sheet) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)

	if err := w.Write(sheet.Header); err != nil {
		return err
	}

	for _, row := range sheet.Rows {
		if err := w.Write(row.Cells); err != nil {
			return err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	return f.Close()
}
