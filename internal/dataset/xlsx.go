package dataset

import (
	"github.com/xuri/excelize/v2"
)

const flagFill = "FFB6C1"

func readXLSX(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}

	return f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
}

func writeXLSX(path string, sheet *Sheet) error {
	f := excelize.NewFile()
	defer f.Close()

	name := sheet.Name
	if name == "" {
		name = "Sheet1"
	}

	if err := f.SetSheetName("Sheet1", name); err != nil {
		return err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	pink, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{flagFill}, Pattern: 1},
	})
	if err != nil {
		return err
	}

	if err := writeXLSXRow(f, name, 1, sheet.Header); err != nil {
		return err
	}

	last, err := excelize.CoordinatesToCellName(len(sheet.Header), 1)
	if err != nil {
		return err
	}

	if err := f.SetCellStyle(name, "A1", last, bold); err != nil {
		return err
	}

	for i, row := range sheet.Rows {
		n := i + 2

		if err := writeXLSXRow(f, name, n, row.Cells); err != nil {
			return err
		}

		if !row.Flagged {
			continue
		}

		cell, err := excelize.CoordinatesToCellName(sheet.FlagColumn+1, n)
		if err != nil {
			return err
		}

		if err := f.SetCellStyle(name, cell, cell, pink); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}

func writeXLSXRow(f *excelize.File, sheet string, n int, cells []string) error {
	start, err := excelize.CoordinatesToCellName(1, n)
	if err != nil {
		return err
	}

	values := make([]any, len(cells))
	for i, c := range cells {
		values[i] = c
	}

	return f.SetSheetRow(sheet, start, &values)
}
