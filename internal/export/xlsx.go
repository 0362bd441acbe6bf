// Package export writes the image listing workbook.
package export

import (
	"fmt"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// Layout convention for downstream manual editing: row 1 and column A stay
// blank, headers sit on row 2, data starts at row 3 in column B.
const (
	headerRow = 2
	dataRow   = 3
	firstCol  = 2
)

// WriteWorkbook writes headers and rows to a new workbook at path with the
// listing layout. Existing files are overwritten.
func WriteWorkbook(path, sheet string, headers []string, rows [][]string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	for i, header := range headers {
		if err := setCell(f, sheet, firstCol+i, headerRow, header); err != nil {
			return err
		}
	}

	for rowIdx, row := range rows {
		for colIdx, value := range row {
			if value == "" {
				continue
			}
			if err := setCell(f, sheet, firstCol+colIdx, dataRow+rowIdx, value); err != nil {
				return err
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	return nil
}

func setCell(f *excelize.File, sheet string, col, row int, value string) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("cell %d,%d: %w", col, row, err)
	}
	if err := f.SetCellStr(sheet, cell, value); err != nil {
		return fmt.Errorf("setting %s: %w", cell, err)
	}
	return nil
}
