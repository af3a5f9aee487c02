package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Data"

// ToExcel writes records as a single-sheet XLSX workbook. Numeric values are
// written as numbers so spreadsheet formulas keep working on exported data.
func ToExcel(records []map[string]any) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	cols := Columns(records)
	for i, col := range cols {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, col); err != nil {
			return nil, err
		}
	}

	for ri, rec := range records {
		for ci, col := range cols {
			cell, err := excelize.CoordinatesToCellName(ci+1, ri+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, cellValue(rec[col])); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// cellValue keeps numbers and booleans typed for the workbook and falls back
// to the tabular string rendering for everything else.
func cellValue(v any) any {
	switch v.(type) {
	case nil:
		return ""
	case bool, int, int32, int64, float32, float64, string:
		return v
	default:
		return CellString(v)
	}
}
