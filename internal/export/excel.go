// Package export writes the extracted project records to a spreadsheet.
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/isee3s/floodcontrolph/internal/project"
)

// SheetName is the single worksheet holding the project rows.
const SheetName = "Projects"

// Header is the fixed column order of the export.
var Header = []string{"Title", "Contractor", "Start Date", "Cost", "Latitude", "Longitude", "Location"}

// WriteExcel writes all records to an .xlsx workbook at path, one row
// per record in input order with no transformation beyond direct field
// mapping. The parent directory is created if missing. Any write
// failure is returned to the caller.
func WriteExcel(records []*project.Record, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", SheetName)

	for i, h := range Header {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("building header cell: %w", err)
		}
		if err := f.SetCellValue(SheetName, cell, h); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
		if col, err := excelize.ColumnNumberToName(i + 1); err == nil {
			f.SetColWidth(SheetName, col, col, 18)
		}
	}

	for i, rec := range records {
		row := i + 2
		f.SetCellValue(SheetName, fmt.Sprintf("A%d", row), rec.Title)
		f.SetCellValue(SheetName, fmt.Sprintf("B%d", row), rec.Contractor)
		f.SetCellValue(SheetName, fmt.Sprintf("C%d", row), rec.StartDate)
		f.SetCellValue(SheetName, fmt.Sprintf("D%d", row), rec.Cost)
		f.SetCellValue(SheetName, fmt.Sprintf("E%d", row), rec.Latitude)
		f.SetCellValue(SheetName, fmt.Sprintf("F%d", row), rec.Longitude)
		f.SetCellValue(SheetName, fmt.Sprintf("G%d", row), rec.Location)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving spreadsheet: %w", err)
	}
	return nil
}
