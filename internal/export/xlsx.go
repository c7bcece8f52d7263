// Package export serializes candidate records into a spreadsheet.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/rosterly/candex/internal/document"
)

const sheetName = "Candidates"

// WriteXLSX writes one header row plus one row per record, in input order,
// with no value transformation.
func WriteXLSX(w io.Writer, records []document.CandidateRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]any, len(document.Columns))
	for i, c := range document.Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		lastCell, _ := excelize.CoordinatesToCellName(len(document.Columns), 1)
		f.SetCellStyle(sheetName, "A1", lastCell, boldStyle)
	}

	for i, rec := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
		values := rec.Row()
		row := make([]any, len(values))
		for j, v := range values {
			row[j] = v
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}

	// The summary column holds whole sections; give it room.
	f.SetColWidth(sheetName, "A", "E", 18)
	f.SetColWidth(sheetName, "F", "F", 60)

	return f.Write(w)
}
