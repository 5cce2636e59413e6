package spreadsheet

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const templateSheet = "Expenses"

// WriteTemplate writes the import template workbook: the header row in the
// fixed column order plus one illustrative example row. The header text is
// advisory only; the importer works by column position.
func WriteTemplate(w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", templateSheet); err != nil {
		return fmt.Errorf("failed to name template sheet: %w", err)
	}

	headers := []interface{}{
		"Entry Date", "Document No", "Vehicle", "Counterparty", "Description",
		"Detail Date", "Receipt No", "Category", "Detail Description", "Amount",
	}
	if err := f.SetSheetRow(templateSheet, "A1", &headers); err != nil {
		return fmt.Errorf("failed to write template header: %w", err)
	}

	example := []interface{}{
		"01.06.2024", "", "34 AB 123", "Acme Petrol", "Fuel run",
		"01.06.2024", "R-1", "Fuel", "", "150,75",
	}
	if err := f.SetSheetRow(templateSheet, "A2", &example); err != nil {
		return fmt.Errorf("failed to write template example row: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write template workbook: %w", err)
	}
	return nil
}
