package spreadsheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ReadGrid loads the first sheet of an .xlsx workbook as a flat grid of
// cells. Raw cell values are requested so date cells arrive as their native
// serial encoding and text cells keep whatever the operator typed; the
// import validator handles both forms.
func ReadGrid(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read rows from %s: %w", path, err)
	}
	return rows, nil
}
