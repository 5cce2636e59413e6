package ledger

import (
	"strings"

	"github.com/ebilgin/expense-ledger/consts"
	"github.com/ebilgin/expense-ledger/entity"
)

// groupRows partitions the flat grid into import groups. Row 0 is the
// header and is skipped. Any master-identifying content (entry date,
// vehicle, counterparty) opens a new group, partially filled master cells
// included; a row with only detail-identifying content (category, amount)
// attaches to the open group, or is dropped when none is open yet. Rows
// with neither signal are blank separators. Row numbers in the result are
// 1-based source rows.
func groupRows(grid [][]string) []entity.ImportGroup {
	var groups []entity.ImportGroup
	var open *entity.ImportGroup

	for i := 1; i < len(grid); i++ {
		row := grid[i]
		sourceRow := i + 1

		if hasEntrySignal(row) {
			if open != nil {
				groups = append(groups, *open)
			}
			open = &entity.ImportGroup{
				RowStart: sourceRow,
				RowEnd:   sourceRow,
				Entry: entity.EntryCandidate{
					EntryDateText:    cell(row, consts.ColEntryDate),
					DocumentNumber:   cell(row, consts.ColDocumentNumber),
					VehicleName:      cell(row, consts.ColVehicle),
					CounterpartyName: cell(row, consts.ColCounterparty),
					Description:      cell(row, consts.ColDescription),
				},
			}
			// The master row may carry the first detail in its own cells.
			if hasDetailSignal(row) {
				open.Details = append(open.Details, detailCandidate(row, sourceRow))
			}
			continue
		}

		if hasDetailSignal(row) {
			if open == nil {
				continue
			}
			open.Details = append(open.Details, detailCandidate(row, sourceRow))
			open.RowEnd = sourceRow
		}
	}

	if open != nil {
		groups = append(groups, *open)
	}
	return groups
}

func hasEntrySignal(row []string) bool {
	return cell(row, consts.ColEntryDate) != "" ||
		cell(row, consts.ColVehicle) != "" ||
		cell(row, consts.ColCounterparty) != ""
}

func hasDetailSignal(row []string) bool {
	return cell(row, consts.ColCategory) != "" ||
		cell(row, consts.ColAmount) != ""
}

func detailCandidate(row []string, sourceRow int) entity.DetailCandidate {
	return entity.DetailCandidate{
		Row:            sourceRow,
		DetailDateText: cell(row, consts.ColDetailDate),
		ReceiptRef:     cell(row, consts.ColReceiptRef),
		CategoryName:   cell(row, consts.ColCategory),
		Description:    cell(row, consts.ColDetailDescription),
		AmountText:     cell(row, consts.ColAmount),
	}
}

func cell(row []string, idx int) string {
	if idx < len(row) {
		return strings.TrimSpace(row[idx])
	}
	return ""
}
