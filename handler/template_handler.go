package handler

import (
	"net/http"

	"github.com/ebilgin/expense-ledger/infra/spreadsheet"
)

// GetTemplate serves the import template workbook.
func (h *LedgerHandler) GetTemplate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="expense_import_template.xlsx"`)

	if err := spreadsheet.WriteTemplate(w); err != nil {
		http.Error(w, "Failed to generate template", http.StatusInternalServerError)
	}
}
