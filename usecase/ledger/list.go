package ledger

import (
	"context"
	"fmt"

	"github.com/ebilgin/expense-ledger/entity"
	"github.com/ebilgin/expense-ledger/infra/db/model"
)

func (u *ledgerUsecase) GetEntries(ctx context.Context) ([]EntryWithDetails, error) {
	entries, err := u.dao.GetExpenseEntries()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrStoreFailure, err)
	}

	result := make([]EntryWithDetails, 0, len(entries))
	for _, e := range entries {
		details, err := u.dao.GetExpenseDetailsByEntryID(e.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", entity.ErrStoreFailure, err)
		}
		result = append(result, EntryWithDetails{Entry: e, Details: details})
	}
	return result, nil
}

func (u *ledgerUsecase) GetImportLogs(ctx context.Context) ([]model.ImportBatchLog, error) {
	return u.dao.GetImportBatchLogs()
}
