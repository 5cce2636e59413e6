package ledger

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ebilgin/expense-ledger/consts"
	"github.com/ebilgin/expense-ledger/entity"
	"github.com/ebilgin/expense-ledger/infra/db/model"
	"github.com/ebilgin/expense-ledger/infra/spreadsheet"

	"github.com/labstack/gommon/log"
)

// CommitImport commits a previously staged batch. The stored file is
// re-read and re-validated so the commit never trusts a stale summary; the
// in-process locker only guards against double submission of the same log.
func (u *ledgerUsecase) CommitImport(ctx context.Context, logID int64, operator string) (*entity.CommitResult, error) {
	if !u.locker.TryLock(logID) {
		return nil, fmt.Errorf("import batch %d is already being committed", logID)
	}
	defer u.locker.Unlock(logID)

	logEntry, err := u.dao.GetImportBatchLogByID(logID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrStoreFailure, err)
	}
	if logEntry.Status != consts.ImportStatusStaged {
		return nil, fmt.Errorf("import batch %d is not staged (status %d)", logID, logEntry.Status)
	}

	grid, err := spreadsheet.ReadGrid(logEntry.FileUrl)
	if err != nil {
		return nil, err
	}
	groups, _, err := u.validateGrid(grid)
	if err != nil {
		return nil, err
	}

	log.Infof("[Commit] batch %d: committing %d groups", logID, len(groups))
	result := u.commitGroups(ctx, groups, operator)
	log.Infof("[Commit] batch %d: %d succeeded, %d failed", logID, result.Succeeded, len(result.Failures))

	resultJSON, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal commit result: %w", err)
	}

	logEntry.CommittedGroups = int64(result.Succeeded)
	logEntry.Result = string(resultJSON)
	if result.Succeeded == 0 && len(result.Failures) > 0 {
		logEntry.Status = consts.ImportStatusFailed
	} else {
		logEntry.Status = consts.ImportStatusCommitted
	}
	logEntry.UpdateTime = u.now().Unix()
	logEntry.UpdateBy = operator
	if err := u.dao.UpdateImportBatchLog(logEntry); err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrStoreFailure, err)
	}

	return result, nil
}

// commitGroups persists validated groups one at a time. A failing group is
// recorded against its source row range and never aborts its siblings;
// failures keep input order. Groups run sequentially so each group's
// allocation retries stay independent.
func (u *ledgerUsecase) commitGroups(ctx context.Context, groups []entity.ValidatedGroup, operator string) *entity.CommitResult {
	result := &entity.CommitResult{}

	for _, g := range groups {
		if err := u.commitGroup(ctx, g, operator); err != nil {
			log.Errorf("[Commit] rows %d-%d: %v", g.RowStart, g.RowEnd, err)
			result.Failures = append(result.Failures, entity.GroupFailure{
				RowStart: g.RowStart,
				RowEnd:   g.RowEnd,
				Message:  err.Error(),
			})
			continue
		}
		result.Succeeded++
	}

	return result
}

func (u *ledgerUsecase) commitGroup(ctx context.Context, g entity.ValidatedGroup, operator string) error {
	now := u.now()
	entry := model.ExpenseEntry{
		EntryDate:      g.Entry.EntryDate,
		Description:    g.Entry.Description,
		VehicleID:      g.Entry.VehicleID,
		CounterpartyID: g.Entry.CounterpartyID,
		TotalAmount:    g.TotalAmount,
		CreateTime:     now.Unix(),
		CreateBy:       operator,
		UpdateTime:     now.Unix(),
		UpdateBy:       operator,
	}

	if g.Entry.DocumentNumber != "" {
		entry.DocumentNumber = g.Entry.DocumentNumber
		if err := u.dao.CreateExpenseEntry(&entry); err != nil {
			if u.dao.IsUniqueViolation(err) {
				return fmt.Errorf("%w: %s", entity.ErrNumberConflict, entry.DocumentNumber)
			}
			return fmt.Errorf("%w: %v", entity.ErrStoreFailure, err)
		}
	} else if err := u.allocateAndInsertEntry(ctx, &entry, now); err != nil {
		return err
	}

	for _, d := range g.Details {
		detail := model.ExpenseDetail{
			ExpenseEntryID: entry.ID,
			DetailDate:     d.DetailDate,
			ReceiptRef:     d.ReceiptRef,
			CategoryID:     d.CategoryID,
			Description:    d.Description,
			Amount:         d.Amount,
		}
		if err := u.dao.CreateExpenseDetail(&detail); err != nil {
			// No multi-table transaction is assumed: the entry is already
			// in. Name it so the operator can find and repair the orphan.
			return fmt.Errorf("entry %s persisted but detail from row %d failed: %w",
				entry.DocumentNumber, d.Row, err)
		}
	}

	return nil
}
