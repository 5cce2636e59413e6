package ledger

import (
	"context"
	"fmt"

	"github.com/ebilgin/expense-ledger/entity"
	"github.com/ebilgin/expense-ledger/infra/db/model"

	"github.com/labstack/gommon/log"
	"github.com/shopspring/decimal"
)

// SaveEntry saves an edited entry: the edited detail list is reconciled
// against storage (deletes first, then upserts) and the entry total is
// recomputed from the surviving details so it always matches their sum.
func (u *ledgerUsecase) SaveEntry(ctx context.Context, req entity.SaveEntryRequest, operator string) (*model.ExpenseEntry, error) {
	entry, err := u.dao.GetExpenseEntryByID(req.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrStoreFailure, err)
	}

	plan, err := reconcileDetails(req.Details)
	if err != nil {
		return nil, err
	}
	if err := validateEdits(plan); err != nil {
		return nil, err
	}

	for _, id := range plan.ToDelete {
		if err := u.dao.DeleteExpenseDetail(id); err != nil {
			return nil, fmt.Errorf("%w: %v", entity.ErrStoreFailure, err)
		}
	}
	for _, e := range plan.ToInsert {
		detail := editToModel(e, entry.ID)
		if err := u.dao.CreateExpenseDetail(&detail); err != nil {
			return nil, fmt.Errorf("%w: %v", entity.ErrStoreFailure, err)
		}
	}
	for _, e := range plan.ToUpdate {
		detail := editToModel(e, entry.ID)
		if err := u.dao.UpdateExpenseDetail(detail); err != nil {
			return nil, fmt.Errorf("%w: %v", entity.ErrStoreFailure, err)
		}
	}

	details, err := u.dao.GetExpenseDetailsByEntryID(entry.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrStoreFailure, err)
	}
	total := decimal.Zero
	for _, d := range details {
		total = total.Add(d.Amount)
	}

	entry.EntryDate = req.EntryDate
	entry.Description = req.Description
	entry.VehicleID = req.VehicleID
	entry.CounterpartyID = req.CounterpartyID
	entry.TotalAmount = total
	entry.UpdateTime = u.now().Unix()
	entry.UpdateBy = operator
	if err := u.dao.UpdateExpenseEntry(entry); err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrStoreFailure, err)
	}

	log.Infof("[Save] entry %s: %d inserted, %d updated, %d deleted, total %s",
		entry.DocumentNumber, len(plan.ToInsert), len(plan.ToUpdate), len(plan.ToDelete), total)
	return &entry, nil
}

// DeleteEntry removes an entry together with its details. The document
// number is freed for the day it belongs to; the allocator may reuse it.
func (u *ledgerUsecase) DeleteEntry(ctx context.Context, id int64, operator string) error {
	entry, err := u.dao.GetExpenseEntryByID(id)
	if err != nil {
		return fmt.Errorf("%w: %v", entity.ErrStoreFailure, err)
	}
	if err := u.dao.DeleteExpenseEntry(entry.ID); err != nil {
		return fmt.Errorf("%w: %v", entity.ErrStoreFailure, err)
	}
	log.Infof("[Save] entry %s deleted by %s", entry.DocumentNumber, operator)
	return nil
}

// validateEdits applies the same field rules the importer enforces to rows
// that will be written.
func validateEdits(plan entity.ReconcilePlan) error {
	check := func(e entity.DetailEdit) error {
		if e.CategoryID == 0 {
			return fmt.Errorf("%w: detail category is required", entity.ErrReferenceNotFound)
		}
		if e.Amount.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("%w: detail amount must be positive, got %s", entity.ErrInvalidAmount, e.Amount)
		}
		if e.DetailDate.IsZero() {
			return fmt.Errorf("%w: detail date is required", entity.ErrInvalidDate)
		}
		return nil
	}
	for _, e := range plan.ToInsert {
		if err := check(e); err != nil {
			return err
		}
	}
	for _, e := range plan.ToUpdate {
		if err := check(e); err != nil {
			return err
		}
	}
	return nil
}

func editToModel(e entity.DetailEdit, entryID int64) model.ExpenseDetail {
	return model.ExpenseDetail{
		ID:             e.ID,
		ExpenseEntryID: entryID,
		DetailDate:     e.DetailDate,
		ReceiptRef:     e.ReceiptRef,
		CategoryID:     e.CategoryID,
		Description:    e.Description,
		Amount:         e.Amount,
	}
}
