package dao

import (
	"fmt"

	"github.com/ebilgin/expense-ledger/infra/db/model"

	"github.com/jinzhu/gorm"
)

// GetMaxDocumentNumber returns the highest persisted document number
// matching the prefix, or "" when none exists. Document numbers sort
// lexicographically because the sequence is zero-padded.
func (d *dao) GetMaxDocumentNumber(prefix string) (string, error) {
	var entry model.ExpenseEntry
	err := d.db.
		Select("document_number").
		Where("document_number LIKE ?", prefix+"%").
		Order("document_number DESC").
		First(&entry).Error
	if gorm.IsRecordNotFoundError(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to query max document number: %w", err)
	}
	return entry.DocumentNumber, nil
}

func (d *dao) CreateExpenseEntry(entry *model.ExpenseEntry) error {
	return d.db.Create(entry).Error
}

func (d *dao) UpdateExpenseEntry(entry model.ExpenseEntry) error {
	if err := d.db.Save(&entry).Error; err != nil {
		return fmt.Errorf("failed to update expense entry: %w", err)
	}
	return nil
}

// DeleteExpenseEntry removes an entry and cascades over its details.
func (d *dao) DeleteExpenseEntry(id int64) error {
	if err := d.db.Where("expense_entry_id = ?", id).Delete(&model.ExpenseDetail{}).Error; err != nil {
		return fmt.Errorf("failed to delete expense details: %w", err)
	}
	if err := d.db.Where("id = ?", id).Delete(&model.ExpenseEntry{}).Error; err != nil {
		return fmt.Errorf("failed to delete expense entry: %w", err)
	}
	return nil
}

func (d *dao) GetExpenseEntryByID(id int64) (model.ExpenseEntry, error) {
	var entry model.ExpenseEntry
	if err := d.db.First(&entry, id).Error; err != nil {
		return entry, fmt.Errorf("expense entry not found: %w", err)
	}
	return entry, nil
}

func (d *dao) GetExpenseEntries() ([]model.ExpenseEntry, error) {
	var entries []model.ExpenseEntry
	if err := d.db.Order("entry_date DESC, document_number DESC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (d *dao) CreateExpenseDetail(detail *model.ExpenseDetail) error {
	return d.db.Create(detail).Error
}

func (d *dao) UpdateExpenseDetail(detail model.ExpenseDetail) error {
	if err := d.db.Save(&detail).Error; err != nil {
		return fmt.Errorf("failed to update expense detail: %w", err)
	}
	return nil
}

func (d *dao) DeleteExpenseDetail(id int64) error {
	if err := d.db.Where("id = ?", id).Delete(&model.ExpenseDetail{}).Error; err != nil {
		return fmt.Errorf("failed to delete expense detail: %w", err)
	}
	return nil
}

func (d *dao) GetExpenseDetailsByEntryID(entryID int64) ([]model.ExpenseDetail, error) {
	var details []model.ExpenseDetail
	if err := d.db.
		Where("expense_entry_id = ?", entryID).
		Order("detail_date ASC, id ASC").
		Find(&details).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch expense details: %w", err)
	}
	return details, nil
}
