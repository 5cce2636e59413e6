package dao

import (
	"fmt"

	"github.com/ebilgin/expense-ledger/infra/db/model"
)

func (d *dao) CreateImportBatchLog(logEntry *model.ImportBatchLog) error {
	if err := d.db.Create(logEntry).Error; err != nil {
		return fmt.Errorf("failed to create import batch log: %w", err)
	}
	return nil
}

func (d *dao) GetImportBatchLogByID(id int64) (model.ImportBatchLog, error) {
	var logEntry model.ImportBatchLog
	if err := d.db.First(&logEntry, id).Error; err != nil {
		return logEntry, fmt.Errorf("import batch log not found: %w", err)
	}
	return logEntry, nil
}

func (d *dao) GetImportBatchLogs() ([]model.ImportBatchLog, error) {
	var logs []model.ImportBatchLog
	if err := d.db.Order("create_time DESC").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (d *dao) UpdateImportBatchLog(logEntry model.ImportBatchLog) error {
	if err := d.db.Save(&logEntry).Error; err != nil {
		return fmt.Errorf("failed to update import batch log: %w", err)
	}
	return nil
}
