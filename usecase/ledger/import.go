package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ebilgin/expense-ledger/consts"
	"github.com/ebilgin/expense-ledger/entity"
	"github.com/ebilgin/expense-ledger/infra/db/model"
	"github.com/ebilgin/expense-ledger/infra/spreadsheet"

	"github.com/labstack/gommon/log"
)

// StageImport validates a spreadsheet without committing anything: the file
// is copied into the upload directory, grouped and validated, and an
// ImportBatchLog is persisted so the operator can review the summary and
// confirm via CommitImport.
func (u *ledgerUsecase) StageImport(ctx context.Context, filePath, operator string) (*entity.ImportSummary, error) {
	storedPath, err := u.storeUpload(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to store upload: %w", err)
	}

	grid, err := spreadsheet.ReadGrid(storedPath)
	if err != nil {
		return nil, err
	}

	_, summary, err := u.validateGrid(grid)
	if err != nil {
		return nil, err
	}
	log.Infof("[Import] staged %s: %d groups, %d valid, %d row errors",
		filepath.Base(storedPath), summary.GroupCount, summary.ValidGroups, len(summary.Errors))

	resultJSON, err := json.Marshal(summary)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal import summary: %w", err)
	}

	nowUnix := u.now().Unix()
	logEntry := model.ImportBatchLog{
		FileName:    filepath.Base(filePath),
		FileUrl:     storedPath,
		TotalGroups: int64(summary.GroupCount),
		Status:      consts.ImportStatusStaged,
		Result:      string(resultJSON),
		CreateTime:  nowUnix,
		CreateBy:    operator,
		UpdateTime:  nowUnix,
		UpdateBy:    operator,
	}
	if err := u.dao.CreateImportBatchLog(&logEntry); err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrStoreFailure, err)
	}

	summary.LogID = logEntry.ID
	return summary, nil
}

// validateGrid runs the grouping parser and the validator over a grid and
// builds the review summary. Valid groups are returned for committing.
func (u *ledgerUsecase) validateGrid(grid [][]string) ([]entity.ValidatedGroup, *entity.ImportSummary, error) {
	refs, err := u.loadReferenceTables()
	if err != nil {
		return nil, nil, err
	}

	groups := groupRows(grid)
	summary := &entity.ImportSummary{
		GroupCount: len(groups),
	}
	if len(grid) > 0 {
		summary.TotalRows = len(grid) - 1
	}

	var valid []entity.ValidatedGroup
	for _, g := range groups {
		vg, rowErrs := validateGroup(g, refs)
		if len(rowErrs) > 0 {
			summary.Errors = append(summary.Errors, rowErrs...)
			continue
		}
		valid = append(valid, vg)
		summary.ValidGroups++
		summary.TotalAmount = summary.TotalAmount.Add(vg.TotalAmount)
	}

	return valid, summary, nil
}

func (u *ledgerUsecase) storeUpload(filePath string) (string, error) {
	input, err := os.ReadFile(filePath)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(u.uploadDir, 0755); err != nil {
		return "", err
	}

	destPath := filepath.Join(u.uploadDir, fmt.Sprintf("%d_%s", u.now().UnixNano(), filepath.Base(filePath)))
	if err := os.WriteFile(destPath, input, 0644); err != nil {
		return "", err
	}

	return destPath, nil
}
