package ledger

import (
	"context"
	"time"

	"github.com/ebilgin/expense-ledger/entity"
	"github.com/ebilgin/expense-ledger/infra/db/dao"
	"github.com/ebilgin/expense-ledger/infra/db/model"
	"github.com/ebilgin/expense-ledger/infra/locker"
)

type LedgerUsecase interface {
	StageImport(ctx context.Context, filePath, operator string) (*entity.ImportSummary, error)
	CommitImport(ctx context.Context, logID int64, operator string) (*entity.CommitResult, error)
	SaveEntry(ctx context.Context, req entity.SaveEntryRequest, operator string) (*model.ExpenseEntry, error)
	DeleteEntry(ctx context.Context, id int64, operator string) error
	GetEntries(ctx context.Context) ([]EntryWithDetails, error)
	GetImportLogs(ctx context.Context) ([]model.ImportBatchLog, error)
}

// EntryWithDetails pairs a persisted entry with its detail rows.
type EntryWithDetails struct {
	Entry   model.ExpenseEntry    `json:"entry"`
	Details []model.ExpenseDetail `json:"details"`
}

type ledgerUsecase struct {
	dao       dao.DaoMethod
	locker    *locker.Locker
	uploadDir string

	// injectable for tests
	now   func() time.Time
	sleep func(time.Duration)
}

func NewLedgerUsecase(daoMethod dao.DaoMethod, lk *locker.Locker, uploadDir string) LedgerUsecase {
	return &ledgerUsecase{
		dao:       daoMethod,
		locker:    lk,
		uploadDir: uploadDir,
		now:       time.Now,
		sleep:     time.Sleep,
	}
}
