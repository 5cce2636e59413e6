package dao

import (
	"github.com/ebilgin/expense-ledger/infra/db/model"

	"github.com/jinzhu/gorm"
)

// DaoMethod is the generic record store interface the usecases depend on.
// IsUniqueViolation distinguishes a uniqueness-constraint conflict from any
// other store failure; the document number allocator relies on that.
//
//go:generate mockgen -destination=mocks/mock_dao.go -source=builder.go DaoMethod
type DaoMethod interface {
	GetVehicles() ([]model.Vehicle, error)
	GetCounterparties() ([]model.Counterparty, error)
	GetExpenseCategories() ([]model.ExpenseCategory, error)

	GetMaxDocumentNumber(prefix string) (string, error)
	CreateExpenseEntry(entry *model.ExpenseEntry) error
	UpdateExpenseEntry(entry model.ExpenseEntry) error
	DeleteExpenseEntry(id int64) error
	GetExpenseEntryByID(id int64) (model.ExpenseEntry, error)
	GetExpenseEntries() ([]model.ExpenseEntry, error)

	CreateExpenseDetail(detail *model.ExpenseDetail) error
	UpdateExpenseDetail(detail model.ExpenseDetail) error
	DeleteExpenseDetail(id int64) error
	GetExpenseDetailsByEntryID(entryID int64) ([]model.ExpenseDetail, error)

	CreateImportBatchLog(logEntry *model.ImportBatchLog) error
	GetImportBatchLogByID(id int64) (model.ImportBatchLog, error)
	GetImportBatchLogs() ([]model.ImportBatchLog, error)
	UpdateImportBatchLog(logEntry model.ImportBatchLog) error

	IsUniqueViolation(err error) bool
}

type dao struct {
	db *gorm.DB
}

func NewDaoMethod(db *gorm.DB) DaoMethod {
	return &dao{db: db}
}
