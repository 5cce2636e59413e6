package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseDetail is one line item of an ExpenseEntry. Details never outlive
// their entry: deleting an entry cascades over its details in the dao.
type ExpenseDetail struct {
	ID             int64           `gorm:"primary_key;auto_increment" json:"id"`
	ExpenseEntryID int64           `gorm:"not null;index" json:"expense_entry_id"`
	DetailDate     time.Time       `gorm:"not null" json:"detail_date"`
	ReceiptRef     string          `gorm:"size:50" json:"receipt_ref"`
	CategoryID     int64           `gorm:"not null;index" json:"category_id"`
	Description    string          `gorm:"size:255" json:"description"`
	Amount         decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"amount"`
}
