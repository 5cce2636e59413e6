package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseEntry is the master record of one expense document. The unique
// index on DocumentNumber is the single source of truth for allocation;
// the allocator only reduces collision probability, it never guarantees it.
type ExpenseEntry struct {
	ID             int64           `gorm:"primary_key;auto_increment" json:"id"`
	EntryDate      time.Time       `gorm:"not null;index" json:"entry_date"`
	DocumentNumber string          `gorm:"size:20;not null;unique_index" json:"document_number"`
	Description    string          `gorm:"size:255" json:"description"`
	VehicleID      *int64          `gorm:"index" json:"vehicle_id"`
	CounterpartyID *int64          `gorm:"index" json:"counterparty_id"`
	TotalAmount    decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"total_amount"`
	CreateTime     int64           `gorm:"not null" json:"create_time"`
	CreateBy       string          `gorm:"size:100;not null" json:"create_by"`
	UpdateTime     int64           `gorm:"not null" json:"update_time"`
	UpdateBy       string          `gorm:"size:100;not null" json:"update_by"`
}
