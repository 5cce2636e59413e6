package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DetailState tags an edited detail row. The three states make the
// reconciler's partitioning exhaustive: a row is either brand new, kept (and
// upserted), or pending delete; a deleted row can never also be upserted.
type DetailState string

const (
	DetailStateNew           DetailState = "new"
	DetailStateKept          DetailState = "kept"
	DetailStatePendingDelete DetailState = "delete"
)

// DetailEdit is one row of the in-memory edited detail list submitted when
// an existing entry is saved. ID is zero for rows never persisted. An empty
// State is treated as kept.
type DetailEdit struct {
	ID          int64           `json:"id,omitempty"`
	State       DetailState     `json:"state,omitempty"`
	DetailDate  time.Time       `json:"detail_date"`
	ReceiptRef  string          `json:"receipt_ref,omitempty"`
	CategoryID  int64           `json:"category_id"`
	Description string          `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
}

// ReconcilePlan is the classification of an edited detail list against
// storage: rows to insert, rows to upsert and persisted ids to delete.
// The three sets are disjoint by construction.
type ReconcilePlan struct {
	ToInsert []DetailEdit
	ToUpdate []DetailEdit
	ToDelete []int64
}

// SaveEntryRequest carries an edited entry and its edited detail list.
// The document number is not editable after allocation.
type SaveEntryRequest struct {
	ID             int64        `json:"id"`
	EntryDate      time.Time    `json:"entry_date"`
	Description    string       `json:"description,omitempty"`
	VehicleID      *int64       `json:"vehicle_id,omitempty"`
	CounterpartyID *int64       `json:"counterparty_id,omitempty"`
	Details        []DetailEdit `json:"details"`
}
