package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryCandidate holds the raw master cells of an import group before
// validation. Free-text fields are resolved against the reference tables.
type EntryCandidate struct {
	EntryDateText    string
	DocumentNumber   string
	VehicleName      string
	CounterpartyName string
	Description      string
}

// DetailCandidate holds the raw detail cells of one spreadsheet row.
type DetailCandidate struct {
	Row            int
	DetailDateText string
	ReceiptRef     string
	CategoryName   string
	Description    string
	AmountText     string
}

// ImportGroup is one logical expense entry segmented from the flat grid:
// a master candidate row plus the contiguous detail rows that follow it.
// RowStart and RowEnd are 1-based source rows including the header row.
type ImportGroup struct {
	RowStart int
	RowEnd   int
	Entry    EntryCandidate
	Details  []DetailCandidate
}

// ValidatedEntry is a master candidate with typed fields and resolved
// references. DocumentNumber is empty when the allocator must assign one.
type ValidatedEntry struct {
	EntryDate      time.Time
	DocumentNumber string
	Description    string
	VehicleID      *int64
	CounterpartyID *int64
}

// ValidatedDetail is a detail candidate with typed fields; CategoryID is
// always resolved and Amount is strictly positive.
type ValidatedDetail struct {
	Row         int
	DetailDate  time.Time
	ReceiptRef  string
	CategoryID  int64
	Description string
	Amount      decimal.Decimal
}

// ValidatedGroup is an ImportGroup that passed validation and is ready to
// commit. TotalAmount is the sum of its detail amounts.
type ValidatedGroup struct {
	RowStart    int
	RowEnd      int
	Entry       ValidatedEntry
	Details     []ValidatedDetail
	TotalAmount decimal.Decimal
}

// RowError is a validation error scoped to a single spreadsheet row.
type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// ImportSummary is the operator review payload produced when a batch is
// staged: counts, collected row errors and the total over valid groups.
type ImportSummary struct {
	LogID       int64           `json:"log_id,omitempty"`
	TotalRows   int             `json:"total_rows"`
	GroupCount  int             `json:"group_count"`
	ValidGroups int             `json:"valid_groups"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Errors      []RowError      `json:"errors,omitempty"`
}

// GroupFailure records a commit failure against the source row range of the
// group that caused it.
type GroupFailure struct {
	RowStart int    `json:"row_start"`
	RowEnd   int    `json:"row_end"`
	Message  string `json:"message"`
}

// CommitResult aggregates a batch commit. Failures keep input order.
type CommitResult struct {
	Succeeded int            `json:"succeeded"`
	Failures  []GroupFailure `json:"failures,omitempty"`
}
