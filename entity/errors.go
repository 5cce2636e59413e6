package entity

import "errors"

// Error kinds surfaced by the ledger usecases. Row-scoped kinds
// (ErrReferenceNotFound, ErrInvalidDate, ErrInvalidAmount) are collected per
// row during import validation and never abort a batch. ErrNumberConflict is
// retried internally by the allocator; ErrNumberExhausted surfaces once the
// retry budget is spent. ErrStoreFailure wraps opaque backend errors.
var (
	ErrReferenceNotFound = errors.New("reference not found")
	ErrInvalidDate       = errors.New("invalid date")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrNumberConflict    = errors.New("document number conflict")
	ErrNumberExhausted   = errors.New("document number sequence exhausted")
	ErrStoreFailure      = errors.New("store failure")
)
