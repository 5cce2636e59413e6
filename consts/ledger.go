package consts

import "time"

const (
	// Document number format: KHT-YYYYMMDDNNNN
	DocumentNumberPrefix   = "KHT"
	DocumentDateLayout     = "20060102"
	DocumentSequenceDigits = 4
	DocumentSequenceMax    = 9999

	// Allocation retry policy
	AllocateMaxAttempts = 3
	AllocateRetryDelay  = 50 * time.Millisecond

	// Import batch status codes
	ImportStatusStaged    = 1
	ImportStatusCommitted = 2
	ImportStatusFailed    = 3

	// Accepted date forms in spreadsheet cells
	CellDateLayout      = "02.01.2006"
	CellDateLayoutShort = "2.1.2006"

	// Default config
	DefaultUploadDir = "uploads"
)

// Import grid columns, fixed order. Row 0 is the header row; its text is
// advisory only and never validated.
const (
	ColEntryDate = iota
	ColDocumentNumber
	ColVehicle
	ColCounterparty
	ColDescription
	ColDetailDate
	ColReceiptRef
	ColCategory
	ColDetailDescription
	ColAmount

	ImportColumnCount
)
