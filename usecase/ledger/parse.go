package ledger

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ebilgin/expense-ledger/consts"
	"github.com/ebilgin/expense-ledger/entity"

	"github.com/shopspring/decimal"
)

// Spreadsheet serial dates count days from this epoch (the usual 1900
// system, which treats 1900 as a leap year, hence Dec 30 not 31).
var excelEpoch = time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)

// parseCellDate accepts either a native spreadsheet serial number or text
// in day.month.year form. The time-of-day fraction of a serial is dropped;
// the ledger stores dates only.
func parseCellDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty date", entity.ErrInvalidDate)
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		if serial <= 0 {
			return time.Time{}, fmt.Errorf("%w: serial %s out of range", entity.ErrInvalidDate, s)
		}
		return excelEpoch.AddDate(0, 0, int(serial)), nil
	}
	for _, layout := range []string{consts.CellDateLayout, consts.CellDateLayoutShort} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", entity.ErrInvalidDate, s)
}

// parseCellAmount normalizes comma-as-decimal-separator input ("1.150,75")
// and requires a strictly positive result.
func parseCellAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("%w: empty amount", entity.ErrInvalidAmount)
	}
	normalized := strings.ReplaceAll(s, " ", "")
	if strings.Contains(normalized, ",") {
		normalized = strings.ReplaceAll(normalized, ".", "")
		normalized = strings.Replace(normalized, ",", ".", 1)
	}
	amount, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", entity.ErrInvalidAmount, s)
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("%w: must be positive, got %s", entity.ErrInvalidAmount, amount)
	}
	return amount, nil
}
