package ledger

import (
	"testing"
	"time"

	"github.com/ebilgin/expense-ledger/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseCellDate(t *testing.T) {
	june1 := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		input string
		want  time.Time
	}{
		{"01.06.2024", june1},
		{"1.6.2024", june1},
		{"45444", june1},
		{"45444.5", june1},
		{" 01.06.2024 ", june1},
	}
	for _, tc := range tests {
		got, err := parseCellDate(tc.input)
		assert.NoError(t, err, tc.input)
		assert.True(t, got.Equal(tc.want), "input %q: got %v", tc.input, got)
	}
}

func TestParseCellDateInvalid(t *testing.T) {
	for _, input := range []string{"", "  ", "not-a-date", "2024-06-01", "0", "-12"} {
		_, err := parseCellDate(input)
		assert.ErrorIs(t, err, entity.ErrInvalidDate, "input %q", input)
	}
}

func TestParseCellAmount(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"150,75", "150.75"},
		{"1.150,75", "1150.75"},
		{"1 250,50", "1250.5"},
		{"300", "300"},
		{"300.25", "300.25"},
		{"0,01", "0.01"},
	}
	for _, tc := range tests {
		got, err := parseCellAmount(tc.input)
		assert.NoError(t, err, tc.input)
		assert.True(t, got.Equal(decimal.RequireFromString(tc.want)), "input %q: got %s", tc.input, got)
	}
}

func TestParseCellAmountInvalid(t *testing.T) {
	for _, input := range []string{"", "  ", "abc", "12,34,56", "0", "-5", "-0,50"} {
		_, err := parseCellAmount(input)
		assert.ErrorIs(t, err, entity.ErrInvalidAmount, "input %q", input)
	}
}
