package ledger

import (
	"testing"

	"github.com/ebilgin/expense-ledger/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateGroupValid(t *testing.T) {
	groups := groupRows(sampleGrid())
	require.Len(t, groups, 2)

	vg, rowErrs := validateGroup(groups[0], testRefs())

	assert.Empty(t, rowErrs)
	assert.Equal(t, 2, vg.RowStart)
	assert.Equal(t, 3, vg.RowEnd)
	require.NotNil(t, vg.Entry.VehicleID)
	assert.Equal(t, int64(1), *vg.Entry.VehicleID)
	require.NotNil(t, vg.Entry.CounterpartyID)
	assert.Equal(t, int64(7), *vg.Entry.CounterpartyID)
	require.Len(t, vg.Details, 2)
	assert.Equal(t, int64(3), vg.Details[0].CategoryID)
	assert.Equal(t, int64(4), vg.Details[1].CategoryID)
	assert.True(t, vg.TotalAmount.Equal(decimal.RequireFromString("170.75")),
		"total %s", vg.TotalAmount)
}

func TestValidateGroupUnknownVehicle(t *testing.T) {
	groups := groupRows(sampleGrid())
	groups[0].Entry.VehicleName = "99 ZZ 999"

	vg, rowErrs := validateGroup(groups[0], testRefs())

	require.Len(t, rowErrs, 1)
	assert.Equal(t, 2, rowErrs[0].Row)
	assert.Contains(t, rowErrs[0].Message, "99 ZZ 999")
	assert.Empty(t, vg.Details)
}

func TestValidateGroupOneErrorPerBadRow(t *testing.T) {
	// Bad master date and a bad detail on a later row: one error each. The
	// detail sharing the master row is not reported twice.
	g := entity.ImportGroup{
		RowStart: 2,
		RowEnd:   3,
		Entry:    entity.EntryCandidate{EntryDateText: "garbage", VehicleName: "34 AB 123"},
		Details: []entity.DetailCandidate{
			{Row: 2, DetailDateText: "01.06.2024", CategoryName: "Fuel", AmountText: "10"},
			{Row: 3, DetailDateText: "01.06.2024", CategoryName: "NoSuchCategory", AmountText: "5"},
		},
	}

	_, rowErrs := validateGroup(g, testRefs())

	require.Len(t, rowErrs, 2)
	assert.Equal(t, 2, rowErrs[0].Row)
	assert.Contains(t, rowErrs[0].Message, "entry date")
	assert.Equal(t, 3, rowErrs[1].Row)
	assert.Contains(t, rowErrs[1].Message, "NoSuchCategory")
}

func TestValidateGroupRejectedWhole(t *testing.T) {
	// One bad detail poisons the group even though the other rows are fine.
	g := entity.ImportGroup{
		RowStart: 5,
		RowEnd:   7,
		Entry:    entity.EntryCandidate{EntryDateText: "01.06.2024"},
		Details: []entity.DetailCandidate{
			{Row: 6, DetailDateText: "01.06.2024", CategoryName: "Fuel", AmountText: "10"},
			{Row: 7, DetailDateText: "01.06.2024", CategoryName: "Fuel", AmountText: "-10"},
		},
	}

	vg, rowErrs := validateGroup(g, testRefs())

	require.Len(t, rowErrs, 1)
	assert.Equal(t, 7, rowErrs[0].Row)
	assert.Equal(t, entity.ValidatedGroup{}, vg)
}

func TestValidateEntryOptionalReferences(t *testing.T) {
	valid, err := validateEntry(entity.EntryCandidate{EntryDateText: "01.06.2024"}, testRefs())

	assert.NoError(t, err)
	assert.Nil(t, valid.VehicleID)
	assert.Nil(t, valid.CounterpartyID)
}

func TestValidateEntryCarriesDocumentNumber(t *testing.T) {
	valid, err := validateEntry(entity.EntryCandidate{
		EntryDateText:  "01.06.2024",
		DocumentNumber: "KHT-202406010042",
	}, testRefs())

	assert.NoError(t, err)
	assert.Equal(t, "KHT-202406010042", valid.DocumentNumber)
}

func TestValidateDetailRequiresCategory(t *testing.T) {
	_, err := validateDetail(entity.DetailCandidate{
		Row: 3, DetailDateText: "01.06.2024", AmountText: "10",
	}, testRefs())

	assert.ErrorIs(t, err, entity.ErrReferenceNotFound)
}

func TestResolverCaseInsensitive(t *testing.T) {
	refs := testRefs()

	id, ok := refs.ResolveVehicle("  34 ab 123 ")
	assert.True(t, ok)
	assert.Equal(t, int64(1), id)

	id, ok = refs.ResolveCategory("FUEL")
	assert.True(t, ok)
	assert.Equal(t, int64(3), id)

	_, ok = refs.ResolveCounterparty("nobody")
	assert.False(t, ok)
}
