package ledger

import (
	"fmt"

	"github.com/ebilgin/expense-ledger/entity"

	"github.com/shopspring/decimal"
)

// validateGroup converts a parsed group into typed, reference-resolved
// form. Validation is fail-fast within a row (first error wins) but every
// row of the group is checked, so the operator sees one error per bad row.
// A group with any error is rejected whole; other groups are unaffected.
func validateGroup(g entity.ImportGroup, refs *ReferenceTables) (entity.ValidatedGroup, []entity.RowError) {
	var errs []entity.RowError
	vg := entity.ValidatedGroup{
		RowStart:    g.RowStart,
		RowEnd:      g.RowEnd,
		TotalAmount: decimal.Zero,
	}

	validEntry, err := validateEntry(g.Entry, refs)
	if err != nil {
		errs = append(errs, entity.RowError{Row: g.RowStart, Message: err.Error()})
	} else {
		vg.Entry = validEntry
	}

	for _, d := range g.Details {
		// The master row can host the first detail; if the master cells
		// already failed, one error for that row is enough.
		if d.Row == g.RowStart && err != nil {
			continue
		}
		validDetail, detailErr := validateDetail(d, refs)
		if detailErr != nil {
			errs = append(errs, entity.RowError{Row: d.Row, Message: detailErr.Error()})
			continue
		}
		vg.Details = append(vg.Details, validDetail)
		vg.TotalAmount = vg.TotalAmount.Add(validDetail.Amount)
	}

	if len(errs) > 0 {
		return entity.ValidatedGroup{}, errs
	}
	return vg, nil
}

func validateEntry(c entity.EntryCandidate, refs *ReferenceTables) (entity.ValidatedEntry, error) {
	entryDate, err := parseCellDate(c.EntryDateText)
	if err != nil {
		return entity.ValidatedEntry{}, fmt.Errorf("entry date: %w", err)
	}

	valid := entity.ValidatedEntry{
		EntryDate:      entryDate,
		DocumentNumber: c.DocumentNumber,
		Description:    c.Description,
	}

	if c.VehicleName != "" {
		id, ok := refs.ResolveVehicle(c.VehicleName)
		if !ok {
			return entity.ValidatedEntry{}, fmt.Errorf("%w: unknown vehicle %q", entity.ErrReferenceNotFound, c.VehicleName)
		}
		valid.VehicleID = &id
	}

	if c.CounterpartyName != "" {
		id, ok := refs.ResolveCounterparty(c.CounterpartyName)
		if !ok {
			return entity.ValidatedEntry{}, fmt.Errorf("%w: unknown counterparty %q", entity.ErrReferenceNotFound, c.CounterpartyName)
		}
		valid.CounterpartyID = &id
	}

	return valid, nil
}

func validateDetail(c entity.DetailCandidate, refs *ReferenceTables) (entity.ValidatedDetail, error) {
	detailDate, err := parseCellDate(c.DetailDateText)
	if err != nil {
		return entity.ValidatedDetail{}, fmt.Errorf("detail date: %w", err)
	}

	if c.CategoryName == "" {
		return entity.ValidatedDetail{}, fmt.Errorf("%w: category is required", entity.ErrReferenceNotFound)
	}
	categoryID, ok := refs.ResolveCategory(c.CategoryName)
	if !ok {
		return entity.ValidatedDetail{}, fmt.Errorf("%w: unknown category %q", entity.ErrReferenceNotFound, c.CategoryName)
	}

	amount, err := parseCellAmount(c.AmountText)
	if err != nil {
		return entity.ValidatedDetail{}, err
	}

	return entity.ValidatedDetail{
		Row:         c.Row,
		DetailDate:  detailDate,
		ReceiptRef:  c.ReceiptRef,
		CategoryID:  categoryID,
		Description: c.Description,
		Amount:      amount,
	}, nil
}
