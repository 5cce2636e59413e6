package ledger

import (
	"fmt"
	"strings"

	"github.com/ebilgin/expense-ledger/entity"
)

// ReferenceTables resolves free-text names from the spreadsheet to stable
// identifiers. Matching is exact but case-insensitive. Loaded fresh once per
// import session; pure lookups afterwards.
type ReferenceTables struct {
	vehicles       map[string]int64
	counterparties map[string]int64
	categories     map[string]int64
}

func (u *ledgerUsecase) loadReferenceTables() (*ReferenceTables, error) {
	refs := &ReferenceTables{
		vehicles:       make(map[string]int64),
		counterparties: make(map[string]int64),
		categories:     make(map[string]int64),
	}

	vehicles, err := u.dao.GetVehicles()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load vehicles: %v", entity.ErrStoreFailure, err)
	}
	for _, v := range vehicles {
		refs.vehicles[nameKey(v.PlateNo)] = v.ID
	}

	counterparties, err := u.dao.GetCounterparties()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load counterparties: %v", entity.ErrStoreFailure, err)
	}
	for _, c := range counterparties {
		refs.counterparties[nameKey(c.Name)] = c.ID
	}

	categories, err := u.dao.GetExpenseCategories()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load categories: %v", entity.ErrStoreFailure, err)
	}
	for _, c := range categories {
		refs.categories[nameKey(c.Name)] = c.ID
	}

	return refs, nil
}

func (r *ReferenceTables) ResolveVehicle(name string) (int64, bool) {
	id, ok := r.vehicles[nameKey(name)]
	return id, ok
}

func (r *ReferenceTables) ResolveCounterparty(name string) (int64, bool) {
	id, ok := r.counterparties[nameKey(name)]
	return id, ok
}

func (r *ReferenceTables) ResolveCategory(name string) (int64, bool) {
	id, ok := r.categories[nameKey(name)]
	return id, ok
}

func nameKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
