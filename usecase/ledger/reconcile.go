package ledger

import (
	"fmt"

	"github.com/ebilgin/expense-ledger/entity"
)

// reconcileDetails classifies an edited detail list into the minimal
// insert/update/delete sets needed to converge storage to it. It never
// invents or drops an id:
//
//   - no id                     -> insert (whatever the tag says)
//   - id, kept                  -> update, unconditionally; the idempotent
//     upsert avoids missed-change bugs a field-by-field diff could have
//   - id, pending delete        -> delete
//   - no id, pending delete     -> discarded; it was never persisted
//
// An unknown state tag is an error rather than a silent guess.
func reconcileDetails(edits []entity.DetailEdit) (entity.ReconcilePlan, error) {
	var plan entity.ReconcilePlan

	for i, e := range edits {
		switch e.State {
		case entity.DetailStatePendingDelete:
			if e.ID != 0 {
				plan.ToDelete = append(plan.ToDelete, e.ID)
			}
		case entity.DetailStateNew, entity.DetailStateKept, "":
			if e.ID == 0 {
				plan.ToInsert = append(plan.ToInsert, e)
			} else {
				plan.ToUpdate = append(plan.ToUpdate, e)
			}
		default:
			return entity.ReconcilePlan{}, fmt.Errorf("detail %d: unknown state %q", i, e.State)
		}
	}

	return plan, nil
}
