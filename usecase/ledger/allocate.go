package ledger

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/ebilgin/expense-ledger/consts"
	"github.com/ebilgin/expense-ledger/entity"
	"github.com/ebilgin/expense-ledger/infra/db/model"

	"github.com/labstack/gommon/log"
)

// allocateAndInsertEntry assigns the next document number for today and
// inserts the entry under it, as one operation from the caller's view.
// Every attempt re-queries the store maximum: a sequence computed on a
// previous attempt is never trusted across the retry boundary, since a
// concurrent writer may have claimed it. Only a uniqueness violation on the
// document number is retried; after the last attempt it surfaces as
// ErrNumberExhausted.
func (u *ledgerUsecase) allocateAndInsertEntry(ctx context.Context, entry *model.ExpenseEntry, today time.Time) error {
	prefix := fmt.Sprintf("%s-%s", consts.DocumentNumberPrefix, today.Format(consts.DocumentDateLayout))

	for attempt := 1; attempt <= consts.AllocateMaxAttempts; attempt++ {
		maxNumber, err := u.dao.GetMaxDocumentNumber(prefix)
		if err != nil {
			return fmt.Errorf("%w: %v", entity.ErrStoreFailure, err)
		}

		seq, err := nextSequence(maxNumber)
		if err != nil {
			return err
		}
		entry.DocumentNumber = fmt.Sprintf("%s%0*d", prefix, consts.DocumentSequenceDigits, seq)

		err = u.dao.CreateExpenseEntry(entry)
		if err == nil {
			log.Infof("[Allocate] assigned %s (attempt %d)", entry.DocumentNumber, attempt)
			return nil
		}
		if !u.dao.IsUniqueViolation(err) {
			return fmt.Errorf("%w: %v", entity.ErrStoreFailure, err)
		}

		log.Warnf("[Allocate] %s taken by a concurrent writer (attempt %d): %v", entry.DocumentNumber, attempt, entity.ErrNumberConflict)
		if attempt < consts.AllocateMaxAttempts {
			u.sleep(time.Duration(attempt) * consts.AllocateRetryDelay)
		}
	}

	return fmt.Errorf("%w for prefix %s", entity.ErrNumberExhausted, prefix)
}

// nextSequence proposes the daily sequence following the highest persisted
// document number, or 1 when the day has none.
func nextSequence(maxNumber string) (int, error) {
	if maxNumber == "" {
		return 1, nil
	}
	if len(maxNumber) < consts.DocumentSequenceDigits {
		return 0, fmt.Errorf("%w: malformed document number %q", entity.ErrStoreFailure, maxNumber)
	}
	seq, err := strconv.Atoi(maxNumber[len(maxNumber)-consts.DocumentSequenceDigits:])
	if err != nil {
		return 0, fmt.Errorf("%w: malformed document number %q", entity.ErrStoreFailure, maxNumber)
	}
	if seq >= consts.DocumentSequenceMax {
		return 0, fmt.Errorf("%w: daily sequence full at %q", entity.ErrNumberExhausted, maxNumber)
	}
	return seq + 1, nil
}
