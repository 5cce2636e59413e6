package dao

import (
	"errors"

	"github.com/lib/pq"
)

// IsUniqueViolation reports whether err is a PostgreSQL unique-constraint
// violation (class 23505). Anything else, including other constraint
// violations, is an opaque store failure to the callers.
func (d *dao) IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
