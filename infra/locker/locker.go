package locker

import "sync"

// Locker guards import batch logs against being committed twice from the
// same process. It is best-effort only: the unique constraint on document
// numbers remains the authority when several processes race.
type Locker struct {
	mu        sync.Mutex
	inProcess map[int64]bool
}

func New() *Locker {
	return &Locker{
		inProcess: make(map[int64]bool),
	}
}

// TryLock claims a batch log ID. It returns false when the ID is already
// being processed.
func (l *Locker) TryLock(logID int64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.inProcess[logID] {
		return false
	}
	l.inProcess[logID] = true
	return true
}

func (l *Locker) Unlock(logID int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.inProcess, logID)
}
