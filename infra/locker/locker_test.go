package locker

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTryLockIsExclusivePerKey(t *testing.T) {
	l := New()

	assert.True(t, l.TryLock(1))
	assert.False(t, l.TryLock(1))
	assert.True(t, l.TryLock(2))

	l.Unlock(1)
	assert.True(t, l.TryLock(1))
}

func TestTryLockSingleWinnerUnderContention(t *testing.T) {
	l := New()

	var wg sync.WaitGroup
	wins := make(chan struct{}, 50)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if l.TryLock(7) {
				wins <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(wins)

	assert.Len(t, wins, 1)
}
