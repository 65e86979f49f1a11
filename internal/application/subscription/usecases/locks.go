package usecases

import "sync"

// entityLocks serializes lifecycle commands per subscription ID so that
// concurrent renew/pause/cancel calls against the same subscription cannot
// lose updates to status or expiration. Commands against different
// subscriptions proceed in parallel.
type entityLocks struct {
	locks sync.Map // uint -> *sync.Mutex
}

func newEntityLocks() *entityLocks {
	return &entityLocks{}
}

// Acquire locks the mutex for id and returns the release function.
func (l *entityLocks) Acquire(id uint) func() {
	v, _ := l.locks.LoadOrStore(id, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// Forget drops the mutex for a purged subscription ID.
func (l *entityLocks) Forget(id uint) {
	l.locks.Delete(id)
}

// sharedLocks is the process-wide lock table used by every lifecycle use
// case. One table, keyed by subscription ID.
var sharedLocks = newEntityLocks()
