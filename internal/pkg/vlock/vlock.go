// Package vlock provides per-key mutual exclusion for reservation attempts.
// Locking vehicle 7 serializes check-then-insert on vehicle 7 only; attempts
// on other vehicles proceed concurrently.
package vlock

import "sync"

type entry struct {
	mu   sync.Mutex
	refs int
}

type Keyed struct {
	mu    sync.Mutex
	locks map[int64]*entry
}

func New() *Keyed {
	return &Keyed{locks: make(map[int64]*entry)}
}

// Lock acquires the mutex for key and returns the matching unlock func.
// Entries are refcounted so the map does not grow with the key space.
func (k *Keyed) Lock(key int64) func() {
	k.mu.Lock()
	e, ok := k.locks[key]
	if !ok {
		e = &entry{}
		k.locks[key] = e
	}
	e.refs++
	k.mu.Unlock()

	e.mu.Lock()

	return func() {
		e.mu.Unlock()

		k.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}
