package service

import "sync"

// StatementLocks serializes work on one statement. Imports read the stored
// positions once for de-duplication and auto-match reads then writes each
// position, so two of them on the same statement must not interleave.
// Different statements never block each other.
type StatementLocks struct {
	mu    sync.Mutex
	locks map[string]*statementLock
}

type statementLock struct {
	mu   sync.Mutex
	refs int
}

func NewStatementLocks() *StatementLocks {
	return &StatementLocks{locks: make(map[string]*statementLock)}
}

// Lock blocks until statementID is free and returns the matching unlock.
func (l *StatementLocks) Lock(statementID string) func() {
	l.mu.Lock()
	entry, ok := l.locks[statementID]
	if !ok {
		entry = &statementLock{}
		l.locks[statementID] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()

	return func() {
		entry.mu.Unlock()

		l.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(l.locks, statementID)
		}
		l.mu.Unlock()
	}
}

func (l *StatementLocks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
