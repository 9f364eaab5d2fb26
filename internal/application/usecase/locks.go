package usecase

import "sync"

// LoanLocks serializes mutating use cases per loan so two concurrent payments
// against the same loan cannot both read the same outstanding balance. The
// database's optimistic version check remains the backstop for multi-instance
// deployments.
type LoanLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewLoanLocks() *LoanLocks {
	return &LoanLocks{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the mutex for the given loan and returns its unlock func.
func (l *LoanLocks) Lock(loanID string) func() {
	l.mu.Lock()
	m, ok := l.locks[loanID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[loanID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
