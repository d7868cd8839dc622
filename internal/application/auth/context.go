package auth

import (
	"sync"

	"warden/internal/domain/account"
)

// SystemActor is recorded as the creator when no operator is signed in,
// e.g. during bootstrap of the first administrator.
const SystemActor = "SYSTEM"

// SessionContext holds the currently signed-in operator for the lifetime of
// a process. It is safe for concurrent use.
type SessionContext struct {
	mu           sync.RWMutex
	current      *account.Account
	sessionLogID uint
}

func NewSessionContext() *SessionContext {
	return &SessionContext{}
}

// Set installs the signed-in account and its session log row. A log ID of
// zero means the audit insert failed and there is nothing to close later.
func (s *SessionContext) Set(acct *account.Account, sessionLogID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = acct
	s.sessionLogID = sessionLogID
}

func (s *SessionContext) Current() *account.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *SessionContext) SessionLogID() uint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessionLogID
}

func (s *SessionContext) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current != nil
}

// Attribution returns the username to stamp on rows created by the current
// operator, or SystemActor when nobody is signed in.
func (s *SessionContext) Attribution() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return SystemActor
	}
	return s.current.Username()
}

// IsSelf reports whether the given account ID belongs to the signed-in
// operator.
func (s *SessionContext) IsSelf(accountID uint) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current != nil && s.current.ID() == accountID
}

func (s *SessionContext) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	s.sessionLogID = 0
}
