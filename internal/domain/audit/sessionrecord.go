// Package audit holds the append-only login/logout trail: one record per
// successful authentication, closed at logout with a computed duration.
package audit

import (
	"fmt"
	"time"

	"warden/internal/shared/timefmt"
)

// Status of a session record.
type Status string

const (
	StatusActive    Status = "ACTIVE"
	StatusLoggedOut Status = "LOGGED_OUT"
)

// SessionRecord is one audit-trail row spanning a login to its logout.
// Username and display name are snapshots so history survives account
// renames and deletions.
type SessionRecord struct {
	id              uint
	accountID       uint
	username        string
	displayName     string
	loginAt         time.Time
	logoutAt        *time.Time
	durationMinutes *int
	origin          string
	status          Status
}

// NewSessionRecord opens a record for a successful authentication.
func NewSessionRecord(accountID uint, username, displayName, origin string, loginAt time.Time) (*SessionRecord, error) {
	if accountID == 0 {
		return nil, fmt.Errorf("account ID is required")
	}
	if username == "" {
		return nil, fmt.Errorf("username snapshot is required")
	}

	return &SessionRecord{
		accountID:   accountID,
		username:    username,
		displayName: displayName,
		loginAt:     loginAt.UTC(),
		origin:      origin,
		status:      StatusActive,
	}, nil
}

// Reconstruct rebuilds a record from persistence.
func Reconstruct(id, accountID uint, username, displayName string, loginAt time.Time,
	logoutAt *time.Time, durationMinutes *int, origin string, status Status) (*SessionRecord, error) {
	if id == 0 {
		return nil, fmt.Errorf("session log ID cannot be zero")
	}
	if status != StatusActive && status != StatusLoggedOut {
		return nil, fmt.Errorf("invalid session status %q", status)
	}

	return &SessionRecord{
		id:              id,
		accountID:       accountID,
		username:        username,
		displayName:     displayName,
		loginAt:         loginAt,
		logoutAt:        logoutAt,
		durationMinutes: durationMinutes,
		origin:          origin,
		status:          status,
	}, nil
}

func (r *SessionRecord) ID() uint {
	return r.id
}

func (r *SessionRecord) AccountID() uint {
	return r.accountID
}

func (r *SessionRecord) Username() string {
	return r.username
}

func (r *SessionRecord) DisplayName() string {
	return r.displayName
}

func (r *SessionRecord) LoginAt() time.Time {
	return r.loginAt
}

func (r *SessionRecord) LogoutAt() *time.Time {
	return r.logoutAt
}

func (r *SessionRecord) DurationMinutes() *int {
	return r.durationMinutes
}

func (r *SessionRecord) Origin() string {
	return r.origin
}

func (r *SessionRecord) Status() Status {
	return r.status
}

func (r *SessionRecord) IsActive() bool {
	return r.status == StatusActive
}

// SetID sets the record ID (only for persistence layer use)
func (r *SessionRecord) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("session log ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("session log ID cannot be zero")
	}
	r.id = id
	return nil
}

// Close sets the logout timestamp, moves the record to LOGGED_OUT, and
// computes the duration as whole wall-clock minutes, truncated. A record
// closes exactly once.
func (r *SessionRecord) Close(at time.Time) error {
	if r.status == StatusLoggedOut {
		return fmt.Errorf("session log %d is already closed", r.id)
	}
	end := at.UTC()
	mins := timefmt.WholeMinutesBetween(r.loginAt, end)
	r.logoutAt = &end
	r.durationMinutes = &mins
	r.status = StatusLoggedOut
	return nil
}
