package audit

import "context"

// ListFilter narrows session listings. Query is matched case-insensitively
// as a substring of the username or display name snapshot.
type ListFilter struct {
	Query string
}

// Repository defines the session-log store. The trail is append-only:
// records are inserted, closed once, and queried, never deleted.
type Repository interface {
	// Insert persists a new ACTIVE record and assigns its ID.
	Insert(ctx context.Context, rec *SessionRecord) error

	// GetByID retrieves one record; nil when absent.
	GetByID(ctx context.Context, id uint) (*SessionRecord, error)

	// Update writes back a closed record.
	Update(ctx context.Context, rec *SessionRecord) error

	// List returns records most recent first, optionally filtered.
	List(ctx context.Context, filter ListFilter) ([]*SessionRecord, error)
}
