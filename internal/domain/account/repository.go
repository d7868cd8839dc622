package account

import (
	"context"
	"errors"
	"time"
)

// ErrLastAdminStanding is returned by guarded deactivation when the target
// is the only remaining active primary administrator.
var ErrLastAdminStanding = errors.New("last active primary administrator")

// ErrNotFound is returned by mutating operations whose target row does not
// exist. Lookup operations return nil instead.
var ErrNotFound = errors.New("account not found")

// Repository defines the credential store operations the identity engine
// needs. One implementation per storage backend.
type Repository interface {
	// Create persists a new account and assigns its ID.
	Create(ctx context.Context, acct *Account) error

	// GetByID retrieves an account by ID; nil when absent.
	GetByID(ctx context.Context, id uint) (*Account, error)

	// GetByUsername retrieves an account by exact username; nil when absent.
	GetByUsername(ctx context.Context, username string) (*Account, error)

	// ListByRole returns accounts of one role ordered by creation time.
	ListByRole(ctx context.Context, role Role) ([]*Account, error)

	// ExistsByUsername checks username uniqueness across all roles.
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// ReplaceDigest overwrites only the password digest of an account.
	ReplaceDigest(ctx context.Context, id uint, digest string) error

	// ReplaceDigestByUsername overwrites the digest looked up by username.
	// Used by the emergency reset path, which bypasses role restrictions.
	ReplaceDigestByUsername(ctx context.Context, username, digest string) error

	// SetActive toggles the active flag without any invariant check.
	SetActive(ctx context.Context, id uint, active bool) error

	// DeactivatePrimaryAdminGuarded deactivates a primary administrator
	// inside one transaction with the count of other active primaries.
	// Returns ErrLastAdminStanding, with no mutation, when the target is
	// the last one.
	DeactivatePrimaryAdminGuarded(ctx context.Context, id uint) error

	// CountActivePrimaryAdmins returns the number of active primary
	// administrator accounts.
	CountActivePrimaryAdmins(ctx context.Context) (int64, error)

	// RecordLogin stamps last_login_at for an account.
	RecordLogin(ctx context.Context, id uint, at time.Time) error

	// Delete removes an account row. Role rules are enforced by the
	// lifecycle manager before this is called.
	Delete(ctx context.Context, id uint) error
}

// PasswordHasher is the one-way digest contract consumed by the domain.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, digest string) error
}
