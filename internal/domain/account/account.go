package account

import (
	"fmt"
	"time"

	vo "warden/internal/domain/account/valueobjects"
)

// Account is the credential aggregate: one stored identity with role,
// salted password digest and activation status. The digest never leaves the
// aggregate except toward the credential store and the hasher.
type Account struct {
	id          uint
	username    *vo.Username
	digest      string
	role        Role
	displayName string
	active      bool
	createdBy   *string
	createdAt   time.Time
	lastLoginAt *time.Time
}

// New creates an account ready for persistence. The digest must already be
// hashed; plaintext never reaches this constructor.
func New(role Role, username *vo.Username, digest, displayName string, createdBy *string) (*Account, error) {
	if !ValidRoles[role] {
		return nil, fmt.Errorf("invalid role %q", role)
	}
	if username == nil {
		return nil, fmt.Errorf("username is required")
	}
	if digest == "" {
		return nil, fmt.Errorf("password digest is required")
	}

	return &Account{
		username:    username,
		digest:      digest,
		role:        role,
		displayName: displayName,
		active:      true,
		createdBy:   createdBy,
		createdAt:   time.Now().UTC(),
	}, nil
}

// Reconstruct rebuilds an account from persistence.
func Reconstruct(id uint, username *vo.Username, digest string, role Role, displayName string,
	active bool, createdBy *string, createdAt time.Time, lastLoginAt *time.Time) (*Account, error) {
	if id == 0 {
		return nil, fmt.Errorf("account ID cannot be zero")
	}
	if username == nil {
		return nil, fmt.Errorf("username is required")
	}
	if !ValidRoles[role] {
		return nil, fmt.Errorf("invalid role %q", role)
	}

	return &Account{
		id:          id,
		username:    username,
		digest:      digest,
		role:        role,
		displayName: displayName,
		active:      active,
		createdBy:   createdBy,
		createdAt:   createdAt,
		lastLoginAt: lastLoginAt,
	}, nil
}

func (a *Account) ID() uint {
	return a.id
}

func (a *Account) Username() string {
	return a.username.String()
}

func (a *Account) PasswordDigest() string {
	return a.digest
}

func (a *Account) Role() Role {
	return a.role
}

func (a *Account) DisplayName() string {
	return a.displayName
}

// DisplayLabel is the name shown on listings: display name when set,
// username otherwise.
func (a *Account) DisplayLabel() string {
	if a.displayName != "" {
		return a.displayName
	}
	return a.username.String()
}

func (a *Account) IsActive() bool {
	return a.active
}

func (a *Account) CreatedBy() *string {
	return a.createdBy
}

func (a *Account) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Account) LastLoginAt() *time.Time {
	return a.lastLoginAt
}

func (a *Account) IsPrimaryAdmin() bool {
	return a.role == RolePrimaryAdmin
}

// SetID sets the account ID (only for persistence layer use)
func (a *Account) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("account ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("account ID cannot be zero")
	}
	a.id = id
	return nil
}

// ReplaceDigest overwrites the stored credential. Role, username and status
// are untouched; this is the only mutation a password change performs.
func (a *Account) ReplaceDigest(digest string) error {
	if digest == "" {
		return fmt.Errorf("password digest is required")
	}
	a.digest = digest
	return nil
}

// Activate reinstates a deactivated account.
func (a *Account) Activate() {
	a.active = true
}

// Deactivate flags the account inactive. The last-admin invariant is
// enforced by the lifecycle manager, not here; the aggregate cannot see its
// siblings.
func (a *Account) Deactivate() {
	a.active = false
}

// RecordLogin stamps the last successful authentication time.
func (a *Account) RecordLogin(at time.Time) {
	t := at.UTC()
	a.lastLoginAt = &t
}
