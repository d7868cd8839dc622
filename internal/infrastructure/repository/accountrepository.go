package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"warden/internal/domain/account"
	vo "warden/internal/domain/account/valueobjects"
	"warden/internal/infrastructure/persistence/models"
	"warden/internal/shared/logger"
)

// AccountRepository implements the credential store on gorm.
type AccountRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewAccountRepository creates a gorm-backed credential store.
func NewAccountRepository(db *gorm.DB, log logger.Interface) account.Repository {
	return &AccountRepository{
		db:     db,
		logger: log.Named("repository.account"),
	}
}

func accountToModel(acct *account.Account) *models.AccountModel {
	return &models.AccountModel{
		ID:             acct.ID(),
		Username:       acct.Username(),
		PasswordDigest: acct.PasswordDigest(),
		Role:           acct.Role().String(),
		DisplayName:    acct.DisplayName(),
		Active:         acct.IsActive(),
		CreatedBy:      acct.CreatedBy(),
		CreatedAt:      acct.CreatedAt(),
		LastLoginAt:    acct.LastLoginAt(),
	}
}

func accountToEntity(model *models.AccountModel) (*account.Account, error) {
	username, err := vo.NewUsername(model.Username)
	if err != nil {
		return nil, fmt.Errorf("stored username %q is invalid: %w", model.Username, err)
	}
	role, err := account.ParseRole(model.Role)
	if err != nil {
		return nil, fmt.Errorf("stored role for %q is invalid: %w", model.Username, err)
	}
	return account.Reconstruct(model.ID, username, model.PasswordDigest, role,
		model.DisplayName, model.Active, model.CreatedBy, model.CreatedAt, model.LastLoginAt)
}

// Create persists a new account and writes the assigned ID back.
func (r *AccountRepository) Create(ctx context.Context, acct *account.Account) error {
	model := accountToModel(acct)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create account", "username", acct.Username(), "error", err)
		return fmt.Errorf("failed to create account: %w", err)
	}

	if err := acct.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set account ID: %w", err)
	}

	r.logger.Infow("account created", "id", model.ID, "username", model.Username, "role", model.Role)
	return nil
}

// GetByID retrieves an account by ID; nil when absent.
func (r *AccountRepository) GetByID(ctx context.Context, id uint) (*account.Account, error) {
	var model models.AccountModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get account by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	return accountToEntity(&model)
}

// GetByUsername retrieves an account by exact username; nil when absent.
func (r *AccountRepository) GetByUsername(ctx context.Context, username string) (*account.Account, error) {
	var model models.AccountModel

	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get account by username", "username", username, "error", err)
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	return accountToEntity(&model)
}

// ListByRole returns accounts of one role ordered by creation time.
func (r *AccountRepository) ListByRole(ctx context.Context, role account.Role) ([]*account.Account, error) {
	var rows []models.AccountModel

	if err := r.db.WithContext(ctx).
		Where("role = ?", role.String()).
		Order("created_at").
		Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list accounts", "role", role, "error", err)
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	accounts := make([]*account.Account, 0, len(rows))
	for i := range rows {
		entity, err := accountToEntity(&rows[i])
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, entity)
	}
	return accounts, nil
}

// ExistsByUsername checks username uniqueness across all roles.
func (r *AccountRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.AccountModel{}).
		Where("username = ?", username).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check username: %w", err)
	}
	return count > 0, nil
}

// ReplaceDigest overwrites only the password digest of an account.
func (r *AccountRepository) ReplaceDigest(ctx context.Context, id uint, digest string) error {
	result := r.db.WithContext(ctx).
		Model(&models.AccountModel{}).
		Where("id = ?", id).
		Update("password_digest", digest)
	if result.Error != nil {
		r.logger.Errorw("failed to replace digest", "id", id, "error", result.Error)
		return fmt.Errorf("failed to replace digest: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return account.ErrNotFound
	}
	return nil
}

// ReplaceDigestByUsername overwrites the digest looked up by username.
func (r *AccountRepository) ReplaceDigestByUsername(ctx context.Context, username, digest string) error {
	result := r.db.WithContext(ctx).
		Model(&models.AccountModel{}).
		Where("username = ?", username).
		Update("password_digest", digest)
	if result.Error != nil {
		r.logger.Errorw("failed to replace digest", "username", username, "error", result.Error)
		return fmt.Errorf("failed to replace digest: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return account.ErrNotFound
	}
	return nil
}

// SetActive toggles the active flag without any invariant check.
func (r *AccountRepository) SetActive(ctx context.Context, id uint, active bool) error {
	result := r.db.WithContext(ctx).
		Model(&models.AccountModel{}).
		Where("id = ?", id).
		Update("active", active)
	if result.Error != nil {
		r.logger.Errorw("failed to set active flag", "id", id, "error", result.Error)
		return fmt.Errorf("failed to set active flag: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return account.ErrNotFound
	}
	return nil
}

// DeactivatePrimaryAdminGuarded runs the last-admin count and the update in
// one transaction so two concurrent deactivations cannot both pass the
// check.
func (r *AccountRepository) DeactivatePrimaryAdminGuarded(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var others int64
		if err := tx.Model(&models.AccountModel{}).
			Where("role = ? AND active = ? AND id <> ?", account.RolePrimaryAdmin.String(), true, id).
			Count(&others).Error; err != nil {
			return fmt.Errorf("failed to count active primary admins: %w", err)
		}
		if others == 0 {
			return account.ErrLastAdminStanding
		}

		result := tx.Model(&models.AccountModel{}).
			Where("id = ? AND role = ?", id, account.RolePrimaryAdmin.String()).
			Update("active", false)
		if result.Error != nil {
			return fmt.Errorf("failed to deactivate account: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return account.ErrNotFound
		}
		return nil
	})
}

// CountActivePrimaryAdmins returns the number of active primary admins.
func (r *AccountRepository) CountActivePrimaryAdmins(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.AccountModel{}).
		Where("role = ? AND active = ?", account.RolePrimaryAdmin.String(), true).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count active primary admins: %w", err)
	}
	return count, nil
}

// RecordLogin stamps last_login_at for an account.
func (r *AccountRepository) RecordLogin(ctx context.Context, id uint, at time.Time) error {
	if err := r.db.WithContext(ctx).
		Model(&models.AccountModel{}).
		Where("id = ?", id).
		Update("last_login_at", at.UTC()).Error; err != nil {
		return fmt.Errorf("failed to record login time: %w", err)
	}
	return nil
}

// Delete removes an account row.
func (r *AccountRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.AccountModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete account", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete account: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return account.ErrNotFound
	}

	r.logger.Infow("account deleted", "id", id)
	return nil
}
