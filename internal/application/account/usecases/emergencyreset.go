package usecases

import (
	"context"
	"crypto/subtle"
	"fmt"

	"warden/internal/application/account/dto"
	"warden/internal/domain/account"
	vo "warden/internal/domain/account/valueobjects"
	"warden/internal/shared/errors"
	"warden/internal/shared/logger"
)

// EmergencyResetUseCase overwrites any account's password without
// authentication, gated by the out-of-band master reset key.
type EmergencyResetUseCase struct {
	accountRepo account.Repository
	hasher      account.PasswordHasher
	resetKey    string
	logger      logger.Interface
}

func NewEmergencyResetUseCase(accountRepo account.Repository, hasher account.PasswordHasher, resetKey string, logger logger.Interface) *EmergencyResetUseCase {
	return &EmergencyResetUseCase{
		accountRepo: accountRepo,
		hasher:      hasher,
		resetKey:    resetKey,
		logger:      logger,
	}
}

func (uc *EmergencyResetUseCase) Execute(ctx context.Context, req dto.EmergencyResetRequest) error {
	// The key is checked before the username is even looked up, so a
	// caller without the key learns nothing about which accounts exist.
	if subtle.ConstantTimeCompare([]byte(req.ResetKey), []byte(uc.resetKey)) != 1 {
		uc.logger.Warnw("emergency reset rejected: invalid key")
		return errors.NewInvalidResetKeyError()
	}

	acct, err := uc.accountRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		uc.logger.Errorw("failed to get account by username", "error", err)
		return fmt.Errorf("failed to get account: %w", err)
	}
	if acct == nil {
		return errors.NewNotFoundError("account not found")
	}

	password, err := vo.NewPassword(req.NewPassword, req.ConfirmPassword)
	if err != nil {
		return err
	}

	digest, err := uc.hasher.Hash(password.String())
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := uc.accountRepo.ReplaceDigestByUsername(ctx, acct.Username(), digest); err != nil {
		uc.logger.Errorw("failed to replace digest", "username", acct.Username(), "error", err)
		return fmt.Errorf("failed to reset password: %w", err)
	}

	uc.logger.Warnw("emergency password reset performed", "username", acct.Username())
	return nil
}
