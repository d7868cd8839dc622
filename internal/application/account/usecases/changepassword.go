package usecases

import (
	"context"
	"fmt"

	"warden/internal/application/account/dto"
	"warden/internal/domain/account"
	vo "warden/internal/domain/account/valueobjects"
	"warden/internal/shared/errors"
	"warden/internal/shared/logger"
)

type ChangePasswordUseCase struct {
	accountRepo account.Repository
	hasher      account.PasswordHasher
	logger      logger.Interface
}

func NewChangePasswordUseCase(accountRepo account.Repository, hasher account.PasswordHasher, logger logger.Interface) *ChangePasswordUseCase {
	return &ChangePasswordUseCase{
		accountRepo: accountRepo,
		hasher:      hasher,
		logger:      logger,
	}
}

func (uc *ChangePasswordUseCase) Execute(ctx context.Context, req dto.ChangePasswordRequest) error {
	acct, err := uc.accountRepo.GetByID(ctx, req.AccountID)
	if err != nil {
		uc.logger.Errorw("failed to get account", "account_id", req.AccountID, "error", err)
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

	if err := uc.accountRepo.ReplaceDigest(ctx, acct.ID(), digest); err != nil {
		uc.logger.Errorw("failed to replace digest", "account_id", acct.ID(), "error", err)
		return fmt.Errorf("failed to update password: %w", err)
	}

	uc.logger.Infow("password changed", "username", acct.Username())
	return nil
}
