package usecases

import (
	"context"
	"fmt"

	"warden/internal/domain/account"
	"warden/internal/shared/errors"
	"warden/internal/shared/logger"
)

type DeleteAccountUseCase struct {
	accountRepo account.Repository
	logger      logger.Interface
}

func NewDeleteAccountUseCase(accountRepo account.Repository, logger logger.Interface) *DeleteAccountUseCase {
	return &DeleteAccountUseCase{
		accountRepo: accountRepo,
		logger:      logger,
	}
}

func (uc *DeleteAccountUseCase) Execute(ctx context.Context, accountID uint) error {
	acct, err := uc.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		uc.logger.Errorw("failed to get account", "account_id", accountID, "error", err)
		return fmt.Errorf("failed to get account: %w", err)
	}
	if acct == nil {
		return errors.NewNotFoundError("account not found")
	}

	// Primary administrators are never deleted, only deactivated. The
	// session log keeps their username snapshot either way.
	if !acct.Role().Deletable() {
		return errors.NewDeleteNotAllowedError()
	}

	if err := uc.accountRepo.Delete(ctx, acct.ID()); err != nil {
		uc.logger.Errorw("failed to delete account", "account_id", acct.ID(), "error", err)
		return fmt.Errorf("failed to delete account: %w", err)
	}

	uc.logger.Infow("account deleted", "username", acct.Username(), "role", acct.Role())
	return nil
}
