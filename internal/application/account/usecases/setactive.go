package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"warden/internal/application/account/dto"
	"warden/internal/domain/account"
	"warden/internal/shared/errors"
	"warden/internal/shared/logger"
)

type SetActiveUseCase struct {
	accountRepo account.Repository
	logger      logger.Interface
}

func NewSetActiveUseCase(accountRepo account.Repository, logger logger.Interface) *SetActiveUseCase {
	return &SetActiveUseCase{
		accountRepo: accountRepo,
		logger:      logger,
	}
}

func (uc *SetActiveUseCase) Execute(ctx context.Context, req dto.SetActiveRequest) error {
	acct, err := uc.accountRepo.GetByID(ctx, req.AccountID)
	if err != nil {
		uc.logger.Errorw("failed to get account", "account_id", req.AccountID, "error", err)
		return fmt.Errorf("failed to get account: %w", err)
	}
	if acct == nil {
		return errors.NewNotFoundError("account not found")
	}

	// Deactivating a primary administrator goes through the guarded path
	// so the count of remaining active primaries and the update commit in
	// one transaction.
	if !req.Active && acct.IsPrimaryAdmin() {
		err := uc.accountRepo.DeactivatePrimaryAdminGuarded(ctx, acct.ID())
		if stderrors.Is(err, account.ErrLastAdminStanding) {
			return errors.NewLastAdminProtectedError()
		}
		if err != nil {
			uc.logger.Errorw("failed to deactivate primary admin", "account_id", acct.ID(), "error", err)
			return fmt.Errorf("failed to update account: %w", err)
		}
		uc.logger.Infow("primary admin deactivated", "username", acct.Username())
		return nil
	}

	if err := uc.accountRepo.SetActive(ctx, acct.ID(), req.Active); err != nil {
		uc.logger.Errorw("failed to set active flag", "account_id", acct.ID(), "error", err)
		return fmt.Errorf("failed to update account: %w", err)
	}

	uc.logger.Infow("account status changed", "username", acct.Username(), "active", req.Active)
	return nil
}
