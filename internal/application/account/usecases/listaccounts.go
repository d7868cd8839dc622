package usecases

import (
	"context"
	"fmt"

	"warden/internal/application/account/dto"
	"warden/internal/domain/account"
	"warden/internal/shared/logger"
	"warden/internal/shared/timefmt"
)

type ListAccountsUseCase struct {
	accountRepo account.Repository
	logger      logger.Interface
}

func NewListAccountsUseCase(accountRepo account.Repository, logger logger.Interface) *ListAccountsUseCase {
	return &ListAccountsUseCase{
		accountRepo: accountRepo,
		logger:      logger,
	}
}

func (uc *ListAccountsUseCase) Execute(ctx context.Context, role account.Role) (*dto.AccountListing, error) {
	accounts, err := uc.accountRepo.ListByRole(ctx, role)
	if err != nil {
		uc.logger.Errorw("failed to list accounts", "role", role, "error", err)
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	listing := &dto.AccountListing{
		Accounts: make([]dto.AccountView, 0, len(accounts)),
		Total:    len(accounts),
	}
	for _, acct := range accounts {
		if acct.IsActive() {
			listing.Active++
		} else {
			listing.Inactive++
		}
		createdBy := timefmt.Blank
		if acct.CreatedBy() != nil {
			createdBy = *acct.CreatedBy()
		}
		createdAt := acct.CreatedAt()
		listing.Accounts = append(listing.Accounts, dto.AccountView{
			ID:          acct.ID(),
			Username:    acct.Username(),
			DisplayName: acct.DisplayLabel(),
			Role:        acct.Role().String(),
			Active:      acct.IsActive(),
			CreatedBy:   createdBy,
			CreatedAt:   timefmt.FormatTimestamp(&createdAt),
			LastLogin:   timefmt.FormatLastLogin(acct.LastLoginAt()),
		})
	}
	return listing, nil
}
