package usecases

import (
	"context"
	"fmt"

	"warden/internal/application/account/dto"
	"warden/internal/application/auth"
	"warden/internal/domain/account"
	vo "warden/internal/domain/account/valueobjects"
	"warden/internal/shared/errors"
	"warden/internal/shared/logger"
)

type CreateAccountUseCase struct {
	accountRepo account.Repository
	hasher      account.PasswordHasher
	session     *auth.SessionContext
	logger      logger.Interface
}

func NewCreateAccountUseCase(
	accountRepo account.Repository,
	hasher account.PasswordHasher,
	session *auth.SessionContext,
	logger logger.Interface,
) *CreateAccountUseCase {
	return &CreateAccountUseCase{
		accountRepo: accountRepo,
		hasher:      hasher,
		session:     session,
		logger:      logger,
	}
}

func (uc *CreateAccountUseCase) Execute(ctx context.Context, req dto.CreateAccountRequest) (*account.Account, error) {
	role, err := account.ParseRole(req.Role)
	if err != nil {
		return nil, errors.NewValidationError("invalid role", err.Error())
	}

	username, err := vo.NewUsername(req.Username)
	if err != nil {
		return nil, err
	}

	taken, err := uc.accountRepo.ExistsByUsername(ctx, username.String())
	if err != nil {
		uc.logger.Errorw("failed to check username uniqueness", "error", err)
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if taken {
		return nil, errors.NewUsernameTakenError(username.String())
	}

	password, err := vo.NewPassword(req.Password, req.ConfirmPassword)
	if err != nil {
		return nil, err
	}

	digest, err := uc.hasher.Hash(password.String())
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	createdBy := uc.session.Attribution()
	acct, err := account.New(role, username, digest, req.DisplayName, &createdBy)
	if err != nil {
		return nil, err
	}

	if err := uc.accountRepo.Create(ctx, acct); err != nil {
		uc.logger.Errorw("failed to create account", "username", username.String(), "error", err)
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	uc.logger.Infow("account created",
		"username", acct.Username(),
		"role", acct.Role(),
		"created_by", createdBy,
	)
	return acct, nil
}
