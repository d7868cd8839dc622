package usecases

import (
	"context"
	"fmt"

	appaudit "warden/internal/application/audit"
	"warden/internal/application/auth"
	"warden/internal/domain/account"
	"warden/internal/shared/errors"
	"warden/internal/shared/logger"
)

type LoginCommand struct {
	Username string
	Password string
	Origin   string
}

type LoginResult struct {
	Account      *account.Account
	SessionLogID uint
}

type LoginUseCase struct {
	accountRepo account.Repository
	hasher      account.PasswordHasher
	tracker     *appaudit.SessionTracker
	session     *auth.SessionContext
	logger      logger.Interface
}

func NewLoginUseCase(
	accountRepo account.Repository,
	hasher account.PasswordHasher,
	tracker *appaudit.SessionTracker,
	session *auth.SessionContext,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		accountRepo: accountRepo,
		hasher:      hasher,
		tracker:     tracker,
		session:     session,
		logger:      logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	acct, err := uc.accountRepo.GetByUsername(ctx, cmd.Username)
	if err != nil {
		uc.logger.Errorw("failed to get account by username", "error", err)
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	// Same generic error for unknown username and wrong password so the
	// response does not reveal which usernames exist.
	if acct == nil {
		return nil, errors.NewInvalidCredentialsError()
	}

	if err := uc.hasher.Verify(cmd.Password, acct.PasswordDigest()); err != nil {
		uc.logger.Warnw("failed login attempt", "username", cmd.Username)
		return nil, errors.NewInvalidCredentialsError()
	}

	// Active status is checked only after the password matched, so a
	// disabled account is disclosed to its owner alone.
	if !acct.IsActive() {
		return nil, errors.NewAccountInactiveError()
	}

	sessionLogID := uc.tracker.Open(ctx, acct, cmd.Origin)
	uc.session.Set(acct, sessionLogID)

	uc.logger.Infow("operator signed in",
		"username", acct.Username(),
		"role", acct.Role(),
		"session_log_id", sessionLogID,
	)

	return &LoginResult{Account: acct, SessionLogID: sessionLogID}, nil
}
