package usecases

import (
	"context"

	appaudit "warden/internal/application/audit"
	"warden/internal/application/auth"
	"warden/internal/shared/logger"
)

type LogoutUseCase struct {
	tracker *appaudit.SessionTracker
	session *auth.SessionContext
	logger  logger.Interface
}

func NewLogoutUseCase(tracker *appaudit.SessionTracker, session *auth.SessionContext, logger logger.Interface) *LogoutUseCase {
	return &LogoutUseCase{
		tracker: tracker,
		session: session,
		logger:  logger,
	}
}

// Execute closes the current session's audit record and clears the session
// context. Calling it while signed out is a no-op.
func (uc *LogoutUseCase) Execute(ctx context.Context) {
	current := uc.session.Current()
	if current == nil {
		return
	}

	uc.tracker.Close(ctx, uc.session.SessionLogID())
	uc.session.Clear()

	uc.logger.Infow("operator signed out", "username", current.Username())
}
