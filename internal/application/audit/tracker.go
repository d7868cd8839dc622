package audit

import (
	"context"

	"warden/internal/domain/account"
	"warden/internal/domain/audit"
	"warden/internal/shared/logger"
	"warden/internal/shared/timefmt"
)

// SessionTracker records login and logout events in the session log.
// Audit writes are best effort: a failed insert or update is logged and
// swallowed so it never blocks authentication.
type SessionTracker struct {
	sessionRepo audit.Repository
	accountRepo account.Repository
	logger      logger.Interface
}

func NewSessionTracker(sessionRepo audit.Repository, accountRepo account.Repository, logger logger.Interface) *SessionTracker {
	return &SessionTracker{
		sessionRepo: sessionRepo,
		accountRepo: accountRepo,
		logger:      logger,
	}
}

// Open inserts an ACTIVE session row for the account and stamps its last
// login time. It returns the new row's ID, or zero when the insert failed.
func (t *SessionTracker) Open(ctx context.Context, acct *account.Account, origin string) uint {
	now := timefmt.NowUTC()

	record, err := audit.NewSessionRecord(acct.ID(), acct.Username(), acct.DisplayLabel(), origin, now)
	if err != nil {
		t.logger.Errorw("failed to build session record", "username", acct.Username(), "error", err)
		return 0
	}

	if err := t.accountRepo.RecordLogin(ctx, acct.ID(), now); err != nil {
		t.logger.Warnw("failed to stamp last login", "username", acct.Username(), "error", err)
	}
	acct.RecordLogin(now)

	if err := t.sessionRepo.Insert(ctx, record); err != nil {
		t.logger.Errorw("failed to insert session record", "username", acct.Username(), "error", err)
		return 0
	}
	return record.ID()
}

// Close marks the session row as LOGGED_OUT and computes its duration.
// A zero ID means login-time auditing failed and there is nothing to close.
func (t *SessionTracker) Close(ctx context.Context, sessionLogID uint) {
	if sessionLogID == 0 {
		return
	}

	record, err := t.sessionRepo.GetByID(ctx, sessionLogID)
	if err != nil {
		t.logger.Errorw("failed to load session record", "session_log_id", sessionLogID, "error", err)
		return
	}
	if record == nil {
		t.logger.Warnw("session record missing at logout", "session_log_id", sessionLogID)
		return
	}

	if err := record.Close(timefmt.NowUTC()); err != nil {
		t.logger.Warnw("session already closed", "session_log_id", sessionLogID, "error", err)
		return
	}

	if err := t.sessionRepo.Update(ctx, record); err != nil {
		t.logger.Errorw("failed to close session record", "session_log_id", sessionLogID, "error", err)
	}
}
