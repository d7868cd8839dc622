package usecases

import (
	"context"
	"fmt"

	"warden/internal/domain/audit"
	"warden/internal/shared/logger"
	"warden/internal/shared/timefmt"
)

// SessionView is a display-ready row of the audit trail. Timestamps are
// already formatted and open sessions carry a blank logout and duration.
type SessionView struct {
	ID          uint
	AccountID   uint
	Username    string
	DisplayName string
	LoginAt     string
	LogoutAt    string
	Duration    string
	Origin      string
	Status      string
}

type ListSessionsQuery struct {
	Search string
}

type ListSessionsResult struct {
	Sessions  []SessionView
	Total     int
	Active    int
	LoggedOut int
}

type ListSessionsUseCase struct {
	sessionRepo audit.Repository
	logger      logger.Interface
}

func NewListSessionsUseCase(sessionRepo audit.Repository, logger logger.Interface) *ListSessionsUseCase {
	return &ListSessionsUseCase{
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

func (uc *ListSessionsUseCase) Execute(ctx context.Context, query ListSessionsQuery) (*ListSessionsResult, error) {
	records, err := uc.sessionRepo.List(ctx, audit.ListFilter{Query: query.Search})
	if err != nil {
		uc.logger.Errorw("failed to list session records", "error", err)
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	result := &ListSessionsResult{
		Sessions: make([]SessionView, 0, len(records)),
		Total:    len(records),
	}
	for _, rec := range records {
		if rec.IsActive() {
			result.Active++
		} else {
			result.LoggedOut++
		}
		loginAt := rec.LoginAt()
		result.Sessions = append(result.Sessions, SessionView{
			ID:          rec.ID(),
			AccountID:   rec.AccountID(),
			Username:    rec.Username(),
			DisplayName: rec.DisplayName(),
			LoginAt:     timefmt.FormatTimestamp(&loginAt),
			LogoutAt:    timefmt.FormatTimestamp(rec.LogoutAt()),
			Duration:    timefmt.FormatDurationMinutes(rec.DurationMinutes()),
			Origin:      rec.Origin(),
			Status:      string(rec.Status()),
		})
	}
	return result, nil
}
