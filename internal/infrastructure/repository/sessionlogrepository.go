package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"warden/internal/domain/audit"
	"warden/internal/infrastructure/persistence/models"
	"warden/internal/shared/logger"
)

// SessionLogRepository implements the append-only audit trail on gorm.
type SessionLogRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewSessionLogRepository creates a gorm-backed session log.
func NewSessionLogRepository(db *gorm.DB, log logger.Interface) audit.Repository {
	return &SessionLogRepository{
		db:     db,
		logger: log.Named("repository.sessionlog"),
	}
}

func sessionToModel(rec *audit.SessionRecord) *models.SessionLogModel {
	return &models.SessionLogModel{
		ID:              rec.ID(),
		AccountID:       rec.AccountID(),
		Username:        rec.Username(),
		DisplayName:     rec.DisplayName(),
		LoginAt:         rec.LoginAt(),
		LogoutAt:        rec.LogoutAt(),
		DurationMinutes: rec.DurationMinutes(),
		Origin:          rec.Origin(),
		Status:          string(rec.Status()),
	}
}

func sessionToEntity(model *models.SessionLogModel) (*audit.SessionRecord, error) {
	return audit.Reconstruct(model.ID, model.AccountID, model.Username, model.DisplayName,
		model.LoginAt, model.LogoutAt, model.DurationMinutes, model.Origin, audit.Status(model.Status))
}

// Insert persists a new ACTIVE record and writes the assigned ID back.
func (r *SessionLogRepository) Insert(ctx context.Context, rec *audit.SessionRecord) error {
	model := sessionToModel(rec)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to insert session record", "account_id", rec.AccountID(), "error", err)
		return fmt.Errorf("failed to insert session record: %w", err)
	}

	if err := rec.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set session log ID: %w", err)
	}

	return nil
}

// GetByID retrieves one record; nil when absent.
func (r *SessionLogRepository) GetByID(ctx context.Context, id uint) (*audit.SessionRecord, error) {
	var model models.SessionLogModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get session record", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get session record: %w", err)
	}

	return sessionToEntity(&model)
}

// Update writes back a closed record.
func (r *SessionLogRepository) Update(ctx context.Context, rec *audit.SessionRecord) error {
	model := sessionToModel(rec)

	if err := r.db.WithContext(ctx).
		Model(&models.SessionLogModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"logout_at":        model.LogoutAt,
			"duration_minutes": model.DurationMinutes,
			"status":           model.Status,
		}).Error; err != nil {
		r.logger.Errorw("failed to update session record", "id", model.ID, "error", err)
		return fmt.Errorf("failed to update session record: %w", err)
	}

	return nil
}

// List returns records most recent first. The query matches username or
// display name snapshots case-insensitively.
func (r *SessionLogRepository) List(ctx context.Context, filter audit.ListFilter) ([]*audit.SessionRecord, error) {
	query := r.db.WithContext(ctx).Model(&models.SessionLogModel{})

	if q := strings.TrimSpace(filter.Query); q != "" {
		needle := "%" + strings.ToLower(q) + "%"
		query = query.Where("LOWER(username) LIKE ? OR LOWER(display_name) LIKE ?", needle, needle)
	}

	var rows []models.SessionLogModel
	if err := query.Order("login_at DESC").Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list session records", "error", err)
		return nil, fmt.Errorf("failed to list session records: %w", err)
	}

	records := make([]*audit.SessionRecord, 0, len(rows))
	for i := range rows {
		rec, err := sessionToEntity(&rows[i])
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}
