package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fahrwerk/bikesim/internal/domain/session"
	"github.com/fahrwerk/bikesim/internal/domain/simulation"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormSessionRepository implements session.Repository using GORM
type GormSessionRepository struct {
	db *gorm.DB
}

// NewGormSessionRepository creates a new GORM session repository
func NewGormSessionRepository(db *gorm.DB) *GormSessionRepository {
	return &GormSessionRepository{db: db}
}

// Save persists a session as an upsert
func (r *GormSessionRepository) Save(ctx context.Context, s *session.Session) error {
	model, err := r.sessionToModel(s)
	if err != nil {
		return fmt.Errorf("failed to convert session to model: %w", err)
	}

	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to save session: %w", result.Error)
	}
	return nil
}

// FindByName retrieves a session by its player-chosen name
func (r *GormSessionRepository) FindByName(ctx context.Context, name string) (*session.Session, error) {
	var model SessionModel
	result := r.db.WithContext(ctx).Where("name = ?", name).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, &session.ErrSessionNotFound{Name: name}
		}
		return nil, fmt.Errorf("failed to find session: %w", result.Error)
	}
	return r.modelToSession(&model)
}

// List retrieves all sessions, most recently updated first
func (r *GormSessionRepository) List(ctx context.Context) ([]*session.Session, error) {
	var models []SessionModel
	result := r.db.WithContext(ctx).Order("updated_at DESC").Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", result.Error)
	}

	sessions := make([]*session.Session, 0, len(models))
	for _, model := range models {
		s, err := r.modelToSession(&model)
		if err != nil {
			continue // Skip rows with unreadable state
		}
		sessions = append(sessions, s)
	}
	return sessions, nil
}

// Delete removes a session and its monthly reports
func (r *GormSessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("session_id = ?", id.String()).Delete(&MonthlyReportModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete reports: %w", err)
		}
		if err := tx.Where("id = ?", id.String()).Delete(&SessionModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete session: %w", err)
		}
		return nil
	})
}

func (r *GormSessionRepository) sessionToModel(s *session.Session) (*SessionModel, error) {
	snap := s.Snapshot()
	state, err := json.Marshal(snap)
	if err != nil {
		return nil, err
	}
	return &SessionModel{
		ID:        s.ID().String(),
		Name:      s.Name(),
		Seed:      s.Seed(),
		Month:     snap.Month,
		Balance:   snap.Balance.String(),
		Status:    string(snap.Status),
		State:     string(state),
		CreatedAt: s.CreatedAt(),
		UpdatedAt: s.UpdatedAt(),
	}, nil
}

func (r *GormSessionRepository) modelToSession(model *SessionModel) (*session.Session, error) {
	id, err := uuid.Parse(model.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid session id: %w", err)
	}
	var snap simulation.Snapshot
	if err := json.Unmarshal([]byte(model.State), &snap); err != nil {
		return nil, fmt.Errorf("failed to decode session state: %w", err)
	}
	return session.Reconstruct(id, model.Name, model.Seed, snap, model.CreatedAt, model.UpdatedAt), nil
}
