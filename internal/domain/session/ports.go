package session

import (
	"context"

	"github.com/fahrwerk/bikesim/internal/domain/simulation"
	"github.com/google/uuid"
)

// Repository defines persistence operations for sessions
type Repository interface {
	// Save creates or updates a session
	Save(ctx context.Context, s *Session) error

	// FindByName retrieves a session by its player-chosen name
	FindByName(ctx context.Context, name string) (*Session, error)

	// List retrieves all sessions ordered by last update
	List(ctx context.Context) ([]*Session, error)

	// Delete removes a session and its reports
	Delete(ctx context.Context, id uuid.UUID) error
}

// ReportRepository defines persistence for closed-month reports
type ReportRepository interface {
	// Save persists one closed month's report for a session
	Save(ctx context.Context, sessionID uuid.UUID, report simulation.MonthlyReport) error

	// ListBySession retrieves all reports for a session ordered by month
	ListBySession(ctx context.Context, sessionID uuid.UUID) ([]simulation.MonthlyReport, error)
}

// ErrSessionNotFound indicates the named session does not exist
type ErrSessionNotFound struct {
	Name string
}

func (e *ErrSessionNotFound) Error() string {
	return "session not found: " + e.Name
}
