package session

import (
	"time"

	"github.com/fahrwerk/bikesim/internal/domain/shared"
	"github.com/fahrwerk/bikesim/internal/domain/simulation"
	"github.com/google/uuid"
)

// Session is a named, persistable simulation run
type Session struct {
	id        uuid.UUID
	name      string
	seed      int64
	snapshot  simulation.Snapshot
	createdAt time.Time
	updatedAt time.Time
}

// NewSession wraps a fresh engine state under a player-chosen name
func NewSession(name string, seed int64, snapshot simulation.Snapshot, now time.Time) (*Session, error) {
	if name == "" {
		return nil, shared.NewValidationError("name", "session name cannot be empty")
	}
	return &Session{
		id:        uuid.New(),
		name:      name,
		seed:      seed,
		snapshot:  snapshot,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// Reconstruct rebuilds a session from persistence
func Reconstruct(id uuid.UUID, name string, seed int64, snapshot simulation.Snapshot, createdAt, updatedAt time.Time) *Session {
	return &Session{
		id:        id,
		name:      name,
		seed:      seed,
		snapshot:  snapshot,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (s *Session) ID() uuid.UUID {
	return s.id
}

func (s *Session) Name() string {
	return s.name
}

func (s *Session) Seed() int64 {
	return s.seed
}

func (s *Session) Snapshot() simulation.Snapshot {
	return s.snapshot
}

func (s *Session) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Session) UpdatedAt() time.Time {
	return s.updatedAt
}

// UpdateSnapshot replaces the stored engine state after an operation
func (s *Session) UpdateSnapshot(snapshot simulation.Snapshot, now time.Time) {
	s.snapshot = snapshot
	s.updatedAt = now
}
