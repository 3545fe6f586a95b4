package session

import (
	"context"
	"fmt"

	"github.com/fahrwerk/bikesim/internal/domain/catalog"
	"github.com/fahrwerk/bikesim/internal/domain/session"
	"github.com/fahrwerk/bikesim/internal/domain/shared"
	"github.com/fahrwerk/bikesim/internal/domain/simulation"
)

// Service loads and persists simulation engines through the session
// repository. Command handlers go through it instead of touching
// persistence directly.
type Service struct {
	sessions session.Repository
	catalog  *catalog.Catalog
	params   simulation.Params
	clock    shared.Clock
}

func NewService(sessions session.Repository, cat *catalog.Catalog, params simulation.Params, clock shared.Clock) *Service {
	return &Service{
		sessions: sessions,
		catalog:  cat,
		params:   params,
		clock:    clock,
	}
}

func (s *Service) Catalog() *catalog.Catalog {
	return s.catalog
}

func (s *Service) Params() simulation.Params {
	return s.params
}

// Create starts a new named run and persists its initial state
func (s *Service) Create(ctx context.Context, name string, seed int64) (*session.Session, error) {
	if existing, err := s.sessions.FindByName(ctx, name); err == nil && existing != nil {
		return nil, fmt.Errorf("session %q already exists", name)
	}

	engine, err := simulation.NewEngine(s.catalog, s.params, shared.NewSeededSource(seed), s.clock)
	if err != nil {
		return nil, err
	}
	sess, err := session.NewSession(name, seed, engine.Snapshot(), s.clock.Now())
	if err != nil {
		return nil, err
	}
	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	return sess, nil
}

// Load restores the engine behind a named session. The random source is
// reseeded from the session seed offset by the ledger length, so replaying
// a loaded game does not repeat the draws already consumed.
func (s *Service) Load(ctx context.Context, name string) (*session.Session, *simulation.Engine, error) {
	sess, err := s.sessions.FindByName(ctx, name)
	if err != nil {
		return nil, nil, err
	}
	snap := sess.Snapshot()
	rng := shared.NewSeededSource(sess.Seed() + int64(snap.Month)*1_000_003 + int64(len(snap.Entries)))
	engine, err := simulation.Restore(s.catalog, s.params, rng, s.clock, snap)
	if err != nil {
		return nil, nil, err
	}
	return sess, engine, nil
}

// Persist writes the engine's current state back to the session row
func (s *Service) Persist(ctx context.Context, sess *session.Session, engine *simulation.Engine) error {
	sess.UpdateSnapshot(engine.Snapshot(), s.clock.Now())
	if err := s.sessions.Save(ctx, sess); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// List returns all stored sessions
func (s *Service) List(ctx context.Context) ([]*session.Session, error) {
	return s.sessions.List(ctx)
}

// Delete removes a named session
func (s *Service) Delete(ctx context.Context, name string) error {
	sess, err := s.sessions.FindByName(ctx, name)
	if err != nil {
		return err
	}
	return s.sessions.Delete(ctx, sess.ID())
}
