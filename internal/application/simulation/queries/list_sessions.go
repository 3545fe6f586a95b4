package queries

import (
	"context"
	"fmt"
	"time"

	"github.com/fahrwerk/bikesim/internal/application/common"
	appsession "github.com/fahrwerk/bikesim/internal/application/session"
	"github.com/fahrwerk/bikesim/internal/domain/simulation"
	"github.com/shopspring/decimal"
)

// ListSessionsQuery lists all stored simulation runs
type ListSessionsQuery struct{}

// SessionSummary is one row in the session listing
type SessionSummary struct {
	Name      string
	Month     int
	Balance   decimal.Decimal
	Status    simulation.Status
	UpdatedAt time.Time
}

// ListSessionsResponse carries the session summaries
type ListSessionsResponse struct {
	Sessions []SessionSummary
}

// ListSessionsHandler handles the ListSessions query
type ListSessionsHandler struct {
	sessions *appsession.Service
}

func NewListSessionsHandler(sessions *appsession.Service) *ListSessionsHandler {
	return &ListSessionsHandler{sessions: sessions}
}

// Handle executes the ListSessions query
func (h *ListSessionsHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	_, ok := request.(*ListSessionsQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *ListSessionsQuery")
	}

	all, err := h.sessions.List(ctx)
	if err != nil {
		return nil, err
	}

	response := &ListSessionsResponse{}
	for _, sess := range all {
		snap := sess.Snapshot()
		response.Sessions = append(response.Sessions, SessionSummary{
			Name:      sess.Name(),
			Month:     snap.Month,
			Balance:   snap.Balance,
			Status:    snap.Status,
			UpdatedAt: sess.UpdatedAt(),
		})
	}
	return response, nil
}
