package commands

import (
	"context"
	"fmt"

	"github.com/fahrwerk/bikesim/internal/application/common"
	appsession "github.com/fahrwerk/bikesim/internal/application/session"
	"github.com/shopspring/decimal"
)

// NewSessionCommand starts a new named simulation run
type NewSessionCommand struct {
	Name string
	Seed int64
}

// NewSessionResponse reports the created run's starting state
type NewSessionResponse struct {
	SessionID string
	Name      string
	Month     int
	Balance   decimal.Decimal
}

// NewSessionHandler handles the NewSession command
type NewSessionHandler struct {
	sessions *appsession.Service
}

func NewNewSessionHandler(sessions *appsession.Service) *NewSessionHandler {
	return &NewSessionHandler{sessions: sessions}
}

// Handle executes the NewSession command
func (h *NewSessionHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*NewSessionCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *NewSessionCommand")
	}

	sess, err := h.sessions.Create(ctx, cmd.Name, cmd.Seed)
	if err != nil {
		return nil, err
	}

	logger := common.LoggerFromContext(ctx)
	logger.Log("info", "session created", map[string]interface{}{
		"session": sess.Name(),
		"seed":    cmd.Seed,
	})

	snap := sess.Snapshot()
	return &NewSessionResponse{
		SessionID: sess.ID().String(),
		Name:      sess.Name(),
		Month:     snap.Month,
		Balance:   snap.Balance,
	}, nil
}
