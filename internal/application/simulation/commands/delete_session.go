package commands

import (
	"context"
	"fmt"

	"github.com/fahrwerk/bikesim/internal/application/common"
	appsession "github.com/fahrwerk/bikesim/internal/application/session"
)

// DeleteSessionCommand removes a stored session and its reports
type DeleteSessionCommand struct {
	Session string
}

// DeleteSessionResponse confirms the deletion
type DeleteSessionResponse struct {
	Deleted string
}

// DeleteSessionHandler handles the DeleteSession command
type DeleteSessionHandler struct {
	sessions *appsession.Service
}

func NewDeleteSessionHandler(sessions *appsession.Service) *DeleteSessionHandler {
	return &DeleteSessionHandler{sessions: sessions}
}

// Handle executes the DeleteSession command
func (h *DeleteSessionHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*DeleteSessionCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *DeleteSessionCommand")
	}

	if err := h.sessions.Delete(ctx, cmd.Session); err != nil {
		return nil, err
	}
	return &DeleteSessionResponse{Deleted: cmd.Session}, nil
}
