package commands

import (
	"context"
	"fmt"

	"github.com/fahrwerk/bikesim/internal/application/common"
	appsession "github.com/fahrwerk/bikesim/internal/application/session"
	"github.com/fahrwerk/bikesim/internal/domain/simulation"
	"github.com/shopspring/decimal"
)

// ManageStaffCommand hires and fires workers for a session
type ManageStaffCommand struct {
	Session string
	Change  simulation.StaffChange
}

// ManageStaffResponse reports the new headcounts and salary charge
type ManageStaffResponse struct {
	Result  *simulation.StaffResult
	Balance decimal.Decimal
}

// ManageStaffHandler handles the ManageStaff command
type ManageStaffHandler struct {
	sessions *appsession.Service
}

func NewManageStaffHandler(sessions *appsession.Service) *ManageStaffHandler {
	return &ManageStaffHandler{sessions: sessions}
}

// Handle executes the ManageStaff command
func (h *ManageStaffHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*ManageStaffCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *ManageStaffCommand")
	}

	sess, engine, err := h.sessions.Load(ctx, cmd.Session)
	if err != nil {
		return nil, err
	}

	result, err := engine.ManageStaff(cmd.Change)
	if err != nil {
		return nil, err
	}
	if err := h.sessions.Persist(ctx, sess, engine); err != nil {
		return nil, err
	}

	logger := common.LoggerFromContext(ctx)
	logger.Log("info", "staff updated", map[string]interface{}{
		"session":   cmd.Session,
		"skilled":   result.Skilled,
		"unskilled": result.Unskilled,
	})

	return &ManageStaffResponse{
		Result:  result,
		Balance: engine.Balance(),
	}, nil
}
