package commands

import (
	"context"
	"fmt"

	"github.com/fahrwerk/bikesim/internal/application/common"
	appsession "github.com/fahrwerk/bikesim/internal/application/session"
	"github.com/fahrwerk/bikesim/internal/domain/simulation"
	"github.com/shopspring/decimal"
)

// ProduceBicyclesCommand runs a production plan for a session
type ProduceBicyclesCommand struct {
	Session string
	Lines   []simulation.ProductionLine
}

// ProduceBicyclesResponse reports the built bicycles and the new balance
type ProduceBicyclesResponse struct {
	Result  *simulation.ProductionResult
	Balance decimal.Decimal
}

// ProduceBicyclesHandler handles the ProduceBicycles command
type ProduceBicyclesHandler struct {
	sessions *appsession.Service
}

func NewProduceBicyclesHandler(sessions *appsession.Service) *ProduceBicyclesHandler {
	return &ProduceBicyclesHandler{sessions: sessions}
}

// Handle executes the ProduceBicycles command
func (h *ProduceBicyclesHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*ProduceBicyclesCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *ProduceBicyclesCommand")
	}

	sess, engine, err := h.sessions.Load(ctx, cmd.Session)
	if err != nil {
		return nil, err
	}

	result, err := engine.ProduceBicycles(cmd.Lines)
	if err != nil {
		return nil, err
	}
	if err := h.sessions.Persist(ctx, sess, engine); err != nil {
		return nil, err
	}

	logger := common.LoggerFromContext(ctx)
	logger.Log("info", "bicycles produced", map[string]interface{}{
		"session":    cmd.Session,
		"labor_cost": result.LaborCost.String(),
	})

	return &ProduceBicyclesResponse{
		Result:  result,
		Balance: engine.Balance(),
	}, nil
}
