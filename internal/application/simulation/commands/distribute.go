package commands

import (
	"context"
	"fmt"

	"github.com/fahrwerk/bikesim/internal/application/common"
	appsession "github.com/fahrwerk/bikesim/internal/application/session"
	"github.com/fahrwerk/bikesim/internal/domain/simulation"
	"github.com/shopspring/decimal"
)

// DistributeCommand ships finished bicycles to markets
type DistributeCommand struct {
	Session string
	Lines   []simulation.DistributionLine
}

// DistributeResponse reports the shipments and the new balance
type DistributeResponse struct {
	Result  *simulation.DistributionResult
	Balance decimal.Decimal
}

// DistributeHandler handles the Distribute command
type DistributeHandler struct {
	sessions *appsession.Service
}

func NewDistributeHandler(sessions *appsession.Service) *DistributeHandler {
	return &DistributeHandler{sessions: sessions}
}

// Handle executes the Distribute command
func (h *DistributeHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*DistributeCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *DistributeCommand")
	}

	sess, engine, err := h.sessions.Load(ctx, cmd.Session)
	if err != nil {
		return nil, err
	}

	result, err := engine.DistributeToMarkets(cmd.Lines)
	if err != nil {
		return nil, err
	}
	if err := h.sessions.Persist(ctx, sess, engine); err != nil {
		return nil, err
	}

	logger := common.LoggerFromContext(ctx)
	logger.Log("info", "bicycles shipped", map[string]interface{}{
		"session":  cmd.Session,
		"shipping": result.ShippingCost.String(),
	})

	return &DistributeResponse{
		Result:  result,
		Balance: engine.Balance(),
	}, nil
}
