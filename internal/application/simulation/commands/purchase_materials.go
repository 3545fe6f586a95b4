package commands

import (
	"context"
	"fmt"

	"github.com/fahrwerk/bikesim/internal/application/common"
	appsession "github.com/fahrwerk/bikesim/internal/application/session"
	"github.com/fahrwerk/bikesim/internal/domain/simulation"
	"github.com/shopspring/decimal"
)

// PurchaseMaterialsCommand orders components for a session
type PurchaseMaterialsCommand struct {
	Session string
	Lines   []simulation.PurchaseOrderLine
}

// PurchaseMaterialsResponse reports the delivery and the new balance
type PurchaseMaterialsResponse struct {
	Result  *simulation.PurchaseResult
	Balance decimal.Decimal
}

// PurchaseMaterialsHandler handles the PurchaseMaterials command
type PurchaseMaterialsHandler struct {
	sessions *appsession.Service
}

func NewPurchaseMaterialsHandler(sessions *appsession.Service) *PurchaseMaterialsHandler {
	return &PurchaseMaterialsHandler{sessions: sessions}
}

// Handle executes the PurchaseMaterials command
func (h *PurchaseMaterialsHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*PurchaseMaterialsCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *PurchaseMaterialsCommand")
	}

	sess, engine, err := h.sessions.Load(ctx, cmd.Session)
	if err != nil {
		return nil, err
	}

	result, err := engine.PurchaseMaterials(cmd.Lines)
	if err != nil {
		return nil, err
	}
	if err := h.sessions.Persist(ctx, sess, engine); err != nil {
		return nil, err
	}

	logger := common.LoggerFromContext(ctx)
	logger.Log("info", "materials purchased", map[string]interface{}{
		"session": cmd.Session,
		"cost":    result.TotalCost.String(),
	})

	return &PurchaseMaterialsResponse{
		Result:  result,
		Balance: engine.Balance(),
	}, nil
}
