package commands

import (
	"context"
	"fmt"

	"github.com/fahrwerk/bikesim/internal/application/common"
	appsession "github.com/fahrwerk/bikesim/internal/application/session"
	"github.com/fahrwerk/bikesim/internal/domain/simulation"
	"github.com/shopspring/decimal"
)

// TransferInventoryCommand moves items between a session's warehouses
type TransferInventoryCommand struct {
	Session string
	Lines   []simulation.TransferLine
}

// TransferInventoryResponse reports the executed transfers
type TransferInventoryResponse struct {
	Result  *simulation.TransferResult
	Balance decimal.Decimal
}

// TransferInventoryHandler handles the TransferInventory command
type TransferInventoryHandler struct {
	sessions *appsession.Service
}

func NewTransferInventoryHandler(sessions *appsession.Service) *TransferInventoryHandler {
	return &TransferInventoryHandler{sessions: sessions}
}

// Handle executes the TransferInventory command
func (h *TransferInventoryHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*TransferInventoryCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *TransferInventoryCommand")
	}

	sess, engine, err := h.sessions.Load(ctx, cmd.Session)
	if err != nil {
		return nil, err
	}

	result, err := engine.TransferInventory(cmd.Lines)
	if err != nil {
		return nil, err
	}
	if err := h.sessions.Persist(ctx, sess, engine); err != nil {
		return nil, err
	}

	logger := common.LoggerFromContext(ctx)
	logger.Log("info", "inventory transferred", map[string]interface{}{
		"session": cmd.Session,
		"fee":     result.Fee.String(),
	})

	return &TransferInventoryResponse{
		Result:  result,
		Balance: engine.Balance(),
	}, nil
}
