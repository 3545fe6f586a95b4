package commands

import (
	"context"
	"fmt"

	"github.com/fahrwerk/bikesim/internal/application/common"
	appsession "github.com/fahrwerk/bikesim/internal/application/session"
	"github.com/fahrwerk/bikesim/internal/domain/session"
	"github.com/fahrwerk/bikesim/internal/domain/simulation"
	"github.com/shopspring/decimal"
)

// CloseMonthCommand ends the current month of a session: rent falls due,
// sales run, and the simulation advances.
type CloseMonthCommand struct {
	Session string
}

// CloseMonthResponse reports the month-end outcome
type CloseMonthResponse struct {
	ClosedMonth int
	Rent        *simulation.RentResult
	Sales       *simulation.SalesResult
	Report      simulation.MonthlyReport
	Balance     decimal.Decimal
	GameOver    bool
}

// CloseMonthHandler handles the CloseMonth command
type CloseMonthHandler struct {
	sessions *appsession.Service
	reports  session.ReportRepository
}

func NewCloseMonthHandler(sessions *appsession.Service, reports session.ReportRepository) *CloseMonthHandler {
	return &CloseMonthHandler{sessions: sessions, reports: reports}
}

// Handle executes the CloseMonth command
func (h *CloseMonthHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*CloseMonthCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *CloseMonthCommand")
	}

	sess, engine, err := h.sessions.Load(ctx, cmd.Session)
	if err != nil {
		return nil, err
	}

	rent, err := engine.PayPeriodicExpenses()
	if err != nil {
		return nil, err
	}
	sales, err := engine.SimulateSales()
	if err != nil {
		return nil, err
	}
	close, err := engine.AdvanceMonth()
	if err != nil {
		return nil, err
	}

	if err := h.sessions.Persist(ctx, sess, engine); err != nil {
		return nil, err
	}
	if err := h.reports.Save(ctx, sess.ID(), close.Report); err != nil {
		return nil, fmt.Errorf("failed to save monthly report: %w", err)
	}

	logger := common.LoggerFromContext(ctx)
	logger.Log("info", "month closed", map[string]interface{}{
		"session":   cmd.Session,
		"month":     close.ClosedMonth,
		"revenue":   sales.TotalRevenue.String(),
		"game_over": close.GameOver,
	})

	return &CloseMonthResponse{
		ClosedMonth: close.ClosedMonth,
		Rent:        rent,
		Sales:       sales,
		Report:      close.Report,
		Balance:     engine.Balance(),
		GameOver:    close.GameOver,
	}, nil
}
