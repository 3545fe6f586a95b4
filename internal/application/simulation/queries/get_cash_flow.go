package queries

import (
	"context"
	"fmt"

	"github.com/fahrwerk/bikesim/internal/application/common"
	appsession "github.com/fahrwerk/bikesim/internal/application/session"
	"github.com/fahrwerk/bikesim/internal/domain/ledger"
	"github.com/shopspring/decimal"
)

// GetCashFlowQuery generates a cash flow statement for a session.
// Month 0 covers the whole run; a positive month restricts to that month.
type GetCashFlowQuery struct {
	Session string
	Month   int
}

// GetCashFlowResponse represents the cash flow statement result
type GetCashFlowResponse struct {
	Period     string
	Categories []*CategoryCashFlow
	Net        decimal.Decimal
}

// CategoryCashFlow represents cash flow for a specific category
type CategoryCashFlow struct {
	Category     string
	TotalInflow  decimal.Decimal
	TotalOutflow decimal.Decimal
	NetFlow      decimal.Decimal
	Entries      int
}

// GetCashFlowHandler handles the GetCashFlow query
type GetCashFlowHandler struct {
	sessions *appsession.Service
}

func NewGetCashFlowHandler(sessions *appsession.Service) *GetCashFlowHandler {
	return &GetCashFlowHandler{sessions: sessions}
}

// Handle executes the GetCashFlow query
func (h *GetCashFlowHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*GetCashFlowQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetCashFlowQuery")
	}

	_, engine, err := h.sessions.Load(ctx, query.Session)
	if err != nil {
		return nil, err
	}

	entries := engine.Ledger().Entries()
	categoryMap := make(map[ledger.Category]*CategoryCashFlow)
	for _, cat := range ledger.AllCategories() {
		categoryMap[cat] = &CategoryCashFlow{
			Category:     cat.String(),
			TotalInflow:  decimal.Zero,
			TotalOutflow: decimal.Zero,
			NetFlow:      decimal.Zero,
		}
	}

	net := decimal.Zero
	for _, entry := range entries {
		if query.Month > 0 && entry.Month() != query.Month {
			continue
		}
		flow := categoryMap[entry.Category()]
		flow.Entries++
		if entry.IsIncome() {
			flow.TotalInflow = flow.TotalInflow.Add(entry.Amount())
		} else {
			flow.TotalOutflow = flow.TotalOutflow.Add(entry.Amount().Abs())
		}
		flow.NetFlow = flow.TotalInflow.Sub(flow.TotalOutflow)
		net = net.Add(entry.Amount())
	}

	categories := make([]*CategoryCashFlow, 0)
	for _, cat := range ledger.AllCategories() {
		if categoryMap[cat].Entries > 0 {
			categories = append(categories, categoryMap[cat])
		}
	}

	period := "all months"
	if query.Month > 0 {
		period = fmt.Sprintf("month %d", query.Month)
	}

	return &GetCashFlowResponse{
		Period:     period,
		Categories: categories,
		Net:        net,
	}, nil
}
