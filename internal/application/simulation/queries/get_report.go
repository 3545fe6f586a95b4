package queries

import (
	"context"
	"fmt"

	"github.com/fahrwerk/bikesim/internal/application/common"
	appsession "github.com/fahrwerk/bikesim/internal/application/session"
	"github.com/fahrwerk/bikesim/internal/domain/simulation"
)

// GetReportQuery fetches a business report for a session. Month 0 means
// the running month; a positive month looks up a closed month's snapshot.
type GetReportQuery struct {
	Session string
	Month   int
}

// GetReportResponse carries the report and the simulation status
type GetReportResponse struct {
	Report simulation.MonthlyReport
	Status simulation.Status
}

// GetReportHandler handles the GetReport query
type GetReportHandler struct {
	sessions *appsession.Service
}

func NewGetReportHandler(sessions *appsession.Service) *GetReportHandler {
	return &GetReportHandler{sessions: sessions}
}

// Handle executes the GetReport query
func (h *GetReportHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*GetReportQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetReportQuery")
	}

	_, engine, err := h.sessions.Load(ctx, query.Session)
	if err != nil {
		return nil, err
	}

	var report simulation.MonthlyReport
	if query.Month > 0 {
		report, err = engine.ReportForMonth(query.Month)
	} else {
		report, err = engine.CurrentReport()
	}
	if err != nil {
		return nil, err
	}

	return &GetReportResponse{
		Report: report,
		Status: engine.Status(),
	}, nil
}
