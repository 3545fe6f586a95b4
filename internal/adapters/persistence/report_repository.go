package persistence

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fahrwerk/bikesim/internal/domain/simulation"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormReportRepository implements session.ReportRepository using GORM
type GormReportRepository struct {
	db *gorm.DB
}

// NewGormReportRepository creates a new GORM report repository
func NewGormReportRepository(db *gorm.DB) *GormReportRepository {
	return &GormReportRepository{db: db}
}

// Save persists one closed month's report
func (r *GormReportRepository) Save(ctx context.Context, sessionID uuid.UUID, report simulation.MonthlyReport) error {
	detail, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	model := &MonthlyReportModel{
		SessionID: sessionID.String(),
		Month:     report.Month,
		Balance:   report.Balance.String(),
		Expenses:  report.Expenses.String(),
		Revenues:  report.Revenues.String(),
		Profit:    report.Profit.String(),
		Detail:    string(detail),
	}
	result := r.db.WithContext(ctx).Create(model)
	if result.Error != nil {
		return fmt.Errorf("failed to save report: %w", result.Error)
	}
	return nil
}

// ListBySession retrieves all reports for a session ordered by month
func (r *GormReportRepository) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]simulation.MonthlyReport, error) {
	var models []MonthlyReportModel
	result := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID.String()).
		Order("month ASC").
		Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list reports: %w", result.Error)
	}

	reports := make([]simulation.MonthlyReport, 0, len(models))
	for _, model := range models {
		var report simulation.MonthlyReport
		if err := json.Unmarshal([]byte(model.Detail), &report); err != nil {
			return nil, fmt.Errorf("failed to decode report: %w", err)
		}
		reports = append(reports, report)
	}
	return reports, nil
}
