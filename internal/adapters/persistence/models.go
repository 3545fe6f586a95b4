package persistence

import (
	"time"
)

// SessionModel represents the sessions table. The full engine state is
// stored as a JSON snapshot; reports get their own rows for querying.
type SessionModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name;unique;not null"`
	Seed      int64     `gorm:"column:seed;not null"`
	Month     int       `gorm:"column:month;not null"`
	Balance   string    `gorm:"column:balance;not null"`
	Status    string    `gorm:"column:status;not null"`
	State     string    `gorm:"column:state;type:text;not null"` // JSON snapshot as text
	CreatedAt time.Time `gorm:"column:created_at;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

func (SessionModel) TableName() string {
	return "sessions"
}

// MonthlyReportModel represents the monthly_reports table
type MonthlyReportModel struct {
	ID        int    `gorm:"column:id;primaryKey;autoIncrement"`
	SessionID string `gorm:"column:session_id;not null;index"`
	Month     int    `gorm:"column:month;not null"`
	Balance   string `gorm:"column:balance;not null"`
	Expenses  string `gorm:"column:expenses;not null"`
	Revenues  string `gorm:"column:revenues;not null"`
	Profit    string `gorm:"column:profit;not null"`
	Detail    string `gorm:"column:detail;type:text;not null"` // JSON report as text
}

func (MonthlyReportModel) TableName() string {
	return "monthly_reports"
}

// AllModels lists every model for auto-migration
func AllModels() []interface{} {
	return []interface{}{
		&SessionModel{},
		&MonthlyReportModel{},
	}
}
