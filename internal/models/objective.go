package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Objective is the database row shape for the objectives table.
type Objective struct {
	ObjectiveID      string
	EmployeeID       string
	EmployeeName     string
	Type             string
	TargetAmount     decimal.Decimal
	TargetSalesCount int
	PeriodStart      time.Time
	PeriodEnd        time.Time
	IsActive         bool
	Description      sql.NullString
	CreatedAt        time.Time
	CreatedBy        string
	LastUpdatedAt    time.Time
	LastUpdatedBy    string
	DeletedAt        sql.NullTime
}

// ObjectiveHistory is the database row shape for the objective_history table.
type ObjectiveHistory struct {
	HistoryID          string
	ObjectiveID        string
	EmployeeID         string
	EmployeeName       string
	Type               string
	TargetAmount       decimal.Decimal
	TargetSalesCount   int
	PeriodStart        time.Time
	PeriodEnd          time.Time
	AchievedAmount     decimal.Decimal
	AchievedSalesCount int
	Achieved           bool
	ArchivedAt         time.Time
	ArchivedBy         string
}
