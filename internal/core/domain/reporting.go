package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesSummary aggregates a list of sales into dashboard totals.
type SalesSummary struct {
	TotalCommission decimal.Decimal `json:"totalCommission"`
	SaleCount       int             `json:"saleCount"`
	AverageAmount   decimal.Decimal `json:"averageAmount"` // Zero when SaleCount is zero
}

// MonthBucket is one month of the trailing monthly breakdown.
type MonthBucket struct {
	Label           string          `json:"label"` // 3-letter month abbreviation
	Year            int             `json:"year"`
	Month           time.Month      `json:"month"`
	TotalCommission decimal.Decimal `json:"totalCommission"`
	SaleCount       int             `json:"saleCount"`
}

// InsuranceTypeBreakdown groups current-month sales by insurance type name.
type InsuranceTypeBreakdown struct {
	TypeName        string          `json:"typeName"`
	TotalCommission decimal.Decimal `json:"totalCommission"`
	SaleCount       int             `json:"saleCount"`
}

// EmployeeSales summarizes one employee's sales within a window.
type EmployeeSales struct {
	EmployeeID      string          `json:"employeeID"`
	EmployeeName    string          `json:"employeeName"`
	TotalCommission decimal.Decimal `json:"totalCommission"`
	SaleCount       int             `json:"saleCount"`
}

// ObjectiveProgress reports how far an employee is toward an objective.
// Percentages are clamped to [0, 100].
type ObjectiveProgress struct {
	Objective                Objective       `json:"objective"`
	AchievedAmount           decimal.Decimal `json:"achievedAmount"`
	AchievedSalesCount       int             `json:"achievedSalesCount"`
	ProgressPercentageAmount decimal.Decimal `json:"progressPercentageAmount"`
	ProgressPercentageSales  decimal.Decimal `json:"progressPercentageSales"`
	DaysRemaining            int             `json:"daysRemaining"`
}
