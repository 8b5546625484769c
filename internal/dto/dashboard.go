package dto

import (
	"github.com/shopspring/decimal"

	"github.com/velorent/insurance_sales_app/internal/core/domain"
)

// SummaryResponse is the dashboard headline card.
type SummaryResponse struct {
	TotalCommission decimal.Decimal `json:"totalCommission"`
	SaleCount       int             `json:"saleCount"`
	AverageAmount   decimal.Decimal `json:"averageAmount"`
}

// ToSummaryResponse maps a domain summary.
func ToSummaryResponse(s domain.SalesSummary) SummaryResponse {
	return SummaryResponse{
		TotalCommission: s.TotalCommission,
		SaleCount:       s.SaleCount,
		AverageAmount:   s.AverageAmount,
	}
}

// MonthBucketResponse is one bar of the trailing monthly chart.
type MonthBucketResponse struct {
	Label           string          `json:"label"`
	Year            int             `json:"year"`
	Month           int             `json:"month"`
	TotalCommission decimal.Decimal `json:"totalCommission"`
	SaleCount       int             `json:"saleCount"`
}

// ToMonthBucketResponses maps the trailing monthly buckets.
func ToMonthBucketResponses(buckets []domain.MonthBucket) []MonthBucketResponse {
	out := make([]MonthBucketResponse, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, MonthBucketResponse{
			Label:           b.Label,
			Year:            b.Year,
			Month:           int(b.Month),
			TotalCommission: b.TotalCommission,
			SaleCount:       b.SaleCount,
		})
	}
	return out
}

// TypeBreakdownResponse is one slice of the by-insurance-type chart.
type TypeBreakdownResponse struct {
	TypeName        string          `json:"typeName"`
	TotalCommission decimal.Decimal `json:"totalCommission"`
	SaleCount       int             `json:"saleCount"`
}

// ToTypeBreakdownResponses maps the per-type breakdown.
func ToTypeBreakdownResponses(rows []domain.InsuranceTypeBreakdown) []TypeBreakdownResponse {
	out := make([]TypeBreakdownResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, TypeBreakdownResponse{
			TypeName:        r.TypeName,
			TotalCommission: r.TotalCommission,
			SaleCount:       r.SaleCount,
		})
	}
	return out
}

// EmployeeSalesResponse is one row of the by-employee table.
type EmployeeSalesResponse struct {
	EmployeeID      string          `json:"employeeID"`
	EmployeeName    string          `json:"employeeName"`
	TotalCommission decimal.Decimal `json:"totalCommission"`
	SaleCount       int             `json:"saleCount"`
}

// ToEmployeeSalesResponses maps per-employee rollups.
func ToEmployeeSalesResponses(rows []domain.EmployeeSales) []EmployeeSalesResponse {
	out := make([]EmployeeSalesResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, EmployeeSalesResponse{
			EmployeeID:      r.EmployeeID,
			EmployeeName:    r.EmployeeName,
			TotalCommission: r.TotalCommission,
			SaleCount:       r.SaleCount,
		})
	}
	return out
}

// ObjectiveProgressResponse reports progress toward an active objective.
type ObjectiveProgressResponse struct {
	Objective                ObjectiveResponse `json:"objective"`
	AchievedAmount           decimal.Decimal   `json:"achievedAmount"`
	AchievedSalesCount       int               `json:"achievedSalesCount"`
	ProgressPercentageAmount decimal.Decimal   `json:"progressPercentageAmount"`
	ProgressPercentageSales  decimal.Decimal   `json:"progressPercentageSales"`
	DaysRemaining            int               `json:"daysRemaining"`
}

// ToObjectiveProgressResponse maps a domain progress report.
func ToObjectiveProgressResponse(p domain.ObjectiveProgress) ObjectiveProgressResponse {
	return ObjectiveProgressResponse{
		Objective:                ToObjectiveResponse(p.Objective),
		AchievedAmount:           p.AchievedAmount,
		AchievedSalesCount:       p.AchievedSalesCount,
		ProgressPercentageAmount: p.ProgressPercentageAmount,
		ProgressPercentageSales:  p.ProgressPercentageSales,
		DaysRemaining:            p.DaysRemaining,
	}
}
