package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/velorent/insurance_sales_app/internal/core/domain"
)

// CreateObjectiveRequest is the payload to assign an objective to an
// employee. Dates use the YYYY-MM-DD form and are inclusive.
type CreateObjectiveRequest struct {
	EmployeeID       string          `json:"employeeID" binding:"required"`
	Type             string          `json:"type" binding:"required,oneof=WEEKLY MONTHLY YEARLY"`
	TargetAmount     decimal.Decimal `json:"targetAmount" binding:"required"`
	TargetSalesCount int             `json:"targetSalesCount" binding:"required"`
	PeriodStart      string          `json:"periodStart" binding:"required"`
	PeriodEnd        string          `json:"periodEnd" binding:"required"`
	Description      string          `json:"description,omitempty"`
}

// UpdateObjectiveRequest carries partial updates to an objective.
type UpdateObjectiveRequest struct {
	TargetAmount     *decimal.Decimal `json:"targetAmount,omitempty"`
	TargetSalesCount *int             `json:"targetSalesCount,omitempty"`
	PeriodStart      *string          `json:"periodStart,omitempty"`
	PeriodEnd        *string          `json:"periodEnd,omitempty"`
	Description      *string          `json:"description,omitempty"`
	IsActive         *bool            `json:"isActive,omitempty"`
}

// ObjectiveResponse is the public view of an objective.
type ObjectiveResponse struct {
	ObjectiveID      string          `json:"objectiveID"`
	EmployeeID       string          `json:"employeeID"`
	EmployeeName     string          `json:"employeeName"`
	Type             string          `json:"type"`
	TargetAmount     decimal.Decimal `json:"targetAmount"`
	TargetSalesCount int             `json:"targetSalesCount"`
	PeriodStart      time.Time       `json:"periodStart"`
	PeriodEnd        time.Time       `json:"periodEnd"`
	IsActive         bool            `json:"isActive"`
	Description      string          `json:"description,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
}

// ToObjectiveResponse maps a domain objective to its public view.
func ToObjectiveResponse(o domain.Objective) ObjectiveResponse {
	return ObjectiveResponse{
		ObjectiveID:      o.ObjectiveID,
		EmployeeID:       o.EmployeeID,
		EmployeeName:     o.EmployeeName,
		Type:             string(o.Type),
		TargetAmount:     o.TargetAmount,
		TargetSalesCount: o.TargetSalesCount,
		PeriodStart:      o.PeriodStart,
		PeriodEnd:        o.PeriodEnd,
		IsActive:         o.IsActive,
		Description:      o.Description,
		CreatedAt:        o.CreatedAt,
	}
}

// ToObjectiveResponses maps a slice of domain objectives.
func ToObjectiveResponses(objectives []domain.Objective) []ObjectiveResponse {
	out := make([]ObjectiveResponse, 0, len(objectives))
	for _, o := range objectives {
		out = append(out, ToObjectiveResponse(o))
	}
	return out
}

// ObjectiveHistoryResponse is the public view of an archived objective.
type ObjectiveHistoryResponse struct {
	HistoryID          string          `json:"historyID"`
	ObjectiveID        string          `json:"objectiveID"`
	EmployeeID         string          `json:"employeeID"`
	EmployeeName       string          `json:"employeeName"`
	Type               string          `json:"type"`
	TargetAmount       decimal.Decimal `json:"targetAmount"`
	TargetSalesCount   int             `json:"targetSalesCount"`
	PeriodStart        time.Time       `json:"periodStart"`
	PeriodEnd          time.Time       `json:"periodEnd"`
	AchievedAmount     decimal.Decimal `json:"achievedAmount"`
	AchievedSalesCount int             `json:"achievedSalesCount"`
	Achieved           bool            `json:"achieved"`
	ArchivedAt         time.Time       `json:"archivedAt"`
}

// ToObjectiveHistoryResponse maps a domain history record to its public view.
func ToObjectiveHistoryResponse(h domain.ObjectiveHistory) ObjectiveHistoryResponse {
	return ObjectiveHistoryResponse{
		HistoryID:          h.HistoryID,
		ObjectiveID:        h.ObjectiveID,
		EmployeeID:         h.EmployeeID,
		EmployeeName:       h.EmployeeName,
		Type:               string(h.Type),
		TargetAmount:       h.TargetAmount,
		TargetSalesCount:   h.TargetSalesCount,
		PeriodStart:        h.PeriodStart,
		PeriodEnd:          h.PeriodEnd,
		AchievedAmount:     h.AchievedAmount,
		AchievedSalesCount: h.AchievedSalesCount,
		Achieved:           h.Achieved,
		ArchivedAt:         h.ArchivedAt,
	}
}

// ToObjectiveHistoryResponses maps a slice of domain history records.
func ToObjectiveHistoryResponses(hs []domain.ObjectiveHistory) []ObjectiveHistoryResponse {
	out := make([]ObjectiveHistoryResponse, 0, len(hs))
	for _, h := range hs {
		out = append(out, ToObjectiveHistoryResponse(h))
	}
	return out
}
