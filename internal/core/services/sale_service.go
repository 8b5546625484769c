package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/velorent/insurance_sales_app/internal/apperrors"
	"github.com/velorent/insurance_sales_app/internal/core/domain"
	portsrepo "github.com/velorent/insurance_sales_app/internal/core/ports/repositories"
	portssvc "github.com/velorent/insurance_sales_app/internal/core/ports/services"
	"github.com/velorent/insurance_sales_app/internal/dto"
	"github.com/velorent/insurance_sales_app/internal/utils"
)

const saleDateLayout = "2006-01-02"

type saleService struct {
	BaseService
	accessPolicy
	saleRepo          portsrepo.SaleRepository
	insuranceTypeRepo portsrepo.InsuranceTypeRepository
	userRepo          portsrepo.UserRepository
	publisher         portssvc.SaleEventPublisher
	now               func() time.Time
}

// NewSaleService builds the sale service. publisher may be nil when live
// updates are not wired.
func NewSaleService(
	saleRepo portsrepo.SaleRepository,
	insuranceTypeRepo portsrepo.InsuranceTypeRepository,
	userRepo portsrepo.UserRepository,
	publisher portssvc.SaleEventPublisher,
) portssvc.SaleSvcFacade {
	return &saleService{
		saleRepo:          saleRepo,
		insuranceTypeRepo: insuranceTypeRepo,
		userRepo:          userRepo,
		publisher:         publisher,
		now:               time.Now,
	}
}

var _ portssvc.SaleSvcFacade = (*saleService)(nil)

func (s *saleService) CreateSale(ctx context.Context, actor domain.Actor, req dto.CreateSaleRequest) (domain.Sale, error) {
	employeeID := actor.UserID
	if req.EmployeeID != "" && req.EmployeeID != actor.UserID {
		// Only admins record sales on someone else's behalf.
		if err := s.requireAdmin(actor); err != nil {
			return domain.Sale{}, err
		}
		employeeID = req.EmployeeID
	}

	employee, err := s.userRepo.GetUserByID(ctx, employeeID)
	if err != nil {
		return domain.Sale{}, err
	}

	fields := map[string]string{}
	saleDate, dateMsg := s.parseSaleDate(req.SaleDate)
	if dateMsg != "" {
		fields["saleDate"] = dateMsg
	}
	if msg := utils.ValidateClientName(req.ClientName); msg != "" {
		fields["clientName"] = msg
	}
	if msg := utils.ValidateReservationNumber(req.ReservationNumber); msg != "" {
		fields["reservationNumber"] = msg
	}
	if msg := utils.ValidateNotes(req.Notes); msg != "" {
		fields["notes"] = msg
	}

	commission, types, typeMsg := s.resolveInsuranceTypes(ctx, req.InsuranceTypeIDs)
	if typeMsg != "" {
		fields["insuranceTypeIDs"] = typeMsg
	}
	if len(fields) > 0 {
		return domain.Sale{}, apperrors.NewValidationError(fields)
	}

	taken, err := s.saleRepo.ReservationExists(ctx, req.ReservationNumber, "")
	if err != nil {
		return domain.Sale{}, err
	}
	if taken {
		return domain.Sale{}, apperrors.NewValidationError(map[string]string{
			"reservationNumber": "an active sale already exists for this reservation",
		})
	}

	now := s.now()
	sale := domain.Sale{
		SaleID:            uuid.NewString(),
		EmployeeID:        employee.UserID,
		EmployeeName:      employee.Name,
		ClientName:        strings.TrimSpace(req.ClientName),
		ReservationNumber: req.ReservationNumber,
		InsuranceTypeIDs:  types,
		CommissionAmount:  commission,
		Status:            domain.SaleStatusActive,
		SaleDate:          saleDate,
		Notes:             req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	created, err := s.saleRepo.CreateSale(ctx, sale)
	if err != nil {
		s.LogError(ctx, err, "Failed to create sale")
		return domain.Sale{}, err
	}
	s.LogInfo(ctx, "Sale recorded", "sale_id", created.SaleID, "commission", created.CommissionAmount.String())

	s.publish(domain.SaleEvent{Type: domain.SaleEventCreated, Sale: created, OccurredAt: now})
	return created, nil
}

func (s *saleService) GetSaleByID(ctx context.Context, actor domain.Actor, saleID string) (domain.Sale, error) {
	sale, err := s.saleRepo.GetSaleByID(ctx, saleID)
	if err != nil {
		return domain.Sale{}, err
	}
	if !s.canAccessSale(actor, sale) {
		return domain.Sale{}, apperrors.ErrForbidden
	}
	return sale, nil
}

func (s *saleService) ListSales(ctx context.Context, actor domain.Actor, q dto.ListSalesQuery) ([]domain.Sale, error) {
	employeeID, err := s.scopeEmployeeID(actor, q.EmployeeID)
	if err != nil {
		return nil, err
	}

	filter := portsrepo.SaleFilter{
		EmployeeID: employeeID,
		Status:     domain.SaleStatus(q.Status),
	}
	if q.From != "" {
		from, err := time.Parse(saleDateLayout, q.From)
		if err != nil {
			return nil, apperrors.NewValidationError(map[string]string{"from": "invalid date, expected YYYY-MM-DD"})
		}
		filter.From = &from
	}
	if q.To != "" {
		to, err := time.Parse(saleDateLayout, q.To)
		if err != nil {
			return nil, apperrors.NewValidationError(map[string]string{"to": "invalid date, expected YYYY-MM-DD"})
		}
		// Make the upper bound inclusive of the whole day.
		to = to.Add(24*time.Hour - time.Nanosecond)
		filter.To = &to
	}

	return s.saleRepo.ListSales(ctx, filter)
}

func (s *saleService) UpdateSale(ctx context.Context, actor domain.Actor, saleID string, req dto.UpdateSaleRequest) (domain.Sale, error) {
	sale, err := s.saleRepo.GetSaleByID(ctx, saleID)
	if err != nil {
		return domain.Sale{}, err
	}
	if !s.canAccessSale(actor, sale) {
		return domain.Sale{}, apperrors.ErrForbidden
	}
	if !sale.IsActive() {
		return domain.Sale{}, apperrors.NewValidationError(map[string]string{"status": "cancelled sales cannot be modified"})
	}

	fields := map[string]string{}
	if req.ClientName != nil {
		if msg := utils.ValidateClientName(*req.ClientName); msg != "" {
			fields["clientName"] = msg
		} else {
			sale.ClientName = strings.TrimSpace(*req.ClientName)
		}
	}
	if req.ReservationNumber != nil {
		if msg := utils.ValidateReservationNumber(*req.ReservationNumber); msg != "" {
			fields["reservationNumber"] = msg
		} else {
			sale.ReservationNumber = *req.ReservationNumber
		}
	}
	if req.SaleDate != nil {
		saleDate, msg := s.parseSaleDate(*req.SaleDate)
		if msg != "" {
			fields["saleDate"] = msg
		} else {
			sale.SaleDate = saleDate
		}
	}
	if req.Notes != nil {
		if msg := utils.ValidateNotes(*req.Notes); msg != "" {
			fields["notes"] = msg
		} else {
			sale.Notes = *req.Notes
		}
	}
	if req.InsuranceTypeIDs != nil {
		commission, types, msg := s.resolveInsuranceTypes(ctx, *req.InsuranceTypeIDs)
		if msg != "" {
			fields["insuranceTypeIDs"] = msg
		} else {
			sale.InsuranceTypeIDs = types
			sale.CommissionAmount = commission
		}
	}
	if len(fields) > 0 {
		return domain.Sale{}, apperrors.NewValidationError(fields)
	}

	if req.ReservationNumber != nil {
		taken, err := s.saleRepo.ReservationExists(ctx, sale.ReservationNumber, sale.SaleID)
		if err != nil {
			return domain.Sale{}, err
		}
		if taken {
			return domain.Sale{}, apperrors.NewValidationError(map[string]string{
				"reservationNumber": "an active sale already exists for this reservation",
			})
		}
	}

	now := s.now()
	sale.LastUpdatedAt = now
	sale.LastUpdatedBy = actor.UserID

	updated, err := s.saleRepo.UpdateSale(ctx, sale)
	if err != nil {
		s.LogError(ctx, err, "Failed to update sale", "sale_id", saleID)
		return domain.Sale{}, err
	}

	s.publish(domain.SaleEvent{Type: domain.SaleEventUpdated, Sale: updated, OccurredAt: now})
	return updated, nil
}

func (s *saleService) CancelSale(ctx context.Context, actor domain.Actor, saleID string) error {
	sale, err := s.saleRepo.GetSaleByID(ctx, saleID)
	if err != nil {
		return err
	}
	if !s.canAccessSale(actor, sale) {
		return apperrors.ErrForbidden
	}
	if !sale.IsActive() {
		return apperrors.NewValidationError(map[string]string{"status": "sale is already cancelled"})
	}

	if err := s.saleRepo.CancelSale(ctx, saleID, actor.UserID); err != nil {
		return err
	}
	s.LogInfo(ctx, "Sale cancelled", "sale_id", saleID)

	now := s.now()
	sale.Status = domain.SaleStatusCancelled
	sale.LastUpdatedAt = now
	sale.LastUpdatedBy = actor.UserID
	s.publish(domain.SaleEvent{Type: domain.SaleEventCancelled, Sale: sale, OccurredAt: now})
	return nil
}

// parseSaleDate parses and validates the YYYY-MM-DD sale date. The second
// return is a validation message, empty when the date is acceptable.
func (s *saleService) parseSaleDate(value string) (time.Time, string) {
	saleDate, err := time.Parse(saleDateLayout, value)
	if err != nil {
		return time.Time{}, "invalid date, expected YYYY-MM-DD"
	}
	if msg := utils.ValidateSaleDate(saleDate, s.now()); msg != "" {
		return time.Time{}, msg
	}
	return saleDate, ""
}

// resolveInsuranceTypes checks the requested catalog entries and returns
// the summed commission snapshot. Duplicated IDs are collapsed.
func (s *saleService) resolveInsuranceTypes(ctx context.Context, ids []string) (decimal.Decimal, []string, string) {
	unique := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		unique = append(unique, id)
	}
	if len(unique) == 0 {
		return decimal.Zero, nil, "at least one insurance type is required"
	}

	types, err := s.insuranceTypeRepo.GetInsuranceTypesByIDs(ctx, unique)
	if err != nil {
		s.LogError(ctx, err, "Failed to load insurance types")
		return decimal.Zero, nil, "could not verify insurance types"
	}
	if len(types) != len(unique) {
		return decimal.Zero, nil, "one or more insurance types do not exist"
	}

	commission := decimal.Zero
	for _, it := range types {
		if !it.IsActive {
			return decimal.Zero, nil, fmt.Sprintf("insurance type %q is no longer offered", it.Name)
		}
		commission = commission.Add(it.CommissionAmount)
	}
	return commission, unique, ""
}

func (s *saleService) publish(event domain.SaleEvent) {
	if s.publisher != nil {
		s.publisher.Publish(event)
	}
}
