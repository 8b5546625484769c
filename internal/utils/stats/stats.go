// Package stats holds the pure aggregation math behind the dashboards.
// Functions here take fully loaded sale slices and never touch storage,
// which keeps the arithmetic trivially testable.
package stats

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/velorent/insurance_sales_app/internal/core/domain"
)

var hundred = decimal.NewFromInt(100)

// Summarize folds sales into the dashboard headline numbers. Cancelled
// sales never count. The average is zero when there are no sales.
func Summarize(sales []domain.Sale) domain.SalesSummary {
	summary := domain.SalesSummary{
		TotalCommission: decimal.Zero,
		AverageAmount:   decimal.Zero,
	}
	for _, s := range sales {
		if !s.IsActive() {
			continue
		}
		summary.TotalCommission = summary.TotalCommission.Add(s.CommissionAmount)
		summary.SaleCount++
	}
	if summary.SaleCount > 0 {
		summary.AverageAmount = summary.TotalCommission.Div(decimal.NewFromInt(int64(summary.SaleCount)))
	}
	return summary
}

// MonthlyBuckets splits sales into trailing calendar-month buckets ending
// with the month of now, oldest first. Every bucket is present even when
// empty. Sales outside the window are ignored.
func MonthlyBuckets(sales []domain.Sale, months int, now time.Time) []domain.MonthBucket {
	if months <= 0 {
		return []domain.MonthBucket{}
	}
	buckets := make([]domain.MonthBucket, 0, months)
	index := make(map[string]int, months)
	for i := months - 1; i >= 0; i-- {
		// Anchor on the first of the month so AddDate never rolls over
		// on short months.
		anchor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -i, 0)
		b := domain.MonthBucket{
			Label:           anchor.Month().String()[:3],
			Year:            anchor.Year(),
			Month:           anchor.Month(),
			TotalCommission: decimal.Zero,
		}
		index[bucketKey(b.Year, b.Month)] = len(buckets)
		buckets = append(buckets, b)
	}
	for _, s := range sales {
		if !s.IsActive() {
			continue
		}
		pos, ok := index[bucketKey(s.SaleDate.Year(), s.SaleDate.Month())]
		if !ok {
			continue
		}
		buckets[pos].TotalCommission = buckets[pos].TotalCommission.Add(s.CommissionAmount)
		buckets[pos].SaleCount++
	}
	return buckets
}

func bucketKey(year int, month time.Month) string {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
}

// ByInsuranceType groups the current month's sales by insurance type name.
// Names are compared exactly, so differently cased catalog entries stay
// separate. A sale covering several types contributes its full commission
// to each of them. Results are ordered by commission descending, then name.
func ByInsuranceType(sales []domain.Sale, typeNamesByID map[string]string, now time.Time) []domain.InsuranceTypeBreakdown {
	grouped := make(map[string]*domain.InsuranceTypeBreakdown)
	var order []string
	for _, s := range sales {
		if !s.IsActive() {
			continue
		}
		if s.SaleDate.Year() != now.Year() || s.SaleDate.Month() != now.Month() {
			continue
		}
		for _, typeID := range s.InsuranceTypeIDs {
			name, ok := typeNamesByID[typeID]
			if !ok {
				continue
			}
			row, ok := grouped[name]
			if !ok {
				row = &domain.InsuranceTypeBreakdown{TypeName: name, TotalCommission: decimal.Zero}
				grouped[name] = row
				order = append(order, name)
			}
			row.TotalCommission = row.TotalCommission.Add(s.CommissionAmount)
			row.SaleCount++
		}
	}
	out := make([]domain.InsuranceTypeBreakdown, 0, len(order))
	for _, name := range order {
		out = append(out, *grouped[name])
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].TotalCommission.Equal(out[j].TotalCommission) {
			return out[i].TotalCommission.GreaterThan(out[j].TotalCommission)
		}
		return out[i].TypeName < out[j].TypeName
	})
	return out
}

// ByEmployee rolls sales up per employee, preserving the order in which
// employees first appear in the input.
func ByEmployee(sales []domain.Sale) []domain.EmployeeSales {
	grouped := make(map[string]*domain.EmployeeSales)
	var order []string
	for _, s := range sales {
		if !s.IsActive() {
			continue
		}
		row, ok := grouped[s.EmployeeID]
		if !ok {
			row = &domain.EmployeeSales{
				EmployeeID:      s.EmployeeID,
				EmployeeName:    s.EmployeeName,
				TotalCommission: decimal.Zero,
			}
			grouped[s.EmployeeID] = row
			order = append(order, s.EmployeeID)
		}
		row.TotalCommission = row.TotalCommission.Add(s.CommissionAmount)
		row.SaleCount++
	}
	out := make([]domain.EmployeeSales, 0, len(order))
	for _, id := range order {
		out = append(out, *grouped[id])
	}
	return out
}

// TopSellers ranks employees by total commission, highest first, keeping
// the original relative order for ties, and truncates to limit.
func TopSellers(sales []domain.Sale, limit int) []domain.EmployeeSales {
	ranked := ByEmployee(sales)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalCommission.GreaterThan(ranked[j].TotalCommission)
	})
	if limit >= 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// Progress measures how far the given sales take an objective. Only active
// sales dated inside the objective period count, boundaries included.
// Percentages are clamped to [0, 100] and a zero target always yields zero.
func Progress(o domain.Objective, sales []domain.Sale, now time.Time) domain.ObjectiveProgress {
	achieved := decimal.Zero
	count := 0
	for _, s := range sales {
		if !s.IsActive() || !o.Contains(s.SaleDate) {
			continue
		}
		achieved = achieved.Add(s.CommissionAmount)
		count++
	}
	return domain.ObjectiveProgress{
		Objective:                o,
		AchievedAmount:           achieved,
		AchievedSalesCount:       count,
		ProgressPercentageAmount: percentClamped(achieved, o.TargetAmount),
		ProgressPercentageSales:  percentClamped(decimal.NewFromInt(int64(count)), decimal.NewFromInt(int64(o.TargetSalesCount))),
		DaysRemaining:            daysRemaining(o.PeriodEnd, now),
	}
}

func percentClamped(achieved, target decimal.Decimal) decimal.Decimal {
	if target.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	pct := achieved.Div(target).Mul(hundred)
	if pct.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	if pct.GreaterThan(hundred) {
		return hundred
	}
	return pct
}

func daysRemaining(periodEnd, now time.Time) int {
	remaining := periodEnd.Sub(now)
	if remaining <= 0 {
		return 0
	}
	days := int(remaining / (24 * time.Hour))
	if remaining%(24*time.Hour) != 0 {
		days++
	}
	return days
}
