// Package export renders sale listings to downloadable documents.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/velorent/insurance_sales_app/internal/core/domain"
)

const salesSheetName = "Sales"

var salesHeader = []string{"Sale date", "Employee", "Client", "Reservation", "Commission", "Status", "Notes"}

// SalesExcel renders the sales to an xlsx workbook with a header row and a
// trailing total.
func SalesExcel(sales []domain.Sale) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(salesSheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to remove default sheet: %w", err)
	}

	for i, title := range salesHeader {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(salesSheetName, cell, title); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	total := 0.0
	for rowIdx, s := range sales {
		commission, _ := s.CommissionAmount.Float64()
		total += commission
		values := []any{
			s.SaleDate.Format("2006-01-02"),
			s.EmployeeName,
			s.ClientName,
			s.ReservationNumber,
			commission,
			string(s.Status),
			s.Notes,
		}
		for colIdx, v := range values {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(salesSheetName, cell, v); err != nil {
				return nil, fmt.Errorf("failed to write sale row: %w", err)
			}
		}
	}

	totalRow := len(sales) + 2
	labelCell, _ := excelize.CoordinatesToCellName(4, totalRow)
	totalCell, _ := excelize.CoordinatesToCellName(5, totalRow)
	if err := f.SetCellValue(salesSheetName, labelCell, "Total"); err != nil {
		return nil, fmt.Errorf("failed to write total label: %w", err)
	}
	if err := f.SetCellValue(salesSheetName, totalCell, total); err != nil {
		return nil, fmt.Errorf("failed to write total: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}
