package export_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/velorent/insurance_sales_app/internal/core/domain"
	"github.com/velorent/insurance_sales_app/internal/export"
)

func sampleSales() []domain.Sale {
	return []domain.Sale{
		{
			EmployeeName:      "Julie",
			ClientName:        "Alice Martin",
			ReservationNumber: "RES-1001",
			CommissionAmount:  decimal.RequireFromString("15.00"),
			Status:            domain.SaleStatusActive,
			SaleDate:          time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			EmployeeName:      "Marc",
			ClientName:        "Bob Smith",
			ReservationNumber: "RES-1002",
			CommissionAmount:  decimal.RequireFromString("8.00"),
			Status:            domain.SaleStatusActive,
			SaleDate:          time.Date(2025, time.June, 11, 0, 0, 0, 0, time.UTC),
		},
	}
}

func TestSalesExcelRoundTrip(t *testing.T) {
	data, err := export.SalesExcel(sampleSales())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Sales")
	require.NoError(t, err)

	// Header, two sales, total row.
	require.Len(t, rows, 4)
	assert.Equal(t, "Sale date", rows[0][0])
	assert.Equal(t, "Julie", rows[1][1])
	assert.Equal(t, "RES-1002", rows[2][3])
	assert.Equal(t, "Total", rows[3][3])
	assert.Equal(t, "23", rows[3][4])
}

func TestSalesExcelEmpty(t *testing.T) {
	data, err := export.SalesExcel(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Sales")
	require.NoError(t, err)
	require.Len(t, rows, 2) // header plus zero total
	assert.Equal(t, "0", rows[1][4])
}

func TestSalesPDF(t *testing.T) {
	data, err := export.SalesPDF("Sales report", sampleSales())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "output should be a PDF document")
}
