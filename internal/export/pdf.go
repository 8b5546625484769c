package export

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/velorent/insurance_sales_app/internal/core/domain"
)

// SalesPDF renders the sales to a printable report with a header, one row
// per sale and a commission total.
func SalesPDF(title string, sales []domain.Sale) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(12,
		text.NewCol(12, title, props.Text{
			Size:  16,
			Style: fontstyle.Bold,
			Align: align.Center,
		}),
	)

	m.AddRow(8,
		text.NewCol(2, "Date", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(3, "Employee", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(3, "Client", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, "Reservation", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, "Commission", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	total := decimal.Zero
	for _, s := range sales {
		total = total.Add(s.CommissionAmount)
		m.AddRow(7,
			text.NewCol(2, s.SaleDate.Format("2006-01-02"), props.Text{Size: 9}),
			text.NewCol(3, s.EmployeeName, props.Text{Size: 9}),
			text.NewCol(3, s.ClientName, props.Text{Size: 9}),
			text.NewCol(2, s.ReservationNumber, props.Text{Size: 9}),
			text.NewCol(2, s.CommissionAmount.StringFixed(2), props.Text{Size: 9, Align: align.Right}),
		)
	}

	m.AddRow(10,
		col.New(8),
		text.NewCol(2, "Total", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, total.StringFixed(2), props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate pdf: %w", err)
	}
	return doc.GetBytes(), nil
}
