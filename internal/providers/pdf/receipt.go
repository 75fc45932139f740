package pdf

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

type ReceiptData struct {
	StoreName  string
	StoreEmail string

	OrderNumber   string
	OrderDate     string
	PaymentMethod string
	PaymentStatus string
	Status        string

	CustomerName  string
	CustomerEmail string

	ShippingAddress string
	ShippingCity    string
	ShippingState   string
	ShippingPostal  string
	ShippingCountry string

	Items []ReceiptItem

	CurrencySymbol string
	Total          string
}

type ReceiptItem struct {
	Description string
	Qty         int
	UnitPrice   string
	Amount      string
}

func (p *PDFProvider) GenerateOrderReceipt(ctx context.Context, receipt ReceiptData) (io.Reader, error) {
	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(25,
		text.NewCol(6, receipt.StoreName, props.Text{
			Size:  20,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
		text.NewCol(6, "Order Receipt", props.Text{
			Size:  14,
			Align: align.Right,
			Top:   3,
		}),
	)

	// Order meta
	m.AddRow(24,
		col.New(6).Add(
			text.New("Order number: "+receipt.OrderNumber, props.Text{Top: 0}),
			text.New("Order date: "+receipt.OrderDate, props.Text{Top: 4}),
			text.New("Payment method: "+receipt.PaymentMethod, props.Text{Top: 8}),
			text.New("Payment status: "+receipt.PaymentStatus, props.Text{Top: 12}),
			text.New("Order status: "+receipt.Status, props.Text{Top: 16}),
		),
		col.New(6),
	)

	// Customer and shipping
	m.AddRow(36,
		col.New(6).Add(
			text.New("Billed to", props.Text{Style: fontstyle.Bold}),
			text.New(receipt.CustomerName, props.Text{Top: 5}),
			text.New(receipt.CustomerEmail, props.Text{Top: 9}),
		),
		col.New(6).Add(
			text.New("Ship to", props.Text{Style: fontstyle.Bold}),
			text.New(receipt.ShippingAddress, props.Text{Top: 5}),
			text.New(receipt.ShippingCity+", "+receipt.ShippingState+" "+receipt.ShippingPostal, props.Text{Top: 9}),
			text.New(receipt.ShippingCountry, props.Text{Top: 13}),
		),
	)

	// Table header
	m.AddRow(10,
		text.NewCol(6, "Item", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, "Qty", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Unit price", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Amount", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	for _, item := range receipt.Items {
		m.AddRow(12,
			text.NewCol(6, item.Description, props.Text{Size: 9}),
			text.NewCol(2, fmt.Sprintf("%d", item.Qty), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, item.UnitPrice, props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, item.Amount, props.Text{Size: 9, Align: align.Right}),
		)
	}

	m.AddRow(12,
		col.New(8),
		text.NewCol(2, "Total", props.Text{Style: fontstyle.Bold, Size: 10}),
		text.NewCol(2, receipt.Total, props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right}),
	)

	if receipt.StoreEmail != "" {
		m.AddRow(15,
			text.NewCol(12, "Questions? Contact us at "+receipt.StoreEmail, props.Text{
				Size: 8,
				Top:  6,
			}),
		)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}

	return bytes.NewReader(doc.GetBytes()), nil
}
