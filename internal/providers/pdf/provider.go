package pdf

import (
	"context"
	"io"
)

type Provider interface {
	GenerateOrderReceipt(ctx context.Context, data ReceiptData) (io.Reader, error)
}

type PDFProvider struct{}

func New() Provider {
	return &PDFProvider{}
}
