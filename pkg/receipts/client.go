// Package receipts exposes the Uzum receipt-producer API: fiscal receipt
// generation and refund, plus a health probe. Authentication uses the mTLS
// client fingerprint header instead of the merchant credential scheme, so the
// client assembles its own header set on top of the shared dispatcher.
package receipts

import (
	"context"
	"net/http"
	"strings"

	"github.com/inplat-tech/checkout-go/pkg/dispatch"
)

// DefaultBaseURL is the documented receipt-producer endpoint.
const DefaultBaseURL = "https://www.inplat-tech.ru/api/receipt/v1/"

// Client issues receipt-producer API calls through a single dispatcher.
type Client struct {
	d *dispatch.Dispatcher
}

// New builds a receipt-producer client authenticated by the fingerprint
// obtained from successful mTLS. Dispatch options may override the base URL,
// session, execution mode, timeout and logging.
func New(sslClientFingerprint string, opts ...dispatch.Option) (*Client, error) {
	if strings.TrimSpace(sslClientFingerprint) == "" {
		return nil, dispatch.NewConfigError("ssl client fingerprint is required")
	}

	// Only gzip is advertised; see the credential header set in dispatch.
	headers := map[string]string{
		"ssl-client-fingerprint": sslClientFingerprint,
		"Accept":                 "application/json",
		"Accept-Encoding":        "gzip",
		"Cache-Control":          "no-cache",
		"Content-Type":           "application/json",
	}

	// Caller options come last so they can override the default base URL.
	d, err := dispatch.NewWithHeaders(headers, append([]dispatch.Option{dispatch.WithBaseURL(DefaultBaseURL)}, opts...)...)
	if err != nil {
		return nil, err
	}
	return &Client{d: d}, nil
}

// Close releases the underlying session. Idempotent.
func (c *Client) Close() { c.d.Close() }

// Health probes basic service availability.
func (c *Client) Health(ctx context.Context) *dispatch.Future {
	return c.d.Send(ctx, "health", nil, http.MethodGet)
}

// GenerateParams describes one fiscal receipt. Amounts are in tiyin.
// ReceiptType is 0 for Sale, 1 for Prepaid.
type GenerateParams struct {
	OperationID string
	DateTime    string
	CashAmount  int64
	CardAmount  int64
	PhoneNumber string
	Items       []map[string]any
	PaymentID   string // optional, omitted from the payload when empty
	ReceiptType int
}

// GenerateReceipt requests fiscal receipt generation.
func (c *Client) GenerateReceipt(ctx context.Context, p GenerateParams) *dispatch.Future {
	data := map[string]any{
		"operation_id": p.OperationID,
		"date_time":    p.DateTime,
		"receipt_type": p.ReceiptType,
		"cash_amount":  p.CashAmount,
		"card_amount":  p.CardAmount,
		"phone_number": p.PhoneNumber,
		"items":        p.Items,
	}
	if p.PaymentID != "" {
		data["payment_id"] = p.PaymentID
	}
	return c.d.Send(ctx, "fiscal_receipt_generation", data, http.MethodPost)
}

// RefundParams describes a fiscal receipt refund. Amounts are in tiyin.
type RefundParams struct {
	OperationID string
	DateTime    string
	CashAmount  int64
	CardAmount  int64
	Items       []map[string]any
	PaymentID   string // optional, omitted from the payload when empty
	ReceiptType int
}

// RefundReceipt requests a fiscal receipt refund.
func (c *Client) RefundReceipt(ctx context.Context, p RefundParams) *dispatch.Future {
	data := map[string]any{
		"operation_id": p.OperationID,
		"date_time":    p.DateTime,
		"receipt_type": p.ReceiptType,
		"cash_amount":  p.CashAmount,
		"card_amount":  p.CardAmount,
		"items":        p.Items,
	}
	if p.PaymentID != "" {
		data["payment_id"] = p.PaymentID
	}
	return c.d.Send(ctx, "fiscal_receipt_refund", data, http.MethodPost)
}
