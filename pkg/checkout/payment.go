package checkout

import (
	"context"
	"net/http"

	"github.com/inplat-tech/checkout-go/pkg/dispatch"
)

const (
	// DefaultViewType is the payment page presentation used when
	// RegisterParams leaves ViewType empty.
	DefaultViewType = "REDIRECT"
	// DefaultSessionTimeoutSecs bounds the payment session when
	// RegisterParams leaves SessionTimeoutSecs unset.
	DefaultSessionTimeoutSecs = 600
)

// RegisterParams describes a one-stage or two-stage payment registration.
// Amount is in tiyin, without commission. Currency is the ISO 4217 numeric
// code, e.g. 860 for UZS.
type RegisterParams struct {
	Amount             float64
	ClientID           string
	Currency           int
	OrderNumber        string
	PaymentDetails     string
	SuccessURL         string
	FailureURL         string
	ViewType           string         // defaults to DefaultViewType
	PaymentParams      map[string]any // defaults to {"payType": "ONE_STEP"}
	MerchantParams     map[string]any
	SessionTimeoutSecs int // defaults to DefaultSessionTimeoutSecs
}

// Register submits a payment registration request.
func (c *Client) Register(ctx context.Context, p RegisterParams) *dispatch.Future {
	viewType := p.ViewType
	if viewType == "" {
		viewType = DefaultViewType
	}
	sessionTimeout := p.SessionTimeoutSecs
	if sessionTimeout <= 0 {
		sessionTimeout = DefaultSessionTimeoutSecs
	}
	paymentParams := p.PaymentParams
	if paymentParams == nil {
		paymentParams = map[string]any{"payType": "ONE_STEP"}
	}

	data := map[string]any{
		"amount":             p.Amount,
		"clientId":           p.ClientID,
		"currency":           p.Currency,
		"paymentDetails":     p.PaymentDetails,
		"orderNumber":        p.OrderNumber,
		"successUrl":         p.SuccessURL,
		"failureUrl":         p.FailureURL,
		"viewType":           viewType,
		"paymentParams":      paymentParams,
		"merchantParams":     p.MerchantParams,
		"sessionTimeoutSecs": sessionTimeout,
	}
	return c.d.Send(ctx, "payment/register", data, http.MethodPost)
}

// MerchantPay pays an order with stored payment data, for server-to-server
// merchants.
func (c *Client) MerchantPay(ctx context.Context, processData map[string]any, orderID string) *dispatch.Future {
	data := map[string]any{
		"processData": processData,
		"orderId":     orderID,
	}
	return c.d.Send(ctx, "payment/merchantPay", data, http.MethodPost)
}

// OrderStatus fetches the current payment status of an order.
func (c *Client) OrderStatus(ctx context.Context, orderID string) *dispatch.Future {
	data := map[string]any{
		"orderId": orderID,
	}
	return c.d.Send(ctx, "payment/getOrderStatus", data, http.MethodPost)
}

// OperationState fetches the state of a checkout-side operation.
func (c *Client) OperationState(ctx context.Context, operationID string) *dispatch.Future {
	data := map[string]any{
		"operationId": operationID,
	}
	return c.d.Send(ctx, "payment/getOperationState", data, http.MethodPost)
}
