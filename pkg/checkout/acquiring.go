package checkout

import (
	"context"
	"net/http"

	"github.com/inplat-tech/checkout-go/pkg/dispatch"
)

// Complete confirms a two-stage payment. Amount is in tiyin.
func (c *Client) Complete(ctx context.Context, orderID string, amount int64) *dispatch.Future {
	data := map[string]any{
		"orderId": orderID,
		"amount":  amount,
	}
	return c.d.Send(ctx, "acquiring/complete", data, http.MethodPost)
}

// Refund returns funds for an order, fully or partially. The transaction
// must already be COMPLETED.
func (c *Client) Refund(ctx context.Context, orderID string, amount int64) *dispatch.Future {
	data := map[string]any{
		"orderId": orderID,
		"amount":  amount,
	}
	return c.d.Send(ctx, "acquiring/refund", data, http.MethodPost)
}

// Reverse releases held funds for an order in the AUTHORIZED state.
func (c *Client) Reverse(ctx context.Context, orderID string, amount int64) *dispatch.Future {
	data := map[string]any{
		"orderId": orderID,
		"amount":  amount,
	}
	return c.d.Send(ctx, "acquiring/reverse", data, http.MethodPost)
}

// Bindings lists the stored payment bindings of a client.
func (c *Client) Bindings(ctx context.Context, clientID string) *dispatch.Future {
	data := map[string]any{
		"clientId": clientID,
	}
	return c.d.Send(ctx, "acquiring/getBindings", data, http.MethodPost)
}
