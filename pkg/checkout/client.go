// Package checkout exposes the payment and acquiring operations of the Uzum
// Checkout API. Every method builds its payload and hands it to the
// dispatcher; the returned future resolves to the decoded response body or a
// typed *dispatch.Error.
package checkout

import (
	"github.com/inplat-tech/checkout-go/pkg/dispatch"
)

// Client issues checkout API calls through a single dispatcher.
type Client struct {
	d *dispatch.Dispatcher
}

// New builds a checkout client. Base URL, session, execution mode, timeout
// and logging are configured through dispatch options.
func New(creds dispatch.Credentials, opts ...dispatch.Option) (*Client, error) {
	d, err := dispatch.New(creds, opts...)
	if err != nil {
		return nil, err
	}
	return &Client{d: d}, nil
}

// Close releases the underlying session. Idempotent.
func (c *Client) Close() { c.d.Close() }
