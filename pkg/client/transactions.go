package client

import (
	"context"
	"gitlab.com/ignitionrobotics/billing/paystack/pkg/api"
	"strconv"
)

// Initialize initializes a transaction from the backend. The amount is converted to minor units.
// Paystack docs: https://paystack.com/docs/api/transaction/#initialize
func (c *Client) Initialize(ctx context.Context, req api.InitializeRequest) (api.Response, error) {
	return c.call(ctx, opInitialize, api.Params{
		"email":  req.Email,
		"amount": req.Amount,
	}, req.Params)
}

// Verify confirms the status of a transaction.
// Paystack docs: https://paystack.com/docs/api/transaction/#verify
func (c *Client) Verify(ctx context.Context, reference string) (api.Response, error) {
	return c.call(ctx, opVerify, api.Params{"reference": reference}, nil)
}

// List lists the transactions carried out on the integration.
// Paystack docs: https://paystack.com/docs/api/transaction/#list
func (c *Client) List(ctx context.Context, params api.Params) (api.Response, error) {
	return c.call(ctx, opList, nil, params)
}

// Fetch gets the details of a transaction carried out on the integration.
// The id must be numeric, references are not accepted.
// Paystack docs: https://paystack.com/docs/api/transaction/#fetch
func (c *Client) Fetch(ctx context.Context, id string) (api.Response, error) {
	if len(id) > 0 {
		if _, err := strconv.ParseUint(id, 10, 64); err != nil {
			return api.Response{}, clone(api.ErrNonNumericID)
		}
	}
	return c.call(ctx, opFetch, api.Params{"id": id}, nil)
}

// ChargeAuthorization charges all authorizations marked as reusable. The amount is converted to minor units.
// Paystack docs: https://paystack.com/docs/api/transaction/#charge-authorization
func (c *Client) ChargeAuthorization(ctx context.Context, req api.ChargeAuthorizationRequest) (api.Response, error) {
	return c.call(ctx, opChargeAuthorization, api.Params{
		"email":              req.Email,
		"amount":             req.Amount,
		"authorization_code": req.AuthorizationCode,
	}, req.Params)
}

// Timeline views the timeline of a transaction.
// Paystack docs: https://paystack.com/docs/api/transaction/#view-timeline
func (c *Client) Timeline(ctx context.Context, idOrReference string) (api.Response, error) {
	return c.call(ctx, opTimeline, api.Params{"id_or_reference": idOrReference}, nil)
}

// Totals returns the total amount received on the integration.
// Paystack docs: https://paystack.com/docs/api/transaction/#totals
func (c *Client) Totals(ctx context.Context, params api.Params) (api.Response, error) {
	return c.call(ctx, opTotals, nil, params)
}
