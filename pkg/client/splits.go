package client

import (
	"context"
	"fmt"
	"gitlab.com/ignitionrobotics/billing/paystack/pkg/api"
)

// CreateSplit creates a split payment on the integration.
// Paystack docs: https://paystack.com/docs/api/split/#create
func (c *Client) CreateSplit(ctx context.Context, req api.CreateSplitRequest) (api.Response, error) {
	for i, sub := range req.Subaccounts {
		if len(sub.Subaccount) == 0 {
			return api.Response{}, api.MissingParameter(fmt.Sprintf("subaccounts[%d].subaccount", i))
		}
	}
	return c.call(ctx, opCreateSplit, api.Params{
		"name":              req.Name,
		"type":              string(req.Type),
		"currency":          req.Currency,
		"subaccounts":       req.Subaccounts,
		"bearer_type":       req.BearerType,
		"bearer_subaccount": req.BearerSubaccount,
	}, nil)
}

// FetchSplit gets the details of a split on the integration.
// Paystack docs: https://paystack.com/docs/api/split/#fetch
func (c *Client) FetchSplit(ctx context.Context, id string) (api.Response, error) {
	return c.call(ctx, opFetchSplit, api.Params{"id": id}, nil)
}
