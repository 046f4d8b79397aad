package fake

import (
	"context"
	"github.com/stretchr/testify/mock"
	"gitlab.com/ignitionrobotics/billing/paystack/pkg/api"
)

var _ api.Paystack = (*Client)(nil)

// Client is a fake implementation of api.Paystack.
type Client struct {
	mock.Mock
}

// NewClient initializes a new fake Paystack client.
func NewClient() *Client {
	return &Client{}
}

// Initialize mocks an Initialize call.
func (c *Client) Initialize(ctx context.Context, req api.InitializeRequest) (api.Response, error) {
	args := c.Called(ctx, req)
	return args.Get(0).(api.Response), args.Error(1)
}

// Verify mocks a Verify call.
func (c *Client) Verify(ctx context.Context, reference string) (api.Response, error) {
	args := c.Called(ctx, reference)
	return args.Get(0).(api.Response), args.Error(1)
}

// List mocks a List call.
func (c *Client) List(ctx context.Context, params api.Params) (api.Response, error) {
	args := c.Called(ctx, params)
	return args.Get(0).(api.Response), args.Error(1)
}

// Fetch mocks a Fetch call.
func (c *Client) Fetch(ctx context.Context, id string) (api.Response, error) {
	args := c.Called(ctx, id)
	return args.Get(0).(api.Response), args.Error(1)
}

// ChargeAuthorization mocks a ChargeAuthorization call.
func (c *Client) ChargeAuthorization(ctx context.Context, req api.ChargeAuthorizationRequest) (api.Response, error) {
	args := c.Called(ctx, req)
	return args.Get(0).(api.Response), args.Error(1)
}

// Timeline mocks a Timeline call.
func (c *Client) Timeline(ctx context.Context, idOrReference string) (api.Response, error) {
	args := c.Called(ctx, idOrReference)
	return args.Get(0).(api.Response), args.Error(1)
}

// Totals mocks a Totals call.
func (c *Client) Totals(ctx context.Context, params api.Params) (api.Response, error) {
	args := c.Called(ctx, params)
	return args.Get(0).(api.Response), args.Error(1)
}

// Export mocks an Export call.
func (c *Client) Export(ctx context.Context, req api.ExportRequest) (api.Response, error) {
	args := c.Called(ctx, req)
	return args.Get(0).(api.Response), args.Error(1)
}

// CreateSplit mocks a CreateSplit call.
func (c *Client) CreateSplit(ctx context.Context, req api.CreateSplitRequest) (api.Response, error) {
	args := c.Called(ctx, req)
	return args.Get(0).(api.Response), args.Error(1)
}

// FetchSplit mocks a FetchSplit call.
func (c *Client) FetchSplit(ctx context.Context, id string) (api.Response, error) {
	args := c.Called(ctx, id)
	return args.Get(0).(api.Response), args.Error(1)
}

// Close mocks a Close call.
func (c *Client) Close() error {
	args := c.Called()
	return args.Error(0)
}
