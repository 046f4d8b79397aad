package api

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"
)

// Params contains the optional parameters of a Paystack operation. Keys that the operation doesn't
// recognize are dropped before the request is sent.
type Params map[string]interface{}

// Response is the envelope returned by every successful Paystack operation.
type Response struct {
	// StatusCode is the HTTP status code returned by Paystack.
	StatusCode int `json:"status_code"`

	// Message is a fixed message describing the operation that succeeded.
	Message string `json:"message"`

	// ResponseFromAPI contains the decoded body returned by Paystack, untouched.
	//	Example: res.ResponseFromAPI["data"].(map[string]interface{})["reference"]
	ResponseFromAPI map[string]interface{} `json:"response_from_api"`

	// Raw holds the exact body returned by Paystack.
	Raw json.RawMessage `json:"-"`
}

// Decode unmarshals the raw Paystack body into v.
func (r Response) Decode(v interface{}) error {
	return json.Unmarshal(r.Raw, v)
}

// Data returns the "data" object of the Paystack body, or nil if the body has none.
func (r Response) Data() map[string]interface{} {
	data, _ := r.ResponseFromAPI["data"].(map[string]interface{})
	return data
}

// InitializeRequest is the input for the TransactionsV1.Initialize method.
type InitializeRequest struct {
	// Email is the customer's email address.
	Email string

	// Amount is the amount to charge in major units (e.g. naira). It's converted to minor units (kobo)
	// before being sent to Paystack.
	Amount int64

	// Params contains optional fields such as currency, reference or callback_url.
	Params Params
}

// ChargeAuthorizationRequest is the input for the TransactionsV1.ChargeAuthorization method.
type ChargeAuthorizationRequest struct {
	// Email is the customer's email address.
	Email string

	// Amount is the amount to charge in major units. It's converted to minor units before being sent
	// to Paystack.
	Amount int64

	// AuthorizationCode is a reusable authorization code returned by a previous successful transaction.
	AuthorizationCode string

	// Params contains optional fields such as reference, currency or queue.
	Params Params
}

// ExportRequest is the input for the TransactionsV1.Export method.
type ExportRequest struct {
	// Destination is the local path where the exported report is written.
	Destination string

	// Params contains optional filters such as from, to, status or settled.
	Params Params
}

// SplitSubaccount is a subaccount taking part in a transaction split.
type SplitSubaccount struct {
	// Subaccount is the subaccount code.
	//	Example: ACCT_j1ibmm5vpj5ior7
	Subaccount string `json:"subaccount"`

	// Share is the weight of this subaccount, either a percentage or a flat amount depending on the split type.
	Share int64 `json:"share"`
}

// SplitType identifies how shares of a split are computed.
type SplitType string

const (
	// SplitTypePercentage splits the settlement by percentage.
	SplitTypePercentage SplitType = "percentage"
	// SplitTypeFlat splits the settlement by flat amounts.
	SplitTypeFlat SplitType = "flat"
)

// CreateSplitRequest is the input for the SplitsV1.CreateSplit method.
type CreateSplitRequest struct {
	// Name is the name of the split.
	Name string

	// Type is the split type.
	Type SplitType

	// Currency is any of the currencies supported by Paystack.
	//	Examples: NGN, GHS.
	Currency string

	// Subaccounts is the ordered list of subaccounts and their shares.
	Subaccounts []SplitSubaccount

	// BearerType is who bears the Paystack charges.
	//	Any of: subaccount, account, all-proportional, all.
	BearerType string

	// BearerSubaccount is the subaccount code bearing the charges.
	BearerSubaccount string
}

// TransactionsV1 holds the methods to manage transactions in Paystack.
type TransactionsV1 interface {
	// Initialize initializes a transaction and returns an authorization URL and reference.
	Initialize(ctx context.Context, req InitializeRequest) (Response, error)

	// Verify returns the status of the transaction identified by the given reference.
	Verify(ctx context.Context, reference string) (Response, error)

	// List returns the transactions carried out on the integration.
	List(ctx context.Context, params Params) (Response, error)

	// Fetch returns a single transaction by its numeric ID.
	Fetch(ctx context.Context, id string) (Response, error)

	// ChargeAuthorization charges an authorization previously obtained from a successful transaction.
	ChargeAuthorization(ctx context.Context, req ChargeAuthorizationRequest) (Response, error)

	// Timeline returns the timeline of a transaction identified by ID or reference.
	Timeline(ctx context.Context, idOrReference string) (Response, error)

	// Totals returns the total amount received on the integration.
	Totals(ctx context.Context, params Params) (Response, error)

	// Export exports a list of transactions and writes the report to req.Destination.
	Export(ctx context.Context, req ExportRequest) (Response, error)
}

// SplitsV1 holds the methods to configure transaction splits in Paystack.
type SplitsV1 interface {
	// CreateSplit creates a split payment on the integration.
	CreateSplit(ctx context.Context, req CreateSplitRequest) (Response, error)

	// FetchSplit returns the split identified by the given ID.
	FetchSplit(ctx context.Context, id string) (Response, error)
}

// Paystack groups every operation exposed by the Paystack client.
type Paystack interface {
	TransactionsV1
	SplitsV1
	// Close releases the resources held by the client.
	Close() error
}

// NewReference generates a random transaction reference of 32 hexadecimal characters.
func NewReference() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
