package client

import (
	"gitlab.com/ignitionrobotics/billing/paystack/pkg/api"
	"net/http"
)

// operation describes a single Paystack endpoint.
type operation struct {
	// name identifies the operation in logs and metrics.
	name string

	// method is the HTTP method.
	method string

	// path is the endpoint path. If pathParam is set, it's joined to the path as the last segment.
	path string

	// pathParam is the required field sent as path segment instead of being part of the payload.
	pathParam string

	// required lists the fields that must be present and non-zero, in the order they are checked.
	required []string

	// optional is the allow-list of optional fields forwarded to Paystack.
	optional []string

	// defaults holds values for optional fields not provided by the caller.
	defaults api.Params

	// minorUnits lists the fields converted from major to minor currency units.
	minorUnits []string

	// success is the message used in the response envelope.
	success string

	// notFound, if set, replaces any 404 returned by Paystack.
	notFound *api.Error
}

// write returns true if the operation sends a JSON body.
func (op operation) write() bool {
	return op.method == http.MethodPost || op.method == http.MethodPut
}

var (
	opInitialize = operation{
		name:     "initialize",
		method:   http.MethodPost,
		path:     "/transaction/initialize",
		required: []string{"email", "amount"},
		optional: []string{
			"currency",
			"reference",
			"callback_url",
			"plan",
			"invoice_limit",
			"metadata",
			"channels",
			"split_code",
			"subaccount",
			"transaction_charge",
			"bearer",
		},
		minorUnits: []string{"amount"},
		success:    "Transaction initialized successfully",
	}

	opVerify = operation{
		name:      "verify",
		method:    http.MethodGet,
		path:      "/transaction/verify",
		pathParam: "reference",
		required:  []string{"reference"},
		success:   "Transaction details retrieved successfully",
	}

	opList = operation{
		name:     "list",
		method:   http.MethodGet,
		path:     "/transaction",
		optional: []string{"per_page", "page", "customer", "terminalid", "status", "from", "to", "amount"},
		success:  "Transactions retrieved successfully",
	}

	opFetch = operation{
		name:      "fetch",
		method:    http.MethodGet,
		path:      "/transaction",
		pathParam: "id",
		required:  []string{"id"},
		success:   "Transaction retrieved successfully",
		notFound:  api.ErrTransactionNotFound,
	}

	opChargeAuthorization = operation{
		name:     "charge_authorization",
		method:   http.MethodPost,
		path:     "/transaction/charge_authorization",
		required: []string{"email", "amount", "authorization_code"},
		optional: []string{
			"reference",
			"currency",
			"metadata",
			"channels",
			"subaccount",
			"transaction_charge",
			"bearer",
			"queue",
		},
		minorUnits: []string{"amount"},
		success:    "Transaction charged successfully",
	}

	opTimeline = operation{
		name:      "timeline",
		method:    http.MethodGet,
		path:      "/transaction/timeline",
		pathParam: "id_or_reference",
		required:  []string{"id_or_reference"},
		success:   "Transaction timeline retrieved successfully",
		notFound:  api.ErrTransactionNotFound,
	}

	opTotals = operation{
		name:     "totals",
		method:   http.MethodGet,
		path:     "/transaction/totals",
		optional: []string{"per_page", "page", "from_date", "to_date"},
		defaults: api.Params{
			"per_page": 50,
			"page":     1,
		},
		success: "Transaction totals retrieved successfully",
	}

	opExport = operation{
		name:     "export",
		method:   http.MethodGet,
		path:     "/transaction/export",
		optional: []string{"from", "to", "customer", "status", "currency", "amount", "settled", "settlement", "payment_page"},
		success:  "Transactions exported successfully",
	}

	opCreateSplit = operation{
		name:     "create_split",
		method:   http.MethodPost,
		path:     "/split",
		required: []string{"name", "type", "currency", "subaccounts", "bearer_type", "bearer_subaccount"},
		success:  "Transaction split created successfully",
	}

	opFetchSplit = operation{
		name:      "fetch_split",
		method:    http.MethodGet,
		path:      "/split",
		pathParam: "id",
		required:  []string{"id"},
		success:   "Transaction split retrieved successfully",
	}
)
