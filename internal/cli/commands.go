package cli

import (
	"encoding/json"
	"fmt"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gitlab.com/ignitionrobotics/billing/paystack/pkg/api"
	"strconv"
	"strings"
)

// params collects the flags changed by the user into api.Params. keys maps flag names to Paystack field names.
func params(flags *pflag.FlagSet, keys map[string]string) (api.Params, error) {
	out := api.Params{}
	for flag, key := range keys {
		f := flags.Lookup(flag)
		if f == nil || !f.Changed {
			continue
		}
		switch f.Value.Type() {
		case "bool":
			v, err := flags.GetBool(flag)
			if err != nil {
				return nil, err
			}
			out[key] = v
		case "int64":
			v, err := flags.GetInt64(flag)
			if err != nil {
				return nil, err
			}
			out[key] = v
		case "int":
			v, err := flags.GetInt(flag)
			if err != nil {
				return nil, err
			}
			out[key] = v
		case "stringSlice":
			v, err := flags.GetStringSlice(flag)
			if err != nil {
				return nil, err
			}
			out[key] = v
		default:
			out[key] = f.Value.String()
		}
	}
	return out, nil
}

// metadata parses the --metadata flag, if set, into p.
func metadata(flags *pflag.FlagSet, p api.Params) error {
	raw, err := flags.GetString("metadata")
	if err != nil || len(raw) == 0 {
		return err
	}
	var m map[string]interface{}
	if err = json.Unmarshal([]byte(raw), &m); err != nil {
		return fmt.Errorf("invalid metadata: %w", err)
	}
	p["metadata"] = m
	return nil
}

func newInitializeCommand(r *runner) *cobra.Command {
	var req api.InitializeRequest
	cmd := &cobra.Command{
		Use:   "initialize",
		Short: "Initialize a transaction",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := params(cmd.Flags(), map[string]string{
				"currency":           "currency",
				"reference":          "reference",
				"callback-url":       "callback_url",
				"plan":               "plan",
				"invoice-limit":      "invoice_limit",
				"channels":           "channels",
				"split-code":         "split_code",
				"subaccount":         "subaccount",
				"transaction-charge": "transaction_charge",
				"bearer":             "bearer",
			})
			if err != nil {
				return err
			}
			if err = metadata(cmd.Flags(), p); err != nil {
				return err
			}
			if _, ok := p["reference"]; !ok {
				p["reference"] = api.NewReference()
			}
			req.Params = p
			return r.run(func(c api.Paystack) (api.Response, error) {
				return c.Initialize(cmd.Context(), req)
			})
		},
	}
	cmd.Flags().StringVar(&req.Email, "email", "", "customer email address")
	cmd.Flags().Int64Var(&req.Amount, "amount", 0, "amount in major currency units")
	cmd.Flags().String("currency", "", "transaction currency, e.g. NGN")
	cmd.Flags().String("reference", "", "unique transaction reference, generated if empty")
	cmd.Flags().String("callback-url", "", "URL to redirect the customer to after payment")
	cmd.Flags().String("plan", "", "plan code")
	cmd.Flags().Int("invoice-limit", 0, "number of times to charge the customer during the plan subscription")
	cmd.Flags().StringSlice("channels", nil, "payment channels, e.g. card,bank")
	cmd.Flags().String("split-code", "", "split code")
	cmd.Flags().String("subaccount", "", "subaccount code")
	cmd.Flags().Int64("transaction-charge", 0, "flat fee in minor units that overrides the subaccount split")
	cmd.Flags().String("bearer", "", "who bears the transaction charges")
	cmd.Flags().String("metadata", "", "JSON object with custom metadata")
	return cmd
}

func newVerifyCommand(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "verify <reference>",
		Short: "Verify a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(func(c api.Paystack) (api.Response, error) {
				return c.Verify(cmd.Context(), args[0])
			})
		},
	}
}

func newListCommand(r *runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := params(cmd.Flags(), map[string]string{
				"per-page":    "per_page",
				"page":        "page",
				"customer":    "customer",
				"terminal-id": "terminalid",
				"status":      "status",
				"from":        "from",
				"to":          "to",
				"amount":      "amount",
			})
			if err != nil {
				return err
			}
			return r.run(func(c api.Paystack) (api.Response, error) {
				return c.List(cmd.Context(), p)
			})
		},
	}
	cmd.Flags().Int("per-page", 50, "records per page")
	cmd.Flags().Int("page", 1, "page to retrieve")
	cmd.Flags().String("customer", "", "customer ID")
	cmd.Flags().String("terminal-id", "", "terminal ID")
	cmd.Flags().String("status", "", "transaction status: failed, success or abandoned")
	cmd.Flags().String("from", "", "start date, e.g. 2016-09-24T00:00:05.000Z")
	cmd.Flags().String("to", "", "end date")
	cmd.Flags().Int64("amount", 0, "filter by amount in minor units")
	return cmd
}

func newFetchCommand(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "fetch <id>",
		Short: "Fetch a transaction by its numeric ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(func(c api.Paystack) (api.Response, error) {
				return c.Fetch(cmd.Context(), args[0])
			})
		},
	}
}

func newChargeCommand(r *runner) *cobra.Command {
	var req api.ChargeAuthorizationRequest
	cmd := &cobra.Command{
		Use:   "charge",
		Short: "Charge a reusable authorization",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := params(cmd.Flags(), map[string]string{
				"reference":          "reference",
				"currency":           "currency",
				"channels":           "channels",
				"subaccount":         "subaccount",
				"transaction-charge": "transaction_charge",
				"bearer":             "bearer",
				"queue":              "queue",
			})
			if err != nil {
				return err
			}
			if err = metadata(cmd.Flags(), p); err != nil {
				return err
			}
			req.Params = p
			return r.run(func(c api.Paystack) (api.Response, error) {
				return c.ChargeAuthorization(cmd.Context(), req)
			})
		},
	}
	cmd.Flags().StringVar(&req.Email, "email", "", "customer email address")
	cmd.Flags().Int64Var(&req.Amount, "amount", 0, "amount in major currency units")
	cmd.Flags().StringVar(&req.AuthorizationCode, "authorization-code", "", "reusable authorization code, e.g. AUTH_72btv547")
	cmd.Flags().String("reference", "", "unique transaction reference")
	cmd.Flags().String("currency", "", "transaction currency, e.g. NGN")
	cmd.Flags().StringSlice("channels", nil, "payment channels")
	cmd.Flags().String("subaccount", "", "subaccount code")
	cmd.Flags().Int64("transaction-charge", 0, "flat fee in minor units that overrides the subaccount split")
	cmd.Flags().String("bearer", "", "who bears the transaction charges")
	cmd.Flags().Bool("queue", false, "queue the charge when running bulk charges")
	cmd.Flags().String("metadata", "", "JSON object with custom metadata")
	return cmd
}

func newTimelineCommand(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "timeline <id-or-reference>",
		Short: "Show the timeline of a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(func(c api.Paystack) (api.Response, error) {
				return c.Timeline(cmd.Context(), args[0])
			})
		},
	}
}

func newTotalsCommand(r *runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "totals",
		Short: "Show the total amount received",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := params(cmd.Flags(), map[string]string{
				"per-page": "per_page",
				"page":     "page",
				"from":     "from_date",
				"to":       "to_date",
			})
			if err != nil {
				return err
			}
			return r.run(func(c api.Paystack) (api.Response, error) {
				return c.Totals(cmd.Context(), p)
			})
		},
	}
	cmd.Flags().Int("per-page", 50, "records per page")
	cmd.Flags().Int("page", 1, "page to retrieve")
	cmd.Flags().String("from", "", "start date")
	cmd.Flags().String("to", "", "end date")
	return cmd
}

func newExportCommand(r *runner) *cobra.Command {
	var req api.ExportRequest
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export transactions to a local file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := params(cmd.Flags(), map[string]string{
				"from":         "from",
				"to":           "to",
				"customer":     "customer",
				"status":       "status",
				"currency":     "currency",
				"amount":       "amount",
				"settled":      "settled",
				"settlement":   "settlement",
				"payment-page": "payment_page",
			})
			if err != nil {
				return err
			}
			req.Params = p
			return r.run(func(c api.Paystack) (api.Response, error) {
				return c.Export(cmd.Context(), req)
			})
		},
	}
	cmd.Flags().StringVarP(&req.Destination, "out", "o", "transactions.csv", "path of the exported file")
	cmd.Flags().String("from", "", "start date")
	cmd.Flags().String("to", "", "end date")
	cmd.Flags().String("customer", "", "customer ID")
	cmd.Flags().String("status", "", "transaction status")
	cmd.Flags().String("currency", "", "currency")
	cmd.Flags().Int64("amount", 0, "filter by amount in minor units")
	cmd.Flags().Bool("settled", false, "export only settled transactions")
	cmd.Flags().String("settlement", "", "settlement ID")
	cmd.Flags().String("payment-page", "", "payment page ID")
	return cmd
}

func newSplitCommand(r *runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "split",
		Short: "Manage transaction splits",
	}
	cmd.AddCommand(newCreateSplitCommand(r), newFetchSplitCommand(r))
	return cmd
}

// parseSubaccounts parses subaccounts in the CODE:SHARE format.
func parseSubaccounts(values []string) ([]api.SplitSubaccount, error) {
	out := make([]api.SplitSubaccount, 0, len(values))
	for _, v := range values {
		parts := strings.SplitN(v, ":", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid subaccount %q, expected CODE:SHARE", v)
		}
		share, err := strconv.ParseInt(parts[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid share for subaccount %q: %w", parts[0], err)
		}
		out = append(out, api.SplitSubaccount{Subaccount: parts[0], Share: share})
	}
	return out, nil
}

func newCreateSplitCommand(r *runner) *cobra.Command {
	var req api.CreateSplitRequest
	var splitType string
	var subaccounts []string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a transaction split",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			subs, err := parseSubaccounts(subaccounts)
			if err != nil {
				return err
			}
			req.Type = api.SplitType(splitType)
			req.Subaccounts = subs
			return r.run(func(c api.Paystack) (api.Response, error) {
				return c.CreateSplit(cmd.Context(), req)
			})
		},
	}
	cmd.Flags().StringVar(&req.Name, "name", "", "split name")
	cmd.Flags().StringVar(&splitType, "type", string(api.SplitTypePercentage), "split type: percentage or flat")
	cmd.Flags().StringVar(&req.Currency, "currency", "", "split currency, e.g. NGN")
	cmd.Flags().StringArrayVar(&subaccounts, "subaccount", nil, "subaccount and share as CODE:SHARE, repeatable")
	cmd.Flags().StringVar(&req.BearerType, "bearer-type", "", "subaccount, account, all-proportional or all")
	cmd.Flags().StringVar(&req.BearerSubaccount, "bearer-subaccount", "", "subaccount code bearing the charges")
	return cmd
}

func newFetchSplitCommand(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "fetch <id>",
		Short: "Fetch a transaction split",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(func(c api.Paystack) (api.Response, error) {
				return c.FetchSplit(cmd.Context(), args[0])
			})
		},
	}
}
