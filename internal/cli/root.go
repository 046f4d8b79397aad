package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"github.com/spf13/cobra"
	"gitlab.com/ignitionrobotics/billing/paystack/pkg/api"
	"io"
)

// Factory creates the Paystack client used by a command.
type Factory func() (api.Paystack, error)

// NewRootCommand returns the paystack command with every subcommand attached. The client returned by
// factory is closed once the subcommand finishes.
func NewRootCommand(factory Factory, out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "paystack",
		Short:         "Manage Paystack transactions and splits",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)

	r := &runner{factory: factory, out: out}
	root.AddCommand(
		newInitializeCommand(r),
		newVerifyCommand(r),
		newListCommand(r),
		newFetchCommand(r),
		newChargeCommand(r),
		newTimelineCommand(r),
		newTotalsCommand(r),
		newExportCommand(r),
		newSplitCommand(r),
	)
	return root
}

// runner creates a client, runs an operation with it and prints the result.
type runner struct {
	factory Factory
	out     io.Writer
}

func (r *runner) run(fn func(c api.Paystack) (api.Response, error)) error {
	c, err := r.factory()
	if err != nil {
		return err
	}
	defer c.Close()

	res, err := fn(c)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

// ExitCode returns the process exit code for the given error.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.StatusCode >= 400 && apiErr.StatusCode < 500 {
		return 2
	}
	return 1
}

// FormatError formats an error to be printed to the user.
func FormatError(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return fmt.Sprintf("Paystack error (status %d): %s", apiErr.StatusCode, apiErr.Message)
	}
	return err.Error()
}
