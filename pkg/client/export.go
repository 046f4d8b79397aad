package client

import (
	"context"
	"gitlab.com/ignitionrobotics/billing/paystack/pkg/api"
	"io"
	"net/http"
	"os"
	"time"
)

// Export exports a list of transactions carried out on the integration and writes the report to
// req.Destination. It runs in two steps: Paystack is asked to generate the report, then the file
// is downloaded from the location returned in the response.
// Paystack docs: https://paystack.com/docs/api/transaction/#export
func (c *Client) Export(ctx context.Context, req api.ExportRequest) (api.Response, error) {
	if len(req.Destination) == 0 {
		return api.Response{}, api.MissingParameter("destination")
	}

	res, err := c.call(ctx, opExport, nil, req.Params)
	if err != nil {
		return api.Response{}, err
	}

	location, _ := res.Data()["path"].(string)
	if err = api.ValidateURL(location); err != nil {
		return api.Response{}, clone(api.ErrInvalidExportLocation)
	}

	b, err := c.download(ctx, location)
	if err != nil {
		return api.Response{}, err
	}

	if err = os.WriteFile(req.Destination, b, 0644); err != nil {
		return api.Response{}, api.Errorf(http.StatusInternalServerError, "Failed to write export file: %v", err)
	}
	c.logger.Printf("Exported %d bytes to %s\n", len(b), req.Destination)

	return res, nil
}

// download gets the file at the given location. The location is a pre-signed URL, so no
// credentials are sent along.
func (c *Client) download(ctx context.Context, location string) ([]byte, error) {
	if c.session == nil {
		return nil, clone(api.ErrClientClosed)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, api.Errorf(http.StatusInternalServerError, "Failed to create request: %v", err)
	}

	start := time.Now()
	res, sendErr := c.send(req)
	if sendErr != nil {
		c.metrics.observe("export_download", sendErr.StatusCode, time.Since(start))
		return nil, sendErr
	}
	defer res.Body.Close()
	c.metrics.observe("export_download", res.StatusCode, time.Since(start))

	b, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, transportError(err)
	}
	if res.StatusCode != http.StatusOK {
		return nil, api.NewError(res.StatusCode, string(b))
	}
	return b, nil
}
