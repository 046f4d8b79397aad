package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"gitlab.com/ignitionrobotics/billing/paystack/pkg/api"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// call runs the request pipeline shared by every operation: validate required fields, check the
// credentials, build the request, send it and normalize the response.
func (c *Client) call(ctx context.Context, op operation, required, optional api.Params) (api.Response, error) {
	if name, ok := missing(op.required, required); ok {
		return api.Response{}, api.MissingParameter(name)
	}

	if name, ok := op.overflows(required); ok {
		return api.Response{}, api.Errorf(http.StatusBadRequest, "Invalid parameter: %s", name)
	}

	if len(c.apiKey) == 0 {
		return api.Response{}, clone(api.ErrInvalidAPIKey)
	}

	if c.session == nil {
		return api.Response{}, clone(api.ErrClientClosed)
	}

	req, err := c.newRequest(ctx, op, required, optional)
	if err != nil {
		return api.Response{}, err
	}

	start := time.Now()
	res, sendErr := c.send(req)
	if sendErr != nil {
		c.logger.Printf("%s %s failed: %v\n", req.Method, req.URL.Path, sendErr)
		c.metrics.observe(op.name, sendErr.StatusCode, time.Since(start))
		return api.Response{}, sendErr
	}
	defer res.Body.Close()
	c.logger.Printf("%s %s returned %d\n", req.Method, req.URL.Path, res.StatusCode)
	c.metrics.observe(op.name, res.StatusCode, time.Since(start))

	return normalize(op, res)
}

// newRequest builds the HTTP request for the given operation.
func (c *Client) newRequest(ctx context.Context, op operation, required, optional api.Params) (*http.Request, error) {
	endpoint := c.baseURL + op.path
	if len(op.pathParam) > 0 {
		endpoint += "/" + url.PathEscape(toString(required[op.pathParam]))
	}

	data := op.payload(required, optional)

	var body io.Reader
	if op.write() {
		b, err := json.Marshal(data)
		if err != nil {
			return nil, api.Errorf(http.StatusBadRequest, "Invalid request payload: %v", err)
		}
		body = bytes.NewReader(b)
	} else if len(data) > 0 {
		endpoint += "?" + query(data).Encode()
	}

	req, err := http.NewRequestWithContext(ctx, op.method, endpoint, body)
	if err != nil {
		return nil, api.Errorf(http.StatusInternalServerError, "Failed to create request: %v", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if op.write() {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// send performs the given request using the client session. Transport failures are mapped into an *api.Error.
func (c *Client) send(req *http.Request) (*http.Response, *api.Error) {
	res, err := c.session.Do(req)
	if err != nil {
		return nil, transportError(err)
	}
	return res, nil
}

// transportError maps errors returned by the HTTP client into an *api.Error with status 500.
func transportError(err error) *api.Error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return api.Errorf(http.StatusInternalServerError, "Request timed out: %v", err)
	}
	return api.Errorf(http.StatusInternalServerError, "Connection error: %v", err)
}

// normalize converts the HTTP response into an api.Response if it succeeded, or an *api.Error otherwise.
func normalize(op operation, res *http.Response) (api.Response, error) {
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return api.Response{}, transportError(err)
	}

	if res.StatusCode != http.StatusOK {
		if res.StatusCode == http.StatusNotFound && op.notFound != nil {
			return api.Response{}, clone(op.notFound)
		}
		return api.Response{}, api.NewError(res.StatusCode, string(body))
	}

	var decoded map[string]interface{}
	if err = json.Unmarshal(body, &decoded); err != nil {
		return api.Response{}, api.Errorf(http.StatusInternalServerError, "Invalid response body: %v", err)
	}

	return api.Response{
		StatusCode:      res.StatusCode,
		Message:         op.success,
		ResponseFromAPI: decoded,
		Raw:             body,
	}, nil
}

// clone returns a copy of a sentinel error, so callers can't modify the shared value.
func clone(e *api.Error) *api.Error {
	return api.NewError(e.StatusCode, e.Message)
}

func toString(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	}
	b, _ := json.Marshal(v)
	return string(b)
}
