package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"gitlab.com/ignitionrobotics/billing/paystack/internal/conf"
	"gitlab.com/ignitionrobotics/billing/paystack/pkg/api"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// DefaultURL is the Paystack API base URL.
const DefaultURL = "https://api.paystack.co"

var _ api.Paystack = (*Client)(nil)

// Client contains the HTTP client to connect to the Paystack API.
// A Client owns its HTTP session and must be closed once the caller is done with it. A single Client
// shouldn't be used from multiple goroutines at the same time, create one Client per goroutine instead.
type Client struct {
	// apiKey is the secret key sent as bearer token.
	apiKey string

	// baseURL is the Paystack API url without trailing slash.
	baseURL string

	// session is the HTTP client reused across calls. It's set to nil when the Client is closed.
	session *http.Client

	// logger is used to log outgoing requests.
	logger *log.Logger

	// metrics records request counts and durations. It can be nil.
	metrics *metrics
}

// Options contains a set of components needed to configure the Paystack client.
type Options struct {
	// URL is the Paystack API url. If empty, it defaults to DefaultURL.
	URL string

	// Timeout is the timeout used by the underlying HTTP client. Zero means no timeout.
	Timeout time.Duration

	// Transport overrides the http.RoundTripper used by the client. Defaults to http.DefaultTransport.
	Transport http.RoundTripper

	// Logger contains a logger mechanism. If set to nil, it defaults to a logger pointing to io.Discard.
	Logger *log.Logger

	// Registerer is used to register the client metrics. Metrics are disabled if nil.
	Registerer prometheus.Registerer
}

// NewClient initializes a new Paystack client using the given API key.
// An empty API key is accepted here, but every operation will fail with api.ErrInvalidAPIKey.
func NewClient(apiKey string, opts Options) *Client {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard, "", log.LstdFlags)
	}
	if len(opts.URL) == 0 {
		opts.URL = DefaultURL
	}
	transport := opts.Transport
	if transport == nil {
		transport = http.DefaultTransport.(*http.Transport).Clone()
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(opts.URL, "/"),
		session: &http.Client{
			Timeout:   opts.Timeout,
			Transport: transport,
		},
		logger:  opts.Logger,
		metrics: newMetrics(opts.Registerer),
	}
}

// NewClientWithConfig initializes a new Paystack client using the provided conf.Paystack config.
func NewClientWithConfig(cfg conf.Paystack, logger *log.Logger, reg prometheus.Registerer) *Client {
	return NewClient(cfg.SecretKey, Options{
		URL:        cfg.URL,
		Timeout:    cfg.Timeout,
		Logger:     logger,
		Registerer: reg,
	})
}

// Session returns the HTTP client used by this Client. It returns nil once the Client has been closed.
func (c *Client) Session() *http.Client {
	return c.session
}

// Close releases the idle connections held by the session. Calling Close more than once is a no-op.
func (c *Client) Close() error {
	if c.session == nil {
		return nil
	}
	c.session.CloseIdleConnections()
	c.session = nil
	return nil
}
