package fake

import (
	"fmt"
	"github.com/go-chi/chi/v5"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
)

// Request is a request received by the fake Paystack server.
type Request struct {
	Method  string
	Path    string
	Pattern string
	Header  http.Header
	Query   url.Values
	Body    []byte
}

// response is a canned response returned by the fake Paystack server.
type response struct {
	status int
	body   string
}

// Paystack is a fake Paystack API server. Responses are configured per route with On, and every
// request received is recorded.
type Paystack struct {
	server    *httptest.Server
	mu        sync.Mutex
	responses map[string]response
	requests  []Request
}

// Routes served by the fake Paystack server.
const (
	RouteInitialize          = "/transaction/initialize"
	RouteVerify              = "/transaction/verify/{reference}"
	RouteList                = "/transaction"
	RouteFetch               = "/transaction/{id}"
	RouteChargeAuthorization = "/transaction/charge_authorization"
	RouteTimeline            = "/transaction/timeline/{id}"
	RouteTotals              = "/transaction/totals"
	RouteExport              = "/transaction/export"
	RouteSplit               = "/split"
	RouteFetchSplit          = "/split/{id}"
	RouteFile                = "/files/{name}"
)

// NewPaystack initializes and starts a new fake Paystack server. It must be closed with Close.
func NewPaystack() *Paystack {
	p := &Paystack{
		responses: make(map[string]response),
	}

	r := chi.NewRouter()
	r.Post(RouteInitialize, p.handle)
	r.Get(RouteVerify, p.handle)
	r.Get(RouteList, p.handle)
	r.Get(RouteFetch, p.handle)
	r.Post(RouteChargeAuthorization, p.handle)
	r.Get(RouteTimeline, p.handle)
	r.Get(RouteTotals, p.handle)
	r.Get(RouteExport, p.handle)
	r.Post(RouteSplit, p.handle)
	r.Get(RouteFetchSplit, p.handle)
	r.Get(RouteFile, p.handle)

	p.server = httptest.NewServer(r)
	return p
}

// On sets the response returned when the given route is called with the given method.
//	Example: On(http.MethodPost, RouteInitialize, http.StatusOK, `{"status": true}`)
func (p *Paystack) On(method, route string, status int, body string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.responses[key(method, route)] = response{status: status, body: body}
}

// URL returns the base URL of the fake server.
func (p *Paystack) URL() string {
	return p.server.URL
}

// Client returns an HTTP client configured to call the fake server.
func (p *Paystack) Client() *http.Client {
	return p.server.Client()
}

// Calls returns the number of requests received.
func (p *Paystack) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.requests)
}

// Requests returns a copy of the requests received.
func (p *Paystack) Requests() []Request {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Request, len(p.requests))
	copy(out, p.requests)
	return out
}

// LastRequest returns the last request received. It returns an empty Request if nothing was received.
func (p *Paystack) LastRequest() Request {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.requests) == 0 {
		return Request{}
	}
	return p.requests[len(p.requests)-1]
}

// Close shuts the fake server down.
func (p *Paystack) Close() {
	p.server.Close()
}

func (p *Paystack) handle(w http.ResponseWriter, r *http.Request) {
	pattern := chi.RouteContext(r.Context()).RoutePattern()
	body, _ := io.ReadAll(r.Body)

	p.mu.Lock()
	p.requests = append(p.requests, Request{
		Method:  r.Method,
		Path:    r.URL.Path,
		Pattern: pattern,
		Header:  r.Header.Clone(),
		Query:   r.URL.Query(),
		Body:    body,
	})
	res, ok := p.responses[key(r.Method, pattern)]
	p.mu.Unlock()

	if !ok {
		res = response{
			status: http.StatusNotFound,
			body:   fmt.Sprintf(`{"status": false, "message": "no response for %s %s"}`, r.Method, pattern),
		}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(res.status)
	_, _ = io.WriteString(w, res.body)
}

func key(method, route string) string {
	return method + " " + route
}
