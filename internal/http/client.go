package http

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultUserAgent is sent with every request.
const DefaultUserAgent = "timecrawl"

// Request describes one catalog call.
//
// Path is relative to the client's base URL. Method defaults to GET.
type Request struct {
	Method string
	Path   string
	Query  map[string]string
}

// String returns "METHOD path" for logging.
func (r *Request) String() string {
	method := r.Method
	if method == "" {
		method = http.MethodGet
	}
	return method + " " + r.Path
}

// Response is a fully read HTTP response.
type Response struct {
	StatusCode int
	Status     string
	Header     http.Header
	Body       []byte
}

// OK reports whether the status code is 2xx.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// RetryAfter returns the wait requested by a Retry-After header.
//
// Both the delay-seconds and the HTTP-date forms are accepted. The second
// return value is false when the header is absent or unparseable.
func (r *Response) RetryAfter() (time.Duration, bool) {
	if r.Header == nil {
		return 0, false
	}
	v := strings.TrimSpace(r.Header.Get("Retry-After"))
	if v == "" {
		return 0, false
	}
	if secs, err := strconv.Atoi(v); err == nil {
		if secs < 0 {
			secs = 0
		}
		return time.Duration(secs) * time.Second, true
	}
	if at, err := http.ParseTime(v); err == nil {
		d := time.Until(at)
		if d < 0 {
			d = 0
		}
		return d, true
	}
	return 0, false
}

// Client wraps a resty client with catalog-specific configuration.
//
// Client provides:
//   - Configured base URL, bearer token and User-Agent header
//   - Timeout handling
//   - Non-2xx statuses returned as data, not errors
//
// Example usage:
//
//	client := NewClient("https://api.spotify.com/v1", token, 30*time.Second)
//	resp, err := client.Do(ctx, &Request{Path: "artists/0OdUWJ0sBjDrqHygGUXeCF/related-artists"})
//	if err != nil {
//	    return err // network failure
//	}
//	if resp.StatusCode == 429 {
//	    wait, _ := resp.RetryAfter()
//	}
type Client struct {
	rc *resty.Client
}

// NewClient creates a new HTTP client for the catalog at baseURL.
//
// An empty token leaves the Authorization header unset.
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	rc := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("User-Agent", DefaultUserAgent).
		SetHeader("Accept", "application/json")
	if token != "" {
		rc.SetAuthToken(token)
	}
	return &Client{rc: rc}
}

// Do performs the request and returns the response, whatever its status.
//
// Returns an error only if the request could not be sent or the body could
// not be read.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	r := c.rc.R().SetContext(ctx)
	if len(req.Query) > 0 {
		r.SetQueryParams(req.Query)
	}

	resp, err := r.Execute(method, req.Path)
	if err != nil {
		return nil, err
	}

	return &Response{
		StatusCode: resp.StatusCode(),
		Status:     resp.Status(),
		Header:     resp.Header(),
		Body:       resp.Body(),
	}, nil
}
