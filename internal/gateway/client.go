// Package gateway is the HTTP client for the message gateway's operator API.
//
// Every method returns one of *NetworkError, *ServerError or
// *MalformedResponseError on failure so callers can route each case explicitly.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"smscctl/internal/operator"
	"smscctl/pkg/logging"

	"github.com/google/uuid"
)

const subsystem = "Gateway"

// Config is injected at construction; there is no package-level client state.
type Config struct {
	// BaseURL is the API root, e.g. http://localhost:8080/api/v1.
	BaseURL string
	// Token, when set, is forwarded as a bearer credential.
	Token string
	// HTTPClient defaults to a client without timeout.
	HTTPClient *http.Client
}

// Client talks to {BaseURL}/operators.
type Client struct {
	base  *url.URL
	token string
	http  *http.Client
}

// NewClient validates the base URL and returns a client.
func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, fmt.Errorf("gateway base URL is empty")
	}
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid gateway base URL %q: %w", cfg.BaseURL, err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("invalid gateway base URL %q: scheme must be http or https", cfg.BaseURL)
	}
	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{}
	}
	return &Client{base: base, token: cfg.Token, http: hc}, nil
}

// BaseURL returns the configured API root.
func (c *Client) BaseURL() string { return c.base.String() }

// List fetches every operator in server order.
func (c *Client) List(ctx context.Context) ([]operator.Operator, error) {
	var ops []operator.Operator
	if err := c.do(ctx, "list", http.MethodGet, c.collectionURL(), nil, &ops); err != nil {
		return nil, err
	}
	if ops == nil {
		ops = []operator.Operator{}
	}
	return ops, nil
}

// Create posts a new operator and returns the server's echo.
func (c *Client) Create(ctx context.Context, p operator.Payload) (operator.Operator, error) {
	var op operator.Operator
	err := c.do(ctx, "create", http.MethodPost, c.collectionURL(), p, &op)
	return op, err
}

// Update replaces the writable fields of operator id.
func (c *Client) Update(ctx context.Context, id operator.ID, p operator.Payload) (operator.Operator, error) {
	var op operator.Operator
	err := c.do(ctx, "update", http.MethodPut, c.itemURL(id), p, &op)
	return op, err
}

// Delete removes operator id. The acknowledgement body is not inspected.
func (c *Client) Delete(ctx context.Context, id operator.ID) error {
	return c.do(ctx, "delete", http.MethodDelete, c.itemURL(id), nil, nil)
}

func (c *Client) collectionURL() string {
	return c.base.String() + "/operators/"
}

func (c *Client) itemURL(id operator.ID) string {
	return c.base.String() + "/operators/" + url.PathEscape(id.String())
}

func (c *Client) do(ctx context.Context, op, method, target string, body interface{}, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", op, err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return &NetworkError{Op: op, Err: err}
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		logging.Error(subsystem, err, "%s %s failed (request %s)", method, target, requestID)
		return &NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Op: op, StatusCode: resp.StatusCode, Err: err}
	}
	logging.Debug(subsystem, "%s %s -> %d in %s (request %s)", method, target, resp.StatusCode, time.Since(start).Round(time.Millisecond), requestID)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeFailure(op, resp.StatusCode, data)
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		logging.Warn(subsystem, "%s %s returned an unparseable body (request %s)", method, target, requestID)
		return &MalformedResponseError{Op: op, StatusCode: resp.StatusCode, Err: err}
	}
	return nil
}

// decodeFailure turns a non-2xx response into a ServerError when the body is
// {"error": "..."} and a NetworkError otherwise.
func decodeFailure(op string, status int, data []byte) error {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(data, &body); err == nil && body.Error != "" {
		return &ServerError{Op: op, StatusCode: status, Message: body.Error}
	}
	return &NetworkError{Op: op, StatusCode: status}
}
