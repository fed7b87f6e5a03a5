// Package tinkoff is a client for the Tinkoff bank acquiring HTTP API.
//
// A Client is constructed once with the acquiring URL and a terminal
// credential pair, and exposes the four gateway operations: Init, GetState,
// Confirm and Cancel. Every request is signed with a SHA-256 token derived
// from its parameters and the terminal secret. Each call returns its result
// directly; no state is kept on the client between calls, so a single
// Client is safe for concurrent use.
//
// Based on https://oplata.tinkoff.ru/landing/develop/documentation
package tinkoff

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Client talks to one acquiring terminal. Construct it with NewClient.
type Client struct {
	terminalKey string
	secretKey   string

	urlInit     string
	urlCancel   string
	urlConfirm  string
	urlGetState string

	httpClient *http.Client
	logger     *slog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets the per-request timeout on the client's HTTP transport.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithInsecureSkipVerify disables verification of the gateway's TLS
// certificate. TLS is verified by default; only use this against test
// environments with self-signed certificates.
func WithInsecureSkipVerify() ClientOption {
	return func(c *Client) {
		c.httpClient.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}
}

// WithLogger sets a logger for debug-level request/response logging.
// The secret key and the request token are never logged.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a Client for the given acquiring URL and terminal
// credentials. The four endpoint URLs are derived from acquiringURL once,
// here; an empty URL or credential is rejected immediately.
func NewClient(acquiringURL, terminalKey, secretKey string, opts ...ClientOption) (*Client, error) {
	switch {
	case acquiringURL == "":
		return nil, ErrEmptyAcquiringURL
	case terminalKey == "":
		return nil, ErrEmptyTerminalKey
	case secretKey == "":
		return nil, ErrEmptySecretKey
	}

	base := acquiringURL
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}

	client := &Client{
		terminalKey: terminalKey,
		secretKey:   secretKey,
		urlInit:     base + "Init/",
		urlCancel:   base + "Cancel/",
		urlConfirm:  base + "Confirm/",
		urlGetState: base + "GetState/",
		httpClient:  &http.Client{Timeout: 30 * time.Second},
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// Init registers a new payment and returns the gateway's view of it; the
// returned Payment.URL is the form the customer should be redirected to.
// Validation runs before anything is sent: a missing required field fails
// with a *ValidationError and no network I/O.
func (c *Client) Init(ctx context.Context, req PaymentRequest, items []LineItem) (*Payment, error) {
	if err := validateInit(req, items); err != nil {
		return nil, err
	}
	return c.send(ctx, c.urlInit, initParams(req, items))
}

// GetState returns the current status of a payment.
func (c *Client) GetState(ctx context.Context, paymentID string) (string, error) {
	payment, err := c.send(ctx, c.urlGetState, map[string]any{"PaymentId": paymentID})
	if err != nil {
		return "", err
	}
	return payment.Status, nil
}

// Confirm captures a previously authorized payment and returns its status.
func (c *Client) Confirm(ctx context.Context, paymentID string) (string, error) {
	payment, err := c.send(ctx, c.urlConfirm, map[string]any{"PaymentId": paymentID})
	if err != nil {
		return "", err
	}
	return payment.Status, nil
}

// Cancel cancels a payment and returns its status. Whether cancellation is
// legal in the payment's current state is decided by the gateway, which
// reports an error code if it is not.
func (c *Client) Cancel(ctx context.Context, paymentID string) (string, error) {
	payment, err := c.send(ctx, c.urlCancel, map[string]any{"PaymentId": paymentID})
	if err != nil {
		return "", err
	}
	return payment.Status, nil
}

// send signs the parameter map, posts it to url as JSON and interprets the
// response. One attempt, no retries.
func (c *Client) send(ctx context.Context, url string, params map[string]any) (*Payment, error) {
	params["TerminalKey"] = c.terminalKey
	params["Token"] = requestToken(params, c.terminalKey, c.secretKey)

	body, err := json.Marshal(params)
	if err != nil {
		return nil, &TransportError{URL: url, Err: err}
	}

	c.logger.DebugContext(ctx, "sending request",
		slog.String("url", url),
		slog.String("terminal", c.terminalKey))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, &TransportError{URL: url, Body: string(body), Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &TransportError{URL: url, Body: string(body), Err: err}
	}
	defer httpResp.Body.Close()

	raw, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &TransportError{URL: url, Body: string(body), Err: err}
	}

	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()
	var response map[string]any
	if err := decoder.Decode(&response); err != nil {
		return nil, &TransportError{URL: url, Body: string(body), Err: err}
	}

	c.logger.DebugContext(ctx, "received response",
		slog.String("url", url),
		slog.Int("status", httpResp.StatusCode))

	return interpret(response)
}
