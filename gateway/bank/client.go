package bank

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/exp/slog"
)

// Result is the bank's decision for a completed authorization
// round-trip. It is only produced when the bank answered; failures of
// the call itself are errors, never a Result.
type Result int

const (
	Authorized Result = iota + 1
	Declined
)

func (r Result) String() string {
	switch r {
	case Authorized:
		return "Authorized"
	case Declined:
		return "Declined"
	default:
		return fmt.Sprintf("Result(%d)", int(r))
	}
}

var (
	// ErrUnavailable means the bank could not be reached or did not
	// produce a usable answer: a 503, a transport fault, a timeout, or
	// a response carrying no authorization decision.
	ErrUnavailable = fmt.Errorf("bank unavailable")

	// ErrUnexpectedResponse means the bank answered with a status the
	// gateway does not anticipate. Kept distinct from ErrUnavailable so
	// callers can tell "bank is down" from "bank rejected the call".
	ErrUnexpectedResponse = fmt.Errorf("unexpected bank response")
)

// Client issues authorization calls to the acquiring bank.
type Client struct {
	url    string
	client *http.Client
	logger *slog.Logger
}

func NewClient(logger *slog.Logger, url string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		url: url,
		client: &http.Client{
			Timeout: timeout,
		},
		logger: logger.With(slog.String("component", "bank-client")),
	}
}

type authorizationRequest struct {
	CardNumber string `json:"card_number"`
	ExpiryDate string `json:"expiry_date"`
	Currency   string `json:"currency"`
	Amount     int64  `json:"amount"`
	CVV        string `json:"cvv"`
}

// authorized is a pointer so an absent or null field is distinguishable
// from an explicit decline.
type authorizationResponse struct {
	Authorized        *bool  `json:"authorized"`
	AuthorizationCode string `json:"authorization_code"`
}

// Authorize sends a single synchronous authorization request to the
// bank and maps the answer to a Result. There is no retry and no
// caching; expiry of the configured timeout is reported as
// ErrUnavailable.
func (c *Client) Authorize(ctx context.Context, pan string, expiryMonth, expiryYear int, currency string, amount int64, cvv string) (Result, error) {
	body := authorizationRequest{
		CardNumber: pan,
		ExpiryDate: fmt.Sprintf("%02d/%d", expiryMonth, expiryYear),
		Currency:   currency,
		Amount:     amount,
		CVV:        cvv,
	}

	b, err := json.Marshal(body)
	if err != nil {
		return 0, fmt.Errorf("marshaling authorization request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(b))
	if err != nil {
		return 0, fmt.Errorf("building authorization request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("bank connectivity error: %w: %w", err, ErrUnavailable)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusServiceUnavailable:
		return 0, fmt.Errorf("bank responded with 503: %w", ErrUnavailable)
	case resp.StatusCode/100 != 2:
		return 0, fmt.Errorf("bank responded with status %d: %w", resp.StatusCode, ErrUnexpectedResponse)
	}

	auth := authorizationResponse{}
	if err := json.NewDecoder(resp.Body).Decode(&auth); err != nil {
		return 0, fmt.Errorf("bank response malformed: %w", ErrUnavailable)
	}
	if auth.Authorized == nil {
		return 0, fmt.Errorf("bank response missing authorization decision: %w", ErrUnavailable)
	}

	result := Declined
	if *auth.Authorized {
		result = Authorized
	}

	c.logger.Debug("bank authorization completed", slog.String("outcome", result.String()))

	return result, nil
}
