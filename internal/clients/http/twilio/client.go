// Package twilio is a minimal client for the Twilio Messages API.
package twilio

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the production Twilio endpoint.
const DefaultBaseURL = "https://api.twilio.com"

// Client issues basic-authenticated requests against the per-account
// messages endpoint.
type Client struct {
	baseURL    string
	accountSID string
	authToken  string
	httpClient *http.Client
}

type Option func(*Client)

// WithBaseURL overrides the API endpoint, mainly for tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// New instantiates the client with sane defaults.
func New(accountSID, authToken string, opts ...Option) (*Client, error) {
	accountSID = strings.TrimSpace(accountSID)
	authToken = strings.TrimSpace(authToken)
	if accountSID == "" || authToken == "" {
		return nil, errors.New("twilio account SID and auth token are required")
	}
	c := &Client{
		baseURL:    DefaultBaseURL,
		accountSID: accountSID,
		authToken:  authToken,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: 5 * time.Second}
	}
	return c, nil
}

type errorBody struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// SendSMS submits one text message via
// POST /2010-04-01/Accounts/{sid}/Messages.json. Any non-2xx response is an
// error.
func (c *Client) SendSMS(ctx context.Context, to, from, body string) error {
	if c == nil || c.httpClient == nil {
		return errors.New("twilio client not configured")
	}
	if strings.TrimSpace(to) == "" {
		return errors.New("sms destination is required")
	}
	form := url.Values{}
	form.Set("To", to)
	form.Set("From", from)
	form.Set("Body", body)

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", c.baseURL, url.PathEscape(c.accountSID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build sms request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(c.accountSID, c.authToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("call twilio API: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	return fmt.Errorf("twilio API error: %s", errorMessage(resp))
}

func errorMessage(resp *http.Response) string {
	var body errorBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		if msg := strings.TrimSpace(body.Message); msg != "" {
			return msg
		}
	}
	return resp.Status
}
