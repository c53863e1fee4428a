// Package resend is a minimal client for the Resend transactional email API.
package resend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// DefaultBaseURL is the production Resend endpoint.
const DefaultBaseURL = "https://api.resend.com"

// Client issues bearer-authenticated requests against the emails endpoint.
type Client struct {
	baseURL    string
	apiKey     string
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
func New(apiKey string, opts ...Option) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("resend API key is required")
	}
	c := &Client{
		baseURL:    DefaultBaseURL,
		apiKey:     apiKey,
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

// Email is the request body for POST /emails.
type Email struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type errorBody struct {
	Message string `json:"message"`
	Name    string `json:"name"`
}

// Send submits one email. Any non-2xx response is an error.
func (c *Client) Send(ctx context.Context, email Email) error {
	if c == nil || c.httpClient == nil {
		return errors.New("resend client not configured")
	}
	if len(email.To) == 0 {
		return errors.New("email recipient is required")
	}
	body, err := json.Marshal(email)
	if err != nil {
		return fmt.Errorf("encode email: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build email request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("call resend API: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	return fmt.Errorf("resend API error: %s", errorMessage(resp))
}

// SendEmail adapts Send to the single-recipient shape the dispatcher uses.
func (c *Client) SendEmail(ctx context.Context, from, to, subject, html string) error {
	return c.Send(ctx, Email{From: from, To: []string{to}, Subject: subject, HTML: html})
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
