// Package mail implements the outbound email transport against the
// Mailgun HTTP API.
package mail

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	apiBase        = "https://api.mailgun.net/v3"
	requestTimeout = 10 * time.Second
)

// Mailgun sends messages through the Mailgun messages endpoint with
// basic auth ("api", key). Both text and a naive HTML rendering of the
// body are attached, matching what the site has always sent.
type Mailgun struct {
	apiKey    string
	domain    string
	fromEmail string
	client    *http.Client
}

func NewMailgun(apiKey, domain, fromEmail string) *Mailgun {
	return &Mailgun{
		apiKey:    apiKey,
		domain:    domain,
		fromEmail: fromEmail,
		client:    &http.Client{Timeout: requestTimeout},
	}
}

// Configured reports whether the transport has enough settings to
// attempt delivery.
func (m *Mailgun) Configured() bool {
	return m.apiKey != "" && m.domain != ""
}

func (m *Mailgun) Send(ctx context.Context, to, subject, body string) error {
	if !m.Configured() {
		return fmt.Errorf("mailgun: not configured")
	}

	form := url.Values{}
	form.Set("from", fmt.Sprintf("XGENAI <%s>", m.fromEmail))
	form.Set("to", to)
	form.Set("subject", subject)
	form.Set("text", body)
	form.Set("html", strings.ReplaceAll(body, "\n", "<br>"))

	endpoint := fmt.Sprintf("%s/%s/messages", apiBase, m.domain)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("mailgun: build request: %w", err)
	}
	req.SetBasicAuth("api", m.apiKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("mailgun: send: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("mailgun: unexpected status %d: %s", resp.StatusCode, string(detail))
	}

	return nil
}
