package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/SergeyBogomolovv/storefront-orders/internal/config"
)

// ErrRejected is returned when the email API refuses a message; retrying will not help.
var ErrRejected = errors.New("email rejected")

type Email struct {
	To      []string
	Subject string
	HTML    string
}

type Mailer struct {
	baseURL string
	apiKey  string
	from    string
	http    *http.Client
}

func NewMailer(cfg config.Mail) *Mailer {
	return &Mailer{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		from:    cfg.From,
		http:    &http.Client{Timeout: cfg.Timeout},
	}
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

func (m *Mailer) Send(ctx context.Context, e Email) error {
	payload, err := json.Marshal(sendRequest{
		From:    m.from,
		To:      e.To,
		Subject: e.Subject,
		HTML:    e.HTML,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+"/emails", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call email api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
	if resp.StatusCode >= 400 && resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
		return fmt.Errorf("%w: %s: %s", ErrRejected, resp.Status, body)
	}
	return fmt.Errorf("email api responded with %s: %s", resp.Status, body)
}
