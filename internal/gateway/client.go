// Package gateway talks to the hosted card payment provider. The card form
// itself runs in the customer's browser; the service only verifies the
// reference the widget reports back.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/SergeyBogomolovv/storefront-orders/internal/config"
	"github.com/SergeyBogomolovv/storefront-orders/internal/entities"
)


type Client struct {
	baseURL   string
	secretKey string
	publicKey string
	http      *http.Client
}

func NewClient(cfg config.Gateway) *Client {
	return &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		secretKey: cfg.SecretKey,
		publicKey: cfg.PublicKey,
		http:      &http.Client{Timeout: cfg.Timeout},
	}
}

// PublicKey is handed to the browser widget together with amount and email.
func (c *Client) PublicKey() string {
	return c.publicKey
}

type verifyResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		Status    string `json:"status"`
		Reference string `json:"reference"`
		Amount    int64  `json:"amount"`
		Customer  struct {
			Email string `json:"email"`
		} `json:"customer"`
	} `json:"data"`
}

func (c *Client) Verify(ctx context.Context, reference string) (entities.Transaction, error) {
	endpoint := c.baseURL + "/transaction/verify/" + url.PathEscape(reference)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return entities.Transaction{}, err
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return entities.Transaction{}, fmt.Errorf("failed to call gateway: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusBadRequest {
		return entities.Transaction{}, entities.ErrUnknownPaymentReference
	}
	if resp.StatusCode != http.StatusOK {
		return entities.Transaction{}, fmt.Errorf("gateway responded with %s", resp.Status)
	}

	var body verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return entities.Transaction{}, fmt.Errorf("failed to decode gateway response: %w", err)
	}
	if !body.Status {
		return entities.Transaction{}, fmt.Errorf("%w: %s", entities.ErrUnknownPaymentReference, body.Message)
	}

	return entities.Transaction{
		Reference:   body.Data.Reference,
		Status:      body.Data.Status,
		AmountMinor: body.Data.Amount,
		Email:       body.Data.Customer.Email,
	}, nil
}
