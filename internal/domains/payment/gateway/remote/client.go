package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"library-backend/internal/config"
	"library-backend/internal/domains/payment/gateway"
)

// Client talks to the hosted payment gateway over HTTPS. Every request
// carries a bounded timeout; transport failures surface as errors for the
// payment service to translate.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(cfg *config.GatewayConfig) (gateway.PaymentGateway, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("payment gateway base URL is required")
	}

	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
	}, nil
}

type chargeRequest struct {
	PatronID    string `json:"patron_id"`
	Amount      string `json:"amount"`
	Description string `json:"description"`
}

type chargeResponse struct {
	Approved      bool   `json:"approved"`
	TransactionID string `json:"transaction_id"`
	Message       string `json:"message"`
}

type refundRequest struct {
	TransactionID string `json:"transaction_id"`
	Amount        string `json:"amount"`
}

type refundResponse struct {
	Approved bool   `json:"approved"`
	Message  string `json:"message"`
}

func (c *Client) ProcessPayment(
	ctx context.Context,
	patronID string,
	amount decimal.Decimal,
	description string,
) (*gateway.ChargeResult, error) {
	var resp chargeResponse
	err := c.post(ctx, "/v1/charges", chargeRequest{
		PatronID:    patronID,
		Amount:      amount.StringFixed(2),
		Description: description,
	}, &resp)
	if err != nil {
		return nil, err
	}

	return &gateway.ChargeResult{
		Approved:      resp.Approved,
		TransactionID: resp.TransactionID,
		Message:       resp.Message,
	}, nil
}

func (c *Client) RefundPayment(
	ctx context.Context,
	transactionID string,
	amount decimal.Decimal,
) (*gateway.RefundResult, error) {
	var resp refundResponse
	err := c.post(ctx, "/v1/refunds", refundRequest{
		TransactionID: transactionID,
		Amount:        amount.StringFixed(2),
	}, &resp)
	if err != nil {
		return nil, err
	}

	return &gateway.RefundResult{
		Approved: resp.Approved,
		Message:  resp.Message,
	}, nil
}

func (c *Client) post(ctx context.Context, path string, payload, dest interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal gateway request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build gateway request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read gateway response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("gateway returned status %d: %s", resp.StatusCode, string(raw))
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("decode gateway response: %w", err)
	}

	return nil
}
