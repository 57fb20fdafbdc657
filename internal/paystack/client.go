// Package paystack is a thin client for the Paystack transaction API.
// Amounts cross this boundary in integer subunits (kobo).
package paystack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/Yaseeru/glowgroove/internal/config"
	"github.com/Yaseeru/glowgroove/internal/service"
)

type Client struct {
	logger     *slog.Logger
	httpClient *http.Client
	baseURL    string
	secretKey  string
}

func New(logger *slog.Logger, cfg config.Paystack) *Client {
	return &Client{
		logger:     logger.With(slog.String("client", "paystack")),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		secretKey:  cfg.SecretKey,
	}
}

type initializeRequest struct {
	Email       string `json:"email"`
	Amount      int64  `json:"amount"`
	CallbackURL string `json:"callback_url,omitempty"`
}

type initializeResponse struct {
	Status bool   `json:"status"`
	Msg    string `json:"message"`
	Data   struct {
		AuthorizationURL string `json:"authorization_url"`
		AccessCode       string `json:"access_code"`
		Reference        string `json:"reference"`
	} `json:"data"`
}

func (c *Client) Initialize(ctx context.Context, amountSubunits int64, email, callbackURL string) (service.PaymentInit, error) {
	body, err := json.Marshal(initializeRequest{
		Email:       email,
		Amount:      amountSubunits,
		CallbackURL: callbackURL,
	})
	if err != nil {
		return service.PaymentInit{}, fmt.Errorf("failed to marshal initialize request: %w", err)
	}

	var resp initializeResponse
	if err := c.do(ctx, http.MethodPost, "/transaction/initialize", bytes.NewReader(body), &resp); err != nil {
		return service.PaymentInit{}, err
	}
	if !resp.Status {
		return service.PaymentInit{}, fmt.Errorf("paystack initialize rejected: %s", resp.Msg)
	}

	return service.PaymentInit{
		Reference:        resp.Data.Reference,
		AuthorizationURL: resp.Data.AuthorizationURL,
		AccessCode:       resp.Data.AccessCode,
	}, nil
}

type verifyResponse struct {
	Status bool   `json:"status"`
	Msg    string `json:"message"`
	Data   struct {
		Status string `json:"status"`
		Amount int64  `json:"amount"`
	} `json:"data"`
}

func (c *Client) Verify(ctx context.Context, reference string) (service.PaymentVerification, error) {
	var resp verifyResponse
	if err := c.do(ctx, http.MethodGet, "/transaction/verify/"+reference, nil, &resp); err != nil {
		return service.PaymentVerification{}, err
	}
	if !resp.Status {
		return service.PaymentVerification{}, fmt.Errorf("paystack verify rejected: %s", resp.Msg)
	}

	return service.PaymentVerification{
		Status: resp.Data.Status,
		Amount: float64(resp.Data.Amount) / 100,
	}, nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, dest any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("paystack request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("paystack returned status %d", res.StatusCode)
	}

	if err := json.NewDecoder(res.Body).Decode(dest); err != nil {
		return fmt.Errorf("failed to decode paystack response: %w", err)
	}
	return nil
}
