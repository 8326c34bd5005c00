/*
Copyright 2025-2026 the Aimall Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package payment talks to the external payment gateway that authorizes
// order checkouts.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrDeclined is returned when the gateway refuses an authorization.
var ErrDeclined = errors.New("payment declined")

// AuthorizeRequest asks the gateway to authorize a payment for an order.
type AuthorizeRequest struct {
	OrderId  uuid.UUID `json:"orderId"`
	Amount   float64   `json:"amount"`
	Currency string    `json:"currency"`
}

// AuthorizeResponse is the gateway's answer.
type AuthorizeResponse struct {
	TransactionId string `json:"transactionId"`
	Status        string `json:"status"`
}

// Gateway authorizes order payments.
type Gateway interface {
	Authorize(ctx context.Context, request *AuthorizeRequest) (*AuthorizeResponse, error)
}

// Client is the HTTP client for the payment gateway.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a gateway client.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Authorize implements Gateway against the remote service.
func (c *Client) Authorize(ctx context.Context, request *AuthorizeRequest) (*AuthorizeResponse, error) {
	body, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("marshaling authorize request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/payments/authorize", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating authorize request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("authorize request failed: %w", err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading authorize response: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusCreated, http.StatusOK:
		out := &AuthorizeResponse{}

		if err := json.Unmarshal(respBody, out); err != nil {
			return nil, fmt.Errorf("unmarshaling authorize response: %w", err)
		}

		if out.Status != "approved" {
			return nil, fmt.Errorf("%w: status %s", ErrDeclined, out.Status)
		}

		return out, nil
	case http.StatusPaymentRequired, http.StatusUnprocessableEntity:
		return nil, fmt.Errorf("%w: status code %d", ErrDeclined, resp.StatusCode)
	default:
		return nil, fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, string(respBody))
	}
}

// Approved is the in-process gateway used by the simulator: it approves
// every authorization.
type Approved struct{}

// Authorize implements Gateway.
func (Approved) Authorize(_ context.Context, _ *AuthorizeRequest) (*AuthorizeResponse, error) {
	return &AuthorizeResponse{
		TransactionId: uuid.New().String(),
		Status:        "approved",
	}, nil
}
