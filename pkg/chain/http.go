package chain

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// HTTPClient implements Client against the ledger service's REST API.
type HTTPClient struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewHTTPClient creates a new HTTPClient.
func NewHTTPClient(baseURL, apiKey string) *HTTPClient {
	return &HTTPClient{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Make sure we conform to the interface
var _ Client = (*HTTPClient)(nil)

type submitResponse struct {
	TxRef string `json:"tx_ref"`
}

// SubmitBatch posts the batch to the ledger and returns its transaction
// reference.
func (c *HTTPClient) SubmitBatch(ctx context.Context, batch Batch) (string, error) {
	body, err := json.Marshal(batch)
	if err != nil {
		return "", fmt.Errorf("failed to marshal batch: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/v1/distributions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build submit request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("ledger submission failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("ledger submission returned %d: %s", resp.StatusCode, msg)
	}

	var result submitResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode submit response: %w", err)
	}
	if result.TxRef == "" {
		return "", fmt.Errorf("ledger submission returned no transaction reference")
	}

	return result.TxRef, nil
}

// GetTransactionStatus polls the ledger for a transaction's state.
func (c *HTTPClient) GetTransactionStatus(ctx context.Context, txRef string) (*TxStatus, error) {
	endpoint := fmt.Sprintf("%s/v1/transactions/%s", c.BaseURL, url.PathEscape(txRef))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build status request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ledger status poll failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrTxNotFound
	}
	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("ledger status poll returned %d: %s", resp.StatusCode, msg)
	}

	var status TxStatus
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, fmt.Errorf("failed to decode status response: %w", err)
	}

	return &status, nil
}
