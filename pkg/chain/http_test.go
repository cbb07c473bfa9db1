package chain

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubmitBatch(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var received Batch
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/distributions", r.URL.Path)
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			json.NewEncoder(w).Encode(submitResponse{TxRef: "0xabc123"})
		}))
		defer server.Close()

		client := NewHTTPClient(server.URL, "test-key")
		batch := Batch{
			WalletAddress: "0xwallet",
			Items:         []BatchItem{{RewardID: "rew-1", Amount: "1.50750050"}},
		}

		txRef, err := client.SubmitBatch(context.Background(), batch)

		assert.NoError(t, err)
		assert.Equal(t, "0xabc123", txRef)
		assert.Equal(t, "0xwallet", received.WalletAddress)
		assert.Len(t, received.Items, 1)
	})

	t.Run("Server Error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "out of gas", http.StatusBadGateway)
		}))
		defer server.Close()

		client := NewHTTPClient(server.URL, "test-key")

		_, err := client.SubmitBatch(context.Background(), Batch{WalletAddress: "0xwallet"})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "502")
	})

	t.Run("Missing Transaction Reference", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(submitResponse{})
		}))
		defer server.Close()

		client := NewHTTPClient(server.URL, "test-key")

		_, err := client.SubmitBatch(context.Background(), Batch{WalletAddress: "0xwallet"})

		assert.Error(t, err)
	})
}

func TestGetTransactionStatus(t *testing.T) {
	t.Run("Confirmed", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/transactions/0xabc123", r.URL.Path)
			json.NewEncoder(w).Encode(TxStatus{State: TxConfirmed, BlockNumber: 1234, GasUsed: 21000})
		}))
		defer server.Close()

		client := NewHTTPClient(server.URL, "test-key")

		status, err := client.GetTransactionStatus(context.Background(), "0xabc123")

		assert.NoError(t, err)
		assert.Equal(t, TxConfirmed, status.State)
		assert.Equal(t, int64(1234), status.BlockNumber)
	})

	t.Run("Not Found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		}))
		defer server.Close()

		client := NewHTTPClient(server.URL, "test-key")

		_, err := client.GetTransactionStatus(context.Background(), "0xmissing")

		assert.ErrorIs(t, err, ErrTxNotFound)
	})
}
