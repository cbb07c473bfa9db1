// Package chain talks to the token ledger service that executes reward
// distributions on-chain.
package chain

import (
	"context"
	"errors"
)

// ErrTxNotFound is returned when the ledger has no record of a transaction
// reference.
var ErrTxNotFound = errors.New("transaction not found on ledger")

// BatchItem is one reward's share of a batch distribution.
type BatchItem struct {
	RewardID    string  `json:"reward_id"`
	Amount      string  `json:"amount"`
	Miles       float64 `json:"miles"`
	CarbonGrams float64 `json:"carbon_grams"`
	ProofRef    string  `json:"proof_ref,omitempty"`
}

// Batch is one ledger submission: all of a user's distributable rewards,
// paid to a single wallet in one transaction.
type Batch struct {
	WalletAddress string      `json:"wallet_address"`
	Items         []BatchItem `json:"items"`
}

// TxState is the ledger's view of a submitted transaction.
type TxState string

const (
	TxPending   TxState = "PENDING"
	TxConfirmed TxState = "CONFIRMED"
	TxReverted  TxState = "REVERTED"
)

// TxStatus is the result of polling a transaction.
type TxStatus struct {
	State       TxState `json:"state"`
	BlockNumber int64   `json:"block_number,omitempty"`
	GasUsed     int64   `json:"gas_used,omitempty"`
	Reason      string  `json:"reason,omitempty"`
}

// Client defines the interface for the ledger service.
type Client interface {
	// SubmitBatch submits one batch distribution and returns the ledger's
	// transaction reference.
	SubmitBatch(ctx context.Context, batch Batch) (string, error)

	// GetTransactionStatus polls the current state of a submitted
	// transaction.
	GetTransactionStatus(ctx context.Context, txRef string) (*TxStatus, error)
}
