package storage

import (
	"context"

	"github.com/greenmiles/odometer-rewards/pkg/models"
)

// AccountStore defines the interface for managing user accounts. The token
// balance is deliberately absent from this interface: it is only mutated by
// the reconciler's confirmation write (see ReconciliationStore).
type AccountStore interface {
	// GetAccount retrieves a user's account by their user ID.
	GetAccount(ctx context.Context, userID string) (*models.Account, error)

	// CreateAccount creates a new account for a user.
	CreateAccount(ctx context.Context, account *models.Account) (*models.Account, error)
}
