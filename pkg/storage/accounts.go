package storage

import (
	"context"

	"github.com/bravequest/quest-engine/pkg/models"
)

// AccountStore defines the interface for managing account ledgers.
// Balances are mutated only by the settlement and redemption operations;
// readers always fetch the authoritative stored value.
type AccountStore interface {
	// CreateAccount creates a new account with zeroed balances.
	CreateAccount(ctx context.Context, account *models.Account) (*models.Account, error)

	// GetAccount retrieves an account by its ID.
	GetAccount(ctx context.Context, accountID string) (*models.Account, error)

	// ListAccounts retrieves all accounts, e.g. for the leaderboard.
	ListAccounts(ctx context.Context) ([]models.Account, error)
}
