package storage

import (
	"context"

	"github.com/bravequest/quest-engine/pkg/models"
)

// RedemptionStore defines the interface for spending coins against the
// reward catalog.
type RedemptionStore interface {
	// RedeemReward debits the reward's cost from the account and records the
	// redemption as one atomic commit. The balance check happens at commit
	// time, so two racing redemptions can never both spend the same coins.
	RedeemReward(ctx context.Context, accountID, rewardID string) (*models.Redemption, error)

	// ListRedemptions retrieves an account's redemption history, newest first.
	ListRedemptions(ctx context.Context, accountID string) ([]models.Redemption, error)
}
