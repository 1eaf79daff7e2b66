package storage

import (
	"context"

	"github.com/bravequest/quest-engine/pkg/models"
)

// AchievementStore defines the interface for achievement unlock records.
type AchievementStore interface {
	// ListUnlocks retrieves all achievement unlocks for an account.
	ListUnlocks(ctx context.Context, accountID string) ([]models.AchievementUnlock, error)

	// EvaluateAchievements re-runs the rule catalog against the account's
	// current aggregates and unlocks anything newly qualified, exactly once.
	// It returns the ids of achievements unlocked by this call.
	EvaluateAchievements(ctx context.Context, accountID string) ([]string, error)
}
