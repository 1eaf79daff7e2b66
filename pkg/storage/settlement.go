package storage

import (
	"context"

	"github.com/bravequest/quest-engine/pkg/models"
)

// ReviewStore defines the privileged interface for settling a moderator's
// decision on a pending quest. Approval is a single atomic commit spanning
// the quest status, the account credit, and any achievement unlocks; there is
// no observable state where one happened without the others.
type ReviewStore interface {
	// ReviewQuest applies a moderator decision to a pending quest.
	// A quest that is not pending yields ErrQuestNotReviewable, so a retried
	// or duplicate review can never credit an account twice.
	ReviewQuest(ctx context.Context, questID string, decision models.ReviewDecision) (*models.SettlementResult, error)
}
