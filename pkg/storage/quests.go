package storage

import (
	"context"

	"github.com/bravequest/quest-engine/pkg/models"
)

// QuestReader defines the interface for reading quest data.
type QuestReader interface {
	// GetQuest retrieves a quest by its ID.
	GetQuest(ctx context.Context, questID string) (*models.Quest, error)

	// ListQuestsByOwner retrieves all quests submitted by an account.
	ListQuestsByOwner(ctx context.Context, accountID string) ([]models.Quest, error)

	// ListPendingQuests retrieves the moderation queue, oldest first.
	ListPendingQuests(ctx context.Context) ([]models.Quest, error)
}

// QuestManager defines the interface for creating quests and moving drafts
// into the moderation queue. Review is deliberately not part of this
// interface; see ReviewStore.
type QuestManager interface {
	// CreateQuest validates and persists a new quest in DRAFT or PENDING state.
	CreateQuest(ctx context.Context, quest *models.Quest) (*models.Quest, error)

	// SubmitDraft transitions a quest from DRAFT to PENDING.
	SubmitDraft(ctx context.Context, questID string) (*models.Quest, error)
}

// QuestStore combines the reader and manager interfaces.
type QuestStore interface {
	QuestReader
	QuestManager
}
