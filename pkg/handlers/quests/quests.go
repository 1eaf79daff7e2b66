package quests

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/bravequest/quest-engine/pkg/api"
	"github.com/bravequest/quest-engine/pkg/mapping"
	"github.com/bravequest/quest-engine/pkg/models"
	"github.com/bravequest/quest-engine/pkg/notify"
	"github.com/bravequest/quest-engine/pkg/storage"
)

// QuestsHandler holds the dependencies for quest-related handlers, including
// the privileged review store and the notification publisher.
type QuestsHandler struct {
	Store    storage.QuestStore
	Reviews  storage.ReviewStore
	Notifier notify.Publisher
}

// NewQuestsHandler creates a new QuestsHandler.
func NewQuestsHandler(store storage.QuestStore, reviews storage.ReviewStore, notifier notify.Publisher) *QuestsHandler {
	return &QuestsHandler{Store: store, Reviews: reviews, Notifier: notifier}
}

// CreateQuest handles the logic for submitting a new quest or draft.
func (h *QuestsHandler) CreateQuest(w http.ResponseWriter, r *http.Request) {
	var newQuest api.NewQuest
	if err := json.NewDecoder(r.Body).Decode(&newQuest); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	domainQuest := mapping.ToDomainNewQuest(&newQuest)

	createdQuest, err := h.Store.CreateQuest(r.Context(), domainQuest)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrValidation):
			http.Error(w, fmt.Sprintf("Invalid quest: %v", err), http.StatusBadRequest)
		case errors.Is(err, storage.ErrNotFound):
			http.Error(w, "Owner account not found", http.StatusNotFound)
		default:
			http.Error(w, fmt.Sprintf("Failed to create quest: %v", err), http.StatusInternalServerError)
		}
		return
	}

	apiQuest := mapping.ToApiQuest(createdQuest)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(apiQuest); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// SubmitDraft handles the logic for moving a draft into the moderation queue.
func (h *QuestsHandler) SubmitDraft(w http.ResponseWriter, r *http.Request, questId string) {
	submittedQuest, err := h.Store.SubmitDraft(r.Context(), questId)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			http.Error(w, "Quest not found", http.StatusNotFound)
		case errors.Is(err, storage.ErrConflict):
			http.Error(w, "Quest is not a draft", http.StatusConflict)
		default:
			http.Error(w, fmt.Sprintf("Failed to submit draft: %v", err), http.StatusInternalServerError)
		}
		return
	}

	apiQuest := mapping.ToApiQuest(submittedQuest)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiQuest); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// GetQuestById handles the logic for retrieving a quest by its ID.
func (h *QuestsHandler) GetQuestById(w http.ResponseWriter, r *http.Request, questId string) {
	domainQuest, err := h.Store.GetQuest(r.Context(), questId)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			http.Error(w, "Quest not found", http.StatusNotFound)
		} else {
			http.Error(w, fmt.Sprintf("Failed to retrieve quest: %v", err), http.StatusInternalServerError)
		}
		return
	}

	apiQuest := mapping.ToApiQuest(domainQuest)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiQuest); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// ListQuestsByOwner handles the logic for an account's quest history.
func (h *QuestsHandler) ListQuestsByOwner(w http.ResponseWriter, r *http.Request, accountId string) {
	domainQuests, err := h.Store.ListQuestsByOwner(r.Context(), accountId)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve quests: %v", err), http.StatusInternalServerError)
		return
	}

	apiQuests := make([]*api.Quest, len(domainQuests))
	for i, quest := range domainQuests {
		apiQuests[i] = mapping.ToApiQuest(&quest)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiQuests); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// ListPendingQuests handles the logic for the moderation queue.
func (h *QuestsHandler) ListPendingQuests(w http.ResponseWriter, r *http.Request) {
	domainQuests, err := h.Store.ListPendingQuests(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve pending quests: %v", err), http.StatusInternalServerError)
		return
	}

	apiQuests := make([]*api.Quest, len(domainQuests))
	for i, quest := range domainQuests {
		apiQuests[i] = mapping.ToApiQuest(&quest)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiQuests); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// ReviewQuest handles a moderator decision on a pending quest. On approval
// the settlement result is reported to the notification dispatcher.
func (h *QuestsHandler) ReviewQuest(w http.ResponseWriter, r *http.Request, questId string) {
	var review api.ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&review); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	result, err := h.Reviews.ReviewQuest(r.Context(), questId, models.ReviewDecision(review.Decision))
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrValidation):
			http.Error(w, fmt.Sprintf("Invalid review: %v", err), http.StatusBadRequest)
		case errors.Is(err, storage.ErrNotFound):
			http.Error(w, "Quest not found", http.StatusNotFound)
		case errors.Is(err, storage.ErrQuestNotReviewable):
			http.Error(w, "Quest has already been reviewed", http.StatusConflict)
		case errors.Is(err, storage.ErrCommitConflict):
			http.Error(w, "Review could not be committed, please retry", http.StatusServiceUnavailable)
		default:
			http.Error(w, fmt.Sprintf("Failed to review quest: %v", err), http.StatusInternalServerError)
		}
		return
	}

	h.publishReviewEvents(r.Context(), result)

	apiResult := mapping.ToApiReviewResult(result)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiResult); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// publishReviewEvents reports a settled review to the notification
// dispatcher. Publish failures are logged; the review itself already
// committed.
func (h *QuestsHandler) publishReviewEvents(ctx context.Context, result *models.SettlementResult) {
	if h.Notifier == nil {
		return
	}

	quest := result.Quest
	now := time.Now()

	eventType := notify.EventQuestRejected
	var coins, xp int64
	if quest.Status == models.APPROVED {
		eventType = notify.EventQuestApproved
		coins = models.CoinsForPoints(quest.RewardPoints)
		xp = quest.RewardPoints
	}

	event := notify.Event{
		Type:         eventType,
		AccountId:    quest.OwnerId,
		QuestId:      quest.Id,
		CoinsAwarded: coins,
		XPAwarded:    xp,
		OccurredAt:   now,
	}
	if err := h.Notifier.Publish(ctx, event); err != nil {
		slog.Error("failed to publish review event", "quest_id", quest.Id, "error", err)
	}

	if len(result.UnlockedAchievements) > 0 {
		event := notify.Event{
			Type:           notify.EventAchievementUnlocked,
			AccountId:      quest.OwnerId,
			AchievementIds: result.UnlockedAchievements,
			OccurredAt:     now,
		}
		if err := h.Notifier.Publish(ctx, event); err != nil {
			slog.Error("failed to publish achievement event", "quest_id", quest.Id, "error", err)
		}
	}
}
