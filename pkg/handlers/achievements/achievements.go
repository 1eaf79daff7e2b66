package achievements

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/bravequest/quest-engine/pkg/api"
	"github.com/bravequest/quest-engine/pkg/catalog"
	"github.com/bravequest/quest-engine/pkg/mapping"
	"github.com/bravequest/quest-engine/pkg/notify"
	"github.com/bravequest/quest-engine/pkg/storage"
)

// AchievementsHandler holds the dependencies for achievement-related handlers.
type AchievementsHandler struct {
	Store    storage.AchievementStore
	Notifier notify.Publisher
}

// NewAchievementsHandler creates a new AchievementsHandler.
func NewAchievementsHandler(store storage.AchievementStore, notifier notify.Publisher) *AchievementsHandler {
	return &AchievementsHandler{Store: store, Notifier: notifier}
}

// ListCatalog handles the logic for listing the full achievement catalog.
func (h *AchievementsHandler) ListCatalog(w http.ResponseWriter, r *http.Request) {
	apiAchievements := make([]*api.Achievement, len(catalog.Achievements))
	for i, def := range catalog.Achievements {
		apiAchievements[i] = mapping.ToApiAchievement(def)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiAchievements); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// ListAccountAchievements handles the logic for the achievements page: the
// catalog annotated with the account's unlock timestamps.
func (h *AchievementsHandler) ListAccountAchievements(w http.ResponseWriter, r *http.Request, accountId string) {
	unlocks, err := h.Store.ListUnlocks(r.Context(), accountId)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve achievements: %v", err), http.StatusInternalServerError)
		return
	}

	unlockedAt := make(map[string]time.Time, len(unlocks))
	for _, u := range unlocks {
		unlockedAt[u.AchievementId] = u.UnlockedAt
	}

	apiAchievements := make([]*api.Achievement, len(catalog.Achievements))
	for i, def := range catalog.Achievements {
		achievement := mapping.ToApiAchievement(def)
		if at, ok := unlockedAt[def.Id]; ok {
			achievement.UnlockedAt = &at
		}
		apiAchievements[i] = achievement
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiAchievements); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// Evaluate handles an explicit re-evaluation of the rule catalog for an
// account. Anything newly unlocked is reported to the notification
// dispatcher.
func (h *AchievementsHandler) Evaluate(w http.ResponseWriter, r *http.Request, accountId string) {
	newlyUnlocked, err := h.Store.EvaluateAchievements(r.Context(), accountId)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			http.Error(w, "Account not found", http.StatusNotFound)
		} else {
			http.Error(w, fmt.Sprintf("Failed to evaluate achievements: %v", err), http.StatusInternalServerError)
		}
		return
	}

	if len(newlyUnlocked) > 0 && h.Notifier != nil {
		event := notify.Event{
			Type:           notify.EventAchievementUnlocked,
			AccountId:      accountId,
			AchievementIds: newlyUnlocked,
			OccurredAt:     time.Now(),
		}
		if err := h.Notifier.Publish(r.Context(), event); err != nil {
			slog.Error("failed to publish achievement event", "account_id", accountId, "error", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string][]string{"unlocked_achievements": newlyUnlocked}); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
