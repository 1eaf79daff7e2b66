package redemptions

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

// RedemptionsHandler holds the dependencies for reward shop handlers.
type RedemptionsHandler struct {
	Store    storage.RedemptionStore
	Notifier notify.Publisher
}

// NewRedemptionsHandler creates a new RedemptionsHandler.
func NewRedemptionsHandler(store storage.RedemptionStore, notifier notify.Publisher) *RedemptionsHandler {
	return &RedemptionsHandler{Store: store, Notifier: notifier}
}

// ListRewards handles the logic for listing the reward catalog.
func (h *RedemptionsHandler) ListRewards(w http.ResponseWriter, r *http.Request) {
	apiRewards := make([]*api.Reward, len(catalog.Rewards))
	for i, reward := range catalog.Rewards {
		apiRewards[i] = mapping.ToApiReward(reward)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiRewards); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// Redeem handles the logic for spending coins on a reward.
func (h *RedemptionsHandler) Redeem(w http.ResponseWriter, r *http.Request, accountId string) {
	var req api.RedeemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	redemption, err := h.Store.RedeemReward(r.Context(), accountId, req.RewardId)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			http.Error(w, "Account or reward not found", http.StatusNotFound)
		case errors.Is(err, storage.ErrInsufficientFunds):
			http.Error(w, "Insufficient coins", http.StatusUnprocessableEntity)
		case errors.Is(err, storage.ErrCommitConflict):
			http.Error(w, "Redemption could not be committed, please retry", http.StatusServiceUnavailable)
		default:
			http.Error(w, fmt.Sprintf("Failed to redeem reward: %v", err), http.StatusInternalServerError)
		}
		return
	}

	if h.Notifier != nil {
		event := notify.Event{
			Type:       notify.EventRewardRedeemed,
			AccountId:  accountId,
			RewardId:   redemption.RewardId,
			OccurredAt: time.Now(),
		}
		if err := h.Notifier.Publish(r.Context(), event); err != nil {
			slog.Error("failed to publish redemption event", "account_id", accountId, "error", err)
		}
	}

	apiRedemption := mapping.ToApiRedemption(redemption)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(apiRedemption); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// ListRedemptions handles the logic for an account's redemption history.
func (h *RedemptionsHandler) ListRedemptions(w http.ResponseWriter, r *http.Request, accountId string) {
	domainRedemptions, err := h.Store.ListRedemptions(r.Context(), accountId)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve redemptions: %v", err), http.StatusInternalServerError)
		return
	}

	apiRedemptions := make([]*api.Redemption, len(domainRedemptions))
	for i, redemption := range domainRedemptions {
		apiRedemptions[i] = mapping.ToApiRedemption(&redemption)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiRedemptions); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
