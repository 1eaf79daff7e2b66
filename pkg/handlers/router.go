package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bravequest/quest-engine/pkg/handlers/accounts"
	"github.com/bravequest/quest-engine/pkg/handlers/achievements"
	"github.com/bravequest/quest-engine/pkg/handlers/quests"
	"github.com/bravequest/quest-engine/pkg/handlers/redemptions"
	"github.com/bravequest/quest-engine/pkg/middleware"
	"github.com/bravequest/quest-engine/pkg/notify"
	"github.com/bravequest/quest-engine/pkg/storage"
)

// NewRouter assembles the resource handlers into the engine's HTTP surface.
func NewRouter(store storage.Storage, notifier notify.Publisher, logger *slog.Logger) chi.Router {
	accountsHandler := accounts.NewAccountsHandler(store)
	questsHandler := quests.NewQuestsHandler(store, store, notifier)
	achievementsHandler := achievements.NewAchievementsHandler(store, notifier)
	redemptionsHandler := redemptions.NewRedemptionsHandler(store, notifier)

	router := chi.NewRouter()
	router.Use(middleware.NewStructuredLogger(logger))

	router.Post("/accounts", accountsHandler.CreateAccount)
	router.Get("/accounts/{accountId}", func(w http.ResponseWriter, r *http.Request) {
		accountsHandler.GetAccountById(w, r, chi.URLParam(r, "accountId"))
	})
	router.Get("/leaderboard", accountsHandler.Leaderboard)

	router.Post("/quests", questsHandler.CreateQuest)
	router.Get("/quests/pending", questsHandler.ListPendingQuests)
	router.Get("/quests/{questId}", func(w http.ResponseWriter, r *http.Request) {
		questsHandler.GetQuestById(w, r, chi.URLParam(r, "questId"))
	})
	router.Post("/quests/{questId}/submit", func(w http.ResponseWriter, r *http.Request) {
		questsHandler.SubmitDraft(w, r, chi.URLParam(r, "questId"))
	})
	router.Post("/quests/{questId}/review", func(w http.ResponseWriter, r *http.Request) {
		questsHandler.ReviewQuest(w, r, chi.URLParam(r, "questId"))
	})
	router.Get("/accounts/{accountId}/quests", func(w http.ResponseWriter, r *http.Request) {
		questsHandler.ListQuestsByOwner(w, r, chi.URLParam(r, "accountId"))
	})

	router.Get("/achievements", achievementsHandler.ListCatalog)
	router.Get("/accounts/{accountId}/achievements", func(w http.ResponseWriter, r *http.Request) {
		achievementsHandler.ListAccountAchievements(w, r, chi.URLParam(r, "accountId"))
	})
	router.Post("/accounts/{accountId}/achievements/evaluate", func(w http.ResponseWriter, r *http.Request) {
		achievementsHandler.Evaluate(w, r, chi.URLParam(r, "accountId"))
	})

	router.Get("/rewards", redemptionsHandler.ListRewards)
	router.Post("/accounts/{accountId}/redemptions", func(w http.ResponseWriter, r *http.Request) {
		redemptionsHandler.Redeem(w, r, chi.URLParam(r, "accountId"))
	})
	router.Get("/accounts/{accountId}/redemptions", func(w http.ResponseWriter, r *http.Request) {
		redemptionsHandler.ListRedemptions(w, r, chi.URLParam(r, "accountId"))
	})

	return router
}
