package mapping

import (
	"github.com/bravequest/quest-engine/pkg/api"
	"github.com/bravequest/quest-engine/pkg/catalog"
	"github.com/bravequest/quest-engine/pkg/levels"
	"github.com/bravequest/quest-engine/pkg/models"
)

// ToApiAccount converts a domain Account to its API representation, deriving
// the hero level from the stored XP total.
func ToApiAccount(account *models.Account) *api.Account {
	level := levels.FromXP(account.XPTotal)
	return &api.Account{
		Id:              account.Id,
		DisplayName:     account.DisplayName,
		XPTotal:         account.XPTotal,
		CoinBalance:     account.CoinBalance,
		QuestsCompleted: account.QuestsCompleted,
		Level:           level.Level,
		LevelTitle:      level.Title,
		CreatedAt:       account.CreatedAt,
	}
}

// ToDomainNewAccount converts an API NewAccount to a domain Account.
// Balances are zeroed by the storage layer.
func ToDomainNewAccount(newAccount *api.NewAccount) *models.Account {
	return &models.Account{
		Id:          newAccount.Id,
		DisplayName: newAccount.DisplayName,
	}
}

// ToApiQuest converts a domain Quest to its API representation.
func ToApiQuest(quest *models.Quest) *api.Quest {
	return &api.Quest{
		Id:           quest.Id,
		OwnerId:      quest.OwnerId,
		Description:  quest.Description,
		Category:     string(quest.Category),
		PhotoRef:     quest.PhotoRef,
		RewardPoints: quest.RewardPoints,
		Status:       string(quest.Status),
		SubmittedAt:  quest.SubmittedAt,
		UpdatedAt:    quest.UpdatedAt,
	}
}

// ToDomainNewQuest converts an API NewQuest to a domain Quest in its initial
// state. Reward points are fixed here, at submission time.
func ToDomainNewQuest(newQuest *api.NewQuest) *models.Quest {
	status := models.PENDING
	if newQuest.Draft {
		status = models.DRAFT
	}
	return &models.Quest{
		OwnerId:      newQuest.OwnerId,
		Description:  newQuest.Description,
		Category:     models.Category(newQuest.Category),
		PhotoRef:     newQuest.PhotoRef,
		RewardPoints: newQuest.RewardPoints,
		Status:       status,
	}
}

// ToApiReviewResult converts a settlement result to its API representation.
func ToApiReviewResult(result *models.SettlementResult) *api.ReviewResult {
	out := &api.ReviewResult{
		Quest:                ToApiQuest(result.Quest),
		UnlockedAchievements: result.UnlockedAchievements,
	}
	if result.Account != nil {
		out.Account = ToApiAccount(result.Account)
	}
	return out
}

// ToApiAchievement converts a catalog definition to its API representation.
func ToApiAchievement(def catalog.Definition) *api.Achievement {
	return &api.Achievement{
		Id:          def.Id,
		Name:        def.Name,
		Description: def.Description,
		Icon:        def.Icon,
	}
}

// ToApiReward converts a reward catalog entry to its API representation.
func ToApiReward(reward catalog.Reward) *api.Reward {
	return &api.Reward{
		Id:          reward.Id,
		Name:        reward.Name,
		Description: reward.Description,
		Cost:        reward.Cost,
		Image:       reward.Image,
	}
}

// ToApiRedemption converts a domain Redemption to its API representation.
func ToApiRedemption(redemption *models.Redemption) *api.Redemption {
	return &api.Redemption{
		Id:          redemption.Id,
		AccountId:   redemption.AccountId,
		RewardId:    redemption.RewardId,
		CostCharged: redemption.CostCharged,
		CreatedAt:   redemption.CreatedAt,
	}
}

// ToApiLeaderboardEntry converts an account to a leaderboard row.
func ToApiLeaderboardEntry(account *models.Account) *api.LeaderboardEntry {
	level := levels.FromXP(account.XPTotal)
	return &api.LeaderboardEntry{
		AccountId:   account.Id,
		DisplayName: account.DisplayName,
		XPTotal:     account.XPTotal,
		Level:       level.Level,
		LevelTitle:  level.Title,
	}
}
