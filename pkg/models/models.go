package models

import (
	"time"
)

// QuestStatus defines the possible states of a quest's lifecycle.
type QuestStatus string

const (
	DRAFT    QuestStatus = "draft"
	PENDING  QuestStatus = "pending"
	APPROVED QuestStatus = "approved"
	REJECTED QuestStatus = "rejected"
)

// ReviewDecision is a moderator's verdict on a pending quest.
type ReviewDecision string

const (
	DecisionApproved ReviewDecision = "approved"
	DecisionRejected ReviewDecision = "rejected"
)

// Category identifies the kind of good deed a quest claims.
type Category string

const (
	CategoryEnvironment Category = "environment"
	CategoryAnimals     Category = "animals"
	CategoryCommunity   Category = "community"
	CategoryEducation   Category = "education"
	CategoryHealth      Category = "health"
)

// Categories is the closed set of known quest categories.
var Categories = []Category{
	CategoryEnvironment,
	CategoryAnimals,
	CategoryCommunity,
	CategoryEducation,
	CategoryHealth,
}

// KnownCategory reports whether c is a member of the closed category set.
func KnownCategory(c Category) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Account represents the internal domain model for a user's account ledger.
// Balances and counters are mutated only through the storage layer's credit
// and debit operations; Version is the optimistic concurrency counter.
type Account struct {
	Id              string    `json:"id" dynamodbav:"id"`
	DisplayName     string    `json:"display_name" dynamodbav:"display_name"`
	XPTotal         int64     `json:"xp_total" dynamodbav:"xp_total"`
	CoinBalance     int64     `json:"coin_balance" dynamodbav:"coin_balance"`
	QuestsCompleted int64     `json:"quests_completed" dynamodbav:"quests_completed"`
	Version         int64     `json:"version" dynamodbav:"version"`
	CreatedAt       time.Time `json:"created_at" dynamodbav:"created_at"`
}

// CoinsForPoints computes the coin reward credited when a quest worth the
// given points is approved.
func CoinsForPoints(points int64) int64 {
	return points / 10
}

// Quest represents a user-submitted good deed awaiting or past review.
// RewardPoints is fixed at submission time; once the status is APPROVED or
// REJECTED the quest is immutable.
type Quest struct {
	Id           string      `dynamodbav:"id"`
	OwnerId      string      `dynamodbav:"owner_id"`
	Description  string      `dynamodbav:"description"`
	Category     Category    `dynamodbav:"category"`
	PhotoRef     string      `dynamodbav:"photo_ref,omitempty"`
	RewardPoints int64       `dynamodbav:"reward_points"`
	Status       QuestStatus `dynamodbav:"status"`
	SubmittedAt  time.Time   `dynamodbav:"submitted_at"`
	UpdatedAt    time.Time   `dynamodbav:"updated_at"`
}

// Terminal reports whether the quest has reached a final review state.
func (q *Quest) Terminal() bool {
	return q.Status == APPROVED || q.Status == REJECTED
}

// AchievementUnlock records that an account unlocked an achievement.
// At most one record per (account, achievement) pair ever exists.
type AchievementUnlock struct {
	AccountId     string    `dynamodbav:"account_id"`
	AchievementId string    `dynamodbav:"achievement_id"`
	UnlockedAt    time.Time `dynamodbav:"unlocked_at"`
}

// Redemption records a coin debit against a reward catalog entry.
// Records are append-only; fulfillment tracking is external.
type Redemption struct {
	Id          string    `dynamodbav:"id"`
	AccountId   string    `dynamodbav:"account_id"`
	RewardId    string    `dynamodbav:"reward_id"`
	CostCharged int64     `dynamodbav:"cost_charged"`
	CreatedAt   time.Time `dynamodbav:"created_at"`
}

// SettlementResult is what a successful approval commit produced: the settled
// quest, the credited account as written, and the achievements unlocked by
// this settlement. The unlock records in the store remain the source of
// truth; the ids here exist so callers can notify the user.
type SettlementResult struct {
	Quest                *Quest
	Account              *Account
	UnlockedAchievements []string
}
