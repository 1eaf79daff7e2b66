// Package api holds the request and response shapes of the HTTP surface.
// These are deliberately separate from the domain models so the wire format
// can evolve without touching storage.
package api

import "time"

// NewAccount is the request body for creating an account.
type NewAccount struct {
	Id          string `json:"id,omitempty"`
	DisplayName string `json:"display_name"`
}

// Account is the profile view of an account ledger. Level and LevelTitle are
// derived from XPTotal on every read; balances always reflect the stored
// authoritative values.
type Account struct {
	Id              string    `json:"id"`
	DisplayName     string    `json:"display_name"`
	XPTotal         int64     `json:"xp_total"`
	CoinBalance     int64     `json:"coin_balance"`
	QuestsCompleted int64     `json:"quests_completed"`
	Level           int       `json:"level"`
	LevelTitle      string    `json:"level_title"`
	CreatedAt       time.Time `json:"created_at"`
}

// NewQuest is the request body for submitting a quest. Draft parks the quest
// out of the moderation queue until it is explicitly submitted.
type NewQuest struct {
	OwnerId      string `json:"owner_id"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	PhotoRef     string `json:"photo_ref,omitempty"`
	RewardPoints int64  `json:"reward_points"`
	Draft        bool   `json:"draft,omitempty"`
}

// Quest is the wire representation of a quest.
type Quest struct {
	Id           string    `json:"id"`
	OwnerId      string    `json:"owner_id"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	PhotoRef     string    `json:"photo_ref,omitempty"`
	RewardPoints int64     `json:"reward_points"`
	Status       string    `json:"status"`
	SubmittedAt  time.Time `json:"submitted_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ReviewRequest is a moderator's decision on a pending quest.
type ReviewRequest struct {
	Decision string `json:"decision"`
}

// ReviewResult reports what a review settled. Account and the unlocked ids
// are only present for approvals.
type ReviewResult struct {
	Quest                *Quest   `json:"quest"`
	Account              *Account `json:"account,omitempty"`
	UnlockedAchievements []string `json:"unlocked_achievements,omitempty"`
}

// Achievement is a catalog entry, optionally annotated with when the
// requesting account unlocked it.
type Achievement struct {
	Id          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Icon        string     `json:"icon"`
	UnlockedAt  *time.Time `json:"unlocked_at,omitempty"`
}

// Reward is a reward shop catalog entry.
type Reward struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Cost        int64  `json:"cost"`
	Image       string `json:"image"`
}

// RedeemRequest is the request body for spending coins on a reward.
type RedeemRequest struct {
	RewardId string `json:"reward_id"`
}

// Redemption is the wire representation of a redemption record.
type Redemption struct {
	Id          string    `json:"id"`
	AccountId   string    `json:"account_id"`
	RewardId    string    `json:"reward_id"`
	CostCharged int64     `json:"cost_charged"`
	CreatedAt   time.Time `json:"created_at"`
}

// LeaderboardEntry is one row of the XP leaderboard.
type LeaderboardEntry struct {
	AccountId   string `json:"account_id"`
	DisplayName string `json:"display_name"`
	XPTotal     int64  `json:"xp_total"`
	Level       int    `json:"level"`
	LevelTitle  string `json:"level_title"`
}
