// Package notify reports engine events to the external notification
// dispatcher. The engine never renders anything itself; it only emits events
// so the dispatcher can show toasts, confetti, and achievement banners.
package notify

import (
	"context"
	"time"
)

// EventType identifies what an event announces.
type EventType string

const (
	EventQuestApproved       EventType = "quest_approved"
	EventQuestRejected       EventType = "quest_rejected"
	EventAchievementUnlocked EventType = "achievement_unlocked"
	EventRewardRedeemed      EventType = "reward_redeemed"
)

// Event is the message published to the notification dispatcher.
type Event struct {
	Type           EventType `json:"type"`
	AccountId      string    `json:"account_id"`
	QuestId        string    `json:"quest_id,omitempty"`
	AchievementIds []string  `json:"achievement_ids,omitempty"`
	RewardId       string    `json:"reward_id,omitempty"`
	CoinsAwarded   int64     `json:"coins_awarded,omitempty"`
	XPAwarded      int64     `json:"xp_awarded,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// Publisher defines the interface for delivering events to the dispatcher.
type Publisher interface {
	// Publish delivers an event. Failures must not fail the operation that
	// produced the event; callers log and move on.
	Publish(ctx context.Context, event Event) error
}

// NoOpPublisher is a publisher that does nothing. Used in tests and when no
// queue is configured.
type NoOpPublisher struct{}

// Publish does nothing.
func (p *NoOpPublisher) Publish(ctx context.Context, event Event) error {
	return nil
}
