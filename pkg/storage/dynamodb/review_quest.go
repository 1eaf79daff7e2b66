package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/bravequest/quest-engine/pkg/catalog"
	"github.com/bravequest/quest-engine/pkg/models"
	"github.com/bravequest/quest-engine/pkg/storage"
)

// ReviewQuest applies a moderator decision to a pending quest.
//
// Rejection is a single conditional status update. Approval settles the quest
// in one TransactWriteItems commit: the status transition, the account credit
// (XP, coins, completed counter) and any achievement unlocks all land
// together or not at all. Achievement rules are evaluated against the
// post-credit aggregates, never against stale values.
//
// A quest that is no longer pending fails the commit's status condition and
// surfaces ErrQuestNotReviewable, which is what protects against a retried or
// duplicate review crediting twice. Version races on the account re-read and
// retry up to maxCommitAttempts.
func (s *Store) ReviewQuest(ctx context.Context, questID string, decision models.ReviewDecision) (*models.SettlementResult, error) {
	if decision != models.DecisionApproved && decision != models.DecisionRejected {
		return nil, fmt.Errorf("unknown review decision %q: %w", decision, storage.ErrValidation)
	}

	quest, err := s.GetQuest(ctx, questID)
	if err != nil {
		return nil, fmt.Errorf("failed to get quest for review: %w", err)
	}
	if quest.Status != models.PENDING {
		return nil, fmt.Errorf("quest %s is %s: %w", questID, quest.Status, storage.ErrQuestNotReviewable)
	}

	if decision == models.DecisionRejected {
		return s.rejectQuest(ctx, quest)
	}

	for attempt := 1; attempt <= maxCommitAttempts; attempt++ {
		result, retry, err := s.settleApproval(ctx, quest)
		if err != nil {
			return nil, err
		}
		if !retry {
			return result, nil
		}
		slog.Log(ctx, slog.LevelDebug, "settlement commit lost a concurrent race, retrying",
			"quest_id", questID, "attempt", attempt)
	}

	return nil, fmt.Errorf("approval of quest %s: %w", questID, storage.ErrCommitConflict)
}

// rejectQuest transitions a pending quest to REJECTED. No ledger is touched.
func (s *Store) rejectQuest(ctx context.Context, quest *models.Quest) (*models.SettlementResult, error) {
	now := time.Now()
	nowAV, err := attributevalue.Marshal(now)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal timestamp for rejection: %w", err)
	}

	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.QuestsTableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: quest.Id},
		},
		UpdateExpression:    aws.String("SET #status = :rejected, updated_at = :now"),
		ConditionExpression: aws.String("#status = :pending"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rejected": &types.AttributeValueMemberS{Value: string(models.REJECTED)},
			":pending":  &types.AttributeValueMemberS{Value: string(models.PENDING)},
			":now":      nowAV,
		},
	}

	if _, err := s.Client.UpdateItem(ctx, input); err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return nil, fmt.Errorf("quest %s was reviewed concurrently: %w", quest.Id, storage.ErrQuestNotReviewable)
		}
		return nil, fmt.Errorf("failed to reject quest: %w", err)
	}

	rejected := *quest
	rejected.Status = models.REJECTED
	rejected.UpdatedAt = now

	return &models.SettlementResult{Quest: &rejected}, nil
}

// settleApproval attempts one atomic approval commit. The retry return value
// is true when the commit lost an optimistic-concurrency race (account
// version moved, or a concurrent evaluation created one of our unlocks) and
// the caller should re-read and try again.
func (s *Store) settleApproval(ctx context.Context, quest *models.Quest) (result *models.SettlementResult, retry bool, err error) {
	// 1. Read everything the commit depends on.
	account, err := s.GetAccount(ctx, quest.OwnerId)
	if err != nil {
		return nil, false, fmt.Errorf("failed to get owner account for settlement: %w", err)
	}
	aggregates, err := s.loadAggregates(ctx, account)
	if err != nil {
		return nil, false, err
	}
	unlocked, err := s.unlockedSet(ctx, account.Id)
	if err != nil {
		return nil, false, err
	}

	// 2. Fold this quest's credit into the aggregates before evaluating the
	// rule catalog, so achievements see the post-settlement state.
	aggregates.XPTotal += quest.RewardPoints
	aggregates.QuestsCompleted++
	aggregates.CategoryCounts[quest.Category]++

	newly := catalog.NewlyUnlocked(aggregates, unlocked)
	coins := models.CoinsForPoints(quest.RewardPoints)
	now := time.Now()

	// 3. Build the single atomic commit.
	nowAV, err := attributevalue.Marshal(now)
	if err != nil {
		return nil, false, fmt.Errorf("failed to marshal settlement timestamp: %w", err)
	}

	items := []types.TransactWriteItem{
		{
			// Operation 1: Mark the quest approved, only if still pending.
			Update: &types.Update{
				TableName: aws.String(s.QuestsTableName),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: quest.Id},
				},
				UpdateExpression:    aws.String("SET #status = :approved, updated_at = :now"),
				ConditionExpression: aws.String("#status = :pending"),
				ExpressionAttributeNames: map[string]string{
					"#status": "status",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":approved": &types.AttributeValueMemberS{Value: string(models.APPROVED)},
					":pending":  &types.AttributeValueMemberS{Value: string(models.PENDING)},
					":now":      nowAV,
				},
			},
		},
		{
			// Operation 2: Credit the owner's ledger.
			Update: &types.Update{
				TableName: aws.String(s.AccountsTableName),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: account.Id},
				},
				UpdateExpression:    aws.String("SET xp_total = xp_total + :points, coin_balance = coin_balance + :coins, quests_completed = quests_completed + :one, version = version + :one"),
				ConditionExpression: aws.String("attribute_exists(id) AND version = :version"),
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":points":  &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", quest.RewardPoints)},
					":coins":   &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", coins)},
					":one":     &types.AttributeValueMemberN{Value: "1"},
					":version": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", account.Version)},
				},
			},
		},
	}

	unlockedIds := make([]string, 0, len(newly))
	for _, def := range newly {
		unlock := models.AchievementUnlock{
			AccountId:     account.Id,
			AchievementId: def.Id,
			UnlockedAt:    now,
		}
		unlockAV, err := attributevalue.MarshalMap(unlock)
		if err != nil {
			return nil, false, fmt.Errorf("failed to marshal achievement unlock: %w", err)
		}
		items = append(items, types.TransactWriteItem{
			// Create-if-absent keeps unlocks exactly-once under concurrent
			// settlement of the same account.
			Put: &types.Put{
				TableName:           aws.String(s.UnlocksTableName),
				Item:                unlockAV,
				ConditionExpression: aws.String("attribute_not_exists(account_id)"),
			},
		})
		unlockedIds = append(unlockedIds, def.Id)
	}

	// 4. Execute the commit.
	_, err = s.Client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) && len(tce.CancellationReasons) > 0 {
			// Reason 0 is the quest status condition: someone else reviewed it.
			if code := tce.CancellationReasons[0].Code; code != nil && *code == "ConditionalCheckFailed" {
				return nil, false, fmt.Errorf("quest %s was reviewed concurrently: %w", quest.Id, storage.ErrQuestNotReviewable)
			}
			// Any other failed condition is a lost optimistic race; re-read
			// and recompute.
			for _, reason := range tce.CancellationReasons[1:] {
				if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
					return nil, true, nil
				}
			}
		}
		return nil, false, fmt.Errorf("failed to execute settlement transaction: %w", err)
	}

	// 5. Report the post-commit state.
	settledQuest := *quest
	settledQuest.Status = models.APPROVED
	settledQuest.UpdatedAt = now

	credited := *account
	credited.XPTotal += quest.RewardPoints
	credited.CoinBalance += coins
	credited.QuestsCompleted++
	credited.Version++

	return &models.SettlementResult{
		Quest:                &settledQuest,
		Account:              &credited,
		UnlockedAchievements: unlockedIds,
	}, false, nil
}

// loadAggregates builds the rule-engine view of an account: current XP and
// completed-quest totals plus approved quests per category.
func (s *Store) loadAggregates(ctx context.Context, account *models.Account) (catalog.Aggregates, error) {
	approved, err := s.listApprovedQuests(ctx, account.Id)
	if err != nil {
		return catalog.Aggregates{}, err
	}

	counts := make(map[models.Category]int64)
	for _, q := range approved {
		counts[q.Category]++
	}

	return catalog.Aggregates{
		XPTotal:         account.XPTotal,
		QuestsCompleted: account.QuestsCompleted,
		CategoryCounts:  counts,
	}, nil
}
