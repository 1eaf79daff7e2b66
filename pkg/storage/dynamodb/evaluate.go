package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/bravequest/quest-engine/pkg/catalog"
	"github.com/bravequest/quest-engine/pkg/models"
)

// EvaluateAchievements re-runs the rule catalog against an account's current
// aggregates and unlocks anything newly qualified.
//
// Each unlock is its own create-if-absent put: when two evaluations race, the
// loser's ConditionalCheckFailedException is swallowed as a no-op, which is
// what keeps unlocks exactly-once without any external locking. The returned
// ids are only the unlocks this call actually wrote.
func (s *Store) EvaluateAchievements(ctx context.Context, accountID string) ([]string, error) {
	account, err := s.GetAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to get account for evaluation: %w", err)
	}

	aggregates, err := s.loadAggregates(ctx, account)
	if err != nil {
		return nil, err
	}
	unlocked, err := s.unlockedSet(ctx, accountID)
	if err != nil {
		return nil, err
	}

	newly := catalog.NewlyUnlocked(aggregates, unlocked)
	written := make([]string, 0, len(newly))
	now := time.Now()

	for _, def := range newly {
		unlock := models.AchievementUnlock{
			AccountId:     accountID,
			AchievementId: def.Id,
			UnlockedAt:    now,
		}
		unlockAV, err := attributevalue.MarshalMap(unlock)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal achievement unlock: %w", err)
		}

		input := &dynamodb.PutItemInput{
			TableName:           aws.String(s.UnlocksTableName),
			Item:                unlockAV,
			ConditionExpression: aws.String("attribute_not_exists(account_id)"),
		}

		if _, err := s.Client.PutItem(ctx, input); err != nil {
			var condCheckFailed *types.ConditionalCheckFailedException
			if errors.As(err, &condCheckFailed) {
				// A concurrent evaluation won the race; the record exists.
				continue
			}
			return nil, fmt.Errorf("failed to write achievement unlock: %w", err)
		}
		written = append(written, def.Id)
	}

	return written, nil
}
