package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/bravequest/quest-engine/pkg/models"
)

// ListUnlocks retrieves all achievement unlocks for an account.
func (s *Store) ListUnlocks(ctx context.Context, accountID string) ([]models.AchievementUnlock, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.UnlocksTableName),
		KeyConditionExpression: aws.String("account_id = :account"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":account": &types.AttributeValueMemberS{Value: accountID},
		},
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query achievement unlocks: %w", err)
	}

	var unlocks []models.AchievementUnlock
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &unlocks); err != nil {
		return nil, fmt.Errorf("failed to unmarshal achievement unlocks: %w", err)
	}

	return unlocks, nil
}

// unlockedSet returns the achievement ids already unlocked for an account.
func (s *Store) unlockedSet(ctx context.Context, accountID string) (map[string]bool, error) {
	unlocks, err := s.ListUnlocks(ctx, accountID)
	if err != nil {
		return nil, err
	}

	set := make(map[string]bool, len(unlocks))
	for _, u := range unlocks {
		set[u.AchievementId] = true
	}
	return set, nil
}
