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
	"github.com/bravequest/quest-engine/pkg/models"
	"github.com/bravequest/quest-engine/pkg/storage"
	"github.com/google/uuid"
)

const (
	// ownerQuestsGSI indexes quests by owner for history and aggregate reads.
	ownerQuestsGSI = "owner_id-submitted_at-index"
	// pendingQuestsGSI indexes quests by status for the moderation queue.
	pendingQuestsGSI = "status-submitted_at-index"

	minDescriptionLen = 10
	maxDescriptionLen = 200
)

// validateNewQuest rejects malformed submissions before any write happens.
func validateNewQuest(quest *models.Quest) error {
	if !models.KnownCategory(quest.Category) {
		return fmt.Errorf("unknown category %q: %w", quest.Category, storage.ErrValidation)
	}
	if quest.RewardPoints <= 0 {
		return fmt.Errorf("reward points must be positive: %w", storage.ErrValidation)
	}
	if len(quest.Description) < minDescriptionLen || len(quest.Description) > maxDescriptionLen {
		return fmt.Errorf("description must be %d-%d characters: %w", minDescriptionLen, maxDescriptionLen, storage.ErrValidation)
	}
	if quest.Status != models.DRAFT && quest.Status != models.PENDING {
		return fmt.Errorf("new quest status must be draft or pending: %w", storage.ErrValidation)
	}
	return nil
}

// CreateQuest validates and persists a new quest submission.
func (s *Store) CreateQuest(ctx context.Context, quest *models.Quest) (*models.Quest, error) {
	if err := validateNewQuest(quest); err != nil {
		return nil, err
	}

	// The owner must exist before we accept a quest for it.
	if _, err := s.GetAccount(ctx, quest.OwnerId); err != nil {
		return nil, fmt.Errorf("failed to resolve quest owner: %w", err)
	}

	now := time.Now()
	quest.Id = uuid.New().String()
	quest.SubmittedAt = now
	quest.UpdatedAt = now

	questAV, err := attributevalue.MarshalMap(quest)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal quest: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName:           aws.String(s.QuestsTableName),
		Item:                questAV,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	}

	if _, err := s.Client.PutItem(ctx, input); err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return nil, fmt.Errorf("quest %s already exists: %w", quest.Id, storage.ErrConflict)
		}
		return nil, fmt.Errorf("failed to create quest in DynamoDB: %w", err)
	}

	return quest, nil
}

// SubmitDraft transitions a quest from DRAFT to PENDING. Any other current
// status fails the conditional update and surfaces a conflict.
func (s *Store) SubmitDraft(ctx context.Context, questID string) (*models.Quest, error) {
	nowAV, err := attributevalue.Marshal(time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal timestamp for draft submission: %w", err)
	}

	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.QuestsTableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: questID},
		},
		UpdateExpression:    aws.String("SET #status = :pending, updated_at = :now"),
		ConditionExpression: aws.String("attribute_exists(id) AND #status = :draft"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending": &types.AttributeValueMemberS{Value: string(models.PENDING)},
			":draft":   &types.AttributeValueMemberS{Value: string(models.DRAFT)},
			":now":     nowAV,
		},
		ReturnValues: types.ReturnValueAllNew,
	}

	result, err := s.Client.UpdateItem(ctx, input)
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			// Distinguish a missing quest from one already past draft.
			if _, getErr := s.GetQuest(ctx, questID); getErr != nil {
				return nil, getErr
			}
			return nil, fmt.Errorf("quest %s is not a draft: %w", questID, storage.ErrConflict)
		}
		return nil, fmt.Errorf("failed to submit draft quest: %w", err)
	}

	var quest models.Quest
	if err := attributevalue.UnmarshalMap(result.Attributes, &quest); err != nil {
		return nil, fmt.Errorf("failed to unmarshal submitted quest: %w", err)
	}

	return &quest, nil
}

// GetQuest retrieves a quest from DynamoDB by its ID.
func (s *Store) GetQuest(ctx context.Context, questID string) (*models.Quest, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"id": questID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal quest ID: %w", err)
	}

	input := &dynamodb.GetItemInput{
		TableName: aws.String(s.QuestsTableName),
		Key:       key,
	}

	result, err := s.Client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get quest from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, fmt.Errorf("quest %s: %w", questID, storage.ErrNotFound)
	}

	var quest models.Quest
	if err := attributevalue.UnmarshalMap(result.Item, &quest); err != nil {
		return nil, fmt.Errorf("failed to unmarshal quest: %w", err)
	}

	return &quest, nil
}

// ListQuestsByOwner retrieves all quests submitted by an account, newest first.
func (s *Store) ListQuestsByOwner(ctx context.Context, accountID string) ([]models.Quest, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.QuestsTableName),
		IndexName:              aws.String(ownerQuestsGSI),
		KeyConditionExpression: aws.String("owner_id = :owner"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":owner": &types.AttributeValueMemberS{Value: accountID},
		},
		ScanIndexForward: aws.Bool(false),
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query quests by owner: %w", err)
	}

	var quests []models.Quest
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &quests); err != nil {
		return nil, fmt.Errorf("failed to unmarshal quests: %w", err)
	}

	return quests, nil
}

// ListPendingQuests retrieves the moderation queue, oldest submissions first.
func (s *Store) ListPendingQuests(ctx context.Context) ([]models.Quest, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.QuestsTableName),
		IndexName:              aws.String(pendingQuestsGSI),
		KeyConditionExpression: aws.String("#status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(models.PENDING)},
		},
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending quests: %w", err)
	}

	var quests []models.Quest
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &quests); err != nil {
		return nil, fmt.Errorf("failed to unmarshal pending quests: %w", err)
	}

	return quests, nil
}

// listApprovedQuests retrieves an account's approved quest history for
// achievement aggregate computation.
func (s *Store) listApprovedQuests(ctx context.Context, accountID string) ([]models.Quest, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.QuestsTableName),
		IndexName:              aws.String(ownerQuestsGSI),
		KeyConditionExpression: aws.String("owner_id = :owner"),
		FilterExpression:       aws.String("#status = :approved"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":owner":    &types.AttributeValueMemberS{Value: accountID},
			":approved": &types.AttributeValueMemberS{Value: string(models.APPROVED)},
		},
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query approved quests: %w", err)
	}

	var quests []models.Quest
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &quests); err != nil {
		return nil, fmt.Errorf("failed to unmarshal approved quests: %w", err)
	}

	return quests, nil
}
