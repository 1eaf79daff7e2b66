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
	"github.com/google/uuid"
)

// accountRedemptionsGSI indexes redemptions by account for history reads.
const accountRedemptionsGSI = "account_id-created_at-index"

// RedeemReward debits a reward's cost from the account and records the
// redemption. Debit and record land in one TransactWriteItems commit, so the
// balance and the redemption history can never disagree. The balance check is
// a commit-time condition, not a prior read: two redemptions racing for the
// same coins serialize on the account's version counter and the loser re-reads
// and retries, failing with ErrInsufficientFunds once the balance is truly
// short.
func (s *Store) RedeemReward(ctx context.Context, accountID, rewardID string) (*models.Redemption, error) {
	reward, ok := catalog.RewardById(rewardID)
	if !ok {
		return nil, fmt.Errorf("reward %s: %w", rewardID, storage.ErrNotFound)
	}

	for attempt := 1; attempt <= maxCommitAttempts; attempt++ {
		redemption, retry, err := s.redeemOnce(ctx, accountID, reward)
		if err != nil {
			return nil, err
		}
		if !retry {
			return redemption, nil
		}
		slog.Log(ctx, slog.LevelDebug, "redemption commit lost a concurrent race, retrying",
			"account_id", accountID, "reward_id", rewardID, "attempt", attempt)
	}

	return nil, fmt.Errorf("redemption of %s for account %s: %w", rewardID, accountID, storage.ErrCommitConflict)
}

// redeemOnce attempts a single redemption commit against the account state it
// reads. retry is true when the commit lost a version race and the caller
// should re-read and try again.
func (s *Store) redeemOnce(ctx context.Context, accountID string, reward catalog.Reward) (redemption *models.Redemption, retry bool, err error) {
	account, err := s.GetAccount(ctx, accountID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to get account for redemption: %w", err)
	}

	// Fail fast on an obviously short balance; the commit condition below
	// re-checks this atomically.
	if account.CoinBalance < reward.Cost {
		return nil, false, fmt.Errorf("balance %d is less than cost %d: %w", account.CoinBalance, reward.Cost, storage.ErrInsufficientFunds)
	}

	rec := &models.Redemption{
		Id:          uuid.New().String(),
		AccountId:   accountID,
		RewardId:    reward.Id,
		CostCharged: reward.Cost,
		CreatedAt:   time.Now(),
	}
	recAV, err := attributevalue.MarshalMap(rec)
	if err != nil {
		return nil, false, fmt.Errorf("failed to marshal redemption: %w", err)
	}

	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				// Operation 1: Debit the account's coin balance.
				Update: &types.Update{
					TableName: aws.String(s.AccountsTableName),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: accountID},
					},
					UpdateExpression:    aws.String("SET coin_balance = coin_balance - :cost, version = version + :one"),
					ConditionExpression: aws.String("coin_balance >= :cost AND version = :version"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":cost":    &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", reward.Cost)},
						":one":     &types.AttributeValueMemberN{Value: "1"},
						":version": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", account.Version)},
					},
				},
			},
			{
				// Operation 2: Record the redemption.
				Put: &types.Put{
					TableName:           aws.String(s.RedemptionsTableName),
					Item:                recAV,
					ConditionExpression: aws.String("attribute_not_exists(id)"),
				},
			},
		},
	}

	if _, err := s.Client.TransactWriteItems(ctx, input); err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) && len(tce.CancellationReasons) > 0 {
			if code := tce.CancellationReasons[0].Code; code != nil && *code == "ConditionalCheckFailed" {
				// Either the balance moved under us or another commit bumped
				// the version. Re-read to find out which.
				return nil, true, nil
			}
		}
		return nil, false, fmt.Errorf("failed to execute redemption transaction: %w", err)
	}

	return rec, false, nil
}

// ListRedemptions retrieves an account's redemption history, newest first.
func (s *Store) ListRedemptions(ctx context.Context, accountID string) ([]models.Redemption, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.RedemptionsTableName),
		IndexName:              aws.String(accountRedemptionsGSI),
		KeyConditionExpression: aws.String("account_id = :account"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":account": &types.AttributeValueMemberS{Value: accountID},
		},
		ScanIndexForward: aws.Bool(false),
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query redemptions: %w", err)
	}

	var redemptions []models.Redemption
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &redemptions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal redemptions: %w", err)
	}

	return redemptions, nil
}
