package dynamodb

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/bravequest/quest-engine/pkg/models"
	"github.com/bravequest/quest-engine/pkg/storage"
	"github.com/bravequest/quest-engine/pkg/storage/dynamodb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRedeemReward(t *testing.T) {
	richAccount := &models.Account{Id: "acct-1", CoinBalance: 50, Version: 3}

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("GetItem", mock.Anything, getItemForTable("accounts")).Return(&dynamodb.GetItemOutput{Item: marshalled(t, richAccount)}, nil)

		var commit *dynamodb.TransactWriteItemsInput
		mockClient.On("TransactWriteItems", mock.Anything, mock.AnythingOfType("*dynamodb.TransactWriteItemsInput")).
			Run(func(args mock.Arguments) {
				commit = args.Get(1).(*dynamodb.TransactWriteItemsInput)
			}).
			Return(&dynamodb.TransactWriteItemsOutput{}, nil)

		store := New(mockClient, "accounts", "quests", "unlocks", "redemptions")
		redemption, err := store.RedeemReward(context.Background(), "acct-1", "enamel-pin")

		require.NoError(t, err)
		assert.NotEmpty(t, redemption.Id)
		assert.Equal(t, "acct-1", redemption.AccountId)
		assert.Equal(t, "enamel-pin", redemption.RewardId)
		assert.Equal(t, int64(25), redemption.CostCharged)

		// Debit and history record are one commit.
		require.NotNil(t, commit)
		require.Len(t, commit.TransactItems, 2)
		assert.NotNil(t, commit.TransactItems[0].Update)
		assert.NotNil(t, commit.TransactItems[1].Put)
		mockClient.AssertExpectations(t)
	})

	t.Run("Unknown Reward", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)

		store := New(mockClient, "accounts", "quests", "unlocks", "redemptions")
		_, err := store.RedeemReward(context.Background(), "acct-1", "no-such-reward")

		assert.ErrorIs(t, err, storage.ErrNotFound)
		mockClient.AssertNotCalled(t, "GetItem")
	})

	t.Run("Insufficient Funds", func(t *testing.T) {
		poor := &models.Account{Id: "acct-1", CoinBalance: 5, Version: 1}

		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("GetItem", mock.Anything, getItemForTable("accounts")).Return(&dynamodb.GetItemOutput{Item: marshalled(t, poor)}, nil)

		store := New(mockClient, "accounts", "quests", "unlocks", "redemptions")
		_, err := store.RedeemReward(context.Background(), "acct-1", "enamel-pin")

		assert.ErrorIs(t, err, storage.ErrInsufficientFunds)
		mockClient.AssertNotCalled(t, "TransactWriteItems")
	})

	t.Run("Race Drains The Balance", func(t *testing.T) {
		drained := &models.Account{Id: "acct-1", CoinBalance: 10, Version: 4}

		mockClient := new(mocks.DynamoDBAPI)
		// The re-read after the lost race shows the concurrent debit.
		mockClient.On("GetItem", mock.Anything, getItemForTable("accounts")).Return(&dynamodb.GetItemOutput{Item: marshalled(t, richAccount)}, nil).Once()
		mockClient.On("GetItem", mock.Anything, getItemForTable("accounts")).Return(&dynamodb.GetItemOutput{Item: marshalled(t, drained)}, nil).Once()
		mockClient.On("TransactWriteItems", mock.Anything, mock.AnythingOfType("*dynamodb.TransactWriteItemsInput")).
			Return(nil, &types.TransactionCanceledException{
				CancellationReasons: condFailReasons("ConditionalCheckFailed", "None"),
			}).Once()

		store := New(mockClient, "accounts", "quests", "unlocks", "redemptions")
		_, err := store.RedeemReward(context.Background(), "acct-1", "enamel-pin")

		assert.ErrorIs(t, err, storage.ErrInsufficientFunds)
		mockClient.AssertExpectations(t)
	})

	t.Run("Persistent Race Exhausts Retries", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("GetItem", mock.Anything, getItemForTable("accounts")).Return(&dynamodb.GetItemOutput{Item: marshalled(t, richAccount)}, nil)
		mockClient.On("TransactWriteItems", mock.Anything, mock.AnythingOfType("*dynamodb.TransactWriteItemsInput")).
			Return(nil, &types.TransactionCanceledException{
				CancellationReasons: condFailReasons("ConditionalCheckFailed", "None"),
			})

		store := New(mockClient, "accounts", "quests", "unlocks", "redemptions")
		_, err := store.RedeemReward(context.Background(), "acct-1", "enamel-pin")

		assert.ErrorIs(t, err, storage.ErrCommitConflict)
		mockClient.AssertNumberOfCalls(t, "TransactWriteItems", maxCommitAttempts)
	})
}

func TestListRedemptions(t *testing.T) {
	redemptions := []models.Redemption{
		{Id: "red-2", AccountId: "acct-1", RewardId: "tote-bag", CostCharged: 60},
		{Id: "red-1", AccountId: "acct-1", RewardId: "sticker-pack", CostCharged: 10},
	}

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		items := make([]map[string]types.AttributeValue, 0, len(redemptions))
		for _, r := range redemptions {
			items = append(items, marshalled(t, r))
		}
		mockClient.On("Query", mock.Anything, queryForTable("redemptions")).Return(&dynamodb.QueryOutput{Items: items}, nil)

		store := New(mockClient, "accounts", "quests", "unlocks", "redemptions")
		retrieved, err := store.ListRedemptions(context.Background(), "acct-1")

		assert.NoError(t, err)
		assert.Equal(t, redemptions, retrieved)
		mockClient.AssertExpectations(t)
	})
}
