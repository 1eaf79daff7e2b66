package dynamodb

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/bravequest/quest-engine/pkg/models"
	"github.com/bravequest/quest-engine/pkg/storage"
	"github.com/bravequest/quest-engine/pkg/storage/dynamodb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func getItemForTable(table string) interface{} {
	return mock.MatchedBy(func(input *dynamodb.GetItemInput) bool {
		return *input.TableName == table
	})
}

func queryForTable(table string) interface{} {
	return mock.MatchedBy(func(input *dynamodb.QueryInput) bool {
		return *input.TableName == table
	})
}

func marshalled(t *testing.T, v interface{}) map[string]types.AttributeValue {
	t.Helper()
	av, err := attributevalue.MarshalMap(v)
	require.NoError(t, err)
	return av
}

func condFailReasons(codes ...string) []types.CancellationReason {
	reasons := make([]types.CancellationReason, len(codes))
	for i, code := range codes {
		reasons[i] = types.CancellationReason{Code: aws.String(code)}
	}
	return reasons
}

func TestReviewQuest(t *testing.T) {
	pendingQuest := &models.Quest{
		Id:           "quest-1",
		OwnerId:      "acct-1",
		Description:  "Helped clean up the local park and collected two bags of trash.",
		Category:     models.CategoryEnvironment,
		RewardPoints: 50,
		Status:       models.PENDING,
	}
	freshAccount := &models.Account{Id: "acct-1", DisplayName: "Alex", Version: 1}

	t.Run("Approval Settles Atomically", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("GetItem", mock.Anything, getItemForTable("quests")).Return(&dynamodb.GetItemOutput{Item: marshalled(t, pendingQuest)}, nil)
		mockClient.On("GetItem", mock.Anything, getItemForTable("accounts")).Return(&dynamodb.GetItemOutput{Item: marshalled(t, freshAccount)}, nil)
		mockClient.On("Query", mock.Anything, queryForTable("quests")).Return(&dynamodb.QueryOutput{}, nil)
		mockClient.On("Query", mock.Anything, queryForTable("unlocks")).Return(&dynamodb.QueryOutput{}, nil)

		var commit *dynamodb.TransactWriteItemsInput
		mockClient.On("TransactWriteItems", mock.Anything, mock.AnythingOfType("*dynamodb.TransactWriteItemsInput")).
			Run(func(args mock.Arguments) {
				commit = args.Get(1).(*dynamodb.TransactWriteItemsInput)
			}).
			Return(&dynamodb.TransactWriteItemsOutput{}, nil)

		store := New(mockClient, "accounts", "quests", "unlocks", "redemptions")
		result, err := store.ReviewQuest(context.Background(), "quest-1", models.DecisionApproved)

		require.NoError(t, err)
		assert.Equal(t, models.APPROVED, result.Quest.Status)
		assert.Equal(t, int64(50), result.Account.XPTotal)
		assert.Equal(t, int64(5), result.Account.CoinBalance)
		assert.Equal(t, int64(1), result.Account.QuestsCompleted)
		assert.Equal(t, int64(2), result.Account.Version)
		assert.Equal(t, []string{"first-quest"}, result.UnlockedAchievements)

		// Quest transition, account credit and the unlock land in one commit.
		require.NotNil(t, commit)
		assert.Len(t, commit.TransactItems, 3)
		assert.NotNil(t, commit.TransactItems[0].Update)
		assert.NotNil(t, commit.TransactItems[1].Update)
		assert.NotNil(t, commit.TransactItems[2].Put)
		mockClient.AssertExpectations(t)
	})

	t.Run("Rejection Leaves The Ledger Alone", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("GetItem", mock.Anything, getItemForTable("quests")).Return(&dynamodb.GetItemOutput{Item: marshalled(t, pendingQuest)}, nil)
		mockClient.On("UpdateItem", mock.Anything, mock.AnythingOfType("*dynamodb.UpdateItemInput")).Return(&dynamodb.UpdateItemOutput{}, nil)

		store := New(mockClient, "accounts", "quests", "unlocks", "redemptions")
		result, err := store.ReviewQuest(context.Background(), "quest-1", models.DecisionRejected)

		require.NoError(t, err)
		assert.Equal(t, models.REJECTED, result.Quest.Status)
		assert.Nil(t, result.Account)
		assert.Empty(t, result.UnlockedAchievements)
		mockClient.AssertNotCalled(t, "TransactWriteItems")
		mockClient.AssertExpectations(t)
	})

	t.Run("Invalid Decision", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)

		store := New(mockClient, "accounts", "quests", "unlocks", "redemptions")
		_, err := store.ReviewQuest(context.Background(), "quest-1", "maybe")

		assert.ErrorIs(t, err, storage.ErrValidation)
		mockClient.AssertNotCalled(t, "GetItem")
	})

	t.Run("Quest Not Found", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("GetItem", mock.Anything, getItemForTable("quests")).Return(&dynamodb.GetItemOutput{Item: nil}, nil)

		store := New(mockClient, "accounts", "quests", "unlocks", "redemptions")
		_, err := store.ReviewQuest(context.Background(), "quest-1", models.DecisionApproved)

		assert.ErrorIs(t, err, storage.ErrNotFound)
		mockClient.AssertExpectations(t)
	})

	t.Run("Already Reviewed", func(t *testing.T) {
		approved := *pendingQuest
		approved.Status = models.APPROVED

		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("GetItem", mock.Anything, getItemForTable("quests")).Return(&dynamodb.GetItemOutput{Item: marshalled(t, &approved)}, nil)

		store := New(mockClient, "accounts", "quests", "unlocks", "redemptions")
		_, err := store.ReviewQuest(context.Background(), "quest-1", models.DecisionApproved)

		assert.ErrorIs(t, err, storage.ErrQuestNotReviewable)
		mockClient.AssertNotCalled(t, "TransactWriteItems")
	})

	t.Run("Concurrent Review Fails The Commit", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("GetItem", mock.Anything, getItemForTable("quests")).Return(&dynamodb.GetItemOutput{Item: marshalled(t, pendingQuest)}, nil)
		mockClient.On("GetItem", mock.Anything, getItemForTable("accounts")).Return(&dynamodb.GetItemOutput{Item: marshalled(t, freshAccount)}, nil)
		mockClient.On("Query", mock.Anything, mock.AnythingOfType("*dynamodb.QueryInput")).Return(&dynamodb.QueryOutput{}, nil)
		mockClient.On("TransactWriteItems", mock.Anything, mock.AnythingOfType("*dynamodb.TransactWriteItemsInput")).
			Return(nil, &types.TransactionCanceledException{
				CancellationReasons: condFailReasons("ConditionalCheckFailed", "None", "None"),
			})

		store := New(mockClient, "accounts", "quests", "unlocks", "redemptions")
		_, err := store.ReviewQuest(context.Background(), "quest-1", models.DecisionApproved)

		assert.ErrorIs(t, err, storage.ErrQuestNotReviewable)
		mockClient.AssertExpectations(t)
	})

	t.Run("Version Race Retries And Succeeds", func(t *testing.T) {
		creditedElsewhere := &models.Account{Id: "acct-1", DisplayName: "Alex", XPTotal: 20, CoinBalance: 2, QuestsCompleted: 1, Version: 2}

		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("GetItem", mock.Anything, getItemForTable("quests")).Return(&dynamodb.GetItemOutput{Item: marshalled(t, pendingQuest)}, nil)
		// First read sees the stale version, the re-read sees the credit that won.
		mockClient.On("GetItem", mock.Anything, getItemForTable("accounts")).Return(&dynamodb.GetItemOutput{Item: marshalled(t, freshAccount)}, nil).Once()
		mockClient.On("GetItem", mock.Anything, getItemForTable("accounts")).Return(&dynamodb.GetItemOutput{Item: marshalled(t, creditedElsewhere)}, nil).Once()
		mockClient.On("Query", mock.Anything, mock.AnythingOfType("*dynamodb.QueryInput")).Return(&dynamodb.QueryOutput{}, nil)
		mockClient.On("TransactWriteItems", mock.Anything, mock.AnythingOfType("*dynamodb.TransactWriteItemsInput")).
			Return(nil, &types.TransactionCanceledException{
				CancellationReasons: condFailReasons("None", "ConditionalCheckFailed", "None"),
			}).Once()
		mockClient.On("TransactWriteItems", mock.Anything, mock.AnythingOfType("*dynamodb.TransactWriteItemsInput")).
			Return(&dynamodb.TransactWriteItemsOutput{}, nil).Once()

		store := New(mockClient, "accounts", "quests", "unlocks", "redemptions")
		result, err := store.ReviewQuest(context.Background(), "quest-1", models.DecisionApproved)

		require.NoError(t, err)
		assert.Equal(t, int64(70), result.Account.XPTotal)
		assert.Equal(t, int64(7), result.Account.CoinBalance)
		assert.Equal(t, int64(2), result.Account.QuestsCompleted)
		assert.Equal(t, int64(3), result.Account.Version)
		mockClient.AssertExpectations(t)
	})

	t.Run("Persistent Race Exhausts Retries", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("GetItem", mock.Anything, getItemForTable("quests")).Return(&dynamodb.GetItemOutput{Item: marshalled(t, pendingQuest)}, nil)
		mockClient.On("GetItem", mock.Anything, getItemForTable("accounts")).Return(&dynamodb.GetItemOutput{Item: marshalled(t, freshAccount)}, nil)
		mockClient.On("Query", mock.Anything, mock.AnythingOfType("*dynamodb.QueryInput")).Return(&dynamodb.QueryOutput{}, nil)
		mockClient.On("TransactWriteItems", mock.Anything, mock.AnythingOfType("*dynamodb.TransactWriteItemsInput")).
			Return(nil, &types.TransactionCanceledException{
				CancellationReasons: condFailReasons("None", "ConditionalCheckFailed", "None"),
			})

		store := New(mockClient, "accounts", "quests", "unlocks", "redemptions")
		_, err := store.ReviewQuest(context.Background(), "quest-1", models.DecisionApproved)

		assert.ErrorIs(t, err, storage.ErrCommitConflict)
		mockClient.AssertNumberOfCalls(t, "TransactWriteItems", maxCommitAttempts)
	})

	t.Run("Fifth Environment Quest Unlocks Category Achievements", func(t *testing.T) {
		veteran := &models.Account{Id: "acct-1", DisplayName: "Alex", XPTotal: 160, CoinBalance: 16, QuestsCompleted: 4, Version: 5}
		approvedEnv := make([]map[string]types.AttributeValue, 0, 2)
		for _, id := range []string{"quest-a", "quest-b"} {
			approvedEnv = append(approvedEnv, marshalled(t, &models.Quest{
				Id: id, OwnerId: "acct-1", Category: models.CategoryEnvironment, Status: models.APPROVED,
			}))
		}
		existing := []map[string]types.AttributeValue{
			marshalled(t, &models.AchievementUnlock{AccountId: "acct-1", AchievementId: "first-quest"}),
			marshalled(t, &models.AchievementUnlock{AccountId: "acct-1", AchievementId: "xp-novice"}),
		}

		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("GetItem", mock.Anything, getItemForTable("quests")).Return(&dynamodb.GetItemOutput{Item: marshalled(t, pendingQuest)}, nil)
		mockClient.On("GetItem", mock.Anything, getItemForTable("accounts")).Return(&dynamodb.GetItemOutput{Item: marshalled(t, veteran)}, nil)
		mockClient.On("Query", mock.Anything, queryForTable("quests")).Return(&dynamodb.QueryOutput{Items: approvedEnv}, nil)
		mockClient.On("Query", mock.Anything, queryForTable("unlocks")).Return(&dynamodb.QueryOutput{Items: existing}, nil)
		mockClient.On("TransactWriteItems", mock.Anything, mock.AnythingOfType("*dynamodb.TransactWriteItemsInput")).Return(&dynamodb.TransactWriteItemsOutput{}, nil)

		store := New(mockClient, "accounts", "quests", "unlocks", "redemptions")
		result, err := store.ReviewQuest(context.Background(), "quest-1", models.DecisionApproved)

		require.NoError(t, err)
		assert.Equal(t, []string{"quest-enthusiast", "earth-guardian"}, result.UnlockedAchievements)
		mockClient.AssertExpectations(t)
	})
}
