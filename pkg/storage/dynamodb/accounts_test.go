package dynamodb

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/bravequest/quest-engine/pkg/models"
	"github.com/bravequest/quest-engine/pkg/storage"
	"github.com/bravequest/quest-engine/pkg/storage/dynamodb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateAccount(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("PutItem", mock.Anything, mock.Anything).Return(&dynamodb.PutItemOutput{}, nil)

		store := New(mockClient, "accounts", "quests", "unlocks", "redemptions")
		created, err := store.CreateAccount(context.Background(), &models.Account{DisplayName: "Alex"})

		assert.NoError(t, err)
		assert.NotEmpty(t, created.Id)
		assert.Equal(t, int64(0), created.XPTotal)
		assert.Equal(t, int64(0), created.CoinBalance)
		assert.Equal(t, int64(0), created.QuestsCompleted)
		assert.Equal(t, int64(1), created.Version)
		mockClient.AssertExpectations(t)
	})

	t.Run("Conflict", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("PutItem", mock.Anything, mock.Anything).Return(nil, &types.ConditionalCheckFailedException{})

		store := New(mockClient, "accounts", "quests", "unlocks", "redemptions")
		_, err := store.CreateAccount(context.Background(), &models.Account{Id: "acct-1"})

		assert.ErrorIs(t, err, storage.ErrConflict)
		mockClient.AssertExpectations(t)
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("PutItem", mock.Anything, mock.Anything).Return(nil, errors.New("some other storage error"))

		store := New(mockClient, "accounts", "quests", "unlocks", "redemptions")
		_, err := store.CreateAccount(context.Background(), &models.Account{Id: "acct-1"})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create account in DynamoDB")
		mockClient.AssertExpectations(t)
	})
}

func TestGetAccount(t *testing.T) {
	account := &models.Account{Id: "acct-1", CoinBalance: 100, Version: 3}

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		accountAV, _ := attributevalue.MarshalMap(account)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: accountAV}, nil)

		store := New(mockClient, "accounts", "quests", "unlocks", "redemptions")
		retrieved, err := store.GetAccount(context.Background(), "acct-1")

		assert.NoError(t, err)
		assert.Equal(t, account, retrieved)
		mockClient.AssertExpectations(t)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: nil}, nil)

		store := New(mockClient, "accounts", "quests", "unlocks", "redemptions")
		_, err := store.GetAccount(context.Background(), "acct-1")

		assert.ErrorIs(t, err, storage.ErrNotFound)
		mockClient.AssertExpectations(t)
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(nil, errors.New("some other storage error"))

		store := New(mockClient, "accounts", "quests", "unlocks", "redemptions")
		_, err := store.GetAccount(context.Background(), "acct-1")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get account from DynamoDB")
		mockClient.AssertExpectations(t)
	})
}

func TestListAccounts(t *testing.T) {
	accounts := []models.Account{{Id: "acct-1"}, {Id: "acct-2"}}

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		var accountsAV []map[string]types.AttributeValue
		for _, a := range accounts {
			av, err := attributevalue.MarshalMap(a)
			assert.NoError(t, err)
			accountsAV = append(accountsAV, av)
		}
		mockClient.On("Scan", mock.Anything, mock.Anything).Return(&dynamodb.ScanOutput{Items: accountsAV}, nil)

		store := New(mockClient, "accounts", "quests", "unlocks", "redemptions")
		retrieved, err := store.ListAccounts(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, accounts, retrieved)
		mockClient.AssertExpectations(t)
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("Scan", mock.Anything, mock.Anything).Return(nil, errors.New("some other storage error"))

		store := New(mockClient, "accounts", "quests", "unlocks", "redemptions")
		_, err := store.ListAccounts(context.Background())

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to scan accounts table")
		mockClient.AssertExpectations(t)
	})
}
