package dynamodb

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/bravequest/quest-engine/pkg/storage"
)

// DynamoDBAPI captures the subset of the DynamoDB client used by the store.
// It exists so tests can substitute a mock client.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

// maxCommitAttempts bounds the internal retries of a commit that lost an
// optimistic-concurrency race. Retries are invisible to callers; exhaustion
// surfaces storage.ErrCommitConflict.
const maxCommitAttempts = 4

// Store implements the Storage interface using AWS DynamoDB.
type Store struct {
	Client               DynamoDBAPI
	AccountsTableName    string
	QuestsTableName      string
	UnlocksTableName     string
	RedemptionsTableName string
}

// New creates a new Store.
func New(client DynamoDBAPI, accountsTable, questsTable, unlocksTable, redemptionsTable string) *Store {
	return &Store{
		Client:               client,
		AccountsTableName:    accountsTable,
		QuestsTableName:      questsTable,
		UnlocksTableName:     unlocksTable,
		RedemptionsTableName: redemptionsTable,
	}
}

// Make sure we conform to the interface
var _ storage.Storage = (*Store)(nil)
