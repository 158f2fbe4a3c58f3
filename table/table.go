/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package table

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/dynatable/expr"
	"github.com/suparena/dynatable/registry"
	"github.com/suparena/dynatable/requestmodels"
)

// Client is the capability surface the facade requires from the store. It is
// satisfied by *dynamodb.Client and by mock.Client.
type Client interface {
	GetItem(ctx context.Context, params *sdk.GetItemInput, optFns ...func(*sdk.Options)) (*sdk.GetItemOutput, error)
	Query(ctx context.Context, params *sdk.QueryInput, optFns ...func(*sdk.Options)) (*sdk.QueryOutput, error)
	Scan(ctx context.Context, params *sdk.ScanInput, optFns ...func(*sdk.Options)) (*sdk.ScanOutput, error)
	PutItem(ctx context.Context, params *sdk.PutItemInput, optFns ...func(*sdk.Options)) (*sdk.PutItemOutput, error)
	BatchWriteItem(ctx context.Context, params *sdk.BatchWriteItemInput, optFns ...func(*sdk.Options)) (*sdk.BatchWriteItemOutput, error)
	UpdateItem(ctx context.Context, params *sdk.UpdateItemInput, optFns ...func(*sdk.Options)) (*sdk.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *sdk.DeleteItemInput, optFns ...func(*sdk.Options)) (*sdk.DeleteItemOutput, error)
}

// Table is a handle to one DynamoDB table, typed by the item type T.
// It is immutable after construction.
type Table[T any] struct {
	client    Client
	tableName string
}

// New constructs a Table from an existing client. This is the injection point
// for tests and for applications that manage their own AWS configuration.
func New[T any](client Client, tableName string) *Table[T] {
	return &Table[T]{
		client:    client,
		tableName: tableName,
	}
}

// Open constructs a Table for the given table and region using the default
// AWS credential chain.
func Open[T any](ctx context.Context, tableName, region string) (*Table[T], error) {
	client, err := NewDynamoDBClient(ctx, region)
	if err != nil {
		return nil, fmt.Errorf("failed to create DynamoDB client: %w", err)
	}
	return New[T](client, tableName), nil
}

// OpenWithCredentials constructs a Table using static AWS credentials.
func OpenWithCredentials[T any](ctx context.Context, tableName, region, awsAccessKey, awsSecretKey string) (*Table[T], error) {
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(region),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(awsAccessKey, awsSecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}
	return New[T](sdk.NewFromConfig(cfg), tableName), nil
}

// ForType constructs a Table for T from the binding registered in the registry
// package.
func ForType[T any](ctx context.Context) (*Table[T], error) {
	b, ok := registry.GetBinding[T]()
	if !ok {
		var zero T
		return nil, fmt.Errorf("no table binding registered for type %T", zero)
	}
	return Open[T](ctx, b.TableName, b.Region)
}

// NewDynamoDBClient initializes a DynamoDB client for a region using the
// default credential chain.
func NewDynamoDBClient(ctx context.Context, region string) (*sdk.Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}
	return sdk.NewFromConfig(cfg), nil
}

// Name returns the bound table name.
func (t *Table[T]) Name() string {
	return t.tableName
}

// Find retrieves a single item by its full primary key. It forces a strongly
// consistent read and total capacity reporting unless overridden. It returns
// nil without error when no item matches.
func (t *Table[T]) Find(ctx context.Context, key expr.KeySpec, over *requestmodels.Overrides) (*T, error) {
	keyMap, err := expr.KeyAttributes(key)
	if err != nil {
		return nil, fmt.Errorf("failed to build key: %w", err)
	}

	consistent := true
	input := &sdk.GetItemInput{
		TableName:              &t.tableName,
		Key:                    keyMap,
		ConsistentRead:         &consistent,
		ReturnConsumedCapacity: types.ReturnConsumedCapacityTotal,
	}
	over.ApplyToGet(input)

	out, err := t.client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("GetItem error: %w", err)
	}
	if out.Item == nil {
		// Not found: return nil, nil
		return nil, nil
	}

	result := new(T)
	if err := attributevalue.UnmarshalMap(out.Item, result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal item: %w", err)
	}
	return result, nil
}
