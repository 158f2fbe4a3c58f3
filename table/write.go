/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package table

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/dynatable/expr"
	"github.com/suparena/dynatable/requestmodels"
)

// Create writes the given item to the table, replacing any existing item with
// the same primary key.
func (t *Table[T]) Create(ctx context.Context, item T, over *requestmodels.Overrides) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("failed to marshal item: %w", err)
	}

	input := &sdk.PutItemInput{
		TableName: &t.tableName,
		Item:      av,
	}
	over.ApplyToPut(input)

	if _, err := t.client.PutItem(ctx, input); err != nil {
		return fmt.Errorf("PutItem failed: %w", err)
	}
	return nil
}

// BatchCreate writes up to 25 items in a single batch request, one put request
// per item in input order, all grouped under this table's name. The store's
// batch size limit is not enforced here; oversized batches surface the store's
// own validation error. Unprocessed items are reported in the result, not
// resubmitted.
func (t *Table[T]) BatchCreate(ctx context.Context, items []T, over *requestmodels.Overrides) (*requestmodels.BatchResult, error) {
	writes := make([]types.WriteRequest, 0, len(items))
	for _, item := range items {
		av, err := attributevalue.MarshalMap(item)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal item: %w", err)
		}
		writes = append(writes, types.WriteRequest{
			PutRequest: &types.PutRequest{Item: av},
		})
	}

	input := &sdk.BatchWriteItemInput{
		RequestItems: map[string][]types.WriteRequest{
			t.tableName: writes,
		},
	}
	over.ApplyToBatchWrite(input)

	out, err := t.client.BatchWriteItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("BatchWriteItem failed: %w", err)
	}
	return &requestmodels.BatchResult{
		UnprocessedItems: out.UnprocessedItems,
		ConsumedCapacity: out.ConsumedCapacity,
	}, nil
}

// Update overwrites the listed attributes of the item identified by key and
// returns the item's post-update attributes. The generated update expression
// covers every entry of updates; ReturnValues defaults to ALL_NEW and can be
// overridden.
func (t *Table[T]) Update(ctx context.Context, key expr.KeySpec, updates expr.UpdateSpec, over *requestmodels.Overrides) (*T, error) {
	keyMap, err := expr.KeyAttributes(key)
	if err != nil {
		return nil, fmt.Errorf("failed to build key: %w", err)
	}

	updateExpr, names, values, err := expr.UpdateExpression(updates)
	if err != nil {
		return nil, fmt.Errorf("failed to build update expression: %w", err)
	}

	input := &sdk.UpdateItemInput{
		TableName:    &t.tableName,
		Key:          keyMap,
		ReturnValues: types.ReturnValueAllNew,
	}
	if updateExpr != "" {
		input.UpdateExpression = &updateExpr
	}
	if len(names) > 0 {
		input.ExpressionAttributeNames = names
	}
	if len(values) > 0 {
		input.ExpressionAttributeValues = values
	}
	over.ApplyToUpdate(input)

	out, err := t.client.UpdateItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("UpdateItem failed: %w", err)
	}
	if out.Attributes == nil {
		return nil, nil
	}

	result := new(T)
	if err := attributevalue.UnmarshalMap(out.Attributes, result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal attributes: %w", err)
	}
	return result, nil
}

// Destroy removes the item identified by key.
func (t *Table[T]) Destroy(ctx context.Context, key expr.KeySpec, over *requestmodels.Overrides) error {
	keyMap, err := expr.KeyAttributes(key)
	if err != nil {
		return fmt.Errorf("failed to build key: %w", err)
	}

	input := &sdk.DeleteItemInput{
		TableName: &t.tableName,
		Key:       keyMap,
	}
	over.ApplyToDelete(input)

	if _, err := t.client.DeleteItem(ctx, input); err != nil {
		return fmt.Errorf("DeleteItem failed: %w", err)
	}
	return nil
}
