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

// Where reads items matching the given key spec and optional filter. A
// non-empty key spec dispatches a Query with the generated key condition; an
// empty one dispatches a Scan. The filter, when it carries both a condition
// and key bindings, contributes a filter expression whose placeholders share
// the request's namespace with the key condition's. One page is returned per
// call; pass Page.LastEvaluatedKey back via Overrides.ExclusiveStartKey to
// continue.
func (t *Table[T]) Where(ctx context.Context, key expr.KeySpec, filter *expr.Filter, over *requestmodels.Overrides) (*requestmodels.Page[T], error) {
	cond, names, values, err := expr.KeyCondition(key)
	if err != nil {
		return nil, fmt.Errorf("failed to build key condition: %w", err)
	}

	var filterCond string
	if filter != nil {
		fc, fNames, fValues, err := expr.FilterCondition(*filter)
		if err != nil {
			return nil, fmt.Errorf("failed to build filter condition: %w", err)
		}
		filterCond = fc
		for k, v := range fNames {
			if names == nil {
				names = make(map[string]string, len(fNames))
			}
			names[k] = v
		}
		for k, v := range fValues {
			if values == nil {
				values = make(map[string]types.AttributeValue, len(fValues))
			}
			values[k] = v
		}
	}

	if cond == "" {
		return t.scanPage(ctx, filterCond, names, values, over)
	}
	return t.queryPage(ctx, cond, filterCond, names, values, over)
}

// GetAll reads one unfiltered Scan page with capacity reporting. Use overrides
// for limits, projections or pagination cursors.
func (t *Table[T]) GetAll(ctx context.Context, over *requestmodels.Overrides) (*requestmodels.Page[T], error) {
	return t.scanPage(ctx, "", nil, nil, over)
}

func (t *Table[T]) queryPage(
	ctx context.Context,
	cond, filterCond string,
	names map[string]string,
	values map[string]types.AttributeValue,
	over *requestmodels.Overrides,
) (*requestmodels.Page[T], error) {
	input := &sdk.QueryInput{
		TableName:              &t.tableName,
		KeyConditionExpression: &cond,
		ReturnConsumedCapacity: types.ReturnConsumedCapacityTotal,
	}
	if filterCond != "" {
		input.FilterExpression = &filterCond
	}
	// Empty placeholder maps must be left off the request entirely; the store
	// rejects empty expression attribute maps.
	if len(names) > 0 {
		input.ExpressionAttributeNames = names
	}
	if len(values) > 0 {
		input.ExpressionAttributeValues = values
	}
	over.ApplyToQuery(input)

	out, err := t.client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}
	return unmarshalPage[T](out.Items, out.Count, out.ScannedCount, out.LastEvaluatedKey, out.ConsumedCapacity)
}

func (t *Table[T]) scanPage(
	ctx context.Context,
	filterCond string,
	names map[string]string,
	values map[string]types.AttributeValue,
	over *requestmodels.Overrides,
) (*requestmodels.Page[T], error) {
	input := &sdk.ScanInput{
		TableName:              &t.tableName,
		ReturnConsumedCapacity: types.ReturnConsumedCapacityTotal,
	}
	if filterCond != "" {
		input.FilterExpression = &filterCond
	}
	if len(names) > 0 {
		input.ExpressionAttributeNames = names
	}
	if len(values) > 0 {
		input.ExpressionAttributeValues = values
	}
	over.ApplyToScan(input)

	out, err := t.client.Scan(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("scan error: %w", err)
	}
	return unmarshalPage[T](out.Items, out.Count, out.ScannedCount, out.LastEvaluatedKey, out.ConsumedCapacity)
}

func unmarshalPage[T any](
	items []map[string]types.AttributeValue,
	count, scanned int32,
	lastKey map[string]types.AttributeValue,
	capacity *types.ConsumedCapacity,
) (*requestmodels.Page[T], error) {
	page := &requestmodels.Page[T]{
		Items:            make([]T, 0, len(items)),
		Count:            count,
		ScannedCount:     scanned,
		LastEvaluatedKey: lastKey,
		ConsumedCapacity: capacity,
	}
	for _, item := range items {
		var v T
		if err := attributevalue.UnmarshalMap(item, &v); err != nil {
			return nil, fmt.Errorf("failed to unmarshal item: %w", err)
		}
		page.Items = append(page.Items, v)
	}
	return page, nil
}
