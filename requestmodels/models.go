/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package requestmodels

import (
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Overrides carries optional raw request parameters. Each non-zero field is
// applied on top of the generated request, after defaults, so an override
// always wins. Fields that do not apply to a given operation are ignored.
type Overrides struct {
	// ConsistentRead toggles strongly consistent reads (GetItem, Query, Scan).
	ConsistentRead *bool
	// IndexName targets a secondary index (Query, Scan).
	IndexName *string
	// Limit caps the number of evaluated items per page (Query, Scan).
	Limit *int32
	// ScanIndexForward sets index traversal order; false is descending (Query).
	ScanIndexForward *bool
	// ExclusiveStartKey resumes a paginated read (Query, Scan).
	ExclusiveStartKey map[string]types.AttributeValue
	// ProjectionExpression restricts the returned attributes (GetItem, Query, Scan).
	ProjectionExpression *string
	// FilterExpression adds a raw filter expression (Query, Scan). The
	// placeholder maps below supply its bindings and are merged into the
	// request's expression attribute maps.
	FilterExpression          *string
	ExpressionAttributeNames  map[string]string
	ExpressionAttributeValues map[string]types.AttributeValue
	// ConditionExpression guards writes (PutItem, UpdateItem, DeleteItem).
	ConditionExpression *string
	// ReturnValues selects which attributes a write reports back
	// (PutItem, UpdateItem, DeleteItem).
	ReturnValues types.ReturnValue
	// ReturnConsumedCapacity controls capacity reporting (all operations).
	ReturnConsumedCapacity types.ReturnConsumedCapacity
	// ReturnItemCollectionMetrics controls item collection metrics on writes.
	ReturnItemCollectionMetrics types.ReturnItemCollectionMetrics
	// Select chooses the attribute set a Query/Scan returns.
	Select types.Select
}

// Page is one page of a Query or Scan result.
type Page[T any] struct {
	// Items are the unmarshaled items of this page.
	Items []T
	// Count is the number of items returned after any filtering.
	Count int32
	// ScannedCount is the number of items evaluated before filtering.
	ScannedCount int32
	// LastEvaluatedKey resumes the read on the next call via
	// Overrides.ExclusiveStartKey; nil means the result set is exhausted.
	LastEvaluatedKey map[string]types.AttributeValue
	// ConsumedCapacity is the capacity report, when requested.
	ConsumedCapacity *types.ConsumedCapacity
}

// HasMore reports whether another page can be fetched.
func (p *Page[T]) HasMore() bool {
	return len(p.LastEvaluatedKey) > 0
}

// NextOverrides returns overrides resuming the read after this page, carrying
// over the caller's other override fields. A nil receiver or exhausted page
// returns base unchanged.
func (p *Page[T]) NextOverrides(base *Overrides) *Overrides {
	if p == nil || !p.HasMore() {
		return base
	}
	next := Overrides{}
	if base != nil {
		next = *base
	}
	next.ExclusiveStartKey = p.LastEvaluatedKey
	return &next
}

// BatchResult is the raw outcome of a batch write. The facade does not
// resubmit unprocessed items; callers decide what to do with them.
type BatchResult struct {
	// UnprocessedItems holds the write requests the store did not apply,
	// grouped by table name, ready to resubmit.
	UnprocessedItems map[string][]types.WriteRequest
	// ConsumedCapacity is the per-table capacity report, when requested.
	ConsumedCapacity []types.ConsumedCapacity
}

// ApplyToGet overlays the set override fields onto a GetItem request.
func (o *Overrides) ApplyToGet(in *dynamodb.GetItemInput) {
	if o == nil {
		return
	}
	if o.ConsistentRead != nil {
		in.ConsistentRead = o.ConsistentRead
	}
	if o.ProjectionExpression != nil {
		in.ProjectionExpression = o.ProjectionExpression
	}
	if len(o.ExpressionAttributeNames) > 0 {
		in.ExpressionAttributeNames = mergeNames(in.ExpressionAttributeNames, o.ExpressionAttributeNames)
	}
	if o.ReturnConsumedCapacity != "" {
		in.ReturnConsumedCapacity = o.ReturnConsumedCapacity
	}
}

// ApplyToQuery overlays the set override fields onto a Query request.
func (o *Overrides) ApplyToQuery(in *dynamodb.QueryInput) {
	if o == nil {
		return
	}
	if o.ConsistentRead != nil {
		in.ConsistentRead = o.ConsistentRead
	}
	if o.IndexName != nil {
		in.IndexName = o.IndexName
	}
	if o.Limit != nil {
		in.Limit = o.Limit
	}
	if o.ScanIndexForward != nil {
		in.ScanIndexForward = o.ScanIndexForward
	}
	if o.ExclusiveStartKey != nil {
		in.ExclusiveStartKey = o.ExclusiveStartKey
	}
	if o.ProjectionExpression != nil {
		in.ProjectionExpression = o.ProjectionExpression
	}
	if o.FilterExpression != nil {
		in.FilterExpression = o.FilterExpression
	}
	if len(o.ExpressionAttributeNames) > 0 {
		in.ExpressionAttributeNames = mergeNames(in.ExpressionAttributeNames, o.ExpressionAttributeNames)
	}
	if len(o.ExpressionAttributeValues) > 0 {
		in.ExpressionAttributeValues = mergeValues(in.ExpressionAttributeValues, o.ExpressionAttributeValues)
	}
	if o.ReturnConsumedCapacity != "" {
		in.ReturnConsumedCapacity = o.ReturnConsumedCapacity
	}
	if o.Select != "" {
		in.Select = o.Select
	}
}

// ApplyToScan overlays the set override fields onto a Scan request.
func (o *Overrides) ApplyToScan(in *dynamodb.ScanInput) {
	if o == nil {
		return
	}
	if o.ConsistentRead != nil {
		in.ConsistentRead = o.ConsistentRead
	}
	if o.IndexName != nil {
		in.IndexName = o.IndexName
	}
	if o.Limit != nil {
		in.Limit = o.Limit
	}
	if o.ExclusiveStartKey != nil {
		in.ExclusiveStartKey = o.ExclusiveStartKey
	}
	if o.ProjectionExpression != nil {
		in.ProjectionExpression = o.ProjectionExpression
	}
	if o.FilterExpression != nil {
		in.FilterExpression = o.FilterExpression
	}
	if len(o.ExpressionAttributeNames) > 0 {
		in.ExpressionAttributeNames = mergeNames(in.ExpressionAttributeNames, o.ExpressionAttributeNames)
	}
	if len(o.ExpressionAttributeValues) > 0 {
		in.ExpressionAttributeValues = mergeValues(in.ExpressionAttributeValues, o.ExpressionAttributeValues)
	}
	if o.ReturnConsumedCapacity != "" {
		in.ReturnConsumedCapacity = o.ReturnConsumedCapacity
	}
	if o.Select != "" {
		in.Select = o.Select
	}
}

// ApplyToPut overlays the set override fields onto a PutItem request.
func (o *Overrides) ApplyToPut(in *dynamodb.PutItemInput) {
	if o == nil {
		return
	}
	if o.ConditionExpression != nil {
		in.ConditionExpression = o.ConditionExpression
	}
	if len(o.ExpressionAttributeNames) > 0 {
		in.ExpressionAttributeNames = mergeNames(in.ExpressionAttributeNames, o.ExpressionAttributeNames)
	}
	if len(o.ExpressionAttributeValues) > 0 {
		in.ExpressionAttributeValues = mergeValues(in.ExpressionAttributeValues, o.ExpressionAttributeValues)
	}
	if o.ReturnValues != "" {
		in.ReturnValues = o.ReturnValues
	}
	if o.ReturnConsumedCapacity != "" {
		in.ReturnConsumedCapacity = o.ReturnConsumedCapacity
	}
	if o.ReturnItemCollectionMetrics != "" {
		in.ReturnItemCollectionMetrics = o.ReturnItemCollectionMetrics
	}
}

// ApplyToBatchWrite overlays the set override fields onto a BatchWriteItem
// request.
func (o *Overrides) ApplyToBatchWrite(in *dynamodb.BatchWriteItemInput) {
	if o == nil {
		return
	}
	if o.ReturnConsumedCapacity != "" {
		in.ReturnConsumedCapacity = o.ReturnConsumedCapacity
	}
	if o.ReturnItemCollectionMetrics != "" {
		in.ReturnItemCollectionMetrics = o.ReturnItemCollectionMetrics
	}
}

// ApplyToUpdate overlays the set override fields onto an UpdateItem request.
func (o *Overrides) ApplyToUpdate(in *dynamodb.UpdateItemInput) {
	if o == nil {
		return
	}
	if o.ConditionExpression != nil {
		in.ConditionExpression = o.ConditionExpression
	}
	if len(o.ExpressionAttributeNames) > 0 {
		in.ExpressionAttributeNames = mergeNames(in.ExpressionAttributeNames, o.ExpressionAttributeNames)
	}
	if len(o.ExpressionAttributeValues) > 0 {
		in.ExpressionAttributeValues = mergeValues(in.ExpressionAttributeValues, o.ExpressionAttributeValues)
	}
	if o.ReturnValues != "" {
		in.ReturnValues = o.ReturnValues
	}
	if o.ReturnConsumedCapacity != "" {
		in.ReturnConsumedCapacity = o.ReturnConsumedCapacity
	}
	if o.ReturnItemCollectionMetrics != "" {
		in.ReturnItemCollectionMetrics = o.ReturnItemCollectionMetrics
	}
}

// ApplyToDelete overlays the set override fields onto a DeleteItem request.
func (o *Overrides) ApplyToDelete(in *dynamodb.DeleteItemInput) {
	if o == nil {
		return
	}
	if o.ConditionExpression != nil {
		in.ConditionExpression = o.ConditionExpression
	}
	if len(o.ExpressionAttributeNames) > 0 {
		in.ExpressionAttributeNames = mergeNames(in.ExpressionAttributeNames, o.ExpressionAttributeNames)
	}
	if len(o.ExpressionAttributeValues) > 0 {
		in.ExpressionAttributeValues = mergeValues(in.ExpressionAttributeValues, o.ExpressionAttributeValues)
	}
	if o.ReturnValues != "" {
		in.ReturnValues = o.ReturnValues
	}
	if o.ReturnConsumedCapacity != "" {
		in.ReturnConsumedCapacity = o.ReturnConsumedCapacity
	}
	if o.ReturnItemCollectionMetrics != "" {
		in.ReturnItemCollectionMetrics = o.ReturnItemCollectionMetrics
	}
}

// mergeNames copies override name placeholders over the generated ones.
// Override entries win on collision.
func mergeNames(generated, overrides map[string]string) map[string]string {
	merged := make(map[string]string, len(generated)+len(overrides))
	for k, v := range generated {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	return merged
}

// mergeValues copies override value placeholders over the generated ones.
// Override entries win on collision.
func mergeValues(generated, overrides map[string]types.AttributeValue) map[string]types.AttributeValue {
	merged := make(map[string]types.AttributeValue, len(generated)+len(overrides))
	for k, v := range generated {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	return merged
}
