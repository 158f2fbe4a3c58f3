/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package table

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/dynatable/expr"
	"github.com/suparena/dynatable/mock"
	"github.com/suparena/dynatable/requestmodels"
)

func TestCreate(t *testing.T) {
	t.Run("MarshalsItem", func(t *testing.T) {
		var captured *dynamodb.PutItemInput
		client := &mock.Client{
			PutItemFunc: func(ctx context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
				captured = in
				return &dynamodb.PutItemOutput{}, nil
			},
		}
		players := New[player](client, "Players")

		err := players.Create(context.Background(), player{ID: "1", Name: "Ann"}, nil)
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		if *captured.TableName != "Players" {
			t.Errorf("Expected table Players, got %q", *captured.TableName)
		}
		id, ok := captured.Item["id"].(*types.AttributeValueMemberS)
		if !ok || id.Value != "1" {
			t.Errorf("Expected item id S(1), got %v", captured.Item["id"])
		}
	})

	t.Run("ConditionOverride", func(t *testing.T) {
		var captured *dynamodb.PutItemInput
		client := &mock.Client{
			PutItemFunc: func(ctx context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
				captured = in
				return &dynamodb.PutItemOutput{}, nil
			},
		}
		players := New[player](client, "Players")

		over := &requestmodels.Overrides{
			ConditionExpression:      aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{"#id": "id"},
		}
		if err := players.Create(context.Background(), player{ID: "1"}, over); err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		if captured.ConditionExpression == nil || *captured.ConditionExpression != "attribute_not_exists(#id)" {
			t.Errorf("Expected condition override, got %v", captured.ConditionExpression)
		}
		if captured.ExpressionAttributeNames["#id"] != "id" {
			t.Errorf("Expected override name placeholders, got %v", captured.ExpressionAttributeNames)
		}
	})
}

func TestBatchCreate(t *testing.T) {
	t.Run("OneRequestInInputOrder", func(t *testing.T) {
		var captured *dynamodb.BatchWriteItemInput
		client := &mock.Client{
			BatchWriteItemFunc: func(ctx context.Context, in *dynamodb.BatchWriteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error) {
				captured = in
				return &dynamodb.BatchWriteItemOutput{}, nil
			},
		}
		players := New[player](client, "Players")

		items := []player{{ID: "1"}, {ID: "2"}}
		result, err := players.BatchCreate(context.Background(), items, nil)
		if err != nil {
			t.Fatalf("BatchCreate failed: %v", err)
		}

		if client.Calls("BatchWriteItem") != 1 {
			t.Errorf("Expected one batch request, got %d", client.Calls("BatchWriteItem"))
		}

		writes := captured.RequestItems["Players"]
		if len(writes) != 2 {
			t.Fatalf("Expected 2 put entries under the table name, got %d", len(writes))
		}
		for i, want := range []string{"1", "2"} {
			put := writes[i].PutRequest
			if put == nil {
				t.Fatalf("Entry %d is not a put request", i)
			}
			id, ok := put.Item["id"].(*types.AttributeValueMemberS)
			if !ok || id.Value != want {
				t.Errorf("Entry %d: expected id S(%s), got %v", i, want, put.Item["id"])
			}
		}

		if len(result.UnprocessedItems) != 0 {
			t.Errorf("Expected no unprocessed items, got %v", result.UnprocessedItems)
		}
	})

	t.Run("UnprocessedItemsSurface", func(t *testing.T) {
		leftover := map[string][]types.WriteRequest{
			"Players": {{PutRequest: &types.PutRequest{Item: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: "2"},
			}}}},
		}
		client := &mock.Client{
			BatchWriteItemFunc: func(ctx context.Context, in *dynamodb.BatchWriteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error) {
				return &dynamodb.BatchWriteItemOutput{UnprocessedItems: leftover}, nil
			},
		}
		players := New[player](client, "Players")

		result, err := players.BatchCreate(context.Background(), []player{{ID: "1"}, {ID: "2"}}, nil)
		if err != nil {
			t.Fatalf("BatchCreate failed: %v", err)
		}

		// No resubmission: exactly one request, the leftovers are the caller's.
		if client.Calls("BatchWriteItem") != 1 {
			t.Errorf("Expected one batch request, got %d", client.Calls("BatchWriteItem"))
		}
		if len(result.UnprocessedItems["Players"]) != 1 {
			t.Errorf("Expected unprocessed items to surface, got %v", result.UnprocessedItems)
		}
	})
}

func TestUpdate(t *testing.T) {
	t.Run("BuildsExpressionAndReturnsNewValues", func(t *testing.T) {
		var captured *dynamodb.UpdateItemInput
		client := &mock.Client{
			UpdateItemFunc: func(ctx context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
				captured = in
				return &dynamodb.UpdateItemOutput{
					Attributes: map[string]types.AttributeValue{
						"id":   &types.AttributeValueMemberS{Value: "1"},
						"name": &types.AttributeValueMemberS{Value: "Bob"},
					},
				}, nil
			},
		}
		players := New[player](client, "Players")

		got, err := players.Update(context.Background(),
			expr.KeySpec{expr.Eq("id", "1")},
			expr.UpdateSpec{expr.Set("name", "Bob")}, nil)
		if err != nil {
			t.Fatalf("Update failed: %v", err)
		}

		id, ok := captured.Key["id"].(*types.AttributeValueMemberS)
		if !ok || id.Value != "1" {
			t.Errorf("Expected key id S(1), got %v", captured.Key["id"])
		}
		if captured.UpdateExpression == nil || *captured.UpdateExpression != "set #name = :name" {
			t.Errorf("Expected update expression %q, got %v", "set #name = :name", captured.UpdateExpression)
		}
		if captured.ExpressionAttributeNames["#name"] != "name" {
			t.Errorf("Expected #name binding, got %v", captured.ExpressionAttributeNames)
		}
		name, ok := captured.ExpressionAttributeValues[":name"].(*types.AttributeValueMemberS)
		if !ok || name.Value != "Bob" {
			t.Errorf("Expected :name S(Bob), got %v", captured.ExpressionAttributeValues[":name"])
		}
		if captured.ReturnValues != types.ReturnValueAllNew {
			t.Errorf("Update must request the post-update item, got %q", captured.ReturnValues)
		}

		if got == nil || got.Name != "Bob" {
			t.Errorf("Expected post-update item with name Bob, got %+v", got)
		}
	})

	t.Run("ConditionFailureSurfaces", func(t *testing.T) {
		client := &mock.Client{
			UpdateItemFunc: func(ctx context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
				return nil, &types.ConditionalCheckFailedException{Message: aws.String("no such item")}
			},
		}
		players := New[player](client, "Players")

		over := &requestmodels.Overrides{ConditionExpression: aws.String("attribute_exists(id)")}
		_, err := players.Update(context.Background(),
			expr.KeySpec{expr.Eq("id", "1")},
			expr.UpdateSpec{expr.Set("name", "Bob")}, over)
		if err == nil {
			t.Fatal("Expected error")
		}
		var cfe *types.ConditionalCheckFailedException
		if !errors.As(err, &cfe) {
			t.Errorf("Provider error must survive unchanged, got %v", err)
		}
	})
}

func TestDestroy(t *testing.T) {
	t.Run("DeletesByKey", func(t *testing.T) {
		var captured *dynamodb.DeleteItemInput
		client := &mock.Client{
			DeleteItemFunc: func(ctx context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
				captured = in
				return &dynamodb.DeleteItemOutput{}, nil
			},
		}
		players := New[player](client, "Players")

		if err := players.Destroy(context.Background(), expr.KeySpec{expr.Eq("id", "1")}, nil); err != nil {
			t.Fatalf("Destroy failed: %v", err)
		}

		if *captured.TableName != "Players" {
			t.Errorf("Expected table Players, got %q", *captured.TableName)
		}
		id, ok := captured.Key["id"].(*types.AttributeValueMemberS)
		if !ok || id.Value != "1" {
			t.Errorf("Expected key id S(1), got %v", captured.Key["id"])
		}
	})
}
