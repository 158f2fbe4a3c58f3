/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Common sentinel errors
var (
	// ErrNotFound is returned when a table handle or binding is not found
	ErrNotFound = errors.New("not found")

	// ErrAlreadyRegistered is returned when registering a key that is taken
	ErrAlreadyRegistered = errors.New("already registered")
)

// NotFoundError represents a missing handle or binding lookup
type NotFoundError struct {
	Kind string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with key %q not found", e.Kind, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// AlreadyRegisteredError represents a duplicate registration
type AlreadyRegisteredError struct {
	Kind string
	Key  string
}

func (e *AlreadyRegisteredError) Error() string {
	return fmt.Sprintf("%s with key %q already registered", e.Kind, e.Key)
}

func (e *AlreadyRegisteredError) Is(target error) bool {
	return target == ErrAlreadyRegistered
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(kind, key string) error {
	return &NotFoundError{Kind: kind, Key: key}
}

// NewAlreadyRegisteredError creates a new AlreadyRegisteredError
func NewAlreadyRegisteredError(kind, key string) error {
	return &AlreadyRegisteredError{Kind: kind, Key: key}
}

// Provider error classification helpers.
//
// The facade surfaces DynamoDB errors unchanged (wrapped with %w only), so
// these work on any error returned by a table operation.

// IsConditionFailed reports whether err is a DynamoDB conditional check
// failure.
func IsConditionFailed(err error) bool {
	var cfe *types.ConditionalCheckFailedException
	return errors.As(err, &cfe)
}

// IsTableNotFound reports whether err is a DynamoDB resource-not-found
// failure, typically a missing table or index.
func IsTableNotFound(err error) bool {
	var rnf *types.ResourceNotFoundException
	return errors.As(err, &rnf)
}

// IsThroughputExceeded reports whether err is a DynamoDB provisioned
// throughput rejection.
func IsThroughputExceeded(err error) bool {
	var pte *types.ProvisionedThroughputExceededException
	return errors.As(err, &pte)
}

// IsItemCollectionLimit reports whether err is a DynamoDB item collection
// size rejection.
func IsItemCollectionLimit(err error) bool {
	var icl *types.ItemCollectionSizeLimitExceededException
	return errors.As(err, &icl)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyRegistered checks if an error is a duplicate registration error
func IsAlreadyRegistered(err error) bool {
	return errors.Is(err, ErrAlreadyRegistered)
}
