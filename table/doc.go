/*
Package table implements the typed table facade over the DynamoDB client.

A Table[T] is bound to one table at construction and holds no per-call state;
a handle is created once and shared freely across goroutines. Each operation
builds a fresh request from its arguments (key specs, filters and update specs
from the expr package, optional raw overrides from requestmodels), issues
exactly one call against the store and adapts the result:

	users, err := table.Open[User](ctx, "Users", "us-east-1")
	u, err := users.Find(ctx, expr.KeySpec{expr.Eq("id", "123")}, nil)

Find forces strongly consistent reads and Find/Where/GetAll request capacity
reporting by default; both defaults can be replaced through overrides. The
facade performs no retries and no error translation: whatever the SDK returns
is wrapped with operation context only, so errors.As against SDK exception
types keeps working (see the errors package for helpers).
*/
package table
