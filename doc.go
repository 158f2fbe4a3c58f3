/*
Package dynatable is a small convenience layer over the AWS DynamoDB Go SDK (v2),
wrapping a single table behind typed find/where/create/update/destroy operations
and a string-based expression builder for key conditions, filters and updates.

The library deliberately stays thin: the SDK client owns transport, retries,
auth and pagination internals. dynatable only translates simplified argument
shapes into DynamoDB request parameters and hands the results back typed.

Basic Usage:

	// Bind a typed handle to a table and region
	users, _ := table.Open[User](ctx, "Users", "us-east-1")

	// Look up one item by its full primary key
	u, err := users.Find(ctx, expr.KeySpec{expr.Eq("id", "123")}, nil)

	// Range query with a filter
	page, err := users.Where(ctx,
		expr.KeySpec{expr.Eq("status", "active"), expr.Between("age", 18, 30)},
		nil, nil)

	// Update selected attributes and get the new item back
	u, err = users.Update(ctx,
		expr.KeySpec{expr.Eq("id", "123")},
		expr.UpdateSpec{expr.Set("name", "Bob")}, nil)

Handles for several item types can be kept in one manager:

	mtt := dynatable.NewMultiTypeTables()
	dynatable.Register(mtt, "users", users)
	users, _ = dynatable.For[User](mtt, "users")

Every operation issues exactly one request against the store. Provider errors
surface unchanged (wrapped with context only); see the errors package for
caller-side classification helpers.

For more information, see the documentation at https://github.com/suparena/dynatable
*/
package dynatable
