/*
Package registry maps Go item types and logical names to table bindings.

A binding names the DynamoDB table and region an item type lives in. Register
bindings at startup (typically in init functions or generated code), then let
table.ForType resolve them:

	registry.RegisterBinding[User](registry.Binding{
		TableName: "Users",
		Region:    "us-east-1",
	})

	users, err := table.ForType[User](ctx)

Named bindings can also be loaded from a YAML file:

	users:
	  table: Users
	  region: us-east-1
*/
package registry
