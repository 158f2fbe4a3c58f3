/*
Package mock provides a function-field mock of the DynamoDB client surface the
table facade consumes. Set only the calls a test exercises; unset calls return
empty outputs:

	client := &mock.Client{
		GetItemFunc: func(ctx context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
			return &dynamodb.GetItemOutput{Item: item}, nil
		},
	}
	users := table.New[User](client, "Users")

The mock also counts calls per operation so tests can assert dispatch.
*/
package mock
