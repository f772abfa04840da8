package repository

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo records calls and replays canned responses.
type fakeDynamo struct {
	getItems  map[string]map[string]types.AttributeValue
	queryOut  *dynamodb.QueryOutput
	txErr     error
	gets      []*dynamodb.GetItemInput
	puts      []*dynamodb.PutItemInput
	queries   []*dynamodb.QueryInput
	transacts []*dynamodb.TransactWriteItemsInput
}

var _ DynamoAPI = (*fakeDynamo)(nil)

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{getItems: map[string]map[string]types.AttributeValue{}}
}

// keyOf identifies a GetItem by table and the string value of its single
// hash key, or the hash key plus number sort key.
func keyOf(table string, key map[string]types.AttributeValue) string {
	out := table
	for _, name := range []string{"id", "guard_key", "user_id", "obligation_id", "seq"} {
		switch v := key[name].(type) {
		case *types.AttributeValueMemberS:
			out += "|" + v.Value
		case *types.AttributeValueMemberN:
			out += "|" + v.Value
		}
	}
	return out
}

func (f *fakeDynamo) stub(table string, key, item map[string]types.AttributeValue) {
	f.getItems[keyOf(table, key)] = item
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.gets = append(f.gets, in)
	return &dynamodb.GetItemOutput{Item: f.getItems[keyOf(aws.ToString(in.TableName), in.Key)]}, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.puts = append(f.puts, in)
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.queries = append(f.queries, in)
	if f.queryOut == nil {
		return &dynamodb.QueryOutput{}, nil
	}
	return f.queryOut, nil
}

func (f *fakeDynamo) TransactWriteItems(_ context.Context, in *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	f.transacts = append(f.transacts, in)
	if f.txErr != nil {
		return nil, f.txErr
	}
	return &dynamodb.TransactWriteItemsOutput{}, nil
}

// cancelledAt builds the error DynamoDB returns when the condition of item i failed.
func cancelledAt(total, i int) error {
	reasons := make([]types.CancellationReason, total)
	for j := range reasons {
		reasons[j] = types.CancellationReason{Code: aws.String("None")}
	}
	reasons[i] = types.CancellationReason{Code: aws.String("ConditionalCheckFailed")}
	return &types.TransactionCanceledException{
		Message:             aws.String("Transaction cancelled"),
		CancellationReasons: reasons,
	}
}

var testTables = DynamoTables{
	Requests:     "requests",
	Obligations:  "obligations",
	Transactions: "transactions",
	Guards:       "guards",
	Catalog:      "catalog",
	Credentials:  "credentials",
}
