package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoAPI is the subset of *dynamodb.Client the repositories use.
type DynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

var _ DynamoAPI = (*dynamodb.Client)(nil)

func isConditionalCheckFailed(err error) bool {
	var cfe *types.ConditionalCheckFailedException
	return errors.As(err, &cfe)
}

// scanAll reads the whole table, following pagination.
func scanAll[T any](ctx context.Context, ddb DynamoAPI, table string) ([]T, error) {
	var out []T
	var startKey map[string]types.AttributeValue
	for {
		page, err := ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(table),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		items, err := unmarshalItems[T](page.Items)
		if err != nil {
			return nil, err
		}
		out = append(out, items...)
		if len(page.LastEvaluatedKey) == 0 {
			return out, nil
		}
		startKey = page.LastEvaluatedKey
	}
}

// queryAll runs the query to completion, following pagination.
func queryAll[T any](ctx context.Context, ddb DynamoAPI, in *dynamodb.QueryInput) ([]T, error) {
	var out []T
	for {
		page, err := ddb.Query(ctx, in)
		if err != nil {
			return nil, err
		}
		items, err := unmarshalItems[T](page.Items)
		if err != nil {
			return nil, err
		}
		out = append(out, items...)
		if len(page.LastEvaluatedKey) == 0 {
			return out, nil
		}
		in.ExclusiveStartKey = page.LastEvaluatedKey
	}
}

func unmarshalItems[T any](raw []map[string]types.AttributeValue) ([]T, error) {
	items := make([]T, 0, len(raw))
	for _, r := range raw {
		var it T
		if err := attributevalue.UnmarshalMap(r, &it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// stringSet returns nil for an empty set. attributevalue writes an empty
// non-nil slice as NULL even with omitempty, and ADD on a NULL attribute is
// rejected.
func stringSet(v []string) []string {
	if len(v) == 0 {
		return nil
	}
	return v
}

func stringAttr(v string) *types.AttributeValueMemberS {
	return &types.AttributeValueMemberS{Value: v}
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}
