package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"gorm.io/gorm"
)

// DynamoAPI is the subset of *dynamodb.Client the adapters use.
type DynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

var _ DynamoAPI = (*dynamodb.Client)(nil)

// DynamoTables names the tables used by the DynamoDB adapters.
type DynamoTables struct {
	Requests     string
	Obligations  string
	Transactions string
	Guards       string
	Catalog      string
	Credentials  string
}

// Guard items enforce uniqueness DynamoDB cannot express on a secondary attribute.
// Each guard is a row in the guards table keyed by guard_key.
type guardItem struct {
	GuardKey  string `dynamodbav:"guard_key"`
	TargetID  string `dynamodbav:"target_id"`
	TargetSeq int64  `dynamodbav:"target_seq,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
}

func pendingGuardKey(requesterID, catalogItemID string) string {
	return "pending#" + requesterID + "#" + catalogItemID
}

func obligationGuardKey(requestID string) string {
	return "obligation#" + requestID
}

func idempotencyGuardKey(obligationID, key string) string {
	return "idem#" + obligationID + "#" + key
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

func parseTimePtr(s string) *time.Time {
	if s == "" {
		return nil
	}
	t := parseTime(s)
	return &t
}

// cancellationCodes returns the per-item reason codes of a cancelled transaction.
func cancellationCodes(err error) ([]string, bool) {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return nil, false
	}
	codes := make([]string, len(tce.CancellationReasons))
	for i, r := range tce.CancellationReasons {
		if r.Code != nil {
			codes[i] = *r.Code
		}
	}
	return codes, true
}

func conditionFailedAt(codes []string, i int) bool {
	return i < len(codes) && codes[i] == "ConditionalCheckFailed"
}

// isDuplicateKey reports a unique constraint violation from any SQL driver.
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate key")
}
