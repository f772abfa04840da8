package repository

import (
	"context"
	"strconv"

	"trade_credit/internal/domain/entities"
	"trade_credit/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type paymentObligationItem struct {
	ID              string `dynamodbav:"id"`
	RequestID       string `dynamodbav:"request_id"`
	VendorID        string `dynamodbav:"vendor_id"`
	RequesterID     string `dynamodbav:"requester_id"`
	CatalogItemID   string `dynamodbav:"catalog_item_id"`
	Total           int64  `dynamodbav:"total"`
	AmountDue       int64  `dynamodbav:"amount_due"`
	Status          string `dynamodbav:"status"`
	AcceptedAt      string `dynamodbav:"accepted_at"`
	PaymentDeadline string `dynamodbav:"payment_deadline"`
	Version         int64  `dynamodbav:"version"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

type paymentTransactionItem struct {
	ObligationID      string `dynamodbav:"obligation_id"`
	Seq               int64  `dynamodbav:"seq"`
	ID                string `dynamodbav:"id"`
	PayerID           string `dynamodbav:"payer_id"`
	VendorID          string `dynamodbav:"vendor_id"`
	RequesterID       string `dynamodbav:"requester_id"`
	AmountPaid        int64  `dynamodbav:"amount_paid"`
	AmountDueBefore   int64  `dynamodbav:"amount_due_before"`
	AmountDueAfter    int64  `dynamodbav:"amount_due_after"`
	IdempotencyKey    string `dynamodbav:"idempotency_key,omitempty"`
	ProviderReference string `dynamodbav:"provider_reference,omitempty"`
	PaidAt            string `dynamodbav:"paid_at"`
}

// PaymentObligationDynamoRepository persists obligations and their ledger in DynamoDB.
//
// Table requirements:
//   - obligations: PK id (string)
//   - transactions: PK obligation_id (string), SK seq (number)
//   - guards: PK guard_key (string)
type PaymentObligationDynamoRepository struct {
	ddb    DynamoAPI
	tables DynamoTables
}

var _ interfaces.IPaymentObligationRepository = (*PaymentObligationDynamoRepository)(nil)

func NewPaymentObligationDynamoRepository(ddb DynamoAPI, tables DynamoTables) *PaymentObligationDynamoRepository {
	return &PaymentObligationDynamoRepository{ddb: ddb, tables: tables}
}

func (r *PaymentObligationDynamoRepository) GetByID(ctx context.Context, id string) (entities.PaymentObligation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tables.Obligations),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentObligation{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentObligation{}, nil
	}

	var it paymentObligationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentObligation{}, err
	}
	return fromPaymentObligationItem(it), nil
}

func (r *PaymentObligationDynamoRepository) GetByRequestID(ctx context.Context, requestID string) (entities.PaymentObligation, error) {
	g, err := getGuard(ctx, r.ddb, r.tables.Guards, obligationGuardKey(requestID))
	if err != nil || g.TargetID == "" {
		return entities.PaymentObligation{}, err
	}
	return r.GetByID(ctx, g.TargetID)
}

// ApplyPayment updates the obligation only if its version still matches and
// appends the ledger entry in the same transaction.
func (r *PaymentObligationDynamoRepository) ApplyPayment(ctx context.Context, expectedVersion int64, updated entities.PaymentObligation, tx entities.PaymentTransaction) error {
	txAV, err := attributevalue.MarshalMap(toPaymentTransactionItem(tx))
	if err != nil {
		return err
	}

	items := []types.TransactWriteItem{
		{Update: &types.Update{
			TableName: aws.String(r.tables.Obligations),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: updated.ID},
			},
			UpdateExpression:    aws.String("SET #amount_due = :due, #status = :status, #version = :next, #updated_at = :now"),
			ConditionExpression: aws.String("#version = :expected AND #amount_due >= :amt"),
			ExpressionAttributeNames: map[string]string{
				"#amount_due": "amount_due",
				"#status":     "status",
				"#version":    "version",
				"#updated_at": "updated_at",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":due":      numberAV(updated.AmountDue),
				":status":   &types.AttributeValueMemberS{Value: string(updated.Status)},
				":next":     numberAV(updated.Version),
				":now":      &types.AttributeValueMemberS{Value: formatTime(updated.UpdatedAt)},
				":expected": numberAV(expectedVersion),
				":amt":      numberAV(tx.AmountPaid),
			},
		}},
		{Put: &types.Put{
			TableName:                aws.String(r.tables.Transactions),
			Item:                     txAV,
			ConditionExpression:      aws.String("attribute_not_exists(#seq)"),
			ExpressionAttributeNames: map[string]string{"#seq": "seq"},
		}},
	}

	if tx.IdempotencyKey != "" {
		guard, err := attributevalue.MarshalMap(guardItem{
			GuardKey:  idempotencyGuardKey(tx.ObligationID, tx.IdempotencyKey),
			TargetID:  tx.ID,
			TargetSeq: tx.Sequence,
			CreatedAt: formatTime(tx.PaidAt),
		})
		if err != nil {
			return err
		}
		items = append(items, types.TransactWriteItem{Put: &types.Put{
			TableName:                aws.String(r.tables.Guards),
			Item:                     guard,
			ConditionExpression:      aws.String("attribute_not_exists(#gk)"),
			ExpressionAttributeNames: map[string]string{"#gk": "guard_key"},
		}})
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		if codes, ok := cancellationCodes(err); ok {
			switch {
			case conditionFailedAt(codes, 0), conditionFailedAt(codes, 1):
				return interfaces.ErrStaleWrite
			case conditionFailedAt(codes, 2):
				return interfaces.ErrDuplicateKey
			}
		}
		return err
	}
	return nil
}

func (r *PaymentObligationDynamoRepository) GetTransactionByIdempotencyKey(ctx context.Context, obligationID, key string) (entities.PaymentTransaction, error) {
	g, err := getGuard(ctx, r.ddb, r.tables.Guards, idempotencyGuardKey(obligationID, key))
	if err != nil || g.TargetID == "" {
		return entities.PaymentTransaction{}, err
	}

	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tables.Transactions),
		Key: map[string]types.AttributeValue{
			"obligation_id": &types.AttributeValueMemberS{Value: obligationID},
			"seq":           numberAV(g.TargetSeq),
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentTransaction{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentTransaction{}, nil
	}

	var it paymentTransactionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentTransaction{}, err
	}
	return fromPaymentTransactionItem(it), nil
}

func (r *PaymentObligationDynamoRepository) ListTransactions(ctx context.Context, obligationID string, afterSequence int64, limit int) ([]entities.PaymentTransaction, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tables.Transactions),
		KeyConditionExpression: aws.String("#oid = :oid AND #seq > :after"),
		ExpressionAttributeNames: map[string]string{
			"#oid": "obligation_id",
			"#seq": "seq",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid":   &types.AttributeValueMemberS{Value: obligationID},
			":after": numberAV(afterSequence),
		},
		ConsistentRead:   aws.Bool(true),
		ScanIndexForward: aws.Bool(true),
	}
	if limit > 0 {
		input.Limit = aws.Int32(int32(limit))
	}

	out, err := r.ddb.Query(ctx, input)
	if err != nil {
		return nil, err
	}

	var items []paymentTransactionItem
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
		return nil, err
	}

	txs := make([]entities.PaymentTransaction, 0, len(items))
	for _, it := range items {
		txs = append(txs, fromPaymentTransactionItem(it))
	}
	return txs, nil
}

func numberAV(n int64) *types.AttributeValueMemberN {
	return &types.AttributeValueMemberN{Value: strconv.FormatInt(n, 10)}
}

func toPaymentObligationItem(o entities.PaymentObligation) paymentObligationItem {
	return paymentObligationItem{
		ID:              o.ID,
		RequestID:       o.RequestID,
		VendorID:        o.VendorID,
		RequesterID:     o.RequesterID,
		CatalogItemID:   o.CatalogItemID,
		Total:           o.Total,
		AmountDue:       o.AmountDue,
		Status:          string(o.Status),
		AcceptedAt:      formatTime(o.AcceptedAt),
		PaymentDeadline: formatTime(o.PaymentDeadline),
		Version:         o.Version,
		CreatedAt:       formatTime(o.CreatedAt),
		UpdatedAt:       formatTime(o.UpdatedAt),
	}
}

func fromPaymentObligationItem(it paymentObligationItem) entities.PaymentObligation {
	return entities.PaymentObligation{
		ID:              it.ID,
		RequestID:       it.RequestID,
		VendorID:        it.VendorID,
		RequesterID:     it.RequesterID,
		CatalogItemID:   it.CatalogItemID,
		Total:           it.Total,
		AmountDue:       it.AmountDue,
		Status:          entities.ObligationStatus(it.Status),
		AcceptedAt:      parseTime(it.AcceptedAt),
		PaymentDeadline: parseTime(it.PaymentDeadline),
		Version:         it.Version,
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
	}
}

func toPaymentTransactionItem(tx entities.PaymentTransaction) paymentTransactionItem {
	return paymentTransactionItem{
		ObligationID:      tx.ObligationID,
		Seq:               tx.Sequence,
		ID:                tx.ID,
		PayerID:           tx.PayerID,
		VendorID:          tx.VendorID,
		RequesterID:       tx.RequesterID,
		AmountPaid:        tx.AmountPaid,
		AmountDueBefore:   tx.AmountDueBefore,
		AmountDueAfter:    tx.AmountDueAfter,
		IdempotencyKey:    tx.IdempotencyKey,
		ProviderReference: tx.ProviderReference,
		PaidAt:            formatTime(tx.PaidAt),
	}
}

func fromPaymentTransactionItem(it paymentTransactionItem) entities.PaymentTransaction {
	return entities.PaymentTransaction{
		ID:                it.ID,
		ObligationID:      it.ObligationID,
		Sequence:          it.Seq,
		PayerID:           it.PayerID,
		VendorID:          it.VendorID,
		RequesterID:       it.RequesterID,
		AmountPaid:        it.AmountPaid,
		AmountDueBefore:   it.AmountDueBefore,
		AmountDueAfter:    it.AmountDueAfter,
		IdempotencyKey:    it.IdempotencyKey,
		ProviderReference: it.ProviderReference,
		PaidAt:            parseTime(it.PaidAt),
	}
}
