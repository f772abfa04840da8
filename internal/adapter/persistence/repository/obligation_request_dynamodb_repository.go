package repository

import (
	"context"
	"time"

	"trade_credit/internal/domain/entities"
	"trade_credit/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type obligationRequestItem struct {
	ID              string `dynamodbav:"id"`
	CatalogItemID   string `dynamodbav:"catalog_item_id"`
	VendorID        string `dynamodbav:"vendor_id"`
	RequesterID     string `dynamodbav:"requester_id"`
	CreatedBy       string `dynamodbav:"created_by"`
	Quantity        int64  `dynamodbav:"quantity"`
	UnitPrice       int64  `dynamodbav:"unit_price"`
	Total           int64  `dynamodbav:"total"`
	Note            string `dynamodbav:"note,omitempty"`
	DefaultDeadline string `dynamodbav:"default_deadline"`
	Status          string `dynamodbav:"status"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
	DecidedAt       string `dynamodbav:"decided_at,omitempty"`
}

// ObligationRequestDynamoRepository persists ObligationRequest entities in DynamoDB.
//
// Table requirements:
//   - requests: PK id (string)
//   - guards: PK guard_key (string), shared with the obligation repository
//
// Every state change is a TransactWriteItems call so the request row and its
// guard items never disagree.

type ObligationRequestDynamoRepository struct {
	ddb    DynamoAPI
	tables DynamoTables
}

var _ interfaces.IObligationRequestRepository = (*ObligationRequestDynamoRepository)(nil)

func NewObligationRequestDynamoRepository(ddb DynamoAPI, tables DynamoTables) *ObligationRequestDynamoRepository {
	return &ObligationRequestDynamoRepository{ddb: ddb, tables: tables}
}

func (r *ObligationRequestDynamoRepository) Create(ctx context.Context, req entities.ObligationRequest) (entities.ObligationRequest, error) {
	av, err := attributevalue.MarshalMap(toObligationRequestItem(req))
	if err != nil {
		return entities.ObligationRequest{}, err
	}
	guard, err := attributevalue.MarshalMap(guardItem{
		GuardKey:  pendingGuardKey(req.RequesterID, req.CatalogItemID),
		TargetID:  req.ID,
		CreatedAt: formatTime(req.CreatedAt),
	})
	if err != nil {
		return entities.ObligationRequest{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:                aws.String(r.tables.Requests),
				Item:                     av,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			}},
			{Put: &types.Put{
				TableName:                aws.String(r.tables.Guards),
				Item:                     guard,
				ConditionExpression:      aws.String("attribute_not_exists(#gk)"),
				ExpressionAttributeNames: map[string]string{"#gk": "guard_key"},
			}},
		},
	})
	if err != nil {
		if codes, ok := cancellationCodes(err); ok && (conditionFailedAt(codes, 0) || conditionFailedAt(codes, 1)) {
			return entities.ObligationRequest{}, interfaces.ErrDuplicateKey
		}
		return entities.ObligationRequest{}, err
	}
	return req, nil
}

func (r *ObligationRequestDynamoRepository) GetByID(ctx context.Context, id string) (entities.ObligationRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tables.Requests),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ObligationRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.ObligationRequest{}, nil
	}

	var it obligationRequestItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ObligationRequest{}, err
	}
	return fromObligationRequestItem(it), nil
}

func (r *ObligationRequestDynamoRepository) FindPending(ctx context.Context, requesterID, catalogItemID string) (entities.ObligationRequest, error) {
	g, err := getGuard(ctx, r.ddb, r.tables.Guards, pendingGuardKey(requesterID, catalogItemID))
	if err != nil || g.TargetID == "" {
		return entities.ObligationRequest{}, err
	}
	req, err := r.GetByID(ctx, g.TargetID)
	if err != nil {
		return entities.ObligationRequest{}, err
	}
	if req.Status != entities.RequestStatusPending {
		return entities.ObligationRequest{}, nil
	}
	return req, nil
}

func (r *ObligationRequestDynamoRepository) Decline(ctx context.Context, req entities.ObligationRequest, decidedAt time.Time) (entities.ObligationRequest, error) {
	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Update: r.decideUpdate(req.ID, entities.RequestStatusDeclined, decidedAt)},
			{Delete: r.pendingGuardDelete(req)},
		},
	})
	if err != nil {
		if codes, ok := cancellationCodes(err); ok && conditionFailedAt(codes, 0) {
			return entities.ObligationRequest{}, interfaces.ErrStaleWrite
		}
		return entities.ObligationRequest{}, err
	}

	req.Status = entities.RequestStatusDeclined
	req.DecidedAt = &decidedAt
	req.UpdatedAt = decidedAt
	return req, nil
}

// AcceptWithObligation flips the request to accepted, releases its pending guard,
// claims the one-obligation-per-request guard and inserts the obligation, all or nothing.
func (r *ObligationRequestDynamoRepository) AcceptWithObligation(ctx context.Context, req entities.ObligationRequest, o entities.PaymentObligation) (entities.ObligationRequest, error) {
	obligationAV, err := attributevalue.MarshalMap(toPaymentObligationItem(o))
	if err != nil {
		return entities.ObligationRequest{}, err
	}
	guard, err := attributevalue.MarshalMap(guardItem{
		GuardKey:  obligationGuardKey(req.ID),
		TargetID:  o.ID,
		CreatedAt: formatTime(o.CreatedAt),
	})
	if err != nil {
		return entities.ObligationRequest{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Update: r.decideUpdate(req.ID, entities.RequestStatusAccepted, o.AcceptedAt)},
			{Delete: r.pendingGuardDelete(req)},
			{Put: &types.Put{
				TableName:                aws.String(r.tables.Guards),
				Item:                     guard,
				ConditionExpression:      aws.String("attribute_not_exists(#gk)"),
				ExpressionAttributeNames: map[string]string{"#gk": "guard_key"},
			}},
			{Put: &types.Put{
				TableName:                aws.String(r.tables.Obligations),
				Item:                     obligationAV,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			}},
		},
	})
	if err != nil {
		if codes, ok := cancellationCodes(err); ok {
			switch {
			case conditionFailedAt(codes, 2), conditionFailedAt(codes, 3):
				return entities.ObligationRequest{}, interfaces.ErrDuplicateKey
			case conditionFailedAt(codes, 0):
				return entities.ObligationRequest{}, interfaces.ErrStaleWrite
			}
		}
		return entities.ObligationRequest{}, err
	}

	decidedAt := o.AcceptedAt
	req.Status = entities.RequestStatusAccepted
	req.DecidedAt = &decidedAt
	req.UpdatedAt = decidedAt
	return req, nil
}

func (r *ObligationRequestDynamoRepository) decideUpdate(id string, status entities.RequestStatus, at time.Time) *types.Update {
	now := formatTime(at)
	return &types.Update{
		TableName: aws.String(r.tables.Requests),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :now, #decided_at = :now"),
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :pending"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
			"#decided_at": "decided_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":  &types.AttributeValueMemberS{Value: string(status)},
			":pending": &types.AttributeValueMemberS{Value: string(entities.RequestStatusPending)},
			":now":     &types.AttributeValueMemberS{Value: now},
		},
	}
}

func (r *ObligationRequestDynamoRepository) pendingGuardDelete(req entities.ObligationRequest) *types.Delete {
	return &types.Delete{
		TableName: aws.String(r.tables.Guards),
		Key: map[string]types.AttributeValue{
			"guard_key": &types.AttributeValueMemberS{Value: pendingGuardKey(req.RequesterID, req.CatalogItemID)},
		},
	}
}

func getGuard(ctx context.Context, ddb DynamoAPI, table, key string) (guardItem, error) {
	out, err := ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			"guard_key": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return guardItem{}, err
	}
	if len(out.Item) == 0 {
		return guardItem{}, nil
	}
	var g guardItem
	if err := attributevalue.UnmarshalMap(out.Item, &g); err != nil {
		return guardItem{}, err
	}
	return g, nil
}

func toObligationRequestItem(r entities.ObligationRequest) obligationRequestItem {
	return obligationRequestItem{
		ID:              r.ID,
		CatalogItemID:   r.CatalogItemID,
		VendorID:        r.VendorID,
		RequesterID:     r.RequesterID,
		CreatedBy:       r.CreatedBy,
		Quantity:        r.Quantity,
		UnitPrice:       r.UnitPrice,
		Total:           r.Total,
		Note:            r.Note,
		DefaultDeadline: formatTime(r.DefaultDeadline),
		Status:          string(r.Status),
		CreatedAt:       formatTime(r.CreatedAt),
		UpdatedAt:       formatTime(r.UpdatedAt),
		DecidedAt:       formatTimePtr(r.DecidedAt),
	}
}

func fromObligationRequestItem(it obligationRequestItem) entities.ObligationRequest {
	return entities.ObligationRequest{
		ID:              it.ID,
		CatalogItemID:   it.CatalogItemID,
		VendorID:        it.VendorID,
		RequesterID:     it.RequesterID,
		CreatedBy:       it.CreatedBy,
		Quantity:        it.Quantity,
		UnitPrice:       it.UnitPrice,
		Total:           it.Total,
		Note:            it.Note,
		DefaultDeadline: parseTime(it.DefaultDeadline),
		Status:          entities.RequestStatus(it.Status),
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
		DecidedAt:       parseTimePtr(it.DecidedAt),
	}
}
