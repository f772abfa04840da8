package repository

import (
	"context"

	"trade_credit/internal/domain/entities"
	"trade_credit/internal/infrastructure/credentials"
	"trade_credit/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// CatalogDynamoRepository reads catalog items and payment credentials that other
// modules own. Save and SetPasswordHash exist for seeding local environments.
type CatalogDynamoRepository struct {
	ddb    DynamoAPI
	tables DynamoTables
}

var (
	_ interfaces.ICatalogService    = (*CatalogDynamoRepository)(nil)
	_ credentials.ICredentialStore = (*CatalogDynamoRepository)(nil)
)

type credentialItem struct {
	UserID       string `dynamodbav:"user_id"`
	PasswordHash string `dynamodbav:"password_hash"`
}

func NewCatalogDynamoRepository(ddb DynamoAPI, tables DynamoTables) *CatalogDynamoRepository {
	return &CatalogDynamoRepository{ddb: ddb, tables: tables}
}

func (r *CatalogDynamoRepository) GetItem(ctx context.Context, id string) (entities.CatalogItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tables.Catalog),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.CatalogItem{}, err
	}
	if len(out.Item) == 0 {
		return entities.CatalogItem{}, nil
	}

	var item entities.CatalogItem
	if err := attributevalue.UnmarshalMapWithOptions(out.Item, &item, func(o *attributevalue.DecoderOptions) {
		o.TagKey = "json"
	}); err != nil {
		return entities.CatalogItem{}, err
	}
	return item, nil
}

func (r *CatalogDynamoRepository) Save(ctx context.Context, item entities.CatalogItem) error {
	av, err := attributevalue.MarshalMapWithOptions(item, func(o *attributevalue.EncoderOptions) {
		o.TagKey = "json"
	})
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tables.Catalog),
		Item:      av,
	})
	return err
}

func (r *CatalogDynamoRepository) GetPasswordHash(ctx context.Context, userID string) (string, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tables.Credentials),
		Key: map[string]types.AttributeValue{
			"user_id": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return "", err
	}
	if len(out.Item) == 0 {
		return "", nil
	}

	var it credentialItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return "", err
	}
	return it.PasswordHash, nil
}

func (r *CatalogDynamoRepository) SetPasswordHash(ctx context.Context, userID, hash string) error {
	av, err := attributevalue.MarshalMap(credentialItem{UserID: userID, PasswordHash: hash})
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tables.Credentials),
		Item:      av,
	})
	return err
}
