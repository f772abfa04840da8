package database

import (
	"context"

	"trade_credit/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ConnectDynamoDB creates a DynamoDB client from the AWS and DynamoDB settings.
//
// Local-friendly settings:
//   - AWS_REGION (default: us-east-1)
//   - AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY (default: local)
//   - DYNAMODB_ENDPOINT (optional; e.g. http://dynamodb:8000)
func ConnectDynamoDB(ctx context.Context, cfg *config.Config) (*dynamodb.Client, error) {
	awsCfg, err := NewDynamoDBConfig(ctx, cfg.AWS, cfg.DynamoDB)
	if err != nil {
		return nil, err
	}
	return dynamodb.NewFromConfig(awsCfg), nil
}

func NewDynamoDBConfig(ctx context.Context, awsSettings config.AWSConfig, ddb config.DynamoDBConfig) (aws.Config, error) {
	creds := credentials.NewStaticCredentialsProvider(awsSettings.AccessKeyID, awsSettings.SecretAccessKey, "")

	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(awsSettings.Region),
		awsconfig.WithCredentialsProvider(creds),
	}

	if endpoint := ddb.Endpoint; endpoint != "" {
		resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
			if service == dynamodb.ServiceID {
				return aws.Endpoint{URL: endpoint, SigningRegion: region, HostnameImmutable: true}, nil
			}
			return aws.Endpoint{}, &aws.EndpointNotFoundError{}
		})
		loadOpts = append(loadOpts, awsconfig.WithEndpointResolverWithOptions(resolver))
	}

	return awsconfig.LoadDefaultConfig(ctx, loadOpts...)
}
