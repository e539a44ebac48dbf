package database

import (
	"context"

	appconfig "academia_bere/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// NewAWSConfig builds the shared AWS configuration.
//
// Static credentials are always set: DynamoDB Local and MinIO ignore them, but
// the SDK refuses to sign without any.
func NewAWSConfig(ctx context.Context, cfg appconfig.AWSConfig) (aws.Config, error) {
	creds := credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")
	return config.LoadDefaultConfig(ctx,
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(creds),
	)
}

// NewDynamoDBClient returns a client pointed at cfg.DynamoDBEndpoint when set
// (e.g. http://dynamodb:8000), or at the regional endpoint otherwise.
func NewDynamoDBClient(awsCfg aws.Config, cfg appconfig.AWSConfig) *dynamodb.Client {
	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.DynamoDBEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.DynamoDBEndpoint)
		}
	})
}
