package database

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// DynamoDBSettings is the subset of configuration the client needs.
//
// Endpoint is optional; set it to talk to DynamoDB Local (e.g. http://dynamodb:8000).
type DynamoDBSettings struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

// ConnectDynamoDB creates a DynamoDB client.
func ConnectDynamoDB(ctx context.Context, s DynamoDBSettings) (*dynamodb.Client, error) {
	cfg, err := NewDynamoDBConfig(ctx, s)
	if err != nil {
		return nil, err
	}
	return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if s.Endpoint != "" {
			o.BaseEndpoint = aws.String(s.Endpoint)
		}
	}), nil
}

func NewDynamoDBConfig(ctx context.Context, s DynamoDBSettings) (aws.Config, error) {
	region := s.Region
	if region == "" {
		region = "us-east-1"
	}
	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(region),
	}

	keyID, secret := s.AccessKeyID, s.SecretAccessKey
	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	if s.Endpoint != "" && keyID == "" && secret == "" {
		keyID, secret = "local", "local"
	}
	if keyID != "" && secret != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(keyID, secret, ""),
		))
	}

	return config.LoadDefaultConfig(ctx, loadOpts...)
}
