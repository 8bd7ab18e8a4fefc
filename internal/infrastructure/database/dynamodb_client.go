package database

import (
	"context"
	"errors"
	"fmt"
	"log"

	"construction_dashboard/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ConnectDynamoDB creates a DynamoDB client. DYNAMODB_ENDPOINT points it at
// DynamoDB Local (e.g. http://dynamodb:8000).
func ConnectDynamoDB(ctx context.Context, cfg config.DynamoDB) (*dynamodb.Client, error) {
	awsCfg, err := NewDynamoDBConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create dynamodb config: %w", err)
	}
	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	}), nil
}

func NewDynamoDBConfig(ctx context.Context, cfg config.DynamoDB) (aws.Config, error) {
	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	creds := credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")
	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(creds),
	)
}

// tableSpec describes one table: PK "id" plus an optional project_id GSI.
type tableSpec struct {
	name         string
	projectIndex bool
}

// EnsureDynamoTables creates any missing table. Existing tables are left as is.
func EnsureDynamoTables(ctx context.Context, ddb *dynamodb.Client, cfg config.DynamoDB) error {
	specs := []tableSpec{
		{name: cfg.LineItemsTable},
		{name: cfg.EstimationTemplatesTable},
		{name: cfg.ProjectEstimationsTable, projectIndex: true},
		{name: cfg.ProjectsTable},
		{name: cfg.AgreementsTable},
		{name: cfg.PaymentsTable, projectIndex: true},
		{name: cfg.SequencesTable},
	}
	for _, s := range specs {
		if err := createTable(ctx, ddb, s); err != nil {
			return err
		}
	}
	return nil
}

func createTable(ctx context.Context, ddb *dynamodb.Client, s tableSpec) error {
	in := &dynamodb.CreateTableInput{
		TableName:   aws.String(s.name),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
		},
	}
	if s.projectIndex {
		in.AttributeDefinitions = append(in.AttributeDefinitions, types.AttributeDefinition{
			AttributeName: aws.String("project_id"), AttributeType: types.ScalarAttributeTypeS,
		})
		in.GlobalSecondaryIndexes = []types.GlobalSecondaryIndex{{
			IndexName: aws.String("project_id-index"),
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String("project_id"), KeyType: types.KeyTypeHash},
			},
			Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
		}}
	}

	_, err := ddb.CreateTable(ctx, in)
	var inUse *types.ResourceInUseException
	if errors.As(err, &inUse) {
		log.Printf("[database][dynamodb] table exists table=%s", s.name)
		return nil
	}
	if err != nil {
		return fmt.Errorf("create table %s: %w", s.name, err)
	}
	log.Printf("[database][dynamodb] table created table=%s", s.name)
	return nil
}
