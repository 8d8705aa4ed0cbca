package s3

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/hupe1980/idkey/blobstore"
)

// DDBClient is the interface for DynamoDB operations.
type DDBClient interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

// PointerStore implements blobstore.PointerStore on DynamoDB.
//
// Every commit is a new item; a conditional put on the version provides the
// compare-and-swap S3 lacks, so several publishers can share one bucket.
//
// Table schema:
//   - Partition key: base_uri (string) - the S3 prefix the catalogs live under
//   - Sort key: version (number) - monotonically increasing version
//
// Create table with:
//
//	aws dynamodb create-table \
//	  --table-name idkey-pointers \
//	  --attribute-definitions AttributeName=base_uri,AttributeType=S AttributeName=version,AttributeType=N \
//	  --key-schema AttributeName=base_uri,KeyType=HASH AttributeName=version,KeyType=RANGE \
//	  --billing-mode PAY_PER_REQUEST
type PointerStore struct {
	client    DDBClient
	tableName string
	baseURI   string
}

// NewPointerStore creates a DynamoDB pointer store.
// The baseURI should be "s3://bucket/prefix" and is used as partition key.
func NewPointerStore(client DDBClient, tableName, baseURI string) *PointerStore {
	return &PointerStore{
		client:    client,
		tableName: tableName,
		baseURI:   baseURI,
	}
}

// Current queries the latest committed version.
func (s *PointerStore) Current(ctx context.Context) (blobstore.Pointer, error) {
	resp, err := s.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.tableName),
		KeyConditionExpression: aws.String("base_uri = :uri"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uri": &types.AttributeValueMemberS{Value: s.baseURI},
		},
		ScanIndexForward: aws.Bool(false),
		Limit:            aws.Int32(1),
		ConsistentRead:   aws.Bool(true),
	})
	if err != nil {
		return blobstore.Pointer{}, fmt.Errorf("failed to query DynamoDB: %w", err)
	}
	if len(resp.Items) == 0 {
		return blobstore.Pointer{}, blobstore.ErrNotFound
	}
	return decodePointer(resp.Items[0])
}

// Commit stores p with a conditional write.
func (s *PointerStore) Commit(ctx context.Context, p blobstore.Pointer) error {
	cur, err := s.Current(ctx)
	if err != nil && !errors.Is(err, blobstore.ErrNotFound) {
		return err
	}
	if p.Version != cur.Version+1 {
		return blobstore.ErrConcurrentModification
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.tableName),
		Item:                encodePointer(s.baseURI, p),
		ConditionExpression: aws.String("attribute_not_exists(version)"),
	})
	if err != nil {
		var condErr *types.ConditionalCheckFailedException
		if errors.As(err, &condErr) {
			return blobstore.ErrConcurrentModification
		}
		return fmt.Errorf("failed to commit version to DynamoDB: %w", err)
	}
	return nil
}

func encodePointer(baseURI string, p blobstore.Pointer) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"base_uri":     &types.AttributeValueMemberS{Value: baseURI},
		"version":      &types.AttributeValueMemberN{Value: strconv.FormatUint(p.Version, 10)},
		"object":       &types.AttributeValueMemberS{Value: p.Object},
		"codec":        &types.AttributeValueMemberS{Value: p.Codec},
		"compression":  &types.AttributeValueMemberS{Value: p.Compression},
		"checksum":     &types.AttributeValueMemberS{Value: p.Checksum},
		"published_at": &types.AttributeValueMemberS{Value: p.PublishedAt.UTC().Format(time.RFC3339Nano)},
	}
}

func decodePointer(item map[string]types.AttributeValue) (blobstore.Pointer, error) {
	var p blobstore.Pointer

	versionAttr, ok := item["version"].(*types.AttributeValueMemberN)
	if !ok {
		return p, errors.New("invalid version attribute in DynamoDB")
	}
	version, err := strconv.ParseUint(versionAttr.Value, 10, 64)
	if err != nil {
		return p, fmt.Errorf("failed to parse version: %w", err)
	}
	p.Version = version

	objectAttr, ok := item["object"].(*types.AttributeValueMemberS)
	if !ok {
		return p, errors.New("invalid object attribute in DynamoDB")
	}
	p.Object = objectAttr.Value

	if v, ok := item["codec"].(*types.AttributeValueMemberS); ok {
		p.Codec = v.Value
	}
	if v, ok := item["compression"].(*types.AttributeValueMemberS); ok {
		p.Compression = v.Value
	}
	if v, ok := item["checksum"].(*types.AttributeValueMemberS); ok {
		p.Checksum = v.Value
	}
	if v, ok := item["published_at"].(*types.AttributeValueMemberS); ok {
		if ts, err := time.Parse(time.RFC3339Nano, v.Value); err == nil {
			p.PublishedAt = ts
		}
	}
	return p, nil
}
