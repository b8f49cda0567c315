package s3

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"conceptgraph/pkg/common"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3GraphStore persists graphs as JSON objects in an S3-compatible bucket.
type S3GraphStore struct {
	client *s3.Client
	bucket string
	prefix string
}

// NewS3GraphStoreParams contains the connection settings for an
// S3-compatible endpoint. Endpoint may be empty for AWS proper; Prefix is
// prepended to every object key.
type NewS3GraphStoreParams struct {
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Prefix    string
}

// NewS3GraphStore creates a graph store backed by the configured bucket.
func NewS3GraphStore(ctx context.Context, params NewS3GraphStoreParams) (*S3GraphStore, error) {
	if params.Bucket == "" {
		return nil, fmt.Errorf("s3 graph store requires a bucket")
	}

	cfg, err := config.LoadDefaultConfig(
		ctx,
		config.WithRegion(params.Region),
		config.WithBaseEndpoint(params.Endpoint),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			params.AccessKey,
			params.SecretKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load s3 config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.UsePathStyle = true
	})

	return &S3GraphStore{
		client: client,
		bucket: params.Bucket,
		prefix: strings.Trim(params.Prefix, "/"),
	}, nil
}

// SaveGraph uploads the graph as an indented JSON object.
func (s *S3GraphStore) SaveGraph(ctx context.Context, key string, graph common.Graph) error {
	data, err := json.MarshalIndent(graph, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal graph: %w", err)
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.objectKey(key)),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("failed to upload graph to S3: %w", err)
	}
	return nil
}

// LoadGraph fetches and decodes the graph stored under key.
func (s *S3GraphStore) LoadGraph(ctx context.Context, key string) (common.Graph, error) {
	result, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.objectKey(key)),
	})
	if err != nil {
		return common.Graph{}, fmt.Errorf("failed to get graph from S3: %w", err)
	}
	defer result.Body.Close()

	data, err := io.ReadAll(result.Body)
	if err != nil {
		return common.Graph{}, fmt.Errorf("failed to read graph body: %w", err)
	}

	var graph common.Graph
	if err := json.Unmarshal(data, &graph); err != nil {
		return common.Graph{}, fmt.Errorf("failed to parse graph %s: %w", key, err)
	}
	return graph, nil
}

func (s *S3GraphStore) objectKey(key string) string {
	if s.prefix == "" {
		return key + ".json"
	}
	return s.prefix + "/" + key + ".json"
}
