package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	BaseURL   string
	// Prefix is prepended to every object key, e.g. "reports".
	Prefix string
}

// R2Client uploads sales reports to an S3-compatible bucket.
type R2Client struct {
	client  *s3.Client
	bucket  string
	baseURL string
	prefix  string
}

func NewR2Client(ctx context.Context, cfg Config) (*R2Client, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("bucket is required")
	}

	awsCfg, err := config.LoadDefaultConfig(
		ctx,
		config.WithRegion("auto"),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load storage config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = true
	})

	return &R2Client{
		client:  client,
		bucket:  cfg.Bucket,
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		prefix:  strings.Trim(cfg.Prefix, "/"),
	}, nil
}

// Key returns the object key used for a report file name.
func (r *R2Client) Key(name string) string {
	if r.prefix == "" {
		return name
	}
	return r.prefix + "/" + name
}

// Upload stores body under the report key and returns its public URL.
func (r *R2Client) Upload(ctx context.Context, name string, body io.Reader) (string, error) {
	key := r.Key(name)

	_, err := r.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(r.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String("text/plain; charset=utf-8"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload report: %w", err)
	}

	if r.baseURL == "" {
		return fmt.Sprintf("s3://%s/%s", r.bucket, key), nil
	}
	return fmt.Sprintf("%s/%s", r.baseURL, key), nil
}
