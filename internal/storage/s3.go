package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3DeleteAPI is the slice of the S3 client used to remove request images.
type S3DeleteAPI interface {
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Objects deletes objects from a single bucket.
type S3Objects struct {
	client S3DeleteAPI
	bucket string
}

func NewS3Objects(client S3DeleteAPI, bucket string) *S3Objects {
	return &S3Objects{client: client, bucket: bucket}
}

// DeleteObject removes the object stored under key. Blank keys are ignored.
func (o *S3Objects) DeleteObject(ctx context.Context, key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil
	}

	_, err := o.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(o.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object %s from bucket %s: %w", key, o.bucket, err)
	}

	return nil
}
