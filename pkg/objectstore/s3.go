package objectstore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3API is the subset of the S3 client used by the store.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Store implements Store using AWS S3. Thumbnails are generated out of band
// by a bucket notification; the store only derives their well-known key.
type S3Store struct {
	Client  S3API
	Bucket  string
	BaseURL string
}

// NewS3Store creates a new S3Store.
func NewS3Store(client S3API, bucket, baseURL string) *S3Store {
	return &S3Store{Client: client, Bucket: bucket, BaseURL: baseURL}
}

// Make sure we conform to the interface
var _ Store = (*S3Store)(nil)

// BuildKey constructs the S3 key for a user's upload.
func BuildKey(userID, uploadID string) string {
	return fmt.Sprintf("uploads/%s/%s.jpg", userID, uploadID)
}

// thumbnailKey derives the thumbnail location from the original key.
func thumbnailKey(key string) string {
	dir, file := path.Split(key)
	return dir + "thumb/" + file
}

// Upload persists image bytes to S3 and returns the object URLs.
func (s *S3Store) Upload(ctx context.Context, key string, data []byte, contentType string) (*StoredImage, error) {
	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	}

	if _, err := s.Client.PutObject(ctx, input); err != nil {
		return nil, fmt.Errorf("failed to upload image to S3: %w", err)
	}

	return &StoredImage{
		Key:          key,
		Url:          fmt.Sprintf("%s/%s", s.BaseURL, key),
		ThumbnailUrl: fmt.Sprintf("%s/%s", s.BaseURL, thumbnailKey(key)),
	}, nil
}

// Download retrieves image bytes from S3 by key.
func (s *S3Store) Download(ctx context.Context, key string) ([]byte, error) {
	input := &s3.GetObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(key),
	}

	result, err := s.Client.GetObject(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to download image from S3: %w", err)
	}
	defer result.Body.Close()

	data, err := io.ReadAll(result.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read image body: %w", err)
	}

	return data, nil
}
