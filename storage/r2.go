package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"github.com/clean-alert/api-go/config"
)

// R2 keeps photos in a Cloudflare R2 bucket through the S3 API. The external
// contract is unchanged: filenames stay on the report row and bytes are served
// through GET /uploads/:filename.
type R2 struct {
	Client *s3.Client
	Config *config.R2Config
}

func NewR2(cfg *config.R2Config) *R2 {
	client := s3.New(s3.Options{
		BaseEndpoint: aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.AccountID)),
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		),
		Region: cfg.Region,
	})

	return &R2{Client: client, Config: cfg}
}

func (s *R2) Save(ctx context.Context, filename string, r io.Reader) error {
	if !validName(filename) {
		return fmt.Errorf("storage: invalid filename %q", filename)
	}

	_, err := s.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.Config.BucketName),
		Key:    aws.String(filename),
		Body:   r,
	})
	return err
}

func (s *R2) Open(ctx context.Context, filename string) (io.ReadCloser, error) {
	if !validName(filename) {
		return nil, os.ErrNotExist
	}

	out, err := s.Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.Config.BucketName),
		Key:    aws.String(filename),
	})
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) && apiErr.ErrorCode() == "NoSuchKey" {
			return nil, os.ErrNotExist
		}
		return nil, err
	}
	return out.Body, nil
}

func (s *R2) Delete(ctx context.Context, filename string) error {
	if !validName(filename) {
		return nil
	}

	_, err := s.Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.Config.BucketName),
		Key:    aws.String(filename),
	})
	return err
}
