// Copyright Resume Extraction Gateway Authors
// SPDX-License-Identifier: Apache-2.0

package s3

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/crewhire/resumegw/pkg/artifact"
	"github.com/crewhire/resumegw/pkg/core/schema"
)

func init() {
	artifact.Providers.Register("s3", func(ctx context.Context, params map[string]string) (artifact.Store, error) {
		return New(ctx, Options{
			Bucket:   params["bucket"],
			Region:   params["region"],
			Prefix:   params["prefix"],
			Endpoint: params["endpoint"],
		})
	})
}

// compile-time check
var _ artifact.Store = (*Store)(nil)

// Options configures the S3 backend.
type Options struct {
	Bucket   string // required
	Region   string // e.g. "us-east-1"
	Prefix   string // key prefix, e.g. "resumes/"
	Endpoint string // custom endpoint for MinIO compatibility
}

// Store implements artifact.Store backed by S3 (or MinIO).
//
// Object layout:
//
//	<prefix><id>/document.pdf
//	<prefix><id>/resume.json
type Store struct {
	client *s3.Client
	bucket string
	prefix string
}

// New creates an S3-backed Store.
func New(ctx context.Context, opts Options) (*Store, error) {
	if opts.Bucket == "" {
		return nil, fmt.Errorf("s3 artifact store: bucket is required")
	}

	optFns := []func(*awsconfig.LoadOptions) error{}
	if opts.Region != "" {
		optFns = append(optFns, awsconfig.WithRegion(opts.Region))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, optFns...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	s3Opts := []func(*s3.Options){}
	if opts.Endpoint != "" {
		s3Opts = append(s3Opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = true // required for MinIO
		})
	}

	return &Store{
		client: s3.NewFromConfig(cfg, s3Opts...),
		bucket: opts.Bucket,
		prefix: opts.Prefix,
	}, nil
}

func (s *Store) documentKey(id string) string {
	return s.prefix + id + "/document.pdf"
}

func (s *Store) resumeKey(id string) string {
	return s.prefix + id + "/resume.json"
}

func (s *Store) locator(key string) string {
	return "s3://" + s.bucket + "/" + key
}

// SaveDocument uploads the original document bytes.
func (s *Store) SaveDocument(ctx context.Context, id string, doc []byte) (string, error) {
	key := s.documentKey(id)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(doc),
		ContentType: aws.String("application/pdf"),
	})
	if err != nil {
		return "", fmt.Errorf("put document: %w", err)
	}
	return s.locator(key), nil
}

// SaveResume uploads the validated record as JSON.
func (s *Store) SaveResume(ctx context.Context, id string, resume *schema.Resume) (string, error) {
	data, err := json.Marshal(resume)
	if err != nil {
		return "", fmt.Errorf("marshal resume: %w", err)
	}

	key := s.resumeKey(id)
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("put resume: %w", err)
	}
	return s.locator(key), nil
}

// GetResume downloads and decodes a previously stored record.
func (s *Store) GetResume(ctx context.Context, id string) (*schema.Resume, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.resumeKey(id)),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("resume %s: %w", id, artifact.ErrNotFound)
		}
		return nil, fmt.Errorf("get resume: %w", err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("read resume body: %w", err)
	}

	var resume schema.Resume
	if err := json.Unmarshal(data, &resume); err != nil {
		return nil, fmt.Errorf("unmarshal resume: %w", err)
	}
	return &resume, nil
}

// Close is a no-op; the S3 client holds no persistent connections that
// need explicit teardown.
func (s *Store) Close(_ context.Context) error {
	return nil
}

func isNotFound(err error) bool {
	var noSuchKey *s3types.NoSuchKey
	var notFound *s3types.NotFound
	return errors.As(err, &noSuchKey) || errors.As(err, &notFound)
}
