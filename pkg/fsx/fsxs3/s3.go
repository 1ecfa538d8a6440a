// Package fsxs3 implements fsx.FileSystem on AWS S3.
package fsxs3

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3FileSystem stores objects in a single bucket under a fixed key prefix.
type S3FileSystem struct {
	client *s3.Client
	bucket string
	prefix string
	region string
}

// NewS3FileSystem creates an S3-backed filesystem rooted at prefix inside
// bucket.
func NewS3FileSystem(client *s3.Client, bucket, prefix string) *S3FileSystem {
	return &S3FileSystem{
		client: client,
		bucket: bucket,
		prefix: prefix,
		region: client.Options().Region,
	}
}

func (f *S3FileSystem) key(p string) string {
	if f.prefix == "" {
		return p
	}
	return path.Join(f.prefix, p)
}

// Join builds a storage path from segments.
func (f *S3FileSystem) Join(parts ...string) string {
	return path.Join(parts...)
}

// WriteFile stores data at p, overwriting any existing object. The content
// type is derived from the path extension.
func (f *S3FileSystem) WriteFile(ctx context.Context, p string, data []byte) error {
	return f.WriteFileStream(ctx, p, bytes.NewReader(data))
}

// WriteFileStream stores the contents of r at p.
func (f *S3FileSystem) WriteFileStream(ctx context.Context, p string, r io.Reader) error {
	input := &s3.PutObjectInput{
		Bucket: aws.String(f.bucket),
		Key:    aws.String(f.key(p)),
		Body:   r,
	}
	if ct := mime.TypeByExtension(path.Ext(p)); ct != "" {
		input.ContentType = aws.String(ct)
	}

	if _, err := f.client.PutObject(ctx, input); err != nil {
		return fmt.Errorf("s3 put object %q: %w", f.key(p), err)
	}
	return nil
}

// ReadFileStream opens the object at p for reading.
func (f *S3FileSystem) ReadFileStream(ctx context.Context, p string) (io.ReadCloser, error) {
	out, err := f.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(f.bucket),
		Key:    aws.String(f.key(p)),
	})
	if err != nil {
		return nil, fmt.Errorf("s3 get object %q: %w", f.key(p), err)
	}
	return out.Body, nil
}

// DeleteFile removes the object at p.
func (f *S3FileSystem) DeleteFile(ctx context.Context, p string) error {
	_, err := f.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(f.bucket),
		Key:    aws.String(f.key(p)),
	})
	if err != nil {
		return fmt.Errorf("s3 delete object %q: %w", f.key(p), err)
	}
	return nil
}

// URL returns the virtual-hosted-style URL for the object at p.
func (f *S3FileSystem) URL(p string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", f.bucket, f.region, f.key(p))
}
