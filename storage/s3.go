// Package storage archives generated audio artifacts to S3 when a bucket
// is configured.
package storage

import (
	"context"
	"fmt"
	"os"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// AudioArchive uploads synthesis outputs to an S3 bucket. A nil archive
// drops uploads silently.
type AudioArchive struct {
	client *s3.Client
	bucket string
	prefix string
}

// ArchiveConfig selects the target bucket; Region falls back to the
// standard AWS config chain when empty.
type ArchiveConfig struct {
	Bucket string
	Region string
	Prefix string
}

// NewAudioArchive creates the archive. Returns (nil, nil) when no bucket
// is configured.
func NewAudioArchive(ctx context.Context, cfg ArchiveConfig) (*AudioArchive, error) {
	if cfg.Bucket == "" {
		return nil, nil
	}

	var loadOpts []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(cfg.Region))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, err
	}

	return &AudioArchive{
		client: s3.NewFromConfig(awsCfg),
		bucket: cfg.Bucket,
		prefix: cfg.Prefix,
	}, nil
}

// Put uploads the audio file at localPath under its bare filename.
func (a *AudioArchive) Put(ctx context.Context, localPath, filename string) error {
	if a == nil {
		return nil
	}

	f, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("opening audio artifact: %w", err)
	}
	defer f.Close()

	key := filename
	if a.prefix != "" {
		key = path.Join(a.prefix, filename)
	}

	_, err = a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        f,
		ContentType: aws.String("audio/mpeg"),
	})
	return err
}
