package aws

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"regexp"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/finreport/aws-spend-report-go/internal/domain/repository"
	"github.com/finreport/aws-spend-report-go/internal/shared/types"
)

var billingArchivePattern = regexp.MustCompile(`^.*aws-billing-detailed-line-items-with-resources-and-tags.*\.zip$`)

// S3ArchiveRepository converts the newest zipped billing archive in one
// bucket into gzip objects in another, so Athena can query them directly.
type S3ArchiveRepository struct {
	client  *s3.Client
	console types.ConsoleInterface
}

// NewS3ArchiveRepository creates an ArchiveRepository backed by S3.
func NewS3ArchiveRepository(clients *ClientSet, console types.ConsoleInterface) repository.ArchiveRepository {
	return &S3ArchiveRepository{
		client:  clients.s3(),
		console: console,
	}
}

// ConvertZipToGz finds the most recent billing zip in sourceBucket and
// writes each of its entries gzip-compressed to destinationBucket.
func (r *S3ArchiveRepository) ConvertZipToGz(ctx context.Context, sourceBucket, destinationBucket string) error {
	key, err := r.latestBillingArchive(ctx, sourceBucket)
	if err != nil {
		return err
	}
	r.console.LogInfo("Converting s3://%s/%s", sourceBucket, key)

	object, err := r.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(sourceBucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("get billing archive %s: %w", key, err)
	}
	defer object.Body.Close()

	// The zip central directory lives at the end of the file, so the
	// archive must be buffered before it can be read.
	raw, err := io.ReadAll(object.Body)
	if err != nil {
		return fmt.Errorf("read billing archive %s: %w", key, err)
	}

	reader, err := zip.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return fmt.Errorf("open billing archive %s: %w", key, err)
	}

	for _, entry := range reader.File {
		if err := r.convertEntry(ctx, entry, destinationBucket); err != nil {
			return err
		}
	}
	return nil
}

// latestBillingArchive returns the key of the newest object matching the
// billing archive naming scheme.
func (r *S3ArchiveRepository) latestBillingArchive(ctx context.Context, bucket string) (string, error) {
	var (
		newestKey  string
		newestTime time.Time
	)

	paginator := s3.NewListObjectsV2Paginator(r.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(bucket),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return "", fmt.Errorf("list bucket %s: %w", bucket, err)
		}
		for _, object := range page.Contents {
			if object.Key == nil || !billingArchivePattern.MatchString(*object.Key) {
				continue
			}
			if object.LastModified != nil && object.LastModified.After(newestTime) {
				newestKey = *object.Key
				newestTime = *object.LastModified
			}
		}
	}

	if newestKey == "" {
		return "", types.ErrNoBillingArchive
	}
	return newestKey, nil
}

func (r *S3ArchiveRepository) convertEntry(ctx context.Context, entry *zip.File, destinationBucket string) error {
	source, err := entry.Open()
	if err != nil {
		return fmt.Errorf("open zip entry %s: %w", entry.Name, err)
	}
	defer source.Close()

	var compressed bytes.Buffer
	gz := gzip.NewWriter(&compressed)
	if _, err := io.Copy(gz, source); err != nil {
		return fmt.Errorf("compress zip entry %s: %w", entry.Name, err)
	}
	if err := gz.Close(); err != nil {
		return fmt.Errorf("compress zip entry %s: %w", entry.Name, err)
	}

	key := entry.Name + ".gz"
	_, err = r.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(destinationBucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(compressed.Bytes()),
	})
	if err != nil {
		return fmt.Errorf("upload %s: %w", key, err)
	}
	r.console.LogInfo("Uploaded s3://%s/%s", destinationBucket, key)
	return nil
}
