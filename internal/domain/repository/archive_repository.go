package repository

import "context"

// ArchiveRepository defines the interface for converting billing archives in
// blob storage before they can be queried.
type ArchiveRepository interface {
	// ConvertZipToGz picks the newest detailed billing zip in the source
	// bucket, recompresses its entries as gzip and uploads them to the
	// destination bucket.
	ConvertZipToGz(ctx context.Context, sourceBucket, destinationBucket string) error
}
