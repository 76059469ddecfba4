package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
)

// Storage persists user data snapshots produced by the export service
type Storage interface {
	// Upload stores a snapshot and returns the storage path
	Upload(ctx context.Context, exportID uuid.UUID, filename string, data io.Reader) (string, error)

	// Download retrieves a snapshot by storage path
	Download(ctx context.Context, storagePath string) (io.ReadCloser, error)

	// Delete removes a snapshot by storage path
	Delete(ctx context.Context, storagePath string) error
}

// StorageType represents the storage backend type
type StorageType string

const (
	StorageTypeLocal StorageType = "local"
	StorageTypeS3    StorageType = "s3"
)

// StorageConfig holds configuration for storage
type StorageConfig struct {
	Type         StorageType
	LocalPath    string // For local storage
	S3Bucket     string // For S3 storage
	S3Region     string // For S3 storage
	AWSAccessKey string
	AWSSecretKey string
}

// NewStorage creates a new storage instance based on configuration
func NewStorage(cfg StorageConfig) (Storage, error) {
	switch cfg.Type {
	case StorageTypeLocal:
		return NewLocalStorage(cfg.LocalPath)
	case StorageTypeS3:
		if cfg.S3Bucket == "" {
			return nil, errors.New("s3 storage requires a bucket name")
		}
		return NewS3Storage(cfg)
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Type)
	}
}

// snapshotPath builds the storage key for one export. The export ID keeps
// repeated exports with the same filename from overwriting each other.
func snapshotPath(exportID uuid.UUID, filename string) string {
	name := strings.NewReplacer(" ", "_", "/", "_", "\\", "_").Replace(filename)
	return fmt.Sprintf("snapshots/%s/%s", exportID, name)
}
