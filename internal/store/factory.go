package store

import (
	"context"
	"fmt"
	"path/filepath"

	"cookbook-go/internal/config"
	"cookbook-go/internal/cookbook"
)

// NewStoreFromConfig creates a Store implementation based on the store config type.
func NewStoreFromConfig(cfg config.StoreConfig) (cookbook.Store, error) {
	switch cfg.Type {
	case "memory":
		return NewMemoryStore(), nil
	case "filesystem":
		if cfg.DataDir == "" {
			return nil, fmt.Errorf("data_dir required for filesystem store")
		}
		return NewFileSystemStore(cfg.DataDir)
	case "sqlite":
		if cfg.DataDir == "" {
			return nil, fmt.Errorf("data_dir required for sqlite store")
		}
		return NewSQLiteStore(filepath.Join(cfg.DataDir, "cookbook.db"))
	case "s3":
		if cfg.S3Bucket == "" {
			return nil, fmt.Errorf("s3 store requires s3_bucket to be set")
		}
		return NewS3Store(context.Background(), cfg)
	default:
		return nil, fmt.Errorf("unknown store type: %s", cfg.Type)
	}
}
