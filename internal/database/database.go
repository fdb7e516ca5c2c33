// Package database opens and closes the bbolt file backing a point
// set's snapshots (see internal/snapshot).
package database

import (
	"context"
	"fmt"

	"github.com/go-sod/pointset/internal/logging"
	bolt "go.etcd.io/bbolt"
)

// Config names the bbolt file a daemon instance persists snapshots to.
type Config struct {
	FileName string `toml:"file_name" env:"POINTSET_DB_FILE,default=pointset.db"`
}

// DB wraps a bbolt handle.
type DB struct {
	DB *bolt.DB
}

// NewFromEnv opens (creating if absent) the bbolt file named by config.
func NewFromEnv(ctx context.Context, config *Config) (*DB, error) {
	logger := logging.FromContext(ctx)
	logger.Infof("opening snapshot db at %s", config.FileName)

	db, err := bolt.Open(config.FileName, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("creating connection Db: %w", err)
	}

	return &DB{DB: db}, nil
}

// Close releases the bbolt file handle.
func (db *DB) Close(ctx context.Context) error {
	logger := logging.FromContext(ctx)
	logger.Infof("closing DB connection")

	if err := db.DB.Close(); err != nil {
		return fmt.Errorf("error close Db connection: %w", err)
	}

	return nil
}
