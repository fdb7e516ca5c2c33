// Package setup wires a daemon instance's dependencies together:
// opens the snapshot database, constructs the configured point set
// backend, reloads its last snapshot, optionally seeds it from a
// coordinate file, and attaches a query cache — mirroring the shape of
// the teacher's own Setup entry point.
package setup

import (
	"context"
	"fmt"

	"github.com/go-sod/pointset/internal/config"
	"github.com/go-sod/pointset/internal/database"
	"github.com/go-sod/pointset/internal/ingest"
	"github.com/go-sod/pointset/internal/logging"
	"github.com/go-sod/pointset/internal/querycache"
	"github.com/go-sod/pointset/internal/snapshot"
	"github.com/go-sod/pointset/internal/srvenv"
	"github.com/go-sod/pointset/pkg/pointset"
	"github.com/go-sod/pointset/pkg/pointset/bruteforce"
	"github.com/go-sod/pointset/pkg/pointset/kdpointset"
)

const snapshotName = "default"

// Setup builds a ready-to-serve SrvEnv from cfg: opens the snapshot
// database, constructs the configured PointSet backend, reloads its
// last snapshot, optionally seeds it from seedFile, and attaches a
// query cache.
func Setup(ctx context.Context, cfg *config.Config, seedFile string) (*srvenv.SrvEnv, error) {
	logger := logging.FromContext(ctx)

	db, err := database.NewFromEnv(ctx, &cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	set, err := newBackend(cfg.Backend)
	if err != nil {
		return nil, err
	}

	n, err := snapshot.Load(db, snapshotName, set)
	if err != nil {
		return nil, fmt.Errorf("loading snapshot: %w", err)
	}
	logger.Infof("loaded %d points from snapshot", n)

	if seedFile != "" {
		n := ingest.LoadFile(seedFile, set)
		logger.Infof("seeded %d points from %s", n, seedFile)
	}

	cache := querycache.New(cfg.Cache)

	return srvenv.New(
		srvenv.WithDatabase(db),
		srvenv.WithCache(cache),
		srvenv.WithPointSet(set, cfg.Backend),
	), nil
}

// newBackend constructs the named PointSet implementation.
func newBackend(name string) (pointset.PointSet, error) {
	switch name {
	case config.BackendKDTree:
		return kdpointset.New(), nil
	case config.BackendBruteForce:
		return bruteforce.New(), nil
	default:
		return nil, fmt.Errorf("unknown point set backend %q", name)
	}
}
