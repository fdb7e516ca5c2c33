// Package srvenv bundles the daemon's constructed dependencies — its
// snapshot database, query cache, and active point set — into one
// handle cmd/pointsetd threads through request handling, built with the
// same Option pattern the teacher's srvenv package used.
package srvenv

import (
	"context"

	"github.com/go-sod/pointset/internal/database"
	"github.com/go-sod/pointset/internal/querycache"
	"github.com/go-sod/pointset/pkg/pointset"
)

// Option configures a SrvEnv under construction.
type Option func(*SrvEnv) *SrvEnv

// New builds a SrvEnv from opts.
func New(opts ...Option) *SrvEnv {
	env := &SrvEnv{}
	for _, f := range opts {
		env = f(env)
	}
	return env
}

// SrvEnv holds everything a running daemon instance needs, wired up
// once at startup.
type SrvEnv struct {
	database *database.DB
	cache    *querycache.Cache
	set      pointset.PointSet
	backend  string
}

// Database returns the snapshot database.
func (s *SrvEnv) Database() *database.DB {
	return s.database
}

// Cache returns the query cache.
func (s *SrvEnv) Cache() *querycache.Cache {
	return s.cache
}

// PointSet returns the active point set.
func (s *SrvEnv) PointSet() pointset.PointSet {
	return s.set
}

// Backend names which PointSet implementation is active ("kdtree" or
// "bruteforce").
func (s *SrvEnv) Backend() string {
	return s.backend
}

// WithDatabase attaches a snapshot database.
func WithDatabase(db *database.DB) Option {
	return func(s *SrvEnv) *SrvEnv {
		s.database = db
		return s
	}
}

// WithCache attaches a query cache.
func WithCache(c *querycache.Cache) Option {
	return func(s *SrvEnv) *SrvEnv {
		s.cache = c
		return s
	}
}

// WithPointSet attaches the active point set and names its backend.
func WithPointSet(set pointset.PointSet, backend string) Option {
	return func(s *SrvEnv) *SrvEnv {
		s.set = set
		s.backend = backend
		return s
	}
}

// Close releases the query cache's and database's underlying
// connections.
func (s *SrvEnv) Close(ctx context.Context) error {
	if s == nil {
		return nil
	}

	if s.cache != nil {
		if err := s.cache.Close(); err != nil {
			return err
		}
	}
	if s.database != nil {
		return s.database.Close(ctx)
	}
	return nil
}
