// Package config loads the daemon's runtime configuration: a TOML file
// supplies defaults and environment variables override them, following
// the same layered (file, then envconfig-driven override) approach the
// teacher's own internal/config used for its Config struct.
package config

import (
	"context"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/sethvargo/go-envconfig"

	"github.com/go-sod/pointset/internal/database"
	"github.com/go-sod/pointset/internal/metric"
	"github.com/go-sod/pointset/internal/querycache"
)

const (
	// BackendKDTree selects the scapegoat k-d tree implementation.
	BackendKDTree = "kdtree"
	// BackendBruteForce selects the linear-scan reference implementation.
	BackendBruteForce = "bruteforce"
)

// Config is the daemon's full runtime configuration.
type Config struct {
	SrvAddr  string `toml:"srv_addr" env:"POINTSET_ADDR,default=:8787"`
	Backend  string `toml:"backend" env:"POINTSET_BACKEND,default=kdtree"`
	SeedFile string `toml:"seed_file" env:"POINTSET_SEED_FILE,default="`

	Database database.Config   `toml:"database"`
	Cache    querycache.Config `toml:"cache"`
	Metrics  metric.Config     `toml:"metrics"`
}

// Load reads defaults from the TOML file at path, if it exists, then
// applies environment variable overrides on top.
func Load(ctx context.Context, path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, cfg); err != nil {
				return nil, fmt.Errorf("decoding config file %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("stat config file %s: %w", path, err)
		}
	}

	if err := envconfig.Process(ctx, cfg); err != nil {
		return nil, fmt.Errorf("processing environment: %w", err)
	}
	return cfg, nil
}
