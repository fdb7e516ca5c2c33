package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/go-sod/pointset/internal/bench"
	"github.com/go-sod/pointset/internal/buildinfo"
	"github.com/go-sod/pointset/internal/config"
	"github.com/go-sod/pointset/internal/httpapi"
	"github.com/go-sod/pointset/internal/logging"
	"github.com/go-sod/pointset/internal/metric"
	"github.com/go-sod/pointset/internal/server"
	"github.com/go-sod/pointset/internal/setup"
	"github.com/go-sod/pointset/internal/shutdown"
	"github.com/go-sod/pointset/internal/snapshot"
)

func main() {
	_, _ = fmt.Fprint(os.Stdout, buildinfo.Graffiti)
	_, _ = fmt.Fprintf(
		os.Stdout,
		"%s: %s, %s\n",
		buildinfo.Info.Name(),
		buildinfo.Info.Time(),
		buildinfo.Info.Tag(),
	)

	ctx, done := shutdown.New()
	logger := logging.FromContext(ctx)
	go func() {
		_ = http.ListenAndServe("0.0.0.0:6060", nil)
	}()

	if err := run(ctx, done); err != nil {
		logger.Fatal(err)
	}
	defer done()
}

func run(ctx context.Context, cancel func()) error {
	configPath := flag.String("config", "pointset.toml", "path to a TOML config file")
	seedFile := flag.String("seed", "", "path to a coordinate file to seed the point set from")
	runBench := flag.Bool("bench", false, "run the concurrent query benchmark and exit")
	flag.Parse()

	logger := logging.FromContext(ctx)

	cfg, err := config.Load(ctx, *configPath)
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	env, err := setup.Setup(ctx, cfg, *seedFile)
	if err != nil {
		return fmt.Errorf("setup.Setup: %w", err)
	}
	defer func() {
		if err := env.Close(ctx); err != nil {
			logger.Errorf("closing environment: %v", err)
		}
	}()

	if *runBench {
		result, err := bench.Run(ctx, env.PointSet(), bench.DefaultConfig(), rand.New(rand.NewSource(1)))
		if err != nil {
			return fmt.Errorf("bench.Run: %w", err)
		}
		logger.Infof("bench: %d queries in %s, %d points visited", result.Queries, result.Elapsed, result.PointSum)
		return nil
	}

	srv, err := server.New(cfg.SrvAddr)
	if err != nil {
		return fmt.Errorf("server.New: %w", err)
	}

	metricsHandler, err := metric.NewExporter(cfg.Metrics)
	if err != nil {
		return fmt.Errorf("metric.NewExporter: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/", httpapi.New(env.PointSet(), env.Backend(), env.Cache()).Mux())
	mux.Handle("/health", server.HandleHealth(ctx))
	mux.Handle("/metrics", metricsHandler)

	shutdownCh := make(chan error, 1)
	go func() {
		if err := srv.ServeHTTPHandler(ctx, mux); err != nil {
			shutdownCh <- err
			cancel()
			return
		}
		shutdownCh <- nil
	}()

	err = <-shutdownCh
	if saveErr := snapshot.Save(env.Database(), "default", env.PointSet()); saveErr != nil {
		logger.Errorf("saving snapshot on shutdown: %v", saveErr)
	}
	return err
}
