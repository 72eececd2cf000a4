// streetgen derives the full street geometry from a house layout file and
// writes it out as a Wavefront OBJ. The build runs through the same frame-
// budgeted queue the runtime uses, so its per-frame pacing is exercised here
// too.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Sid-Shenoy/RedbrickStreet-sub001/internal/build"
	"github.com/Sid-Shenoy/RedbrickStreet-sub001/internal/config"
	"github.com/Sid-Shenoy/RedbrickStreet-sub001/internal/layout"
	"github.com/Sid-Shenoy/RedbrickStreet-sub001/internal/mesh"
)

func main() {
	layoutPath := flag.String("layout", "config/houses.json", "street layout JSON")
	configPath := flag.String("config", "config/world.yaml", "world tuning YAML")
	outPath := flag.String("out", "street.obj", "output OBJ path")
	logLevel := flag.String("log-level", "info", "debug|info|warn|error")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(*logLevel),
	})))

	if err := run(context.Background(), *layoutPath, *configPath, *outPath); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, layoutPath, configPath, outPath string) error {
	var (
		cfg config.World
		st  layout.Street
	)
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		st, err = layout.LoadStreet(layoutPath)
		if err != nil {
			return fmt.Errorf("loading layout: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}
	slog.Info("inputs loaded", "houses", len(st.Houses), "budget_ms", cfg.BuildBudgetMS)

	session := build.NewSession(cfg)
	queue := build.NewQueue()
	build.EnqueueStreet(session, queue, st)

	budget := time.Duration(cfg.BuildBudgetMS) * time.Millisecond
	if budget <= 0 {
		budget = time.Millisecond // a zero budget would drain nothing, ever
	}
	frames := 0
	start := time.Now()
	for queue.Pending() > 0 {
		ran := queue.Drain(budget)
		frames++
		slog.Debug("frame drained", "frame", frames, "jobs", ran, "pending", queue.Pending())
	}
	queue.Close()

	buffers := session.Buffers()
	var tris int
	for _, b := range buffers {
		tris += b.TriangleCount()
	}
	slog.Info("street built",
		"frames", frames,
		"buffers", len(buffers),
		"triangles", tris,
		"elapsed", time.Since(start))

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	defer f.Close()
	if err := mesh.WriteOBJ(f, buffers); err != nil {
		return fmt.Errorf("writing obj: %w", err)
	}
	slog.Info("obj written", "path", outPath)
	return nil
}

func parseLogLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
