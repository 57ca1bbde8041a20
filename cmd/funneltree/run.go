package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/funneltree"
	"github.com/katalvlaran/funneltree/distance"
	"github.com/katalvlaran/funneltree/frontier"
	"github.com/katalvlaran/funneltree/mesh"
	"github.com/katalvlaran/funneltree/meshio"
)

const toleranceAbs = 1e-9

func newRunCommand() *cobra.Command {
	var workers int

	cmd := &cobra.Command{
		Use:   "run [files...]",
		Short: "Run the geodesic-distance engine over one or more mesh files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if workers <= 0 {
				workers = runtime.NumCPU()
			}
			for _, path := range args {
				if err := runOne(cmd.Context(), path, workers); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&workers, "workers", 0, "number of worker goroutines (default: number of CPUs)")
	return cmd
}

func runOne(ctx context.Context, path string, workers int) error {
	start := time.Now()

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("funneltree: open %s: %w", path, err)
	}
	defer f.Close()

	points, triangles, err := meshio.Read(f)
	if err != nil {
		return fmt.Errorf("funneltree: read %s: %w", path, err)
	}

	m, err := mesh.New(points, triangles)
	if err != nil {
		return fmt.Errorf("funneltree: build mesh from %s: %w", path, err)
	}

	tree, err := funneltree.FunnelTree(ctx, m, 0, frontier.WithWorkers(workers))
	if err != nil {
		return fmt.Errorf("funneltree: run on %s: %w", path, err)
	}
	d := distance.Aggregate(0, tree)

	slog.Info("funneltree run complete",
		slog.String("file", path),
		slog.Int("funnels", tree.Len()),
		slog.Duration("elapsed", time.Since(start)),
	)

	expectedPath := filepath.Join(filepath.Dir(path), "expected",
		strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))+"_s=0.txt")
	if _, statErr := os.Stat(expectedPath); statErr == nil {
		if err := compareAgainstExpected(expectedPath, d, len(points)); err != nil {
			fmt.Println("NOT PASSED")
			return err
		}
	}
	return nil
}

func compareAgainstExpected(path string, got map[mesh.VertexIndex]float64, numVerts int) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("funneltree: open expected file %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for v := 0; v < numVerts; v++ {
		if !scanner.Scan() {
			return fmt.Errorf("funneltree: expected file %s has fewer than %d lines", path, numVerts)
		}
		want, err := strconv.ParseFloat(strings.TrimSpace(scanner.Text()), 64)
		if err != nil {
			return fmt.Errorf("funneltree: expected file %s, line %d: %w", path, v+1, err)
		}
		have := distance.Get(got, mesh.VertexIndex(v))
		if diff := have - want; diff > toleranceAbs || diff < -toleranceAbs {
			return fmt.Errorf("funneltree: vertex %d distance mismatch: got %g, want %g", v, have, want)
		}
	}
	return nil
}
