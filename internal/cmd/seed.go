package cmd

import (
	"fmt"
	"time"

	"github.com/dendrascience/memns/namespace"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// NewSeedCmd creates and returns the seed subcommand for the memns CLI.
// It runs many sessions against one namespace at once and checks the totals.
func NewSeedCmd() *cobra.Command {
	var (
		workers int
		depth   int
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Stress a namespace with concurrent sessions",
		Long: `Run concurrent sessions against one fresh namespace and verify the result.

Each worker opens its own session and, depth times over, creates a directory
with a random name, changes into it and creates a file with another random
name. Afterwards the namespace must hold workers*depth+1 directories (the
root included) and workers*depth files.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if workers < 1 || depth < 1 {
				return fmt.Errorf("workers and depth must be positive, got %d and %d", workers, depth)
			}
			ns := namespace.New(namespace.WithLogger(loggerFrom(cmd)))
			stats, elapsed, err := runSeed(ns, workers, depth)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if verbose {
				fmt.Fprintf(out, "Seeded %d workers at depth %d in %s\n", workers, depth, elapsed)
			}
			fmt.Fprintln(out, stats)
			return checkSeed(stats, workers, depth)
		},
	}

	cmd.Flags().IntVarP(&workers, "workers", "w", 100, "Number of concurrent sessions")
	cmd.Flags().IntVarP(&depth, "depth", "d", 10, "Directories each session creates, one inside the other")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	return cmd
}

func runSeed(ns *namespace.Namespace, workers, depth int) (namespace.Stats, time.Duration, error) {
	logger := ns.Logger()
	start := time.Now()

	var g errgroup.Group
	for w := range workers {
		g.Go(func() error {
			s := ns.NewSession()
			if err := seedSession(s, w, depth, uuid.NewString); err != nil {
				return err
			}
			logger.Debug("worker done", zap.Int("worker", w), zap.String("session", s.ID()), zap.String("pwd", s.Pwd()))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return namespace.Stats{}, 0, err
	}

	elapsed := time.Since(start)
	stats := ns.Stats()
	logger.Info("seed complete", zap.Int("workers", workers), zap.Int("depth", depth),
		zap.Duration("elapsed", elapsed), zap.Stringer("stats", stats))
	return stats, elapsed, nil
}

// seedSession creates depth nested directories through s, one file in each,
// naming every entry with name.
func seedSession(s *namespace.Session, worker, depth int, name func() string) error {
	for range depth {
		dir := name()
		ok, err := s.MakeDirectory(dir)
		if err != nil {
			return fmt.Errorf("worker %d: mkdir %s: %w", worker, dir, err)
		}
		if !ok {
			return fmt.Errorf("worker %d: mkdir %s refused in %s", worker, dir, s.Pwd())
		}
		if _, err := s.ChangeDirectory(dir); err != nil {
			return fmt.Errorf("worker %d: cd %s: %w", worker, dir, err)
		}
		file := name()
		got, err := s.Touch(file)
		if err != nil {
			return fmt.Errorf("worker %d: touch %s: %w", worker, file, err)
		}
		if got == "" {
			return fmt.Errorf("worker %d: touch %s refused in %s", worker, file, s.Pwd())
		}
	}
	return nil
}

// checkSeed compares stats against what a clean run of workers*depth
// produces.
func checkSeed(stats namespace.Stats, workers, depth int) error {
	n := int64(workers) * int64(depth)
	expected := namespace.Stats{TotalEntries: 2*n + 1, TotalFiles: n, TotalDirectories: n + 1}
	if stats != expected {
		return fmt.Errorf("seed totals mismatch: got %s, expected %s", stats, expected)
	}
	return nil
}
