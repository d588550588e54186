package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"bazil.org/fuse"
	"bazil.org/fuse/fs"
	"github.com/dendrascience/memns/fusefs"
	"github.com/dendrascience/memns/internal/manifest"
	"github.com/dendrascience/memns/namespace"
	"github.com/dendrascience/memns/version"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewMountCmd creates and returns the mount subcommand for the memns CLI.
// It serves a fresh namespace at a mountpoint until interrupted.
func NewMountCmd() *cobra.Command {
	var treePath string

	cmd := &cobra.Command{
		Use:   "mount MOUNTPOINT",
		Short: "Mount an in-memory namespace",
		Long: `Mount a fresh in-memory namespace at the specified mountpoint.

MOUNTPOINT is the directory where the filesystem will be mounted. Directories
and empty files can be created, listed, touched and removed through it. Its
content is lost when the filesystem is unmounted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMount(cmd, args[0], treePath)
		},
	}

	cmd.Flags().StringVarP(&treePath, "tree", "t", "", "YAML tree manifest to load before mounting")

	return cmd
}

func runMount(cmd *cobra.Command, mountpoint, treePath string) error {
	logger := loggerFrom(cmd)
	logger.Info("memns starting", zap.String("version", version.GetFullVersion()))

	ns := namespace.New(namespace.WithLogger(logger))
	if treePath != "" {
		res, err := manifest.LoadInto(ns, treePath)
		if err != nil {
			return fmt.Errorf("failed to load tree: %w", err)
		}
		logger.Info("tree loaded", zap.String("path", treePath), zap.Stringer("stats", ns.Stats()),
			zap.Strings("failed", res.Failed))
	}

	filesystem := fusefs.New(ns)

	c, err := fuse.Mount(
		mountpoint,
		fuse.FSName("memns"),
		fuse.Subtype("memns"),
	)
	if err != nil {
		return fmt.Errorf("failed to mount %s: %w", mountpoint, err)
	}
	defer c.Close()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		<-sigChan
		logger.Info("received interrupt signal, unmounting", zap.String("mountpoint", mountpoint))
		if err := fuse.Unmount(mountpoint); err != nil {
			logger.Error("unmount failed", zap.Error(err))
		}
	}()

	logger.Info("namespace mounted",
		zap.String("mountpoint", mountpoint),
		zap.String("session", filesystem.SessionID()))
	if err := fs.Serve(c, filesystem); err != nil {
		return fmt.Errorf("serve failed: %w", err)
	}

	logger.Info("shutdown complete", zap.Stringer("stats", ns.Stats()))
	return nil
}
