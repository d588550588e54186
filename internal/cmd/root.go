package cmd

import (
	"context"
	"fmt"

	"github.com/dendrascience/memns/internal/logging"
	"github.com/dendrascience/memns/version"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type loggerKey struct{}

// NewRootCmd creates and returns the root cobra command for the memns CLI.
// It sets up all subcommands, command groups, and the shared logging flags.
func NewRootCmd() *cobra.Command {
	var logCfg logging.Config

	rootCmd := &cobra.Command{
		Use:   "memns",
		Short: "memns - An in-memory hierarchical namespace with sessions",
		Long: `memns keeps a tree of directories and empty files in memory and lets any
number of sessions work on it at the same time, each with its own working
directory.

Use subcommands to perform different operations:
  - shell: Work on a namespace interactively
  - mount: Expose a namespace as a FUSE filesystem
  - seed: Stress a namespace with concurrent sessions
  - stats: Count the entries a tree manifest produces
  - validate: Check a tree manifest for problems`,
		Version:       version.GetFullVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.New(logCfg)
			if err != nil {
				return fmt.Errorf("failed to build logger: %w", err)
			}
			cmd.SetContext(context.WithValue(cmd.Context(), loggerKey{}, logger))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = loggerFrom(cmd).Sync()
		},
	}

	rootCmd.PersistentFlags().StringVar(&logCfg.Level, "log-level", "", "Log level: debug, info, warn, error (env "+logging.EnvLevel+")")
	rootCmd.PersistentFlags().StringVar(&logCfg.Format, "log-format", "", "Log format: console or json (env "+logging.EnvFormat+")")

	groupNamespace := "namespace"
	groupUtilities := "utilities"

	rootCmd.AddGroup(&cobra.Group{
		ID:    groupNamespace,
		Title: "Namespace Operations",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupUtilities,
		Title: "Utility Commands",
	})

	shellCmd := NewShellCmd()
	mountCmd := NewMountCmd()
	seedCmd := NewSeedCmd()
	statsCmd := NewStatsCmd()
	validateCmd := NewValidateCmd()

	shellCmd.GroupID = groupNamespace
	mountCmd.GroupID = groupNamespace
	seedCmd.GroupID = groupUtilities
	statsCmd.GroupID = groupUtilities
	validateCmd.GroupID = groupUtilities

	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(mountCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(validateCmd)

	return rootCmd
}

// loggerFrom returns the logger set up by the root command, or a no-op
// logger when the command runs on its own.
func loggerFrom(cmd *cobra.Command) *zap.Logger {
	if ctx := cmd.Context(); ctx != nil {
		if logger, ok := ctx.Value(loggerKey{}).(*zap.Logger); ok {
			return logger
		}
	}
	return zap.NewNop()
}
