package cmd

import (
	"fmt"

	"github.com/dendrascience/memns/internal/manifest"
	"github.com/dendrascience/memns/namespace"
	"github.com/spf13/cobra"
)

// NewStatsCmd creates and returns the stats subcommand for the memns CLI.
// It loads a tree manifest into a fresh namespace and counts the entries.
func NewStatsCmd() *cobra.Command {
	var (
		treePath string
		list     bool
	)

	cmd := &cobra.Command{
		Use:   "stats [TREE]",
		Short: "Count the entries a tree manifest produces",
		Long: `Load a YAML tree manifest into a fresh namespace and print how many
entries, files and directories it holds (the root directory included).

Entries the namespace refuses, such as a file whose name is already taken by
a directory, are reported and left out of the counts.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				treePath = args[0]
			}
			if treePath == "" {
				return fmt.Errorf("a tree manifest is required")
			}
			return runStats(cmd, treePath, list)
		},
	}

	cmd.Flags().StringVarP(&treePath, "tree", "t", "", "YAML tree manifest to count")
	cmd.Flags().BoolVarP(&list, "list", "l", false, "Print every path as well")

	return cmd
}

func runStats(cmd *cobra.Command, treePath string, list bool) error {
	out := cmd.OutOrStdout()
	ns := namespace.New(namespace.WithLogger(loggerFrom(cmd)))

	res, err := manifest.LoadInto(ns, treePath)
	if err != nil {
		return fmt.Errorf("failed to load tree: %w", err)
	}
	for _, p := range res.Failed {
		fmt.Fprintf(out, "Refused: %s\n", p)
	}

	if list {
		err := ns.Walk(func(path string, n *namespace.Node) error {
			fmt.Fprintf(out, "%-9s %s\n", n.Kind(), path)
			return nil
		})
		if err != nil {
			return err
		}
	}

	stats := ns.Stats()
	fmt.Fprintf(out, "Total entries: %d\n", stats.TotalEntries)
	fmt.Fprintf(out, "Total files: %d\n", stats.TotalFiles)
	fmt.Fprintf(out, "Total directories: %d\n", stats.TotalDirectories)
	return nil
}
