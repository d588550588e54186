package cmd

import (
	"errors"
	"fmt"

	"github.com/dendrascience/memns/internal/manifest"
	"github.com/spf13/cobra"
)

// ErrInvalidManifest is returned by validate when problems were found.
var ErrInvalidManifest = errors.New("manifest has problems")

// NewValidateCmd creates and returns the validate subcommand for the memns CLI.
// It checks a tree manifest without applying it.
func NewValidateCmd() *cobra.Command {
	var (
		treePath string
		verbose  bool
	)

	cmd := &cobra.Command{
		Use:   "validate [TREE]",
		Short: "Check a tree manifest for problems",
		Long: `Check a YAML tree manifest for entries a namespace would refuse.

Reported problems include empty or relative paths, "." and ".." segments,
file paths ending in a delimiter, files declared twice, and files that are
also used as directories. The command fails when any problem is found.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				treePath = args[0]
			}
			if treePath == "" {
				return fmt.Errorf("a tree manifest is required")
			}
			return runValidate(cmd, treePath, verbose)
		},
	}

	cmd.Flags().StringVarP(&treePath, "tree", "t", "", "YAML tree manifest to validate")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	return cmd
}

func runValidate(cmd *cobra.Command, treePath string, verbose bool) error {
	out := cmd.OutOrStdout()

	m, err := manifest.Load(treePath)
	if err != nil {
		return fmt.Errorf("failed to load tree: %w", err)
	}
	if verbose {
		fmt.Fprintf(out, "Validating %s: %d directories, %d files\n", treePath, len(m.Directories), len(m.Files))
	}

	problems := m.Validate()
	for _, p := range problems {
		fmt.Fprintf(out, "  - %s\n", p)
	}

	fmt.Fprintf(out, "\nValidation complete:\n")
	fmt.Fprintf(out, "  Entries checked: %d\n", len(m.Directories)+len(m.Files))
	fmt.Fprintf(out, "  Total problems: %d\n", len(problems))

	if len(problems) > 0 {
		return fmt.Errorf("%s: %w", treePath, ErrInvalidManifest)
	}
	return nil
}
