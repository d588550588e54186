// Package cmd provides the command-line interface implementation for memns.
//
// Each subcommand lives in its own file with a constructor returning a
// *cobra.Command:
//   - root: Main command, command groups and logging flags
//   - shell: Line-oriented shell over a session registry
//   - mount: FUSE mount of a namespace
//   - seed: Concurrent session stress run with total checks
//   - stats: Entry counts for a tree manifest
//   - validate: Tree manifest checks
//
// The root command builds a zap logger from --log-level and --log-format in
// its persistent pre-run hook and hands it to subcommands through the
// command context.
package cmd
