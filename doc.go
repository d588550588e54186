// Package main provides the memns command-line interface.
//
// memns keeps a hierarchical namespace of directories and empty files in
// memory. Any number of sessions can work on it concurrently, each with its
// own working directory, using mkdir, touch, cd, ls, pwd and rm.
//
// The binary supports these subcommands:
//   - shell: Work on a namespace interactively
//   - mount: Expose a namespace as a FUSE filesystem
//   - seed: Stress a namespace with concurrent sessions
//   - stats: Count the entries a tree manifest produces
//   - validate: Check a tree manifest for problems
package main
