// Package version reports build metadata for memns.
//
// Version, Commit and Date can be injected at build time:
//
//	go build -ldflags "-X github.com/dendrascience/memns/version.Version=v0.1.0 -X github.com/dendrascience/memns/version.Commit=$(git rev-parse HEAD)"
//
// When they are left at their defaults the values recorded by the Go
// toolchain in the binary's build info are used instead.
package version
