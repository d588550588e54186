// Package fusefs exposes a namespace as a FUSE filesystem.
//
// Directories and empty files map one to one onto namespace nodes. Creating,
// removing and touching entries goes through a dedicated namespace session, so
// a mounted tree and shell sessions see the same state. File content is not
// stored: files always read as empty and writes are refused.
//
// The main entry point is New(), whose result can be served with the
// bazil.org/fuse library.
package fusefs
