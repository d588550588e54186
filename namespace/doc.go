// Package namespace implements an in-memory hierarchical namespace shared by
// many concurrent sessions.
//
// The tree is made of Nodes. Directory nodes own a name-indexed set of children
// guarded by a per-node lock, so operations on unrelated subtrees never contend.
// Nodes have no parent pointers; a Session tracks its position with a Cursor, the
// list of nodes from the root down to its working directory.
//
// Key Components:
//   - Node: a file or directory vertex
//   - Cursor: a session's path from the root to its working directory
//   - Resolver: walks a path string from a cursor, handling "." and "..",
//     optionally creating missing directories along the way
//   - Namespace: the shared root plus recursive statistics
//   - Session: one client's view, exposing ls, mkdir, touch, cd, pwd and rm
//   - Registry: the set of open sessions keyed by id
//
// Sessions report only argument errors. Missing paths, name collisions and a
// working directory removed by another session surface as false or unchanged
// results.
package namespace
