// Package util provides the path-string collaborator used by the namespace engine
// along with a few small shared helpers.
//
// Path grammar:
//   - The delimiter is "/"; absolute paths start with it
//   - Segments are trimmed of surrounding whitespace
//   - Empty segments (from repeated delimiters) are ignored
//   - "." and ".." are navigation segments and never valid entry names
//   - A path that denotes a file must not end with the delimiter
//
// Helpers:
//   - SplitPath, FileName, ParentDir and JoinPath for pure string handling
//   - CheckDirPath, CheckFilePath and CheckLeaf for argument validation
//   - InodeCounter for lock-free inode allocation
//   - SessionColor and Colorize for stable per-session terminal colours
package util
