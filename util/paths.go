package util

import (
	"fmt"
	"strings"
)

const (
	// Delimiter separates path segments.
	Delimiter = "/"
	// RootPath is the absolute path of the namespace root.
	RootPath = "/"
	// CurrentDir and ParentDirName are navigation segments, never entry names.
	CurrentDir    = "."
	ParentDirName = ".."
)

// SplitPath breaks a path into its segments. Segments are trimmed of surrounding
// whitespace and empty segments are dropped, so "//foo/ bar /" yields [foo bar].
func SplitPath(path string) []string {
	raw := strings.Split(path, Delimiter)
	segments := make([]string, 0, len(raw))
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		segments = append(segments, s)
	}
	return segments
}

// IsAbs reports whether path starts at the root.
func IsAbs(path string) bool {
	return strings.HasPrefix(strings.TrimSpace(path), Delimiter)
}

// IsRoot reports whether path denotes the root itself ("/", "//", "/ /").
func IsRoot(path string) bool {
	return IsAbs(path) && len(SplitPath(path)) == 0
}

// IsReserved reports whether name is a navigation segment.
func IsReserved(name string) bool {
	return name == CurrentDir || name == ParentDirName
}

// FileName returns the last segment of path, or "" if there is none.
func FileName(path string) string {
	segments := SplitPath(path)
	if len(segments) == 0 {
		return ""
	}
	return segments[len(segments)-1]
}

// ParentDir returns the path of the directory holding the last segment.
// Absolute paths keep their root prefix ("/foo" -> "/"); a relative path with a
// single segment yields "", which resolves to the current directory.
func ParentDir(path string) string {
	segments := SplitPath(path)
	prefix := ""
	if IsAbs(path) {
		prefix = Delimiter
	}
	if len(segments) <= 1 {
		return prefix
	}
	return prefix + strings.Join(segments[:len(segments)-1], Delimiter)
}

// JoinPath appends name to an absolute directory path.
func JoinPath(dir, name string) string {
	if dir == "" || dir == RootPath {
		return RootPath + name
	}
	return strings.TrimSuffix(dir, Delimiter) + Delimiter + name
}

// CheckDirPath validates a path that may denote a directory.
func CheckDirPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidPath, ErrEmptyPath)
	}
	return nil
}

// CheckFilePath validates a path that must denote a file: non-empty, without a
// trailing delimiter and not ending in a navigation segment.
func CheckFilePath(path string) error {
	if err := CheckDirPath(path); err != nil {
		return err
	}
	if strings.HasSuffix(strings.TrimSpace(path), Delimiter) {
		return fmt.Errorf("%w: %q: %w", ErrInvalidPath, path, ErrNotFilePath)
	}
	return CheckLeaf(path)
}

// CheckLeaf rejects paths without a leaf segment or whose leaf is "." or "..".
func CheckLeaf(path string) error {
	name := FileName(path)
	if name == "" {
		return fmt.Errorf("%w: %q has no entry name", ErrInvalidPath, path)
	}
	if IsReserved(name) {
		return fmt.Errorf("%w: %q: %w", ErrInvalidPath, path, ErrReservedName)
	}
	return nil
}
