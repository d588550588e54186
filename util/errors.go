package util

import "errors"

// Sentinel errors for package util.
// These errors can be checked with errors.Is() for specific error handling.
var (
	// Path argument errors
	ErrInvalidPath  = errors.New("invalid path")
	ErrEmptyPath    = errors.New("path can not be empty")
	ErrNotFilePath  = errors.New("file path can not end with a delimiter")
	ErrReservedName = errors.New("'.' and '..' are reserved names")
)
