package util

import (
	"fmt"

	"github.com/taigrr/colorhash"
)

// SessionColor maps an identifier onto one of the 216 cube colours of the
// 256-colour ANSI palette. The same id always gets the same colour.
func SessionColor(id string) int {
	h := colorhash.HashString(id) % 216
	if h < 0 {
		h += 216
	}
	return 16 + h
}

// Colorize wraps s in the foreground escape for id's colour.
func Colorize(id, s string) string {
	return fmt.Sprintf("\x1b[38;5;%dm%s\x1b[0m", SessionColor(id), s)
}

// ShortID returns the first eight characters of an identifier.
func ShortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}
