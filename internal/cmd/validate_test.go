package cmd

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateCmd(t *testing.T) {
	tests := []struct {
		name     string
		tree     string
		problems int
	}{
		{
			name:     "clean tree",
			tree:     "directories: [/foo/bar]\nfiles: [/foo/f1, /foo/bar/f2]\n",
			problems: 0,
		},
		{
			name:     "relative and dotted paths",
			tree:     "directories: [foo, /a/../b]\n",
			problems: 2,
		},
		{
			name:     "file used as directory",
			tree:     "directories: [/foo/f1/x]\nfiles: [/foo/f1]\n",
			problems: 1,
		},
		{
			name:     "trailing delimiter and duplicate",
			tree:     "files: [/foo/, /a, /a]\n",
			problems: 2,
		},
		{
			name:     "empty manifest",
			tree:     "",
			problems: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, "", "validate", writeTree(t, tt.tree))
			if tt.problems == 0 {
				if err != nil {
					t.Fatalf("validate failed: %v\n%s", err, out)
				}
			} else if !errors.Is(err, ErrInvalidManifest) {
				t.Fatalf("validate = %v, expected ErrInvalidManifest", err)
			}

			if got := strings.Count(out, "  - "); got != tt.problems {
				t.Errorf("Expected %d problems, got %d:\n%s", tt.problems, got, out)
			}
		})
	}
}
