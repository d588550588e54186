package cmd

import (
	"strings"
	"testing"
)

func TestStatsCmd(t *testing.T) {
	tree := writeTree(t, `directories:
  - /foo
  - /foo/bar/zzz1
  - /foo/bar/zzz2
  - /foo/bar1
files:
  - /foo/f1
  - /foo/f2
  - /foo/bar
`)

	out, err := execute(t, "", "stats", tree)
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}

	expected := []string{
		"Refused: /foo/bar\n",
		"Total entries: 8\n",
		"Total files: 2\n",
		"Total directories: 6\n",
	}
	for _, line := range expected {
		if !strings.Contains(out, line) {
			t.Errorf("Output should contain %q, got %q", line, out)
		}
	}
}

func TestStatsCmd_List(t *testing.T) {
	tree := writeTree(t, "directories: [/a]\nfiles: [/a/f]\n")

	out, err := execute(t, "", "stats", "--tree", tree, "--list")
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	for _, line := range []string{"directory /\n", "directory /a\n", "file      /a/f\n"} {
		if !strings.Contains(out, line) {
			t.Errorf("Output should contain %q, got %q", line, out)
		}
	}
}

func TestStatsCmd_Errors(t *testing.T) {
	if _, err := execute(t, "", "stats"); err == nil {
		t.Error("stats without a tree should fail")
	}
	if _, err := execute(t, "", "stats", "/does/not/exist.yaml"); err == nil {
		t.Error("stats with a missing tree should fail")
	}
}
