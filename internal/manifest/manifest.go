// Package manifest loads YAML descriptions of a namespace tree and applies
// them to a namespace.
//
// A manifest lists absolute directory and file paths:
//
//	directories:
//	  - /foo/bar/zzz1
//	files:
//	  - /foo/f1
//
// Directories are created with their parents; files are touched, creating
// their parent directories as needed.
package manifest

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dendrascience/memns/namespace"
	"github.com/dendrascience/memns/util"
	"gopkg.in/yaml.v3"
)

// ErrManifestNotFound is returned when the manifest file does not exist.
var ErrManifestNotFound = errors.New("manifest file not found")

// Manifest describes the entries of a tree.
type Manifest struct {
	Directories []string `yaml:"directories"`
	Files       []string `yaml:"files"`
}

// Load reads a manifest from path.
func Load(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrManifestNotFound, path)
		}
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// Decode parses a manifest from r. An empty document is an empty manifest.
func Decode(r io.Reader) (*Manifest, error) {
	var m Manifest
	if err := yaml.NewDecoder(r).Decode(&m); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return &m, nil
}

// Problem is one issue found by Validate.
type Problem struct {
	Path    string
	Message string
}

func (p Problem) String() string {
	return fmt.Sprintf("%s: %s", p.Path, p.Message)
}

// Validate checks the manifest without touching any namespace. It reports
// paths that are empty or relative, use "." or "..", declare a file with a
// trailing delimiter, or use a file as a directory.
func (m *Manifest) Validate() []Problem {
	var problems []Problem
	dirs := make(map[string]bool)
	files := make(map[string]bool)
	var declared []struct{ raw, clean string }

	check := func(p string, file bool) (string, bool) {
		if strings.TrimSpace(p) == "" {
			problems = append(problems, Problem{Path: p, Message: "empty path"})
			return "", false
		}
		if !util.IsAbs(p) {
			problems = append(problems, Problem{Path: p, Message: "path must be absolute"})
			return "", false
		}
		segments := util.SplitPath(p)
		for _, s := range segments {
			if util.IsReserved(s) {
				problems = append(problems, Problem{Path: p, Message: "'.' and '..' are not allowed"})
				return "", false
			}
		}
		if file {
			if err := util.CheckFilePath(p); err != nil {
				problems = append(problems, Problem{Path: p, Message: err.Error()})
				return "", false
			}
		}
		return util.Delimiter + strings.Join(segments, util.Delimiter), true
	}

	// Every parent of an entry is implicitly a directory.
	addParents := func(clean string) {
		for parent := util.ParentDir(clean); parent != util.RootPath; parent = util.ParentDir(parent) {
			dirs[parent] = true
		}
	}

	for _, d := range m.Directories {
		if clean, ok := check(d, false); ok && clean != util.RootPath {
			dirs[clean] = true
			addParents(clean)
		}
	}
	for _, f := range m.Files {
		if clean, ok := check(f, true); ok {
			if files[clean] {
				problems = append(problems, Problem{Path: f, Message: "duplicate file"})
				continue
			}
			files[clean] = true
			declared = append(declared, struct{ raw, clean string }{f, clean})
			addParents(clean)
		}
	}

	for _, f := range declared {
		if dirs[f.clean] {
			problems = append(problems, Problem{Path: f.raw, Message: "declared as a file but used as a directory"})
		}
	}
	return problems
}

// Result counts what Apply did.
type Result struct {
	Directories int
	Files       int
	Failed      []string
}

// Apply creates the manifest's entries through s. Directories come first,
// then files. Entries the namespace refuses are listed in Result.Failed;
// argument errors abort the apply.
func (m *Manifest) Apply(s *namespace.Session) (Result, error) {
	var res Result
	for _, d := range m.Directories {
		ok, err := s.MakeDirectory(d)
		if err != nil {
			return res, fmt.Errorf("mkdir %q: %w", d, err)
		}
		if !ok {
			res.Failed = append(res.Failed, d)
			continue
		}
		res.Directories++
	}
	for _, f := range m.Files {
		got, err := s.Touch(f)
		if err != nil {
			return res, fmt.Errorf("touch %q: %w", f, err)
		}
		if got == "" {
			res.Failed = append(res.Failed, f)
			continue
		}
		res.Files++
	}
	return res, nil
}

// LoadInto reads the manifest at path and applies it to a fresh session of ns.
func LoadInto(ns *namespace.Namespace, path string) (Result, error) {
	m, err := Load(path)
	if err != nil {
		return Result{}, err
	}
	return m.Apply(ns.NewSession())
}
