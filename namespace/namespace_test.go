package namespace

import (
	"errors"
	"slices"
	"testing"
)

func newFixture(t *testing.T) (*Namespace, *Session) {
	t.Helper()
	ns := New()
	s := ns.NewSession()

	for _, p := range []string{"/foo", "/foo/bar", "/foo/bar1", "/foo/bar/zzz1", "/foo/bar/zzz2"} {
		if ok, err := s.MakeDirectory(p); !ok || err != nil {
			t.Fatalf("MakeDirectory(%q) = %v, %v", p, ok, err)
		}
	}
	for _, p := range []string{"/foo/f1", "/foo/f2"} {
		if got, err := s.Touch(p); got != p || err != nil {
			t.Fatalf("Touch(%q) = %q, %v", p, got, err)
		}
	}
	return ns, s
}

func TestNamespace_Stats(t *testing.T) {
	ns, _ := newFixture(t)

	stats := ns.Stats()
	expected := Stats{TotalEntries: 8, TotalFiles: 2, TotalDirectories: 6}
	if stats != expected {
		t.Errorf("Stats() = %s, expected %s", stats, expected)
	}
}

func TestNamespace_StatsEmpty(t *testing.T) {
	ns := New()
	expected := Stats{TotalEntries: 1, TotalFiles: 0, TotalDirectories: 1}
	if got := ns.Stats(); got != expected {
		t.Errorf("Empty namespace stats = %s, expected %s", got, expected)
	}
}

func TestNamespace_ClearAll(t *testing.T) {
	ns, s := newFixture(t)
	ns.ClearAll()

	expected := Stats{TotalEntries: 1, TotalFiles: 0, TotalDirectories: 1}
	if got := ns.Stats(); got != expected {
		t.Errorf("Stats after ClearAll = %s, expected %s", got, expected)
	}
	if got := s.List(); len(got) != 0 {
		t.Errorf("Root should be empty after ClearAll, got %v", got)
	}
}

func TestNamespace_Walk(t *testing.T) {
	ns, _ := newFixture(t)

	var paths []string
	err := ns.Walk(func(path string, n *Node) error {
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}

	expected := []string{
		"/",
		"/foo",
		"/foo/bar",
		"/foo/bar/zzz1",
		"/foo/bar/zzz2",
		"/foo/bar1",
		"/foo/f1",
		"/foo/f2",
	}
	if !slices.Equal(paths, expected) {
		t.Errorf("Walk order = %v, expected %v", paths, expected)
	}

	stop := errors.New("stop")
	visited := 0
	err = ns.Walk(func(path string, n *Node) error {
		visited++
		if path == "/foo/bar" {
			return stop
		}
		return nil
	})
	if !errors.Is(err, stop) {
		t.Errorf("Walk should return the callback error, got %v", err)
	}
	if visited != 3 {
		t.Errorf("Walk should stop after 3 nodes, visited %d", visited)
	}
}

func TestNamespace_InodesAreUnique(t *testing.T) {
	ns, _ := newFixture(t)

	if ns.Root().Inode() != 1 {
		t.Errorf("Root should get inode 1, got %d", ns.Root().Inode())
	}

	seen := make(map[uint64]string)
	ns.Walk(func(path string, n *Node) error {
		if other, ok := seen[n.Inode()]; ok {
			t.Errorf("Inode %d shared by %s and %s", n.Inode(), other, path)
		}
		seen[n.Inode()] = path
		return nil
	})
}
