package namespace

import (
	"testing"
)

func TestCursor_String(t *testing.T) {
	root := newNode("/", KindDirectory, 1)
	c := NewCursor(root)
	if got := c.String(); got != "/" {
		t.Errorf("Root cursor should render as /, got %q", got)
	}

	c.Descend(newNode("foo", KindDirectory, 2))
	c.Descend(newNode("bar", KindDirectory, 3))
	if got := c.String(); got != "/foo/bar" {
		t.Errorf("Expected /foo/bar, got %q", got)
	}
	if c.Depth() != 2 {
		t.Errorf("Expected depth 2, got %d", c.Depth())
	}
}

func TestCursor_CloneIsIndependent(t *testing.T) {
	root := newNode("/", KindDirectory, 1)
	c := NewCursor(root)
	c.Descend(newNode("foo", KindDirectory, 2))
	c.Descend(newNode("bar", KindDirectory, 3))

	clone := c.Clone()
	if clone.String() != "/foo/bar" {
		t.Errorf("Clone should start at /foo/bar, got %q", clone.String())
	}

	clone.Descend(newNode("zzz", KindDirectory, 4))
	if clone.String() != "/foo/bar/zzz" {
		t.Errorf("Expected /foo/bar/zzz, got %q", clone.String())
	}
	if c.String() != "/foo/bar" {
		t.Errorf("Original cursor must not change, got %q", c.String())
	}

	nodes := c.Nodes()
	nodes[1] = nil
	if c.Lowest() == nil || c.String() != "/foo/bar" {
		t.Error("Nodes should return a copy")
	}
}

func TestCursor_Ascend(t *testing.T) {
	root := newNode("/", KindDirectory, 1)
	c := NewCursor(root)
	c.Descend(newNode("foo", KindDirectory, 2))
	c.Descend(newNode("bar", KindDirectory, 3))

	tests := []struct {
		ok   bool
		path string
	}{
		{true, "/foo"},
		{true, "/"},
		{false, "/"},
		{false, "/"},
	}

	for i, tt := range tests {
		ok := c.Ascend()
		if ok != tt.ok {
			t.Errorf("Ascend #%d returned %v, expected %v", i, ok, tt.ok)
		}
		if c.String() != tt.path {
			t.Errorf("After ascend #%d expected %q, got %q", i, tt.path, c.String())
		}
	}
	if c.Lowest() != root {
		t.Error("Root must never be popped")
	}
}

func TestCursor_LowestOnEmptyPanics(t *testing.T) {
	defer func() {
		if r := recover(); r != ErrEmptyCursor {
			t.Errorf("Expected panic with ErrEmptyCursor, got %v", r)
		}
	}()
	(&Cursor{}).Lowest()
}
