package namespace

import (
	"slices"
	"strings"
	"sync"
	"time"
)

// Kind tells files and directories apart.
type Kind int

const (
	KindFile Kind = iota
	KindDirectory
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDirectory:
		return "directory"
	}
	return "unknown"
}

// Node is one entry in the tree. Name, kind, inode and creation time never
// change; the touch time and, for directories, the children are guarded by mu.
type Node struct {
	name      string
	kind      Kind
	inode     uint64
	createdAt time.Time

	mu        sync.RWMutex
	touchedAt time.Time
	children  map[string]*Node // nil for files
}

func newNode(name string, kind Kind, inode uint64) *Node {
	now := time.Now()
	n := &Node{
		name:      name,
		kind:      kind,
		inode:     inode,
		createdAt: now,
		touchedAt: now,
	}
	if kind == KindDirectory {
		n.children = make(map[string]*Node)
	}
	return n
}

func (n *Node) Name() string         { return n.name }
func (n *Node) Kind() Kind           { return n.kind }
func (n *Node) IsDir() bool          { return n.kind == KindDirectory }
func (n *Node) Inode() uint64        { return n.inode }
func (n *Node) CreatedAt() time.Time { return n.createdAt }

// LastTouchedAt returns the last time the node was created or touched.
func (n *Node) LastTouchedAt() time.Time {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.touchedAt
}

// Touch refreshes the node's mutation time.
func (n *Node) Touch() {
	n.mu.Lock()
	n.touchedAt = time.Now()
	n.mu.Unlock()
}

// AddChild inserts child keyed by its name, replacing any entry with the same
// name. Callers check for existence first. It is a no-op on files.
func (n *Node) AddChild(child *Node) {
	if n.kind != KindDirectory {
		return
	}
	n.mu.Lock()
	n.children[child.name] = child
	n.mu.Unlock()
}

// RemoveChild detaches the named child if present.
func (n *Node) RemoveChild(name string) {
	if n.kind != KindDirectory {
		return
	}
	n.mu.Lock()
	delete(n.children, name)
	n.mu.Unlock()
}

// Child looks up an immediate child by name.
func (n *Node) Child(name string) (*Node, bool) {
	if n.kind != KindDirectory {
		return nil, false
	}
	n.mu.RLock()
	defer n.mu.RUnlock()
	child, ok := n.children[name]
	return child, ok
}

// childOrCreate returns the named child, creating it with the given kind when
// absent. The lookup and insert happen under one lock so concurrent creators
// of the same name all end up with the same node.
func (n *Node) childOrCreate(name string, kind Kind, inode func() uint64) (child *Node, created bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if existing, ok := n.children[name]; ok {
		return existing, false
	}
	child = newNode(name, kind, inode())
	n.children[name] = child
	return child, true
}

// removeChildNode detaches name only while it still maps to child.
func (n *Node) removeChildNode(name string, child *Node) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.children[name] != child {
		return false
	}
	delete(n.children, name)
	return true
}

// clearChildren swaps in an empty children map in one step.
func (n *Node) clearChildren() {
	if n.kind != KindDirectory {
		return
	}
	n.mu.Lock()
	n.children = make(map[string]*Node)
	n.mu.Unlock()
}

// ChildNames returns the names of the immediate children, sorted.
func (n *Node) ChildNames() []string {
	if n.kind != KindDirectory {
		return nil
	}
	n.mu.RLock()
	names := make([]string, 0, len(n.children))
	for name := range n.children {
		names = append(names, name)
	}
	n.mu.RUnlock()
	slices.Sort(names)
	return names
}

// Children returns a snapshot of the immediate children sorted by name.
func (n *Node) Children() []*Node {
	if n.kind != KindDirectory {
		return nil
	}
	n.mu.RLock()
	children := make([]*Node, 0, len(n.children))
	for _, child := range n.children {
		children = append(children, child)
	}
	n.mu.RUnlock()
	slices.SortFunc(children, func(a, b *Node) int {
		return strings.Compare(a.name, b.name)
	})
	return children
}

// Len returns the number of immediate children.
func (n *Node) Len() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.children)
}

func (n *Node) String() string {
	return n.kind.String() + " " + n.name
}
