package namespace

import (
	"slices"
	"strings"

	"github.com/dendrascience/memns/util"
)

// Cursor is the ordered list of nodes from the root (index 0) to the current
// position. It holds references only; the nodes belong to the tree. A cursor
// is used by one session at a time and is not safe for concurrent mutation.
type Cursor struct {
	nodes []*Node
}

// NewCursor returns a cursor positioned at root.
func NewCursor(root *Node) *Cursor {
	return &Cursor{nodes: []*Node{root}}
}

// Clone returns a shallow copy that can be walked without touching c.
func (c *Cursor) Clone() *Cursor {
	return &Cursor{nodes: slices.Clone(c.nodes)}
}

// Lowest returns the current position. An empty cursor breaks the package's
// invariants and panics with ErrEmptyCursor.
func (c *Cursor) Lowest() *Node {
	if len(c.nodes) == 0 {
		panic(ErrEmptyCursor)
	}
	return c.nodes[len(c.nodes)-1]
}

// Root returns the first node of the cursor.
func (c *Cursor) Root() *Node {
	if len(c.nodes) == 0 {
		panic(ErrEmptyCursor)
	}
	return c.nodes[0]
}

// Descend appends node as the new lowest position.
func (c *Cursor) Descend(node *Node) {
	c.nodes = append(c.nodes, node)
}

// Ascend drops the lowest position. It reports false, leaving the cursor
// unchanged, when only the root remains.
func (c *Cursor) Ascend() bool {
	if len(c.nodes) <= 1 {
		return false
	}
	c.nodes[len(c.nodes)-1] = nil
	c.nodes = c.nodes[:len(c.nodes)-1]
	return true
}

// Depth is the number of nodes below the root.
func (c *Cursor) Depth() int {
	return len(c.nodes) - 1
}

// Nodes returns a copy of the node list.
func (c *Cursor) Nodes() []*Node {
	return slices.Clone(c.nodes)
}

// String renders the normalized absolute path, "/" for the root alone.
func (c *Cursor) String() string {
	if len(c.nodes) <= 1 {
		return util.RootPath
	}
	var b strings.Builder
	for _, n := range c.nodes[1:] {
		b.WriteString(util.Delimiter)
		b.WriteString(n.name)
	}
	return b.String()
}
