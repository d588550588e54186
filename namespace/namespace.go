package namespace

import (
	"fmt"
	"time"

	"github.com/dendrascience/memns/util"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Stats summarises the tree. TotalEntries is always TotalFiles+TotalDirectories.
type Stats struct {
	TotalEntries     int64 `json:"totalEntries"`
	TotalFiles       int64 `json:"totalFiles"`
	TotalDirectories int64 `json:"totalDirectories"`
}

// Add accumulates other into s.
func (s *Stats) Add(other Stats) {
	s.TotalEntries += other.TotalEntries
	s.TotalFiles += other.TotalFiles
	s.TotalDirectories += other.TotalDirectories
}

func (s Stats) String() string {
	return fmt.Sprintf("totalEntries=%d totalFiles=%d totalDirectories=%d",
		s.TotalEntries, s.TotalFiles, s.TotalDirectories)
}

// Namespace is the shared tree rooted at "/". Construct one per tree and hand
// it to every session that should see it.
type Namespace struct {
	root     *Node
	inodes   util.InodeCounter
	resolver *Resolver
	logger   *zap.Logger
}

// Option configures a Namespace.
type Option func(*Namespace)

// WithLogger sets the logger used by the namespace and its sessions.
func WithLogger(logger *zap.Logger) Option {
	return func(ns *Namespace) {
		if logger != nil {
			ns.logger = logger
		}
	}
}

// New creates an empty namespace holding only the root directory.
func New(opts ...Option) *Namespace {
	ns := &Namespace{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(ns)
	}
	ns.root = newNode(util.RootPath, KindDirectory, ns.inodes.Next())
	ns.resolver = NewResolver(ns.root, ns.inodes.Next)
	return ns
}

// Root returns the root directory.
func (ns *Namespace) Root() *Node {
	return ns.root
}

// Logger returns the namespace logger.
func (ns *Namespace) Logger() *zap.Logger {
	return ns.logger
}

// Resolve walks path from start (or the root for absolute paths). See
// Resolver.Resolve.
func (ns *Namespace) Resolve(path string, start *Cursor, createMissing bool) (*Cursor, error) {
	return ns.resolver.Resolve(path, start, createMissing)
}

// NewSession returns a session positioned at the root. Sessions are not
// tracked here; see Registry.
func (ns *Namespace) NewSession() *Session {
	return &Session{
		id:        uuid.NewString(),
		createdAt: time.Now(),
		ns:        ns,
		cwd:       NewCursor(ns.root),
	}
}

// Stats counts every entry in the tree, the root included.
func (ns *Namespace) Stats() Stats {
	return statsOf(ns.root)
}

func statsOf(n *Node) Stats {
	if !n.IsDir() {
		return Stats{TotalEntries: 1, TotalFiles: 1}
	}
	s := Stats{TotalEntries: 1, TotalDirectories: 1}
	for _, child := range n.Children() {
		s.Add(statsOf(child))
	}
	return s
}

// ClearAll detaches every child of the root at once.
func (ns *Namespace) ClearAll() {
	ns.root.clearChildren()
}

// WalkFunc is called for each node visited by Walk with its absolute path.
type WalkFunc func(path string, n *Node) error

// Walk visits the tree depth first in name order, root first. Returning an
// error from fn stops the walk and Walk returns it.
func (ns *Namespace) Walk(fn WalkFunc) error {
	return walk(util.RootPath, ns.root, fn)
}

func walk(path string, n *Node, fn WalkFunc) error {
	if err := fn(path, n); err != nil {
		return err
	}
	for _, child := range n.Children() {
		if err := walk(util.JoinPath(path, child.name), child, fn); err != nil {
			return err
		}
	}
	return nil
}
