package namespace

import "github.com/dendrascience/memns/util"

// Resolver turns path strings into cursors over one tree.
type Resolver struct {
	root  *Node
	inode func() uint64
}

// NewResolver returns a resolver rooted at root that numbers new directories
// with inode.
func NewResolver(root *Node, inode func() uint64) *Resolver {
	return &Resolver{root: root, inode: inode}
}

// Resolve walks path one segment at a time. Absolute paths start from the
// root, relative ones from a copy of start; start itself is never modified.
//
// "." is skipped and ".." climbs one level, stopping at the root. Any other
// segment must name a directory below the current position. A missing
// segment is created as a directory when createMissing is set, otherwise the
// walk stops with a *NotFoundError. A file in the middle of the path always
// stops the walk.
func (r *Resolver) Resolve(path string, start *Cursor, createMissing bool) (*Cursor, error) {
	var cur *Cursor
	if util.IsAbs(path) || start == nil {
		cur = NewCursor(r.root)
	} else {
		cur = start.Clone()
	}

	for _, segment := range util.SplitPath(path) {
		switch segment {
		case util.CurrentDir:
			continue
		case util.ParentDirName:
			cur.Ascend()
			continue
		}

		lowest := cur.Lowest()
		next, ok := lowest.Child(segment)
		if !ok && createMissing {
			next, _ = lowest.childOrCreate(segment, KindDirectory, r.inode)
			ok = true
		}
		if !ok {
			return nil, &NotFoundError{Segment: segment, Partial: cur.String()}
		}
		if !next.IsDir() {
			return nil, &NotFoundError{Segment: segment, Partial: cur.String(), Err: ErrNotDirectory}
		}
		cur.Descend(next)
	}

	return cur, nil
}
