package fusefs

import (
	"context"
	"os"
	"syscall"

	"bazil.org/fuse"
	"bazil.org/fuse/fs"
	"github.com/dendrascience/memns/namespace"
	"github.com/dendrascience/memns/util"
	"go.uber.org/zap"
)

// FS serves a namespace over FUSE.
type FS struct {
	ns      *namespace.Namespace
	session *namespace.Session // only ever given absolute paths
	logger  *zap.Logger
	uid     uint32
	gid     uint32
}

// New creates a filesystem for ns.
func New(ns *namespace.Namespace) *FS {
	return &FS{
		ns:      ns,
		session: ns.NewSession(),
		logger:  ns.Logger().Named("fuse"),
		uid:     uint32(os.Getuid()),
		gid:     uint32(os.Getgid()),
	}
}

// Root returns the root directory node
func (f *FS) Root() (fs.Node, error) {
	return &Dir{fs: f, node: f.ns.Root(), path: util.RootPath}, nil
}

// SessionID returns the id of the session used for mutations.
func (f *FS) SessionID() string {
	return f.session.ID()
}

// Dir implements both Node and Handle for directories
type Dir struct {
	fs   *FS
	node *namespace.Node
	path string
}

// Attr returns directory attributes
func (d *Dir) Attr(ctx context.Context, a *fuse.Attr) error {
	a.Inode = d.node.Inode()
	a.Mode = os.ModeDir | 0o755
	a.Nlink = 2
	a.Mtime = d.node.LastTouchedAt()
	a.Atime = a.Mtime
	a.Ctime = d.node.CreatedAt()
	a.Uid = d.fs.uid
	a.Gid = d.fs.gid
	return nil
}

// Lookup resolves a name in this directory.
func (d *Dir) Lookup(ctx context.Context, name string) (fs.Node, error) {
	if err := d.live(); err != nil {
		return nil, err
	}
	child, ok := d.node.Child(name)
	if !ok {
		return nil, syscall.ENOENT
	}
	return d.wrap(child), nil
}

func (d *Dir) wrap(child *namespace.Node) fs.Node {
	path := util.JoinPath(d.path, child.Name())
	if child.IsDir() {
		return &Dir{fs: d.fs, node: child, path: path}
	}
	return &File{fs: d.fs, node: child, path: path}
}

// live reports ENOENT when the directory this handle points at is no longer
// reachable from the root under its path.
func (d *Dir) live() error {
	cur, err := d.fs.ns.Resolve(d.path, nil, false)
	if err != nil || cur.Lowest() != d.node {
		return syscall.ENOENT
	}
	return nil
}

// ReadDirAll lists directory contents in name order.
func (d *Dir) ReadDirAll(ctx context.Context) ([]fuse.Dirent, error) {
	if err := d.live(); err != nil {
		return nil, err
	}
	children := d.node.Children()
	dirents := make([]fuse.Dirent, 0, len(children))
	for _, child := range children {
		typ := fuse.DT_File
		if child.IsDir() {
			typ = fuse.DT_Dir
		}
		dirents = append(dirents, fuse.Dirent{
			Inode: child.Inode(),
			Name:  child.Name(),
			Type:  typ,
		})
	}
	return dirents, nil
}

// Mkdir creates a new directory
func (d *Dir) Mkdir(ctx context.Context, req *fuse.MkdirRequest) (fs.Node, error) {
	if err := d.live(); err != nil {
		return nil, err
	}
	if _, exists := d.node.Child(req.Name); exists {
		return nil, syscall.EEXIST
	}

	path := util.JoinPath(d.path, req.Name)
	ok, err := d.fs.session.MakeDirectory(path)
	if err != nil {
		return nil, syscall.EINVAL
	}
	child, found := d.node.Child(req.Name)
	if !ok || !found || !child.IsDir() {
		return nil, syscall.EEXIST
	}

	d.fs.logger.Debug("mkdir", zap.String("path", path))
	return d.wrap(child), nil
}

// Create creates a new, empty file
func (d *Dir) Create(ctx context.Context, req *fuse.CreateRequest, resp *fuse.CreateResponse) (fs.Node, fs.Handle, error) {
	if err := d.live(); err != nil {
		return nil, nil, err
	}
	if existing, ok := d.node.Child(req.Name); ok && existing.IsDir() {
		return nil, nil, syscall.EISDIR
	}

	path := util.JoinPath(d.path, req.Name)
	got, err := d.fs.session.Touch(path)
	if err != nil {
		return nil, nil, syscall.EINVAL
	}
	child, found := d.node.Child(req.Name)
	if got == "" || !found || child.IsDir() {
		return nil, nil, syscall.EEXIST
	}

	file := &File{fs: d.fs, node: child, path: path}
	if err := file.Attr(ctx, &resp.Attr); err != nil {
		return nil, nil, err
	}

	d.fs.logger.Debug("create", zap.String("path", path))
	return file, file, nil
}

// Remove deletes a file (unlink) or an empty directory (rmdir).
func (d *Dir) Remove(ctx context.Context, req *fuse.RemoveRequest) error {
	if err := d.live(); err != nil {
		return err
	}
	child, ok := d.node.Child(req.Name)
	if !ok {
		return syscall.ENOENT
	}
	switch {
	case req.Dir && !child.IsDir():
		return syscall.ENOTDIR
	case !req.Dir && child.IsDir():
		return syscall.EISDIR
	case req.Dir && child.Len() > 0:
		return syscall.ENOTEMPTY
	}

	path := util.JoinPath(d.path, req.Name)
	removed, err := d.fs.session.Remove(path, child.IsDir())
	if err != nil {
		return syscall.EINVAL
	}
	if !removed {
		return syscall.ENOENT
	}

	d.fs.logger.Debug("remove", zap.String("path", path), zap.Bool("dir", req.Dir))
	return nil
}

// File is an empty file node.
type File struct {
	fs   *FS
	node *namespace.Node
	path string
}

// Attr returns file attributes
func (f *File) Attr(ctx context.Context, a *fuse.Attr) error {
	a.Inode = f.node.Inode()
	a.Mode = 0o644
	a.Nlink = 1
	a.Size = 0
	a.Mtime = f.node.LastTouchedAt()
	a.Atime = a.Mtime
	a.Ctime = f.node.CreatedAt()
	a.Uid = f.fs.uid
	a.Gid = f.fs.gid
	return nil
}

// ReadAll returns the file content, which is always empty.
func (f *File) ReadAll(ctx context.Context) ([]byte, error) {
	return []byte{}, nil
}

// Setattr handles touch (mtime updates) and truncation to zero. Any other
// size is refused since content is not stored.
func (f *File) Setattr(ctx context.Context, req *fuse.SetattrRequest, resp *fuse.SetattrResponse) error {
	if req.Valid.Size() && req.Size != 0 {
		return syscall.EPERM
	}
	if req.Valid.Mtime() || req.Valid.Atime() || req.Valid.MtimeNow() || req.Valid.AtimeNow() {
		f.node.Touch()
	}
	return f.Attr(ctx, &resp.Attr)
}
