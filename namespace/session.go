package namespace

import (
	"fmt"
	"time"

	"github.com/dendrascience/memns/util"
	"go.uber.org/zap"
)

// Session is one client's view of a Namespace: an id and a working directory.
// A session is driven by one caller at a time; different sessions may be used
// concurrently against the same namespace.
//
// Only argument errors are returned as errors. Everything else is reported
// through the boolean or string result.
type Session struct {
	id        string
	createdAt time.Time
	ns        *Namespace
	cwd       *Cursor
}

func (s *Session) ID() string                { return s.id }
func (s *Session) CreatedAt() time.Time      { return s.createdAt }
func (s *Session) Namespace() *Namespace     { return s.ns }
func (s *Session) WorkingDirectory() *Cursor { return s.cwd.Clone() }

func (s *Session) log() *zap.Logger {
	return s.ns.logger.With(zap.String("session", s.id))
}

func invalid(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
}

// List returns the names in the working directory, sorted. If another
// session removed the working directory the listing is empty.
func (s *Session) List() []string {
	if s.hasBeenRemoved() {
		return []string{}
	}
	return s.cwd.Lowest().ChildNames()
}

// MakeDirectory creates path and any missing parents. It reports false when a
// segment is taken by a file. The working directory does not change.
func (s *Session) MakeDirectory(path string) (bool, error) {
	if err := util.CheckDirPath(path); err != nil {
		return false, invalid(err)
	}
	if _, err := s.ns.Resolve(path, s.cwd, true); err != nil {
		s.log().Debug("mkdir failed", zap.String("path", path), zap.Error(err))
		return false, nil
	}
	return true, nil
}

// Touch creates an empty file at path, creating missing parent directories,
// and returns its absolute path. An existing file only has its timestamp
// refreshed. If a directory already holds the name, Touch returns "".
func (s *Session) Touch(path string) (string, error) {
	if err := util.CheckFilePath(path); err != nil {
		return "", invalid(err)
	}
	name := util.FileName(path)

	parent, err := s.ns.Resolve(util.ParentDir(path), s.cwd, true)
	if err != nil {
		s.log().Debug("touch failed", zap.String("path", path), zap.Error(err))
		return "", nil
	}

	dir := parent.Lowest()
	file, created := dir.childOrCreate(name, KindFile, s.ns.inodes.Next)
	if file.IsDir() {
		s.log().Debug("touch failed", zap.String("path", path), zap.Error(ErrNotDirectory))
		return "", nil
	}
	if !created {
		file.Touch()
	}
	return util.JoinPath(parent.String(), name), nil
}

// ChangeDirectory moves the working directory to path and returns the new
// absolute path. If path can not be resolved the working directory stays put
// and its current path is returned.
func (s *Session) ChangeDirectory(path string) (string, error) {
	if _, err := s.Chdir(path); err != nil {
		return "", err
	}
	return s.cwd.String(), nil
}

// Chdir moves the working directory to path and reports whether path
// resolved. On false the working directory is unchanged.
func (s *Session) Chdir(path string) (bool, error) {
	if err := util.CheckDirPath(path); err != nil {
		return false, invalid(err)
	}
	target, err := s.ns.Resolve(path, s.cwd, false)
	if err != nil {
		s.log().Debug("cd failed", zap.String("path", path), zap.Error(err))
		return false, nil
	}
	s.cwd = target
	return true, nil
}

// Pwd returns the absolute path of the working directory.
func (s *Session) Pwd() string {
	return s.cwd.String()
}

// Remove deletes the entry at path. Directories need recursive set, empty or
// not. The root itself is never removed: with recursive set, removing "/"
// empties it; without, the call reports false.
func (s *Session) Remove(path string, recursive bool) (bool, error) {
	if err := util.CheckDirPath(path); err != nil {
		return false, invalid(err)
	}
	if util.IsRoot(path) {
		if !recursive {
			return false, nil
		}
		s.ns.ClearAll()
		return true, nil
	}
	if err := util.CheckLeaf(path); err != nil {
		return false, invalid(err)
	}

	name := util.FileName(path)
	parent, err := s.ns.Resolve(util.ParentDir(path), s.cwd, false)
	if err != nil {
		s.log().Debug("rm failed", zap.String("path", path), zap.Error(err))
		return false, nil
	}

	dir := parent.Lowest()
	target, ok := dir.Child(name)
	if !ok {
		s.log().Debug("rm failed", zap.String("path", path), zap.Error(ErrNotFound))
		return false, nil
	}
	if target.IsDir() && !recursive {
		s.log().Debug("rm refused directory without recursive flag", zap.String("path", path))
		return false, nil
	}
	return dir.removeChildNode(name, target), nil
}

// hasBeenRemoved re-resolves the working directory from the root. It is gone
// when the walk fails or lands on a different node (removed and recreated).
func (s *Session) hasBeenRemoved() bool {
	fresh, err := s.ns.Resolve(s.cwd.String(), nil, false)
	if err != nil {
		s.log().Debug("working directory removed", zap.String("path", s.cwd.String()), zap.Error(err))
		return true
	}
	return fresh.Lowest() != s.cwd.Lowest()
}
