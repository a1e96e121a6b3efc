package testutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// MemoryFS implements types.FS with in-memory storage. Hard links share
// the underlying node, so mutations through one name are visible through
// the other, mirroring real hard-link semantics.
type MemoryFS struct {
	mu    sync.RWMutex
	nodes map[string]*fileNode

	// Error injection: operations touching the path fail with the
	// injected error, optionally limited to specific ops.
	errorPaths map[string]injectedError
}

type injectedError struct {
	err error
	ops map[string]bool // nil means every op
}

// fileNode represents a file, directory or symlink in memory
type fileNode struct {
	mode     os.FileMode
	modTime  time.Time
	content  []byte
	isDir    bool
	linkDest string
}

// NewMemoryFS creates a new in-memory filesystem with a root directory.
func NewMemoryFS() *MemoryFS {
	return &MemoryFS{
		nodes: map[string]*fileNode{
			"/": {mode: 0755 | os.ModeDir, modTime: time.Now(), isDir: true},
		},
		errorPaths: make(map[string]injectedError),
	}
}

// normalize converts a path to cleaned absolute form. Relative paths are
// anchored at the root, which stands in for the process working directory.
func (m *MemoryFS) normalize(path string) string {
	if !filepath.IsAbs(path) {
		path = "/" + path
	}
	return filepath.Clean(path)
}

func (m *MemoryFS) checkInjected(op, path string) error {
	inj, ok := m.errorPaths[m.normalize(path)]
	if !ok {
		return nil
	}
	if inj.ops == nil || inj.ops[op] {
		return inj.err
	}
	return nil
}

// InjectError makes every operation on path fail with err.
func (m *MemoryFS) InjectError(path string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorPaths[m.normalize(path)] = injectedError{err: err}
}

// InjectErrorOp makes only the named operations on path fail with err.
// Op names match the types.FS method names in lower case ("remove",
// "rename", "link", "symlink", "lstat", "stat", "readlink").
func (m *MemoryFS) InjectErrorOp(path string, err error, ops ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	set := make(map[string]bool, len(ops))
	for _, op := range ops {
		set[op] = true
	}
	m.errorPaths[m.normalize(path)] = injectedError{err: err, ops: set}
}

// WriteFile creates or replaces a regular file. Parent directories must
// already exist (use MkdirAll).
func (m *MemoryFS) WriteFile(path string, data []byte, perm os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	path = m.normalize(path)
	if err := m.requireParent(path); err != nil {
		return err
	}
	if node, ok := m.nodes[path]; ok {
		if node.isDir {
			return &fs.PathError{Op: "open", Path: path, Err: fs.ErrInvalid}
		}
		node.content = append(node.content[:0], data...)
		node.modTime = time.Now()
		return nil
	}
	m.nodes[path] = &fileNode{mode: perm, modTime: time.Now(), content: append([]byte(nil), data...)}
	return nil
}

// ReadFile returns the content of a regular file, following symlinks.
func (m *MemoryFS) ReadFile(path string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	node, err := m.resolve("stat", path, 0)
	if err != nil {
		return nil, err
	}
	if node.isDir {
		return nil, &fs.PathError{Op: "read", Path: path, Err: fs.ErrInvalid}
	}
	return append([]byte(nil), node.content...), nil
}

// MkdirAll creates a directory and all missing parents.
func (m *MemoryFS) MkdirAll(path string, perm os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	path = m.normalize(path)
	parts := strings.Split(path, "/")
	cur := "/"
	for _, part := range parts {
		if part == "" {
			continue
		}
		cur = filepath.Join(cur, part)
		if node, ok := m.nodes[cur]; ok {
			if !node.isDir {
				return &fs.PathError{Op: "mkdir", Path: cur, Err: fs.ErrExist}
			}
			continue
		}
		m.nodes[cur] = &fileNode{mode: perm | os.ModeDir, modTime: time.Now(), isDir: true}
	}
	return nil
}

func (m *MemoryFS) Stat(name string) (fs.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	node, err := m.resolve("stat", name, 0)
	if err != nil {
		return nil, err
	}
	return m.info(name, node), nil
}

func (m *MemoryFS) Lstat(name string) (fs.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if err := m.checkInjected("lstat", name); err != nil {
		return nil, err
	}
	node, ok := m.nodes[m.normalize(name)]
	if !ok {
		return nil, &fs.PathError{Op: "lstat", Path: name, Err: fs.ErrNotExist}
	}
	return m.info(name, node), nil
}

func (m *MemoryFS) Symlink(oldname, newname string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.checkInjected("symlink", newname); err != nil {
		return err
	}
	newname = m.normalize(newname)
	if err := m.requireParent(newname); err != nil {
		return err
	}
	if _, ok := m.nodes[newname]; ok {
		return &fs.PathError{Op: "symlink", Path: newname, Err: fs.ErrExist}
	}
	// The link target is stored verbatim; it may dangle.
	m.nodes[newname] = &fileNode{mode: 0777 | os.ModeSymlink, modTime: time.Now(), linkDest: oldname}
	return nil
}

func (m *MemoryFS) Link(oldname, newname string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.checkInjected("link", newname); err != nil {
		return err
	}
	if err := m.checkInjected("link", oldname); err != nil {
		return err
	}
	src, ok := m.nodes[m.normalize(oldname)]
	if !ok {
		return &fs.PathError{Op: "link", Path: oldname, Err: fs.ErrNotExist}
	}
	if src.isDir {
		return &fs.PathError{Op: "link", Path: oldname, Err: fs.ErrPermission}
	}
	newname = m.normalize(newname)
	if err := m.requireParent(newname); err != nil {
		return err
	}
	if _, ok := m.nodes[newname]; ok {
		return &fs.PathError{Op: "link", Path: newname, Err: fs.ErrExist}
	}
	// Hard links share the node.
	m.nodes[newname] = src
	return nil
}

func (m *MemoryFS) Readlink(name string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if err := m.checkInjected("readlink", name); err != nil {
		return "", err
	}
	node, ok := m.nodes[m.normalize(name)]
	if !ok {
		return "", &fs.PathError{Op: "readlink", Path: name, Err: fs.ErrNotExist}
	}
	if node.mode&os.ModeSymlink == 0 {
		return "", &fs.PathError{Op: "readlink", Path: name, Err: fs.ErrInvalid}
	}
	return node.linkDest, nil
}

func (m *MemoryFS) Rename(oldpath, newpath string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.checkInjected("rename", oldpath); err != nil {
		return err
	}
	if err := m.checkInjected("rename", newpath); err != nil {
		return err
	}
	oldpath = m.normalize(oldpath)
	newpath = m.normalize(newpath)
	node, ok := m.nodes[oldpath]
	if !ok {
		return &fs.PathError{Op: "rename", Path: oldpath, Err: fs.ErrNotExist}
	}
	if err := m.requireParent(newpath); err != nil {
		return err
	}
	delete(m.nodes, oldpath)
	m.nodes[newpath] = node
	if node.isDir {
		prefix := oldpath + "/"
		for p, n := range m.nodes {
			if strings.HasPrefix(p, prefix) {
				delete(m.nodes, p)
				m.nodes[filepath.Join(newpath, strings.TrimPrefix(p, prefix))] = n
			}
		}
	}
	return nil
}

func (m *MemoryFS) Remove(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.checkInjected("remove", name); err != nil {
		return err
	}
	path := m.normalize(name)
	node, ok := m.nodes[path]
	if !ok {
		return &fs.PathError{Op: "remove", Path: name, Err: fs.ErrNotExist}
	}
	if node.isDir {
		prefix := path + "/"
		for p := range m.nodes {
			if strings.HasPrefix(p, prefix) {
				return &fs.PathError{Op: "remove", Path: name, Err: fs.ErrInvalid}
			}
		}
	}
	delete(m.nodes, path)
	return nil
}

// Exists reports whether a directory entry is present at path, without
// following symlinks.
func (m *MemoryFS) Exists(path string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.nodes[m.normalize(path)]
	return ok
}

// SameNode reports whether two paths are hard links to the same file.
func (m *MemoryFS) SameNode(a, b string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	na, oka := m.nodes[m.normalize(a)]
	nb, okb := m.nodes[m.normalize(b)]
	return oka && okb && na == nb
}

// resolve follows symlink chains. Callers must hold the lock.
func (m *MemoryFS) resolve(op, name string, depth int) (*fileNode, error) {
	if err := m.checkInjected(op, name); err != nil {
		return nil, err
	}
	if depth > 8 {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrInvalid}
	}
	node, ok := m.nodes[m.normalize(name)]
	if !ok {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
	}
	if node.mode&os.ModeSymlink != 0 {
		dest := node.linkDest
		if !filepath.IsAbs(dest) {
			dest = filepath.Join(filepath.Dir(m.normalize(name)), dest)
		}
		return m.resolve(op, dest, depth+1)
	}
	return node, nil
}

func (m *MemoryFS) requireParent(path string) error {
	parent := filepath.Dir(path)
	node, ok := m.nodes[parent]
	if !ok || !node.isDir {
		return &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return nil
}

func (m *MemoryFS) info(name string, node *fileNode) fs.FileInfo {
	return &fileInfo{
		name:    filepath.Base(m.normalize(name)),
		size:    int64(len(node.content)),
		mode:    node.mode,
		modTime: node.modTime,
		isDir:   node.isDir,
	}
}

// fileInfo implements fs.FileInfo for MemoryFS entries
type fileInfo struct {
	name    string
	size    int64
	mode    os.FileMode
	modTime time.Time
	isDir   bool
}

func (fi *fileInfo) Name() string       { return fi.name }
func (fi *fileInfo) Size() int64        { return fi.size }
func (fi *fileInfo) Mode() os.FileMode  { return fi.mode }
func (fi *fileInfo) ModTime() time.Time { return fi.modTime }
func (fi *fileInfo) IsDir() bool        { return fi.isDir }
func (fi *fileInfo) Sys() interface{}   { return nil }
