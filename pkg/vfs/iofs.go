package vfs

import (
	"io"
	"io/fs"
	"sort"
	"strings"
	"time"

	"github.com/orcnighte/terminal-system/pkg/errors"
)

// AsReadOnlyFS returns a read-only fs.FS view of the tree. Names follow
// the io/fs convention: forward slashes, no leading slash, "." for the
// root. Resolution always starts at the root, so the view is independent
// of the tree's current directory. The view is live; mutations through
// the Tree are visible to subsequent fs calls.
func AsReadOnlyFS(t *Tree) fs.FS {
	return &fsAdapter{t: t}
}

type fsAdapter struct {
	t *Tree
}

func (a *fsAdapter) lookup(op, name string) (*Node, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: op, Path: name, Err: fs.ErrInvalid}
	}
	if name == "." {
		return a.t.root, nil
	}
	node, err := Resolve(name, a.t.root, a.t.root)
	if err != nil {
		pe := &fs.PathError{Op: op, Path: name, Err: fs.ErrNotExist}
		if !errors.IsErrorCode(err, errors.ErrNotFound) {
			pe.Err = fs.ErrInvalid
		}
		return nil, pe
	}
	return node, nil
}

// Open opens the named file or directory.
func (a *fsAdapter) Open(name string) (fs.File, error) {
	node, err := a.lookup("open", name)
	if err != nil {
		return nil, err
	}
	if node.IsDir() {
		return &dirHandle{node: node}, nil
	}
	return &fileHandle{node: node, r: strings.NewReader(node.content)}, nil
}

// ReadFile implements fs.ReadFileFS, skipping the default read loop.
func (a *fsAdapter) ReadFile(name string) ([]byte, error) {
	node, err := a.lookup("readfile", name)
	if err != nil {
		return nil, err
	}
	if node.IsDir() {
		return nil, &fs.PathError{Op: "readfile", Path: name, Err: fs.ErrInvalid}
	}
	return []byte(node.content), nil
}

// ReadDir implements fs.ReadDirFS.
func (a *fsAdapter) ReadDir(name string) ([]fs.DirEntry, error) {
	node, err := a.lookup("readdir", name)
	if err != nil {
		return nil, err
	}
	if !node.IsDir() {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: fs.ErrInvalid}
	}
	return dirEntries(node), nil
}

// fileHandle implements fs.File over a file node's content snapshot.
type fileHandle struct {
	node *Node
	r    *strings.Reader
}

func (f *fileHandle) Stat() (fs.FileInfo, error) { return nodeInfo{f.node}, nil }
func (f *fileHandle) Read(p []byte) (int, error) { return f.r.Read(p) }
func (f *fileHandle) Close() error               { return nil }

// dirHandle implements fs.ReadDirFile. When n > 0, ReadDir returns at
// most n entries per call and continues from where the last call stopped,
// per the io/fs contract.
type dirHandle struct {
	node    *Node
	cached  []fs.DirEntry
	nextIdx int
}

func (d *dirHandle) Stat() (fs.FileInfo, error) { return nodeInfo{d.node}, nil }
func (d *dirHandle) Read([]byte) (int, error) {
	return 0, &fs.PathError{Op: "read", Path: d.node.Name(), Err: fs.ErrInvalid}
}
func (d *dirHandle) Close() error { return nil }

func (d *dirHandle) ReadDir(n int) ([]fs.DirEntry, error) {
	if d.cached == nil {
		d.cached = dirEntries(d.node)
	}
	if n <= 0 {
		out := d.cached[d.nextIdx:]
		d.nextIdx = len(d.cached)
		return out, nil
	}
	if d.nextIdx >= len(d.cached) {
		return nil, io.EOF
	}
	end := d.nextIdx + n
	if end > len(d.cached) {
		end = len(d.cached)
	}
	out := d.cached[d.nextIdx:end]
	d.nextIdx = end
	return out, nil
}

func dirEntries(node *Node) []fs.DirEntry {
	names := make([]string, 0, len(node.children))
	for name := range node.children {
		names = append(names, name)
	}
	// sorted order is part of the io/fs ReadDir contract
	sort.Strings(names)
	entries := make([]fs.DirEntry, 0, len(names))
	for _, name := range names {
		entries = append(entries, nodeInfo{node.children[name]})
	}
	return entries
}

// nodeInfo implements both fs.FileInfo and fs.DirEntry for a node. The
// simulated tree has no permissions or timestamps, so Mode reports a
// fixed read-only bit pattern and ModTime the zero time.
type nodeInfo struct {
	node *Node
}

func (i nodeInfo) Name() string { return i.node.Name() }
func (i nodeInfo) Size() int64  { return int64(len(i.node.content)) }
func (i nodeInfo) Mode() fs.FileMode {
	if i.node.IsDir() {
		return fs.ModeDir | 0555
	}
	return 0444
}
func (i nodeInfo) ModTime() time.Time         { return time.Time{} }
func (i nodeInfo) IsDir() bool                { return i.node.IsDir() }
func (i nodeInfo) Sys() interface{}           { return nil }
func (i nodeInfo) Type() fs.FileMode          { return i.Mode().Type() }
func (i nodeInfo) Info() (fs.FileInfo, error) { return i, nil }
