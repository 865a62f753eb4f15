package vfs

import (
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/orcnighte/terminal-system/pkg/errors"
	"github.com/orcnighte/terminal-system/pkg/logging"
)

// Entry is one row of a directory listing.
type Entry struct {
	Name string
	Kind Kind
}

// Tree owns the root of a simulated file system and tracks the current
// directory against which relative paths resolve. Every operation is
// atomic: state changes only after the whole path has resolved.
type Tree struct {
	root *Node
	cwd  *Node
	log  zerolog.Logger
}

// New creates a tree holding a single empty root directory, which is also
// the initial current directory.
func New() *Tree {
	root := newDirectory("", nil)
	return &Tree{
		root: root,
		cwd:  root,
		log:  logging.GetLogger("vfs"),
	}
}

// List returns the entries of the directory at path, sorted by name.
// An empty path lists the current directory.
func (t *Tree) List(path string) ([]Entry, error) {
	node := t.cwd
	if path != "" {
		var err error
		node, err = Resolve(path, t.cwd, t.root)
		if err != nil {
			return nil, err
		}
	}
	if !node.IsDir() {
		return nil, errors.Newf(errors.ErrNotADirectory, "%s is not a directory", node.Name())
	}
	entries := make([]Entry, 0, len(node.children))
	for _, c := range node.children {
		entries = append(entries, Entry{Name: c.name, Kind: c.kind})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

// ChangeDir moves the current directory to path. On failure the current
// directory is untouched.
func (t *Tree) ChangeDir(path string) error {
	node, err := Resolve(path, t.cwd, t.root)
	if err != nil {
		return err
	}
	if !node.IsDir() {
		return errors.Newf(errors.ErrNotADirectory, "%s is not a directory", node.Name())
	}
	t.cwd = node
	t.log.Debug().Str("path", t.CurrentPath()).Msg("Changed directory")
	return nil
}

// Mkdir creates an empty directory at path. The parent chain must already
// exist; the final name must be free.
func (t *Tree) Mkdir(path string) error {
	parent, name, err := ResolveParent(path, t.cwd, t.root)
	if err != nil {
		return err
	}
	if parent.child(name) != nil {
		return errors.Newf(errors.ErrAlreadyExists, "%s already exists", name)
	}
	parent.attach(newDirectory(name, parent))
	t.log.Debug().Str("name", name).Msg("Created directory")
	return nil
}

// Touch creates an empty file at path. Touching an existing file is a
// no-op that preserves content; touching an existing directory fails.
func (t *Tree) Touch(path string) error {
	parent, name, err := ResolveParent(path, t.cwd, t.root)
	if err != nil {
		return err
	}
	if existing := parent.child(name); existing != nil {
		if existing.IsDir() {
			return errors.Newf(errors.ErrAlreadyExists, "%s already exists as a directory", name)
		}
		return nil
	}
	parent.attach(newFile(name, parent))
	t.log.Debug().Str("name", name).Msg("Created file")
	return nil
}

// ReadFile returns the content of the file at path.
func (t *Tree) ReadFile(path string) (string, error) {
	node, err := Resolve(path, t.cwd, t.root)
	if err != nil {
		return "", err
	}
	if node.IsDir() {
		return "", errors.Newf(errors.ErrIsADirectory, "%s is a directory", node.Name())
	}
	return node.content, nil
}

// WriteFile replaces the content of an existing file at path.
func (t *Tree) WriteFile(path, content string) error {
	node, err := Resolve(path, t.cwd, t.root)
	if err != nil {
		return err
	}
	if node.IsDir() {
		return errors.Newf(errors.ErrIsADirectory, "%s is a directory", node.Name())
	}
	node.content = content
	return nil
}

// Append adds text as a new line at the end of the file at path.
func (t *Tree) Append(path, text string) error {
	node, err := Resolve(path, t.cwd, t.root)
	if err != nil {
		return err
	}
	if node.IsDir() {
		return errors.Newf(errors.ErrIsADirectory, "%s is a directory", node.Name())
	}
	if node.content == "" {
		node.content = text
	} else {
		node.content += "\n" + text
	}
	return nil
}

// Remove deletes the node at path together with its subtree. The root,
// the current directory and any ancestor of the current directory are
// refused so the current-directory reference can never dangle.
func (t *Tree) Remove(path string) error {
	node, err := Resolve(path, t.cwd, t.root)
	if err != nil {
		return err
	}
	if node.parent == nil {
		return errors.New(errors.ErrRootForbidden, "cannot remove the root directory")
	}
	if node.isAncestorOf(t.cwd) {
		return errors.Newf(errors.ErrDirectoryBusy, "%s contains the current directory", node.Name())
	}
	node.parent.detach(node)
	t.log.Debug().Str("name", node.name).Msg("Removed node")
	return nil
}

// Rename gives the node at path a new name within its directory.
func (t *Tree) Rename(path, newName string) error {
	node, err := Resolve(path, t.cwd, t.root)
	if err != nil {
		return err
	}
	if node.parent == nil {
		return errors.New(errors.ErrRootForbidden, "cannot rename the root directory")
	}
	if !validName(newName) {
		return errors.Newf(errors.ErrInvalidInput, "invalid name %q", newName)
	}
	if newName == node.name {
		return nil
	}
	if node.parent.child(newName) != nil {
		return errors.Newf(errors.ErrAlreadyExists, "%s already exists", newName)
	}
	parent := node.parent
	delete(parent.children, node.name)
	node.name = newName
	parent.children[newName] = node
	return nil
}

// Copy deep-copies the node at src to dst. When dst names an existing
// directory the copy keeps the source name and lands inside it; otherwise
// dst is split into an existing parent directory plus the new name.
func (t *Tree) Copy(src, dst string) error {
	srcNode, err := Resolve(src, t.cwd, t.root)
	if err != nil {
		return err
	}
	if srcNode.parent == nil {
		// The root's internal name is empty; cloning it would attach an
		// entry no path can ever reach.
		return errors.New(errors.ErrRootForbidden, "cannot copy the root directory")
	}
	parent, name, err := t.destination(dst, srcNode.name)
	if err != nil {
		return err
	}
	if parent.child(name) != nil {
		return errors.Newf(errors.ErrAlreadyExists, "%s already exists", name)
	}
	cp := srcNode.clone()
	cp.name = name
	parent.attach(cp)
	t.log.Debug().Str("src", srcNode.name).Str("dst", name).Msg("Copied node")
	return nil
}

// Move relocates the node at src to dst using the same destination rules
// as Copy. The root cannot be moved, and a directory cannot be moved into
// itself or a descendant (that would cut the subtree loose).
func (t *Tree) Move(src, dst string) error {
	srcNode, err := Resolve(src, t.cwd, t.root)
	if err != nil {
		return err
	}
	if srcNode.parent == nil {
		return errors.New(errors.ErrRootForbidden, "cannot move the root directory")
	}
	parent, name, err := t.destination(dst, srcNode.name)
	if err != nil {
		return err
	}
	if srcNode.isAncestorOf(parent) {
		return errors.Newf(errors.ErrInvalidInput, "cannot move %s into itself", srcNode.Name())
	}
	if existing := parent.child(name); existing != nil && existing != srcNode {
		return errors.Newf(errors.ErrAlreadyExists, "%s already exists", name)
	}
	srcNode.parent.detach(srcNode)
	srcNode.name = name
	parent.attach(srcNode)
	t.log.Debug().Str("name", name).Msg("Moved node")
	return nil
}

// destination resolves dst for Copy and Move: an existing directory keeps
// fallback as the entry name, a missing final segment becomes the name.
func (t *Tree) destination(dst, fallback string) (*Node, string, error) {
	node, err := Resolve(dst, t.cwd, t.root)
	switch {
	case err == nil:
		if !node.IsDir() {
			return nil, "", errors.Newf(errors.ErrNotADirectory, "%s is not a directory", node.Name())
		}
		return node, fallback, nil
	case errors.IsErrorCode(err, errors.ErrNotFound):
		return ResolveParent(dst, t.cwd, t.root)
	default:
		return nil, "", err
	}
}

// CurrentPath reconstructs the absolute path of the current directory by
// walking parent back-references, returning "/" for the root itself.
func (t *Tree) CurrentPath() string {
	return t.AbsPath(t.cwd)
}

// AbsPath returns the absolute slash-joined path of node.
func (t *Tree) AbsPath(node *Node) string {
	if node.parent == nil {
		return "/"
	}
	var parts []string
	for cur := node; cur.parent != nil; cur = cur.parent {
		parts = append(parts, cur.name)
	}
	var b strings.Builder
	for i := len(parts) - 1; i >= 0; i-- {
		b.WriteByte('/')
		b.WriteString(parts[i])
	}
	return b.String()
}

// Stat resolves path and returns the node, for callers that only need
// existence and kind.
func (t *Tree) Stat(path string) (*Node, error) {
	return Resolve(path, t.cwd, t.root)
}
