package vfs

import (
	"strings"

	"github.com/orcnighte/terminal-system/pkg/errors"
)

// Resolve interprets path against cur for relative paths or root for
// absolute ones and returns the final node. The result may be a file or
// a directory; callers decide whether that is acceptable.
func Resolve(path string, cur, root *Node) (*Node, error) {
	start := cur
	if strings.HasPrefix(path, "/") {
		start = root
	}
	return walk(start, splitPath(path))
}

// ResolveParent resolves all but the last segment of path and returns the
// containing directory plus the final segment's literal name. Used by
// create operations that need "the directory to create in" and "the name
// to create" without requiring the target to exist.
func ResolveParent(path string, cur, root *Node) (*Node, string, error) {
	segs := splitPath(path)
	if len(segs) == 0 {
		return nil, "", errors.New(errors.ErrInvalidInput, "empty path")
	}
	name := segs[len(segs)-1]
	if !validName(name) {
		return nil, "", errors.Newf(errors.ErrInvalidInput, "invalid name %q", name)
	}
	start := cur
	if strings.HasPrefix(path, "/") {
		start = root
	}
	parent, err := walk(start, segs[:len(segs)-1])
	if err != nil {
		return nil, "", err
	}
	if !parent.IsDir() {
		return nil, "", errors.Newf(errors.ErrNotADirectory, "%s is not a directory", parent.Name())
	}
	return parent, name, nil
}

// splitPath breaks path into segments, dropping the empty ones produced
// by leading, trailing or doubled slashes.
func splitPath(path string) []string {
	parts := strings.Split(path, "/")
	segs := parts[:0]
	for _, p := range parts {
		if p != "" {
			segs = append(segs, p)
		}
	}
	return segs
}

// walk applies segments one at a time starting from node. "." stays put,
// ".." moves to the parent and clamps at the root.
func walk(node *Node, segs []string) (*Node, error) {
	for _, seg := range segs {
		if !node.IsDir() {
			return nil, errors.Newf(errors.ErrNotADirectory, "%s is not a directory", node.Name()).
				WithDetail("segment", node.Name())
		}
		switch seg {
		case ".":
			// no-op
		case "..":
			if node.parent != nil {
				node = node.parent
			}
		default:
			next := node.child(seg)
			if next == nil {
				return nil, errors.Newf(errors.ErrNotFound, "%s does not exist", seg).
					WithDetail("segment", seg)
			}
			node = next
		}
	}
	return node, nil
}
