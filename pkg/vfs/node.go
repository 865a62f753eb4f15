package vfs

import "strings"

// Kind is the variant tag of a Node.
type Kind uint8

const (
	KindDirectory Kind = iota
	KindFile
)

// String returns a short human name for the kind.
func (k Kind) String() string {
	if k == KindDirectory {
		return "directory"
	}
	return "file"
}

// Node is one entry in the simulated tree. The kind field discriminates
// the two variants: directories carry a children map, files carry content.
// The parent pointer is a non-owning back-reference and is nil only at
// the root.
type Node struct {
	name     string
	kind     Kind
	parent   *Node
	children map[string]*Node
	content  string
}

func newDirectory(name string, parent *Node) *Node {
	return &Node{
		name:     name,
		kind:     KindDirectory,
		parent:   parent,
		children: make(map[string]*Node),
	}
}

func newFile(name string, parent *Node) *Node {
	return &Node{
		name:   name,
		kind:   KindFile,
		parent: parent,
	}
}

// Name returns the node's name. The root reports "/".
func (n *Node) Name() string {
	if n.parent == nil {
		return "/"
	}
	return n.name
}

// Kind returns the variant tag.
func (n *Node) Kind() Kind { return n.kind }

// IsDir reports whether the node is a directory.
func (n *Node) IsDir() bool { return n.kind == KindDirectory }

// Parent returns the owning directory, or nil for the root.
func (n *Node) Parent() *Node { return n.parent }

// Content returns a file's content. Directories always return "".
func (n *Node) Content() string { return n.content }

func (n *Node) child(name string) *Node {
	if n.children == nil {
		return nil
	}
	return n.children[name]
}

// attach inserts c under n and fixes c's back-reference. The caller has
// already checked for sibling collisions.
func (n *Node) attach(c *Node) {
	c.parent = n
	n.children[c.name] = c
}

// detach removes c from n. The subtree under c stays intact so it can be
// re-attached elsewhere (mv) or dropped (rm).
func (n *Node) detach(c *Node) {
	delete(n.children, c.name)
	c.parent = nil
}

// clone deep-copies the subtree rooted at n. The copy's parent is left
// nil; attach sets it.
func (n *Node) clone() *Node {
	cp := &Node{name: n.name, kind: n.kind, content: n.content}
	if n.IsDir() {
		cp.children = make(map[string]*Node, len(n.children))
		for name, child := range n.children {
			cc := child.clone()
			cc.parent = cp
			cp.children[name] = cc
		}
	}
	return cp
}

// isAncestorOf reports whether n is other or an ancestor of other.
func (n *Node) isAncestorOf(other *Node) bool {
	for cur := other; cur != nil; cur = cur.parent {
		if cur == n {
			return true
		}
	}
	return false
}

// validName reports whether name can be used for a single tree entry.
func validName(name string) bool {
	return name != "" && name != "." && name != ".." && !strings.Contains(name, "/")
}
