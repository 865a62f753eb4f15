// Package vfs implements an in-memory simulated file system.
//
// The tree is a single-owner hierarchy of Node values, each either a
// directory or a file. Paths use forward slashes; a leading '/' resolves
// from the root, anything else from the current directory held by Tree.
// Empty segments are skipped, "." is a no-op and ".." at the root stays
// at the root, matching Unix top-of-tree behavior.
//
// Nothing here touches real storage. The whole tree is process-local and
// vanishes when the owning Tree is released. For read-only code paths,
// AsReadOnlyFS returns an io/fs.FS view of a Tree so fs.ReadFile,
// fs.WalkDir and friends work against the simulated hierarchy.
package vfs
