package vfs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "directory", KindDirectory.String())
	assert.Equal(t, "file", KindFile.String())
}

func TestNodeName(t *testing.T) {
	tr := New()
	assert.Equal(t, "/", tr.root.Name())

	d := newDirectory("home", tr.root)
	assert.Equal(t, "home", d.Name())
}

func TestValidName(t *testing.T) {
	for _, name := range []string{"a", "c.txt", "with space"} {
		assert.True(t, validName(name), "%q should be valid", name)
	}
	for _, name := range []string{"", ".", "..", "a/b"} {
		assert.False(t, validName(name), "%q should be invalid", name)
	}
}
