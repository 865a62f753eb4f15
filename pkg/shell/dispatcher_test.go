package shell

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orcnighte/terminal-system/pkg/config"
	"github.com/orcnighte/terminal-system/pkg/errors"
	"github.com/orcnighte/terminal-system/pkg/vfs"
)

func newDispatcher(t *testing.T) *Dispatcher {
	t.Helper()
	return NewDispatcher(vfs.New(), nil)
}

// run feeds lines to the dispatcher and returns the last result.
func run(t *testing.T, d *Dispatcher, lines ...string) Result {
	t.Helper()
	var res Result
	for _, line := range lines {
		res = d.Dispatch(line)
	}
	return res
}

func TestDispatchScenario(t *testing.T) {
	d := newDispatcher(t)

	for _, line := range []string{"mkdir a", "mkdir a/b", "cd a/b", "touch c.txt"} {
		res := d.Dispatch(line)
		assert.False(t, res.Failed, "line %q failed: %v", line, res.Lines)
		assert.Empty(t, res.Lines, "line %q should be silent", line)
	}

	assert.Equal(t, []string{"/a/b"}, d.Dispatch("pwd").Lines)
	assert.Equal(t, []string{"c.txt"}, d.Dispatch("ls").Lines)

	// cat of a freshly touched file prints nothing.
	res := d.Dispatch("cat c.txt")
	assert.False(t, res.Failed)
	assert.Empty(t, res.Lines)

	d.Dispatch("cd ..")
	assert.Equal(t, []string{"b"}, d.Dispatch("ls").Lines)
}

func TestDispatchErrorRendering(t *testing.T) {
	d := newDispatcher(t)
	run(t, d, "mkdir a", "touch a/c.txt")

	tests := []struct {
		name string
		line string
		want string
	}{
		{"cat missing", "cat /nonexistent", "cat: /nonexistent: No such file or directory"},
		{"ls into a file", "ls /a/c.txt", "ls: /a/c.txt: Not a directory"},
		{"cat a directory", "cat /a", "cat: /a: Is a directory"},
		{"mkdir collision", "mkdir a", "mkdir: a: File exists"},
		{"touch over a directory", "touch a", "touch: a: File exists"},
		{"rm root", "rm /", "rm: /: Operation not permitted"},
		{"cd missing", "cd /nope", "cd: /nope: No such file or directory"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := d.Dispatch(tt.line)
			assert.True(t, res.Failed)
			assert.Equal(t, []string{tt.want}, res.Lines)
		})
	}
}

func TestDispatchUsageAndUnknown(t *testing.T) {
	d := newDispatcher(t)

	res := d.Dispatch("mkdir")
	assert.True(t, res.Failed)
	assert.Equal(t, []string{"usage: mkdir <path>"}, res.Lines)

	res = d.Dispatch("pwd extra")
	assert.True(t, res.Failed)
	assert.Equal(t, []string{"usage: pwd"}, res.Lines)

	res = d.Dispatch("frobnicate x")
	assert.True(t, res.Failed)
	assert.Equal(t, []string{"frobnicate: command not found"}, res.Lines)
	assert.False(t, res.Quit, "unknown commands must not end the session")
}

func TestRenderCommandErrors(t *testing.T) {
	usage := errors.Newf(errors.ErrUsage, "wrong argument count for mkdir").
		WithDetail("usage", "mkdir <path>")
	assert.Equal(t, "usage: mkdir <path>", renderError("mkdir", nil, usage))

	unknown := errors.Newf(errors.ErrUnknownCommand, "unknown command %q", "frobnicate")
	assert.Equal(t, "frobnicate: command not found", renderError("frobnicate", []string{"x"}, unknown))
}

func TestDispatchColorizedLs(t *testing.T) {
	// Force a color profile so styles render even without a terminal.
	lipgloss.SetColorProfile(termenv.ANSI)
	t.Cleanup(func() { lipgloss.SetColorProfile(termenv.Ascii) })

	d := newDispatcher(t)
	d.color = true
	run(t, d, "mkdir dir", "touch file.txt")

	lines := d.Dispatch("ls").Lines
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "dir")
	assert.Contains(t, lines[0], "\x1b[", "directory entries should carry the style")
	assert.Equal(t, "file.txt", lines[1], "files stay plain")
}

func TestDispatchExitAndBlankLines(t *testing.T) {
	d := newDispatcher(t)

	res := d.Dispatch("   ")
	assert.Empty(t, res.Lines)
	assert.False(t, res.Quit)

	res = d.Dispatch("exit")
	assert.True(t, res.Quit)
	assert.Empty(t, res.Lines)
}

func TestDispatchWriteAppendCat(t *testing.T) {
	d := newDispatcher(t)
	run(t, d, "touch notes.txt", "write notes.txt first line", "append notes.txt second line")

	res := d.Dispatch("cat notes.txt")
	require.False(t, res.Failed)
	assert.Equal(t, []string{"first line", "second line"}, res.Lines)

	// write with no text clears the file
	run(t, d, "write notes.txt")
	res = d.Dispatch("cat notes.txt")
	assert.Empty(t, res.Lines)
}

func TestDispatchTree(t *testing.T) {
	d := newDispatcher(t)
	run(t, d, "mkdir a", "mkdir a/b", "touch a/b/c.txt", "touch a/top.txt")

	res := d.Dispatch("tree")
	require.False(t, res.Failed, "tree failed: %v", res.Lines)
	assert.Equal(t, []string{
		"/",
		"a/",
		"  b/",
		"    c.txt",
		"  top.txt",
	}, res.Lines)

	res = d.Dispatch("tree a/b")
	require.False(t, res.Failed)
	assert.Equal(t, []string{"/a/b", "c.txt"}, res.Lines)

	res = d.Dispatch("tree a/top.txt")
	assert.True(t, res.Failed)
}

func TestDispatchClassify(t *testing.T) {
	cfg := config.Default()
	cfg.LS.Classify = true
	d := NewDispatcher(vfs.New(), cfg)
	run(t, d, "mkdir dir", "touch file.txt")

	assert.Equal(t, []string{"dir/", "file.txt"}, d.Dispatch("ls").Lines)
}

func TestDispatchHelp(t *testing.T) {
	d := newDispatcher(t)

	res := d.Dispatch("help")
	require.False(t, res.Failed)
	require.NotEmpty(t, res.Lines)
	joined := strings.Join(res.Lines, "\n")
	for _, cmd := range []string{"pwd", "mkdir", "touch", "cat", "exit"} {
		assert.Contains(t, joined, cmd)
	}
}

func TestDispatchRmCpMvRename(t *testing.T) {
	d := newDispatcher(t)
	run(t, d, "mkdir a", "touch a/f.txt", "write a/f.txt data", "mkdir b")

	assert.False(t, run(t, d, "cp a/f.txt b").Failed)
	assert.Equal(t, []string{"data"}, d.Dispatch("cat b/f.txt").Lines)

	assert.False(t, run(t, d, "mv b/f.txt b/g.txt").Failed)
	assert.True(t, d.Dispatch("cat b/f.txt").Failed)
	assert.Equal(t, []string{"data"}, d.Dispatch("cat b/g.txt").Lines)

	assert.False(t, run(t, d, "rename b/g.txt h.txt").Failed)
	assert.Equal(t, []string{"h.txt"}, d.Dispatch("ls b").Lines)

	assert.False(t, run(t, d, "rm b").Failed)
	assert.True(t, d.Dispatch("ls b").Failed)
}
