package termsys

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateXDG keeps the test away from any real user config.
func isolateXDG(t *testing.T) {
	t.Helper()
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	xdg.Reload()
}

func TestRootRunsPipedScript(t *testing.T) {
	isolateXDG(t)

	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader("mkdir a\ncd a\npwd\nexit\n"))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "/a\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestRootRunsScriptFile(t *testing.T) {
	isolateXDG(t)

	script := filepath.Join(t.TempDir(), "session.txt")
	require.NoError(t, os.WriteFile(script, []byte("mkdir d\nls\n"), 0644))

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{script})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "d\n", out.String())
}

func TestRootMissingScriptFileFails(t *testing.T) {
	isolateXDG(t)

	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "absent.txt")})

	assert.Error(t, cmd.Execute())
}

func TestRootConfigFlag(t *testing.T) {
	isolateXDG(t)

	cfgPath := filepath.Join(t.TempDir(), "termsys.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("[ls]\nclassify = true\n"), 0644))

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader("mkdir d\ntouch f\nls\nexit\n"))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--config", cfgPath})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "d/\nf\n", out.String())
}

func TestVersionCmd(t *testing.T) {
	isolateXDG(t)

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "termsys version")
}
