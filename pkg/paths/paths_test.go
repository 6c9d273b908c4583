package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rstlix0x0/aiassisted/pkg/errors"
)

func TestNew(t *testing.T) {
	cwd, err := os.Getwd()
	require.NoError(t, err)
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name       string
		target     string
		wantTarget string
	}{
		{"empty target uses cwd", "", cwd},
		{"dot target uses cwd", ".", cwd},
		{"absolute target", "/tmp/project", "/tmp/project"},
		{"relative target", "sub/dir", filepath.Join(cwd, "sub", "dir")},
		{"tilde target", "~/project", filepath.Join(homeDir, "project")},
		{"unclean target", "/tmp/a/../project/", "/tmp/project"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := New(tt.target)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTarget, p.TargetDir())
			assert.Equal(t, filepath.Join(tt.wantTarget, ".aiassisted"), p.InstallDir())
		})
	}
}

func TestInstalledTreeLayout(t *testing.T) {
	p, err := New("/work/project")
	require.NoError(t, err)

	assert.Equal(t, "/work/project/.aiassisted/.version", p.VersionFile())
	assert.Equal(t, "/work/project/.aiassisted/FILES.txt", p.ManifestFile())
	assert.Equal(t, "/work/project/.aiassisted/x/y.txt", p.InstalledPath("x/y.txt"))
	assert.Equal(t, "/work/project/.aiassisted/x/y.txt", p.InstalledPath("/x/y.txt"))
}

func TestXDGOverrides(t *testing.T) {
	t.Setenv(EnvConfigDir, "/custom/config")
	t.Setenv(EnvStateDir, "/custom/state")

	p, err := New("/work/project")
	require.NoError(t, err)

	assert.Equal(t, "/custom/config", p.ConfigDir())
	assert.Equal(t, "/custom/config/config.toml", p.ConfigFile())
	assert.Equal(t, "/custom/state", p.StateDir())
	assert.Equal(t, "/custom/state/aiassisted.log", p.LogFilePath())
	assert.Equal(t, "/custom/state/aiassisted.log", LogFilePath())
	assert.Equal(t, "/custom/config/config.toml", ConfigFilePath())
}

func TestStateDirFromXDGStateHome(t *testing.T) {
	t.Setenv(EnvStateDir, "")
	t.Setenv("XDG_STATE_HOME", "/xdg/state")

	assert.Equal(t, "/xdg/state/aiassisted", StateDir())
}

func TestNormalizePathEmpty(t *testing.T) {
	_, err := NormalizePath("")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestExpandHome(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"~", "/home/tester"},
		{"~/notes", "/home/tester/notes"},
		{"~other/notes", "~other/notes"},
		{"/abs/path", "/abs/path"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandHome(tt.in))
		})
	}
}
