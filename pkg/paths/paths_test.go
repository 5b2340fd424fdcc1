package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ConfigResolution(t *testing.T) {
	tests := []struct {
		name       string
		override   string
		env        string
		legacy     bool
		wantConfig func(home string) string
		wantLegacy bool
	}{
		{
			name:       "flag override wins",
			override:   "/etc/sm.yaml",
			env:        "/env/sm.yaml",
			legacy:     true,
			wantConfig: func(string) string { return "/etc/sm.yaml" },
		},
		{
			name:       "env override",
			env:        "/env/sm.yaml",
			legacy:     true,
			wantConfig: func(string) string { return "/env/sm.yaml" },
		},
		{
			name:       "tilde in override is expanded",
			override:   "~/conf/sm.toml",
			wantConfig: func(home string) string { return filepath.Join(home, "conf", "sm.toml") },
		},
		{
			name:       "legacy dotfile when present",
			legacy:     true,
			wantConfig: func(home string) string { return filepath.Join(home, LegacyConfigFile) },
			wantLegacy: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := t.TempDir()
			t.Setenv("HOME", home)
			t.Setenv(EnvConfigFile, tt.env)
			if tt.legacy {
				require.NoError(t, os.WriteFile(filepath.Join(home, LegacyConfigFile), nil, 0644))
			}

			p, err := New(tt.override)
			require.NoError(t, err)

			assert.Equal(t, tt.wantConfig(home), p.ConfigFile())
			assert.Equal(t, tt.wantLegacy, p.UsedLegacyConfig())
			assert.Equal(t, home, p.Home())
		})
	}
}

func TestNew_XDGDefault(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvConfigFile, "")

	p, err := New("")
	require.NoError(t, err)

	assert.False(t, p.UsedLegacyConfig())
	assert.Equal(t, ConfigFileName, filepath.Base(p.ConfigFile()))
	assert.Equal(t, AppDirName, filepath.Base(filepath.Dir(p.ConfigFile())))
}

func TestNew_StateDir(t *testing.T) {
	home := t.TempDir()
	state := filepath.Join(home, "state")
	t.Setenv("HOME", home)
	t.Setenv(EnvStateDir, state)

	p, err := New("/tmp/sm.yaml")
	require.NoError(t, err)

	assert.Equal(t, state, p.StateDir())
	assert.Equal(t, filepath.Join(state, LogFileName), p.LogFilePath())
	assert.Equal(t, filepath.Join(state, StoreLockName), p.StoreLockPath())
	assert.Equal(t, filepath.Join(state, RegistryLockName), p.RegistryLockPath())
}

func TestExpandHome(t *testing.T) {
	p := NewFixed("/home/ana", "/home/ana/.spotlight-manager.yaml", "/tmp/state")

	tests := []struct {
		in, want string
	}{
		{"~", "/home/ana"},
		{"~/code", "/home/ana/code"},
		{"~bob/code", "~bob/code"},
		{"/abs/~/x", "/abs/~/x"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, p.ExpandHome(tt.in), "ExpandHome(%q)", tt.in)
	}
}

func TestResolveDir(t *testing.T) {
	p := NewFixed("/home/ana", "", "")

	tests := []struct {
		name    string
		arg     string
		cwd     string
		want    string
		wantErr bool
	}{
		{name: "empty uses cwd", arg: "", cwd: "/work/proj", want: "/work/proj"},
		{name: "absolute kept as typed", arg: "/data//src/", cwd: "/work", want: "/data//src/"},
		{name: "relative joined with cwd", arg: "sub/dir", cwd: "/work", want: "/work/sub/dir"},
		{name: "tilde expanded", arg: "~/code", cwd: "/work", want: "/home/ana/code"},
		{name: "nothing to resolve", arg: "", cwd: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.ResolveDir(tt.arg, tt.cwd)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
