package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/arthur-debert/spotlight-manager/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(LoadOptions{
		File:            filepath.Join(t.TempDir(), "missing.yaml"),
		DefaultLockFile: "/tmp/state/store.lock",
		Environ:         []string{},
	})
	require.NoError(t, err)

	assert.Equal(t, "/System/Volumes/Data/.Spotlight-V100/VolumeConfiguration.plist", cfg.StorePath)
	assert.False(t, cfg.Scan.Hidden)
	assert.Equal(t, 4, cfg.Scan.Concurrency)
	assert.Equal(t, "/tmp/state/store.lock", cfg.Store.LockFile)
	assert.False(t, cfg.Store.VerifyUnchanged)
	assert.True(t, cfg.Service.Enabled)
	assert.Equal(t, 30*time.Second, cfg.Service.Timeout)
	assert.Equal(t, [][]string{
		{"launchctl", "stop", "com.apple.metadata.mds"},
		{"launchctl", "start", "com.apple.metadata.mds"},
	}, cfg.Service.Restart)
}

func TestLoad_EmptyFileUsesDefaults(t *testing.T) {
	path := writeFile(t, t.TempDir(), ".spotlight-manager.yaml", "")

	cfg, err := Load(LoadOptions{File: path, Environ: []string{}})
	require.NoError(t, err)
	assert.Equal(t, path, cfg.File)
	assert.NotEmpty(t, cfg.StorePath)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yaml", `
spotlightPList: /tmp/VolumeConfiguration.plist
excludes:
  - name: node_modules
    base: /Users/ana/code
scan:
  hidden: true
  concurrency: 2
store:
  lock_file: /tmp/custom.lock
  verify_unchanged: true
service:
  enabled: false
`)

	cfg, err := Load(LoadOptions{File: path, DefaultLockFile: "/ignored", Environ: []string{}})
	require.NoError(t, err)

	assert.Equal(t, "/tmp/VolumeConfiguration.plist", cfg.StorePath)
	assert.True(t, cfg.Scan.Hidden)
	assert.Equal(t, 2, cfg.Scan.Concurrency)
	assert.Equal(t, "/tmp/custom.lock", cfg.Store.LockFile)
	assert.True(t, cfg.Store.VerifyUnchanged)
	assert.False(t, cfg.Service.Enabled)
}

func TestLoad_TOMLFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.toml", `
spotlightPList = "/tmp/vc.plist"

[[excludes]]
name = "target"
base = "/src"

[scan]
concurrency = 8

[service]
timeout = "5s"
restart = [["true"]]
`)

	cfg, err := Load(LoadOptions{File: path, Environ: []string{}})
	require.NoError(t, err)

	assert.Equal(t, "/tmp/vc.plist", cfg.StorePath)
	assert.Equal(t, 8, cfg.Scan.Concurrency)
	assert.Equal(t, 5*time.Second, cfg.Service.Timeout)
	assert.Equal(t, [][]string{{"true"}}, cfg.Service.Restart)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yaml", "spotlightPList: /from/file.plist\n")

	cfg, err := Load(LoadOptions{
		File: path,
		Environ: []string{
			"SPOTLIGHT_MANAGER_PLIST=/from/env.plist",
			"SPOTLIGHT_MANAGER_SCAN__HIDDEN=true",
			"SPOTLIGHT_MANAGER_SCAN__CONCURRENCY=16",
			"SPOTLIGHT_MANAGER_CONFIG=/not/a/config/key",
			"UNRELATED=1",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "/from/env.plist", cfg.StorePath)
	assert.True(t, cfg.Scan.Hidden)
	assert.Equal(t, 16, cfg.Scan.Concurrency)
}

func TestLoad_InvalidSyntax(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yaml", "excludes: [unclosed\n")

	_, err := Load(LoadOptions{File: path, Environ: []string{}})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	assert.NotEmpty(t, errors.Hint(err))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "valid",
			cfg: Config{StorePath: "/x.plist", Service: ServiceConfig{
				Enabled: true, Timeout: time.Second, Restart: [][]string{{"true"}},
			}},
		},
		{name: "empty store path", cfg: Config{StorePath: "  "}, wantErr: true},
		{
			name:    "zero timeout",
			cfg:     Config{StorePath: "/x", Service: ServiceConfig{Enabled: true}},
			wantErr: true,
		},
		{
			name: "empty restart command",
			cfg: Config{StorePath: "/x", Service: ServiceConfig{
				Enabled: true, Timeout: time.Second, Restart: [][]string{{}},
			}},
			wantErr: true,
		},
		{
			name: "disabled service skips checks",
			cfg:  Config{StorePath: "/x", Service: ServiceConfig{Enabled: false}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIsTOML(t *testing.T) {
	assert.True(t, IsTOML("/a/config.toml"))
	assert.True(t, IsTOML("/a/CONFIG.TOML"))
	assert.False(t, IsTOML("/a/.spotlight-manager.yaml"))
	assert.False(t, IsTOML("/a/config"))
}
