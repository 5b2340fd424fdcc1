// pkg/rules/scanner_test.go
// TEST TYPE: Integration Tests
// DEPENDENCIES: Real filesystem (t.TempDir)
// PURPOSE: Directory discovery, pruning and failure modes

package rules_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/spotlight-manager/pkg/errors"
	"github.com/arthur-debert/spotlight-manager/pkg/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mkdirs(t *testing.T, root string, dirs ...string) {
	t.Helper()
	for _, d := range dirs {
		require.NoError(t, os.MkdirAll(filepath.Join(root, d), 0755))
	}
}

func TestScan_PrunesMatchedDirectories(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root,
		"a/node_modules/x/node_modules",
		"b/node_modules",
		"c/src",
	)

	s := rules.NewScanner(rules.ScanOptions{})
	got, err := s.Scan(context.Background(), rules.Rule{Name: "node_modules", Base: root})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		filepath.Join(root, "a/node_modules"),
		filepath.Join(root, "b/node_modules"),
	}, got)
}

func TestScan_MatchesDirectChildOfBase(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "build")

	got, err := rules.NewScanner(rules.ScanOptions{}).Scan(context.Background(), rules.Rule{Name: "build", Base: root})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "build")}, got)
}

func TestScan_IgnoresFiles(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "a")
	require.NoError(t, os.WriteFile(filepath.Join(root, "a", "build"), []byte("x"), 0644))

	got, err := rules.NewScanner(rules.ScanOptions{}).Scan(context.Background(), rules.Rule{Name: "build", Base: root})
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestScan_NoMatches(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "a/b/c")

	got, err := rules.NewScanner(rules.ScanOptions{}).Scan(context.Background(), rules.Rule{Name: "node_modules", Base: root})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestScan_HiddenDirectories(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, ".hidden/build", "visible/build", ".git")

	t.Run("skipped by default", func(t *testing.T) {
		got, err := rules.NewScanner(rules.ScanOptions{}).Scan(context.Background(), rules.Rule{Name: "build", Base: root})
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(root, "visible/build")}, got)
	})

	t.Run("descended when enabled", func(t *testing.T) {
		got, err := rules.NewScanner(rules.ScanOptions{Hidden: true}).Scan(context.Background(), rules.Rule{Name: "build", Base: root})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{
			filepath.Join(root, ".hidden/build"),
			filepath.Join(root, "visible/build"),
		}, got)
	})

	t.Run("matched when named", func(t *testing.T) {
		got, err := rules.NewScanner(rules.ScanOptions{}).Scan(context.Background(), rules.Rule{Name: ".git", Base: root})
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(root, ".git")}, got)
	})
}

func TestScan_DoesNotFollowSymlinks(t *testing.T) {
	root := t.TempDir()
	target := t.TempDir()
	mkdirs(t, target, "node_modules")
	mkdirs(t, root, "real/node_modules")
	require.NoError(t, os.Symlink(target, filepath.Join(root, "link")))

	got, err := rules.NewScanner(rules.ScanOptions{}).Scan(context.Background(), rules.Rule{Name: "node_modules", Base: root})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "real/node_modules")}, got)
}

func TestScan_MissingBase(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "does-not-exist")

	_, err := rules.NewScanner(rules.ScanOptions{}).Scan(context.Background(), rules.Rule{Name: "x", Base: missing})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrMatcherFailure))
}

func TestScan_BaseIsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	_, err := rules.NewScanner(rules.ScanOptions{}).Scan(context.Background(), rules.Rule{Name: "x", Base: file})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrMatcherFailure))
}

func TestScan_CancelledContext(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "a/b")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := rules.NewScanner(rules.ScanOptions{}).Scan(ctx, rules.Rule{Name: "b", Base: root})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestScan_EveryResultMatchesTheRule(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "x/dist", "y/z/dist", "dist/inner/dist")

	r := rules.Rule{Name: "dist", Base: root}
	got, err := rules.NewScanner(rules.ScanOptions{}).Scan(context.Background(), r)
	require.NoError(t, err)
	require.Len(t, got, 3)

	p, err := r.Pattern()
	require.NoError(t, err)
	for _, path := range got {
		assert.True(t, p.Match(path), path)
	}
}

func TestScan_BaseWithGlobCharacters(t *testing.T) {
	for _, dir := range []string{"proj[1]", "p{a,b}", "what?", "a*b"} {
		t.Run(dir, func(t *testing.T) {
			root := t.TempDir()
			base := filepath.Join(root, dir)
			mkdirs(t, base, "node_modules", "app/node_modules")
			// siblings a glob reading of the base would also select
			mkdirs(t, root, "proj1/node_modules", "pa/node_modules")

			got, err := rules.NewScanner(rules.ScanOptions{}).Scan(context.Background(), rules.Rule{Name: "node_modules", Base: base})
			require.NoError(t, err)
			assert.ElementsMatch(t, []string{
				filepath.Join(base, "node_modules"),
				filepath.Join(base, "app/node_modules"),
			}, got)
		})
	}
}
