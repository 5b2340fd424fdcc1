// pkg/reconcile/sets_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: None
// PURPOSE: Pure set arithmetic behind merge and subtract

package reconcile_test

import (
	"testing"

	"github.com/arthur-debert/spotlight-manager/pkg/reconcile"
	"github.com/arthur-debert/spotlight-manager/pkg/rules"
	"github.com/stretchr/testify/assert"
)

func TestDedup(t *testing.T) {
	tests := []struct {
		name    string
		in      []string
		want    []string
		removed int
	}{
		{"empty", nil, []string{}, 0},
		{"no repeats", []string{"/a", "/b"}, []string{"/a", "/b"}, 0},
		{"keeps first occurrence", []string{"/b", "/a", "/b", "/a", "/c"}, []string{"/b", "/a", "/c"}, 2},
		{"trailing slash is distinct", []string{"/a", "/a/"}, []string{"/a", "/a/"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, removed := reconcile.Dedup(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.removed, removed)
		})
	}
}

func TestMergeExclusions(t *testing.T) {
	tests := []struct {
		name        string
		current     []string
		discovered  []string
		wantAdded   []string
		wantUpdated []string
		wantDups    int
	}{
		{
			name:        "nothing discovered",
			current:     []string{"/a"},
			discovered:  nil,
			wantAdded:   []string{},
			wantUpdated: []string{"/a"},
		},
		{
			name:        "appends in discovery order",
			current:     []string{"/a"},
			discovered:  []string{"/c", "/b"},
			wantAdded:   []string{"/c", "/b"},
			wantUpdated: []string{"/a", "/c", "/b"},
		},
		{
			name:        "discovered repeats added once",
			current:     nil,
			discovered:  []string{"/x", "/x", "/y"},
			wantAdded:   []string{"/x", "/y"},
			wantUpdated: []string{"/x", "/y"},
		},
		{
			name:        "preexisting duplicates collapse",
			current:     []string{"/a", "/a", "/b"},
			discovered:  []string{"/c"},
			wantAdded:   []string{"/c"},
			wantUpdated: []string{"/a", "/b", "/c"},
			wantDups:    1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			added, updated, dups := reconcile.MergeExclusions(tt.current, tt.discovered)
			assert.Equal(t, tt.wantAdded, added)
			assert.Equal(t, tt.wantUpdated, updated)
			assert.Equal(t, tt.wantDups, dups)
		})
	}
}

func TestMergeExclusions_DoesNotMutateInput(t *testing.T) {
	current := []string{"/a", "/a"}
	discovered := []string{"/b"}
	reconcile.MergeExclusions(current, discovered)
	assert.Equal(t, []string{"/a", "/a"}, current)
	assert.Equal(t, []string{"/b"}, discovered)
}

func TestPartitionExclusions(t *testing.T) {
	pattern := rules.MustCompileGlob("/src/**/target")
	kept, removed := reconcile.PartitionExclusions(
		[]string{"/src/target", "/src/a/target", "/src/target/", "/other/target"},
		pattern,
	)
	assert.Equal(t, []string{"/src/target", "/src/a/target"}, removed)
	assert.Equal(t, []string{"/src/target/", "/other/target"}, kept)
}
