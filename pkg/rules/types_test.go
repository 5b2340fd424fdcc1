// pkg/rules/types_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: None
// PURPOSE: Rule normalization, validation and expression rendering

package rules_test

import (
	"testing"

	"github.com/arthur-debert/spotlight-manager/pkg/errors"
	"github.com/arthur-debert/spotlight-manager/pkg/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   rules.Rule
		want rules.Rule
	}{
		{"strips name separators and trailing base separators", rules.Rule{Name: "/foo/", Base: "/bar//"}, rules.Rule{Name: "foo", Base: "/bar"}},
		{"collapses doubled separators", rules.Rule{Name: "a//b", Base: "/Users//me///src"}, rules.Rule{Name: "a/b", Base: "/Users/me/src"}},
		{"keeps root base", rules.Rule{Name: "node_modules", Base: "/"}, rules.Rule{Name: "node_modules", Base: "/"}},
		{"root with extra separators", rules.Rule{Name: "x", Base: "///"}, rules.Rule{Name: "x", Base: "/"}},
		{"already normal", rules.Rule{Name: "node_modules", Base: "/Users/me/code"}, rules.Rule{Name: "node_modules", Base: "/Users/me/code"}},
		{"empty base stays empty", rules.Rule{Name: "x", Base: ""}, rules.Rule{Name: "x", Base: ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalize()
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, got.Normalize(), "normalization must be idempotent")
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		rule    rules.Rule
		wantErr bool
	}{
		{"valid", rules.Rule{Name: "node_modules", Base: "/Users/me"}, false},
		{"valid glob name", rules.Rule{Name: "*.cache", Base: "/"}, false},
		{"valid nested name", rules.Rule{Name: "target/debug", Base: "/src"}, false},
		{"empty name", rules.Rule{Name: "", Base: "/Users/me"}, true},
		{"dot name", rules.Rule{Name: ".", Base: "/Users/me"}, true},
		{"dotdot segment", rules.Rule{Name: "a/..", Base: "/Users/me"}, true},
		{"empty base", rules.Rule{Name: "x", Base: ""}, true},
		{"relative base", rules.Rule{Name: "x", Base: "code"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rule.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidRule))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNew(t *testing.T) {
	r, err := rules.New("/build/", "/tmp//proj/")
	require.NoError(t, err)
	assert.Equal(t, rules.Rule{Name: "build", Base: "/tmp/proj"}, r)

	_, err = rules.New("//", "/tmp")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidRule))
}

func TestExpression(t *testing.T) {
	assert.Equal(t, "/Users/me/**/node_modules", rules.Rule{Name: "node_modules", Base: "/Users/me"}.Expression())
	assert.Equal(t, "/**/node_modules", rules.Rule{Name: "node_modules", Base: "/"}.Expression())
	assert.Equal(t, "/a/**/b", rules.Rule{Name: "b", Base: "/a"}.String())
}

func TestEqual(t *testing.T) {
	a := rules.Rule{Name: "x", Base: "/a"}
	assert.True(t, a.Equal(rules.Rule{Name: "x", Base: "/a"}))
	assert.False(t, a.Equal(rules.Rule{Name: "x", Base: "/a/"}))
	assert.False(t, a.Equal(rules.Rule{Name: "X", Base: "/a"}))
}
