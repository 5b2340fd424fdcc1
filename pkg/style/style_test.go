// pkg/style/style_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: None
// PURPOSE: Layout of command results in plain and terminal renderers

package style

import (
	"testing"

	"github.com/arthur-debert/spotlight-manager/pkg/commands"
	"github.com/arthur-debert/spotlight-manager/pkg/errors"
	"github.com/arthur-debert/spotlight-manager/pkg/orchestration"
	"github.com/arthur-debert/spotlight-manager/pkg/rules"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

var nodeModules = rules.Rule{Name: "node_modules", Base: "/code"}

func TestPlainRenderer_Exclude(t *testing.T) {
	r := NewPlainRenderer()

	t.Run("written", func(t *testing.T) {
		out := r.RenderExclude(&commands.ExcludeResult{
			Rule:    nodeModules,
			Matches: []string{"/code/a/node_modules", "/code/b/node_modules"},
			Added:   []string{"/code/b/node_modules"},
			Written: true,
		})
		expected := "Exclude node_modules in /code\n" +
			"Matched 2, 1 new:\n" +
			"  + /code/b/node_modules\n" +
			"ok Excluded 1 directory."
		assert.Equal(t, expected, out)
	})

	t.Run("no matches", func(t *testing.T) {
		out := r.RenderExclude(&commands.ExcludeResult{Rule: nodeModules})
		assert.Equal(t, "Exclude node_modules in /code\nNo directories match.", out)
	})

	t.Run("already excluded", func(t *testing.T) {
		out := r.RenderExclude(&commands.ExcludeResult{
			Rule:    nodeModules,
			Matches: []string{"/code/a/node_modules"},
			Added:   []string{},
		})
		assert.Contains(t, out, "Nothing to exclude.")
	})

	t.Run("dry run", func(t *testing.T) {
		out := r.RenderExclude(&commands.ExcludeResult{
			Rule:    nodeModules,
			Matches: []string{"/code/a/node_modules", "/code/b/node_modules"},
			Added:   []string{"/code/a/node_modules", "/code/b/node_modules"},
			DryRun:  true,
		})
		assert.Contains(t, out, "Dry run: would exclude 2 directories, store not written.")
	})

	t.Run("declined", func(t *testing.T) {
		out := r.RenderExclude(&commands.ExcludeResult{
			Rule:     nodeModules,
			Matches:  []string{"/code/a/node_modules"},
			Added:    []string{"/code/a/node_modules"},
			Declined: true,
		})
		assert.Contains(t, out, "Cancelled, store left unchanged.")
	})

	t.Run("restart failure", func(t *testing.T) {
		out := r.RenderExclude(&commands.ExcludeResult{
			Rule:    nodeModules,
			Matches: []string{"/code/a/node_modules"},
			Added:   []string{"/code/a/node_modules"},
			Written: true,
			RestartErr: errors.New(errors.ErrServiceRestart, "launchctl exited with status 1").
				WithHint("restart the machine to apply the new exclusions"),
		})
		assert.Contains(t, out, "ok Excluded 1 directory.")
		assert.Contains(t, out, "warning Store updated, but the indexing service restart failed")
		assert.Contains(t, out, "hint: restart the machine")
	})
}

func TestPlainRenderer_Include(t *testing.T) {
	out := NewPlainRenderer().RenderInclude(&commands.IncludeResult{
		Rule:    nodeModules,
		Removed: []string{"/code/a/node_modules", "/code/b/node_modules"},
		Written: true,
	})
	expected := "Include node_modules in /code\n" +
		"  - /code/a/node_modules\n" +
		"  - /code/b/node_modules\n" +
		"ok Included 2 directories."
	assert.Equal(t, expected, out)
}

func TestPlainRenderer_List(t *testing.T) {
	r := NewPlainRenderer()

	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, "No rules registered.", r.RenderList(&commands.ListResult{}))
	})

	t.Run("rules only", func(t *testing.T) {
		out := r.RenderList(&commands.ListResult{Rules: []commands.RuleListing{
			{Rule: nodeModules},
			{Rule: rules.Rule{Name: ".venv", Base: "/"}},
		}})
		assert.Equal(t, "- node_modules in /code\n- .venv in /", out)
	})

	t.Run("with paths", func(t *testing.T) {
		out := r.RenderList(&commands.ListResult{
			ShowPaths: true,
			Rules: []commands.RuleListing{
				{Rule: nodeModules, Paths: []string{"/code/a/node_modules"}},
				{Rule: rules.Rule{Name: ".venv", Base: "/"}},
			},
		})
		expected := "- node_modules in /code\n" +
			"    /code/a/node_modules\n" +
			"- .venv in /\n" +
			"    (no excluded paths)"
		assert.Equal(t, expected, out)
	})
}

func TestPlainRenderer_Job(t *testing.T) {
	out := NewPlainRenderer().RenderJob(&orchestration.JobReport{
		RulesEvaluated: 2,
		Discovered:     []string{"/code/a/node_modules"},
		Added:          []string{"/code/a/node_modules"},
		RuleErrors: []orchestration.RuleError{{
			Rule: rules.Rule{Name: "target", Base: "/missing"},
			Err:  errors.New(errors.ErrMatcherFailure, "search directory does not exist"),
		}},
		DuplicatesRemoved: 1,
		Written:           true,
	})
	assert.Contains(t, out, "Job evaluated 2 rules, 1 matches")
	assert.Contains(t, out, "error target in /missing: search directory does not exist")
	assert.Contains(t, out, "  + /code/a/node_modules")
	assert.Contains(t, out, "Collapsed 1 duplicate store entries.")
	assert.Contains(t, out, "ok Excluded 1 directory.")
}

func TestPlainRenderer_AddAndRemove(t *testing.T) {
	r := NewPlainRenderer()

	add := r.RenderAdd(&commands.AddResult{
		Rule:       nodeModules,
		Registered: true,
		Job:        &orchestration.JobReport{RulesEvaluated: 1},
	})
	assert.Contains(t, add, "ok Registered node_modules in /code")
	assert.Contains(t, add, "Job evaluated 1 rule")

	dry := r.RenderAdd(&commands.AddResult{Rule: nodeModules})
	assert.Contains(t, dry, "Dry run: would register /code/**/node_modules")

	removed := r.RenderRemove(&commands.RemoveResult{
		Rule:          nodeModules,
		Unregistered:  true,
		WasRegistered: true,
		Include:       &commands.IncludeResult{Rule: nodeModules},
	})
	assert.Contains(t, removed, "ok Unregistered node_modules in /code")
	assert.Contains(t, removed, "Nothing to include.")

	missing := r.RenderRemove(&commands.RemoveResult{Rule: nodeModules})
	assert.Contains(t, missing, "warning node_modules in /code was not registered")
}

func TestRenderError(t *testing.T) {
	err := errors.New(errors.ErrStoreUnreadable, "cannot read store").
		WithHint("run with sudo")

	t.Run("plain", func(t *testing.T) {
		out := NewPlainRenderer().RenderError(err)
		assert.Equal(t, "Error: cannot read store\n  hint: run with sudo", out)
	})

	t.Run("terminal", func(t *testing.T) {
		out := NewTerminalRenderer().RenderError(err)
		assert.Contains(t, out, "cannot read store")
		assert.Contains(t, out, "run with sudo")
	})

	t.Run("nil", func(t *testing.T) {
		assert.Empty(t, NewPlainRenderer().RenderError(nil))
		assert.Empty(t, NewTerminalRenderer().RenderError(nil))
	})
}

func TestTerminalRenderer_ContainsContent(t *testing.T) {
	r := NewTerminalRenderer()
	out := r.RenderExclude(&commands.ExcludeResult{
		Rule:    nodeModules,
		Matches: []string{"/code/a/node_modules"},
		Added:   []string{"/code/a/node_modules"},
		Written: true,
	})
	assert.Contains(t, out, "node_modules")
	assert.Contains(t, out, "/code/a/node_modules")
	assert.Contains(t, out, "Excluded 1 directory.")
}

func TestIndent(t *testing.T) {
	assert.Equal(t, "    Hello", Indent("Hello", 2))
}

func TestThemedRenderer(t *testing.T) {
	theme := DefaultTheme
	theme.Rule = lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}
	out := NewThemedRenderer(theme).RenderList(&commands.ListResult{Rules: []commands.RuleListing{
		{Rule: nodeModules},
	}})
	assert.Contains(t, out, "node_modules")
}

func TestRendererInterface(t *testing.T) {
	var _ Renderer = NewTerminalRenderer()
	var _ Renderer = NewPlainRenderer()
}
