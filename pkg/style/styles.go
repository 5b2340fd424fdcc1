package style

import (
	"github.com/charmbracelet/lipgloss"
)

func foreground(c lipgloss.AdaptiveColor) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c)
}

// renderFunc adapts the variadic lipgloss Style.Render to func(string) string
func renderFunc(st lipgloss.Style) func(string) string {
	return func(s string) string { return st.Render(s) }
}

// painter builds the terminal decorations of t
func (t Theme) painter() painter {
	success := foreground(t.Success).Bold(true)
	warning := foreground(t.Warning).Bold(true)

	return painter{
		title:    renderFunc(foreground(t.Heading).Bold(true)),
		muted:    renderFunc(foreground(t.Muted)),
		path:     renderFunc(foreground(t.Path).Italic(true)),
		rule:     renderFunc(foreground(t.Rule).Bold(true)),
		added:    renderFunc(foreground(t.Added)),
		removed:  renderFunc(foreground(t.Removed)),
		success:  renderFunc(success),
		warning:  renderFunc(warning),
		hint:     renderFunc(foreground(t.Hint)),
		okMark:   success.Render("✓"),
		errMark:  foreground(t.Error).Bold(true).Render("✗"),
		warnMark: warning.Render("!"),
		bullet:   foreground(t.Bullet).Render("•"),
	}
}

// Indent pads every line of s by two spaces per level
func Indent(s string, level int) string {
	return lipgloss.NewStyle().PaddingLeft(level * 2).Render(s)
}
