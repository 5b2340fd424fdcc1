package style

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/spotlight-manager/pkg/commands"
	"github.com/arthur-debert/spotlight-manager/pkg/errors"
	"github.com/arthur-debert/spotlight-manager/pkg/orchestration"
	"github.com/arthur-debert/spotlight-manager/pkg/rules"
	"github.com/pterm/pterm"
)

// Renderer defines the interface for rendering command results
type Renderer interface {
	RenderExclude(res *commands.ExcludeResult) string
	RenderInclude(res *commands.IncludeResult) string
	RenderAdd(res *commands.AddResult) string
	RenderRemove(res *commands.RemoveResult) string
	RenderList(res *commands.ListResult) string
	RenderJob(report *orchestration.JobReport) string
	RenderError(err error) string
}

// painter holds the decorations a layout is drawn with
type painter struct {
	title   func(string) string
	muted   func(string) string
	path    func(string) string
	rule    func(string) string
	added   func(string) string
	removed func(string) string
	success func(string) string
	warning func(string) string
	hint    func(string) string

	okMark   string
	errMark  string
	warnMark string
	bullet   string
}

// TerminalRenderer implements Renderer with rich terminal output
type TerminalRenderer struct {
	layout
}

// NewTerminalRenderer returns a renderer drawn with DefaultTheme
func NewTerminalRenderer() *TerminalRenderer {
	return NewThemedRenderer(DefaultTheme)
}

// NewThemedRenderer returns a terminal renderer drawn with theme
func NewThemedRenderer(theme Theme) *TerminalRenderer {
	return &TerminalRenderer{layout{p: theme.painter()}}
}

// RenderError renders an error message with its hint
func (r *TerminalRenderer) RenderError(err error) string {
	if err == nil {
		return ""
	}

	out := fmt.Sprintf("%s %s", pterm.Error.Prefix.Text, pterm.Error.MessageStyle.Sprint(err.Error()))
	if hint := errors.Hint(err); hint != "" {
		out += "\n" + Indent(r.p.hint("hint: "+hint), 1)
	}
	return out
}

// PlainRenderer implements Renderer with plain text output (no styling)
type PlainRenderer struct {
	layout
}

// NewPlainRenderer creates a new plain text renderer
func NewPlainRenderer() *PlainRenderer {
	plain := func(s string) string { return s }
	return &PlainRenderer{layout{p: painter{
		title:    plain,
		muted:    plain,
		path:     plain,
		rule:     plain,
		added:    plain,
		removed:  plain,
		success:  plain,
		warning:  plain,
		hint:     plain,
		okMark:   "ok",
		errMark:  "error",
		warnMark: "warning",
		bullet:   "-",
	}}}
}

// RenderError renders a plain error message
func (r *PlainRenderer) RenderError(err error) string {
	if err == nil {
		return ""
	}

	out := fmt.Sprintf("Error: %s", err.Error())
	if hint := errors.Hint(err); hint != "" {
		out += "\n  hint: " + hint
	}
	return out
}

// layout is the shared arrangement of every result; only the painter
// differs between terminal and plain output
type layout struct {
	p painter
}

func (l layout) ruleLine(rule rules.Rule) string {
	return fmt.Sprintf("%s %s", l.p.rule(rule.Name), l.p.muted("in "+rule.Base))
}

func (l layout) list(b *strings.Builder, mark string, paint func(string) string, paths []string) {
	for _, p := range paths {
		fmt.Fprintf(b, "  %s %s\n", mark, paint(p))
	}
}

// status describes what became of a computed change
type status struct {
	verb       string
	count      int
	declined   bool
	dryRun     bool
	written    bool
	restartErr error
}

func (l layout) status(b *strings.Builder, s status) {
	noun := "directories"
	if s.count == 1 {
		noun = "directory"
	}

	switch {
	case s.count == 0:
		fmt.Fprintf(b, "%s\n", l.p.muted("Nothing to "+strings.ToLower(s.verb)+"."))
	case s.dryRun:
		fmt.Fprintf(b, "%s\n", l.p.muted(fmt.Sprintf("Dry run: would %s %d %s, store not written.", strings.ToLower(s.verb), s.count, noun)))
	case s.declined:
		fmt.Fprintf(b, "%s\n", l.p.muted("Cancelled, store left unchanged."))
	case s.written:
		fmt.Fprintf(b, "%s %s\n", l.p.okMark, l.p.success(fmt.Sprintf("%sd %d %s.", s.verb, s.count, noun)))
	}

	if s.restartErr != nil {
		fmt.Fprintf(b, "%s %s\n", l.p.warnMark, l.p.warning("Store updated, but the indexing service restart failed: "+s.restartErr.Error()))
		if hint := errors.Hint(s.restartErr); hint != "" {
			fmt.Fprintf(b, "  %s\n", l.p.hint("hint: "+hint))
		}
	}
}

// RenderExclude renders the matches of one rule and what became of them
func (l layout) RenderExclude(res *commands.ExcludeResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", l.p.title("Exclude"), l.ruleLine(res.Rule))

	if len(res.Matches) == 0 {
		fmt.Fprintf(&b, "%s\n", l.p.muted("No directories match."))
		return strings.TrimRight(b.String(), "\n")
	}

	fmt.Fprintf(&b, "Matched %d, %d new:\n", len(res.Matches), len(res.Added))
	l.list(&b, "+", l.p.added, res.Added)
	l.status(&b, status{
		verb:       "Exclude",
		count:      len(res.Added),
		declined:   res.Declined,
		dryRun:     res.DryRun,
		written:    res.Written,
		restartErr: res.RestartErr,
	})
	return strings.TrimRight(b.String(), "\n")
}

// RenderInclude renders the store entries one rule dropped
func (l layout) RenderInclude(res *commands.IncludeResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", l.p.title("Include"), l.ruleLine(res.Rule))

	l.list(&b, "-", l.p.removed, res.Removed)
	l.status(&b, status{
		verb:       "Include",
		count:      len(res.Removed),
		declined:   res.Declined,
		dryRun:     res.DryRun,
		written:    res.Written,
		restartErr: res.RestartErr,
	})
	return strings.TrimRight(b.String(), "\n")
}

// RenderAdd renders a registration followed by its job
func (l layout) RenderAdd(res *commands.AddResult) string {
	var b strings.Builder
	if res.Registered {
		fmt.Fprintf(&b, "%s Registered %s\n", l.p.okMark, l.ruleLine(res.Rule))
	} else {
		fmt.Fprintf(&b, "%s\n", l.p.muted("Dry run: would register "+res.Rule.String()))
	}
	if res.Job != nil {
		b.WriteString(l.RenderJob(res.Job))
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderRemove renders an unregistration followed by its include
func (l layout) RenderRemove(res *commands.RemoveResult) string {
	var b strings.Builder
	switch {
	case res.Unregistered:
		fmt.Fprintf(&b, "%s Unregistered %s\n", l.p.okMark, l.ruleLine(res.Rule))
	case !res.WasRegistered:
		fmt.Fprintf(&b, "%s %s was not registered\n", l.p.warnMark, l.ruleLine(res.Rule))
	default:
		fmt.Fprintf(&b, "%s\n", l.p.muted("Dry run: would unregister "+res.Rule.String()))
	}
	if res.Include != nil {
		b.WriteString(l.RenderInclude(res.Include))
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderList renders registered rules, with their store entries when asked
func (l layout) RenderList(res *commands.ListResult) string {
	if len(res.Rules) == 0 {
		return l.p.muted("No rules registered.")
	}

	var b strings.Builder
	for _, listing := range res.Rules {
		fmt.Fprintf(&b, "%s %s\n", l.p.bullet, l.ruleLine(listing.Rule))
		if !res.ShowPaths {
			continue
		}
		if len(listing.Paths) == 0 {
			fmt.Fprintf(&b, "    %s\n", l.p.muted("(no excluded paths)"))
			continue
		}
		for _, p := range listing.Paths {
			fmt.Fprintf(&b, "    %s\n", l.p.path(p))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderJob renders a job report
func (l layout) RenderJob(report *orchestration.JobReport) string {
	var b strings.Builder

	rulesNoun := "rules"
	if report.RulesEvaluated == 1 {
		rulesNoun = "rule"
	}
	fmt.Fprintf(&b, "%s %s\n", l.p.title("Job"), l.p.muted(fmt.Sprintf("evaluated %d %s, %d matches", report.RulesEvaluated, rulesNoun, len(report.Discovered))))

	for _, re := range report.RuleErrors {
		fmt.Fprintf(&b, "  %s %s: %s\n", l.p.errMark, l.ruleLine(re.Rule), re.Err.Error())
	}

	l.list(&b, "+", l.p.added, report.Added)
	if report.DuplicatesRemoved > 0 {
		fmt.Fprintf(&b, "%s\n", l.p.muted(fmt.Sprintf("Collapsed %d duplicate store entries.", report.DuplicatesRemoved)))
	}
	l.status(&b, status{
		verb:       "Exclude",
		count:      len(report.Added),
		declined:   report.Declined,
		dryRun:     report.DryRun,
		written:    report.Written,
		restartErr: report.RestartErr,
	})
	return strings.TrimRight(b.String(), "\n")
}

// Render dispatches a command result to the matching Renderer method.
// It reports false for types it does not know.
func Render(r Renderer, result interface{}) (string, bool) {
	switch v := result.(type) {
	case *commands.ExcludeResult:
		return r.RenderExclude(v), true
	case *commands.IncludeResult:
		return r.RenderInclude(v), true
	case *commands.AddResult:
		return r.RenderAdd(v), true
	case *commands.RemoveResult:
		return r.RenderRemove(v), true
	case *commands.ListResult:
		return r.RenderList(v), true
	case *orchestration.JobReport:
		return r.RenderJob(v), true
	default:
		return "", false
	}
}
