package json

import (
	"github.com/arthur-debert/spotlight-manager/pkg/commands"
	"github.com/arthur-debert/spotlight-manager/pkg/orchestration"
	"github.com/arthur-debert/spotlight-manager/pkg/rules"
)

// The result structs carry error values, which encoding/json writes as
// empty objects. Views flatten them to strings and fix the field names.

type ruleView struct {
	Name       string `json:"name"`
	Base       string `json:"base"`
	Expression string `json:"expression"`
}

type excludeView struct {
	Rule         ruleView `json:"rule"`
	Matches      []string `json:"matches"`
	Added        []string `json:"added"`
	Declined     bool     `json:"declined"`
	DryRun       bool     `json:"dryRun"`
	Written      bool     `json:"written"`
	RestartError string   `json:"restartError,omitempty"`
}

type includeView struct {
	Rule         ruleView `json:"rule"`
	Removed      []string `json:"removed"`
	Declined     bool     `json:"declined"`
	DryRun       bool     `json:"dryRun"`
	Written      bool     `json:"written"`
	RestartError string   `json:"restartError,omitempty"`
}

type ruleErrorView struct {
	Rule  ruleView `json:"rule"`
	Error string   `json:"error"`
}

type jobView struct {
	RulesEvaluated    int             `json:"rulesEvaluated"`
	Discovered        []string        `json:"discovered"`
	Added             []string        `json:"added"`
	DuplicatesRemoved int             `json:"duplicatesRemoved"`
	RuleErrors        []ruleErrorView `json:"ruleErrors"`
	Declined          bool            `json:"declined"`
	DryRun            bool            `json:"dryRun"`
	Written           bool            `json:"written"`
	RestartError      string          `json:"restartError,omitempty"`
}

type addView struct {
	Rule       ruleView `json:"rule"`
	Registered bool     `json:"registered"`
	Job        *jobView `json:"job,omitempty"`
}

type removeView struct {
	Rule          ruleView     `json:"rule"`
	Unregistered  bool         `json:"unregistered"`
	WasRegistered bool         `json:"wasRegistered"`
	Include       *includeView `json:"include,omitempty"`
}

type listingView struct {
	Rule  ruleView `json:"rule"`
	Paths []string `json:"paths,omitempty"`
}

type listView struct {
	Rules []listingView `json:"rules"`
}

func toView(result interface{}) interface{} {
	switch v := result.(type) {
	case *commands.ExcludeResult:
		return excludeToView(v)
	case *commands.IncludeResult:
		return includeToView(v)
	case *commands.AddResult:
		return addView{Rule: ruleToView(v.Rule), Registered: v.Registered, Job: jobToView(v.Job)}
	case *commands.RemoveResult:
		return removeView{
			Rule:          ruleToView(v.Rule),
			Unregistered:  v.Unregistered,
			WasRegistered: v.WasRegistered,
			Include:       includeToView(v.Include),
		}
	case *commands.ListResult:
		view := listView{Rules: make([]listingView, 0, len(v.Rules))}
		for _, l := range v.Rules {
			lv := listingView{Rule: ruleToView(l.Rule)}
			if v.ShowPaths {
				lv.Paths = nonNil(l.Paths)
			}
			view.Rules = append(view.Rules, lv)
		}
		return view
	case *orchestration.JobReport:
		return jobToView(v)
	default:
		return result
	}
}

func ruleToView(r rules.Rule) ruleView {
	return ruleView{Name: r.Name, Base: r.Base, Expression: r.Expression()}
}

func excludeToView(r *commands.ExcludeResult) *excludeView {
	if r == nil {
		return nil
	}
	return &excludeView{
		Rule:         ruleToView(r.Rule),
		Matches:      nonNil(r.Matches),
		Added:        nonNil(r.Added),
		Declined:     r.Declined,
		DryRun:       r.DryRun,
		Written:      r.Written,
		RestartError: errString(r.RestartErr),
	}
}

func includeToView(r *commands.IncludeResult) *includeView {
	if r == nil {
		return nil
	}
	return &includeView{
		Rule:         ruleToView(r.Rule),
		Removed:      nonNil(r.Removed),
		Declined:     r.Declined,
		DryRun:       r.DryRun,
		Written:      r.Written,
		RestartError: errString(r.RestartErr),
	}
}

func jobToView(r *orchestration.JobReport) *jobView {
	if r == nil {
		return nil
	}
	view := &jobView{
		RulesEvaluated:    r.RulesEvaluated,
		Discovered:        nonNil(r.Discovered),
		Added:             nonNil(r.Added),
		DuplicatesRemoved: r.DuplicatesRemoved,
		RuleErrors:        make([]ruleErrorView, 0, len(r.RuleErrors)),
		Declined:          r.Declined,
		DryRun:            r.DryRun,
		Written:           r.Written,
		RestartError:      errString(r.RestartErr),
	}
	for _, re := range r.RuleErrors {
		view.RuleErrors = append(view.RuleErrors, ruleErrorView{Rule: ruleToView(re.Rule), Error: errString(re.Err)})
	}
	return view
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
