package fmtx

import (
	"go.uber.org/zap"

	"github.com/itsatony/go-fmtx/internal"
)

// Template is a validated template bound to the engine that parsed it.
// It exists for callers that want defects rejected up front instead of
// marked inline; Render itself keeps the never-fail contract.
type Template struct {
	source string
	nargs  int
	engine *Engine
}

// Parse validates the template against the given argument count and
// returns a reusable Template. The error is non-nil iff the template
// contains ill-formed placeholders, stray braces, or references to
// arguments past nargs; it carries the first defect's byte range as
// metadata.
func (e *Engine) Parse(template string, nargs int) (*Template, error) {
	if issues := Check(template, nargs); len(issues) > 0 {
		return nil, NewParseError(issues[0])
	}

	e.logger.Debug(LogMsgTemplateParsed,
		zap.Int(LogFieldTemplateLen, len(template)),
		zap.Int(LogFieldArgCount, nargs))
	return &Template{source: template, nargs: nargs, engine: e}, nil
}

// MustParse is Parse that panics on a defective template. Intended for
// templates fixed at compile time.
func (e *Engine) MustParse(template string, nargs int) *Template {
	t, err := e.Parse(template, nargs)
	if err != nil {
		panic(err)
	}
	return t
}

// Source returns the raw template text.
func (t *Template) Source() string { return t.source }

// NArgs returns the argument count the template was validated against.
func (t *Template) NArgs() int { return t.nargs }

// Render formats the template. Passing a different number of arguments
// than the template was validated against is not an error; surplus
// arguments are ignored and absent ones render as the missing-argument
// marker, same as Format.
func (t *Template) Render(args ...Value) string {
	return t.engine.Format(t.source, args...)
}

// Issue describes one defect found in a template: the byte range of the
// offending text and the reason it is rejected.
type Issue struct {
	Offset int
	End    int
	Reason string
}

func (i Issue) String() string {
	return internal.Issue{Offset: i.Offset, End: i.End, Reason: i.Reason}.String()
}

// Check reports every defect the forgiving renderer would mark inline
// when formatting the template with nargs arguments. A nil result means
// the template renders cleanly.
func Check(template string, nargs int) []Issue {
	found := internal.Lint(template, nargs)
	if len(found) == 0 {
		return nil
	}
	issues := make([]Issue, len(found))
	for i, f := range found {
		issues[i] = Issue{Offset: f.Offset, End: f.End, Reason: f.Reason}
	}
	return issues
}
