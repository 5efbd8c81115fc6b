package internal

import "fmt"

// Lint reasons
const (
	ReasonMalformedSpec = "malformed format specification"
	ReasonStrayBrace    = "unmatched close brace"
	ReasonMissingArg    = "argument index out of range"
)

// Issue describes one defect found in a template. Offset and End bound
// the offending source text.
type Issue struct {
	Offset int
	End    int
	Reason string
}

func (i Issue) String() string {
	return fmt.Sprintf("offset %d: %s", i.Offset, i.Reason)
}

// Lint walks a template the same way the scanner does and reports every
// substitution the scanner would have to mark, without producing output.
// A nil return means the template renders cleanly with nargs arguments.
func Lint(template string, nargs int) []Issue {
	var issues []Issue
	var spec Spec
	defaultIndex := uint64(0)

	for i := 0; i < len(template); i++ {
		c := template[i]
		if c == CharCloseBrace {
			if at(template, i+1) == CharCloseBrace {
				i++
				continue
			}
			issues = append(issues, Issue{Offset: i, End: i + 1, Reason: ReasonStrayBrace})
			continue
		}
		if c != CharOpenBrace {
			continue
		}
		if at(template, i+1) == CharOpenBrace {
			i++
			continue
		}

		spec.Reset()
		end := ParseSpec(template, i+1, defaultIndex, &spec)

		switch {
		case spec.ArgIndex == IndexInvalid:
			issues = append(issues, Issue{Offset: i, End: end, Reason: ReasonMalformedSpec})
		case spec.ArgIndex != IndexErrno && spec.ArgIndex >= uint64(nargs):
			issues = append(issues, Issue{Offset: i, End: end, Reason: ReasonMissingArg})
		}

		if spec.ArgIndex == defaultIndex {
			defaultIndex++
		}
		i = end - 1
	}
	return issues
}
