package internal

import (
	"strings"

	"go.uber.org/zap"
)

// ScanResult is the output of one template scan: the segment list and the
// spec arena, plus the head of the ambient-error chain.
//
// Segs alternates literal runs and empty placeholder slots; concatenating
// it in order after rendering yields the final string. The first nargs
// entries of Specs are chain heads addressed by argument index; entries
// past nargs are extras discovered when several placeholders consume the
// same argument, linked through NextSame.
type ScanResult struct {
	Segs  []string
	Specs []Spec
	Errno Spec
}

// Scan walks the template left to right exactly once and splits it into
// literal segments and placeholder slots.
//
// Doubled braces escape literal braces unconditionally. A stray '}' and
// any ill-formed placeholder are emitted as marker-wrapped literals and
// the scan continues; a reference to an argument position >= nargs
// becomes a marker-wrapped missing-argument literal and produces no spec.
// Scan never fails on malformed input.
func Scan(template string, nargs int, m Markers, logger *zap.Logger) *ScanResult {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug(LogMsgScanStart,
		zap.Int(LogFieldTemplate, len(template)),
		zap.Int(LogFieldArgs, nargs))

	res := &ScanResult{
		Segs:  make([]string, 0, nargs*2+1),
		Specs: make([]Spec, nargs),
		Errno: NewSpec(),
	}
	for i := range res.Specs {
		res.Specs[i].Reset()
	}

	var cseg strings.Builder
	defaultIndex := uint64(0)
	var extras []Spec

	for i := 0; i < len(template); {
		c := template[i]
		switch {
		case c == CharOpenBrace:
			if at(template, i+1) == CharOpenBrace {
				cseg.WriteByte(CharOpenBrace)
				i += 2
				continue
			}
			spec := NewSpec()
			end := ParseSpec(template, i+1, defaultIndex, &spec)
			switch {
			case spec.ArgIndex == IndexInvalid:
				cseg.WriteString(m.Begin)
				cseg.WriteString(template[i:end])
				cseg.WriteString(m.End)
			case spec.ArgIndex != IndexErrno && spec.ArgIndex >= uint64(nargs):
				// Well-formed, but requests an argument that isn't there.
				cseg.WriteString(m.Begin)
				cseg.WriteString(MissingArgText)
				cseg.WriteString(m.End)
			default:
				res.Segs = append(res.Segs, cseg.String(), "")
				cseg.Reset()

				spec.Target = uint64(len(res.Segs) - 1)
				head := res.head(spec.ArgIndex)
				if head.ArgIndex == IndexInvalid {
					*head = spec
				} else {
					extras = append(extras, spec)
				}
			}
			if spec.ArgIndex == defaultIndex {
				defaultIndex++
			}
			i = end

		case c == CharCloseBrace:
			if at(template, i+1) == CharCloseBrace {
				cseg.WriteByte(CharCloseBrace)
				i += 2
			} else {
				cseg.WriteString(m.Begin)
				cseg.WriteString(StrayBraceText)
				cseg.WriteString(m.End)
				i++
			}

		default:
			cseg.WriteByte(c)
			i++
		}
	}
	res.Segs = append(res.Segs, cseg.String())

	// Thread the extras onto their chains. Quadratic in chain length,
	// but chains longer than one or two entries are rare.
	for _, ex := range extras {
		res.Specs = append(res.Specs, ex)
		sind := uint64(len(res.Specs) - 1)

		other := res.head(ex.ArgIndex)
		for other.NextSame != IndexInvalid {
			other = &res.Specs[other.NextSame]
		}
		other.NextSame = sind
	}

	logger.Debug(LogMsgScanEnd,
		zap.Int(LogFieldSegments, len(res.Segs)),
		zap.Int(LogFieldSpecs, len(res.Specs)))
	return res
}

// head returns the chain head for the given argument index.
func (r *ScanResult) head(argIndex uint64) *Spec {
	if argIndex == IndexErrno {
		return &r.Errno
	}
	return &r.Specs[argIndex]
}
