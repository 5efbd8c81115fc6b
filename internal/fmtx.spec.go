package internal

import (
	"math"
	"strconv"
	"strings"
)

// Sentinel argument indices. Both compare greater than any real argument
// index as uint64, so a single unsigned comparison against the argument
// count distinguishes real indices from sentinels.
const (
	// IndexErrno marks a spec that substitutes the captured ambient
	// error text (the `{m}` placeholder).
	IndexErrno uint64 = math.MaxUint64 - 1

	// IndexInvalid marks an unused or ill-formed spec, and terminates
	// NextSame chains.
	IndexInvalid uint64 = math.MaxUint64
)

// Spec is one parsed substitution directive.
//
// Specs live in a flat arena ([]Spec): the first nargs entries are heads
// indexed by argument position, later entries are extra specs reached via
// NextSame when several placeholders consume the same argument.
type Spec struct {
	// ArgIndex is the argument position this spec consumes, or a sentinel.
	ArgIndex uint64

	// NextSame is the arena index of the next spec with the same
	// argument index, IndexInvalid at the end of the chain.
	NextSame uint64

	// Target is the segment slot this spec renders into.
	Target uint64

	Width     uint
	Precision uint

	Type  byte // presentation code, 0 when absent
	Align byte // '<' '>' '^' '=', 0 when absent
	Fill  byte // pad character, ' ' by default
	Sign  byte // '+' '-' ' ', '-' by default (no forced sign)

	HasWidth      bool
	HasPrecision  bool
	AlternateForm bool
}

// NewSpec returns a spec in its reset (invalid) state.
func NewSpec() Spec {
	var s Spec
	s.Reset()
	return s
}

// Reset restores the zero/default state. The spec is invalid afterwards.
func (s *Spec) Reset() {
	*s = Spec{
		ArgIndex: IndexInvalid,
		NextSame: IndexInvalid,
		Target:   IndexInvalid,
		Fill:     CharSpace,
		Sign:     CharMinus,
	}
}

// String renders the spec back into placeholder syntax. Parsing the
// result yields an equivalent spec; used for diagnostics and round-trip
// tests.
func (s *Spec) String() string {
	var b strings.Builder
	b.WriteByte(CharOpenBrace)

	switch s.ArgIndex {
	case IndexInvalid:
		// no index
	case IndexErrno:
		b.WriteByte(CharErrnoIndex)
	default:
		b.WriteString(strconv.FormatUint(s.ArgIndex, 10))
	}

	if s.hasBody() {
		b.WriteByte(CharColon)
		if s.Align != 0 {
			b.WriteByte(s.Fill)
			b.WriteByte(s.Align)
		}
		if s.Sign != CharMinus {
			b.WriteByte(s.Sign)
		}
		if s.AlternateForm {
			b.WriteByte(CharHash)
		}
		if s.HasWidth {
			b.WriteString(strconv.FormatUint(uint64(s.Width), 10))
		}
		if s.HasPrecision {
			b.WriteByte(CharDot)
			b.WriteString(strconv.FormatUint(uint64(s.Precision), 10))
		}
		if s.Type != 0 {
			b.WriteByte(s.Type)
		}
	}

	b.WriteByte(CharCloseBrace)
	return b.String()
}

func (s *Spec) hasBody() bool {
	return s.Align != 0 || s.Sign != CharMinus || s.AlternateForm ||
		s.HasWidth || s.HasPrecision || s.Type != 0
}
