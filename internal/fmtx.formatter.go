package internal

import (
	"fmt"
	"math/bits"
	"strings"

	"go.uber.org/zap"
)

// Formatter drives one format call: it owns the segment list and spec
// arena for the duration of the call, accepts one rendering per argument
// position in order, and concatenates the segments at the end.
//
// Formatter never lets a failure escape. A panic inside one substitution
// replaces that substitution's segment with a marker-wrapped diagnostic;
// a panic during the scan collapses all state to a single diagnostic
// segment. The rest of the output is unaffected either way.
type Formatter struct {
	segs    []string
	specs   []Spec
	errno   Spec
	markers Markers
	logger  *zap.Logger
}

// NewFormatter scans the template and captures the ambient error text
// into any `{m}` slots immediately, before any argument is rendered.
func NewFormatter(nargs int, template, ambient string, m Markers, logger *zap.Logger) *Formatter {
	if logger == nil {
		logger = zap.NewNop()
	}
	f := &Formatter{
		markers: m,
		logger:  logger,
	}

	func() {
		defer func() {
			if r := recover(); r != nil {
				logger.Debug(LogMsgScanRecovered, zap.Any(LogFieldPanic, r))
				f.errno = NewSpec()
				f.specs = nil
				f.segs = []string{f.diagnose(r)}
			}
		}()

		res := Scan(template, nargs, m, logger)
		f.segs = res.Segs
		f.specs = res.Specs
		f.errno = res.Errno

		if f.errno.Target != IndexInvalid {
			f.renderChain(IndexErrno, func(sp Spec) string {
				if sp.Type == 0 {
					sp.Type = TypeString
				}
				return renderString(ambient, &sp, m)
			})
		}
	}()

	logger.Debug(LogMsgFormatterReady, zap.Int(LogFieldArgs, nargs))
	return f
}

// RenderInt renders a signed integer into every slot chained to argument i.
func (f *Formatter) RenderInt(i int, val int64) {
	f.renderChain(uint64(i), func(sp Spec) string {
		if sp.Type == 0 {
			sp.Type = TypeDecimal
		}
		if sp.Type == TypeChar {
			return renderChar(uint64(val), &sp, f.markers)
		}
		return renderSigned(val, &sp, f.markers)
	})
}

// RenderUint renders an unsigned integer into every slot chained to argument i.
func (f *Formatter) RenderUint(i int, val uint64) {
	f.renderChain(uint64(i), func(sp Spec) string {
		if sp.Type == 0 {
			sp.Type = TypeUnsigned
		}
		if sp.Type == TypeChar {
			return renderChar(val, &sp, f.markers)
		}
		return renderUnsigned(val, &sp, f.markers)
	})
}

// RenderFloat renders a float into every slot chained to argument i.
func (f *Formatter) RenderFloat(i int, val float64) {
	f.renderChain(uint64(i), func(sp Spec) string {
		if sp.Type == 0 {
			sp.Type = TypeGeneral
		}
		return renderFloat(val, &sp, f.markers)
	})
}

// RenderChar renders a single-byte character into every slot chained to
// argument i. Integer type codes format the byte's numeric value instead.
func (f *Formatter) RenderChar(i int, val byte) {
	f.renderChain(uint64(i), func(sp Spec) string {
		if sp.Type == 0 {
			sp.Type = TypeString
		}
		switch sp.Type {
		case TypeDecimal, TypeUnsigned, TypeOctal, TypeHex, TypeHexUpper:
			return renderUnsigned(uint64(val), &sp, f.markers)
		default:
			return renderChar(uint64(val), &sp, f.markers)
		}
	})
}

// RenderString renders an owned string into every slot chained to argument i.
func (f *Formatter) RenderString(i int, val string) {
	f.renderChain(uint64(i), func(sp Spec) string {
		if sp.Type == 0 {
			sp.Type = TypeString
		}
		return renderString(val, &sp, f.markers)
	})
}

// RenderBytes renders a raw byte payload (C-string semantics, stops at
// the first NUL) into every slot chained to argument i.
func (f *Formatter) RenderBytes(i int, val []byte) {
	f.renderChain(uint64(i), func(sp Spec) string {
		if sp.Type == 0 {
			sp.Type = TypeString
		}
		return renderBytes(val, &sp, f.markers)
	})
}

// RenderPtr renders a raw pointer into every slot chained to argument i:
// lowercase hexadecimal, zero-padded to the native pointer width unless
// the spec says otherwise.
func (f *Formatter) RenderPtr(i int, val uintptr) {
	f.renderChain(uint64(i), func(sp Spec) string {
		if sp.Type == 0 {
			sp.Type = TypeHex
		}
		if !sp.HasWidth {
			sp.HasWidth = true
			sp.Width = uint(bits.UintSize / 4)
			sp.Fill = CharZero
			sp.Align = AlignRight
		}
		return renderUnsigned(uint64(val), &sp, f.markers)
	})
}

// Finish concatenates all segments in scan order into the result.
func (f *Formatter) Finish() string {
	return strings.Join(f.segs, "")
}

// renderChain walks the spec chain for argument index i, rendering the
// same value into every slot that requested it. Each slot is written
// independently: a panic in one rendering call is contained to that slot.
func (f *Formatter) renderChain(i uint64, render func(Spec) string) {
	var sp *Spec
	if i == IndexErrno {
		sp = &f.errno
	} else {
		if i >= uint64(len(f.specs)) {
			return // argument not used
		}
		sp = &f.specs[i]
	}
	if sp.ArgIndex == IndexInvalid {
		return // argument not used
	}

	for {
		f.renderOne(*sp, render)

		i = sp.NextSame
		if i == IndexInvalid {
			break
		}
		sp = &f.specs[i]
	}
}

// renderOne writes a single slot, replacing it with a diagnostic if the
// rendering call panics.
func (f *Formatter) renderOne(sp Spec, render func(Spec) string) {
	defer func() {
		if r := recover(); r != nil {
			f.logger.Debug(LogMsgRenderRecover,
				zap.Uint64(LogFieldArgIndex, sp.ArgIndex),
				zap.Any(LogFieldPanic, r))
			if sp.Target < uint64(len(f.segs)) {
				f.segs[sp.Target] = f.diagnose(r)
			}
		}
	}()
	f.segs[sp.Target] = render(sp)
}

// diagnose turns a recovered panic value into a marker-wrapped inline
// diagnostic.
func (f *Formatter) diagnose(r any) string {
	var desc string
	switch v := r.(type) {
	case error:
		desc = v.Error()
	case string:
		desc = v
	default:
		desc = fmt.Sprintf("%v", v)
	}
	return f.markers.Begin + "[" + desc + "]" + f.markers.End
}
