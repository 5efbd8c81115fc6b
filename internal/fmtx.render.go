package internal

import (
	"bytes"
	"strings"
)

// alignField lays out an already-stringified payload according to the
// spec's width, fill and alignment, optionally wrapping the result in
// error markers. typ decides the default alignment: left for string and
// char payloads, right for everything else.
func alignField(payload string, spec *Spec, typ byte, isErr bool, m Markers) string {
	var b strings.Builder
	if isErr {
		b.WriteString(m.Begin)
	}

	if !spec.HasWidth || int(spec.Width) <= len(payload) {
		b.WriteString(payload)
	} else {
		pad := int(spec.Width) - len(payload)
		align := spec.Align
		if align == 0 {
			if typ == TypeString || typ == TypeChar {
				align = AlignLeft
			} else {
				align = AlignRight
			}
		}

		switch align {
		case AlignLeft:
			b.WriteString(payload)
			writePad(&b, spec.Fill, pad)

		case AlignRight:
			writePad(&b, spec.Fill, pad)
			b.WriteString(payload)

		case AlignCenter:
			// An odd pad byte goes on the right.
			writePad(&b, spec.Fill, pad/2)
			b.WriteString(payload)
			writePad(&b, spec.Fill, pad/2+pad%2)

		default: // AlignAfter: pad between the leading prefix and the digits
			leading := 0
			if typ != TypeString && typ != TypeChar &&
				((len(payload) > 0 && payload[0] == CharMinus) || spec.Sign != CharMinus) {
				leading = 1
			}
			if spec.AlternateForm &&
				(typ == TypeOctal || typ == TypeHex || typ == TypeHexUpper) {
				leading += 2
			}
			if leading > len(payload) {
				leading = len(payload)
			}
			b.WriteString(payload[:leading])
			writePad(&b, spec.Fill, pad)
			b.WriteString(payload[leading:])
		}
	}

	if isErr {
		b.WriteString(m.End)
	}
	return b.String()
}

func writePad(b *strings.Builder, fill byte, n int) {
	for ; n > 0; n-- {
		b.WriteByte(fill)
	}
}

// renderChar renders an integer intended as a one-byte character. Values
// that do not fit a single byte, and type codes other than c/s, fall
// through to unsigned decimal with the error flag forced on. Most
// modifiers besides width and alignment are ignored; an explicit zero
// precision yields the empty string.
func renderChar(val uint64, spec *Spec, m Markers) string {
	if (spec.Type == TypeChar || spec.Type == TypeString) && val <= 0xff {
		if spec.HasPrecision && spec.Precision == 0 {
			return alignField("", spec, spec.Type, false, m)
		}
		return alignField(string([]byte{byte(val)}), spec, spec.Type, false, m)
	}
	return numericInt(val, false, spec, TypeUnsigned, true, m)
}

// renderString renders an owned string payload: truncate to precision,
// then pad to width. A type code other than 's' flags the substitution
// as an error but still renders the string.
func renderString(val string, spec *Spec, m Markers) string {
	if spec.HasPrecision && uint(len(val)) > spec.Precision {
		val = val[:spec.Precision]
	}
	return alignField(val, spec, TypeString, spec.Type != TypeString, m)
}

// renderBytes renders a raw byte-slice payload with C-string semantics:
// scanning stops at the first NUL byte or at precision, whichever comes
// first.
func renderBytes(val []byte, spec *Spec, m Markers) string {
	if n := bytes.IndexByte(val, CharNul); n >= 0 {
		val = val[:n]
	}
	if spec.HasPrecision && uint(len(val)) > spec.Precision {
		val = val[:spec.Precision]
	}
	return alignField(string(val), spec, TypeString, spec.Type != TypeString, m)
}
