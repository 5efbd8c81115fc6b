package internal

import (
	"math"
	"strconv"
	"strings"
)

// numericInt renders an integer magnitude with sign, optional base
// prefix, base and case per the type code, then hands off to alignField.
// Precision has no effect on integer renderings.
func numericInt(uval uint64, neg bool, spec *Spec, typ byte, isErr bool, m Markers) string {
	var b strings.Builder
	writeSign(&b, neg, spec)
	writeBasePrefix(&b, spec, typ)

	switch typ {
	case TypeOctal:
		b.WriteString(strconv.FormatUint(uval, 8))
	case TypeHex:
		b.WriteString(strconv.FormatUint(uval, 16))
	case TypeHexUpper:
		b.WriteString(strings.ToUpper(strconv.FormatUint(uval, 16)))
	default: // TypeDecimal, TypeUnsigned
		b.WriteString(strconv.FormatUint(uval, 10))
	}

	return alignField(b.String(), spec, typ, isErr, m)
}

// numericFloat renders a floating point value per the type code:
// 'e'/'E' scientific and 'f'/'F' fixed always show a decimal point,
// 'g'/'G' trims to significant digits without forcing one. Precision is
// digits after the point for e/f and total significant digits for g;
// the default is 6 either way. The alternate form forces a visible
// decimal point on renderings that would otherwise drop it.
func numericFloat(val float64, spec *Spec, typ byte, isErr bool, m Markers) string {
	var b strings.Builder

	v := val
	neg := v < 0
	if neg {
		v = -v
	}
	writeSign(&b, neg, spec)

	prec := DefaultFloatPrecision
	if spec.HasPrecision {
		prec = int(spec.Precision)
	}

	var body string
	switch {
	case math.IsNaN(v):
		body = "nan"
	case math.IsInf(v, 0):
		body = "inf"
	case typ == TypeSci || typ == TypeSciUpper:
		verb := byte('e')
		if typ == TypeSciUpper {
			verb = 'E'
		}
		body = strconv.FormatFloat(v, verb, prec, 64)
		if prec == 0 {
			body = forcePoint(body)
		}
	case typ == TypeFixed || typ == TypeFixedUp:
		body = strconv.FormatFloat(v, 'f', prec, 64)
		if prec == 0 {
			body += "."
		}
	default: // TypeGeneral, TypeGenUpper
		if prec == 0 {
			prec = 1
		}
		verb := byte('g')
		if typ == TypeGenUpper {
			verb = 'G'
		}
		body = strconv.FormatFloat(v, verb, prec, 64)
		if spec.AlternateForm {
			body = forcePoint(body)
		}
	}
	b.WriteString(body)

	return alignField(b.String(), spec, typ, isErr, m)
}

// forcePoint inserts a decimal point into a rendering that lacks one,
// before the exponent when present.
func forcePoint(s string) string {
	if strings.ContainsRune(s, '.') || s == "nan" || s == "inf" {
		return s
	}
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		return s[:i] + "." + s[i:]
	}
	return s + "."
}

// writeSign emits a leading '-' for negative magnitudes, else the
// requested explicit sign byte when one was requested.
func writeSign(b *strings.Builder, neg bool, spec *Spec) {
	if neg {
		b.WriteByte(CharMinus)
	} else if spec.Sign != CharMinus {
		b.WriteByte(spec.Sign)
	}
}

// writeBasePrefix emits the alternate-form base prefix directly after the
// sign, before the digits.
func writeBasePrefix(b *strings.Builder, spec *Spec, typ byte) {
	if !spec.AlternateForm {
		return
	}
	switch typ {
	case TypeOctal:
		b.WriteString(PrefixOctal)
	case TypeHex:
		b.WriteString(PrefixHex)
	case TypeHexUpper:
		b.WriteString(PrefixHexUpper)
	}
}

// renderSigned dispatches a signed integer through the coercion table:
// integer codes render directly, float codes convert the value to
// floating point, anything else falls back to signed decimal with the
// error flag set. The magnitude of the most negative value is taken in
// unsigned arithmetic so it cannot overflow.
func renderSigned(val int64, spec *Spec, m Markers) string {
	neg := val < 0
	uval := uint64(val)
	if neg {
		uval = -uval
	}

	switch spec.Type {
	case TypeUnsigned, TypeDecimal, TypeOctal, TypeHex, TypeHexUpper:
		return numericInt(uval, neg, spec, spec.Type, false, m)
	case TypeSci, TypeSciUpper, TypeFixed, TypeFixedUp, TypeGeneral, TypeGenUpper:
		return numericFloat(float64(val), spec, spec.Type, false, m)
	default:
		return numericInt(uval, neg, spec, TypeDecimal, true, m)
	}
}

// renderUnsigned is the unsigned-integer analog of renderSigned; the
// fallback is unsigned decimal with the error flag set.
func renderUnsigned(val uint64, spec *Spec, m Markers) string {
	switch spec.Type {
	case TypeUnsigned, TypeDecimal, TypeOctal, TypeHex, TypeHexUpper:
		return numericInt(val, false, spec, spec.Type, false, m)
	case TypeSci, TypeSciUpper, TypeFixed, TypeFixedUp, TypeGeneral, TypeGenUpper:
		return numericFloat(float64(val), spec, spec.Type, false, m)
	default:
		return numericInt(val, false, spec, TypeUnsigned, true, m)
	}
}

// renderFloat dispatches a float: float codes render directly, integer
// codes reinterpret the bit pattern as an unsigned integer, anything
// else falls back to general notation with the error flag set.
func renderFloat(val float64, spec *Spec, m Markers) string {
	switch spec.Type {
	case TypeSci, TypeSciUpper, TypeFixed, TypeFixedUp, TypeGeneral, TypeGenUpper:
		return numericFloat(val, spec, spec.Type, false, m)
	case TypeUnsigned, TypeDecimal, TypeOctal, TypeHex, TypeHexUpper:
		return numericInt(math.Float64bits(val), false, spec, spec.Type, false, m)
	default:
		return numericFloat(val, spec, TypeGeneral, true, m)
	}
}
