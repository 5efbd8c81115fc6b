package internal

// Character constants
const (
	CharOpenBrace  = '{'
	CharCloseBrace = '}'
	CharColon      = ':'
	CharDot        = '.'
	CharHash       = '#'
	CharZero       = '0'
	CharSpace      = ' '
	CharPlus       = '+'
	CharMinus      = '-'
	CharErrnoIndex = 'm'
	CharNul        = 0
)

// Alignment codes
const (
	AlignLeft   = '<'
	AlignRight  = '>'
	AlignCenter = '^'
	AlignAfter  = '=' // pad between sign/base prefix and digits
)

// Presentation type codes
const (
	TypeString   = 's'
	TypeChar     = 'c'
	TypeDecimal  = 'd'
	TypeUnsigned = 'u'
	TypeOctal    = 'o'
	TypeHex      = 'x'
	TypeHexUpper = 'X'
	TypeSci      = 'e'
	TypeSciUpper = 'E'
	TypeFixed    = 'f'
	TypeFixedUp  = 'F'
	TypeGeneral  = 'g'
	TypeGenUpper = 'G'
)

// Error markers: defective substitutions are embedded inline in the
// output, wrapped in VT reverse-video escapes so they stand out without
// needing a second error channel.
const (
	DefaultBeginMark = "\x1b[7m"
	DefaultEndMark   = "\x1b[27m"
)

// Marker payloads for scanner-level defects
const (
	MissingArgText = "[missing]"
	StrayBraceText = "}"
)

// Base prefixes emitted for the alternate form. Always the Python shapes,
// never the C-style bare leading zero for octal.
const (
	PrefixOctal    = "0o"
	PrefixHex      = "0x"
	PrefixHexUpper = "0X"
)

// Float formatting defaults
const (
	DefaultFloatPrecision = 6
	MaxParsedNumber       = 1 << 32 // parsed index/width/precision saturate here
)

// Log message constants
const (
	LogMsgScanStart      = "starting template scan"
	LogMsgScanEnd        = "template scan complete"
	LogMsgScanRecovered  = "template scan recovered from panic"
	LogMsgRenderRecover  = "substitution recovered from panic"
	LogMsgFormatterReady = "formatter constructed"
)

// Log field names
const (
	LogFieldTemplate = "template_length"
	LogFieldSegments = "segment_count"
	LogFieldSpecs    = "spec_count"
	LogFieldArgs     = "arg_count"
	LogFieldArgIndex = "arg_index"
	LogFieldPanic    = "panic_value"
)

// Markers is the pair of byte sequences wrapped around defective
// substitutions in the output.
type Markers struct {
	Begin string
	End   string
}

// DefaultMarkers returns the reverse-video escape pair.
func DefaultMarkers() Markers {
	return Markers{Begin: DefaultBeginMark, End: DefaultEndMark}
}

// isAlign reports whether c is an alignment code.
func isAlign(c byte) bool {
	return c == AlignLeft || c == AlignRight || c == AlignCenter || c == AlignAfter
}

// isDigit reports whether c is a decimal digit.
func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isTypeCode reports whether c is a presentation type code.
func isTypeCode(c byte) bool {
	switch c {
	case TypeString, TypeChar,
		TypeDecimal, TypeUnsigned, TypeOctal, TypeHex, TypeHexUpper,
		TypeSci, TypeSciUpper, TypeFixed, TypeFixedUp, TypeGeneral, TypeGenUpper:
		return true
	}
	return false
}
