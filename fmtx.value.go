package fmtx

import "fmt"

// Kind identifies which fundamental payload a Value carries.
type Kind int

const (
	// KindInt is a signed 64-bit integer.
	KindInt Kind = iota
	// KindUint is an unsigned 64-bit integer.
	KindUint
	// KindFloat is a 64-bit float.
	KindFloat
	// KindString is an owned string.
	KindString
	// KindBytes is a raw byte payload with C-string semantics (rendering
	// stops at the first NUL byte).
	KindBytes
	// KindChar is a single byte rendered as a character.
	KindChar
	// KindPtr is a raw pointer, rendered as zero-padded hexadecimal.
	KindPtr
)

// Value is one formatting argument. The engine formats exactly these
// seven payload kinds; callers convert anything else explicitly, either
// through the constructors or through Bind.
type Value struct {
	kind Kind
	i    int64
	u    uint64
	f    float64
	s    string
	b    []byte
}

// Int builds a signed integer value.
func Int(v int64) Value { return Value{kind: KindInt, i: v} }

// Uint builds an unsigned integer value.
func Uint(v uint64) Value { return Value{kind: KindUint, u: v} }

// Float builds a floating point value.
func Float(v float64) Value { return Value{kind: KindFloat, f: v} }

// Str builds a string value.
func Str(v string) Value { return Value{kind: KindString, s: v} }

// Bytes builds a raw byte value. Rendering stops at the first NUL byte.
func Bytes(v []byte) Value { return Value{kind: KindBytes, b: v} }

// Char builds a single-byte character value.
func Char(v byte) Value { return Value{kind: KindChar, u: uint64(v)} }

// Ptr builds a raw pointer value.
func Ptr(v uintptr) Value { return Value{kind: KindPtr, u: uint64(v)} }

// Kind returns the payload kind.
func (v Value) Kind() Kind { return v.kind }

// Bind maps an ordinary Go value onto the closed payload set. The
// mapping is an explicit type switch, not reflection: all signed integer
// widths become Int, unsigned widths become Uint, uint8 stays a Char,
// floats become Float, errors contribute their message, Stringers their
// String(), bools render as "true"/"false", and nil becomes a zero
// pointer. Anything unlisted falls back to fmt.Sprint.
func Bind(v any) Value {
	switch x := v.(type) {
	case Value:
		return x
	case int:
		return Int(int64(x))
	case int8:
		return Int(int64(x))
	case int16:
		return Int(int64(x))
	case int32:
		return Int(int64(x))
	case int64:
		return Int(x)
	case uint:
		return Uint(uint64(x))
	case uint8:
		return Char(x)
	case uint16:
		return Uint(uint64(x))
	case uint32:
		return Uint(uint64(x))
	case uint64:
		return Uint(x)
	case uintptr:
		return Ptr(x)
	case float32:
		return Float(float64(x))
	case float64:
		return Float(x)
	case string:
		return Str(x)
	case []byte:
		return Bytes(x)
	case bool:
		if x {
			return Str("true")
		}
		return Str("false")
	case error:
		return Str(x.Error())
	case fmt.Stringer:
		return Str(x.String())
	case nil:
		return Ptr(0)
	default:
		return Str(fmt.Sprint(v))
	}
}

// BindAll maps a slice of ordinary Go values with Bind.
func BindAll(vs ...any) []Value {
	out := make([]Value, len(vs))
	for i, v := range vs {
		out[i] = Bind(v)
	}
	return out
}
