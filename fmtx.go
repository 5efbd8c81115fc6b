// Package fmtx is a string formatting engine built on the Python format
// mini-language: templates contain `{}` placeholders with optional
// argument indices and `[[fill]align][sign]['#']['0'][width][.precision][type]`
// directives.
//
// The engine's defining property is that formatting never fails. Any
// defect in the template or the arguments is rendered inline, wrapped in
// configurable error markers, and the rest of the output is produced
// normally. This makes it safe to use on the error-reporting path
// itself, where a formatting function that can error out is worse than
// useless.
//
// Arguments are passed as a closed set of Value kinds built with Int,
// Uint, Float, Str, Bytes, Char and Ptr, or bound from ordinary Go
// values with Bind:
//
//	fmtx.Format("I have {} teapots", fmtx.Int(23))
//	fmtx.Format("{0:>8}", fmtx.Str("hi"))
//
// The special placeholder `{m}` substitutes an ambient error message,
// supplied per engine via WithAmbientError and captured once at the
// start of each call.
//
// Engines optionally carry a versioned template catalog (memory,
// filesystem or postgres backed) addressed by name through FormatNamed.
package fmtx

// defaultEngine backs the package-level entry points.
var defaultEngine = New()

// Format renders the template with the default engine. It never fails;
// defects are marked inline in the result.
func Format(template string, args ...Value) string {
	return defaultEngine.Format(template, args...)
}

// Formatf renders the template with the default engine, binding
// ordinary Go values via Bind.
func Formatf(template string, args ...any) string {
	return defaultEngine.Formatf(template, args...)
}
