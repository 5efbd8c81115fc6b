package fmtx

import (
	"context"

	"go.uber.org/zap"

	"github.com/itsatony/go-fmtx/internal"
)

// Engine formats templates. A single Engine is safe for concurrent use;
// each format call carries its own state.
//
// Format and Render never fail: defective templates, missing arguments,
// and type mismatches all surface as marker-wrapped text inside the
// result, never as an error value or a panic. The strict counterparts
// (Parse, Check) exist for callers that want templates validated up
// front.
type Engine struct {
	markers internal.Markers
	ambient func() string
	logger  *zap.Logger
	storage TemplateStorage
}

// New creates an Engine with the given options.
func New(opts ...Option) *Engine {
	config := defaultEngineConfig()
	for _, opt := range opts {
		opt(config)
	}

	logger := config.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	e := &Engine{
		markers: config.markers,
		ambient: config.ambient,
		logger:  logger,
		storage: config.storage,
	}
	logger.Debug(LogMsgEngineCreated)
	return e
}

// Format renders the template with the given arguments. It always
// returns a usable string; see the Engine doc for the failure contract.
func (e *Engine) Format(template string, args ...Value) (result string) {
	defer func() {
		if r := recover(); r != nil {
			result = e.markers.Begin + ErrMsgParseFailed + e.markers.End
		}
	}()

	e.logger.Debug(LogMsgFormatStart,
		zap.Int(LogFieldTemplateLen, len(template)),
		zap.Int(LogFieldArgCount, len(args)))

	f := internal.NewFormatter(len(args), template, e.captureAmbient(), e.markers, e.logger)
	for i, arg := range args {
		renderValue(f, i, arg)
	}

	result = f.Finish()
	e.logger.Debug(LogMsgFormatDone, zap.Int(LogFieldResultLen, len(result)))
	return result
}

// Formatf renders the template binding ordinary Go values via Bind.
func (e *Engine) Formatf(template string, args ...any) string {
	return e.Format(template, BindAll(args...)...)
}

// FormatNamed loads the latest version of a stored template by name and
// renders it. The error reports storage problems only; rendering itself
// keeps the never-fail contract.
func (e *Engine) FormatNamed(ctx context.Context, name string, args ...Value) (string, error) {
	if e.storage == nil {
		return "", NewNoStorageError()
	}

	stored, err := e.storage.Get(ctx, name)
	if err != nil {
		return "", err
	}

	e.logger.Debug(LogMsgTemplateLoaded,
		zap.String(LogFieldTemplateName, name),
		zap.Int(LogFieldVersion, stored.Version))
	return e.Format(stored.Source, args...), nil
}

// Storage returns the configured catalog backend, or nil.
func (e *Engine) Storage() TemplateStorage {
	return e.storage
}

// captureAmbient reads the ambient error source once. A panicking
// source counts as no ambient error.
func (e *Engine) captureAmbient() (text string) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Debug(LogMsgAmbientPanic, zap.Any(LogFieldPanicValue, r))
			text = ""
		}
	}()
	return e.ambient()
}

// renderValue dispatches one argument to the per-kind renderer.
func renderValue(f *internal.Formatter, i int, v Value) {
	switch v.kind {
	case KindInt:
		f.RenderInt(i, v.i)
	case KindUint:
		f.RenderUint(i, v.u)
	case KindFloat:
		f.RenderFloat(i, v.f)
	case KindString:
		f.RenderString(i, v.s)
	case KindBytes:
		f.RenderBytes(i, v.b)
	case KindChar:
		f.RenderChar(i, byte(v.u))
	case KindPtr:
		f.RenderPtr(i, uintptr(v.u))
	}
}
