package fmtx

import (
	"go.uber.org/zap"

	"github.com/itsatony/go-fmtx/internal"
)

// Option is a functional option for configuring the Engine.
type Option func(*engineConfig)

// engineConfig holds the internal configuration for an Engine.
type engineConfig struct {
	markers internal.Markers
	ambient func() string
	logger  *zap.Logger
	storage TemplateStorage
}

// defaultEngineConfig returns the default engine configuration.
func defaultEngineConfig() *engineConfig {
	return &engineConfig{
		markers: internal.DefaultMarkers(),
		ambient: func() string { return "" },
		logger:  nil,
	}
}

// WithMarkers sets the byte sequences wrapped around defective
// substitutions in the output.
// Default: the VT reverse-video escape pair.
func WithMarkers(begin, end string) Option {
	return func(c *engineConfig) {
		c.markers = internal.Markers{Begin: begin, End: end}
	}
}

// WithAmbientError sets the source for the `{m}` placeholder. The
// function is called once at the start of each format call, before any
// argument is rendered.
// Default: a source that returns the empty string.
func WithAmbientError(source func() string) Option {
	return func(c *engineConfig) {
		if source != nil {
			c.ambient = source
		}
	}
}

// WithLogger sets the logger for the engine.
// Default: a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *engineConfig) {
		c.logger = logger
	}
}

// WithStorage attaches a template catalog backend, enabling FormatNamed
// and the Save/Load helpers.
// Default: no storage.
func WithStorage(storage TemplateStorage) Option {
	return func(c *engineConfig) {
		c.storage = storage
	}
}
