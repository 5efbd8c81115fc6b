package fmtx

// Version is the library version.
const Version = "1.0.0"

// Error message constants - ALL error messages must be constants (NO MAGIC STRINGS)
const (
	// Parse errors
	ErrMsgMalformedSpec = "malformed format specification"
	ErrMsgStrayBrace    = "unmatched close brace"
	ErrMsgMissingArg    = "argument index out of range"
	ErrMsgParseFailed   = "template parsing failed"

	// Storage errors
	ErrMsgStorageClosed       = "storage is closed"
	ErrMsgTemplateNotFound    = "template not found"
	ErrMsgTemplateNameEmpty   = "template name cannot be empty"
	ErrMsgTemplateSourceEmpty = "template source cannot be empty"
	ErrMsgDriverNotFound      = "no storage driver registered under this name"
	ErrMsgDriverExists        = "storage driver already registered"
	ErrMsgNilDriver           = "storage driver is nil"
	ErrMsgStorageOpenFailed   = "failed to open storage backend"
	ErrMsgStorageIO           = "storage operation failed"
	ErrMsgNoStorage           = "engine has no storage configured"
)

// Error code constants for categorization
const (
	ErrCodeParse   = "FMTX_PARSE"
	ErrCodeStorage = "FMTX_STORAGE"
	ErrCodeConfig  = "FMTX_CONFIG"
)

// Metadata keys attached to structured errors
const (
	MetaKeyOffset   = "offset"
	MetaKeyEnd      = "end"
	MetaKeyTemplate = "template_name"
	MetaKeyVersion  = "version"
	MetaKeyDriver   = "driver"
	MetaKeyPath     = "path"
)

// Log message constants
const (
	LogMsgEngineCreated  = "engine created"
	LogMsgFormatStart    = "format call started"
	LogMsgFormatDone     = "format call finished"
	LogMsgAmbientPanic   = "ambient error source panicked"
	LogMsgTemplateParsed = "template parsed"
	LogMsgStorageOpened  = "storage backend opened"
	LogMsgTemplateSaved  = "template saved"
	LogMsgTemplateLoaded = "template loaded from storage"
)

// Log field name constants
const (
	LogFieldTemplateLen  = "template_length"
	LogFieldArgCount     = "arg_count"
	LogFieldResultLen    = "result_length"
	LogFieldIssueCount   = "issue_count"
	LogFieldTemplateName = "template_name"
	LogFieldVersion      = "version"
	LogFieldDriver       = "driver"
	LogFieldPanicValue   = "panic_value"
)
