package fmtx

import (
	"errors"
	"strconv"
	"strings"

	"github.com/itsatony/go-cuserr"
)

// NewParseError creates a strict parse error carrying the first defect's
// byte range as metadata. Format and Render never return this; only
// Parse does.
func NewParseError(issue Issue) error {
	return cuserr.NewValidationError(ErrCodeParse, issue.Reason).
		WithMetadata(MetaKeyOffset, strconv.Itoa(issue.Offset)).
		WithMetadata(MetaKeyEnd, strconv.Itoa(issue.End))
}

// NewTemplateNotFoundError creates an error for a template missing from
// a storage backend.
func NewTemplateNotFoundError(name string) error {
	return cuserr.NewNotFoundError(MetaKeyTemplate, ErrMsgTemplateNotFound).
		WithMetadata(MetaKeyTemplate, name)
}

// NewVersionNotFoundError creates an error for a missing template version.
func NewVersionNotFoundError(name string, version int) error {
	return cuserr.NewNotFoundError(MetaKeyTemplate, ErrMsgTemplateNotFound).
		WithMetadata(MetaKeyTemplate, name).
		WithMetadata(MetaKeyVersion, strconv.Itoa(version))
}

// NewStorageClosedError creates an error for operations on closed storage.
func NewStorageClosedError() error {
	return cuserr.NewInternalError(ErrMsgStorageClosed, nil)
}

// NewStorageError wraps a backend failure.
func NewStorageError(cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeStorage, ErrMsgStorageIO)
}

// NewDriverNotFoundError creates an error for an unregistered storage driver.
func NewDriverNotFoundError(name string) error {
	return cuserr.NewNotFoundError(MetaKeyDriver, ErrMsgDriverNotFound).
		WithMetadata(MetaKeyDriver, name)
}

// NewInvalidTemplateError creates a validation error for a StoredTemplate
// that cannot be saved.
func NewInvalidTemplateError(msg string) error {
	return cuserr.NewValidationError(ErrCodeStorage, msg)
}

// NewNoStorageError creates an error for storage operations on an engine
// without a configured backend.
func NewNoStorageError() error {
	return cuserr.NewValidationError(ErrCodeConfig, ErrMsgNoStorage)
}

// IsTemplateNotFound reports whether err is a template- or
// version-not-found error.
func IsTemplateNotFound(err error) bool {
	var cerr *cuserr.CustomError
	if !errors.As(err, &cerr) {
		return false
	}
	_, ok := cerr.GetMetadata(MetaKeyTemplate)
	return ok && strings.Contains(cerr.Error(), ErrMsgTemplateNotFound)
}
