package fmtx

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"strings"
	"sync"
	"time"
)

// TemplateID is a unique identifier for a stored template version.
// Uses prefixed random-ID format (e.g., "fmt_6ByTSYmGzT2c").
type TemplateID string

// StoredTemplate is a format template with metadata kept in a catalog
// backend. Saving the same name again creates a new version.
type StoredTemplate struct {
	// ID is the unique identifier for this template version.
	ID TemplateID `json:"id" yaml:"id"`

	// Name is the template name used for lookups.
	Name string `json:"name" yaml:"name"`

	// Source is the raw template text.
	Source string `json:"source" yaml:"-"`

	// Description is an optional human-readable summary.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Version is the version number (1, 2, 3, ...). Higher is newer.
	Version int `json:"version" yaml:"version"`

	// Tags for categorization and querying.
	Tags []string `json:"tags,omitempty" yaml:"tags,omitempty"`

	// CreatedAt is when this version was created.
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`

	// UpdatedAt is when this version was last modified.
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`
}

// TemplateQuery defines filters for listing templates.
type TemplateQuery struct {
	// NamePrefix filters to names starting with this prefix.
	NamePrefix string

	// Tags filters to templates having ALL specified tags.
	Tags []string

	// Limit is the maximum number of results (0 = no limit).
	Limit int

	// Offset is the number of results to skip (for pagination).
	Offset int

	// IncludeAllVersions includes all versions, not just the latest.
	IncludeAllVersions bool
}

// TemplateStorage is the interface for pluggable catalog backends.
// Implementations must be safe for concurrent use.
//
// The interface follows patterns from database/sql for familiarity:
// context for cancellation, explicit error returns, Close for cleanup.
type TemplateStorage interface {
	// Get retrieves the latest version of a template by name.
	Get(ctx context.Context, name string) (*StoredTemplate, error)

	// GetVersion retrieves a specific version of a template.
	GetVersion(ctx context.Context, name string, version int) (*StoredTemplate, error)

	// Save stores a template. If a template with the same name exists,
	// a new version is created. The template's ID, Version, CreatedAt
	// and UpdatedAt fields are set by the storage implementation.
	Save(ctx context.Context, tmpl *StoredTemplate) error

	// Delete removes all versions of a template by name.
	Delete(ctx context.Context, name string) error

	// DeleteVersion removes a specific version of a template.
	DeleteVersion(ctx context.Context, name string, version int) error

	// List returns templates matching the query, ordered by name, then
	// by version descending.
	List(ctx context.Context, query *TemplateQuery) ([]*StoredTemplate, error)

	// Exists checks if a template with the given name exists.
	Exists(ctx context.Context, name string) (bool, error)

	// ListVersions returns all version numbers for a template,
	// ascending. Empty if the template doesn't exist.
	ListVersions(ctx context.Context, name string) ([]int, error)

	// Close releases any resources held by the storage.
	Close() error
}

// StorageDriver is a factory for creating storage instances.
// Drivers register themselves during init().
type StorageDriver interface {
	// Open creates a new storage instance with the given connection
	// string. The format of the connection string is driver-specific.
	Open(connectionString string) (TemplateStorage, error)
}

// Storage driver registry
var (
	storageDriversMu sync.RWMutex
	storageDrivers   = make(map[string]StorageDriver)
)

// RegisterStorageDriver registers a storage driver by name. This is
// typically called from a driver's init() function. Panics if a driver
// with the same name is already registered.
func RegisterStorageDriver(name string, driver StorageDriver) {
	storageDriversMu.Lock()
	defer storageDriversMu.Unlock()

	if driver == nil {
		panic(ErrMsgNilDriver)
	}
	if _, dup := storageDrivers[name]; dup {
		panic(ErrMsgDriverExists + ": " + name)
	}
	storageDrivers[name] = driver
}

// OpenStorage opens a storage connection using the named driver.
//
// Example:
//
//	storage, err := fmtx.OpenStorage("memory", "")
//	storage, err := fmtx.OpenStorage("filesystem", "/path/to/templates")
func OpenStorage(driverName, connectionString string) (TemplateStorage, error) {
	storageDriversMu.RLock()
	driver, ok := storageDrivers[driverName]
	storageDriversMu.RUnlock()

	if !ok {
		return nil, NewDriverNotFoundError(driverName)
	}
	return driver.Open(connectionString)
}

// ListStorageDrivers returns the names of all registered storage drivers.
func ListStorageDrivers() []string {
	storageDriversMu.RLock()
	defer storageDriversMu.RUnlock()

	names := make([]string, 0, len(storageDrivers))
	for name := range storageDrivers {
		names = append(names, name)
	}
	return names
}

// validateStoredTemplate rejects templates that no backend can store.
func validateStoredTemplate(tmpl *StoredTemplate) error {
	if tmpl == nil || tmpl.Name == "" {
		return NewInvalidTemplateError(ErrMsgTemplateNameEmpty)
	}
	if tmpl.Source == "" {
		return NewInvalidTemplateError(ErrMsgTemplateSourceEmpty)
	}
	return nil
}

// generateTemplateID generates a unique template ID.
func generateTemplateID() TemplateID {
	b := make([]byte, 12)
	_, _ = rand.Read(b)
	return TemplateID("fmt_" + base64.RawURLEncoding.EncodeToString(b))
}

// copyStoredTemplate creates a deep copy of a StoredTemplate.
func copyStoredTemplate(tmpl *StoredTemplate) *StoredTemplate {
	if tmpl == nil {
		return nil
	}
	cp := *tmpl
	if tmpl.Tags != nil {
		cp.Tags = append([]string(nil), tmpl.Tags...)
	}
	return &cp
}

// matchesQuery applies in-process query filtering, shared by the memory
// and filesystem backends.
func matchesQuery(tmpl *StoredTemplate, query *TemplateQuery) bool {
	if query == nil {
		return true
	}
	if query.NamePrefix != "" && !strings.HasPrefix(tmpl.Name, query.NamePrefix) {
		return false
	}
	for _, want := range query.Tags {
		found := false
		for _, have := range tmpl.Tags {
			if have == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// applyWindow applies query offset/limit to an already-filtered result.
func applyWindow(results []*StoredTemplate, query *TemplateQuery) []*StoredTemplate {
	if query == nil {
		return results
	}
	if query.Offset > 0 {
		if query.Offset >= len(results) {
			return nil
		}
		results = results[query.Offset:]
	}
	if query.Limit > 0 && len(results) > query.Limit {
		results = results[:query.Limit]
	}
	return results
}
