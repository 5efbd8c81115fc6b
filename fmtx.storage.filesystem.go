package fmtx

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

// Filesystem layout constants
const (
	filesystemDirPermissions  = 0o755
	filesystemFilePermissions = 0o644
	filesystemExt             = ".tmpl"
	filesystemDelimiter       = "---\n"
)

// FilesystemStorage stores templates as files on the filesystem. Each
// template gets a directory named after it; each version is one file
// carrying a YAML frontmatter header followed by the raw template body:
//
//	<root>/
//	  <template-name>/
//	    v1.tmpl
//	    v2.tmpl
//	    ...
//
// File format:
//
//	---
//	id: fmt_6ByTSYmGzT2c
//	version: 2
//	description: greeting banner
//	---
//	Hello, {0}!
type FilesystemStorage struct {
	mu     sync.RWMutex
	root   string
	closed bool
}

// FilesystemStorageDriver is the driver for creating FilesystemStorage instances.
type FilesystemStorageDriver struct{}

func init() {
	RegisterStorageDriver("filesystem", &FilesystemStorageDriver{})
}

// Open creates a new FilesystemStorage instance. The connection string
// is the root directory path.
func (d *FilesystemStorageDriver) Open(connectionString string) (TemplateStorage, error) {
	return NewFilesystemStorage(connectionString)
}

// NewFilesystemStorage creates a filesystem-based template storage. The
// root directory is created if it doesn't exist.
func NewFilesystemStorage(root string) (*FilesystemStorage, error) {
	if root == "" {
		return nil, NewInvalidTemplateError(ErrMsgStorageOpenFailed)
	}
	if err := os.MkdirAll(root, filesystemDirPermissions); err != nil {
		return nil, NewStorageError(err)
	}
	return &FilesystemStorage{root: root}, nil
}

// frontmatter is the YAML header carried by each version file.
type frontmatter struct {
	ID          TemplateID `yaml:"id"`
	Description string     `yaml:"description,omitempty"`
	Version     int        `yaml:"version"`
	Tags        []string   `yaml:"tags,omitempty"`
	CreatedAt   time.Time  `yaml:"created_at"`
	UpdatedAt   time.Time  `yaml:"updated_at"`
}

// validateName rejects names that would escape the storage root.
func validateName(name string) error {
	if name == "" {
		return NewInvalidTemplateError(ErrMsgTemplateNameEmpty)
	}
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return NewInvalidTemplateError(ErrMsgTemplateNameEmpty)
	}
	return nil
}

func (s *FilesystemStorage) templateDir(name string) string {
	return filepath.Join(s.root, name)
}

func (s *FilesystemStorage) versionFile(name string, version int) string {
	return filepath.Join(s.templateDir(name), "v"+strconv.Itoa(version)+filesystemExt)
}

// readVersionFile parses one version file into a StoredTemplate.
func readVersionFile(path, name string) (*StoredTemplate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NewTemplateNotFoundError(name)
		}
		return nil, NewStorageError(err)
	}

	text := string(data)
	if !strings.HasPrefix(text, filesystemDelimiter) {
		return nil, NewStorageError(os.ErrInvalid)
	}
	rest := text[len(filesystemDelimiter):]
	end := strings.Index(rest, filesystemDelimiter)
	if end < 0 {
		return nil, NewStorageError(os.ErrInvalid)
	}

	var fm frontmatter
	if err := yaml.Unmarshal([]byte(rest[:end]), &fm); err != nil {
		return nil, NewStorageError(err)
	}

	return &StoredTemplate{
		ID:          fm.ID,
		Name:        name,
		Source:      rest[end+len(filesystemDelimiter):],
		Description: fm.Description,
		Version:     fm.Version,
		Tags:        fm.Tags,
		CreatedAt:   fm.CreatedAt,
		UpdatedAt:   fm.UpdatedAt,
	}, nil
}

// writeVersionFile serializes a StoredTemplate into frontmatter + body.
func writeVersionFile(path string, tmpl *StoredTemplate) error {
	fm := frontmatter{
		ID:          tmpl.ID,
		Description: tmpl.Description,
		Version:     tmpl.Version,
		Tags:        tmpl.Tags,
		CreatedAt:   tmpl.CreatedAt,
		UpdatedAt:   tmpl.UpdatedAt,
	}
	header, err := yaml.Marshal(&fm)
	if err != nil {
		return NewStorageError(err)
	}

	var b strings.Builder
	b.WriteString(filesystemDelimiter)
	b.Write(header)
	b.WriteString(filesystemDelimiter)
	b.WriteString(tmpl.Source)

	if err := os.WriteFile(path, []byte(b.String()), filesystemFilePermissions); err != nil {
		return NewStorageError(err)
	}
	return nil
}

// listVersionNumbers scans a template directory for version files.
func (s *FilesystemStorage) listVersionNumbers(name string) ([]int, error) {
	entries, err := os.ReadDir(s.templateDir(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, NewStorageError(err)
	}

	var versions []int
	for _, entry := range entries {
		fn := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(fn, "v") || !strings.HasSuffix(fn, filesystemExt) {
			continue
		}
		n, err := strconv.Atoi(fn[1 : len(fn)-len(filesystemExt)])
		if err != nil || n < 1 {
			continue
		}
		versions = append(versions, n)
	}
	sort.Ints(versions)
	return versions, nil
}

// Get retrieves the latest version of a template by name.
func (s *FilesystemStorage) Get(ctx context.Context, name string) (*StoredTemplate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := validateName(name); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, NewStorageClosedError()
	}

	versions, err := s.listVersionNumbers(name)
	if err != nil {
		return nil, err
	}
	if len(versions) == 0 {
		return nil, NewTemplateNotFoundError(name)
	}
	return readVersionFile(s.versionFile(name, versions[len(versions)-1]), name)
}

// GetVersion retrieves a specific version of a template.
func (s *FilesystemStorage) GetVersion(ctx context.Context, name string, version int) (*StoredTemplate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := validateName(name); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, NewStorageClosedError()
	}

	tmpl, err := readVersionFile(s.versionFile(name, version), name)
	if err != nil && IsTemplateNotFound(err) {
		return nil, NewVersionNotFoundError(name, version)
	}
	return tmpl, err
}

// Save stores a template, creating a new version if the name exists.
func (s *FilesystemStorage) Save(ctx context.Context, tmpl *StoredTemplate) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateStoredTemplate(tmpl); err != nil {
		return err
	}
	if err := validateName(tmpl.Name); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return NewStorageClosedError()
	}

	versions, err := s.listVersionNumbers(tmpl.Name)
	if err != nil {
		return err
	}

	version := 1
	if len(versions) > 0 {
		version = versions[len(versions)-1] + 1
	}

	now := time.Now().UTC()
	tmpl.ID = generateTemplateID()
	tmpl.Version = version
	tmpl.CreatedAt = now
	tmpl.UpdatedAt = now

	dir := s.templateDir(tmpl.Name)
	if err := os.MkdirAll(dir, filesystemDirPermissions); err != nil {
		return NewStorageError(err)
	}
	return writeVersionFile(s.versionFile(tmpl.Name, version), tmpl)
}

// Delete removes all versions of a template by name.
func (s *FilesystemStorage) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateName(name); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return NewStorageClosedError()
	}

	dir := s.templateDir(name)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return NewTemplateNotFoundError(name)
	}
	if err := os.RemoveAll(dir); err != nil {
		return NewStorageError(err)
	}
	return nil
}

// DeleteVersion removes a specific version of a template.
func (s *FilesystemStorage) DeleteVersion(ctx context.Context, name string, version int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateName(name); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return NewStorageClosedError()
	}

	path := s.versionFile(name, version)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return NewVersionNotFoundError(name, version)
	}
	if err := os.Remove(path); err != nil {
		return NewStorageError(err)
	}

	// Drop the directory once the last version is gone.
	if remaining, err := s.listVersionNumbers(name); err == nil && len(remaining) == 0 {
		_ = os.Remove(s.templateDir(name))
	}
	return nil
}

// List returns templates matching the query, ordered by name then by
// version descending.
func (s *FilesystemStorage) List(ctx context.Context, query *TemplateQuery) ([]*StoredTemplate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, NewStorageClosedError()
	}

	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, NewStorageError(err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	var results []*StoredTemplate
	for _, name := range names {
		versions, err := s.listVersionNumbers(name)
		if err != nil {
			return nil, err
		}
		for i := len(versions) - 1; i >= 0; i-- {
			tmpl, err := readVersionFile(s.versionFile(name, versions[i]), name)
			if err != nil {
				return nil, err
			}
			if !matchesQuery(tmpl, query) {
				continue
			}
			results = append(results, tmpl)
			if query == nil || !query.IncludeAllVersions {
				break
			}
		}
	}
	return applyWindow(results, query), nil
}

// Exists checks if a template with the given name exists.
func (s *FilesystemStorage) Exists(ctx context.Context, name string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if err := validateName(name); err != nil {
		return false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return false, NewStorageClosedError()
	}

	versions, err := s.listVersionNumbers(name)
	if err != nil {
		return false, err
	}
	return len(versions) > 0, nil
}

// ListVersions returns all version numbers for a template, ascending.
func (s *FilesystemStorage) ListVersions(ctx context.Context, name string) ([]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := validateName(name); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, NewStorageClosedError()
	}
	return s.listVersionNumbers(name)
}

// Close releases the storage. Subsequent operations fail.
func (s *FilesystemStorage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	return nil
}
