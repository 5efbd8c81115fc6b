package fmtx

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStorage_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage()
	defer s.Close()

	tmpl := &StoredTemplate{Name: "greeting", Source: "Hello, {0}!"}
	require.NoError(t, s.Save(ctx, tmpl))
	assert.Equal(t, 1, tmpl.Version)
	assert.NotEmpty(t, tmpl.ID)
	assert.False(t, tmpl.CreatedAt.IsZero())

	got, err := s.Get(ctx, "greeting")
	require.NoError(t, err)
	assert.Equal(t, "Hello, {0}!", got.Source)
	assert.Equal(t, 1, got.Version)
}

func TestMemoryStorage_Versioning(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage()
	defer s.Close()

	require.NoError(t, s.Save(ctx, &StoredTemplate{Name: "t", Source: "v1 {0}"}))
	require.NoError(t, s.Save(ctx, &StoredTemplate{Name: "t", Source: "v2 {0}"}))
	require.NoError(t, s.Save(ctx, &StoredTemplate{Name: "t", Source: "v3 {0}"}))

	latest, err := s.Get(ctx, "t")
	require.NoError(t, err)
	assert.Equal(t, 3, latest.Version)
	assert.Equal(t, "v3 {0}", latest.Source)

	old, err := s.GetVersion(ctx, "t", 2)
	require.NoError(t, err)
	assert.Equal(t, "v2 {0}", old.Source)

	versions, err := s.ListVersions(ctx, "t")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, versions)
}

func TestMemoryStorage_NotFound(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage()
	defer s.Close()

	_, err := s.Get(ctx, "nope")
	require.Error(t, err)
	assert.True(t, IsTemplateNotFound(err))

	require.NoError(t, s.Save(ctx, &StoredTemplate{Name: "t", Source: "{0}"}))
	_, err = s.GetVersion(ctx, "t", 9)
	require.Error(t, err)
	assert.True(t, IsTemplateNotFound(err))
}

func TestMemoryStorage_Delete(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage()
	defer s.Close()

	require.NoError(t, s.Save(ctx, &StoredTemplate{Name: "t", Source: "v1"}))
	require.NoError(t, s.Save(ctx, &StoredTemplate{Name: "t", Source: "v2"}))

	require.NoError(t, s.DeleteVersion(ctx, "t", 1))
	versions, err := s.ListVersions(ctx, "t")
	require.NoError(t, err)
	assert.Equal(t, []int{2}, versions)

	require.NoError(t, s.Delete(ctx, "t"))
	exists, err := s.Exists(ctx, "t")
	require.NoError(t, err)
	assert.False(t, exists)

	assert.Error(t, s.Delete(ctx, "t"))
}

func TestMemoryStorage_List(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage()
	defer s.Close()

	require.NoError(t, s.Save(ctx, &StoredTemplate{Name: "b", Source: "x", Tags: []string{"report"}}))
	require.NoError(t, s.Save(ctx, &StoredTemplate{Name: "a", Source: "y", Tags: []string{"report", "daily"}}))
	require.NoError(t, s.Save(ctx, &StoredTemplate{Name: "a", Source: "y2", Tags: []string{"report", "daily"}}))
	require.NoError(t, s.Save(ctx, &StoredTemplate{Name: "c", Source: "z"}))

	t.Run("latest only, ordered by name", func(t *testing.T) {
		results, err := s.List(ctx, nil)
		require.NoError(t, err)
		require.Len(t, results, 3)
		assert.Equal(t, "a", results[0].Name)
		assert.Equal(t, 2, results[0].Version)
		assert.Equal(t, "b", results[1].Name)
		assert.Equal(t, "c", results[2].Name)
	})

	t.Run("all versions", func(t *testing.T) {
		results, err := s.List(ctx, &TemplateQuery{IncludeAllVersions: true})
		require.NoError(t, err)
		assert.Len(t, results, 4)
	})

	t.Run("tag filter requires all tags", func(t *testing.T) {
		results, err := s.List(ctx, &TemplateQuery{Tags: []string{"report", "daily"}})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "a", results[0].Name)
	})

	t.Run("name prefix", func(t *testing.T) {
		results, err := s.List(ctx, &TemplateQuery{NamePrefix: "b"})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "b", results[0].Name)
	})

	t.Run("window", func(t *testing.T) {
		results, err := s.List(ctx, &TemplateQuery{Offset: 1, Limit: 1})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "b", results[0].Name)
	})
}

func TestMemoryStorage_Closed(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage()
	require.NoError(t, s.Close())

	_, err := s.Get(ctx, "t")
	assert.Error(t, err)
	assert.Error(t, s.Save(ctx, &StoredTemplate{Name: "t", Source: "x"}))
}

func TestMemoryStorage_SaveValidation(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage()
	defer s.Close()

	assert.Error(t, s.Save(ctx, &StoredTemplate{Name: "", Source: "x"}))
	assert.Error(t, s.Save(ctx, &StoredTemplate{Name: "t", Source: ""}))
}

func TestMemoryStorage_CopiesAreIsolated(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage()
	defer s.Close()

	require.NoError(t, s.Save(ctx, &StoredTemplate{Name: "t", Source: "x", Tags: []string{"a"}}))

	got, err := s.Get(ctx, "t")
	require.NoError(t, err)
	got.Tags[0] = "mutated"

	again, err := s.Get(ctx, "t")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, again.Tags)
}

func TestOpenStorage_Registry(t *testing.T) {
	s, err := OpenStorage("memory", "")
	require.NoError(t, err)
	defer s.Close()

	_, err = OpenStorage("no-such-driver", "")
	assert.Error(t, err)

	assert.Contains(t, ListStorageDrivers(), "memory")
	assert.Contains(t, ListStorageDrivers(), "filesystem")
	assert.Contains(t, ListStorageDrivers(), "postgres")
}

func TestEngine_FormatNamed(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage()
	defer s.Close()

	require.NoError(t, s.Save(ctx, &StoredTemplate{Name: "greeting", Source: "Hello, {0}!"}))

	e := New(WithStorage(s))
	out, err := e.FormatNamed(ctx, "greeting", Str("world"))
	require.NoError(t, err)
	assert.Equal(t, "Hello, world!", out)

	_, err = e.FormatNamed(ctx, "absent")
	assert.True(t, IsTemplateNotFound(err))
}

func TestEngine_FormatNamed_NoStorage(t *testing.T) {
	e := New()
	_, err := e.FormatNamed(context.Background(), "x")
	assert.Error(t, err)
}
