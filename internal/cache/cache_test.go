package cache

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amore-wedding/invite/internal/wedding"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "invite-cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStoreRoundTrip(t *testing.T) {
	s := openStore(t)

	doc := wedding.Defaults()
	doc.GroomName.EN = "Kenji"
	doc.Theme.Primary = "#112233"
	require.NoError(t, s.Save(doc))

	ov, err := s.Load()
	require.NoError(t, err)
	require.NotNil(t, ov)
	require.NotNil(t, ov.GroomName)
	assert.Equal(t, "Kenji", ov.GroomName.EN)
	require.NotNil(t, ov.Theme)
	require.NotNil(t, ov.Theme.Primary)
	assert.Equal(t, "#112233", *ov.Theme.Primary)
}

func TestStoreLoadEmpty(t *testing.T) {
	s := openStore(t)

	ov, err := s.Load()
	require.NoError(t, err)
	assert.Nil(t, ov)
}

func TestStoreSaveReplacesEntry(t *testing.T) {
	s := openStore(t)

	first := wedding.Defaults()
	first.GroomName.EN = "First"
	require.NoError(t, s.Save(first))

	second := wedding.Defaults()
	second.GroomName.EN = "Second"
	require.NoError(t, s.Save(second))

	ov, err := s.Load()
	require.NoError(t, err)
	require.NotNil(t, ov)
	assert.Equal(t, "Second", ov.GroomName.EN)
}

func TestStoreDiscard(t *testing.T) {
	s := openStore(t)
	require.NoError(t, s.Save(wedding.Defaults()))
	require.NoError(t, s.Discard())

	ov, err := s.Load()
	require.NoError(t, err)
	assert.Nil(t, ov)

	// Discarding an already-empty store is fine.
	require.NoError(t, s.Discard())
}

func TestStoreLoadCorruptedEntry(t *testing.T) {
	s := openStore(t)
	_, err := s.db.Exec(
		`INSERT INTO config_cache (name, payload, updated_at) VALUES (?, '{broken', CURRENT_TIMESTAMP)`,
		entryKey)
	require.NoError(t, err)

	_, err = s.Load()
	assert.Error(t, err)
}

func TestOpenCreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "cache.db")
	s, err := Open(path)
	require.NoError(t, err)
	assert.NoError(t, s.Close())
}
