package resolve

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amore-wedding/invite/internal/cache"
	"github.com/amore-wedding/invite/internal/wedding"
)

func jsonServer(t *testing.T, docs map[string]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := docs[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestResolveNoDocumentYieldsDefaults(t *testing.T) {
	srv := jsonServer(t, nil)
	r := NewResolver(NewHTTPSource(srv.URL), nil, nil, nil)

	got := r.Resolve(context.Background(), Params{})

	assert.Equal(t, wedding.Defaults(), got)
}

func TestResolvePartialOverrideMergesOverDefaults(t *testing.T) {
	srv := jsonServer(t, map[string]string{
		"/wedding-data_aki_mimi.json": `{"theme":{"primary":"#000000"}}`,
	})
	r := NewResolver(NewHTTPSource(srv.URL), nil, nil, nil)

	got := r.Resolve(context.Background(), Params{Event: "aki.mimi"})

	assert.Equal(t, "#000000", got.Theme.Primary)
	assert.Equal(t, wedding.Defaults().Theme.Text, got.Theme.Text)
	assert.Equal(t, wedding.Defaults().Theme.BackgroundTint, got.Theme.BackgroundTint)
	assert.Equal(t, wedding.Defaults().GroomName, got.GroomName)
}

func TestResolveRewritesEventFolder(t *testing.T) {
	srv := jsonServer(t, map[string]string{
		"/wedding-data_aki_mimi.json": `{"images":{"hero":"./photos/[event-folder]/hero.jpg"},"gallery":["./photos/[event-folder]/a.jpg"]}`,
	})
	r := NewResolver(NewHTTPSource(srv.URL), nil, nil, nil)

	got := r.Resolve(context.Background(), Params{Event: "aki.mimi"})

	assert.Equal(t, "./photos/aki_mimi/hero.jpg", got.Images.Hero)
	assert.Equal(t, []string{"./photos/aki_mimi/a.jpg"}, got.Gallery)
}

func TestResolveFallsBackToLocalSource(t *testing.T) {
	srv := jsonServer(t, nil)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "wedding-data.json"),
		[]byte(`{"groomName":{"en":"Ken"}}`), 0o644))

	r := NewResolver(NewHTTPSource(srv.URL), NewFileSource(dir), nil, nil)
	got := r.Resolve(context.Background(), Params{})

	assert.Equal(t, "Ken", got.GroomName.EN)
	assert.Equal(t, wedding.Defaults().GroomName.JA, got.GroomName.JA)
}

func TestResolveFallsBackToCache(t *testing.T) {
	store, err := cache.Open(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	defer store.Close()

	saved := wedding.Defaults()
	saved.GroomName.EN = "Kenji"
	require.NoError(t, store.Save(saved))

	// Unreachable remote, no local directory: only the cache can help.
	r := NewResolver(NewHTTPSource("http://127.0.0.1:1"), nil, store, nil)
	got := r.Resolve(context.Background(), Params{})

	assert.Equal(t, "Kenji", got.GroomName.EN)
	assert.Equal(t, wedding.Defaults().BrideName, got.BrideName)
}

func TestResolveDiscardsCorruptedCache(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")
	store, err := cache.Open(path)
	require.NoError(t, err)
	defer store.Close()
	require.NoError(t, store.Save(wedding.Defaults()))

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	_, err = db.Exec(`UPDATE config_cache SET payload = '{broken'`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	r := NewResolver(NewHTTPSource("http://127.0.0.1:1"), nil, store, nil)
	got := r.Resolve(context.Background(), Params{})

	assert.Equal(t, wedding.Defaults(), got)

	// The corrupted entry is gone, not retried forever.
	ov, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, ov)
}

func TestResolveNeverFails(t *testing.T) {
	r := NewResolver(nil, nil, nil, nil)
	got := r.Resolve(context.Background(), Params{Event: "whoever"})
	assert.Equal(t, wedding.Defaults(), got)
}
