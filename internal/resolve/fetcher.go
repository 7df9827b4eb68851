package resolve

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/amore-wedding/invite/internal/wedding"
)

// ErrNoConfig signals that a source has no usable configuration document.
// This is the expected branch for events without an override; callers fall
// back to the cache or the defaults instead of surfacing it.
var ErrNoConfig = errors.New("resolve: no external configuration")

// Source retrieves the raw override document for an event.
type Source interface {
	Fetch(ctx context.Context, event string) (*wedding.Override, error)
}

// HTTPSource fetches configuration documents from a remote base URL.
type HTTPSource struct {
	base string
	http *http.Client
}

// NewHTTPSource builds a source rooted at base.
func NewHTTPSource(base string) *HTTPSource {
	return &HTTPSource{
		base: base,
		http: &http.Client{Timeout: 10 * time.Second},
	}
}

// Fetch performs the network retrieval. A non-success status, a declared
// content type that is not JSON, or an unparseable body all collapse to
// ErrNoConfig: absence of configuration, not a fault.
func (s *HTTPSource) Fetch(ctx context.Context, event string) (*wedding.Override, error) {
	endpoint, err := DocumentURL(s.base, event)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoConfig, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoConfig, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoConfig, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d for %s", ErrNoConfig, resp.StatusCode, DocumentName(event))
	}
	if ct := resp.Header.Get("Content-Type"); ct != "" && !strings.Contains(ct, "application/json") {
		return nil, fmt.Errorf("%w: content type %q", ErrNoConfig, ct)
	}

	var ov wedding.Override
	if err := json.NewDecoder(resp.Body).Decode(&ov); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrNoConfig, DocumentName(event), err)
	}
	return &ov, nil
}

// FileSource reads configuration documents from a local data directory. It
// backs deployments that ship the documents next to the page bundle instead
// of serving them from a remote endpoint.
type FileSource struct {
	dir string
}

// NewFileSource builds a source over dir.
func NewFileSource(dir string) *FileSource {
	return &FileSource{dir: dir}
}

// Fetch reads and parses the event's document. Missing or malformed files
// collapse to ErrNoConfig.
func (s *FileSource) Fetch(_ context.Context, event string) (*wedding.Override, error) {
	path := filepath.Join(s.dir, DocumentName(event))
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s not present", ErrNoConfig, DocumentName(event))
		}
		return nil, fmt.Errorf("%w: read %s: %v", ErrNoConfig, path, err)
	}
	var ov wedding.Override
	if err := json.Unmarshal(raw, &ov); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrNoConfig, path, err)
	}
	return &ov, nil
}
