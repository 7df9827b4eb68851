// Package settings loads the server's runtime configuration: built-in
// defaults, then an optional YAML file, then environment overrides.
package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	defaultPort      = "8080"
	defaultPublicDir = "public"
	defaultDataDir   = "data"
	defaultCachePath = "data/invite-cache.db"
)

// Settings captures everything the server needs at startup.
type Settings struct {
	// Addr is the HTTP listen address.
	Addr string `yaml:"addr"`
	// PublicDir holds the static page bundle served at the root.
	PublicDir string `yaml:"public_dir"`
	// DataDir holds local wedding-data documents; also served at /data/.
	DataDir string `yaml:"data_dir"`
	// ConfigBaseURL, when set, is the remote base the fetcher consults before
	// the local data directory.
	ConfigBaseURL string `yaml:"config_base_url"`
	// CachePath is the sqlite file backing the last-known-config cache.
	CachePath string `yaml:"cache_path"`
	// PageURL is the public URL of the invitation page, including any
	// event/mode query parameters. It selects the event and feeds the
	// calendar export.
	PageURL string `yaml:"page_url"`
	// AdminEnabled turns the admin surface on for this deployment.
	AdminEnabled bool `yaml:"admin_enabled"`
	// DevMode loosens the admin gate the way a local build would.
	DevMode bool `yaml:"dev_mode"`
	// WatchData re-resolves configuration when local documents change.
	WatchData bool `yaml:"watch_data"`
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		Addr:      ":" + defaultPort,
		PublicDir: defaultPublicDir,
		DataDir:   defaultDataDir,
		CachePath: defaultCachePath,
	}
}

// Load builds the effective settings. A missing file at path is only an
// error when the path was given explicitly.
func Load(path string, explicit bool) (Settings, error) {
	s := Defaults()
	if path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(raw, &s); err != nil {
				return Settings{}, fmt.Errorf("parse settings %s: %w", path, err)
			}
		case errors.Is(err, fs.ErrNotExist) && !explicit:
			// optional file absent; defaults stand
		default:
			return Settings{}, fmt.Errorf("read settings %s: %w", path, err)
		}
	}
	s.applyEnv()
	return s, nil
}

// applyEnv lets the environment override everything, Cloud Run style: the
// INVITE_* names are preferred, PORT and DEV are honored as fallbacks.
func (s *Settings) applyEnv() {
	port := os.Getenv("INVITE_PORT")
	if port == "" {
		port = os.Getenv("PORT")
	}
	if port != "" {
		s.Addr = ":" + port
	}
	if v := os.Getenv("INVITE_ADDR"); v != "" {
		s.Addr = v
	}
	if v := os.Getenv("INVITE_PUBLIC_DIR"); v != "" {
		s.PublicDir = v
	}
	if v := os.Getenv("INVITE_DATA_DIR"); v != "" {
		s.DataDir = v
	}
	if v := os.Getenv("INVITE_CONFIG_BASE_URL"); v != "" {
		s.ConfigBaseURL = v
	}
	if v := os.Getenv("INVITE_CACHE_PATH"); v != "" {
		s.CachePath = v
	}
	if v := os.Getenv("INVITE_PAGE_URL"); v != "" {
		s.PageURL = v
	}
	if v := os.Getenv("INVITE_ENABLE_ADMIN"); v != "" {
		s.AdminEnabled = isTrue(v)
	}
	if os.Getenv("INVITE_DEV") != "" || os.Getenv("DEV") != "" {
		s.DevMode = true
	}
	if v := os.Getenv("INVITE_WATCH"); v != "" {
		s.WatchData = isTrue(v)
	}
}

func isTrue(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
