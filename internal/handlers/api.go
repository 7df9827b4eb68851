// Package handlers exposes the resolved configuration, the derived view
// state, the calendar exports, and the single update entry point over HTTP.
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/amore-wedding/invite/internal/cache"
	"github.com/amore-wedding/invite/internal/i18n"
	"github.com/amore-wedding/invite/internal/resolve"
	"github.com/amore-wedding/invite/internal/state"
	"github.com/amore-wedding/invite/internal/view"
	"github.com/amore-wedding/invite/internal/wedding"
)

const versionHeader = "X-Config-Version"

// API bundles the handler dependencies. Store may be nil when no cache is
// available; updates then only replace the in-memory state.
type API struct {
	Cell    *state.Cell
	Store   *cache.Store
	Policy  resolve.AdminPolicy
	PageURL string
	Logger  *zap.Logger
}

// Register mounts the API routes on r.
func (a *API) Register(r chi.Router) {
	r.Get("/api/config", a.getConfig)
	r.Put("/api/config", a.updateConfig)
	r.Get("/api/view", a.getViewState)
	r.Get("/calendar.ics", a.downloadCalendar)
	r.Get("/calendar/google", a.googleCalendar)
}

func (a *API) logger() *zap.Logger {
	if a.Logger == nil {
		return zap.NewNop()
	}
	return a.Logger
}

// getConfig returns a snapshot of the resolved configuration document.
func (a *API) getConfig(w http.ResponseWriter, r *http.Request) {
	doc, version := a.Cell.Snapshot()
	w.Header().Set(versionHeader, strconv.FormatUint(version, 10))
	writeJSON(w, http.StatusOK, doc)
}

// updateConfig is the single write path after resolution: it accepts a
// complete replacement document, persists it, and swaps the state cell.
func (a *API) updateConfig(w http.ResponseWriter, r *http.Request) {
	if !resolve.AdminPermitted(a.Policy, resolve.ParseValues(r.URL.Query()), r.Host) {
		writeError(w, http.StatusForbidden, "admin access not permitted")
		return
	}

	var doc wedding.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid configuration document: %v", err))
		return
	}

	if a.Store != nil {
		if err := a.Store.Save(doc); err != nil {
			// The in-memory replacement still proceeds; only the fallback
			// copy is stale.
			a.logger().Warn("persisting configuration failed", zap.Error(err))
		}
	}
	version := a.Cell.Replace(doc)
	a.logger().Info("configuration updated", zap.Uint64("version", version))

	w.Header().Set(versionHeader, strconv.FormatUint(version, 10))
	writeJSON(w, http.StatusOK, map[string]uint64{"version": version})
}

// getViewState returns the derived view state for the requested language.
func (a *API) getViewState(w http.ResponseWriter, r *http.Request) {
	lang := i18n.Resolve(r.URL.Query().Get("lang"), r.Header.Get("Accept-Language"))
	doc, version := a.Cell.Snapshot()

	st := view.Build(doc, lang, a.pageURL(r))
	payload := struct {
		view.State
		Version        uint64 `json:"version"`
		AdminAvailable bool   `json:"adminAvailable"`
	}{
		State:          st,
		Version:        version,
		AdminAvailable: resolve.AdminPermitted(a.Policy, resolve.ParseValues(r.URL.Query()), r.Host),
	}
	w.Header().Set(versionHeader, strconv.FormatUint(version, 10))
	writeJSON(w, http.StatusOK, payload)
}

// downloadCalendar serves the ICS payload as an attachment.
func (a *API) downloadCalendar(w http.ResponseWriter, r *http.Request) {
	doc, _ := a.Cell.Snapshot()
	export := view.BuildCalendar(doc, view.EventTime(doc), a.pageURL(r))

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.FileName))
	_, _ = w.Write([]byte(export.ICS))
}

// googleCalendar redirects to the calendar-service deep link.
func (a *API) googleCalendar(w http.ResponseWriter, r *http.Request) {
	doc, _ := a.Cell.Snapshot()
	export := view.BuildCalendar(doc, view.EventTime(doc), a.pageURL(r))
	http.Redirect(w, r, export.GoogleURL, http.StatusFound)
}

func (a *API) pageURL(r *http.Request) string {
	if a.PageURL != "" {
		return a.PageURL
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host + "/"
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}
