package resolve

import (
	"net/url"
	"strings"

	"github.com/amore-wedding/invite/internal/wedding"
)

const (
	defaultDocumentName = "wedding-data.json"
	eventDocumentPrefix = "wedding-data_"
)

// DocumentName maps an event identifier to its configuration document name.
// Without an identifier the default document is used; otherwise separators
// become underscores and the identifier lands in the per-event name:
// "aki.mimi" -> "wedding-data_aki_mimi.json". For identifiers of alphanumerics
// and separators the mapping is injective, so distinct events never share a
// document.
func DocumentName(event string) string {
	if event == "" {
		return defaultDocumentName
	}
	return eventDocumentPrefix + wedding.EventFolder(event) + ".json"
}

// DocumentURL joins the document name for event onto a base URL.
func DocumentURL(base, event string) (string, error) {
	return url.JoinPath(strings.TrimRight(base, "/"), DocumentName(event))
}
