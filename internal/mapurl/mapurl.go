// Package mapurl converts arbitrary location-sharing input into a canonical
// embeddable map URL. Input may already be canonical, may be a raw HTML embed
// snippet pasted from the map service, or free-form address text.
package mapurl

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// embedQueryTemplate is the canonical embed form used for free-form address
// text, at a fixed zoom level.
const embedQueryTemplate = "https://maps.google.com/maps?q=%s&t=&z=16&ie=UTF8&iwloc=&output=embed"

// Normalize returns the canonical embeddable form of raw. The matchers apply
// in priority order:
//
//  1. empty input stays empty (the caller substitutes the default URL)
//  2. an HTML fragment with an embed frame yields its src attribute,
//     normalized again; a fragment without one falls through
//  3. input already carrying embed markers is returned unchanged
//  4. anything else is treated as address text and encoded into the
//     fixed-zoom embed query template
//
// The frame matcher must run before the marker check: a pasted snippet's src
// usually carries the markers itself, and returning the snippet unchanged
// would hand raw HTML to the renderer.
//
// Normalize is idempotent: branch 3 accepts every value the other branches
// can produce, and never a fragment.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}
	if strings.Contains(raw, "<iframe") {
		if src, ok := frameSource(raw); ok {
			return Normalize(src)
		}
	}
	if IsCanonical(raw) {
		return raw
	}
	return fmt.Sprintf(embedQueryTemplate, url.QueryEscape(strings.TrimSpace(raw)))
}

// IsCanonical reports whether s already carries an embed marker. An HTML
// fragment is never canonical, whatever its attributes contain.
func IsCanonical(s string) bool {
	if strings.Contains(s, "<iframe") {
		return false
	}
	return strings.Contains(s, "/embed") || strings.Contains(s, "output=embed")
}

// frameSource extracts the src attribute of the first iframe in an HTML
// fragment.
func frameSource(fragment string) (string, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return "", false
	}
	src, ok := doc.Find("iframe").First().Attr("src")
	if !ok || strings.TrimSpace(src) == "" {
		return "", false
	}
	return src, true
}
