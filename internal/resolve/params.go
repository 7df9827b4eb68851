// Package resolve locates, fetches, and resolves the event configuration
// document: query parameters select the event, the locator maps it to a
// document source, and the resolver merges whatever could be retrieved over
// the built-in defaults.
package resolve

import "net/url"

const (
	eventParam = "event"
	modeParam  = "mode"
	adminMode  = "admin"
)

// Params carries what the page's query string contributes to resolution.
type Params struct {
	// Event selects the configuration document and asset folder. Free-form;
	// may contain separator characters ("aki.mimi").
	Event string
	// AdminRequested is set when the query explicitly asked for admin mode.
	AdminRequested bool
}

// ParseQuery extracts resolution parameters from a raw query string. Pure
// function of its input; malformed queries yield zero params.
func ParseQuery(query string) Params {
	values, err := url.ParseQuery(query)
	if err != nil {
		return Params{}
	}
	return ParseValues(values)
}

// ParseValues extracts resolution parameters from already-parsed values.
func ParseValues(values url.Values) Params {
	return Params{
		Event:          values.Get(eventParam),
		AdminRequested: values.Get(modeParam) == adminMode,
	}
}

// ParsePageURL extracts resolution parameters from a full page URL.
func ParsePageURL(raw string) Params {
	u, err := url.Parse(raw)
	if err != nil {
		return Params{}
	}
	return ParseQuery(u.RawQuery)
}
