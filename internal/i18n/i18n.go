package i18n

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// Language is a supported page language tag.
type Language string

const (
	English  Language = "en"
	Japanese Language = "ja"
	Burmese  Language = "my"
)

// Default is the language used when nothing else matches.
const Default = English

var supported = map[Language]struct{}{
	English:  {},
	Japanese: {},
	Burmese:  {},
}

// Supported returns the supported language tags in stable order.
func Supported() []Language {
	out := make([]Language, 0, len(supported))
	for l := range supported {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// IsSupported reports whether lang is one of the supported tags.
func IsSupported(lang Language) bool {
	_, ok := supported[lang]
	return ok
}

// Normalize lowercases a raw tag and strips any region subtag ("ja-JP" -> "ja").
// Unsupported tags normalize to the default language.
func Normalize(raw string) Language {
	base := baseTag(raw)
	if IsSupported(Language(base)) {
		return Language(base)
	}
	return Default
}

// Resolve picks the page language: an explicit request parameter wins when
// supported, then the best Accept-Language match, then the default.
func Resolve(explicit, acceptLang string) Language {
	if explicit != "" {
		base := baseTag(explicit)
		if IsSupported(Language(base)) {
			return Language(base)
		}
	}
	return resolveAccept(acceptLang)
}

func baseTag(raw string) string {
	base := strings.ToLower(strings.TrimSpace(raw))
	if dash := strings.IndexByte(base, '-'); dash != -1 {
		base = base[:dash]
	}
	return base
}

func resolveAccept(acceptLang string) Language {
	type langPref struct {
		base string
		q    float64
		pos  int
	}
	prefs := make([]langPref, 0, 8)
	for i, raw := range strings.Split(acceptLang, ",") {
		p := strings.TrimSpace(raw)
		if p == "" {
			continue
		}
		q := 1.0
		if sc := strings.IndexByte(p, ';'); sc != -1 {
			params := strings.TrimSpace(p[sc+1:])
			p = strings.TrimSpace(p[:sc])
			if strings.HasPrefix(params, "q=") {
				if v, err := parseQValue(strings.TrimPrefix(params, "q=")); err == nil {
					q = v
				}
			}
		}
		prefs = append(prefs, langPref{base: baseTag(p), q: q, pos: i})
	}
	// sort by q desc then by original order
	sort.SliceStable(prefs, func(i, j int) bool {
		if prefs[i].q == prefs[j].q {
			return prefs[i].pos < prefs[j].pos
		}
		return prefs[i].q > prefs[j].q
	})
	for _, lp := range prefs {
		if IsSupported(Language(lp.base)) {
			return Language(lp.base)
		}
	}
	return Default
}

// parseQValue parses a qvalue per RFC 7231 (0.0 to 1.0).
func parseQValue(s string) (float64, error) {
	s = strings.TrimSpace(s)
	switch s {
	case "1", "1.0", "1.00":
		return 1.0, nil
	case "0", "0.0", "0.00":
		return 0.0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	return v, nil
}

var japaneseWeekdays = [...]string{"日曜日", "月曜日", "火曜日", "水曜日", "木曜日", "金曜日", "土曜日"}

// FormatLongDate renders t as the long-form date shown on the invitation:
// "Saturday, May 10, 2025" (en), "2025年5月10日土曜日" (ja), British ordering
// "Saturday, 10 May 2025" for Burmese.
func FormatLongDate(lang Language, t time.Time) string {
	switch lang {
	case Japanese:
		return t.Format("2006年1月2日") + japaneseWeekdays[t.Weekday()]
	case Burmese:
		return t.Format("Monday, 2 January 2006")
	default:
		return t.Format("Monday, January 2, 2006")
	}
}

// FormatShortDate renders t as a compact numeric date for inline text such as
// the RSVP deadline.
func FormatShortDate(lang Language, t time.Time) string {
	switch lang {
	case Japanese:
		return t.Format("2006/1/2")
	case Burmese:
		return t.Format("2/1/2006")
	default:
		return t.Format("1/2/2006")
	}
}

// FormatTimeOfDay renders the clock time of t: 24-hour for Japanese, 12-hour
// with AM/PM otherwise.
func FormatTimeOfDay(lang Language, t time.Time) string {
	if lang == Japanese {
		return t.Format("15:04")
	}
	return t.Format("3:04 PM")
}
