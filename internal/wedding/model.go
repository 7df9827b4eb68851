// Package wedding defines the configuration document that drives the
// invitation page, its built-in defaults, and the merge rules that combine the
// defaults with an externally supplied override document.
package wedding

import (
	"strings"

	"github.com/amore-wedding/invite/internal/i18n"
)

// LocalizedString carries one value per supported language tag.
type LocalizedString struct {
	EN string `json:"en"`
	JA string `json:"ja"`
	MY string `json:"my"`
}

// ForLanguage returns the value for lang, falling back to English.
func (s LocalizedString) ForLanguage(lang i18n.Language) string {
	switch lang {
	case i18n.Japanese:
		if s.JA != "" {
			return s.JA
		}
	case i18n.Burmese:
		if s.MY != "" {
			return s.MY
		}
	}
	return s.EN
}

// ScheduleIcon tags a timeline entry with its category.
type ScheduleIcon string

const (
	IconCeremony  ScheduleIcon = "ceremony"
	IconReception ScheduleIcon = "reception"
	IconParty     ScheduleIcon = "party"
	IconToast     ScheduleIcon = "toast"
	IconMeal      ScheduleIcon = "meal"
	IconCamera    ScheduleIcon = "camera"
)

// ScheduleItem is one entry of the day's timeline.
type ScheduleItem struct {
	Time  string          `json:"time"`
	Title LocalizedString `json:"title"`
	Icon  ScheduleIcon    `json:"icon"`
}

// FAQIcon tags an FAQ entry with its category.
type FAQIcon string

const (
	FAQUsers    FAQIcon = "users"
	FAQShirt    FAQIcon = "shirt"
	FAQClock    FAQIcon = "clock"
	FAQMap      FAQIcon = "map"
	FAQUtensils FAQIcon = "utensils"
	FAQCalendar FAQIcon = "calendar"
	FAQGift     FAQIcon = "gift"
	FAQInfo     FAQIcon = "info"
)

// FAQItem is one question/answer pair. Answer text may carry deferred
// placeholder tokens ({{time}}, {{deadline}}) resolved at view-build time.
type FAQItem struct {
	Question LocalizedString `json:"question"`
	Answer   LocalizedString `json:"answer"`
	Icon     FAQIcon         `json:"icon"`
}

// Location describes the venue, including the canonical embeddable map URL.
type Location struct {
	Name    LocalizedString `json:"name"`
	Address LocalizedString `json:"address"`
	MapURL  string          `json:"mapUrl"`
}

// Images holds the three named image slots.
type Images struct {
	Hero  string `json:"hero"`
	Groom string `json:"groom"`
	Bride string `json:"bride"`
}

// Theme holds the page's three color values.
type Theme struct {
	Primary        string `json:"primary"`
	Text           string `json:"text"`
	BackgroundTint string `json:"backgroundTint"`
}

// FontConfig declares one font per supported language.
type FontConfig struct {
	EN string `json:"en"`
	JA string `json:"ja"`
	MY string `json:"my"`
}

// ForLanguage returns the font for lang, falling back to English.
func (f FontConfig) ForLanguage(lang i18n.Language) string {
	switch lang {
	case i18n.Japanese:
		if f.JA != "" {
			return f.JA
		}
	case i18n.Burmese:
		if f.MY != "" {
			return f.MY
		}
	}
	return f.EN
}

// Visuals toggles the decorative behaviors of the page.
type Visuals struct {
	EnableAnimations bool `json:"enableAnimations"`
	EnableEnvelope   bool `json:"enableEnvelope"`
}

// Document is the complete, resolved configuration for one event. After
// resolution every localized field carries all three language tags, the map
// URL is in canonical embeddable form, and asset paths contain no unresolved
// event-folder token.
type Document struct {
	GroomName       LocalizedString `json:"groomName"`
	BrideName       LocalizedString `json:"brideName"`
	Date            string          `json:"date"`
	ShowCountdown   bool            `json:"showCountdown"`
	RSVPDeadline    string          `json:"rsvpDeadline"`
	Location        Location        `json:"location"`
	Message         LocalizedString `json:"message"`
	GoogleFormURL   string          `json:"googleFormUrl"`
	GoogleScriptURL string          `json:"googleScriptUrl"`
	ShowSchedule    bool            `json:"showSchedule"`
	Schedule        []ScheduleItem  `json:"schedule"`
	FAQ             []FAQItem       `json:"faq"`
	ShowGallery     bool            `json:"showGallery"`
	Gallery         []string        `json:"gallery"`
	MusicURL        string          `json:"musicUrl"`
	Images          Images          `json:"images"`
	Theme           Theme           `json:"theme"`
	Fonts           FontConfig      `json:"fonts"`
	Visuals         Visuals         `json:"visuals"`
}

// Clone returns a deep copy so snapshots handed to readers never share
// mutable slices with the owner.
func (d Document) Clone() Document {
	out := d
	if d.Schedule != nil {
		out.Schedule = append([]ScheduleItem(nil), d.Schedule...)
	}
	if d.FAQ != nil {
		out.FAQ = append([]FAQItem(nil), d.FAQ...)
	}
	if d.Gallery != nil {
		out.Gallery = append([]string(nil), d.Gallery...)
	}
	return out
}

// Override is the raw, possibly partial document fetched from an external
// source or recovered from the local cache. Every field is optional; nil
// means "not supplied", while a present empty value (including an empty
// array) is authoritative and replaces the default.
type Override struct {
	GroomName       *LocalizedString  `json:"groomName"`
	BrideName       *LocalizedString  `json:"brideName"`
	Date            *string           `json:"date"`
	ShowCountdown   *bool             `json:"showCountdown"`
	RSVPDeadline    *string           `json:"rsvpDeadline"`
	Location        *LocationOverride `json:"location"`
	Message         *LocalizedString  `json:"message"`
	GoogleFormURL   *string           `json:"googleFormUrl"`
	GoogleScriptURL *string           `json:"googleScriptUrl"`
	ShowSchedule    *bool             `json:"showSchedule"`
	Schedule        *[]ScheduleItem   `json:"schedule"`
	FAQ             *[]FAQItem        `json:"faq"`
	ShowGallery     *bool             `json:"showGallery"`
	Gallery         *[]string         `json:"gallery"`
	MusicURL        *string           `json:"musicUrl"`
	Images          *ImagesOverride   `json:"images"`
	Theme           *ThemeOverride    `json:"theme"`
	Fonts           *FontOverride     `json:"fonts"`
	Visuals         *VisualsOverride  `json:"visuals"`
}

// LocationOverride mirrors Location with every sub-field optional.
type LocationOverride struct {
	Name    *LocalizedString `json:"name"`
	Address *LocalizedString `json:"address"`
	MapURL  *string          `json:"mapUrl"`
}

// ImagesOverride mirrors Images with every slot optional.
type ImagesOverride struct {
	Hero  *string `json:"hero"`
	Groom *string `json:"groom"`
	Bride *string `json:"bride"`
}

// ThemeOverride mirrors Theme with every color optional.
type ThemeOverride struct {
	Primary        *string `json:"primary"`
	Text           *string `json:"text"`
	BackgroundTint *string `json:"backgroundTint"`
}

// FontOverride mirrors FontConfig with every font optional.
type FontOverride struct {
	EN *string `json:"en"`
	JA *string `json:"ja"`
	MY *string `json:"my"`
}

// VisualsOverride mirrors Visuals with both toggles optional.
type VisualsOverride struct {
	EnableAnimations *bool `json:"enableAnimations"`
	EnableEnvelope   *bool `json:"enableEnvelope"`
}

// EventFolder converts an event identifier to its asset folder name,
// replacing every separator with an underscore: "aki.mimi" -> "aki_mimi".
func EventFolder(event string) string {
	return strings.ReplaceAll(event, ".", "_")
}
