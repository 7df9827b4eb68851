// Package view derives render-ready state from a resolved configuration
// document: parsed dates, localized formatting, calendar export artifacts,
// and placeholder substitution. Everything here is a pure function of the
// document and the active language; nothing in it can fail the page.
package view

import (
	"strings"
	"time"

	"github.com/amore-wedding/invite/internal/i18n"
	"github.com/amore-wedding/invite/internal/wedding"
)

// Placeholder tokens recognized in FAQ text. The set is closed; anything else
// passes through unresolved.
const (
	tokenTime     = "{{time}}"
	tokenDeadline = "{{deadline}}"
)

var eventDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// FAQEntry is one localized, token-substituted question/answer pair.
type FAQEntry struct {
	Question   string          `json:"question"`
	Answer     string          `json:"answer"`
	AnswerHTML string          `json:"answerHtml"`
	Icon       wedding.FAQIcon `json:"icon"`
}

// ScheduleEntry is one localized timeline row.
type ScheduleEntry struct {
	Time  string               `json:"time"`
	Title string               `json:"title"`
	Icon  wedding.ScheduleIcon `json:"icon"`
}

// State is the derived view state for one language.
type State struct {
	Language        i18n.Language   `json:"language"`
	GroomName       string          `json:"groomName"`
	BrideName       string          `json:"brideName"`
	EventTime       time.Time       `json:"eventTime"`
	FormattedDate   string          `json:"formattedDate"`
	ShowCountdown   bool            `json:"showCountdown"`
	CountdownTarget time.Time       `json:"countdownTarget"`
	Message         string          `json:"message"`
	MessageHTML     string          `json:"messageHtml"`
	VenueName       string          `json:"venueName"`
	VenueAddress    string          `json:"venueAddress"`
	MapURL          string          `json:"mapUrl"`
	Schedule        []ScheduleEntry `json:"schedule"`
	ShowSchedule    bool            `json:"showSchedule"`
	FAQ             []FAQEntry      `json:"faq"`
	Font            string          `json:"font"`
	Calendar        CalendarExport  `json:"calendar"`
}

// Build derives the view state for doc in lang. pageURL ends up in the
// calendar export's URL field.
func Build(doc wedding.Document, lang i18n.Language, pageURL string) State {
	eventTime := EventTime(doc)

	st := State{
		Language:        lang,
		GroomName:       doc.GroomName.ForLanguage(lang),
		BrideName:       doc.BrideName.ForLanguage(lang),
		EventTime:       eventTime,
		FormattedDate:   i18n.FormatLongDate(lang, eventTime),
		ShowCountdown:   doc.ShowCountdown,
		CountdownTarget: eventTime,
		Message:         doc.Message.ForLanguage(lang),
		VenueName:       doc.Location.Name.ForLanguage(lang),
		VenueAddress:    doc.Location.Address.ForLanguage(lang),
		MapURL:          doc.Location.MapURL,
		ShowSchedule:    doc.ShowSchedule,
		Font:            doc.Fonts.ForLanguage(lang),
		Calendar:        BuildCalendar(doc, eventTime, pageURL),
	}
	st.MessageHTML = RenderRichText(st.Message)

	for _, item := range doc.Schedule {
		st.Schedule = append(st.Schedule, ScheduleEntry{
			Time:  item.Time,
			Title: item.Title.ForLanguage(lang),
			Icon:  item.Icon,
		})
	}
	for _, item := range doc.FAQ {
		answer := ReplaceTokens(item.Answer.ForLanguage(lang), lang, eventTime, doc.RSVPDeadline)
		st.FAQ = append(st.FAQ, FAQEntry{
			Question:   ReplaceTokens(item.Question.ForLanguage(lang), lang, eventTime, doc.RSVPDeadline),
			Answer:     answer,
			AnswerHTML: RenderRichText(answer),
			Icon:       item.Icon,
		})
	}
	return st
}

// EventTime parses the document's event date. Unparseable text yields the
// current moment so downstream formatting always succeeds.
func EventTime(doc wedding.Document) time.Time {
	return parseDate(doc.Date)
}

func parseDate(v string) time.Time {
	v = strings.TrimSpace(v)
	for _, layout := range eventDateLayouts {
		if t, err := time.ParseInLocation(layout, v, time.Local); err == nil {
			return t
		}
	}
	return time.Now()
}

// ReplaceTokens substitutes the deferred placeholder tokens in text:
// {{time}} becomes the localized time of day of the event, {{deadline}} the
// localized RSVP deadline date. Substitution is textual and global; text
// without either token is returned unchanged.
func ReplaceTokens(text string, lang i18n.Language, eventTime time.Time, deadline string) string {
	if strings.Contains(text, tokenTime) {
		text = strings.ReplaceAll(text, tokenTime, i18n.FormatTimeOfDay(lang, eventTime))
	}
	if strings.Contains(text, tokenDeadline) {
		text = strings.ReplaceAll(text, tokenDeadline, i18n.FormatShortDate(lang, parseDate(deadline)))
	}
	return text
}
