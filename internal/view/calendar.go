package view

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/amore-wedding/invite/internal/wedding"
)

// eventDuration is the fixed window used for calendar exports.
const eventDuration = 4 * time.Hour

// ICSFileName is the suggested name for the downloadable calendar file.
const ICSFileName = "wedding-invite.ics"

// CalendarExport bundles the two export artifacts: a deep link into Google
// Calendar and a downloadable ICS payload.
type CalendarExport struct {
	GoogleURL string `json:"googleUrl"`
	ICS       string `json:"-"`
	FileName  string `json:"fileName"`
}

// BuildCalendar computes both artifacts from the same start time and the
// fixed four-hour window. English values feed the export since calendar
// services render a single locale.
func BuildCalendar(doc wedding.Document, start time.Time, pageURL string) CalendarExport {
	end := start.Add(eventDuration)
	title := fmt.Sprintf("%s & %s Wedding", doc.GroomName.EN, doc.BrideName.EN)
	location := doc.Location.Name.EN + ", " + doc.Location.Address.EN
	details := fmt.Sprintf("Join us for the wedding of %s and %s!", doc.GroomName.EN, doc.BrideName.EN)

	google := "https://www.google.com/calendar/render?action=TEMPLATE" +
		"&text=" + url.QueryEscape(title) +
		"&dates=" + utcStamp(start) + "/" + utcStamp(end) +
		"&details=" + url.QueryEscape(details) +
		"&location=" + url.QueryEscape(location) +
		"&sf=true&output=xml"

	ics := strings.Join([]string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"BEGIN:VEVENT",
		"URL:" + pageURL,
		"DTSTART:" + utcStamp(start),
		"DTEND:" + utcStamp(end),
		"SUMMARY:" + escapeICS(title),
		"DESCRIPTION:" + escapeICS(details),
		"LOCATION:" + escapeICS(location),
		"END:VEVENT",
		"END:VCALENDAR",
		"",
	}, "\r\n")

	return CalendarExport{GoogleURL: google, ICS: ics, FileName: ICSFileName}
}

// utcStamp renders t in the compact UTC basic format calendar services
// expect: 20250510T010000Z.
func utcStamp(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

// escapeICS escapes the characters RFC 5545 treats specially in text values.
func escapeICS(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, ";", `\;`)
	v = strings.ReplaceAll(v, ",", `\,`)
	v = strings.ReplaceAll(v, "\n", `\n`)
	return v
}
