package view

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amore-wedding/invite/internal/i18n"
	"github.com/amore-wedding/invite/internal/wedding"
)

func TestBuildEnglish(t *testing.T) {
	doc := wedding.Defaults()
	st := Build(doc, i18n.English, "https://amore.example/")

	assert.Equal(t, i18n.English, st.Language)
	assert.Equal(t, "Groom", st.GroomName)
	assert.Equal(t, "Bride", st.BrideName)
	assert.Equal(t, "Saturday, May 10, 2025", st.FormattedDate)
	assert.True(t, st.ShowCountdown)
	assert.Equal(t, st.EventTime, st.CountdownTarget)
	assert.Equal(t, "Akasaka Area", st.VenueName)
	assert.Equal(t, "Minato City, Tokyo", st.VenueAddress)
	assert.Equal(t, doc.Location.MapURL, st.MapURL)
	assert.Equal(t, `"Cormorant Garamond"`, st.Font)

	require.Len(t, st.Schedule, len(doc.Schedule))
	assert.Equal(t, "Registration", st.Schedule[0].Title)
	assert.Equal(t, "10:30", st.Schedule[0].Time)
	assert.Equal(t, wedding.IconReception, st.Schedule[0].Icon)

	require.Len(t, st.FAQ, len(doc.FAQ))
	assert.True(t, strings.HasPrefix(st.MessageHTML, "<p>"))
}

func TestBuildJapanese(t *testing.T) {
	doc := wedding.Defaults()
	st := Build(doc, i18n.Japanese, "https://amore.example/")

	assert.Equal(t, "アモーレ", st.GroomName)
	assert.Equal(t, "2025年5月10日土曜日", st.FormattedDate)
	assert.Equal(t, "受付開始", st.Schedule[0].Title)
	// Multi-line greeting renders with hard breaks.
	assert.Contains(t, st.MessageHTML, "<br")
}

func TestBuildSubstitutesFAQTokens(t *testing.T) {
	doc := wedding.Defaults()

	en := Build(doc, i18n.English, "")
	arrival := en.FAQ[2].Answer
	assert.NotContains(t, arrival, "{{time}}")
	assert.Contains(t, arrival, "10:00 AM")
	deadline := en.FAQ[5].Answer
	assert.NotContains(t, deadline, "{{deadline}}")
	assert.Contains(t, deadline, "4/5/2025")

	ja := Build(doc, i18n.Japanese, "")
	assert.Contains(t, ja.FAQ[2].Answer, "10:00")
	assert.Contains(t, ja.FAQ[5].Answer, "2025/4/5")
}

func TestEventTimeParsing(t *testing.T) {
	doc := wedding.Defaults()

	doc.Date = "2025-05-10T10:00:00"
	got := EventTime(doc)
	assert.Equal(t, time.Date(2025, time.May, 10, 10, 0, 0, 0, time.Local), got)

	doc.Date = "2025-05-10"
	got = EventTime(doc)
	assert.Equal(t, time.Date(2025, time.May, 10, 0, 0, 0, 0, time.Local), got)

	doc.Date = "2025-05-10T10:00:00+09:00"
	got = EventTime(doc)
	assert.Equal(t, 10, got.Hour())
}

func TestEventTimeUnparseableFallsBackToNow(t *testing.T) {
	doc := wedding.Defaults()
	doc.Date = "soon!"

	got := EventTime(doc)
	assert.WithinDuration(t, time.Now(), got, 5*time.Second)
}

func TestReplaceTokens(t *testing.T) {
	eventTime := time.Date(2025, time.May, 10, 11, 0, 0, 0, time.Local)

	t.Run("plain text unchanged", func(t *testing.T) {
		assert.Equal(t, "no tokens here",
			ReplaceTokens("no tokens here", i18n.English, eventTime, "2025-04-05"))
	})

	t.Run("global substitution", func(t *testing.T) {
		got := ReplaceTokens("{{time}} and again {{time}}", i18n.English, eventTime, "")
		assert.Equal(t, "11:00 AM and again 11:00 AM", got)
	})

	t.Run("deadline", func(t *testing.T) {
		got := ReplaceTokens("RSVP by {{deadline}}", i18n.Japanese, eventTime, "2025-04-05")
		assert.Equal(t, "RSVP by 2025/4/5", got)
	})

	t.Run("unknown tokens pass through", func(t *testing.T) {
		got := ReplaceTokens("see you at {{venue}}", i18n.English, eventTime, "")
		assert.Equal(t, "see you at {{venue}}", got)
	})
}

func TestRenderRichText(t *testing.T) {
	assert.Equal(t, "", RenderRichText(""))

	got := RenderRichText("Hello **world**")
	assert.Contains(t, got, "<strong>world</strong>")

	got = RenderRichText("first line\nsecond line")
	assert.Contains(t, got, "<br")

	got = RenderRichText(`Hello <script>alert("x")</script>`)
	assert.NotContains(t, got, "<script")
}
