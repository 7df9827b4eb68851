package i18n

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, Japanese, Normalize("ja"))
	assert.Equal(t, Japanese, Normalize("ja-JP"))
	assert.Equal(t, English, Normalize("EN"))
	assert.Equal(t, Burmese, Normalize("my-MM"))
	assert.Equal(t, Default, Normalize("fr"))
	assert.Equal(t, Default, Normalize(""))
}

func TestSupported(t *testing.T) {
	assert.Equal(t, []Language{English, Japanese, Burmese}, Supported())
	assert.True(t, IsSupported(Burmese))
	assert.False(t, IsSupported(Language("fr")))
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		explicit string
		accept   string
		want     Language
	}{
		{name: "explicit wins", explicit: "ja", accept: "en-US,en;q=0.9", want: Japanese},
		{name: "explicit with region", explicit: "my-MM", accept: "", want: Burmese},
		{name: "unsupported explicit falls to accept", explicit: "fr", accept: "ja;q=0.8,en;q=0.5", want: Japanese},
		{name: "accept header ordering", accept: "fr-FR,fr;q=0.9,ja;q=0.8,en;q=0.7", want: Japanese},
		{name: "q values override order", accept: "en;q=0.3,ja;q=0.9", want: Japanese},
		{name: "equal q keeps listed order", accept: "en;q=0.8,ja;q=0.8", want: English},
		{name: "zero q skipped in favor of lower listed", accept: "ja;q=0,en;q=0.1", want: English},
		{name: "nothing supported", accept: "fr,de;q=0.9", want: Default},
		{name: "empty everything", want: Default},
		{name: "malformed q value ignored", accept: "ja;q=zz,en", want: Japanese},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.explicit, tt.accept))
		})
	}
}

func TestDateFormatting(t *testing.T) {
	// 2025-05-10 is a Saturday.
	day := time.Date(2025, time.May, 10, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, "Saturday, May 10, 2025", FormatLongDate(English, day))
	assert.Equal(t, "2025年5月10日土曜日", FormatLongDate(Japanese, day))
	assert.Equal(t, "Saturday, 10 May 2025", FormatLongDate(Burmese, day))

	assert.Equal(t, "5/10/2025", FormatShortDate(English, day))
	assert.Equal(t, "2025/5/10", FormatShortDate(Japanese, day))
	assert.Equal(t, "10/5/2025", FormatShortDate(Burmese, day))
}

func TestTimeOfDayFormatting(t *testing.T) {
	afternoon := time.Date(2025, time.May, 10, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, "2:30 PM", FormatTimeOfDay(English, afternoon))
	assert.Equal(t, "14:30", FormatTimeOfDay(Japanese, afternoon))
	assert.Equal(t, "2:30 PM", FormatTimeOfDay(Burmese, afternoon))
}
