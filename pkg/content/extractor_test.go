package content

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestExtractSummary_MetaDescriptionExcerpt(t *testing.T) {
	html := `<html><head><title>Weather</title>
<meta name="description" content="Neil and Beth talk about   the weather."></head>
<body><article><p>Short body about the weather.</p></article></body></html>`

	summary := ExtractSummary(html, "https://www.bbc.co.uk/ep1")
	assert.Contains(t, summary, "weather")
	assert.NotContains(t, summary, "  ")
}

func TestExtractSummary_Truncates(t *testing.T) {
	long := strings.Repeat("word ", 500)
	html := `<html><head><meta name="description" content="` + long + `"></head><body></body></html>`

	summary := ExtractSummary(html, "https://www.bbc.co.uk/ep1")
	assert.LessOrEqual(t, utf8.RuneCountInString(summary), maxSummaryRunes+1)
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "abc", truncateRunes("abc", 5))
	assert.Equal(t, "ab…", truncateRunes("abcdef", 2))
	assert.Equal(t, "日本…", truncateRunes("日本語です", 2))
}

func TestProbeAudio_NotAnMP3(t *testing.T) {
	info := ProbeAudio([]byte("not really an mp3"))
	assert.Empty(t, info.Title)
	assert.Zero(t, info.Duration)
}

func TestCountPDFPages_Invalid(t *testing.T) {
	_, err := CountPDFPages(nil)
	assert.Error(t, err)

	_, err = CountPDFPages([]byte("%PDF-1.4 worksheet"))
	assert.Error(t, err)
}
