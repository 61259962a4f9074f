package content

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
)

const maxSummaryRunes = 400

// ExtractSummary returns a short readable introduction of an episode page.
// It prefers the readability excerpt, then the start of the article text, then the
// page's meta description. An empty string means nothing usable was found.
func ExtractSummary(htmlContent string, pageURL string) string {
	var base *url.URL
	if u, err := url.Parse(pageURL); err == nil {
		base = u
	}

	article, err := readability.FromReader(strings.NewReader(htmlContent), base)
	if err == nil {
		if excerpt := normalizeWhitespace(article.Excerpt); excerpt != "" {
			return truncateRunes(excerpt, maxSummaryRunes)
		}
		if text := normalizeWhitespace(article.TextContent); text != "" {
			return truncateRunes(text, maxSummaryRunes)
		}
	}

	// Fallback: meta description via goquery
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return ""
	}
	if desc, exists := doc.Find("meta[name='description']").Attr("content"); exists {
		return truncateRunes(normalizeWhitespace(desc), maxSummaryRunes)
	}
	return ""
}

func normalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return strings.TrimSpace(string(runes[:n])) + "…"
}
