package sites

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"english-drill/pkg/domain"
	"english-drill/pkg/urls"
	"github.com/PuerkitoBio/goquery"
)

// Anchor texts on a 6 Minute English episode page.
const (
	DownloadAudioText = "Download Audio"
	DownloadPDFText   = "Download PDF"
)

// ErrMissingElement reports an expected anchor or href that is absent from a page.
var ErrMissingElement = errors.New("expected element not found")

// ExtractSixMinuteEpisodes extracts episodes from the 6 Minute English listing page.
// Each "li.course-content-item.active" yields the episode label from <b>, the title and
// href from "h2 a". Relative hrefs are resolved against the origin of base. Items without
// an href are skipped; document order is kept.
func ExtractSixMinuteEpisodes(html string, base *url.URL) ([]domain.ContentRecord, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	origin := urls.Origin(base)
	result := []domain.ContentRecord{}

	doc.Find("li.course-content-item.active").Each(func(i int, item *goquery.Selection) {
		link := item.Find("h2 a")
		href, exists := link.Attr("href")
		if !exists || strings.TrimSpace(href) == "" {
			return
		}

		pageURL := resolveURL(origin, href)
		if pageURL == "" {
			return
		}

		result = append(result, domain.ContentRecord{
			Episode: strings.TrimSpace(item.Find("b").Text()),
			Title:   strings.TrimSpace(link.Text()),
			PageURL: pageURL,
		})
	})

	return result, nil
}

// DownloadLinks are the audio and PDF hrefs found on an episode page.
type DownloadLinks struct {
	Audio string
	PDF   string
}

// FindDownloadLinks locates the first "Download Audio" and the first "Download PDF"
// anchor (exact, case-sensitive match on the trimmed text) and returns their hrefs as
// written in the page. A missing anchor or href wraps ErrMissingElement.
func FindDownloadLinks(html string) (DownloadLinks, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return DownloadLinks{}, fmt.Errorf("failed to parse HTML: %w", err)
	}

	audio, err := anchorHref(doc, DownloadAudioText)
	if err != nil {
		return DownloadLinks{}, err
	}
	pdf, err := anchorHref(doc, DownloadPDFText)
	if err != nil {
		return DownloadLinks{}, err
	}

	return DownloadLinks{Audio: audio, PDF: pdf}, nil
}

func anchorHref(doc *goquery.Document, text string) (string, error) {
	anchor := doc.Find("a").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return strings.TrimSpace(s.Text()) == text
	}).First()

	if anchor.Length() == 0 {
		return "", fmt.Errorf("%w: anchor %q", ErrMissingElement, text)
	}

	href, exists := anchor.Attr("href")
	if !exists || strings.TrimSpace(href) == "" {
		return "", fmt.Errorf("%w: href of anchor %q", ErrMissingElement, text)
	}
	return strings.TrimSpace(href), nil
}
