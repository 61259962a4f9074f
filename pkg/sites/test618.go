package sites

import (
	"fmt"
	"net/url"
	"strings"

	"english-drill/pkg/domain"
	"english-drill/pkg/urls"
	"github.com/PuerkitoBio/goquery"
)

// NewPracticeItemsExtractor returns an extractor for test618.com practice listings.
//
// Every "div.content-item-v2" block carries a title in <b> and two anchors: the first
// links to the category tag, the second to the practice problem. Only the second anchor
// is used. Its href is appended to baseURL as-is (origin of the page when baseURL is empty).
// Blocks with fewer than two anchors or an empty title are skipped.
func NewPracticeItemsExtractor(baseURL string) urls.Extractor {
	baseURL = strings.TrimRight(baseURL, "/")

	return func(html string, base *url.URL) ([]domain.ContentRecord, error) {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
		if err != nil {
			return nil, fmt.Errorf("failed to parse HTML: %w", err)
		}

		prefix := baseURL
		if prefix == "" && base != nil {
			prefix = urls.Origin(base).String()
		}

		result := []domain.ContentRecord{}
		doc.Find("div.content-item-v2").Each(func(i int, block *goquery.Selection) {
			title := strings.TrimSpace(block.Find("b").Text())
			anchors := block.Find("a")
			if title == "" || anchors.Length() < 2 {
				return
			}

			problemHref, exists := anchors.Eq(1).Attr("href")
			if !exists || problemHref == "" {
				return
			}

			result = append(result, domain.ContentRecord{
				Episode: "",
				Title:   title,
				PageURL: prefix + problemHref,
			})
		})

		return result, nil
	}
}
