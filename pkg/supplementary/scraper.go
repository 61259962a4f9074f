// Package supplementary scrapes TOEFL reading and listening practice links.
package supplementary

import (
	"context"
	"log"
	"strconv"
	"strings"

	"english-drill/pkg/domain"
	"english-drill/pkg/httpclient"
	"english-drill/pkg/sites"
	"english-drill/pkg/urls"
)

const pagePlaceholder = "{}"

// Scraper walks the paginated practice listings of a category.
type Scraper struct {
	client    *httpclient.HTTPClient
	reading   domain.Category
	listening domain.Category
}

// NewScraper creates a scraper for the reading and listening categories
func NewScraper(client *httpclient.HTTPClient, reading, listening domain.Category) *Scraper {
	return &Scraper{
		client:    client,
		reading:   reading,
		listening: listening,
	}
}

// FetchReading returns the practice links of the reading category
func (s *Scraper) FetchReading(ctx context.Context) []domain.ContentRecord {
	return s.FetchCategory(ctx, s.reading)
}

// FetchListening returns the practice links of the listening category
func (s *Scraper) FetchListening(ctx context.Context) []domain.ContentRecord {
	return s.FetchCategory(ctx, s.listening)
}

// FetchCategory requests every page 0..Pages-1 of category exactly once. A page that
// fails to load or parse is logged and skipped; the walk always continues to the next index.
func (s *Scraper) FetchCategory(ctx context.Context, category domain.Category) []domain.ContentRecord {
	fetcher := urls.NewHTMLFetcher(s.client, sites.NewPracticeItemsExtractor(category.BaseURL))

	var result []domain.ContentRecord
	for _, pageURL := range PageURLs(category) {
		records, err := fetcher.Fetch(ctx, pageURL)
		if err != nil {
			log.Printf("SupplementaryScraper: Failed to fetch %s URL %s: %v", category.Name, pageURL, err)
			continue
		}
		result = append(result, records...)
	}

	log.Printf("SupplementaryScraper: Collected %d %s items", len(result), category.Name)
	return result
}

// PageURLs builds the listing URL of every page of category, in page order.
func PageURLs(category domain.Category) []string {
	pageURLs := make([]string, 0, max(category.Pages, 0))
	for i := 0; i < category.Pages; i++ {
		pageURLs = append(pageURLs, strings.Replace(category.URLTemplate, pagePlaceholder, strconv.Itoa(i), 1))
	}
	return pageURLs
}
