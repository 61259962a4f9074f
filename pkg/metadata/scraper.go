// Package metadata discovers the 6 Minute English episodes that feed the content cache.
package metadata

import (
	"context"
	"log"

	"english-drill/pkg/domain"
	"english-drill/pkg/httpclient"
	"english-drill/pkg/sites"
	"english-drill/pkg/urls"
)

// Source produces the full list of primary content records.
type Source interface {
	FetchMetadata(ctx context.Context) ([]domain.ContentRecord, error)
}

// Scraper reads episodes from the HTML listing page.
type Scraper struct {
	listingURL string
	fetcher    urls.RecordsFetcher
}

// NewScraper creates a scraper for the listing page at listingURL
func NewScraper(client *httpclient.HTTPClient, listingURL string) *Scraper {
	return &Scraper{
		listingURL: listingURL,
		fetcher:    urls.NewHTMLFetcher(client, sites.ExtractSixMinuteEpisodes),
	}
}

// FetchMetadata fetches the listing page and returns its episodes in document order.
// A failed or non-2xx fetch is returned as *httpclient.FetchError.
func (s *Scraper) FetchMetadata(ctx context.Context) ([]domain.ContentRecord, error) {
	log.Printf("MetadataScraper: Fetching listing %s", s.listingURL)
	records, err := s.fetcher.Fetch(ctx, s.listingURL)
	if err != nil {
		log.Printf("MetadataScraper: ERROR fetching metadata from %s: %v", s.listingURL, err)
		return nil, err
	}
	log.Printf("MetadataScraper: Found %d episodes", len(records))
	return records, nil
}
