package urls

import (
	"context"
	"fmt"
	"net/url"

	"english-drill/pkg/domain"
	"english-drill/pkg/httpclient"
)

// HTMLFetcher handles fetching HTML pages and extracting records using a provided extractor
type HTMLFetcher struct {
	client    *httpclient.HTTPClient
	extractor Extractor
}

// NewHTMLFetcher creates a new HTML fetcher with the given extractor function
func NewHTMLFetcher(client *httpclient.HTTPClient, extractor Extractor) *HTMLFetcher {
	return &HTMLFetcher{
		client:    client,
		extractor: extractor,
	}
}

// Fetch implements RecordsFetcher. Fetch failures are returned unwrapped as
// *httpclient.FetchError so callers can tell them apart from extraction errors.
func (f *HTMLFetcher) Fetch(ctx context.Context, pageURL string) ([]domain.ContentRecord, error) {
	if f.extractor == nil {
		return nil, fmt.Errorf("extractor function is not set")
	}

	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("invalid page URL %q: %w", pageURL, err)
	}

	html, err := f.client.FetchString(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	records, err := f.extractor(html, base)
	if err != nil {
		return nil, fmt.Errorf("failed to extract records: %w", err)
	}
	return records, nil
}
