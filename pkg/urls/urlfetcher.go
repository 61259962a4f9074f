package urls

import (
	"context"
	"net/url"

	"english-drill/pkg/domain"
)

// Extractor turns one listing page into content records. base is the URL the page was
// fetched from; extractors use it to resolve relative hrefs.
type Extractor func(html string, base *url.URL) ([]domain.ContentRecord, error)

// RecordsFetcher defines the interface for listing pages that yield content records
type RecordsFetcher interface {
	Fetch(ctx context.Context, pageURL string) ([]domain.ContentRecord, error)
}

// Origin returns scheme://host of u.
func Origin(u *url.URL) *url.URL {
	return &url.URL{Scheme: u.Scheme, Host: u.Host}
}
