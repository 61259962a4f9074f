package metadata

import (
	"context"
	"fmt"
	"log"
	"strings"

	"english-drill/pkg/domain"
	"english-drill/pkg/httpclient"
	"github.com/mmcdole/gofeed"
)

// FeedSource reads episodes from the programme's podcast RSS feed instead of the HTML listing.
type FeedSource struct {
	feedURL    string
	client     *httpclient.HTTPClient
	feedParser *gofeed.Parser
}

// NewFeedSource creates a feed-backed metadata source
func NewFeedSource(client *httpclient.HTTPClient, feedURL string) *FeedSource {
	return &FeedSource{
		feedURL:    feedURL,
		client:     client,
		feedParser: gofeed.NewParser(),
	}
}

// FetchMetadata fetches and parses the feed. Items without a link are skipped.
func (f *FeedSource) FetchMetadata(ctx context.Context) ([]domain.ContentRecord, error) {
	log.Printf("FeedSource: Fetching feed %s", f.feedURL)
	body, err := f.client.FetchString(ctx, f.feedURL)
	if err != nil {
		log.Printf("FeedSource: ERROR fetching feed %s: %v", f.feedURL, err)
		return nil, err
	}

	feed, err := f.feedParser.ParseString(body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse RSS feed: %w", err)
	}

	records := make([]domain.ContentRecord, 0, len(feed.Items))
	for _, item := range feed.Items {
		link := strings.TrimSpace(item.Link)
		if link == "" {
			continue
		}

		var episode string
		if item.ITunesExt != nil {
			episode = strings.TrimSpace(item.ITunesExt.Episode)
		}

		records = append(records, domain.ContentRecord{
			Episode: episode,
			Title:   strings.TrimSpace(item.Title),
			PageURL: link,
		})
	}

	log.Printf("FeedSource: Found %d episodes", len(records))
	return records, nil
}
