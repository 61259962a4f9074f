package config

import (
	"fmt"
	"net/url"
	"strings"
)

var validSources = map[string]bool{
	SourceHTML: true, SourceFeed: true,
}

var validClients = map[string]bool{
	"browser": true, "cloudflare": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if !validSources[c.Metadata.Source] {
		errs = append(errs, fmt.Sprintf("metadata.source: must be one of html, feed; got %q", c.Metadata.Source))
	}
	errs = appendURLError(errs, "metadata.listing_url", c.Metadata.ListingURL)
	errs = appendURLError(errs, "metadata.feed_url", c.Metadata.FeedURL)
	errs = appendURLError(errs, "supplementary.base_url", c.Supplementary.BaseURL)

	for key, tmpl := range map[string]string{
		"supplementary.reading_url":   c.Supplementary.ReadingURL,
		"supplementary.listening_url": c.Supplementary.ListeningURL,
	} {
		if !strings.Contains(tmpl, "{}") {
			errs = append(errs, fmt.Sprintf("%s: must contain a {} page placeholder", key))
		}
	}

	if c.Supplementary.Pages < 0 {
		errs = append(errs, fmt.Sprintf("supplementary.pages: must not be negative, got %d", c.Supplementary.Pages))
	}
	if !validClients[c.HTTP.Client] {
		errs = append(errs, fmt.Sprintf("http.client: must be one of browser, cloudflare; got %q", c.HTTP.Client))
	}
	if c.Note.Listenings < 0 {
		errs = append(errs, fmt.Sprintf("note.listenings: must not be negative, got %d", c.Note.Listenings))
	}

	return errs
}

func appendURLError(errs []string, key, raw string) []string {
	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return append(errs, fmt.Sprintf("%s: must be an absolute URL, got %q", key, raw))
	}
	return errs
}
