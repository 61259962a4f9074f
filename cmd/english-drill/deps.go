package main

import (
	"fmt"
	"log"

	"english-drill/pkg/config"
	"english-drill/pkg/content"
	"english-drill/pkg/domain"
	"english-drill/pkg/httpclient"
	"english-drill/pkg/metadata"
	"english-drill/pkg/selection"
	"english-drill/pkg/store"
	"english-drill/pkg/supplementary"
)

// deps are the components shared by every subcommand.
type deps struct {
	cfg    *config.Config
	client *httpclient.HTTPClient
	layout store.Layout
}

func loadDeps() (*deps, error) {
	path, explicit := config.Discover(configPath)
	cfg, err := config.LoadOrDefault(path, explicit)
	if err != nil {
		return nil, err
	}
	return newDeps(cfg), nil
}

func newDeps(cfg *config.Config) *deps {
	return &deps{
		cfg:    cfg,
		client: httpclient.NewClientWithTimeout(httpclient.ClientType(cfg.HTTP.Client), cfg.RequestTimeout()),
		layout: store.NewLayout(cfg.Storage.Root),
	}
}

func (d *deps) metadataSource() (metadata.Source, error) {
	switch d.cfg.Metadata.Source {
	case config.SourceHTML:
		return metadata.NewScraper(d.client, d.cfg.Metadata.ListingURL), nil
	case config.SourceFeed:
		log.Printf("Using RSS feed for episode metadata: %s", d.cfg.Metadata.FeedURL)
		return metadata.NewFeedSource(d.client, d.cfg.Metadata.FeedURL), nil
	default:
		return nil, fmt.Errorf("unknown metadata source %q", d.cfg.Metadata.Source)
	}
}

func (d *deps) driver(includeDownloaded bool) (*selection.Driver, error) {
	source, err := d.metadataSource()
	if err != nil {
		return nil, err
	}
	return selection.NewDriver(selection.Config{
		Layout:            d.layout,
		Source:            source,
		Downloader:        content.NewFetcher(d.client, d.layout),
		MaxAttempts:       d.cfg.Selection.MaxAttempts,
		IncludeDownloaded: includeDownloaded,
	})
}

func (d *deps) practiceScraper() *supplementary.Scraper {
	s := d.cfg.Supplementary
	reading := domain.Category{Name: "reading", URLTemplate: s.ReadingURL, BaseURL: s.BaseURL, Pages: s.Pages}
	listening := domain.Category{Name: "listening", URLTemplate: s.ListeningURL, BaseURL: s.BaseURL, Pages: s.Pages}
	return supplementary.NewScraper(d.client, reading, listening)
}
