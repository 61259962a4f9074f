// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	DefaultRootFolder   = ".bbccli"
	DefaultListingURL   = "https://www.bbc.co.uk/learningenglish/features/6-minute-english/"
	DefaultFeedURL      = "https://podcasts.files.bbci.co.uk/p02pc9tn.rss"
	DefaultPracticeBase = "https://test618.com"
	DefaultReadingURL   = "https://test618.com/toefl/read/new-index?s={}"
	DefaultListeningURL = "https://test618.com/toefl/listening/new-index?s={}"
	DefaultPages        = 12
	DefaultMaxAttempts  = 10
	DefaultNoteFolder   = "English/TOEFL"
	DefaultListenings   = 2
	DefaultTimeout      = 60 * time.Second
)

// Metadata sources understood by the selection pipeline.
const (
	SourceHTML = "html"
	SourceFeed = "feed"
)

// Config is the root configuration structure.
type Config struct {
	Storage       StorageConfig       `toml:"storage"`
	Metadata      MetadataConfig      `toml:"metadata"`
	Supplementary SupplementaryConfig `toml:"supplementary"`
	Selection     SelectionConfig     `toml:"selection"`
	HTTP          HTTPConfig          `toml:"http"`
	Note          NoteConfig          `toml:"note"`
}

type StorageConfig struct {
	// Root is the per-user config root holding audio/, pdf/ and cache/.
	Root string `toml:"root"`
}

type MetadataConfig struct {
	Source     string `toml:"source"`
	ListingURL string `toml:"listing_url"`
	FeedURL    string `toml:"feed_url"`
}

type SupplementaryConfig struct {
	BaseURL      string `toml:"base_url"`
	ReadingURL   string `toml:"reading_url"`
	ListeningURL string `toml:"listening_url"`
	Pages        int    `toml:"pages"`
}

type SelectionConfig struct {
	// MaxAttempts bounds the random retry loop. Negative means retry forever.
	MaxAttempts int `toml:"max_attempts"`
}

type HTTPConfig struct {
	// Timeout of a single request. Negative disables the deadline.
	Timeout time.Duration `toml:"timeout"`
	Client  string        `toml:"client"`
}

type NoteConfig struct {
	Folder     string `toml:"folder"`
	Listenings int    `toml:"listenings"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads and parses the configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	// Substitute environment variables
	content := substituteEnvVars(string(data))

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.applyDefaults()

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, &ConfigError{Path: path, Errors: errs}
	}

	return &cfg, nil
}

// LoadOrDefault loads path when it exists and falls back to Default otherwise.
// An explicitly requested file that is missing is an error.
func LoadOrDefault(path string, explicit bool) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !explicit {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return Load(path)
}

func (c *Config) applyDefaults() {
	if c.Storage.Root == "" {
		c.Storage.Root = defaultRoot()
	}
	c.Storage.Root = expandHome(c.Storage.Root)

	if c.Metadata.Source == "" {
		c.Metadata.Source = SourceHTML
	}
	if c.Metadata.ListingURL == "" {
		c.Metadata.ListingURL = DefaultListingURL
	}
	if c.Metadata.FeedURL == "" {
		c.Metadata.FeedURL = DefaultFeedURL
	}

	if c.Supplementary.BaseURL == "" {
		c.Supplementary.BaseURL = DefaultPracticeBase
	}
	if c.Supplementary.ReadingURL == "" {
		c.Supplementary.ReadingURL = DefaultReadingURL
	}
	if c.Supplementary.ListeningURL == "" {
		c.Supplementary.ListeningURL = DefaultListeningURL
	}
	if c.Supplementary.Pages == 0 {
		c.Supplementary.Pages = DefaultPages
	}

	if c.Selection.MaxAttempts == 0 {
		c.Selection.MaxAttempts = DefaultMaxAttempts
	}

	if c.HTTP.Timeout == 0 {
		c.HTTP.Timeout = DefaultTimeout
	}
	if c.HTTP.Client == "" {
		c.HTTP.Client = "browser"
	}

	if c.Note.Folder == "" {
		c.Note.Folder = DefaultNoteFolder
	}
	if c.Note.Listenings == 0 {
		c.Note.Listenings = DefaultListenings
	}
}

// RequestTimeout returns the HTTP timeout to hand to the client; zero disables it.
func (c *Config) RequestTimeout() time.Duration {
	if c.HTTP.Timeout < 0 {
		return 0
	}
	return c.HTTP.Timeout
}

func defaultRoot() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultRootFolder
	}
	return filepath.Join(home, DefaultRootFolder)
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}

// substituteEnvVars replaces ${VAR_NAME} with environment variable values.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

func substituteEnvVars(content string) string {
	return envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		varName := match[2 : len(match)-1] // Strip ${ and }
		if value, ok := os.LookupEnv(varName); ok {
			return value
		}
		return match // Leave unchanged if not found
	})
}
