package config

import (
	"fmt"
	"net/url"
	"os"

	"gopkg.in/yaml.v3"
)

// Loader handles loading and validation of the feeds file
type Loader struct {
	path string
}

// NewLoader creates a new feeds file loader
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load reads the feeds file and returns the configured feeds. A missing file
// is not an error; the caller falls back to the single configured feed URL.
func (l *Loader) Load() ([]Feed, error) {
	if l.path == "" {
		return nil, nil
	}

	if _, err := os.Stat(l.path); os.IsNotExist(err) {
		return nil, nil
	}

	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read feeds file: %w", err)
	}

	var cfg FeedsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse feeds file: %w", err)
	}

	for i := range cfg.Feeds {
		if err := l.validate(&cfg.Feeds[i]); err != nil {
			return nil, fmt.Errorf("invalid feed entry %d in %s: %w", i+1, l.path, err)
		}
	}

	return cfg.Feeds, nil
}

// validate checks a feed entry and fills in a default name from the URL host
func (l *Loader) validate(feed *Feed) error {
	if feed.URL == "" {
		return fmt.Errorf("feed URL is required")
	}

	parsed, err := url.Parse(feed.URL)
	if err != nil {
		return fmt.Errorf("invalid feed URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("feed URL must be http or https")
	}

	if feed.Name == "" {
		feed.Name = parsed.Host
	}

	return nil
}
