package config

// FeedsConfig represents the contents of a feeds file
type FeedsConfig struct {
	Feeds []Feed `yaml:"feeds"`
}

// Feed identifies a single status feed to watch
type Feed struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}
