package cfg

import (
	"cmp"
	"fmt"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Feed configuration
	FeedURL   string `long:"feed-url" env:"FEED_URL" default:"https://status.openai.com/history.atom" description:"Status feed URL to watch"`
	FeedsFile string `long:"feeds-file" env:"FEEDS_FILE" description:"YAML file listing multiple status feeds (overrides --feed-url)"`

	// Storage configuration
	DBFile string `long:"db" env:"DB_FILE" default:"status_history.json" description:"Path to the incident history file"`

	// Poller configuration
	PollInterval int `long:"interval" env:"POLL_INTERVAL" default:"60" description:"Poll interval in seconds"`
	FetchTimeout int `long:"timeout" env:"FETCH_TIMEOUT" default:"10" description:"Feed fetch timeout in seconds"`

	// Application metadata
	UserAgent string `long:"user-agent" env:"USER_AGENT" default:"statuspulse/1.0" description:"User agent string for HTTP requests"`
	Debug     bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

// Load parses flags and environment variables. The returned slice holds the
// remaining positional arguments (the command and its arguments). A nil Cfg
// with a nil error means help was requested.
func Load() (*Cfg, []string, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)
	parser.Usage = "[OPTIONS] <listen|all|pulse|range|filter> [arguments]"

	args, err := parser.Parse()
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil, nil
			}
		}
		return nil, nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		FeedURL:      raw.FeedURL,
		FeedsFile:    raw.FeedsFile,
		DBFile:       raw.DBFile,
		PollInterval: raw.PollInterval,
		FetchTimeout: raw.FetchTimeout,
		UserAgent:    raw.UserAgent,
		Debug:        raw.Debug,
		Version:      GetVersion(),
	}

	globalCfg = cfg

	return cfg, args, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}
