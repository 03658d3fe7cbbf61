package cfg

type Cfg struct {
	// Feed configuration
	FeedURL   string
	FeedsFile string

	// Storage configuration
	DBFile string

	// Poller configuration
	PollInterval int
	FetchTimeout int

	// Application metadata
	UserAgent string
	Debug     bool
	Version   string
}
