package feed

import "time"

// Metadata contains metadata about the parsed feed
type Metadata struct {
	Title   string
	Link    string
	Updated *time.Time
}

// Entry represents a normalized status feed entry
type Entry struct {
	ID          string
	Title       string
	Summary     string
	PublishedAt time.Time
}
