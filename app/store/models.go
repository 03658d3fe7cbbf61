package store

import (
	"time"

	"statuspulse/app/feed"
)

// Incident is a single classified status event. Records are immutable once
// stored and the history is append-only.
type Incident struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Summary     string        `json:"summary"`
	PublishedAt time.Time     `json:"published_at"`
	Severity    feed.Severity `json:"severity"`
}
