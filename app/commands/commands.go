package commands

import (
	"fmt"
	"io"
	"strings"

	"statuspulse/app/config"
	"statuspulse/app/feed"
	"statuspulse/app/store"
)

// TimestampFormat is used for incident timestamps in report output
const TimestampFormat = "2006-01-02 15:04:05"

// Handler implements the read commands over the incident store
type Handler struct {
	store *store.Store
	feeds []config.Feed
	out   io.Writer
}

func NewHandler(st *store.Store, feeds []config.Feed, out io.Writer) *Handler {
	return &Handler{
		store: st,
		feeds: feeds,
		out:   out,
	}
}

// All prints every stored incident in stored order
func (h *Handler) All() error {
	for _, incident := range h.store.All() {
		fmt.Fprintf(h.out, "[%s] %s (%s)\n",
			incident.PublishedAt.Format(TimestampFormat),
			incident.Title,
			strings.ToUpper(string(incident.Severity)))
	}
	return nil
}

// Pulse prints a heartbeat summary of the watched feeds and stored history
func (h *Handler) Pulse() error {
	counts := h.store.CountBySeverity()

	fmt.Fprintf(h.out, "Watching %d feed(s)\n", len(h.feeds))
	fmt.Fprintf(h.out, "Incidents stored: %d (red: %d, yellow: %d, green: %d)\n",
		h.store.Len(),
		counts[feed.SeverityRed],
		counts[feed.SeverityYellow],
		counts[feed.SeverityGreen])

	if last := h.store.Last(); last != nil {
		fmt.Fprintf(h.out, "Last incident: [%s] %s\n",
			last.PublishedAt.Format(TimestampFormat), last.Title)
	} else {
		fmt.Fprintln(h.out, "Last incident: none")
	}

	return nil
}

// Range prints incidents published within [start, end] inclusive, DDMMYYYY
func (h *Handler) Range(start, end string) error {
	incidents, err := h.store.FilterByRange(start, end)
	if err != nil {
		return err
	}

	for _, incident := range incidents {
		fmt.Fprintf(h.out, "[%s] %s\n",
			incident.PublishedAt.Format(TimestampFormat), incident.Title)
	}
	return nil
}

// Filter prints incidents with the given severity label
func (h *Handler) Filter(color string) error {
	incidents, err := h.store.FilterBySeverity(color)
	if err != nil {
		return err
	}

	for _, incident := range incidents {
		fmt.Fprintf(h.out, "[%s] %s\n",
			incident.PublishedAt.Format(TimestampFormat), incident.Title)
	}
	return nil
}
