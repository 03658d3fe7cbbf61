package poller

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"statuspulse/app/config"
	"statuspulse/app/feed"
	"statuspulse/app/store"
)

// Poller runs the fetch-parse-classify-store cycle on a fixed interval. A
// single goroutine drives all ticks; the loop has no retry beyond waiting for
// the next tick.
type Poller struct {
	feeds    []config.Feed
	fetcher  *feed.Fetcher
	parser   *feed.Parser
	store    *store.Store
	interval time.Duration
	clock    clockwork.Clock
}

func New(feeds []config.Feed, fetcher *feed.Fetcher, parser *feed.Parser,
	st *store.Store, interval time.Duration, clock clockwork.Clock) *Poller {
	return &Poller{
		feeds:    feeds,
		fetcher:  fetcher,
		parser:   parser,
		store:    st,
		interval: interval,
		clock:    clock,
	}
}

// Run polls until ctx is cancelled. The first tick fires immediately, then
// one tick per interval.
func (p *Poller) Run(ctx context.Context) {
	slog.Info("Pulse monitor active", "feeds", len(p.feeds), "interval", p.interval.String())

	p.tick(ctx)

	ticker := p.clock.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			p.tick(ctx)
		}
	}
}

// tick runs one poll cycle over every configured feed. Failures are logged
// and skipped; the next tick is the retry.
func (p *Poller) tick(ctx context.Context) {
	for _, f := range p.feeds {
		select {
		case <-ctx.Done():
			return
		default:
		}

		added, err := p.pollFeed(ctx, f)
		if err != nil {
			slog.Error("Feed poll failed", "feed", f.Name, "error", err)
			continue
		}

		for _, incident := range added {
			slog.Info("New incident",
				"feed", f.Name,
				"severity", string(incident.Severity),
				"title", incident.Title,
				"published_at", incident.PublishedAt.Format(time.RFC3339))
		}
	}
}

func (p *Poller) pollFeed(ctx context.Context, f config.Feed) ([]store.Incident, error) {
	data, err := p.fetcher.Fetch(ctx, f.URL)
	if errors.Is(err, feed.ErrNotModified) {
		slog.Debug("Feed not modified", "feed", f.Name)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}

	_, entries, err := p.parser.Run(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	added := p.store.UpsertNew(entries)
	if len(added) == 0 {
		slog.Debug("No new incidents", "feed", f.Name, "entries", len(entries))
		return nil, nil
	}

	if err := p.store.Save(); err != nil {
		return nil, fmt.Errorf("failed to save incident history: %w", err)
	}

	return added, nil
}
