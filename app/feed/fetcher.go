package feed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrNotModified is returned when the feed server answers a conditional
// request with 304; the cached body has no replacement
var ErrNotModified = errors.New("feed not modified")

// Fetcher retrieves feed documents over HTTP. Responses carrying an ETag are
// remembered per URL so subsequent fetches are conditional. Not safe for
// concurrent use; the poll loop is the single caller.
type Fetcher struct {
	httpClient *http.Client
	userAgent  string
	timeout    time.Duration
	etags      map[string]string
}

func NewFetcher(httpClient *http.Client, userAgent string, timeout time.Duration) *Fetcher {
	return &Fetcher{
		httpClient: httpClient,
		userAgent:  userAgent,
		timeout:    timeout,
		etags:      make(map[string]string),
	}
}

// Fetch retrieves the feed document at url
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(timeoutCtx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", f.userAgent)
	if etag, ok := f.etags[url]; ok {
		req.Header.Set("If-None-Match", etag)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotModified {
		return nil, ErrNotModified
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	if etag := resp.Header.Get("ETag"); etag != "" {
		f.etags[url] = etag
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return data, nil
}
