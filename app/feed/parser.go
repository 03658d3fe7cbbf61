package feed

import (
	"bytes"
	"cmp"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
)

// Summaries are truncated to this many runes before storage
const maxSummaryLength = 200

var htmlTagPattern = regexp.MustCompile(`<[^>]+>`)

type Parser struct {
	gofeedParser *gofeed.Parser
}

func NewParser() *Parser {
	return &Parser{
		gofeedParser: gofeed.NewParser(),
	}
}

// Run parses a raw feed document and returns metadata and normalized entries
func (p *Parser) Run(data []byte) (*Metadata, []Entry, error) {
	parsed, err := p.gofeedParser.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	metadata := &Metadata{
		Title: parsed.Title,
		Link:  parsed.Link,
	}

	if parsed.UpdatedParsed != nil {
		metadata.Updated = parsed.UpdatedParsed
	}

	entries := make([]Entry, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		entries = append(entries, p.normalizeItem(item))
	}

	return metadata, entries, nil
}

func (p *Parser) normalizeItem(item *gofeed.Item) Entry {
	entry := Entry{
		ID:      cmp.Or(item.GUID, item.Link),
		Title:   item.Title,
		Summary: cleanText(cmp.Or(item.Description, item.Content)),
	}

	if entry.ID == "" {
		entry.ID = p.generateContentHash(item)
	}

	switch {
	case item.PublishedParsed != nil:
		entry.PublishedAt = *item.PublishedParsed
	case item.UpdatedParsed != nil:
		entry.PublishedAt = *item.UpdatedParsed
	default:
		entry.PublishedAt = time.Now().UTC()
	}

	return entry
}

// generateContentHash derives a stable identifier for entries without a GUID
// or link
func (p *Parser) generateContentHash(item *gofeed.Item) string {
	content := fmt.Sprintf("%s|%s", item.Title, item.Link)

	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}

// cleanText strips HTML tags from a summary and truncates it for storage
func cleanText(html string) string {
	text := strings.TrimSpace(htmlTagPattern.ReplaceAllString(html, ""))

	runes := []rune(text)
	if len(runes) > maxSummaryLength {
		return string(runes[:maxSummaryLength])
	}
	return text
}
