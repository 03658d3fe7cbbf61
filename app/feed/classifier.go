package feed

import (
	"fmt"
	"strings"
)

// Severity is the status color assigned to an incident
type Severity string

const (
	SeverityGreen  Severity = "green"
	SeverityYellow Severity = "yellow"
	SeverityRed    Severity = "red"
)

var (
	redKeywords    = []string{"down", "outage", "critical"}
	yellowKeywords = []string{"latency", "degraded", "issue"}
)

// Classify maps an entry's text content to a severity. Red keywords are
// checked before yellow, first match wins; entries matching neither set are
// green. Matching is substring based, so "countdown" matches "down".
func Classify(entry Entry) Severity {
	text := strings.ToLower(entry.Title + " " + entry.Summary)

	for _, keyword := range redKeywords {
		if strings.Contains(text, keyword) {
			return SeverityRed
		}
	}

	for _, keyword := range yellowKeywords {
		if strings.Contains(text, keyword) {
			return SeverityYellow
		}
	}

	return SeverityGreen
}

// ParseSeverity validates a user-supplied severity label
func ParseSeverity(label string) (Severity, error) {
	switch Severity(strings.ToLower(label)) {
	case SeverityGreen:
		return SeverityGreen, nil
	case SeverityYellow:
		return SeverityYellow, nil
	case SeverityRed:
		return SeverityRed, nil
	default:
		return "", fmt.Errorf("unknown severity %q, expected one of green, yellow, red", label)
	}
}
