package store

import (
	"fmt"
	"time"

	"statuspulse/app/feed"
)

// DateLayout is the DDMMYYYY format accepted by range queries
const DateLayout = "02012006"

// ValidationError reports unusable user input. Commands print it and exit
// non-zero; no partial results accompany it.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func newValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// FilterByRange returns incidents published within [start, end] inclusive,
// in stored order. Dates are DDMMYYYY.
func (s *Store) FilterByRange(start, end string) ([]Incident, error) {
	startDay, err := time.ParseInLocation(DateLayout, start, time.UTC)
	if err != nil {
		return nil, newValidationError("invalid start date %q: expected DDMMYYYY", start)
	}

	endDay, err := time.ParseInLocation(DateLayout, end, time.UTC)
	if err != nil {
		return nil, newValidationError("invalid end date %q: expected DDMMYYYY", end)
	}

	// End day is inclusive
	endBoundary := endDay.AddDate(0, 0, 1)

	var matched []Incident
	for _, incident := range s.incidents {
		published := incident.PublishedAt.UTC()
		if !published.Before(startDay) && published.Before(endBoundary) {
			matched = append(matched, incident)
		}
	}

	return matched, nil
}

// FilterBySeverity returns incidents with the given severity label, in stored
// order
func (s *Store) FilterBySeverity(label string) ([]Incident, error) {
	severity, err := feed.ParseSeverity(label)
	if err != nil {
		return nil, newValidationError("%v", err)
	}

	var matched []Incident
	for _, incident := range s.incidents {
		if incident.Severity == severity {
			matched = append(matched, incident)
		}
	}

	return matched, nil
}
