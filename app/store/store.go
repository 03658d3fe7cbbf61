package store

import (
	"encoding/json"
	"fmt"
	"os"

	"statuspulse/app/feed"
)

// Store holds the incident history backed by a human-readable JSON file. The
// file is read fully on open and rewritten fully on save. Single-writer:
// not safe for concurrent use.
type Store struct {
	path      string
	incidents []Incident
	seen      map[string]struct{}
}

// Open loads the incident history from path. A missing file yields an empty
// store, not an error.
func Open(path string) (*Store, error) {
	s := &Store{
		path: path,
		seen: make(map[string]struct{}),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read incident history: %w", err)
	}

	if err := json.Unmarshal(data, &s.incidents); err != nil {
		return nil, fmt.Errorf("failed to parse incident history: %w", err)
	}

	for _, incident := range s.incidents {
		s.seen[incident.ID] = struct{}{}
	}

	return s, nil
}

// Save rewrites the history file with the full in-memory collection
func (s *Store) Save() error {
	data, err := json.MarshalIndent(s.incidents, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode incident history: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write incident history: %w", err)
	}

	return nil
}

// UpsertNew classifies and appends entries not already present by id and
// returns the newly added incidents. Ingestion is idempotent: upserting the
// same id twice leaves a single record.
func (s *Store) UpsertNew(entries []feed.Entry) []Incident {
	var added []Incident

	for _, entry := range entries {
		if _, ok := s.seen[entry.ID]; ok {
			continue
		}

		incident := Incident{
			ID:          entry.ID,
			Title:       entry.Title,
			Summary:     entry.Summary,
			PublishedAt: entry.PublishedAt,
			Severity:    feed.Classify(entry),
		}

		s.incidents = append(s.incidents, incident)
		s.seen[entry.ID] = struct{}{}
		added = append(added, incident)
	}

	return added
}

// All returns every stored incident in stored order
func (s *Store) All() []Incident {
	incidents := make([]Incident, len(s.incidents))
	copy(incidents, s.incidents)
	return incidents
}

// Len returns the number of stored incidents
func (s *Store) Len() int {
	return len(s.incidents)
}

// Last returns the most recently stored incident, or nil for an empty store
func (s *Store) Last() *Incident {
	if len(s.incidents) == 0 {
		return nil
	}
	incident := s.incidents[len(s.incidents)-1]
	return &incident
}

// CountBySeverity returns incident counts per severity label
func (s *Store) CountBySeverity() map[feed.Severity]int {
	counts := make(map[feed.Severity]int)
	for _, incident := range s.incidents {
		counts[incident.Severity]++
	}
	return counts
}

// Path returns the location of the backing file
func (s *Store) Path() string {
	return s.path
}
