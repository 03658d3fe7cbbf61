package store

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"statuspulse/app/feed"
)

func seededStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "history.json"))
	if err != nil {
		t.Fatal(err)
	}

	store.UpsertNew([]feed.Entry{
		testEntry("dec", "Issue in December", time.Date(2024, 12, 31, 23, 59, 0, 0, time.UTC)),
		testEntry("jan-first", "API outage reported", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)),
		testEntry("jan-mid", "Elevated latency", time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)),
		testEntry("jan-last", "Another outage", time.Date(2025, 1, 31, 23, 0, 0, 0, time.UTC)),
		testEntry("feb", "All systems operational", time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)),
	})

	return store
}

func TestFilterByRangeInclusiveBoundaries(t *testing.T) {
	store := seededStore(t)

	matched, err := store.FilterByRange("01012025", "31012025")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if len(matched) != 3 {
		t.Fatalf("Expected 3 incidents in January, got %d", len(matched))
	}

	// Stored order is preserved
	wantOrder := []string{"jan-first", "jan-mid", "jan-last"}
	for i, want := range wantOrder {
		if matched[i].ID != want {
			t.Errorf("Expected incident %s at position %d, got %s", want, i, matched[i].ID)
		}
	}
}

func TestFilterByRangeEmptyResult(t *testing.T) {
	store := seededStore(t)

	matched, err := store.FilterByRange("01032025", "31032025")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(matched) != 0 {
		t.Errorf("Expected no incidents, got %d", len(matched))
	}
}

func TestFilterByRangeStartAfterEnd(t *testing.T) {
	store := seededStore(t)

	matched, err := store.FilterByRange("31012025", "01012025")
	if err != nil {
		t.Fatalf("Expected no error for inverted range, got: %v", err)
	}
	if len(matched) != 0 {
		t.Errorf("Expected empty result for inverted range, got %d", len(matched))
	}
}

func TestFilterByRangeInvalidDate(t *testing.T) {
	store := seededStore(t)

	for _, dates := range [][2]string{
		{"2025-01-01", "31012025"},
		{"01012025", "January"},
		{"99999999", "31012025"},
		{"", ""},
	} {
		matched, err := store.FilterByRange(dates[0], dates[1])
		if err == nil {
			t.Errorf("Expected validation error for dates %q..%q", dates[0], dates[1])
			continue
		}

		var validationErr *ValidationError
		if !errors.As(err, &validationErr) {
			t.Errorf("Expected ValidationError, got %T: %v", err, err)
		}
		if matched != nil {
			t.Error("Expected no partial results alongside a validation error")
		}
	}
}

func TestFilterBySeverity(t *testing.T) {
	store := seededStore(t)

	matched, err := store.FilterBySeverity("red")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if len(matched) != 2 {
		t.Fatalf("Expected 2 red incidents, got %d", len(matched))
	}
	for _, incident := range matched {
		if incident.Severity != feed.SeverityRed {
			t.Errorf("Expected only red incidents, got %s for %s", incident.Severity, incident.ID)
		}
	}
	if matched[0].ID != "jan-first" || matched[1].ID != "jan-last" {
		t.Errorf("Expected stored order preserved, got %s, %s", matched[0].ID, matched[1].ID)
	}
}

func TestFilterBySeverityNoMatches(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "history.json"))
	if err != nil {
		t.Fatal(err)
	}

	store.UpsertNew([]feed.Entry{
		testEntry("red-1", "API outage reported", time.Now().UTC()),
	})

	matched, err := store.FilterBySeverity("green")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(matched) != 0 {
		t.Errorf("Expected empty result, got %d", len(matched))
	}
}

func TestFilterBySeverityInvalidColor(t *testing.T) {
	store := seededStore(t)
	before := store.Len()

	matched, err := store.FilterBySeverity("purple")
	if err == nil {
		t.Fatal("Expected validation error for unknown severity")
	}

	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Errorf("Expected ValidationError, got %T: %v", err, err)
	}
	if matched != nil {
		t.Error("Expected no partial results alongside a validation error")
	}

	// The store is left unmodified
	if store.Len() != before {
		t.Errorf("Expected store untouched, length changed from %d to %d", before, store.Len())
	}
}
