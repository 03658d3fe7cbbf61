package cfg

import (
	"testing"
)

func TestGetVersion(t *testing.T) {
	// Test default version
	if GetVersion() == "" {
		t.Error("GetVersion should never return empty string")
	}

	version := GetVersion()
	if version != "dev" && version != "unknown" {
		// This is fine, version could be set at build time
		t.Logf("Version: %s", version)
	}
}

func TestConfigFields(t *testing.T) {
	// Create a config instance to test field access
	cfg := &Cfg{
		FeedURL:      "https://status.example.com/history.atom",
		FeedsFile:    "./feeds.yml",
		DBFile:       "history.json",
		PollInterval: 60,
		FetchTimeout: 10,
		UserAgent:    "Test Agent",
		Debug:        true,
		Version:      "test-version",
	}

	if cfg.FeedURL != "https://status.example.com/history.atom" {
		t.Errorf("Expected feed URL 'https://status.example.com/history.atom', got '%s'", cfg.FeedURL)
	}
	if cfg.FeedsFile != "./feeds.yml" {
		t.Errorf("Expected feeds file './feeds.yml', got '%s'", cfg.FeedsFile)
	}
	if cfg.DBFile != "history.json" {
		t.Errorf("Expected db file 'history.json', got '%s'", cfg.DBFile)
	}
	if cfg.PollInterval != 60 {
		t.Errorf("Expected poll interval 60, got %d", cfg.PollInterval)
	}
	if cfg.FetchTimeout != 10 {
		t.Errorf("Expected fetch timeout 10, got %d", cfg.FetchTimeout)
	}
	if cfg.UserAgent != "Test Agent" {
		t.Errorf("Expected user agent 'Test Agent', got '%s'", cfg.UserAgent)
	}
	if !cfg.Debug {
		t.Error("Expected debug to be enabled")
	}
	if cfg.Version != "test-version" {
		t.Errorf("Expected version 'test-version', got '%s'", cfg.Version)
	}
}
