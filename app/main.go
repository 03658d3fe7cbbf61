package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"

	"statuspulse/app/cfg"
	"statuspulse/app/commands"
	"statuspulse/app/config"
	"statuspulse/app/feed"
	"statuspulse/app/poller"
	"statuspulse/app/store"
)

func main() {
	appCfg, args, err := cfg.Load()
	if err != nil {
		// go-flags already printed the parse error
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	setupLogger(appCfg)

	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: statuspulse [OPTIONS] <listen|all|pulse|range|filter> [arguments]")
		os.Exit(1)
	}

	st, err := store.Open(appCfg.DBFile)
	if err != nil {
		slog.Error("Failed to open incident history", "path", appCfg.DBFile, "error", err)
		os.Exit(1)
	}

	feeds, err := loadFeeds(appCfg)
	if err != nil {
		slog.Error("Failed to load feeds configuration", "path", appCfg.FeedsFile, "error", err)
		os.Exit(1)
	}

	handler := commands.NewHandler(st, feeds, os.Stdout)

	command, commandArgs := args[0], args[1:]
	switch command {
	case "listen":
		runListen(feeds, st)
		return
	case "all":
		err = handler.All()
	case "pulse":
		err = handler.Pulse()
	case "range":
		if len(commandArgs) != 2 {
			fmt.Fprintln(os.Stderr, "Usage: statuspulse range <start> <end> (dates in DDMMYYYY)")
			os.Exit(1)
		}
		err = handler.Range(commandArgs[0], commandArgs[1])
	case "filter":
		if len(commandArgs) != 1 {
			fmt.Fprintln(os.Stderr, "Usage: statuspulse filter <green|yellow|red>")
			os.Exit(1)
		}
		err = handler.Filter(commandArgs[0])
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		os.Exit(1)
	}

	if err != nil {
		var validationErr *store.ValidationError
		if errors.As(err, &validationErr) {
			fmt.Fprintln(os.Stderr, "Error:", validationErr.Error())
		} else {
			slog.Error("Command failed", "command", command, "error", err)
		}
		os.Exit(1)
	}
}

// runListen runs the poll loop until SIGINT or SIGTERM
func runListen(feeds []config.Feed, st *store.Store) {
	appCfg := cfg.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fetcher := feed.NewFetcher(&http.Client{}, appCfg.UserAgent,
		time.Duration(appCfg.FetchTimeout)*time.Second)
	parser := feed.NewParser()
	interval := time.Duration(appCfg.PollInterval) * time.Second

	p := poller.New(feeds, fetcher, parser, st, interval, clockwork.NewRealClock())
	p.Run(ctx)

	slog.Info("Pulse monitor stopped")
}

// loadFeeds resolves the watched feeds: the feeds file when configured,
// otherwise the single feed URL
func loadFeeds(appCfg *cfg.Cfg) ([]config.Feed, error) {
	loader := config.NewLoader(appCfg.FeedsFile)
	feeds, err := loader.Load()
	if err != nil {
		return nil, err
	}

	if len(feeds) == 0 {
		feeds = []config.Feed{{Name: "default", URL: appCfg.FeedURL}}
	}

	return feeds, nil
}

func setupLogger(appCfg *cfg.Cfg) {
	level := slog.LevelInfo
	if appCfg.Debug {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}
