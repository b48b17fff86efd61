package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/mallelamanojkumar90/Sermon/config"
	"github.com/mallelamanojkumar90/Sermon/emailer"
	"github.com/mallelamanojkumar90/Sermon/fetch"
	"github.com/mallelamanojkumar90/Sermon/mailer"
	"github.com/mallelamanojkumar90/Sermon/sermon"
	"golang.org/x/exp/slog"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

func main() {
	ctx := context.Background()

	// a .env file is optional, deployments set the variables directly
	_ = godotenv.Load()

	logger := newLogger(
		getParam("LOG_LEVEL", config.DefaultLogLevel),
		getParam("LOG_FILE", config.DefaultLogFile),
	)

	cfg, err := config.Load(logger)
	if err != nil {
		logger.Error("configuration validation failed", err)
		os.Exit(1)
	}

	ytClient, err := youtube.NewService(ctx, option.WithAPIKey(cfg.YoutubeAPIKey))
	if err != nil {
		logger.Error("unable to create youtube service", err)
		os.Exit(1)
	}

	selector := sermon.NewSelector(fetch.NewYoutube(ytClient, logger), logger)
	sender := mailer.NewSendGrid(cfg.SendgridAPIKey, cfg.SenderEmail, cfg.RecipientEmail, logger)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	emailer.New(selector, sender, cfg.ChannelIDs, cfg.Interval(), logger).Run(ctx)
}

func newLogger(level, file string) *slog.Logger {
	out := io.Writer(os.Stderr)
	if err := os.MkdirAll(filepath.Dir(file), 0o755); err == nil {
		if f, err := os.OpenFile(file, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); err == nil {
			out = io.MultiWriter(os.Stderr, f)
		}
	}

	return slog.New(slog.HandlerOptions{Level: parseLevel(level)}.NewTextHandler(out))
}

func parseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARNING", "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getParam(param, def string) string {
	if val := os.Getenv(param); val != "" {
		return val
	}
	return def
}
