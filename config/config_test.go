package config_test

import (
	"io"
	"testing"
	"time"

	"github.com/mallelamanojkumar90/Sermon/config"
	"github.com/mallelamanojkumar90/Sermon/model"
	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/slog"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("YOUTUBE_API_KEY", "yt-key")
	t.Setenv("YOUTUBE_CHANNEL_IDS", "UCaaaaaaaaaaaaaaaaaaaaaa, UCbbbbbbbbbbbbbbbbbbbbbb")
	t.Setenv("SENDGRID_API_KEY", "sg-key")
	t.Setenv("SENDER_EMAIL", "sender@example.com")
	t.Setenv("RECIPIENT_EMAIL", "recipient@example.com")
	t.Setenv("CHECK_INTERVAL_HOURS", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FILE", "")
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard))
}

func TestLoad(t *testing.T) {
	assert := assert.New(t)
	setRequiredEnv(t)

	cfg, err := config.Load(testLogger())
	assert.NoError(err)
	assert.Equal("yt-key", cfg.YoutubeAPIKey)
	assert.Equal([]model.YoutubeChannelID{
		"UCaaaaaaaaaaaaaaaaaaaaaa",
		"UCbbbbbbbbbbbbbbbbbbbbbb",
	}, cfg.ChannelIDs)
	assert.Equal("sg-key", cfg.SendgridAPIKey)
	assert.Equal("sender@example.com", cfg.SenderEmail)
	assert.Equal("recipient@example.com", cfg.RecipientEmail)
	assert.Equal(24, cfg.CheckIntervalHours)
	assert.Equal(24*time.Hour, cfg.Interval())
	assert.Equal(config.DefaultLogLevel, cfg.LogLevel)
	assert.Equal(config.DefaultLogFile, cfg.LogFile)
}

func TestLoadMissingRequired(t *testing.T) {
	for _, key := range []string{
		"YOUTUBE_API_KEY",
		"YOUTUBE_CHANNEL_IDS",
		"SENDGRID_API_KEY",
		"SENDER_EMAIL",
		"RECIPIENT_EMAIL",
	} {
		t.Run(key, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(key, "")

			_, err := config.Load(testLogger())
			if err == nil {
				t.Errorf("expected error when %s is missing", key)
			}
		})
	}
}

func TestLoadInvalidInterval(t *testing.T) {
	for _, interval := range []string{"0", "-3", "abc"} {
		t.Run(interval, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv("CHECK_INTERVAL_HOURS", interval)

			_, err := config.Load(testLogger())
			if err == nil {
				t.Errorf("expected error for interval %q", interval)
			}
		})
	}
}

func TestLoadInvalidEmail(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("RECIPIENT_EMAIL", "not-an-address")

	_, err := config.Load(testLogger())
	assert.Error(t, err)
}

func TestLoadChannelIDs(t *testing.T) {
	assert := assert.New(t)

	t.Run("malformed id is a warning, not an error", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("YOUTUBE_CHANNEL_IDS", "definitely-not-a-channel")

		cfg, err := config.Load(testLogger())
		assert.NoError(err)
		assert.Equal([]model.YoutubeChannelID{"definitely-not-a-channel"}, cfg.ChannelIDs)
	})

	t.Run("blank entries are dropped", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("YOUTUBE_CHANNEL_IDS", " UCaaaaaaaaaaaaaaaaaaaaaa ,, ")

		cfg, err := config.Load(testLogger())
		assert.NoError(err)
		assert.Equal([]model.YoutubeChannelID{"UCaaaaaaaaaaaaaaaaaaaaaa"}, cfg.ChannelIDs)
	})

	t.Run("only blank entries fails", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("YOUTUBE_CHANNEL_IDS", " , ")

		_, err := config.Load(testLogger())
		assert.Error(err)
	})
}
