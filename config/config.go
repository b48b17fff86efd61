package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mallelamanojkumar90/Sermon/model"
	"golang.org/x/exp/slog"
)

const (
	DefaultLogLevel = "INFO"
	DefaultLogFile  = "logs/sermon_emailer.log"

	defaultCheckIntervalHours = 24
)

type Config struct {
	YoutubeAPIKey      string
	ChannelIDs         []model.YoutubeChannelID
	SendgridAPIKey     string
	SenderEmail        string
	RecipientEmail     string
	CheckIntervalHours int
	LogLevel           string
	LogFile            string
}

// Load reads the configuration from the environment and validates it.
// Channel IDs that do not look like a YouTube channel ID are logged as a
// warning but kept, everything else that is off makes the load fail.
func Load(logger *slog.Logger) (*Config, error) {
	cfg := &Config{
		LogLevel: getParam("LOG_LEVEL", DefaultLogLevel),
		LogFile:  getParam("LOG_FILE", DefaultLogFile),
	}

	var err error
	if cfg.YoutubeAPIKey, err = requiredEnv("YOUTUBE_API_KEY"); err != nil {
		return nil, err
	}
	if cfg.SendgridAPIKey, err = requiredEnv("SENDGRID_API_KEY"); err != nil {
		return nil, err
	}
	if cfg.SenderEmail, err = requiredEnv("SENDER_EMAIL"); err != nil {
		return nil, err
	}
	if cfg.RecipientEmail, err = requiredEnv("RECIPIENT_EMAIL"); err != nil {
		return nil, err
	}

	channelIDs, err := requiredEnv("YOUTUBE_CHANNEL_IDS")
	if err != nil {
		return nil, err
	}
	for _, raw := range strings.Split(channelIDs, ",") {
		id := strings.TrimSpace(raw)
		if id == "" {
			continue
		}
		if !strings.HasPrefix(id, "UC") || len(id) != 24 {
			logger.Warn("channel ID may not be in the correct format", slog.String("channelid", id))
		}
		cfg.ChannelIDs = append(cfg.ChannelIDs, model.YoutubeChannelID(id))
	}

	interval := getParam("CHECK_INTERVAL_HOURS", strconv.Itoa(defaultCheckIntervalHours))
	if cfg.CheckIntervalHours, err = strconv.Atoi(interval); err != nil {
		return nil, fmt.Errorf("invalid CHECK_INTERVAL_HOURS %q: %w", interval, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Interval is the configured check interval as a duration.
func (c *Config) Interval() time.Duration {
	return time.Duration(c.CheckIntervalHours) * time.Hour
}

func (c *Config) Validate() error {
	if len(c.ChannelIDs) == 0 {
		return fmt.Errorf("no YouTube channel IDs provided")
	}
	if c.CheckIntervalHours <= 0 {
		return fmt.Errorf("check interval must be positive, got %d", c.CheckIntervalHours)
	}
	if !strings.Contains(c.SenderEmail, "@") {
		return fmt.Errorf("invalid sender email format: %q", c.SenderEmail)
	}
	if !strings.Contains(c.RecipientEmail, "@") {
		return fmt.Errorf("invalid recipient email format: %q", c.RecipientEmail)
	}
	return nil
}

func requiredEnv(key string) (string, error) {
	val := os.Getenv(key)
	if val == "" {
		return "", fmt.Errorf("required environment variable %s is not set", key)
	}
	return val, nil
}

func getParam(param, def string) string {
	if val := os.Getenv(param); val != "" {
		return val
	}
	return def
}
