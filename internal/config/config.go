package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names. All values are required; there are no
// defaults for credentials.
const (
	EnvGoogleClientID     = "GOOGLE_CLIENT_ID"
	EnvGoogleClientSecret = "GOOGLE_CLIENT_SECRET"
	EnvGoogleRefreshToken = "GOOGLE_REFRESH_TOKEN"
	EnvSlackUserToken     = "SLACK_USER_TOKEN"
	EnvSlackBotToken      = "SLACK_BOT_TOKEN"
	EnvSlackChannelID     = "SLACK_CHANNEL_ID"
)

type Config struct {
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRefreshToken string

	// User-scoped token for reading and writing the status profile.
	SlackUserToken string
	// Bot-scoped token for posting reminder messages.
	SlackBotToken string
	// Channel (or user) that receives reminders and diagnostics.
	SlackChannelID string
}

// Load reads the configuration from the environment, with .env support.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.LookupEnv)
}

// FromEnv builds the configuration from a lookup function, reporting
// every missing variable at once.
func FromEnv(lookup func(string) (string, bool)) (*Config, error) {
	var missing []string
	get := func(name string) string {
		value, ok := lookup(name)
		if !ok || value == "" {
			missing = append(missing, name)
		}
		return value
	}

	cfg := &Config{
		GoogleClientID:     get(EnvGoogleClientID),
		GoogleClientSecret: get(EnvGoogleClientSecret),
		GoogleRefreshToken: get(EnvGoogleRefreshToken),
		SlackUserToken:     get(EnvSlackUserToken),
		SlackBotToken:      get(EnvSlackBotToken),
		SlackChannelID:     get(EnvSlackChannelID),
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return cfg, nil
}
