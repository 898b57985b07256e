// Package config loads the bot's environment-sourced settings.
//
// Credentials are opaque strings supplied by the operator; the two
// Reddit secrets are required and their absence is fatal before either
// loop starts. A .env file in the working directory is honored when
// present.
package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/pfrederiksen/dci-showbot/internal/faults"
)

// Environment variable names.
const (
	EnvPassword = "DCI_PASSWORD"
	EnvSecret   = "DCI_SECRET"

	EnvDBPath    = "DCI_DB_PATH"
	EnvSubreddit = "DCI_SUBREDDIT"

	EnvTwitterAPIKey       = "TWITTER_API_KEY"
	EnvTwitterAPISecret    = "TWITTER_API_SECRET"
	EnvTwitterAccessToken  = "TWITTER_ACCESS_TOKEN"
	EnvTwitterAccessSecret = "TWITTER_ACCESS_SECRET"
)

// Defaults.
const (
	DefaultDBPath    = "./event.db"
	DefaultSubreddit = "drumcorps"
)

// Config holds everything the bot reads from the environment.
type Config struct {
	// Password and Secret are the Reddit script-app credentials.
	Password string
	Secret   string

	DBPath    string
	Subreddit string

	// Twitter credentials for the announce publisher. Optional; checked
	// only when that publisher is selected.
	TwitterAPIKey       string
	TwitterAPISecret    string
	TwitterAccessToken  string
	TwitterAccessSecret string
}

// Load reads configuration from the environment, loading a .env file
// first when one exists. The Reddit credentials are required.
func Load() (*Config, error) {
	// Missing .env is fine; explicit environment wins either way.
	_ = godotenv.Load()

	cfg := &Config{
		Password:            os.Getenv(EnvPassword),
		Secret:              os.Getenv(EnvSecret),
		DBPath:              envOr(EnvDBPath, DefaultDBPath),
		Subreddit:           envOr(EnvSubreddit, DefaultSubreddit),
		TwitterAPIKey:       os.Getenv(EnvTwitterAPIKey),
		TwitterAPISecret:    os.Getenv(EnvTwitterAPISecret),
		TwitterAccessToken:  os.Getenv(EnvTwitterAccessToken),
		TwitterAccessSecret: os.Getenv(EnvTwitterAccessSecret),
	}

	if cfg.Password == "" || cfg.Secret == "" {
		return nil, faults.New(faults.Credential, EnvPassword+" and/or "+EnvSecret+" not set")
	}

	return cfg, nil
}

// HasTwitterCredentials reports whether all four Twitter secrets are set.
func (c *Config) HasTwitterCredentials() bool {
	return c.TwitterAPIKey != "" && c.TwitterAPISecret != "" &&
		c.TwitterAccessToken != "" && c.TwitterAccessSecret != ""
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
