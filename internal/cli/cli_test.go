package cli

import (
	"testing"

	"github.com/pfrederiksen/dci-showbot/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Password:  "hunter2",
		Secret:    "s3cret",
		Subreddit: "drumcorps",
	}
}

func TestBuildPublisher(t *testing.T) {
	cfg := testConfig()

	if _, err := buildPublisher(cfg, "reddit"); err != nil {
		t.Errorf("reddit publisher should build: %v", err)
	}
	if _, err := buildPublisher(cfg, "dry-run"); err != nil {
		t.Errorf("dry-run publisher should build: %v", err)
	}
	if _, err := buildPublisher(cfg, "carrier-pigeon"); err == nil {
		t.Error("unknown publisher name should fail")
	}

	// Twitter needs its own credentials.
	if _, err := buildPublisher(cfg, "twitter"); err == nil {
		t.Error("twitter publisher without credentials should fail")
	}
	cfg.TwitterAPIKey = "k"
	cfg.TwitterAPISecret = "ks"
	cfg.TwitterAccessToken = "t"
	cfg.TwitterAccessSecret = "ts"
	if _, err := buildPublisher(cfg, "twitter"); err != nil {
		t.Errorf("twitter publisher with credentials should build: %v", err)
	}
}
