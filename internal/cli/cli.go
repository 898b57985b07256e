// Package cli builds the dci-showbot command tree.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/dci-showbot/internal/bot"
	"github.com/pfrederiksen/dci-showbot/internal/config"
	"github.com/pfrederiksen/dci-showbot/internal/logger"
	"github.com/pfrederiksen/dci-showbot/internal/notifier"
	"github.com/pfrederiksen/dci-showbot/internal/scraper"
	"github.com/pfrederiksen/dci-showbot/internal/store"
)

var (
	flagDB        string
	flagPublisher string
	flagVerbose   bool

	flagScrapeDate   string
	flagScrapeDryRun bool
	flagNotifyDryRun bool

	flagEventsUnposted bool
	flagEventsFormat   string
)

// NewRootCmd creates the root command. Running it with no subcommand
// starts both loops.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dci-showbot",
		Short: "Scrape DCI events and post show threads",
		Long: `An unattended bot that scrapes upcoming DCI events into a local
database and posts a combined show thread once events come within the
notification window. Events are never announced twice.`,
		RunE: runBot,
	}

	cmd.PersistentFlags().StringVar(&flagDB, "db", "", "Path to the events database (default $DCI_DB_PATH or ./event.db)")
	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&flagPublisher, "publisher", "reddit", "Posting backend: reddit, twitter, or dry-run")

	cmd.AddCommand(newScrapeCmd())
	cmd.AddCommand(newNotifyCmd())
	cmd.AddCommand(newEventsCmd())

	return cmd
}

func newScrapeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scrape",
		Short: "Run one scrape cycle",
		RunE:  runScrapeOnce,
	}
	cmd.Flags().StringVar(&flagScrapeDate, "date", "", "Target date (YYYY-MM-DD, default tomorrow)")
	cmd.Flags().BoolVar(&flagScrapeDryRun, "dry-run", false, "Print extracted events without persisting")
	return cmd
}

func newNotifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Run one notify cycle",
		RunE:  runNotifyOnce,
	}
	cmd.Flags().BoolVar(&flagNotifyDryRun, "dry-run", false, "Print the post instead of submitting it")
	return cmd
}

func newEventsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "List stored events",
		RunE:  runListEvents,
	}
	cmd.Flags().BoolVar(&flagEventsUnposted, "unposted", false, "Only events not yet posted")
	cmd.Flags().StringVar(&flagEventsFormat, "format", "text", "Output format: text or json")
	return cmd
}

// runBot starts both loops and blocks until process termination.
func runBot(cmd *cobra.Command, args []string) error {
	setupLogging()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	s, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer s.Close() // nolint:errcheck

	pub, err := buildPublisher(cfg, flagPublisher)
	if err != nil {
		return err
	}

	return bot.New(scraper.New(), s, pub).Run()
}

// runScrapeOnce runs a single scrape cycle against the real site.
func runScrapeOnce(cmd *cobra.Command, args []string) error {
	setupLogging()

	target := time.Now().AddDate(0, 0, 1)
	if flagScrapeDate != "" {
		parsed, err := time.Parse("2006-01-02", flagScrapeDate)
		if err != nil {
			return fmt.Errorf("invalid --date %q: %w", flagScrapeDate, err)
		}
		target = parsed
	}

	records, err := scraper.New().ScrapeDay(target)
	if err != nil {
		return err
	}

	if flagScrapeDryRun {
		return WriteEvents(os.Stdout, records, FormatText)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	s, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer s.Close() // nolint:errcheck

	for _, rec := range records {
		if _, err := s.Upsert(rec); err != nil {
			return err
		}
	}
	fmt.Printf("Stored %d event(s) for %s\n", len(records), target.Format("2006-01-02"))
	return nil
}

// runNotifyOnce runs a single notify cycle.
func runNotifyOnce(cmd *cobra.Command, args []string) error {
	setupLogging()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	s, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer s.Close() // nolint:errcheck

	name := flagPublisher
	if flagNotifyDryRun {
		name = "dry-run"
	}
	pub, err := buildPublisher(cfg, name)
	if err != nil {
		return err
	}

	return bot.New(scraper.New(), s, pub).RunNotifyCycle()
}

// runListEvents prints stored events inside the next notification window
// and beyond (a week out, for operator inspection).
func runListEvents(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	s, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer s.Close() // nolint:errcheck

	format := OutputFormat(flagEventsFormat)
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagEventsFormat)
	}

	now := time.Now()
	records, err := s.FindInDateRange(now.Add(-24*time.Hour), now.AddDate(0, 0, 7), flagEventsUnposted)
	if err != nil {
		return err
	}

	return WriteEvents(os.Stdout, records, format)
}

func setupLogging() {
	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stdout))
	}
}

func openStore(cfg *config.Config) (*store.Store, error) {
	path := cfg.DBPath
	if flagDB != "" {
		path = flagDB
	}
	return store.Open(path)
}

// buildPublisher selects the posting backend by name.
func buildPublisher(cfg *config.Config, name string) (notifier.Publisher, error) {
	switch name {
	case "reddit":
		return notifier.NewRedditPublisher(cfg.Password, cfg.Secret, cfg.Subreddit)
	case "twitter":
		return notifier.NewTwitterPublisher(
			cfg.TwitterAPIKey, cfg.TwitterAPISecret,
			cfg.TwitterAccessToken, cfg.TwitterAccessSecret,
		)
	case "dry-run":
		return notifier.NewDryRunPublisher(), nil
	default:
		return nil, fmt.Errorf("unknown publisher: %s (must be reddit, twitter, or dry-run)", name)
	}
}
