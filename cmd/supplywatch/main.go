// supplywatch — supply-chain market monitoring CLI.
//
// Main CLI entrypoint using cobra command framework.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/seenimoa/supplywatch/internal/analysis/forecast"
	"github.com/seenimoa/supplywatch/internal/analysis/inventory"
	"github.com/seenimoa/supplywatch/internal/analysis/sentiment"
	"github.com/seenimoa/supplywatch/internal/analysis/topics"
	"github.com/seenimoa/supplywatch/internal/config"
	"github.com/seenimoa/supplywatch/internal/datasource"
	"github.com/seenimoa/supplywatch/internal/logging"
	"github.com/seenimoa/supplywatch/internal/monitor"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Global config and logger, populated before any subcommand runs.
var (
	cfg       *config.Config
	logger    *slog.Logger
	logCloser io.Closer
)

func main() {
	err := rootCmd.Execute()
	if logCloser != nil {
		logCloser.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "supplywatch",
	Short: "supplywatch — supply-chain market monitoring",
	Long: `supplywatch collects supply-chain news for a product, classifies
each item's sentiment, mines recurring topics, and writes the results
as CSV and JSON artifacts. It also ships a demand-forecast trainer and
an inventory report.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		configFile, _ := cmd.Flags().GetString("config")
		if configFile != "" {
			cfg, err = config.LoadFromFile(configFile)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if level, _ := cmd.Flags().GetString("log-level"); level != "" {
			cfg.Logging.Level = level
		}
		logger, logCloser, err = logging.New(cfg.Logging)
		if err != nil {
			return fmt.Errorf("failed to set up logging: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file path (default: ./config/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(monitorCmd)
	rootCmd.AddCommand(forecastCmd)
	rootCmd.AddCommand(inventoryCmd)
	rootCmd.AddCommand(keysCmd)
}

// --- Version Command ---

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("supplywatch %s\n", version)
		fmt.Printf("  commit:  %s\n", commit)
		fmt.Printf("  built:   %s\n", date)
	},
}

// --- Monitor Command ---

var monitorCmd = &cobra.Command{
	Use:   "monitor [product]",
	Short: "Collect news for a product, classify sentiment, extract trends",
	Long: `Run the full monitoring pipeline for one product: collect recent
news, classify each item's sentiment, extract recurring topics, and
write <product>_market_sentiment.csv and <product>_trends.json.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		product := args[0]

		if days, _ := cmd.Flags().GetInt("days"); days > 0 {
			cfg.Monitor.DaysBack = days
		}
		if nTopics, _ := cmd.Flags().GetInt("topics"); nTopics > 0 {
			cfg.Monitor.Topics = nTopics
		}
		if out, _ := cmd.Flags().GetString("out"); out != "" {
			cfg.Monitor.OutputDir = out
		}

		extractor := topics.NewExtractor(logger)
		if cfg.Monitor.TopicTerms > 0 {
			extractor.TopTerms = cfg.Monitor.TopicTerms
		}
		if cfg.Monitor.MaxFeatures > 0 {
			extractor.MaxFeatures = cfg.Monitor.MaxFeatures
		}

		source := newSource(cmd)
		m := monitor.New(source, sentiment.NewClassifier(), extractor, cfg.Monitor, logger)

		if err := m.MonitorMarket(cmd.Context(), product); err != nil {
			return fmt.Errorf("monitor %s: %w", product, err)
		}
		fmt.Printf("✅ Monitoring complete for %q — artifacts in %s\n", product, cfg.Monitor.OutputDir)
		return nil
	},
}

// newSource picks the text source: NewsAPI when a key is configured or
// --rss was not forced, otherwise the credential-free RSS feeds.
func newSource(cmd *cobra.Command) datasource.TextSource {
	forceRSS, _ := cmd.Flags().GetBool("rss")
	if forceRSS || cfg.Providers.NewsAPI.APIKey == "" {
		if !forceRSS {
			logger.Warn("no NewsAPI key configured, falling back to RSS feeds")
		}
		feeds := cfg.Providers.RSSFeeds
		if len(feeds) == 0 {
			feeds = datasource.DefaultRSSFeeds
		}
		return datasource.NewRSS(feeds, logger)
	}
	return datasource.NewNewsAPI(cfg.Providers.NewsAPI, cfg.Monitor, logger)
}

func init() {
	monitorCmd.Flags().Int("days", 0, "days of history to collect (default from config)")
	monitorCmd.Flags().Int("topics", 0, "number of topics to extract (default from config)")
	monitorCmd.Flags().String("out", "", "output directory for artifacts (default from config)")
	monitorCmd.Flags().Bool("rss", false, "use RSS feeds even when a NewsAPI key is configured")
}

// --- Forecast Command ---

var forecastCmd = &cobra.Command{
	Use:   "forecast [csv]",
	Short: "Train a demand forecast model from a CSV history",
	Long: `Fit a regression over the feature columns of a demand history CSV
(Date column indexes rows, Demand is the target), report the held-out
mean squared error, and save the model as JSON.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if out, _ := cmd.Flags().GetString("model"); out != "" {
			cfg.Forecast.ModelPath = out
		}

		f := forecast.NewForecaster(cfg.Forecast, logger)
		model, mse, err := f.Run(args[0])
		if err != nil {
			return fmt.Errorf("forecast: %w", err)
		}

		fmt.Printf("📈 Demand model trained on %d features\n", len(model.FeatureNames))
		fmt.Printf("   Mean Squared Error: %g\n", mse)
		fmt.Printf("   Model saved as %q\n", cfg.Forecast.ModelPath)
		return nil
	},
}

func init() {
	forecastCmd.Flags().String("model", "", "output path for the trained model (default from config)")
}

// --- Inventory Command ---

var inventoryCmd = &cobra.Command{
	Use:   "inventory",
	Short: "Generate an inventory analysis report",
	Long: `Analyze the inventory ledger: current stock per product, reorder
needs, turnover over a trailing window, and acquisition value. Runs on
a seeded sample ledger until a live feed is wired in.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if days, _ := cmd.Flags().GetInt("days"); days > 0 {
			cfg.Inventory.TurnoverDays = days
		}

		a := inventory.NewSampleAnalyzer(cfg.Inventory.Seed, logger)
		report := a.GenerateReport(cfg.Inventory.TurnoverDays)
		inventory.RenderReport(os.Stdout, report)
		return nil
	},
}

func init() {
	inventoryCmd.Flags().Int("days", 0, "turnover analysis window in days (default from config)")
}

// --- Keys Command ---

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Show provider credential status",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("  Provider Credentials:")
		for _, k := range config.CheckAPIKeys(cfg) {
			status := "❌ not set"
			if k.IsSet {
				status = fmt.Sprintf("✅ set (%s: %s)", k.Source, k.Masked)
			}
			fmt.Printf("    %-25s %s\n", k.Name+":", status)
		}
		return nil
	},
}
