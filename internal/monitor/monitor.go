// Package monitor orchestrates the market-monitoring pipeline: collect
// news for a product, classify sentiment per item, summarize the
// directional signal, mine topics over the corpus, and persist the two
// run artifacts. Control flow is strictly linear; no stage calls back
// into an earlier one.
package monitor

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"

	"github.com/seenimoa/supplywatch/internal/analysis/sentiment"
	"github.com/seenimoa/supplywatch/internal/analysis/topics"
	"github.com/seenimoa/supplywatch/internal/config"
	"github.com/seenimoa/supplywatch/internal/datasource"
	"github.com/seenimoa/supplywatch/pkg/models"
	"github.com/seenimoa/supplywatch/pkg/utils"
)

// Monitor runs one full monitoring cycle per MonitorMarket call. The
// classifier and extractor are built once and reused across runs; they
// are read-only after construction.
type Monitor struct {
	source     datasource.TextSource
	classifier *sentiment.Classifier
	extractor  *topics.Extractor
	cfg        config.MonitorConfig
	logger     *slog.Logger
}

// New assembles a monitor over the given text source.
func New(source datasource.TextSource, classifier *sentiment.Classifier, extractor *topics.Extractor, cfg config.MonitorConfig, logger *slog.Logger) *Monitor {
	if cfg.DaysBack <= 0 {
		cfg.DaysBack = 7
	}
	if cfg.Topics <= 0 {
		cfg.Topics = topics.DefaultTopics
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}
	return &Monitor{
		source:     source,
		classifier: classifier,
		extractor:  extractor,
		cfg:        cfg,
		logger:     logger,
	}
}

// MonitorMarket executes one run for the given product. An empty
// corpus terminates the run early with no artifacts; that is a normal
// outcome, not an error. A missing provider credential propagates.
func (m *Monitor) MonitorMarket(ctx context.Context, product string) error {
	m.logger.Info("monitoring market", "product", product)

	// Step 1: collect news.
	corpus, err := m.source.Collect(ctx, product, m.cfg.DaysBack)
	if err != nil {
		return err
	}
	if len(corpus) == 0 {
		m.logger.Info("no data collected, skipping analysis", "product", product)
		return nil
	}

	// Step 2: classify sentiment per item.
	m.classifier.ClassifyCorpus(corpus)

	// Step 3: summarize.
	summary := sentiment.Summarize(corpus)
	m.logger.Info("sentiment summary",
		"product", product,
		"positive", summary[models.SentimentPositive],
		"neutral", summary[models.SentimentNeutral],
		"negative", summary[models.SentimentNegative],
	)
	m.logger.Info("overall market sentiment", "product", product, "sentiment", summary.Overall())

	// Step 4: extract emerging trends over non-empty contents only.
	// Items with empty content stay in the exported table regardless.
	var topicList []models.Topic
	texts := corpus.NonEmptyContents()
	if len(texts) == 0 {
		m.logger.Warn("no non-empty content for topic extraction", "product", product)
	} else {
		topicList, err = m.extractor.Extract(texts, m.cfg.Topics)
		if err != nil {
			return err
		}
		m.logger.Info("extracted trends", "product", product, "topics", len(topicList))
	}

	// Step 5: persist both artifacts. The writes are independent; a
	// failure in one must not prevent the other.
	prefix := utils.SanitizeFilename(product)
	var writeErrs []error

	csvPath := filepath.Join(m.cfg.OutputDir, prefix+"_market_sentiment.csv")
	if err := ExportCSV(csvPath, corpus); err != nil {
		m.logger.Error("failed to write sentiment table", "path", csvPath, "err", err)
		writeErrs = append(writeErrs, err)
	} else {
		m.logger.Info("detailed sentiment analysis saved", "path", csvPath)
	}

	if topicList != nil {
		jsonPath := filepath.Join(m.cfg.OutputDir, prefix+"_trends.json")
		if err := ExportTopics(jsonPath, topicList); err != nil {
			m.logger.Error("failed to write trends", "path", jsonPath, "err", err)
			writeErrs = append(writeErrs, err)
		} else {
			m.logger.Info("extracted trends saved", "path", jsonPath)
		}
	}

	return errors.Join(writeErrs...)
}
