package datasource

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/seenimoa/supplywatch/internal/config"
	"github.com/seenimoa/supplywatch/pkg/models"
	"github.com/seenimoa/supplywatch/pkg/utils"
)

// DefaultBaseURL is the NewsAPI v2 endpoint root.
const DefaultBaseURL = "https://newsapi.org/v2"

// NewsAPI fetches articles from newsapi.org's /everything endpoint.
// Provider failures are downgraded to an empty corpus: the caller
// cannot distinguish "no data" from "provider down" except through the
// log stream. Free tier: 100 requests/day.
type NewsAPI struct {
	cfg     config.NewsAPIConfig
	monitor config.MonitorConfig
	client  *http.Client
	limiter *RateLimiter
	logger  *slog.Logger

	// now is stubbed in tests to pin the query window.
	now func() time.Time
}

// NewNewsAPI creates a NewsAPI source. The credential is validated
// lazily at Collect time so construction never fails.
func NewNewsAPI(cfg config.NewsAPIConfig, monitor config.MonitorConfig, logger *slog.Logger) *NewsAPI {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if monitor.PageSize <= 0 {
		monitor.PageSize = 100
	}
	if monitor.Language == "" {
		monitor.Language = "en"
	}
	if monitor.SortBy == "" {
		monitor.SortBy = "relevancy"
	}
	return &NewsAPI{
		cfg:     cfg,
		monitor: monitor,
		client:  HTTPClient,
		limiter: NewRateLimiter(5, time.Second),
		logger:  logger,
		now:     time.Now,
	}
}

// Name returns the data source name.
func (n *NewsAPI) Name() string { return "NewsAPI" }

// newsAPIResponse mirrors the provider's wire format. Any field may be
// absent; absent fields map to zero values, never to item failure.
type newsAPIResponse struct {
	Status       string           `json:"status"`
	TotalResults int              `json:"totalResults"`
	Articles     []newsAPIArticle `json:"articles"`
}

type newsAPIArticle struct {
	Source struct {
		Name string `json:"name"`
	} `json:"source"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	PublishedAt string `json:"publishedAt"`
	URL         string `json:"url"`
}

// Collect fetches up to one page of relevance-sorted English articles
// matching query within [now - daysBack days, now].
//
// A missing API key fails with config.ErrMissingCredential before any
// request is issued. Transport errors and non-2xx responses are logged
// and collapsed to an empty corpus.
func (n *NewsAPI) Collect(ctx context.Context, query string, daysBack int) (models.Corpus, error) {
	n.logger.Info("collecting news", "source", n.Name(), "query", query, "days_back", daysBack)

	if n.cfg.APIKey == "" {
		return nil, fmt.Errorf("newsapi: %w", config.ErrMissingCredential)
	}

	if err := n.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	window := utils.WindowDaysBack(n.now(), daysBack)

	params := url.Values{}
	params.Set("q", query)
	params.Set("from", utils.FormatISO(window.From))
	params.Set("to", utils.FormatISO(window.To))
	params.Set("language", n.monitor.Language)
	params.Set("sortBy", n.monitor.SortBy)
	params.Set("pageSize", strconv.Itoa(n.monitor.PageSize))
	params.Set("apiKey", n.cfg.APIKey)

	reqURL := n.cfg.BaseURL + "/everything?" + params.Encode()

	body, _, err := doGet(ctx, n.client, reqURL, nil)
	if err != nil {
		// Recoverable at this boundary: the pipeline treats "provider
		// error" and "no data" identically.
		n.logger.Warn("news fetch failed", "source", n.Name(), "query", query, "err", err)
		return models.Corpus{}, nil
	}
	defer body.Close()

	var resp newsAPIResponse
	if err := json.NewDecoder(body).Decode(&resp); err != nil {
		n.logger.Warn("news response decode failed", "source", n.Name(), "err", err)
		return models.Corpus{}, nil
	}

	if len(resp.Articles) == 0 {
		n.logger.Warn("no articles found for query and date range", "query", query)
		return models.Corpus{}, nil
	}

	corpus := make(models.Corpus, 0, len(resp.Articles))
	for _, a := range resp.Articles {
		corpus = append(corpus, newsItemFromArticle(a))
	}

	n.logger.Info("news collected", "source", n.Name(), "query", query, "items", len(corpus))
	return corpus, nil
}

// newsItemFromArticle maps one provider record into a NewsItem.
// Unparseable timestamps are dropped, not fatal.
func newsItemFromArticle(a newsAPIArticle) models.NewsItem {
	item := models.NewsItem{
		Title:       a.Title,
		Content:     a.Content,
		Description: a.Description,
		Source:      a.Source.Name,
		URL:         a.URL,
	}
	if a.PublishedAt != "" {
		if t, err := time.Parse(time.RFC3339, a.PublishedAt); err == nil {
			item.PublishedAt = t.UTC()
		}
	}
	return item
}
