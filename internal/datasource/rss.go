package datasource

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"
	"golang.org/x/sync/errgroup"

	"github.com/seenimoa/supplywatch/pkg/models"
	"github.com/seenimoa/supplywatch/pkg/utils"
)

// DefaultRSSFeeds lists supply-chain and logistics trade feeds usable
// without a credential.
var DefaultRSSFeeds = []string{
	"https://www.supplychaindive.com/feeds/news/",
	"https://www.freightwaves.com/news/feed",
	"https://theloadstar.com/feed/",
}

// RSS collects items from a set of RSS feeds. It serves as the
// credential-free fallback source: same Collect contract as NewsAPI,
// with feed failures skipped per feed rather than failing the run.
type RSS struct {
	feeds   []string
	parser  *gofeed.Parser
	cache   *Cache
	limiter *RateLimiter
	logger  *slog.Logger

	now func() time.Time
}

// NewRSS creates an RSS source over the given feed URLs. An empty list
// falls back to DefaultRSSFeeds.
func NewRSS(feeds []string, logger *slog.Logger) *RSS {
	if len(feeds) == 0 {
		feeds = DefaultRSSFeeds
	}
	return &RSS{
		feeds:   feeds,
		parser:  gofeed.NewParser(),
		cache:   NewCache(10 * time.Minute),
		limiter: NewRateLimiter(2, time.Second), // conservative: 2 req/s
		logger:  logger,
		now:     time.Now,
	}
}

// Name returns the data source name.
func (r *RSS) Name() string { return "RSS" }

// Collect fetches all feeds concurrently, keeps entries that mention
// the query and fall inside the window, and normalizes them into the
// corpus shape. Feed failures reduce coverage, not correctness.
func (r *RSS) Collect(ctx context.Context, query string, daysBack int) (models.Corpus, error) {
	r.logger.Info("collecting news", "source", r.Name(), "query", query, "days_back", daysBack)

	window := utils.WindowDaysBack(r.now(), daysBack)
	cacheKey := "rss:" + strings.ToLower(query)

	if cached, ok := r.cache.Get(cacheKey); ok {
		return cached.(models.Corpus), nil
	}

	var mu sync.Mutex
	var corpus models.Corpus

	g, gctx := errgroup.WithContext(ctx)
	for _, feedURL := range r.feeds {
		g.Go(func() error {
			items, err := r.fetchFeed(gctx, feedURL, query, window)
			if err != nil {
				// Non-critical: skip failed feeds.
				r.logger.Warn("feed fetch failed", "feed", feedURL, "err", err)
				return nil
			}
			mu.Lock()
			corpus = append(corpus, items...)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sortItemsByDate(corpus)

	if len(corpus) == 0 {
		r.logger.Warn("no articles found for query and date range", "query", query)
		return models.Corpus{}, nil
	}

	r.cache.Set(cacheKey, corpus)
	r.logger.Info("news collected", "source", r.Name(), "query", query, "items", len(corpus))
	return corpus, nil
}

// fetchFeed parses one RSS feed and returns matching items.
func (r *RSS) fetchFeed(ctx context.Context, feedURL, query string, window utils.Window) ([]models.NewsItem, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	feed, err := r.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(query)
	var items []models.NewsItem
	for _, entry := range feed.Items {
		desc := cleanHTML(entry.Description)
		if q != "" && !strings.Contains(strings.ToLower(entry.Title+" "+desc), q) {
			continue
		}
		item := models.NewsItem{
			Title:       entry.Title,
			Content:     cleanHTML(entry.Content),
			Description: desc,
			Source:      feed.Title,
			URL:         entry.Link,
		}
		if item.Content == "" {
			item.Content = desc
		}
		if entry.PublishedParsed != nil {
			item.PublishedAt = entry.PublishedParsed.UTC()
			if !window.Contains(item.PublishedAt) {
				continue
			}
		}
		items = append(items, item)
	}
	return items, nil
}

// cleanHTML strips HTML tags from a string using goquery.
func cleanHTML(s string) string {
	if s == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<body>" + s + "</body>"))
	if err != nil {
		return s
	}
	return strings.TrimSpace(doc.Text())
}

// sortItemsByDate sorts items by published date (newest first).
// Simple insertion sort — fine for small slices.
func sortItemsByDate(items models.Corpus) {
	for i := 1; i < len(items); i++ {
		key := items[i]
		j := i - 1
		for j >= 0 && items[j].PublishedAt.Before(key.PublishedAt) {
			items[j+1] = items[j]
			j--
		}
		items[j+1] = key
	}
}
