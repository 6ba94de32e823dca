// Package models defines the shared data types used across supplywatch:
// collected news items, sentiment labels and summaries, extracted topics,
// and the forecasting/inventory analytics records.
package models

import "time"

// NewsItem represents one collected text unit from a provider.
// Every field may be empty; downstream stages treat absent content as "".
type NewsItem struct {
	Title       string    `json:"title,omitempty"`
	Content     string    `json:"content,omitempty"` // primary analysis input
	Description string    `json:"description,omitempty"`
	PublishedAt time.Time `json:"published_at,omitempty"`
	Source      string    `json:"source,omitempty"`
	URL         string    `json:"url,omitempty"`

	// Sentiment is attached by the pipeline after classification.
	// Empty until the classify stage has run.
	Sentiment SentimentLabel `json:"sentiment,omitempty"`
}

// Corpus is the ordered set of items collected for one monitoring run.
// Order follows the provider's relevance ranking and is preserved
// through to the exported table.
type Corpus []NewsItem

// Contents returns the content field of every item, absent content as "".
func (c Corpus) Contents() []string {
	out := make([]string, len(c))
	for i, item := range c {
		out[i] = item.Content
	}
	return out
}

// NonEmptyContents returns the content strings of items whose content
// is non-empty, in collection order. Used for topic extraction.
func (c Corpus) NonEmptyContents() []string {
	var out []string
	for _, item := range c {
		if item.Content != "" {
			out = append(out, item.Content)
		}
	}
	return out
}
