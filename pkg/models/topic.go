package models

import "fmt"

// Topic is a cluster of co-occurring terms identified by non-negative
// factorization over a corpus. Terms are ordered by ascending weight:
// the lowest-weighted of the top terms first, the most representative
// last, matching the factorization's natural output order.
type Topic struct {
	Index int      `json:"index"` // 1-based, assigned in extraction order
	Terms []string `json:"terms"`
}

// Label returns the display label for the topic, e.g. "Topic 3".
func (t Topic) Label() string {
	return fmt.Sprintf("Topic %d", t.Index)
}

// TopicMap is the exported form of an extraction run: topic label →
// representative terms.
type TopicMap map[string][]string

// ToMap converts an ordered topic slice into its exported map form.
func ToMap(topics []Topic) TopicMap {
	m := make(TopicMap, len(topics))
	for _, t := range topics {
		m[t.Label()] = t.Terms
	}
	return m
}
