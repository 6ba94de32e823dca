package models

// SentimentLabel is a three-way polarity label attached to a single text item.
type SentimentLabel string

const (
	SentimentNegative SentimentLabel = "Negative"
	SentimentNeutral  SentimentLabel = "Neutral"
	SentimentPositive SentimentLabel = "Positive"
)

// Valid reports whether l is one of the three defined labels.
func (l SentimentLabel) Valid() bool {
	switch l {
	case SentimentNegative, SentimentNeutral, SentimentPositive:
		return true
	}
	return false
}

// LabelMapping maps classifier output indices to sentiment labels.
// The mapping is a property of the specific model backend and is
// injected at construction rather than assumed positionally.
type LabelMapping [3]SentimentLabel

// DefaultLabelMapping is the mapping used by the built-in classifier:
// index 0 → Negative, 1 → Neutral, 2 → Positive.
var DefaultLabelMapping = LabelMapping{SentimentNegative, SentimentNeutral, SentimentPositive}

// SentimentSummary holds per-label counts over one corpus.
type SentimentSummary map[SentimentLabel]int

// Total returns the number of classified items in the summary.
func (s SentimentSummary) Total() int {
	n := 0
	for _, c := range s {
		n += c
	}
	return n
}

// Overall derives the directional market label: Positive only when
// positive items strictly outnumber negative ones. A tie resolves to
// Negative; neutral counts never influence the result. The asymmetry
// is intentional and relied on by callers.
func (s SentimentSummary) Overall() SentimentLabel {
	if s[SentimentPositive] > s[SentimentNegative] {
		return SentimentPositive
	}
	return SentimentNegative
}
