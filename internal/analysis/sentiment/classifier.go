// Package sentiment implements the three-class text sentiment
// classifier used by the monitoring pipeline. The model is a linear
// scorer over keyword weights with a softmax output layer: offline,
// deterministic, and cheap enough to run per item at corpus scale.
package sentiment

import (
	"math"
	"strings"
	"unicode"

	"github.com/seenimoa/supplywatch/pkg/models"
)

// MaxTokens bounds the number of tokens scored per call. Longer inputs
// are silently truncated, which caps worst-case latency regardless of
// input length.
const MaxTokens = 128

// Classifier maps a single text string to one of the three sentiment
// labels. The index-to-label mapping is injected at construction: it
// is a property of the model backend, not of the pipeline.
type Classifier struct {
	labels    models.LabelMapping
	weights   [3]map[string]float64
	bias      [3]float64
	maxTokens int
}

// NewClassifier returns the built-in classifier with the default
// index mapping (0 → Negative, 1 → Neutral, 2 → Positive).
func NewClassifier() *Classifier {
	return NewClassifierWithMapping(models.DefaultLabelMapping)
}

// NewClassifierWithMapping returns the built-in classifier with a
// caller-supplied index-to-label mapping.
func NewClassifierWithMapping(labels models.LabelMapping) *Classifier {
	return &Classifier{
		labels:    labels,
		weights:   [3]map[string]float64{negativeWeights, neutralWeights, positiveWeights},
		bias:      [3]float64{0, 0.4, 0}, // keyword-free text resolves to index 1
		maxTokens: MaxTokens,
	}
}

// Classify scores text and returns the label of the highest-probability
// class. Empty input is valid and resolves to the bias argmax; the
// function never fails.
func (c *Classifier) Classify(text string) models.SentimentLabel {
	tokens := Tokenize(text, c.maxTokens)

	scores := c.bias
	for _, tok := range tokens {
		for class := range c.weights {
			if w, ok := c.weights[class][tok]; ok {
				scores[class] += w
			}
		}
	}

	probs := softmax(scores[:])
	return c.labels[argmax(probs)]
}

// ClassifyCorpus attaches a label to every item in place, treating
// absent content as the empty string.
func (c *Classifier) ClassifyCorpus(corpus models.Corpus) {
	for i := range corpus {
		corpus[i].Sentiment = c.Classify(corpus[i].Content)
	}
}

// Summarize counts labels over a classified corpus.
func Summarize(corpus models.Corpus) models.SentimentSummary {
	summary := make(models.SentimentSummary)
	for _, item := range corpus {
		summary[item.Sentiment]++
	}
	return summary
}

// Tokenize lowercases text, splits on non-alphanumeric runes, and
// truncates to at most max tokens.
func Tokenize(text string, max int) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	if max > 0 && len(fields) > max {
		fields = fields[:max]
	}
	return fields
}

// softmax converts raw scores to a probability distribution. Scores
// are shifted by their max for numeric stability.
func softmax(scores []float64) []float64 {
	maxScore := scores[0]
	for _, s := range scores[1:] {
		if s > maxScore {
			maxScore = s
		}
	}

	probs := make([]float64, len(scores))
	sum := 0.0
	for i, s := range scores {
		probs[i] = math.Exp(s - maxScore)
		sum += probs[i]
	}
	for i := range probs {
		probs[i] /= sum
	}
	return probs
}

// argmax returns the index of the largest value, the first one on ties.
func argmax(vals []float64) int {
	best := 0
	for i, v := range vals {
		if v > vals[best] {
			best = i
		}
	}
	return best
}
