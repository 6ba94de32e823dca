package topics

import (
	"log/slog"
	"sort"

	"github.com/seenimoa/supplywatch/pkg/models"
)

const (
	// DefaultTopics is the number of latent topics extracted per run.
	DefaultTopics = 5
	// DefaultTopTerms is how many representative terms describe a topic.
	DefaultTopTerms = 10
	// DefaultSeed pins the factorization initialization for
	// reproducible output.
	DefaultSeed = 42
)

// Extractor mines recurring topics from a corpus of strings.
type Extractor struct {
	MaxFeatures int
	TopTerms    int
	Seed        int64
	logger      *slog.Logger
}

// NewExtractor returns an extractor with the standard parameters.
func NewExtractor(logger *slog.Logger) *Extractor {
	return &Extractor{
		MaxFeatures: DefaultMaxFeatures,
		TopTerms:    DefaultTopTerms,
		Seed:        DefaultSeed,
		logger:      logger,
	}
}

// Extract produces nTopics topics over the corpus. Each topic carries
// its TopTerms highest-weighted terms in ascending weight order, the
// most representative term last.
//
// An empty corpus, or one where every text is empty after stop-word
// removal, fails with ErrInsufficientData. Corpora with fewer
// documents than nTopics still factorize but yield degenerate topics;
// that is a data-quality condition, not an error.
func (e *Extractor) Extract(texts []string, nTopics int) ([]models.Topic, error) {
	if nTopics < 1 {
		nTopics = DefaultTopics
	}
	e.logger.Info("extracting trends from collected data", "documents", len(texts), "topics", nTopics)

	vectorizer := &Vectorizer{MaxFeatures: e.MaxFeatures}
	matrix, vocab, err := vectorizer.FitTransform(texts)
	if err != nil {
		return nil, err
	}

	h := NewNMF(nTopics, e.Seed).Fit(matrix)

	topics := make([]models.Topic, nTopics)
	for i := 0; i < nTopics; i++ {
		topics[i] = models.Topic{
			Index: i + 1,
			Terms: topTerms(h[i], vocab, e.TopTerms),
		}
	}

	return topics, nil
}

// topTerms returns the n highest-weighted terms of one component row
// in ascending weight order. Ties keep vocabulary index order.
func topTerms(weights []float64, vocab []string, n int) []string {
	idx := make([]int, len(weights))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return weights[idx[a]] < weights[idx[b]]
	})

	if len(idx) > n {
		idx = idx[len(idx)-n:]
	}

	terms := make([]string, len(idx))
	for i, j := range idx {
		terms[i] = vocab[j]
	}
	return terms
}
