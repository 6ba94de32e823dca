// Package topics implements unsupervised topic extraction over a text
// corpus: a term-frequency/inverse-document-frequency weighting stage
// followed by non-negative matrix factorization. Output is a fixed
// number of topics, each described by its most representative terms.
package topics

import (
	"errors"
	"math"
	"sort"
	"strings"
	"unicode"
)

// ErrInsufficientData is returned when the corpus is empty or no terms
// survive tokenization and stop-word removal. Callers guard against
// this with a non-empty check before invoking extraction.
var ErrInsufficientData = errors.New("insufficient data for topic extraction")

// DefaultMaxFeatures caps the vocabulary at the highest-frequency terms.
const DefaultMaxFeatures = 5000

// Vectorizer builds a TF-IDF weighted document-term matrix.
type Vectorizer struct {
	// MaxFeatures caps the vocabulary, keeping the terms with the
	// highest total frequency across the corpus. 0 means no cap.
	MaxFeatures int
}

// NewVectorizer returns a vectorizer with the default feature cap.
func NewVectorizer() *Vectorizer {
	return &Vectorizer{MaxFeatures: DefaultMaxFeatures}
}

// FitTransform tokenizes the corpus, builds the capped vocabulary, and
// returns the L2-normalized TF-IDF matrix (one row per document) along
// with the vocabulary in index order.
func (v *Vectorizer) FitTransform(texts []string) ([][]float64, []string, error) {
	if len(texts) == 0 {
		return nil, nil, ErrInsufficientData
	}

	docs := make([][]string, len(texts))
	totalCount := make(map[string]int)
	docFreq := make(map[string]int)
	for i, text := range texts {
		docs[i] = tokenize(text)
		seen := make(map[string]bool)
		for _, tok := range docs[i] {
			totalCount[tok]++
			if !seen[tok] {
				docFreq[tok]++
				seen[tok] = true
			}
		}
	}
	if len(totalCount) == 0 {
		return nil, nil, ErrInsufficientData
	}

	vocab := selectVocabulary(totalCount, v.MaxFeatures)
	index := make(map[string]int, len(vocab))
	for i, term := range vocab {
		index[term] = i
	}

	// Smooth IDF: ln((1+n)/(1+df)) + 1.
	n := float64(len(texts))
	idf := make([]float64, len(vocab))
	for i, term := range vocab {
		idf[i] = math.Log((1+n)/(1+float64(docFreq[term]))) + 1
	}

	matrix := make([][]float64, len(texts))
	for d, tokens := range docs {
		row := make([]float64, len(vocab))
		for _, tok := range tokens {
			if j, ok := index[tok]; ok {
				row[j] += idf[j]
			}
		}
		l2normalize(row)
		matrix[d] = row
	}

	return matrix, vocab, nil
}

// tokenize lowercases text, splits on non-alphanumeric runes, and
// drops single-character tokens and stop words.
func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	tokens := fields[:0]
	for _, f := range fields {
		if len(f) < 2 {
			continue
		}
		if _, stop := englishStopWords[f]; stop {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// selectVocabulary keeps the max highest-frequency terms, then orders
// the surviving vocabulary alphabetically for stable indexing.
func selectVocabulary(counts map[string]int, max int) []string {
	terms := make([]string, 0, len(counts))
	for t := range counts {
		terms = append(terms, t)
	}

	if max > 0 && len(terms) > max {
		sort.Slice(terms, func(i, j int) bool {
			if counts[terms[i]] != counts[terms[j]] {
				return counts[terms[i]] > counts[terms[j]]
			}
			return terms[i] < terms[j]
		})
		terms = terms[:max]
	}

	sort.Strings(terms)
	return terms
}

// l2normalize scales a row to unit Euclidean norm in place.
func l2normalize(row []float64) {
	sum := 0.0
	for _, v := range row {
		sum += v * v
	}
	if sum == 0 {
		return
	}
	norm := math.Sqrt(sum)
	for i := range row {
		row[i] /= norm
	}
}
