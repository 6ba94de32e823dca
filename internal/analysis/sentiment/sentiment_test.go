package sentiment

import (
	"math"
	"strings"
	"testing"

	"github.com/seenimoa/supplywatch/pkg/models"
)

func TestClassifyPositive(t *testing.T) {
	c := NewClassifier()
	got := c.Classify("great reliable supplier with strong growth")
	if got != models.SentimentPositive {
		t.Errorf("expected Positive, got %s", got)
	}
}

func TestClassifyNegative(t *testing.T) {
	c := NewClassifier()
	got := c.Classify("missing shipment delay causes production halt")
	if got != models.SentimentNegative {
		t.Errorf("expected Negative, got %s", got)
	}
}

func TestClassifyNeutralNoKeywords(t *testing.T) {
	c := NewClassifier()
	got := c.Classify("the committee met on tuesday afternoon")
	if got != models.SentimentNeutral {
		t.Errorf("expected Neutral for keyword-free text, got %s", got)
	}
}

func TestClassifyEmptyString(t *testing.T) {
	c := NewClassifier()
	got := c.Classify("")
	if !got.Valid() {
		t.Fatalf("empty input must yield a valid label, got %q", got)
	}
	if got != models.SentimentNeutral {
		t.Errorf("empty input should resolve to Neutral, got %s", got)
	}
}

func TestClassifyDeterministic(t *testing.T) {
	c := NewClassifier()
	text := "supply chain disruption warning amid strong recovery hopes"
	first := c.Classify(text)
	for i := 0; i < 10; i++ {
		if got := c.Classify(text); got != first {
			t.Fatalf("run %d: got %s, want %s", i, got, first)
		}
	}
}

func TestClassifyLongInputTruncated(t *testing.T) {
	c := NewClassifier()
	// Positive keyword buried beyond the token cap must not be scored.
	filler := strings.Repeat("lorem ipsum dolor sit amet ", 30) // 150 tokens
	got := c.Classify(filler + " surge rally breakthrough")
	if got != models.SentimentNeutral {
		t.Errorf("tokens past the cap should be ignored, got %s", got)
	}
}

func TestClassifyCustomMapping(t *testing.T) {
	// Swap the mapping: index 0 now labels Positive. The classifier must
	// follow the injected mapping, not the positional convention.
	mapping := models.LabelMapping{models.SentimentPositive, models.SentimentNeutral, models.SentimentNegative}
	c := NewClassifierWithMapping(mapping)
	got := c.Classify("shipment delay and shortage")
	if got != models.SentimentPositive {
		t.Errorf("expected remapped label Positive, got %s", got)
	}
}

func TestClassifyCorpusAttachesLabels(t *testing.T) {
	c := NewClassifier()
	corpus := models.Corpus{
		{Content: "great reliable supplier"},
		{Content: "missing shipment delay"},
		{Content: ""},
	}
	c.ClassifyCorpus(corpus)

	for i, item := range corpus {
		if !item.Sentiment.Valid() {
			t.Errorf("item %d: invalid label %q", i, item.Sentiment)
		}
	}
	if corpus[2].Sentiment != models.SentimentNeutral {
		t.Errorf("empty content should yield Neutral, got %s", corpus[2].Sentiment)
	}
}

func TestSummarizeCounts(t *testing.T) {
	corpus := models.Corpus{
		{Sentiment: models.SentimentPositive},
		{Sentiment: models.SentimentPositive},
		{Sentiment: models.SentimentNegative},
		{Sentiment: models.SentimentNeutral},
	}
	s := Summarize(corpus)
	if s[models.SentimentPositive] != 2 {
		t.Errorf("positive count: got %d, want 2", s[models.SentimentPositive])
	}
	if s[models.SentimentNegative] != 1 {
		t.Errorf("negative count: got %d, want 1", s[models.SentimentNegative])
	}
	if s.Total() != 4 {
		t.Errorf("total: got %d, want 4", s.Total())
	}
}

func TestOverallTieResolvesToNegative(t *testing.T) {
	s := models.SentimentSummary{
		models.SentimentPositive: 3,
		models.SentimentNegative: 3,
		models.SentimentNeutral:  10,
	}
	if got := s.Overall(); got != models.SentimentNegative {
		t.Errorf("tie must resolve to Negative, got %s", got)
	}
}

func TestOverallPositiveMajority(t *testing.T) {
	s := models.SentimentSummary{
		models.SentimentPositive: 4,
		models.SentimentNegative: 3,
	}
	if got := s.Overall(); got != models.SentimentPositive {
		t.Errorf("expected Positive, got %s", got)
	}
}

func TestOverallNeutralDoesNotTip(t *testing.T) {
	s := models.SentimentSummary{
		models.SentimentNeutral: 100,
	}
	if got := s.Overall(); got != models.SentimentNegative {
		t.Errorf("neutral-only corpus resolves to Negative, got %s", got)
	}
}

func TestTokenize(t *testing.T) {
	tokens := Tokenize("Chip-maker's output DOUBLED, prices fell 12%!", 0)
	want := []string{"chip", "maker", "s", "output", "doubled", "prices", "fell", "12"}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens %v, want %d", len(tokens), tokens, len(want))
	}
	for i := range want {
		if tokens[i] != want[i] {
			t.Errorf("token %d: got %q, want %q", i, tokens[i], want[i])
		}
	}
}

func TestTokenizeTruncation(t *testing.T) {
	text := strings.Repeat("word ", 200)
	tokens := Tokenize(text, MaxTokens)
	if len(tokens) != MaxTokens {
		t.Errorf("got %d tokens, want %d", len(tokens), MaxTokens)
	}
}

func TestSoftmaxIsDistribution(t *testing.T) {
	probs := softmax([]float64{1.2, 0.4, -0.5})
	sum := 0.0
	for _, p := range probs {
		if p <= 0 || p >= 1 {
			t.Errorf("probability out of range: %f", p)
		}
		sum += p
	}
	if math.Abs(sum-1.0) > 1e-9 {
		t.Errorf("probabilities sum to %f, want 1", sum)
	}
	if argmax(probs) != 0 {
		t.Errorf("argmax: got %d, want 0", argmax(probs))
	}
}
