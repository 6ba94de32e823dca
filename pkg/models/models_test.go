package models

import (
	"reflect"
	"testing"
)

func TestSentimentLabelValid(t *testing.T) {
	for _, l := range []SentimentLabel{SentimentNegative, SentimentNeutral, SentimentPositive} {
		if !l.Valid() {
			t.Errorf("%q should be valid", l)
		}
	}
	for _, l := range []SentimentLabel{"", "positive", "Mixed"} {
		if l.Valid() {
			t.Errorf("%q should be invalid", l)
		}
	}
}

func TestSummaryTotal(t *testing.T) {
	s := SentimentSummary{SentimentPositive: 2, SentimentNegative: 1, SentimentNeutral: 4}
	if s.Total() != 7 {
		t.Errorf("Total: got %d, want 7", s.Total())
	}
	if (SentimentSummary{}).Total() != 0 {
		t.Error("empty summary must total 0")
	}
}

func TestSummaryOverall(t *testing.T) {
	cases := []struct {
		name string
		s    SentimentSummary
		want SentimentLabel
	}{
		{"positive majority", SentimentSummary{SentimentPositive: 3, SentimentNegative: 1}, SentimentPositive},
		{"negative majority", SentimentSummary{SentimentPositive: 1, SentimentNegative: 3}, SentimentNegative},
		{"tie resolves negative", SentimentSummary{SentimentPositive: 2, SentimentNegative: 2}, SentimentNegative},
		{"neutrals never tip it", SentimentSummary{SentimentNeutral: 10, SentimentPositive: 1}, SentimentPositive},
		{"empty", SentimentSummary{}, SentimentNegative},
	}
	for _, tc := range cases {
		if got := tc.s.Overall(); got != tc.want {
			t.Errorf("%s: got %s, want %s", tc.name, got, tc.want)
		}
	}
}

func TestTopicLabel(t *testing.T) {
	if got := (Topic{Index: 3}).Label(); got != "Topic 3" {
		t.Errorf("Label: got %q", got)
	}
}

func TestToMap(t *testing.T) {
	topics := []Topic{
		{Index: 1, Terms: []string{"port", "shipping"}},
		{Index: 2, Terms: []string{"chip", "wafer"}},
	}
	want := TopicMap{
		"Topic 1": {"port", "shipping"},
		"Topic 2": {"chip", "wafer"},
	}
	if got := ToMap(topics); !reflect.DeepEqual(got, want) {
		t.Errorf("ToMap: got %v, want %v", got, want)
	}
}

func TestCorpusContents(t *testing.T) {
	c := Corpus{
		{Content: "a"},
		{Content: ""},
		{Content: "b"},
	}
	if got := c.Contents(); !reflect.DeepEqual(got, []string{"a", "", "b"}) {
		t.Errorf("Contents: got %v", got)
	}
	if got := c.NonEmptyContents(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("NonEmptyContents: got %v", got)
	}
}

func TestNonEmptyContentsAllEmpty(t *testing.T) {
	c := Corpus{{Content: ""}, {Content: ""}}
	if got := c.NonEmptyContents(); got != nil {
		t.Errorf("expected nil for an all-empty corpus, got %v", got)
	}
}
