package monitor

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/seenimoa/supplywatch/pkg/models"
)

// csvHeader is the exported column set, one row per collected item, in
// collection order, no index column.
var csvHeader = []string{"title", "content", "description", "publishedAt", "source", "url", "Sentiment"}

// ExportCSV writes the classified corpus as a CSV table.
func ExportCSV(path string, corpus models.Corpus) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, item := range corpus {
		row := []string{
			item.Title,
			item.Content,
			item.Description,
			formatTime(item.PublishedAt),
			item.Source,
			item.URL,
			string(item.Sentiment),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return nil
}

// ExportTopics writes the topic mapping as an indented JSON object:
// "Topic 1".."Topic N" each mapping to its term array.
func ExportTopics(path string, topicList []models.Topic) error {
	data, err := json.MarshalIndent(models.ToMap(topicList), "", "    ")
	if err != nil {
		return fmt.Errorf("marshal topics: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// formatTime renders a timestamp as RFC 3339, empty when unset.
func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
