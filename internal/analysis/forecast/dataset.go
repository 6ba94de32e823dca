package forecast

import (
	"encoding/csv"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strconv"
)

// ErrNoData signals a dataset without usable rows.
var ErrNoData = errors.New("forecast: dataset has no rows")

const (
	dateColumn   = "Date"
	targetColumn = "Demand"
)

// Dataset is a demand history loaded from CSV. Rows share the order of
// the source file; Features holds one value per feature column per row.
type Dataset struct {
	FeatureNames []string
	Dates        []string
	Features     [][]float64
	Target       []float64
}

// Len returns the number of rows.
func (d *Dataset) Len() int { return len(d.Target) }

// LoadCSV reads a demand history. The file must carry a header row
// with a Demand column; a Date column, if present, indexes the rows
// and is excluded from the features. Missing values are forward-filled
// from the previous row, and gaps before the first observation fall
// back to zero.
func LoadCSV(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("forecast: open dataset: %w", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("forecast: read dataset: %w", err)
	}
	if len(records) < 2 {
		return nil, ErrNoData
	}

	header := records[0]
	dateIdx, targetIdx := -1, -1
	var featureIdx []int
	var names []string
	for i, col := range header {
		switch col {
		case dateColumn:
			dateIdx = i
		case targetColumn:
			targetIdx = i
		default:
			featureIdx = append(featureIdx, i)
			names = append(names, col)
		}
	}
	if targetIdx < 0 {
		return nil, fmt.Errorf("forecast: dataset missing %q column", targetColumn)
	}

	ds := &Dataset{FeatureNames: names}
	prev := make([]float64, len(featureIdx))
	var prevTarget float64
	for line, row := range records[1:] {
		if dateIdx >= 0 {
			ds.Dates = append(ds.Dates, row[dateIdx])
		}
		features := make([]float64, len(featureIdx))
		for j, idx := range featureIdx {
			v, ok, err := parseCell(row[idx])
			if err != nil {
				return nil, fmt.Errorf("forecast: row %d column %q: %w", line+2, header[idx], err)
			}
			if !ok {
				v = prev[j]
			}
			features[j] = v
			prev[j] = v
		}
		target, ok, err := parseCell(row[targetIdx])
		if err != nil {
			return nil, fmt.Errorf("forecast: row %d column %q: %w", line+2, targetColumn, err)
		}
		if !ok {
			target = prevTarget
		}
		prevTarget = target

		ds.Features = append(ds.Features, features)
		ds.Target = append(ds.Target, target)
	}

	return ds, nil
}

// parseCell parses one numeric cell. An empty cell reports ok=false so
// the caller can forward-fill it.
func parseCell(s string) (float64, bool, error) {
	if s == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false, err
	}
	return v, true, nil
}

// Split shuffles the rows with the given seed and carves off the last
// fraction as the test set. The same seed always yields the same
// partition.
func (d *Dataset) Split(testFraction float64, seed int64) (train, test *Dataset) {
	n := d.Len()
	perm := rand.New(rand.NewSource(seed)).Perm(n)

	nTest := int(float64(n) * testFraction)
	if nTest < 1 && n > 1 {
		nTest = 1
	}

	train = &Dataset{FeatureNames: d.FeatureNames}
	test = &Dataset{FeatureNames: d.FeatureNames}
	for i, idx := range perm {
		dst := train
		if i >= n-nTest {
			dst = test
		}
		if len(d.Dates) == n {
			dst.Dates = append(dst.Dates, d.Dates[idx])
		}
		dst.Features = append(dst.Features, d.Features[idx])
		dst.Target = append(dst.Target, d.Target[idx])
	}
	return train, test
}
