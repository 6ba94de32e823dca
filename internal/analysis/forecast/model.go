package forecast

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
)

// ErrDimensionMismatch signals input whose width differs from the
// fitted feature set.
var ErrDimensionMismatch = errors.New("forecast: feature count does not match model")

// Model is a multiple linear regression over demand features, fitted
// by ordinary least squares.
type Model struct {
	FeatureNames []string  `json:"feature_names"`
	Weights      []float64 `json:"weights"`
	Intercept    float64   `json:"intercept"`
}

// Fit solves the normal equations over the training rows. Degenerate
// systems (fewer rows than features, or collinear columns) fail.
func Fit(train *Dataset) (*Model, error) {
	n := train.Len()
	if n == 0 {
		return nil, ErrNoData
	}
	k := len(train.FeatureNames)
	if n < k+1 {
		return nil, fmt.Errorf("forecast: %d rows cannot determine %d coefficients", n, k+1)
	}

	// Design matrix with a leading intercept column: theta solves
	// (XᵀX) theta = Xᵀy.
	dim := k + 1
	xtx := make([][]float64, dim)
	for i := range xtx {
		xtx[i] = make([]float64, dim)
	}
	xty := make([]float64, dim)

	row := make([]float64, dim)
	for i := 0; i < n; i++ {
		row[0] = 1
		copy(row[1:], train.Features[i])
		for a := 0; a < dim; a++ {
			for b := 0; b < dim; b++ {
				xtx[a][b] += row[a] * row[b]
			}
			xty[a] += row[a] * train.Target[i]
		}
	}

	theta, err := solve(xtx, xty)
	if err != nil {
		return nil, err
	}

	return &Model{
		FeatureNames: train.FeatureNames,
		Weights:      theta[1:],
		Intercept:    theta[0],
	}, nil
}

// Predict returns the demand estimate for one feature row.
func (m *Model) Predict(features []float64) (float64, error) {
	if len(features) != len(m.Weights) {
		return 0, ErrDimensionMismatch
	}
	y := m.Intercept
	for i, w := range m.Weights {
		y += w * features[i]
	}
	return y, nil
}

// Evaluate returns the mean squared error over a held-out set.
func (m *Model) Evaluate(test *Dataset) (float64, error) {
	if test.Len() == 0 {
		return 0, ErrNoData
	}
	var sum float64
	for i := 0; i < test.Len(); i++ {
		pred, err := m.Predict(test.Features[i])
		if err != nil {
			return 0, err
		}
		diff := pred - test.Target[i]
		sum += diff * diff
	}
	return sum / float64(test.Len()), nil
}

// Save writes the fitted coefficients to a JSON file.
func (m *Model) Save(path string) error {
	data, err := json.MarshalIndent(m, "", "    ")
	if err != nil {
		return fmt.Errorf("forecast: marshal model: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("forecast: save model: %w", err)
	}
	return nil
}

// Load reads a model previously written by Save.
func Load(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("forecast: load model: %w", err)
	}
	var m Model
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("forecast: parse model: %w", err)
	}
	if len(m.Weights) != len(m.FeatureNames) {
		return nil, fmt.Errorf("forecast: model file is inconsistent")
	}
	return &m, nil
}

// solve runs Gaussian elimination with partial pivoting on a copy of
// the system.
func solve(a [][]float64, b []float64) ([]float64, error) {
	n := len(b)
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n+1)
		copy(m[i], a[i])
		m[i][n] = b[i]
	}

	for col := 0; col < n; col++ {
		pivot := col
		for r := col + 1; r < n; r++ {
			if math.Abs(m[r][col]) > math.Abs(m[pivot][col]) {
				pivot = r
			}
		}
		if math.Abs(m[pivot][col]) < 1e-12 {
			return nil, errors.New("forecast: singular system, features may be collinear")
		}
		m[col], m[pivot] = m[pivot], m[col]

		for r := col + 1; r < n; r++ {
			factor := m[r][col] / m[col][col]
			for c := col; c <= n; c++ {
				m[r][c] -= factor * m[col][c]
			}
		}
	}

	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		x[i] = m[i][n]
		for c := i + 1; c < n; c++ {
			x[i] -= m[i][c] * x[c]
		}
		x[i] /= m[i][i]
	}
	return x, nil
}
