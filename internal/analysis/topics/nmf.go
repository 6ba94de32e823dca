package topics

import (
	"math"
	"math/rand"
)

// nmfEpsilon guards divisions in the multiplicative update rules.
const nmfEpsilon = 1e-10

// NMF factorizes a non-negative matrix X (docs × terms) into W (docs ×
// components) and H (components × terms) by multiplicative updates
// minimizing the Frobenius reconstruction error. Initialization is
// seeded, so identical input yields identical factors.
type NMF struct {
	Components int
	Iterations int
	Seed       int64
}

// NewNMF returns a factorizer with the standard iteration budget.
func NewNMF(components int, seed int64) *NMF {
	return &NMF{
		Components: components,
		Iterations: 200,
		Seed:       seed,
	}
}

// Fit runs the factorization and returns the component-term matrix H.
// Each of the Components rows of H holds the term weights of one
// latent topic.
func (m *NMF) Fit(x [][]float64) [][]float64 {
	rows := len(x)
	cols := len(x[0])
	k := m.Components

	// Scaled random initialization: values around sqrt(mean(X)/k) keep
	// the first reconstruction near the data's magnitude.
	mean := matrixMean(x)
	scale := math.Sqrt(mean / float64(k))
	rng := rand.New(rand.NewSource(m.Seed))

	w := randomMatrix(rng, rows, k, scale)
	h := randomMatrix(rng, k, cols, scale)

	for iter := 0; iter < m.Iterations; iter++ {
		// H update: H *= (WᵀX) / (WᵀW H)
		wt := transpose(w)
		numerH := matMul(wt, x)
		denomH := matMul(matMul(wt, w), h)
		for i := 0; i < k; i++ {
			for j := 0; j < cols; j++ {
				h[i][j] *= numerH[i][j] / (denomH[i][j] + nmfEpsilon)
			}
		}

		// W update: W *= (X Hᵀ) / (W H Hᵀ)
		ht := transpose(h)
		numerW := matMul(x, ht)
		denomW := matMul(w, matMul(h, ht))
		for i := 0; i < rows; i++ {
			for j := 0; j < k; j++ {
				w[i][j] *= numerW[i][j] / (denomW[i][j] + nmfEpsilon)
			}
		}
	}

	return h
}

// --- small dense matrix helpers ---

func randomMatrix(rng *rand.Rand, rows, cols int, scale float64) [][]float64 {
	m := make([][]float64, rows)
	for i := range m {
		m[i] = make([]float64, cols)
		for j := range m[i] {
			m[i][j] = math.Abs(rng.NormFloat64()) * scale
		}
	}
	return m
}

func matrixMean(x [][]float64) float64 {
	sum := 0.0
	count := 0
	for _, row := range x {
		for _, v := range row {
			sum += v
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

func transpose(x [][]float64) [][]float64 {
	rows := len(x)
	cols := len(x[0])
	t := make([][]float64, cols)
	for i := range t {
		t[i] = make([]float64, rows)
		for j := 0; j < rows; j++ {
			t[i][j] = x[j][i]
		}
	}
	return t
}

func matMul(a, b [][]float64) [][]float64 {
	rows := len(a)
	inner := len(b)
	cols := len(b[0])
	out := make([][]float64, rows)
	for i := 0; i < rows; i++ {
		out[i] = make([]float64, cols)
		for l := 0; l < inner; l++ {
			av := a[i][l]
			if av == 0 {
				continue
			}
			brow := b[l]
			for j := 0; j < cols; j++ {
				out[i][j] += av * brow[j]
			}
		}
	}
	return out
}
