package regress

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/trknhr/housepricer/internal/logger"
)

// Model is a fitted ordinary least-squares linear model. Weights follow the
// feature order the model was fitted with.
type Model struct {
	Features  []string
	Intercept float64
	Weights   []float64
}

// Fit solves the least-squares problem for X (rows of features) against y,
// with an intercept term.
func Fit(X [][]float64, y []float64) (*Model, error) {
	n := len(X)
	if n == 0 {
		return nil, fmt.Errorf("no training rows")
	}
	if n != len(y) {
		return nil, fmt.Errorf("feature rows (%d) and targets (%d) differ", n, len(y))
	}
	p := len(X[0])
	if p == 0 {
		return nil, fmt.Errorf("no feature columns")
	}
	if n < p+1 {
		return nil, fmt.Errorf("need at least %d rows to fit %d features, got %d", p+1, p, n)
	}

	design := mat.NewDense(n, p+1, nil)
	for i, row := range X {
		if len(row) != p {
			return nil, fmt.Errorf("row %d has %d values, want %d", i, len(row), p)
		}
		design.Set(i, 0, 1)
		for j, v := range row {
			design.Set(i, j+1, v)
		}
	}

	// An ill-conditioned design matrix (e.g. the same column selected twice)
	// still yields a usable least-squares solution; mat.Condition only
	// reports the conditioning, so it downgrades to a warning.
	var beta mat.VecDense
	if err := beta.SolveVec(design, mat.NewVecDense(n, y)); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) {
			return nil, fmt.Errorf("least squares solve: %w", err)
		}
		logger.Warn("design matrix is ill-conditioned: %v", err)
	}

	m := &Model{Intercept: beta.AtVec(0), Weights: make([]float64, p)}
	for j := 0; j < p; j++ {
		m.Weights[j] = beta.AtVec(j + 1)
	}
	return m, nil
}

// Predict runs inference on a single row ordered like the fitted features.
func (m *Model) Predict(row []float64) (float64, error) {
	if len(row) != len(m.Weights) {
		return 0, fmt.Errorf("got %d values, model expects %d", len(row), len(m.Weights))
	}
	sum := m.Intercept
	for j, v := range row {
		sum += m.Weights[j] * v
	}
	return sum, nil
}

// PredictAll runs inference over every row of X.
func (m *Model) PredictAll(X [][]float64) ([]float64, error) {
	out := make([]float64, len(X))
	for i, row := range X {
		v, err := m.Predict(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}
