package regress

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/trknhr/housepricer/internal/dataset"
	"github.com/trknhr/housepricer/internal/logger"
)

// Result is a fitted model together with its holdout score.
type Result struct {
	Model     *Model
	Score     float64
	TrainRows int
	TestRows  int
}

// Train gathers the feature columns and the price column from the dataset,
// splits rows deterministically, fits OLS on the training partition, and
// scores R² on the holdout partition.
func Train(ds *dataset.Dataset, features []string, testFraction float64, seed int64) (*Result, error) {
	if len(features) == 0 {
		return nil, fmt.Errorf("no features selected")
	}

	cols := make([][]float64, len(features))
	for i, name := range features {
		col, err := ds.Column(name)
		if err != nil {
			return nil, fmt.Errorf("feature %s: %w", name, err)
		}
		cols[i] = col
	}
	y, err := ds.Column(dataset.TargetColumn)
	if err != nil {
		return nil, fmt.Errorf("target: %w", err)
	}

	n := len(y)
	trainIdx, testIdx := Split(n, testFraction, seed)
	if len(trainIdx) == 0 || len(testIdx) == 0 {
		return nil, fmt.Errorf("dataset too small to split: %d rows at fraction %v", n, testFraction)
	}

	gather := func(idx []int) ([][]float64, []float64) {
		X := make([][]float64, len(idx))
		yy := make([]float64, len(idx))
		for i, r := range idx {
			row := make([]float64, len(cols))
			for j := range cols {
				row[j] = cols[j][r]
			}
			X[i] = row
			yy[i] = y[r]
		}
		return X, yy
	}

	trainX, trainY := gather(trainIdx)
	testX, testY := gather(testIdx)

	model, err := Fit(trainX, trainY)
	if err != nil {
		return nil, err
	}
	model.Features = append([]string(nil), features...)

	preds, err := model.PredictAll(testX)
	if err != nil {
		return nil, err
	}
	score := stat.RSquaredFrom(preds, testY, nil)
	logger.Debug("trained on %d rows, scored on %d rows, r2=%.6f", len(trainIdx), len(testIdx), score)

	return &Result{
		Model:     model,
		Score:     score,
		TrainRows: len(trainIdx),
		TestRows:  len(testIdx),
	}, nil
}
