package regress_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/trknhr/housepricer/internal/regress"
)

func TestSplitSizes(t *testing.T) {
	train, test := regress.Split(100, 0.2, 42)
	if len(test) != 20 {
		t.Errorf("expected 20 holdout rows, got %d", len(test))
	}
	if len(train) != 80 {
		t.Errorf("expected 80 training rows, got %d", len(train))
	}

	seen := make(map[int]bool, 100)
	for _, i := range append(append([]int{}, train...), test...) {
		if seen[i] {
			t.Fatalf("index %d appears twice", i)
		}
		seen[i] = true
	}
	if len(seen) != 100 {
		t.Errorf("expected the split to cover all 100 rows, covered %d", len(seen))
	}
}

func TestSplitHoldoutRoundsUp(t *testing.T) {
	// 4 * 0.2 = 0.8 rows; the holdout still gets one.
	train, test := regress.Split(4, 0.2, 42)
	if len(test) != 1 {
		t.Errorf("expected 1 holdout row, got %d", len(test))
	}
	if len(train) != 3 {
		t.Errorf("expected 3 training rows, got %d", len(train))
	}
}

func TestSplitDeterminism(t *testing.T) {
	train1, test1 := regress.Split(50, 0.2, 42)
	train2, test2 := regress.Split(50, 0.2, 42)
	if diff := cmp.Diff(train1, train2); diff != "" {
		t.Errorf("training partitions differ for the same seed:\n%s", diff)
	}
	if diff := cmp.Diff(test1, test2); diff != "" {
		t.Errorf("holdout partitions differ for the same seed:\n%s", diff)
	}

	_, test3 := regress.Split(50, 0.2, 7)
	if cmp.Diff(test1, test3) == "" {
		t.Errorf("expected a different partition for a different seed")
	}
}
