package regress

import (
	"math"
	"math/rand"
)

// Split partitions row indices [0, n) into train and holdout sets. The
// permutation is seeded, so the same n, fraction, and seed always produce
// the same partition. The holdout size rounds up, so any positive fraction
// holds out at least one row.
func Split(n int, testFraction float64, seed int64) (train, test []int) {
	perm := rand.New(rand.NewSource(seed)).Perm(n)
	nTest := int(math.Ceil(float64(n) * testFraction))
	return perm[nTest:], perm[:nTest]
}
