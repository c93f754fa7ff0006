// Package lis_test provides lightweight testing helpers shared across
// *_test.go files in this package. The helpers are intentionally minimal,
// stdlib-only, and avoid duplicating assertions that already live in
// focused test files.
package lis_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/subseq/lis"
	"github.com/stretchr/testify/assert"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// seedDet is a deterministic seed so randomized property checks are
	// reproducible across runs.
	seedDet = int64(1)

	// maxOracleLen bounds sequences cross-checked against the exponential
	// oracles; 2^15 recursion is still instant, anything much above is not.
	maxOracleLen = 15

	// trialCount is the number of randomized sequences per property check.
	trialCount = 60

	// valueSpan is the half-open value range [0, valueSpan) for random
	// elements — small enough to make duplicate values common.
	valueSpan = 20
)

// interleavedLiteral is the shared agreement-check sequence; its LIS is
// 0,1,2,3,4,5,6 — length 7. Its first ten elements have LIS length 5
// (0,1,2,3 then 4 or 5).
var interleavedLiteral = []int{9, 0, 8, 1, 7, 2, 6, 3, 5, 4, 5, 6}

// randSeq returns a random sequence of length n with values in [0, valueSpan).
func randSeq(r *rand.Rand, n int) []int {
	nums := make([]int, n)
	for i := range nums {
		nums[i] = r.Intn(valueSpan)
	}

	return nums
}

// isStrictlyIncreasing reports whether sub is strictly increasing.
func isStrictlyIncreasing(sub []int) bool {
	for i := 1; i < len(sub); i++ {
		if sub[i] <= sub[i-1] {
			return false
		}
	}

	return true
}

// isSubsequenceOf reports whether sub can be read out of seq left to right,
// preserving order.
func isSubsequenceOf(sub, seq []int) bool {
	i := 0
	for _, v := range seq {
		if i < len(sub) && sub[i] == v {
			i++
		}
	}

	return i == len(sub)
}

// assertCandidateInvariants checks the two pruned-collection invariants:
// tails strictly increasing (hence unique) and lengths non-decreasing along
// the tail order. Every candidate must itself be strictly increasing and
// non-empty.
func assertCandidateInvariants(t *testing.T, cands lis.Candidates) {
	t.Helper()

	tails := cands.Tails()
	for i, c := range cands {
		assert.NotEmpty(t, c, "candidate %d must not be empty", i)
		assert.True(t, isStrictlyIncreasing(c), "candidate %d (%v) must be strictly increasing", i, c)
		if i == 0 {
			continue
		}
		assert.Greater(t, tails[i], tails[i-1],
			"tail values must be strictly increasing (no duplicates): %v", tails)
		assert.GreaterOrEqual(t, len(cands[i]), len(cands[i-1]),
			"lengths must be non-decreasing along tail order")
	}
}

// countIncreasing returns the number of strictly-increasing subsequences of
// nums, counted over index sets: an O(n²) DP oracle independent of the
// enumeration under test.
func countIncreasing(nums []int) int {
	endingAt := make([]int, len(nums))
	total := 0
	for i := range nums {
		endingAt[i] = 1
		for j := 0; j < i; j++ {
			if nums[j] < nums[i] {
				endingAt[i] += endingAt[j]
			}
		}
		total += endingAt[i]
	}

	return total
}
