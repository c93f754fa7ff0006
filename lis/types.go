// Package lis defines the candidate collection type and the pluggable
// builder strategy shared by the batch and streaming variants.
package lis

import "math"

// Candidates is an ordered collection of strictly-increasing subsequences.
//
// Collections produced by BuildCandidates (and held by an Extractor) are
// sorted by non-decreasing tail value and pruned so that no candidate is
// both shorter than, and tailed equal-or-above, another. Collections from
// AllSubsequences carry no ordering guarantee beyond determinism.
type Candidates [][]int

// Builder produces a candidate collection from an input sequence.
// BuildCandidates and AllSubsequences both satisfy it.
type Builder func(nums []int) Candidates

// Longest returns the maximum-length candidate, the first one in collection
// order when several tie. It returns nil for an empty collection.
//
// The returned slice is the stored candidate, not a copy; candidates are
// never mutated after construction, so treat it as read-only.
// Complexity: O(len(cs)).
func (cs Candidates) Longest() []int {
	var best []int
	for _, c := range cs {
		if len(c) > len(best) {
			best = c
		}
	}

	return best
}

// Clone returns a deep copy of the collection: the outer list and every
// candidate are freshly allocated. Complexity: O(total elements).
func (cs Candidates) Clone() Candidates {
	if cs == nil {
		return nil
	}
	out := make(Candidates, len(cs))
	for i, c := range cs {
		out[i] = append([]int(nil), c...)
	}

	return out
}

// Tails returns the tail value of each candidate, in collection order.
// For pruning-built collections the result is strictly increasing.
// Complexity: O(len(cs)).
func (cs Candidates) Tails() []int {
	tails := make([]int, len(cs))
	for i, c := range cs {
		tails[i] = tailValue(c)
	}

	return tails
}

// tailValue returns the last (maximum) element of a strictly-increasing
// candidate, or math.MinInt for an empty one — a sentinel that compares
// below every input value. Complexity: O(1).
func tailValue(sub []int) int {
	if len(sub) == 0 {
		return math.MinInt
	}

	return sub[len(sub)-1]
}
