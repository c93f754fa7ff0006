package lis

import "math"

// Length — brute-force LIS length
//
// Description:
//
//	Length computes the length of the longest strictly-increasing
//	subsequence of nums by exploring, for every element, both the
//	subsequence that includes it and the one that does not.
//
// Algorithm Outline:
//
//  1. Carry a floor: the value every further chosen element must exceed.
//     The initial floor is math.MinInt, meaning "no constraint yet".
//  2. For the first remaining element v:
//     v ≤ floor → v cannot be chosen; recurse on the rest, floor unchanged.
//     v >  floor → evaluate both branches and keep the better:
//     without v: recurse on the rest, floor unchanged
//     with v:    1 + recurse on the rest, floor raised to v
//  3. Empty remainder → 0.
//
// Complexity:
//
//	Time O(2^n), stack O(n). Each element roughly doubles the work; inputs
//	beyond ~20 elements get noticeably slow. Intended for small inputs and
//	cross-checking the other builders, never production sequences.
//
// Pure function: no allocation beyond the recursion, no shared state.
func Length(nums []int) int {
	return lengthAbove(nums, math.MinInt)
}

// lengthAbove is the recursion behind Length: the LIS length of nums using
// only values strictly greater than floor.
func lengthAbove(nums []int, floor int) int {
	if len(nums) == 0 {
		return 0
	}

	v, rest := nums[0], nums[1:]
	if v <= floor {
		// v cannot extend the subsequence under construction.
		return lengthAbove(rest, floor)
	}

	// v can be part of an increasing subsequence, but that does not mean it
	// should: measure both futures and take the longer.
	without := lengthAbove(rest, floor)
	with := 1 + lengthAbove(rest, v)
	if with > without {
		return with
	}

	return without
}
