package lis

import "sort"

// BuildCandidates — pruned candidate construction
//
// Description:
//
//	BuildCandidates folds nums left to right into a candidate collection
//	sorted by non-decreasing tail value, eagerly discarding candidates
//	that can never be extended into a longest answer. The collection's
//	longest entry is a correct LIS of nums; the collection does not claim
//	to hold every optimal-length subsequence, only at least one.
//
// Algorithm Outline (per element v, see fold):
//
//  1. Lower-bound search: the first candidate whose tail value is ≥ v.
//  2. Position 0 → the new candidate is the singleton [v].
//  3. Otherwise extend the longest candidate before the position (all have
//     tails < v, so any maximal one is an eligible base; the first maximal
//     one found wins, which specific one is not part of the contract).
//  4. Insert the new candidate at the found position, keeping tail order.
//  5. Prune every later candidate with tail ≥ v and length ≤ the new
//     candidate's length: the same-or-better tail is now reachable at
//     equal-or-greater length, so it is strictly dominated.
//
// Correctness rationale: a future value can only extend candidates whose
// tails are below it, and for that purpose only the longest candidate at
// or below each tail value matters.
//
// Invariants (hold after every fold, not just at the end):
//
//   - no two candidates share a tail value;
//   - by ascending tail value, candidate length is non-decreasing.
//
// Edge cases:
//
//	Empty input → empty collection. A value equal to an existing tail does
//	not extend past it: strict increase is required, and the lower-bound
//	search treats equal tails as "not less".
//
// Complexity:
//
//	Time O(n²) worst case (base scan + insert shift per element),
//	memory O(n²) across the stored candidates. Far from the exponential
//	variants; no practical input-size restriction.
func BuildCandidates(nums []int) Candidates {
	var cands Candidates
	for _, v := range nums {
		cands = cands.fold(v)
	}

	return cands
}

// fold performs one insert-and-prune step of the candidate construction,
// returning the updated collection. It is shared verbatim by the batch
// builder and the streaming Extractor, so the two cannot drift apart.
// fold never mutates the elements of existing candidates; extensions are
// copies.
func (cs Candidates) fold(v int) Candidates {
	// 1. Lower bound over tails: first candidate with tail ≥ v.
	pos := sort.Search(len(cs), func(i int) bool { return tailValue(cs[i]) >= v })

	// 2–3. Construct the new candidate ending in v.
	var next []int
	if pos == 0 {
		next = []int{v}
	} else {
		base := 0
		for i := 1; i < pos; i++ {
			if len(cs[i]) > len(cs[base]) {
				base = i
			}
		}
		next = make([]int, len(cs[base])+1)
		copy(next, cs[base])
		next[len(cs[base])] = v
	}

	// 4. Insert at pos, preserving tail order.
	cs = append(cs, nil)
	copy(cs[pos+1:], cs[pos:])
	cs[pos] = next

	// 5. Drop dominated candidates after the insertion point.
	kept := cs[:pos+1]
	for _, c := range cs[pos+1:] {
		if tailValue(c) >= v && len(c) <= len(next) {
			continue
		}
		kept = append(kept, c)
	}

	return kept
}
