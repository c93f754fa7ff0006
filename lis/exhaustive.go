package lis

// AllSubsequences — exhaustive enumeration
//
// Description:
//
//	AllSubsequences materializes every strictly-increasing subsequence of
//	nums, each exactly once. It is the completeness oracle the pruning
//	builder is validated against; it is deliberately not pruned.
//
// Algorithm Outline:
//
//  1. Process elements left to right.
//  2. For each value v, every already-built subsequence whose tail is
//     less than v spawns an extended copy ending in v; the original is
//     kept unchanged.
//  3. The singleton subsequence [v] is always added.
//
// Every strictly-increasing subsequence is created exactly once: at the
// step processing its last element, from its (already unique) prefix.
//
// Edge cases:
//
//	Empty input yields an empty collection, not a collection holding the
//	empty subsequence.
//
// Complexity:
//
//	Time and memory O(2^n) — each element can at most double the collection.
//	A strictly increasing input of length n yields exactly 2^n − 1 entries.
//	Small inputs only.
func AllSubsequences(nums []int) Candidates {
	var subs Candidates
	for _, v := range nums {
		// Snapshot the count: extensions created for v must not themselves
		// be extended by v.
		existing := len(subs)
		for i := 0; i < existing; i++ {
			if tailValue(subs[i]) >= v {
				continue
			}
			ext := make([]int, len(subs[i])+1)
			copy(ext, subs[i])
			ext[len(subs[i])] = v
			subs = append(subs, ext)
		}
		subs = append(subs, []int{v})
	}

	return subs
}
