package lis

// Longest returns a longest strictly-increasing subsequence of nums.
//
// build selects the candidate-construction strategy; nil means
// BuildCandidates. AllSubsequences is a valid (exponential) alternative.
// Ties between equally long answers are broken by whichever the builder's
// collection presents first — all maximum-length candidates are equally
// valid.
//
// Empty input returns nil.
func Longest(nums []int, build Builder) []int {
	if len(nums) == 0 {
		return nil
	}
	if build == nil {
		build = BuildCandidates
	}

	return build(nums).Longest()
}

// LongestLen returns the length of Longest(nums, build).
//
// Unlike Length, which recomputes exponentially, this costs whatever the
// chosen builder costs.
func LongestLen(nums []int, build Builder) int {
	return len(Longest(nums, build))
}
