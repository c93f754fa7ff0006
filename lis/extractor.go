package lis

// Extractor incrementally maintains the pruned candidate collection for a
// growing sequence: feed values as they arrive and the current best answer
// is always available, without recomputing from scratch.
//
// After any series of feeds, Candidates equals exactly what BuildCandidates
// would return for the full history — both run the same fold step, so the
// equivalence holds by construction.
//
// The zero value is unusable; construct with NewExtractor. An Extractor
// owns its state exclusively and is not safe for unsynchronized concurrent
// feeds: a single logical caller must drive it, or serialize access with a
// mutex.
type Extractor struct {
	history []int
	cands   Candidates
}

// NewExtractor returns an Extractor with empty history and no candidates.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Feed folds one value into the candidate collection and appends it to the
// history. Complexity: O(len(history)) worst case.
func (e *Extractor) Feed(v int) {
	e.cands = e.cands.fold(v)
	e.history = append(e.history, v)
}

// FeedAll feeds every value of nums in order; it is exactly repeated Feed.
func (e *Extractor) FeedAll(nums []int) {
	for _, v := range nums {
		e.Feed(v)
	}
}

// History returns a copy of every value fed so far, in feed order.
func (e *Extractor) History() []int {
	return append([]int(nil), e.history...)
}

// Candidates returns a deep copy of the current candidate collection,
// sorted by tail value and pruned per the package invariants. Mutating the
// copy does not affect the Extractor.
func (e *Extractor) Candidates() Candidates {
	return e.cands.Clone()
}

// Best returns a copy of the current longest increasing subsequence of the
// history, or nil if nothing has been fed. Its length never decreases as
// more values are fed.
func (e *Extractor) Best() []int {
	best := e.cands.Longest()
	if best == nil {
		return nil
	}

	return append([]int(nil), best...)
}
