// Package lis extracts longest strictly-increasing subsequences (LIS)
// from integer sequences, in batch or one fed value at a time.
//
// What:
//
//   - Length — brute-force recursive length computation (include/exclude).
//   - AllSubsequences — every strictly-increasing subsequence, materialized;
//     the exhaustive oracle the faster builders are validated against.
//   - BuildCandidates — the practical builder: a tail-value-sorted candidate
//     list, dominance-pruned after every element, whose longest entry is a
//     correct LIS answer.
//   - Longest / LongestLen — strategy-pluggable drivers selecting the
//     max-length candidate.
//   - Extractor — stateful streaming variant of BuildCandidates: Feed values
//     as they arrive, Best is always the answer for the history so far.
//
// Why:
//
//   - Order statistics over event streams: longest run of strictly improving
//     measurements without buffering the tail of the stream twice.
//   - Teaching/verification: the three strategies cross-check one another.
//
// Candidate collection invariants (maintained by BuildCandidates and
// Extractor after every single-element step):
//
//  1. No two candidates share a tail value — among competitors, only the
//     longest survives.
//  2. Scanning by ascending tail value, candidate length is non-decreasing —
//     anything shorter with an equal-or-greater tail is dominated and gone.
//
// Complexity:
//
//   - Length:           O(2^n) time, O(n) stack — small inputs only.
//   - AllSubsequences:  O(2^n) time and memory — small inputs only.
//   - BuildCandidates:  O(n²) time worst case, O(n²) memory for the stored
//     candidates; no practical input-size restriction.
//   - Extractor.Feed:   O(n) per value against an n-element history.
//
// Errors:
//
//	None. Every operation is total over any finite []int, the empty
//	sequence included; the exponential variants rely on the caller to
//	bound input size rather than on guard rails.
package lis
