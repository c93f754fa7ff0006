// Package subseq is an in-memory toolkit for extracting maximal increasing
// subsequences from integer sequences — from tiny exhaustive oracles to an
// incremental, stream-friendly extractor.
//
// 🚀 What is subseq/lis?
//
//	A small, focused library around one classic problem: given a sequence
//	of integers, find a longest strictly-increasing subsequence (elements
//	need not be contiguous, order is preserved). It ships:
//		• Brute force: recursive include/exclude length computation
//		• Exhaustive: every strictly-increasing subsequence, materialized
//		• Candidate pruning: the practical O(n²) builder, dominance-pruned
//		• Streaming: feed values one at a time, best answer always current
//		• Driver: pluggable strategy selection over candidate builders
//
// ✨ Why choose subseq?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Total functions – every operation is defined for every finite input,
//     the empty sequence included; no error taxonomy to handle
//   - Pure Go – no cgo, no hidden deps
//   - Verifiable – the exhaustive builder doubles as a correctness oracle
//     for the pruned one, and the tests lean on it heavily
//
// Everything lives under one subpackage:
//
//	lis/ — the four algorithm variants, the Candidates collection and the
//	       streaming Extractor
//
// Quick taste:
//
//	best := lis.Longest([]int{1, 3, 7, 5}, nil) // → [1 3 5]
//
// See examples/ for runnable walkthroughs, including the cross-strategy
// agreement check and a value-by-value streaming session.
//
//	go get github.com/katalvlaran/subseq/lis
package subseq
