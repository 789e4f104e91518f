// Package align pairs a reference word sequence with a candidate word/tag
// sequence.
//
// Alignment pipeline:
//  1. Project candidates to their words; a candidate is identified by its index
//  2. Walk the reference in order, in chunks used only for progress reporting
//  3. For each word, score every unused candidate and keep the first one with
//     the strictly highest score at or above the threshold
//  4. Mark the winner used for the rest of the run and emit one record
//  5. Emit diagnostics (unmatched words with reasons, ties, unused candidates)
//
// The algorithm is greedy: earlier reference words get first pick, and no
// decision is revisited. It does not maximize total similarity.
package align
