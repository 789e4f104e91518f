// Package match provides the word similarity engine used by the aligner:
// matching-block decomposition, the block ratio built on it, alternative
// scorers, word normalization, and candidate ranking.
//
// Key functions:
//   - FindLongestMatch: longest common substring within a window, first match wins ties
//   - MatchingBlocks: non-overlapping common substrings, ordered by offset in a
//   - Similarity: 2*M / (len(a)+len(b)) over the matching blocks
//   - ScorerByName: resolves ratio, ratio-runes, levenshtein or jaro-winkler
//   - NormalizeWord: NFC, case folding and punctuation trimming
//   - RankCandidates: ranks a candidate pool against one word
package match
