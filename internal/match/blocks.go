package match

import "sort"

// Block is a run of identical elements shared by two sequences: a[A:A+Size]
// equals b[B:B+Size]. Blocks returned by MatchingBlocks always have Size > 0.
type Block struct {
	A    int
	B    int
	Size int
}

// window is a pending half-open search range [aLo, aHi) x [bLo, bHi).
type window struct {
	aLo, aHi int
	bLo, bHi int
}

// FindLongestMatch finds a longest common substring of a[aLo:aHi] and
// b[bLo:bHi], counted in bytes.
//
// Ties are resolved in favor of the first match reached by a row-major scan
// of the DP table: the lowest starting offset in a, then the lowest in b.
// When nothing matches, the result is Block{aLo, bLo, 0}.
//
// Time and space complexity: O((aHi-aLo) * (bHi-bLo)).
func FindLongestMatch(a, b string, aLo, aHi, bLo, bHi int) Block {
	return findLongestMatch([]byte(a), []byte(b), window{aLo, aHi, bLo, bHi})
}

// MatchingBlocks decomposes a and b into non-overlapping common substrings,
// counted in bytes, ordered by ascending offset in a.
func MatchingBlocks(a, b string) []Block {
	return matchingBlocks([]byte(a), []byte(b))
}

// MatchingBlocksRunes is MatchingBlocks with offsets counted in code points.
func MatchingBlocksRunes(a, b string) []Block {
	return matchingBlocks([]rune(a), []rune(b))
}

func findLongestMatch[T comparable](a, b []T, w window) Block {
	best := Block{A: w.aLo, B: w.bLo}

	rows := w.aHi - w.aLo
	cols := w.bHi - w.bLo
	if rows <= 0 || cols <= 0 {
		return best
	}

	// lengths[i+1][j+1] is the length of the common suffix of
	// a[aLo:aLo+i+1] and b[bLo:bLo+j+1].
	lengths := make([][]int, rows+1)
	for i := range lengths {
		lengths[i] = make([]int, cols+1)
	}

	for i := range rows {
		ai := a[w.aLo+i]
		for j := range cols {
			if ai != b[w.bLo+j] {
				continue
			}

			n := lengths[i][j] + 1
			lengths[i+1][j+1] = n

			// Strict improvement keeps the earliest of equally long matches.
			if n > best.Size {
				best = Block{
					A:    w.aLo + i + 1 - n,
					B:    w.bLo + j + 1 - n,
					Size: n,
				}
			}
		}
	}

	return best
}

// matchingBlocks runs the decomposition over an explicit work list instead of
// recursing, so stack use stays flat however long the inputs are.
func matchingBlocks[T comparable](a, b []T) []Block {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}

	var blocks []Block

	pending := []window{{0, len(a), 0, len(b)}}
	for len(pending) > 0 {
		w := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		m := findLongestMatch(a, b, w)
		if m.Size == 0 {
			continue
		}

		if w.aLo < m.A && w.bLo < m.B {
			pending = append(pending, window{w.aLo, m.A, w.bLo, m.B})
		}

		if m.A+m.Size < w.aHi && m.B+m.Size < w.bHi {
			pending = append(pending, window{m.A + m.Size, w.aHi, m.B + m.Size, w.bHi})
		}

		blocks = append(blocks, m)
	}

	sort.Slice(blocks, func(i, j int) bool {
		return blocks[i].A < blocks[j].A
	})

	return blocks
}

// matchedSize sums the block sizes.
func matchedSize(blocks []Block) int {
	total := 0
	for _, blk := range blocks {
		total += blk.Size
	}

	return total
}
