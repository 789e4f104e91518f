package main

import (
	"flag"
	"fmt"
	"io"

	"wordalign/internal/match"
)

func runSimilarity(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("similarity", flag.ContinueOnError)
	fs.SetOutput(stderr)
	scorerName := fs.String("scorer", match.ScorerRatio, fmt.Sprintf("Similarity function: %v", match.ScorerNames()))

	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() != 2 {
		return usageErrorf("similarity needs exactly two words, got %d", fs.NArg())
	}

	scorer, err := match.ScorerByName(*scorerName)
	if err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	fmt.Fprintf(stdout, "%.4f\n", scorer(fs.Arg(0), fs.Arg(1)))

	return nil
}

func runBlocks(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("blocks", flag.ContinueOnError)
	fs.SetOutput(stderr)
	runes := fs.Bool("runes", false, "Compare code points instead of bytes")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() != 2 {
		return usageErrorf("blocks needs exactly two words, got %d", fs.NArg())
	}

	// Same operand order as match.Similarity, so the total agrees with it.
	a, b := fs.Arg(0), fs.Arg(1)
	if b < a {
		a, b = b, a
	}

	fmt.Fprintf(stdout, "a=%q b=%q\n", a, b)

	var (
		blocks []match.Block
		text   func(start, size int) string
		total  int
	)

	if *runes {
		ra := []rune(a)
		blocks = match.MatchingBlocksRunes(a, b)
		text = func(start, size int) string { return string(ra[start : start+size]) }
		total = len(ra) + len([]rune(b))
	} else {
		blocks = match.MatchingBlocks(a, b)
		text = func(start, size int) string { return a[start : start+size] }
		total = len(a) + len(b)
	}

	matched := 0
	for _, blk := range blocks {
		fmt.Fprintf(stdout, "a[%d:%d] b[%d:%d] %q\n", blk.A, blk.A+blk.Size, blk.B, blk.B+blk.Size, text(blk.A, blk.Size))
		matched += blk.Size
	}

	fmt.Fprintf(stdout, "matched %d of %d\n", matched, total)

	return nil
}
