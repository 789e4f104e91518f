// Package main provides the CLI entrypoint for wordalign.
//
// wordalign aligns a reference word sequence with a tagged candidate
// sequence:
//   - Reads reference words from a plain text file
//   - Extracts word/tag candidates from a semi-structured response
//   - Greedily pairs each reference word with its most similar unused candidate
//   - Exports the alignment to xlsx, csv or yaml and prints a console report
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// errUsage marks errors caused by the command line rather than the inputs.
var errUsage = errors.New("usage error")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stderr)
		return exitUsage
	}

	var err error

	switch args[0] {
	case "align":
		err = runAlign(args[1:], stdout, stderr)
	case "similarity":
		err = runSimilarity(args[1:], stdout, stderr)
	case "blocks":
		err = runBlocks(args[1:], stdout, stderr)
	case "help", "-h", "-help", "--help":
		printUsage(stdout)
		return exitOK
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n", args[0])
		printUsage(stderr)

		return exitUsage
	}

	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, flag.ErrHelp):
		return exitOK
	case errors.Is(err, errUsage):
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "wordalign - fuzzy alignment of a reference with tagged candidates")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  wordalign align -reference ref.txt -candidates hyp.txt [flags]")
	fmt.Fprintln(w, "  wordalign similarity [-scorer name] A B")
	fmt.Fprintln(w, "  wordalign blocks [-runes] A B    (operands are compared in sorted order)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'wordalign <command> -h' for the flags of a command.")
}

// newLogger returns a text logger on w. Debug wins over verbose.
func newLogger(w io.Writer, verbose, debug bool) *slog.Logger {
	lvl := slog.LevelWarn

	switch {
	case debug:
		lvl = slog.LevelDebug
	case verbose:
		lvl = slog.LevelInfo
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// isFlagSet reports whether name was given on the command line.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})

	return found
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func usageErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", errUsage, fmt.Sprintf(format, args...))
}
