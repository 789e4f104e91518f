package source

import (
	"fmt"

	"wordalign/internal/align"
	"wordalign/internal/diagnostic"
)

// Inputs holds both sides of an alignment run as read from disk.
type Inputs struct {
	Reference  []string
	Candidates []align.Entry
	// Diagnostics reports inputs that cannot produce a meaningful alignment.
	Diagnostics diagnostic.Diagnostics
}

// Load reads the reference tokens and extracts the candidate entries.
//
// I/O failures are returned as errors. An empty reference, an empty candidate
// file, or a candidate file the pattern matches nothing in are reported as
// error diagnostics so the caller can still align and export what it has.
func Load(referencePath, candidatesPath string, ex *Extractor) (*Inputs, error) {
	reference, err := ReadTokens(referencePath)
	if err != nil {
		return nil, err
	}

	text, err := ReadText(candidatesPath)
	if err != nil {
		return nil, err
	}

	in := &Inputs{
		Reference:  reference,
		Candidates: ex.Extract(text),
	}

	if len(reference) == 0 {
		in.Diagnostics.AddError(diagnostic.CodeEmptyInput,
			fmt.Sprintf("reference file %s has no words", referencePath), -1, "")
	}

	switch {
	case text == "":
		in.Diagnostics.AddError(diagnostic.CodeEmptyInput,
			fmt.Sprintf("candidate file %s is empty", candidatesPath), -1, "")
	case len(in.Candidates) == 0:
		in.Diagnostics.AddError(diagnostic.CodeNoExtraction,
			fmt.Sprintf("pattern %s matched nothing in %s", ex.Pattern(), candidatesPath), -1, "")
	}

	return in, nil
}
