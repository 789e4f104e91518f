package export

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"sort"
	"strings"

	"wordalign/internal/align"
)

// DefaultMissing is written in place of an absent match.
const DefaultMissing = "<<MISSING>>"

// Column headers shared by the tabular formats.
const (
	HeaderReference  = "Reference Word"
	HeaderMatched    = "Matched Word"
	HeaderSimilarity = "Similarity"
	HeaderTag        = "Tag"
)

// ErrUnknownFormat is returned for a format no Writer is registered for.
var ErrUnknownFormat = errors.New("unknown export format")

// Options tunes how records are rendered.
type Options struct {
	// Missing replaces the matched word of unmatched records.
	// Empty means DefaultMissing.
	Missing string
	// OmitTag drops the Tag column.
	OmitTag bool
}

func (o Options) missing() string {
	if o.Missing == "" {
		return DefaultMissing
	}

	return o.Missing
}

// Writer renders alignment records in one file format.
type Writer interface {
	// Name returns the format name (e.g. "xlsx", "csv").
	Name() string

	// Description returns a brief description of the format.
	Description() string

	// FileExtension returns the file extension including the dot.
	FileExtension() string

	// Write renders records to w.
	Write(w io.Writer, records []align.Record, opts Options) error
}

// Registry holds writers by name.
type Registry struct {
	writers map[string]Writer
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		writers: make(map[string]Writer),
	}
}

// Register adds a writer, replacing any writer with the same name.
func (r *Registry) Register(w Writer) {
	r.writers[w.Name()] = w
}

// Get retrieves a writer by name.
func (r *Registry) Get(name string) (Writer, bool) {
	w, ok := r.writers[strings.ToLower(name)]
	return w, ok
}

// List returns the registered names, sorted.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.writers))
	for name := range r.writers {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// ByExtension returns the writer whose FileExtension equals ext.
func (r *Registry) ByExtension(ext string) (Writer, bool) {
	ext = strings.ToLower(ext)
	for _, name := range r.List() {
		w := r.writers[name]
		if w.FileExtension() == ext || slices.Contains(aliases[name], ext) {
			return w, true
		}
	}

	return nil, false
}

// aliases lists extra extensions accepted by ByExtension.
var aliases = map[string][]string{
	"yaml": {".yml"},
}

// DefaultRegistry holds the built-in writers.
var DefaultRegistry = func() *Registry {
	r := NewRegistry()
	r.Register(NewXLSXWriter())
	r.Register(NewCSVWriter())
	r.Register(NewYAMLWriter())

	return r
}()

// Lookup returns the default writer for name.
func Lookup(name string) (Writer, error) {
	w, ok := DefaultRegistry.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w %q (available: %s)", ErrUnknownFormat, name, strings.Join(DefaultRegistry.List(), ", "))
	}

	return w, nil
}

// Formats lists the default writer names.
func Formats() []string {
	return DefaultRegistry.List()
}

// row is a record flattened for output.
type row struct {
	Reference  string
	Matched    string
	Similarity float64
	Tag        string
}

func header(opts Options) []string {
	h := []string{HeaderReference, HeaderMatched, HeaderSimilarity}
	if !opts.OmitTag {
		h = append(h, HeaderTag)
	}

	return h
}

func flatten(records []align.Record, opts Options) []row {
	rows := make([]row, len(records))
	for i, rec := range records {
		r := row{
			Reference: rec.Reference,
			Matched:   opts.missing(),
		}

		if word, ok := rec.MatchedWord(); ok {
			r.Matched = word
			r.Similarity = rec.Similarity
			r.Tag, _ = rec.MatchedTag()
		}

		rows[i] = r
	}

	return rows
}
