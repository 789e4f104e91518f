// Package source reads the two inputs of an alignment run: a reference text
// split into whitespace-separated tokens, and a candidate file from which
// word/tag entries are extracted with a regular expression.
package source
