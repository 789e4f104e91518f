// Package diagnostic provides structured warnings, errors, and
// explanations of alignment decisions.
//
// Key capabilities:
//   - Unmatched reference warnings with a reason and nearest candidates
//   - Notes on ties resolved by candidate order
//   - Run-level notes such as unused candidates or empty inputs
package diagnostic
