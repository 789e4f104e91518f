// Package report prints alignment results to the console.
package report
