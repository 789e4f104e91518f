// Package export writes alignment records to files. Writers for xlsx, csv
// and yaml are registered in DefaultRegistry.
package export
