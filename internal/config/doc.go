// Package config loads the YAML configuration of wordalign and converts it
// into the settings of the aligner, the extractor and the exporters.
//
// Resolution order is built-in defaults, then the config file, then
// explicitly set command-line flags (applied by the caller).
package config
