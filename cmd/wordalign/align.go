package main

import (
	"flag"
	"fmt"
	"io"

	"wordalign/internal/align"
	"wordalign/internal/config"
	"wordalign/internal/export"
	"wordalign/internal/match"
	"wordalign/internal/report"
	"wordalign/internal/source"
)

// alignFlags holds the command line values of the align command.
type alignFlags struct {
	reference   string
	candidates  string
	configFile  string
	threshold   float64
	chunkSize   int
	workers     int
	scorer      string
	pattern     string
	output      string
	format      string
	missing     string
	suggestions int
	normalize   bool
	noTag       bool
	noColor     bool
	verbose     bool
	debug       bool
}

func newAlignFlagSet(stderr io.Writer) (*flag.FlagSet, *alignFlags) {
	f := &alignFlags{}
	fs := flag.NewFlagSet("align", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&f.reference, "reference", "", "Path to the reference text file (required)")
	fs.StringVar(&f.candidates, "candidates", "", "Path to the tagged candidate file (required)")
	fs.StringVar(&f.configFile, "config", "", "Path to configuration file (YAML); defaults to ./wordalign.yaml if present")
	fs.Float64Var(&f.threshold, "threshold", align.DefaultThreshold, "Minimum similarity for a match")
	fs.IntVar(&f.chunkSize, "chunk", align.DefaultChunkSize, "Reference words per progress step")
	fs.IntVar(&f.workers, "workers", 1, "Goroutines scoring candidates")
	fs.StringVar(&f.scorer, "scorer", match.ScorerRatio, fmt.Sprintf("Similarity function: %v", match.ScorerNames()))
	fs.StringVar(&f.pattern, "pattern", "", "Regular expression extracting word and tag groups")
	fs.StringVar(&f.output, "out", "", "Export path (default: alignment_<candidates stem>.<ext>)")
	fs.StringVar(&f.format, "format", "", fmt.Sprintf("Export format: %v (default: from -out, else xlsx)", export.Formats()))
	fs.StringVar(&f.missing, "missing", "", "Text shown for an absent match (default: "+export.DefaultMissing+")")
	fs.IntVar(&f.suggestions, "suggest", 0, "Nearest candidates listed per unmatched word")
	fs.BoolVar(&f.noTag, "no-tag", false, "Leave the Tag column out of the export")
	fs.BoolVar(&f.normalize, "normalize", false, "Apply NFC and case folding to both inputs")
	fs.BoolVar(&f.noColor, "no-color", false, "Disable colored output")
	fs.BoolVar(&f.verbose, "verbose", false, "Print diagnostics and chunk progress")
	fs.BoolVar(&f.debug, "debug", false, "Enable debug logging")

	return fs, f
}

func runAlign(args []string, stdout, stderr io.Writer) error {
	fs, flags := newAlignFlagSet(stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if flags.reference == "" || flags.candidates == "" {
		return usageErrorf("align needs -reference and -candidates")
	}

	if fs.NArg() > 0 {
		return usageErrorf("unexpected arguments: %v", fs.Args())
	}

	configPath := flags.configFile
	if configPath == "" {
		configPath = config.FindFile(".")
	}

	cfg, err := config.LoadFile(configPath)
	if err != nil {
		return err
	}

	resolveConfiguration(cfg, fs, flags)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	logger := newLogger(stderr, cfg.Verbose, flags.debug)
	if configPath != "" {
		logger.Info("loaded configuration", "path", configPath)
	}

	if flags.debug {
		dump, err := config.Marshal(cfg)
		if err != nil {
			return err
		}

		logger.Debug("resolved configuration", "config", string(dump))
	}

	extractor, err := source.NewExtractor(cfg.Pattern)
	if err != nil {
		return err
	}

	inputs, err := source.Load(flags.reference, flags.candidates, extractor)
	if err != nil {
		return err
	}

	reference, candidates := inputs.Reference, inputs.Candidates
	logger.Info("inputs read", "references", len(reference), "candidates", len(candidates), "pattern", extractor.Pattern())

	if opts := cfg.NormalizeOptions(); opts.Enabled() {
		reference = match.NormalizeWords(reference, opts)
		candidates = source.NormalizeEntries(candidates, opts)
	}

	alignerConfig, err := cfg.AlignerConfig()
	if err != nil {
		return err
	}

	alignerConfig.OnChunk = func(p align.ChunkProgress) {
		logger.Info(fmt.Sprintf("Processed chunk %d-%d of %d", p.Start+1, p.End, p.Total), "matched", p.Matched)
	}

	result, err := align.NewAligner(alignerConfig).Align(reference, candidates)
	if err != nil {
		return err
	}

	// Input problems come first in the report.
	diags := inputs.Diagnostics
	diags.Merge(result.Diagnostics)
	result.Diagnostics = diags

	for _, d := range result.Diagnostics.Warnings {
		logger.Debug(d.Message, "code", d.Code, "position", d.Position, "word", d.Word)
	}

	writer, err := export.Resolve(cfg.Output.Format, cfg.Output.Path)
	if err != nil {
		return err
	}

	outPath := cfg.Output.Path
	if outPath == "" {
		outPath = export.DefaultPath(flags.candidates, writer)
	}

	exportOpts := export.Options{Missing: cfg.Missing, OmitTag: cfg.Output.OmitTag}
	if err := export.WriteFile(outPath, writer, result.Records, exportOpts); err != nil {
		return err
	}

	logger.Info("export written", "path", outPath, "format", writer.Name())

	printer := report.NewPrinter(stdout, report.Options{
		NoColor: cfg.NoColor || !isTerminal(stdout),
		Verbose: cfg.Verbose,
		Missing: cfg.Missing,
	})
	printer.Print(result)
	printer.Elapsed(result.Summary.Elapsed)
	printer.Saved(outPath)

	return result.Diagnostics.Error()
}

// resolveConfiguration applies explicitly set flags on top of cfg.
func resolveConfiguration(cfg *config.Config, fs *flag.FlagSet, flags *alignFlags) {
	if isFlagSet(fs, "threshold") {
		cfg.Threshold = flags.threshold
	}

	if isFlagSet(fs, "chunk") {
		cfg.ChunkSize = flags.chunkSize
	}

	if isFlagSet(fs, "workers") {
		cfg.Workers = flags.workers
	}

	if isFlagSet(fs, "scorer") {
		cfg.Scorer = flags.scorer
	}

	if isFlagSet(fs, "pattern") && flags.pattern != "" {
		cfg.Pattern = flags.pattern
	}

	if isFlagSet(fs, "out") {
		cfg.Output.Path = flags.output
	}

	if isFlagSet(fs, "no-tag") {
		cfg.Output.OmitTag = flags.noTag
	}

	if isFlagSet(fs, "format") {
		cfg.Output.Format = flags.format
	}

	if isFlagSet(fs, "missing") && flags.missing != "" {
		cfg.Missing = flags.missing
	}

	if isFlagSet(fs, "suggest") {
		cfg.Suggestions = flags.suggestions
	}

	if isFlagSet(fs, "normalize") {
		cfg.Normalize.Unicode = flags.normalize
		cfg.Normalize.FoldCase = flags.normalize
	}

	if isFlagSet(fs, "no-color") {
		cfg.NoColor = flags.noColor
	}

	if isFlagSet(fs, "verbose") {
		cfg.Verbose = flags.verbose
	}

	if flags.debug {
		cfg.Verbose = true
	}
}
