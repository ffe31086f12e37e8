// Package main provides the CLI entry point for textab.
package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ukaji3/textab/internal/logging"
	"github.com/ukaji3/textab/pkg/textab"
	"github.com/ukaji3/textab/pkg/textab/output"
	"github.com/ukaji3/textab/pkg/textab/watch"
)

// Default paths of the legacy export workflow.
const (
	defaultInput  = "results.txt"
	defaultOutput = "output.xlsx"
)

var (
	outputPath     string
	sheetName      string
	configPath     string
	widthThreshold int
	legacyDecimal  bool
	preview        bool
	watchMode      bool
	jsonSummary    bool
	logLevel       string
	logFormat      string
)

var log = logrus.New()

func main() {
	rootCmd := &cobra.Command{
		Use:   "textab [input.txt]",
		Short: "Rebuild a delimited text export as an xlsx workbook",
		Long: `textab parses a line-oriented export of named tables (blank-line
separated, '#' between the header and data segments of a line, '&'
between fields) and writes them to a single-sheet xlsx workbook with
numeric cells coerced, repeated values merged vertically and table
titles spanned across their tables.`,
		Args: cobra.MaximumNArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", defaultOutput, "Path of the xlsx workbook to write")
	rootCmd.Flags().StringVar(&sheetName, "sheet", "", "Worksheet name (default \"Tables\")")
	rootCmd.Flags().StringVar(&configPath, "config", "", "YAML profile overriding the defaults")
	rootCmd.Flags().IntVar(&widthThreshold, "width-threshold", 0, "Header length above which columns are widened (default 10)")
	rootCmd.Flags().BoolVar(&legacyDecimal, "legacy-decimal", false, "Rewrite decimal points on whole lines like the legacy exporter")
	rootCmd.Flags().BoolVar(&preview, "preview", false, "Print the parsed tables instead of writing a workbook")
	rootCmd.Flags().BoolVar(&watchMode, "watch", false, "Keep running and reconvert whenever the input changes")
	rootCmd.Flags().BoolVar(&jsonSummary, "json", false, "Print the conversion summary as JSON")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&logFormat, "log-format", "text", "Log format (text, json)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	level, err := logging.GetLevel(logLevel)
	if err != nil {
		return err
	}
	log.SetLevel(level)
	log.SetFormatter(logging.GetFormatter(logFormat))

	inputPath := defaultInput
	if len(args) == 1 {
		inputPath = args[0]
	}

	opts := textab.DefaultOptions()
	if configPath != "" {
		if opts, err = textab.LoadOptions(configPath); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("sheet") {
		opts.SheetName = sheetName
	}
	if cmd.Flags().Changed("width-threshold") {
		opts.WidthThreshold = widthThreshold
	}
	if legacyDecimal {
		opts.LegacyDecimalNormalization = true
	}

	if preview {
		tables, err := textab.Load(inputPath, opts)
		if err != nil {
			return err
		}
		return output.WritePreview(os.Stdout, tables)
	}
	if watchMode {
		return runWatch(inputPath, opts)
	}

	result, err := textab.Convert(inputPath, outputPath, opts)
	if err != nil {
		return err
	}
	return report(result)
}

// runWatch converts once up front and then reconverts on every change of
// the input until interrupted.
func runWatch(inputPath string, opts textab.Options) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reconvert := func(context.Context) error {
		result, err := textab.Convert(inputPath, outputPath, opts)
		if err != nil {
			return err
		}
		return report(result)
	}
	if err := reconvert(ctx); err != nil {
		log.WithError(err).Error("conversion failed")
	}
	return watch.New(inputPath, reconvert, log).Run(ctx)
}

// report prints the conversion summary, as JSON when requested.
func report(result *textab.Result) error {
	if jsonSummary {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	log.WithFields(logrus.Fields{
		"tables": result.Tables,
		"rows":   result.Rows,
	}).Infof("saved workbook as %q", result.Output)
	return nil
}
