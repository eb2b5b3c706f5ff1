// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/H0llyW00dzZ/pem-outline/src/config"
	"github.com/H0llyW00dzZ/pem-outline/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/pem-outline/src/internal/outline"
	pemscan "github.com/H0llyW00dzZ/pem-outline/src/internal/pem/scan"
	"github.com/H0llyW00dzZ/pem-outline/src/logger"
	"github.com/spf13/cobra"
)

var (
	// OperationPerformed is set once a document has been read and analysis
	// has started.
	OperationPerformed bool
	// OperationPerformedSuccessfully is set after the output was written.
	OperationPerformedSuccessfully bool
)

// options holds the parsed flags of one command instance.
type options struct {
	output     string
	format     string
	configFile string
	tokens     bool
	folding    bool
	debug      bool
}

// debugSetter is implemented by loggers with a runtime debug switch.
type debugSetter interface {
	SetDebug(enabled bool)
}

// Execute builds the root command and runs it with ctx and the process
// arguments.
func Execute(ctx context.Context, version string, log logger.Logger) error {
	return NewCommand(version, log).ExecuteContext(ctx)
}

// NewCommand returns the pem-outline root command.
func NewCommand(version string, log logger.Logger) *cobra.Command {
	if log == nil {
		log = logger.Nop()
	}
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   posix.ExecutableName("pem-outline") + " [FILE]",
		Short: "Outline the blocks and certificates of a PEM document",
		Long: `pem-outline scans a PEM document, pairs its BEGIN/END delimiters into
blocks and decodes certificate blocks into subject, issuer, validity and
public key algorithm. FILE defaults to stdin; "-" reads stdin explicitly.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return execCli(cmd, args, opts, log)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.output, "output", "o", "", "output to OUTPUT_FILE (default: stdout)")
	flags.StringVarP(&opts.format, "format", "f", "", "output format: tree, table, json or yaml (default: tree on a terminal, json otherwise)")
	flags.StringVarP(&opts.configFile, "config", "c", "", "configuration file (default: $"+config.EnvConfigFile+")")
	flags.BoolVar(&opts.tokens, "tokens", false, "include semantic tokens in the output")
	flags.BoolVar(&opts.folding, "folding", false, "include folding ranges in the output")
	flags.BoolVar(&opts.debug, "debug", false, "log certificate decode failures")

	return rootCmd
}

// execCli reads the input document, analyzes it within the configured
// timeout and writes the rendered outline to stdout or the output file.
func execCli(cmd *cobra.Command, args []string, opts *options, log logger.Logger) error {
	cfg, err := config.Load(opts.configFile)
	if err != nil {
		return err
	}
	if d, ok := log.(debugSetter); ok {
		d.SetDebug(opts.debug || cfg.Logging.Debug)
	}

	format, err := resolveFormat(opts.format, cfg.Defaults.Format, cmd.OutOrStdout(), opts.output != "")
	if err != nil {
		return err
	}

	text, source, err := readInput(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}
	OperationPerformed = true

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeout())
	defer cancel()

	analyzer := outline.New(
		outline.WithCertificateLabels(cfg.Analysis.CertificateLabels...),
		outline.WithLogger(log),
		outline.WithScannerOptions(pemscan.WithLabelMismatchWarnings(cfg.Analysis.ReportLabelMismatch)),
	)
	analysis, err := analyzer.Analyze(ctx, pemscan.SplitLines(text))
	if err != nil {
		return fmt.Errorf("analysis of %s aborted: %w", source, err)
	}
	if !opts.tokens {
		analysis.Tokens = nil
	}
	if !opts.folding {
		analysis.Folding = nil
	}

	data, err := render(analysis, format)
	if err != nil {
		return fmt.Errorf("error rendering %s output: %w", format, err)
	}

	// JSON and YAML carry diagnostics in the payload itself.
	if format == FormatTree || format == FormatTable {
		for _, d := range analysis.Diagnostics {
			log.Printf("%s:%d: %s: %s", source, d.Line+1, d.Severity, d.Message)
		}
	}

	if opts.output != "" {
		if err := os.WriteFile(opts.output, data, 0644); err != nil {
			return fmt.Errorf("error writing output file: %w", err)
		}
	} else if _, err := cmd.OutOrStdout().Write(data); err != nil {
		return fmt.Errorf("error writing output: %w", err)
	}

	OperationPerformedSuccessfully = true
	return nil
}

// readInput returns the document text and a name for it in messages.
func readInput(stdin io.Reader, args []string) (string, string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", "", fmt.Errorf("error reading stdin: %w", err)
		}
		return string(data), "stdin", nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", fmt.Errorf("error reading input file: %w", err)
	}
	return string(data), args[0], nil
}
