package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/windcss/windc"
	"github.com/windcss/windc/internal/report"
)

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Check class tokens without emitting CSS",
	Long: `Parse every class token found in the sources and report unparsable
tokens, unknown variants, and unknown utilities as issues.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return runLint()
	},
}

func init() {
	f := lintCmd.Flags()
	f.String("source", "web", "Source directory to scan")
	f.StringSlice("include", nil, "Glob patterns for files to scan")
	f.Bool("strict", false, "Exit 1 on warnings as well as errors (CI mode)")
	f.Int("max-issues", 0, "Max issues to show (0=unlimited)")
	f.String("output-format", "", "Output format: issues|summary|full|json")
}

func runLint() error {
	lintConfig := lintConfigFromKoanf()

	result, err := windc.Lint(lintConfig)
	if err != nil {
		return fmt.Errorf("lint failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	if !quiet {
		format := report.DetermineFormat(getStringWithFallback("output-format", "lint.output-format", ""))
		opts := report.Options{
			UseColors:      getBoolWithFallback("color", "color", false),
			PrintCheckName: true,
			PrintCarets:    true,
		}
		if err := report.Write(os.Stdout, result, format, opts); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
	}

	// Soft gate: errors always fail; warnings only fail in strict mode.
	strict := getBoolWithFallback("strict", "lint.strict", false)
	if result.ErrorCount > 0 || (strict && len(result.Diagnostics) > 0) {
		os.Exit(1)
	}

	return nil
}
