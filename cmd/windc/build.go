package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/windcss/windc"
	"github.com/windcss/windc/internal/report"
)

var buildCmd = &cobra.Command{
	Use:     "build",
	Aliases: []string{"compile"},
	Short:   "Compile utility class tokens into a stylesheet",
	Long: `Scan markup sources for utility class tokens and compile them into a
deduplicated CSS stylesheet written to the output path.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runBuild,
}

func init() {
	f := buildCmd.Flags()
	f.String("source", "web", "Source directory to scan")
	f.String("output", "dist/windc.css", "Stylesheet output path")
	f.StringSlice("include", nil, "Glob patterns for files to scan")
	f.Int("workers", 0, "Parallel file workers (0 = GOMAXPROCS)")
}

func runBuild(_ *cobra.Command, _ []string) error {
	config := buildConfigFromKoanf()

	result, err := windc.Build(config)
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	if !quiet {
		opts := report.Options{
			UseColors:      getBoolWithFallback("color", "color", false),
			PrintCheckName: true,
		}
		r := report.NewReporter(os.Stdout, opts)
		r.PrintDiagnostics(result.Diagnostics)
		r.PrintBuildSummary(*result, config.Output)
	}

	return nil
}
