// Package report formats windc diagnostics for terminals and tooling. The
// core classifies problems; everything user-facing lives here.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/windcss/windc"
)

// Format selects how diagnostics are rendered.
type Format string

const (
	// FormatIssues shows diagnostics one per line in golangci-lint style.
	FormatIssues Format = "issues"
	// FormatSummary shows counts only.
	FormatSummary Format = "summary"
	// FormatFull shows issues plus the summary.
	FormatFull Format = "full"
	// FormatJSON exports structured data for tooling integration.
	FormatJSON Format = "json"
)

// DetermineFormat selects the output format from the flag value, defaulting
// to issues-only, which is clean and consistent everywhere.
func DetermineFormat(flag string) Format {
	switch flag {
	case "issues":
		return FormatIssues
	case "summary":
		return FormatSummary
	case "full":
		return FormatFull
	case "json":
		return FormatJSON
	}
	return FormatIssues
}

// Options configures a Reporter.
type Options struct {
	UseColors      bool // force colors; otherwise auto-detected
	PrintCheckName bool // append the (check) suffix to each issue
	PrintCarets    bool // show a caret under the offending column
}

// Reporter renders diagnostics to a writer.
type Reporter struct {
	w    io.Writer
	opts Options
}

// NewReporter creates a reporter. Colors are auto-detected unless forced.
func NewReporter(w io.Writer, opts Options) *Reporter {
	if !opts.UseColors {
		opts.UseColors = detectColors()
	}
	return &Reporter{w: w, opts: opts}
}

// detectColors mirrors CI-friendly color detection: explicit env overrides,
// then TTY sniffing.
func detectColors() bool {
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}
	if fileInfo, _ := os.Stdout.Stat(); fileInfo != nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}
	return false
}

// PrintDiagnostics outputs diagnostics sorted by file, line, then column.
func (r *Reporter) PrintDiagnostics(diags []windc.Diagnostic) {
	sorted := append([]windc.Diagnostic(nil), diags...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Pos.Filename != sorted[j].Pos.Filename {
			return sorted[i].Pos.Filename < sorted[j].Pos.Filename
		}
		if sorted[i].Pos.Line != sorted[j].Pos.Line {
			return sorted[i].Pos.Line < sorted[j].Pos.Line
		}
		return sorted[i].Pos.Column < sorted[j].Pos.Column
	})

	for _, d := range sorted {
		r.printDiagnostic(d)
	}
}

// printDiagnostic formats one diagnostic as file:line:col: message (check).
func (r *Reporter) printDiagnostic(d windc.Diagnostic) {
	location := fmt.Sprintf("%s:%d:%d:", d.Pos.Filename, d.Pos.Line, d.Pos.Column)

	checkSuffix := ""
	if r.opts.PrintCheckName {
		checkSuffix = fmt.Sprintf(" (%s)", d.Check)
	}

	severity := StyleYellow
	if d.Severity == windc.SeverityError {
		severity = StyleRed
	}

	fmt.Fprintf(r.w, "%s %s%s\n",
		renderStyle(StyleCyan, location, r.opts.UseColors),
		renderStyle(severity, d.Text, r.opts.UseColors),
		renderStyle(StyleGray, checkSuffix, r.opts.UseColors))

	if r.opts.PrintCarets && d.SourceLine != "" {
		fmt.Fprintf(r.w, "\t%s\n", d.SourceLine)
		caret := buildCaretIndicator(d.SourceLine, d.Pos.Column)
		fmt.Fprintf(r.w, "\t%s\n", renderStyle(StyleYellow, caret, r.opts.UseColors))
	}
}

// buildCaretIndicator creates the "^" indicator aligned with the column,
// matching tabs in the prefix so alignment survives mixed indentation.
func buildCaretIndicator(sourceLine string, column int) string {
	if column <= 0 {
		return "^"
	}
	prefixLen := column - 1
	if prefixLen > len(sourceLine) {
		prefixLen = len(sourceLine)
	}
	var padding strings.Builder
	for _, ch := range sourceLine[:prefixLen] {
		if ch == '\t' {
			padding.WriteRune('\t')
		} else {
			padding.WriteRune(' ')
		}
	}
	return padding.String() + "^"
}

// PrintSummary outputs the issue count breakdown for a lint run.
func (r *Reporter) PrintSummary(result windc.LintResult) {
	fmt.Fprintln(r.w, "")

	total := len(result.Diagnostics)
	switch {
	case result.ErrorCount > 0 && result.WarningCount > 0:
		fmt.Fprintf(r.w, "%s (%s, %s)\n",
			pluralizeCount(total, "issue", "issues"),
			pluralizeCount(result.ErrorCount, "error", "errors"),
			pluralizeCount(result.WarningCount, "warning", "warnings"))
	default:
		fmt.Fprintf(r.w, "%s\n", pluralizeCount(total, "issue", "issues"))
	}
	if result.TruncatedCount > 0 {
		fmt.Fprintf(r.w, "(%d truncated)\n", result.TruncatedCount)
	}

	// Group by check.
	checkCounts := make(map[string]int)
	for _, d := range result.Diagnostics {
		checkCounts[d.Check]++
	}
	checks := make([]string, 0, len(checkCounts))
	for check := range checkCounts {
		checks = append(checks, check)
	}
	sort.Strings(checks)
	for _, check := range checks {
		fmt.Fprintf(r.w, "* %s: %d\n", check, checkCounts[check])
	}
}

// PrintBuildSummary outputs the statistics of a compile run.
func (r *Reporter) PrintBuildSummary(result windc.BuildResult, output string) {
	fmt.Fprintf(r.w, "%s %s\n",
		renderStyle(StyleGreen, "Built", r.opts.UseColors), output)
	fmt.Fprintf(r.w, "  Files scanned: %d\n", result.FilesScanned)
	fmt.Fprintf(r.w, "  Tokens found:  %d\n", result.TokensFound)
	fmt.Fprintf(r.w, "  Rules emitted: %d\n", result.RulesEmitted)
}

// Write renders a lint result in the requested format.
func Write(w io.Writer, result *windc.LintResult, format Format, opts Options) error {
	switch format {
	case FormatJSON:
		return WriteJSON(w, result)
	case FormatSummary:
		NewReporter(w, opts).PrintSummary(*result)
	case FormatFull:
		r := NewReporter(w, opts)
		r.PrintDiagnostics(result.Diagnostics)
		r.PrintSummary(*result)
	default:
		NewReporter(w, opts).PrintDiagnostics(result.Diagnostics)
	}
	return nil
}

// jsonReport is the machine-readable export shape.
type jsonReport struct {
	Diagnostics []windc.Diagnostic `json:"Diagnostics"`
	Files       int                `json:"Files"`
	Tokens      int                `json:"Tokens"`
	Errors      int                `json:"Errors"`
	Warnings    int                `json:"Warnings"`
}

// WriteJSON exports a lint result as indented JSON.
func WriteJSON(w io.Writer, result *windc.LintResult) error {
	rep := jsonReport{
		Diagnostics: result.Diagnostics,
		Files:       result.FilesScanned,
		Tokens:      result.TokensChecked,
		Errors:      result.ErrorCount,
		Warnings:    result.WarningCount,
	}
	if rep.Diagnostics == nil {
		rep.Diagnostics = []windc.Diagnostic{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

// pluralizeCount returns a formatted string with count and singular/plural
// form.
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
