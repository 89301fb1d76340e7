package windc

// LintConfig holds linting configuration.
type LintConfig struct {
	SourceDir string
	Includes  []string
	Strict    bool // exit non-zero on warnings as well as errors
	MaxIssues int  // 0 = unlimited
	Verbose   bool
}

// LintResult contains the diagnostics of a check-only run.
type LintResult struct {
	FilesScanned   int
	TokensChecked  int
	Diagnostics    []Diagnostic
	ErrorCount     int
	WarningCount   int
	TruncatedCount int // diagnostics dropped by MaxIssues
}

// Lint runs the token pipeline without emitting CSS: every class token
// found in the sources is parsed, its variants checked against the
// registry, and its utility resolved against the catalog. Problems are
// returned as diagnostics; nothing is written.
func Lint(config LintConfig) (*LintResult, error) {
	return LintWithCatalog(config, NewDefaultCatalog())
}

// LintWithCatalog is Lint with a caller-supplied catalog.
func LintWithCatalog(config LintConfig, catalog Catalog) (*LintResult, error) {
	buildResult, err := BuildWithCatalog(Config{
		SourceDir: config.SourceDir,
		Includes:  config.Includes,
		Verbose:   config.Verbose,
	}, catalog)
	if err != nil {
		return nil, err
	}

	result := &LintResult{
		FilesScanned:  buildResult.FilesScanned,
		TokensChecked: buildResult.TokensFound,
		Diagnostics:   buildResult.Diagnostics,
	}
	for _, d := range result.Diagnostics {
		switch d.Severity {
		case SeverityError:
			result.ErrorCount++
		case SeverityWarning:
			result.WarningCount++
		}
	}

	if config.MaxIssues > 0 && len(result.Diagnostics) > config.MaxIssues {
		result.TruncatedCount = len(result.Diagnostics) - config.MaxIssues
		result.Diagnostics = result.Diagnostics[:config.MaxIssues]
	}

	return result, nil
}
