package windc

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
)

// Build compiles every class token found under config.SourceDir into a
// stylesheet using the default utility catalog. When config.Output is set
// the stylesheet is also written to that path.
func Build(config Config) (*BuildResult, error) {
	return BuildWithCatalog(config, NewDefaultCatalog())
}

// BuildWithCatalog is Build with a caller-supplied catalog.
//
// Files are processed by config.Workers parallel workers. Each worker
// accumulates rules into a private store; the stores are merged in
// worker-index order once all workers finish, so the emitted stylesheet
// order never depends on completion order. Per-token failures become
// diagnostics and never abort sibling tokens.
func BuildWithCatalog(config Config, catalog Catalog) (*BuildResult, error) {
	files, stats, err := ScanSources(config.SourceDir, config.Includes)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}

	result := &BuildResult{FilesScanned: stats.FilesScanned}
	if config.Verbose {
		fmt.Printf("Found %d source files (%d skipped)\n", stats.FilesScanned, stats.FilesSkipped)
	}

	workers := config.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(files) {
		workers = len(files)
	}
	if workers < 1 {
		workers = 1
	}

	type workerState struct {
		store  *RuleStore
		diags  []Diagnostic
		tokens int
	}
	outs := make([]workerState, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			out := &outs[w]
			out.store = NewRuleStore()
			for i := w; i < len(files); i += workers {
				refs, err := ExtractTokens(files[i])
				if err != nil {
					out.diags = append(out.diags, Diagnostic{
						Check:    CheckParse,
						Text:     fmt.Sprintf("cannot read source: %v", err),
						Severity: SeverityError,
						Pos:      Position{Filename: files[i], Line: 1},
					})
					continue
				}
				for _, ref := range refs {
					out.tokens++
					compileToken(ref, catalog, out.store, &out.diags)
				}
			}
		}(w)
	}
	wg.Wait()

	// Merge in worker-index order for a deterministic stylesheet.
	store := NewRuleStore()
	for w := range outs {
		store.Merge(outs[w].store)
		result.Diagnostics = append(result.Diagnostics, outs[w].diags...)
		result.TokensFound += outs[w].tokens
	}

	result.CSS = store.Emit()
	result.RulesEmitted = store.Len()

	if config.Output != "" {
		if dir := filepath.Dir(config.Output); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create output dir: %w", err)
			}
		}
		if err := os.WriteFile(config.Output, []byte(result.CSS), 0o644); err != nil {
			return nil, fmt.Errorf("write stylesheet: %w", err)
		}
	}

	return result, nil
}

// CompileClass runs the full single-token pipeline: parse, catalog
// resolution, composition. It is the per-token unit the builder and tests
// share.
func CompileClass(token string, catalog Catalog) (Rule, error) {
	parsed, err := ParseClassName(token)
	if err != nil {
		return Rule{}, err
	}
	decls, err := catalog.Resolve(parsed.Utility, parsed.ArbitraryValue)
	if err != nil {
		return Rule{}, err
	}
	return Compose(parsed, decls)
}

// compileToken compiles one extracted token into the store, converting
// failures into diagnostics. Unknown variant names additionally produce a
// warning even though composition falls back to a pass-through selector.
func compileToken(ref TokenRef, catalog Catalog, store *RuleStore, diags *[]Diagnostic) {
	pos := Position{Filename: ref.File, Line: ref.Line, Column: ref.Col}

	parsed, err := ParseClassName(ref.Token)
	if err != nil {
		*diags = append(*diags, Diagnostic{
			Check:      CheckParse,
			Text:       fmt.Sprintf("invalid class token %q", ref.Token),
			Severity:   SeverityError,
			Token:      ref.Token,
			Pos:        pos,
			SourceLine: ref.SourceLine,
		})
		return
	}

	for _, v := range parsed.Variants {
		if v.Arbitrary {
			continue
		}
		if _, ok := LookupVariant(v.RawName); !ok {
			*diags = append(*diags, Diagnostic{
				Check:      CheckVariant,
				Text:       fmt.Sprintf("unknown variant %q in %q", v.RawName, ref.Token),
				Severity:   SeverityWarning,
				Token:      ref.Token,
				Pos:        pos,
				SourceLine: ref.SourceLine,
			})
		}
	}

	decls, err := catalog.Resolve(parsed.Utility, parsed.ArbitraryValue)
	if err != nil {
		*diags = append(*diags, Diagnostic{
			Check:      CheckUtility,
			Text:       fmt.Sprintf("unknown utility %q", parsed.Utility),
			Severity:   SeverityError,
			Token:      ref.Token,
			Pos:        pos,
			SourceLine: ref.SourceLine,
		})
		return
	}

	rule, err := Compose(parsed, decls)
	if err != nil {
		*diags = append(*diags, Diagnostic{
			Check:      CheckCompose,
			Text:       err.Error(),
			Severity:   SeverityError,
			Token:      ref.Token,
			Pos:        pos,
			SourceLine: ref.SourceLine,
		})
		return
	}

	store.Add(rule)
}
