package windc

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "index.html", `<!DOCTYPE html>
<html>
<body class="bg-white">
  <div class="flex items-center md:hover:bg-blue-500">
    <span class="flex">duplicate display</span>
  </div>
</body>
</html>
`)
	writeSource(t, dir, "app.jsx", `export const App = () => (
  <main className="flex p-4 !underline">
    <aside className={"group-hover:block"} />
  </main>
);
`)

	output := filepath.Join(dir, "dist", "windc.css")
	result, err := Build(Config{
		SourceDir: dir,
		Includes:  []string{"**/*.html", "**/*.jsx"},
		Output:    output,
		Workers:   4,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.FilesScanned)
	assert.Equal(t, 9, result.TokensFound)
	assert.Empty(t, result.Diagnostics)

	// flex appears three times but yields one rule.
	assert.Equal(t, 1, strings.Count(result.CSS, ".flex {"))
	assert.Contains(t, result.CSS, "@media (min-width: 768px)")
	assert.Contains(t, result.CSS, ".bg-blue-500:hover")
	assert.Contains(t, result.CSS, ".group:hover .block")
	assert.Contains(t, result.CSS, "text-decoration-line: underline !important;")

	written, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, result.CSS, string(written))
}

func TestBuild_DeterministicAcrossWorkerCounts(t *testing.T) {
	dir := t.TempDir()
	for i, classes := range []string{
		"flex p-4 bg-blue-500",
		"grid gap-2 md:flex",
		"hover:underline text-lg",
		"block m-2 rounded-lg",
		"hidden sm:block font-bold",
	} {
		writeSource(t, dir, filepath.Join("pages", string(rune('a'+i))+".html"),
			`<div class="`+classes+`"></div>`)
	}

	config := Config{SourceDir: dir, Includes: []string{"**/*.html"}}

	config.Workers = 1
	serial, err := Build(config)
	require.NoError(t, err)

	// For a fixed worker count the output is byte-identical run to run; the
	// rule set itself never depends on the worker count.
	for _, workers := range []int{1, 2, 4, 8} {
		config.Workers = workers
		first, err := Build(config)
		require.NoError(t, err)
		second, err := Build(config)
		require.NoError(t, err)
		assert.Equal(t, first.CSS, second.CSS, "workers=%d", workers)
		assert.Equal(t, serial.RulesEmitted, first.RulesEmitted, "workers=%d", workers)
	}
}

func TestBuild_DiagnosticsDoNotAbortSiblings(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "index.html",
		`<div class="flex not-a-real-utility fancy:block hover/nav:flex"></div>`)

	result, err := Build(Config{SourceDir: dir, Includes: []string{"**/*.html"}})
	require.NoError(t, err)

	assert.Equal(t, 4, result.TokensFound)
	assert.Contains(t, result.CSS, ".flex {")
	// fancy: is an unknown variant but composition still emits a rule.
	assert.Contains(t, result.CSS, ".block:fancy")

	var checks []string
	for _, d := range result.Diagnostics {
		checks = append(checks, d.Check)
	}
	assert.Contains(t, checks, CheckUtility)
	assert.Contains(t, checks, CheckVariant)
	assert.Contains(t, checks, CheckCompose)
}

func TestBuild_DiagnosticPositions(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "index.html", `<html>
<body>
  <div class="no-such-thing"></div>
</body>
</html>
`)

	result, err := Build(Config{SourceDir: dir, Includes: []string{"**/*.html"}})
	require.NoError(t, err)
	require.Len(t, result.Diagnostics, 1)

	d := result.Diagnostics[0]
	assert.Equal(t, CheckUtility, d.Check)
	assert.Equal(t, SeverityError, d.Severity)
	assert.Equal(t, "no-such-thing", d.Token)
	assert.Equal(t, path, d.Pos.Filename)
	assert.Equal(t, 3, d.Pos.Line)
	assert.Positive(t, d.Pos.Column)
	assert.Equal(t, `  <div class="no-such-thing"></div>`, d.SourceLine)
}

func TestBuild_DiagnosticsCarrySourceLine(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "index.html",
		`<div class="not-a-real-utility fancy:block hover/nav:flex"></div>`)

	result, err := Build(Config{SourceDir: dir, Includes: []string{"**/*.html"}})
	require.NoError(t, err)
	require.NotEmpty(t, result.Diagnostics)

	// Every check kind renders a caret, so every diagnostic needs the line.
	for _, d := range result.Diagnostics {
		assert.NotEmpty(t, d.SourceLine, "diagnostic %q (%s) lost its source line", d.Token, d.Check)
		assert.Contains(t, d.SourceLine, d.Token)
	}
}

func TestBuild_NoSources(t *testing.T) {
	result, err := Build(Config{SourceDir: t.TempDir(), Includes: []string{"**/*.html"}})
	require.NoError(t, err)
	assert.Zero(t, result.FilesScanned)
	assert.Zero(t, result.TokensFound)
	assert.Equal(t, "", result.CSS)
}

func TestLint(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "index.html",
		`<div class="flex bogus-one bogus-two fancy:block"></div>`)

	result, err := Lint(LintConfig{SourceDir: dir, Includes: []string{"**/*.html"}})
	require.NoError(t, err)

	assert.Equal(t, 1, result.FilesScanned)
	assert.Equal(t, 4, result.TokensChecked)
	assert.Equal(t, 2, result.ErrorCount)
	assert.Equal(t, 1, result.WarningCount)
	assert.Len(t, result.Diagnostics, 3)
	assert.Zero(t, result.TruncatedCount)
	for _, d := range result.Diagnostics {
		assert.NotEmpty(t, d.SourceLine)
	}
}

func TestLint_MaxIssues(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "index.html",
		`<div class="bogus-one bogus-two bogus-three"></div>`)

	result, err := Lint(LintConfig{
		SourceDir: dir,
		Includes:  []string{"**/*.html"},
		MaxIssues: 2,
	})
	require.NoError(t, err)

	assert.Len(t, result.Diagnostics, 2)
	assert.Equal(t, 1, result.TruncatedCount)
	// Counts reflect everything found, not just what survived truncation.
	assert.Equal(t, 3, result.ErrorCount)
}

func TestLint_CleanSources(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "index.html", `<div class="flex p-4 hover:bg-blue-500"></div>`)

	result, err := Lint(LintConfig{SourceDir: dir, Includes: []string{"**/*.html"}})
	require.NoError(t, err)
	assert.Empty(t, result.Diagnostics)
	assert.Zero(t, result.ErrorCount)
	assert.Zero(t, result.WarningCount)
}
