package windc

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/html"
)

// ScanStats tracks file discovery statistics for one build.
type ScanStats struct {
	FilesDiscovered int // total files matched by glob patterns
	FilesScanned    int // files actually scanned after filtering
	FilesSkipped    int // files excluded by gitignore or generated-file rules
}

// attrPattern matches a class-carrying attribute in line-oriented sources
// (JSX, Vue, Svelte, templ). HTML files go through a real lexer instead.
type attrPattern struct {
	name  string
	regex *regexp.Regexp
}

var (
	attrPatterns = []attrPattern{
		{name: "class attribute", regex: regexp.MustCompile(`\bclass\s*=\s*"([^"]*)"`)},
		{name: "class attribute single-quoted", regex: regexp.MustCompile(`\bclass\s*=\s*'([^']*)'`)},
		{name: "className attribute", regex: regexp.MustCompile(`\bclassName\s*=\s*"([^"]*)"`)},
		{name: "className expression", regex: regexp.MustCompile("\\bclassName\\s*=\\s*\\{\\s*[\"`]([^\"`]*)[\"`]")},
		{name: "class:list literal", regex: regexp.MustCompile(`\bclass:list\s*=\s*\{\s*"([^"]*)"`)},
	}

	// gitignore caching
	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

// loadGitIgnore loads the .gitignore file once (thread-safe). Gracefully
// degrades if no .gitignore exists.
func loadGitIgnore() *ignore.GitIgnore {
	gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			gitIgnoreCache = nil
			return
		}
		gitIgnoreCache = gi
	})
	return gitIgnoreCache
}

// shouldSkipFile excludes generated sources and gitignored paths. The
// gitignore check only applies to relative paths within the project.
func shouldSkipFile(path string) bool {
	if strings.HasSuffix(path, "_templ.go") || strings.HasSuffix(path, ".gen.go") {
		return true
	}
	if !filepath.IsAbs(path) {
		gi := loadGitIgnore()
		if gi != nil && gi.MatchesPath(path) {
			return true
		}
	}
	return false
}

// ScanSources expands the include globs under sourceDir and returns the
// deduplicated list of scannable files plus discovery statistics.
func ScanSources(sourceDir string, includes []string) ([]string, ScanStats, error) {
	var files []string
	seen := make(map[string]bool)
	stats := ScanStats{}

	for _, pattern := range includes {
		fullPattern := pattern
		if sourceDir != "" {
			fullPattern = filepath.Join(sourceDir, pattern)
		}
		matches, err := doublestar.FilepathGlob(fullPattern)
		if err != nil {
			return nil, stats, err
		}
		for _, match := range matches {
			if seen[match] {
				continue
			}
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			stats.FilesDiscovered++
			if shouldSkipFile(match) {
				stats.FilesSkipped++
				continue
			}
			seen[match] = true
			files = append(files, match)
			stats.FilesScanned++
		}
	}

	return files, stats, nil
}

// ExtractTokens reads one source file and returns every class token it
// references, in document order. HTML files are lexed; other formats are
// scanned line by line with attribute patterns.
func ExtractTokens(path string) ([]TokenRef, error) {
	if strings.HasSuffix(path, ".html") || strings.HasSuffix(path, ".htm") {
		// #nosec G304 - path comes from trusted configuration
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return extractHTMLTokens(string(content), path), nil
	}
	return extractLineTokens(path)
}

// extractHTMLTokens walks HTML attribute tokens with the tdewolff lexer and
// collects the whitespace-separated tokens of every class attribute.
func extractHTMLTokens(content, path string) []TokenRef {
	var refs []TokenRef

	input := parse.NewInputString(content)
	lexer := html.NewLexer(input)
	prevLine := 0
	from := 0
	for {
		tt, _ := lexer.Next()
		if tt == html.ErrorToken {
			// ErrorToken at EOF is normal.
			return refs
		}
		if tt != html.AttributeToken {
			continue
		}
		if string(lexer.Text()) != "class" {
			continue
		}

		val := strings.Trim(string(lexer.AttrVal()), `"'`)
		line := 1 + strings.Count(content[:input.Offset()], "\n")
		lineText := lineAt(content, line)
		if line != prevLine {
			prevLine = line
			from = 0
		}
		for _, token := range strings.Fields(val) {
			col := tokenColumn(lineText, token, from)
			if col > 0 {
				from = col - 1 + len(token)
			}
			refs = append(refs, TokenRef{
				Token:      token,
				File:       path,
				Line:       line,
				Col:        col,
				SourceLine: lineText,
			})
		}
	}
}

// extractLineTokens scans a non-HTML source line by line with the attribute
// patterns.
func extractLineTokens(path string) ([]TokenRef, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var refs []TokenRef
	scanner := bufio.NewScanner(file)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		from := 0
		for _, p := range attrPatterns {
			matches := p.regex.FindAllStringSubmatch(line, -1)
			if len(matches) == 0 {
				continue
			}
			for _, match := range matches {
				for _, token := range strings.Fields(match[1]) {
					col := tokenColumn(line, token, from)
					if col > 0 {
						from = col - 1 + len(token)
					}
					refs = append(refs, TokenRef{
						Token:      token,
						File:       path,
						Line:       lineNum,
						Col:        col,
						SourceLine: line,
					})
				}
			}
			// First matching pattern wins; trying the rest would report the
			// same attribute value twice.
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return refs, nil
}

// lineAt returns the 1-based line of content, or "" when out of range.
func lineAt(content string, line int) string {
	rest := content
	for i := 1; ; i++ {
		end := strings.IndexByte(rest, '\n')
		if i == line {
			if end < 0 {
				return rest
			}
			return rest[:end]
		}
		if end < 0 {
			return ""
		}
		rest = rest[end+1:]
	}
}

// tokenColumn locates the 1-based column of token within line, searching
// from index from so a token that is a substring of an earlier one (flex
// after sm:flex) gets its own position. Falls back to the first occurrence
// anywhere on the line, then to 0 when the token is not literally present
// (e.g. wrapped attributes).
func tokenColumn(line, token string, from int) int {
	if from < 0 || from > len(line) {
		from = 0
	}
	if idx := strings.Index(line[from:], token); idx >= 0 {
		return from + idx + 1
	}
	if idx := strings.Index(line, token); idx >= 0 {
		return idx + 1
	}
	return 0
}
