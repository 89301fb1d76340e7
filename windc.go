// Package windc compiles Tailwind-style utility class tokens into CSS.
//
// windc scans markup sources for class tokens like hover:bg-blue-500 or
// md:w-[200px], parses each token's importance marker, variant chain, base
// utility, and arbitrary value, and assembles a deduplicated stylesheet
// whose selector and at-rule nesting follows a fixed variant precedence.
//
// # Compiling
//
// Compile everything under a source tree:
//
//	config := windc.Config{
//		SourceDir: "web",
//		Includes:  []string{"**/*.html", "**/*.templ"},
//		Output:    "dist/windc.css",
//	}
//	result, err := windc.Build(config)
//
// # Single tokens
//
// The per-token pipeline is exposed for embedding:
//
//	rule, err := windc.CompileClass("md:hover:text-white", windc.NewDefaultCatalog())
//
// # Linting
//
// Check class tokens without emitting CSS:
//
//	result, err := windc.Lint(windc.LintConfig{
//		SourceDir: "web",
//		Includes:  []string{"**/*.html"},
//	})
//
// # CLI Tool
//
// windc also provides a CLI. Install with:
//
//	go install github.com/windcss/windc/cmd/windc@latest
package windc
