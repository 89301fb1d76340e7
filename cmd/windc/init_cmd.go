package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .windc.yaml config file",
	Long:  `Create a .windc.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".windc.yaml"); err == nil && !force {
			return fmt.Errorf(".windc.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".windc.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Println("Created .windc.yaml")
		return nil
	},
}

const defaultConfig = `# windc configuration
# Docs: https://github.com/windcss/windc

# Shared settings
verbose: false

# Build settings
build:
  source: web
  output: dist/windc.css
  include:
    - "**/*.html"
    - "**/*.templ"
    - "**/*.vue"
    - "**/*.svelte"
    - "**/*.jsx"
    - "**/*.tsx"
  workers: 0               # 0 = GOMAXPROCS

# Linting settings
lint:
  strict: false
  output-format: issues    # issues | summary | full | json
  max-issues: 0            # 0 = unlimited
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
