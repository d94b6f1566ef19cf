package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .cssunify.yaml config file",
	Long:  `Create a .cssunify.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".cssunify.yaml"); err == nil && !force {
			return fmt.Errorf(".cssunify.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".cssunify.yaml", []byte(defaultConfig), 0o644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Println("Created .cssunify.yaml")
		return nil
	},
}

const defaultConfig = `# cssunify configuration
# Docs: https://github.com/yacobolo/cssunify

# Output root of the generated site
root: public

# Pages to scan and rewrite, relative to root (required)
files:
  - "**/*.html"

# Gitignore-style patterns removing matched pages
# exclude:
#   - "drafts/"

# Root-relative path of the consolidated stylesheet
destination: /assets/styles.css

# CSS media types passed through to the analyzer
# media:
#   - screen

# Analyzer timeout in milliseconds (0 = analyzer default)
timeout: 0

# CSS usage analyzer executable
tool: uncss

# Parallel page workers (0 = default)
concurrency: 0
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
