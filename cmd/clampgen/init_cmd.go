package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .clampgen.yaml config file",
	Long:  `Create a .clampgen.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(defaultConfigFile); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", defaultConfigFile)
		}

		if err := os.WriteFile(defaultConfigFile, []byte(defaultConfig), 0o644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", defaultConfigFile)
		return nil
	},
}

const defaultConfig = `# clampgen configuration
# Docs: https://github.com/yacobolo/clampgen

# Shared settings
verbose: false

# Generation settings
generate:
  sources:
    - "tokens/**/*.clamp.yaml"
  output-dir: web/styles
  theme-file: theme.css
  tokens-file: theme-tokens.css   # split layout only
  layout: combined                # combined | split
  min-viewport: 360               # px
  max-viewport: 1280              # px
  root-font: 16                   # px per rem
  fix: false
  verify: true
  strict-viewport: false

# Check settings
check:
  strict: false
  output-format: issues           # issues | summary | full | json

# Inline tables, generated after the table files
tables:
  typography:
    - {slug: text-s, min: 14, max: 16}
    - {slug: text-m, min: 16, max: 18}
    - {slug: text-l, min: 20, max: 24}
  spacing:
    - {slug: spacing-s, min: 8, max: 12}
    - {slug: spacing-m, min: 16, max: 24}
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
