package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yacobolo/clampgen"
	"github.com/yacobolo/clampgen/internal/clamp"
)

// errIssuesFound makes the process exit 1 after check printed its report
var errIssuesFound = errors.New("check found issues")

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate token tables without writing output",
	Long: `Check table files for invalid slugs, non-numeric sizes, inverted ranges,
duplicate slugs and primitive clashes, plus degenerate viewport settings.
Errors fail the run; warnings fail it only with --strict.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runCheck(cmd)
	},
}

func init() {
	f := checkCmd.Flags()
	f.StringSlice("source", defaultSources, "Glob patterns for table files")
	f.Float64("min-viewport", clamp.DefaultMinViewport, "Viewport width (px) where tokens reach their min")
	f.Float64("max-viewport", clamp.DefaultMaxViewport, "Viewport width (px) where tokens reach their max")
	f.Float64("root-font", clamp.DefaultRootFontPx, "Root font size (px per rem)")
	f.Bool("strict", false, "Exit 1 on any issue (CI mode)")
	f.String("output-format", "", "Output format: issues|summary|full|json")
}

// runCheck is shared between `clampgen check` and `clampgen generate --lint`.
func runCheck(cmd *cobra.Command) error {
	checkConfig, err := buildCheckConfig()
	if err != nil {
		return err
	}

	result, err := clampgen.Check(checkConfig)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	outputFormat := getStringWithFallback("output-format", "check.output-format", "")
	format := clampgen.DetermineOutputFormat(outputFormat, quiet)

	if !quiet {
		useColors := clamp.ShouldUseColors(getBoolWithFallback("color", "color", false))
		clampgen.WriteOutput(cmd.OutOrStdout(), result, format, useColors)
	}

	// Exit code: errors always fail, warnings only in strict mode
	if result.Failed(checkConfig.Strict) {
		return errIssuesFound
	}

	return nil
}
