package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/yacobolo/clampgen"
	"github.com/yacobolo/clampgen/internal/clamp"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Generate fluid CSS tokens from table files",
	Long: `Load token tables and write the generated stylesheet.
The combined layout writes primitives and tokens to one file; the split
layout writes tokens to a second file that depends on the first.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.StringSlice("source", defaultSources, "Glob patterns for table files")
	f.String("output-dir", "web/styles", "Output directory for generated stylesheets")
	f.String("theme-file", clampgen.DefaultThemeFile, "Stylesheet holding primitives (and tokens when combined)")
	f.String("tokens-file", clampgen.DefaultTokensFile, "Stylesheet holding tokens in the split layout")
	f.String("layout", string(clamp.LayoutCombined), "Output layout: combined|split")
	f.Float64("min-viewport", clamp.DefaultMinViewport, "Viewport width (px) where tokens reach their min")
	f.Float64("max-viewport", clamp.DefaultMaxViewport, "Viewport width (px) where tokens reach their max")
	f.Float64("root-font", clamp.DefaultRootFontPx, "Root font size (px per rem)")
	f.Bool("fix", false, "Lower min to max on rows where min > max")
	f.Bool("verify", true, "Parse the output back and check every var() resolves")
	f.Bool("strict-viewport", false, "Fail when the viewport range or root font size is degenerate")
	f.Bool("dry-run", false, "Print the stylesheets instead of writing them")
	f.Bool("lint", false, "Run check after generation")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	config, err := buildGenerateConfig()
	if err != nil {
		return err
	}

	result, err := clampgen.Generate(config)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	useColors := clamp.ShouldUseColors(getBoolWithFallback("color", "color", false))
	out := cmd.OutOrStdout()

	if !quiet {
		if config.DryRun {
			printDryRun(out, config, result, useColors)
		} else {
			printGenerateSummary(out, result, useColors)
		}
	}

	// Run check after generate if --lint flag set
	if getBoolWithFallback("lint", "generate.lint", false) {
		return runCheck(cmd)
	}

	return nil
}

// printGenerateSummary reports written files, fixes and warnings
func printGenerateSummary(w io.Writer, result *clampgen.GenerateResult, useColors bool) {
	fmt.Fprintf(w, "%s Generated %d tokens (%d fluid, %d static) and %d primitives\n",
		clamp.RenderStyle(clamp.StyleGreen, "✓", useColors),
		result.Stats.Tokens, result.Stats.FluidTokens, result.Stats.StaticTokens, result.Stats.Primitives)
	fmt.Fprintf(w, "  Files scanned: %d\n", result.FilesScanned)
	fmt.Fprintf(w, "  Rows loaded: %d\n", result.RowsLoaded)

	for _, path := range result.WrittenFiles {
		fmt.Fprintf(w, "  Wrote %s\n", clampgen.GetRelativePath(path))
	}

	for _, fix := range result.Fixed {
		fmt.Fprintf(w, "  %s %s: %s\n", clamp.RenderStyle(clamp.StyleYellow, "Fixed", useColors), fix.Pos, fix.Text)
	}

	for _, warning := range result.Warnings {
		fmt.Fprintf(w, "  %s %s\n", clamp.RenderStyle(clamp.StyleYellow, "Warning:", useColors), warning)
	}
}

// printDryRun prints each stylesheet under a header naming the file it would go to
func printDryRun(w io.Writer, config clampgen.Config, result *clampgen.GenerateResult, useColors bool) {
	sheets := []struct {
		name    string
		content string
	}{
		{config.ThemeFile, result.ThemeCSS},
		{config.TokensFile, result.TokensCSS},
	}

	for _, s := range sheets {
		if s.content == "" {
			continue
		}
		fmt.Fprintln(w, clamp.RenderStyle(clamp.StyleGray, "/* "+s.name+" (dry run) */", useColors))
		fmt.Fprint(w, s.content)
	}

	for _, warning := range result.Warnings {
		fmt.Fprintf(w, "%s %s\n", clamp.RenderStyle(clamp.StyleYellow, "Warning:", useColors), warning)
	}
}
