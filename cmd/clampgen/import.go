package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yacobolo/clampgen"
	"github.com/yacobolo/clampgen/internal/clamp"
)

var importCmd = &cobra.Command{
	Use:   "import FILE...",
	Short: "Rebuild token tables from generated stylesheets",
	Long: `Parse stylesheets written by generate and print the token tables that
produce them. Pass both files of a split layout together.`,
	Args: cobra.MinimumNArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runImport,
}

func init() {
	f := importCmd.Flags()
	f.Float64("root-font", clamp.DefaultRootFontPx, "Root font size the stylesheets were generated with")
	f.StringP("output", "o", "", "Write tables to this file instead of stdout")
}

func runImport(cmd *cobra.Command, args []string) error {
	result, err := clampgen.Import(clampgen.ImportConfig{
		Files:      args,
		RootFontPx: getFloat64WithFallback("root-font", "generate.root-font", clamp.DefaultRootFontPx),
		Verbose:    getBoolWithFallback("verbose", "verbose", false),
	})
	if err != nil {
		return err
	}

	data, err := clampgen.MarshalTables(result.Tables)
	if err != nil {
		return err
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}

	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("writing tables: %w", err)
	}

	if !getBoolWithFallback("quiet", "quiet", false) {
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d rows from %d files into %s\n", result.Rows(), result.FilesRead, output)
	}
	return nil
}
