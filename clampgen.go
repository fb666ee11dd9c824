// Package clampgen generates fluid CSS custom properties from token tables.
//
// Each token row (a slug plus minimum and maximum pixel sizes) becomes a pair of
// rem primitives and a token that either aliases one primitive or scales
// between both with clamp():
//
//	--text-16: 1rem;
//	--text-18: 1.125rem;
//	--text-m: clamp(var(--text-16), 0.951rem + 0.2174vw, var(--text-18));
//
// # Generation
//
// Generate a stylesheet from YAML table files:
//
//	config := clampgen.Config{
//		Sources:     []string{"tokens/**/*.clamp.yaml"},
//		OutputDir:   "web/styles",
//		MinViewport: 360,
//		MaxViewport: 1280,
//		RootFontPx:  16,
//	}
//	result, err := clampgen.Generate(config)
//
// # Checking
//
// Validate table files without writing anything:
//
//	result, err := clampgen.Check(clampgen.CheckConfig{Sources: config.Sources})
//
// # CLI Tool
//
// clampgen also provides a CLI tool. Install with:
//
//	go install github.com/yacobolo/clampgen/cmd/clampgen@latest
package clampgen

// Public API:
// - Generate(config Config) (*GenerateResult, error)
// - Check(config CheckConfig) (*CheckResult, error)
// - Import(config ImportConfig) (*ImportResult, error)
// - DetermineOutputFormat(requested string, quiet bool) OutputFormat
// - WriteOutput(w io.Writer, result *CheckResult, format OutputFormat, useColors bool)
