// Command cwmp-entgen generates CWMP entity types from a YAML schema.
//
//	cwmp-entgen -schema schema/igd.yaml -output pkg/igd
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/tools/imports"

	"github.com/cwmp-model/cwmp-go/internal/logging"
)

func main() {
	schemaPath := flag.String("schema", "", "Path to the data-model schema YAML")
	outputDir := flag.String("output", "", "Output directory for generated Go files")
	pkg := flag.String("package", "", "Go package name (defaults to the schema's package)")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	if *schemaPath == "" || *outputDir == "" {
		fmt.Fprintln(os.Stderr, "Usage: cwmp-entgen -schema <path> -output <dir> [-package <name>]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	log := logging.New(logging.Config{Level: *logLevel, Output: os.Stderr})

	if err := run(*schemaPath, *outputDir, *pkg); err != nil {
		log.Error().Err(err).Str("schema", *schemaPath).Msg("generation failed")
		os.Exit(1)
	}
}

func run(schemaPath, outputDir, pkg string) error {
	schema, err := LoadSchema(schemaPath)
	if err != nil {
		return fmt.Errorf("loading schema: %w", err)
	}

	files, err := Generate(schema, pkg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	for _, f := range files {
		outPath := filepath.Join(outputDir, f.Name)
		if err := writeFormatted(outPath, f.Code); err != nil {
			return fmt.Errorf("writing %s: %w", f.Name, err)
		}
		fmt.Printf("  generated %s\n", outPath)
	}
	return nil
}

// writeFormatted formats Go source code with goimports and writes it to a file.
func writeFormatted(path string, code string) error {
	formatted, err := imports.Process(path, []byte(code), nil)
	if err != nil {
		// Write unformatted so you can debug the generator output
		_ = os.WriteFile(path+".broken", []byte(code), 0o644)
		return fmt.Errorf("goimports %s: %w", filepath.Base(path), err)
	}
	return os.WriteFile(path, formatted, 0o644)
}
