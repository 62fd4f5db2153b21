// schema writes JSON schema of the newspulse configuration, used by go:generate in pkg/config
package main

import (
	"encoding/json"
	"os"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/newspulse/pkg/config"
)

func main() {
	outputPath := "schema.json"
	if len(os.Args) > 1 {
		outputPath = os.Args[1]
	}

	schema, err := config.GenerateSchema()
	if err != nil {
		lgr.Fatalf("failed to generate schema: %v", err)
	}

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		lgr.Fatalf("failed to marshal schema: %v", err)
	}

	if err := os.WriteFile(outputPath, append(data, '\n'), 0o600); err != nil {
		lgr.Fatalf("failed to write %s: %v", outputPath, err)
	}
	lgr.Printf("[INFO] config schema written to %s", outputPath)
}
