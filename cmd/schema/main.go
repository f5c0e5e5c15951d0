// Command schema prints the JSON schema of the admin wallet export.
package main

import (
	"encoding/json"
	"log"
	"os"

	"github.com/KirkDiggler/bonedash/internal/models"
	"github.com/invopop/jsonschema"
)

func main() {
	schema := jsonschema.Reflect(&models.WalletExport{})

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(schema); err != nil {
		log.Fatalf("Failed to encode schema: %v", err)
	}
}
