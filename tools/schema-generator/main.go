package main

import (
	"encoding/json"
	"log"
	"os"

	"github.com/invopop/jsonschema"

	"github.com/grovetools/codeclean/config"
)

const schemaFile = "codeclean.schema.json"

func generate() ([]byte, error) {
	r := &jsonschema.Reflector{
		AllowAdditionalProperties: true,
		ExpandedStruct:            true,
		FieldNameTag:              "yaml",
	}

	schema := r.Reflect(&config.Config{})
	schema.Title = "codeclean Configuration"
	schema.Description = "Schema for the 'codeclean' extension in grove.yml."

	return json.MarshalIndent(schema, "", "  ")
}

func main() {
	data, err := generate()
	if err != nil {
		log.Fatalf("Error marshaling schema: %v", err)
	}

	if err := os.WriteFile(schemaFile, data, 0644); err != nil {
		log.Fatalf("Error writing schema file: %v", err)
	}

	log.Printf("Successfully generated codeclean schema at %s", schemaFile)
}
