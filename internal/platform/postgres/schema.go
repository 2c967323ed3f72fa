package postgres

import (
	"embed"
	"fmt"

	"github.com/phrazzld/jobboard-api/internal/store"
	"github.com/xeipuuv/gojsonschema"
)

// Collection names, shared by table names and schema files.
const (
	usersCollection        = "users"
	personsCollection      = "persons"
	listingsCollection     = "listings"
	applicationsCollection = "applications"
)

//go:embed schemas/*.json
var schemaFiles embed.FS

var schemas = mustLoadSchemas(usersCollection, personsCollection, listingsCollection, applicationsCollection)

func mustLoadSchemas(collections ...string) map[string]*gojsonschema.Schema {
	loaded := make(map[string]*gojsonschema.Schema, len(collections))
	for _, c := range collections {
		raw, err := schemaFiles.ReadFile("schemas/" + c + ".json")
		if err != nil {
			// ALLOW-PANIC: embedded schema files are part of the binary
			panic(fmt.Sprintf("read %s schema: %v", c, err))
		}
		s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
		if err != nil {
			// ALLOW-PANIC: embedded schema files are part of the binary
			panic(fmt.Sprintf("compile %s schema: %v", c, err))
		}
		loaded[c] = s
	}
	return loaded
}

// validateDocument checks the JSON form of doc against the schema of
// collection. A failing document yields a *store.SchemaError listing one
// "field: description" message per violation.
func validateDocument(collection string, doc any) error {
	schema, ok := schemas[collection]
	if !ok {
		return fmt.Errorf("no schema registered for %s", collection)
	}

	result, err := schema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("validate %s document: %w", collection, err)
	}
	if result.Valid() {
		return nil
	}

	messages := make([]string, 0, len(result.Errors()))
	for _, re := range result.Errors() {
		messages = append(messages, re.Field()+": "+re.Description())
	}
	return &store.SchemaError{Collection: collection, Messages: messages}
}
