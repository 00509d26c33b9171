package render

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"

	"github.com/randalmurphal/numeronym/numeronym"
)

// SchemaID identifies the JSON record schema.
const SchemaID = "https://github.com/randalmurphal/numeronym/result.schema.json"

// Schema returns the indented JSON Schema of a FormatJSON record.
func Schema() ([]byte, error) {
	r := &jsonschema.Reflector{
		ExpandedStruct: true,
		DoNotReference: true,
	}
	s := r.Reflect(&numeronym.Result{})
	s.ID = jsonschema.ID(SchemaID)
	s.Title = "Numeronym result"

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	return data, nil
}
