package restapi

import (
	"encoding/json"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

const listSchemaURL = "https://todoview.local/schemas/task-list.json"

// listSchema describes the body of GET /api/v1/tasks/todo.
const listSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["_id", "title", "status"],
    "properties": {
      "_id": {"type": "string", "minLength": 1},
      "title": {"type": "string"},
      "status": {"type": "string", "enum": ["0", "1"]}
    }
  }
}`

type listValidator struct {
	schema *jsonschema.Schema
}

func newListValidator() (*listValidator, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(listSchemaURL, strings.NewReader(listSchema)); err != nil {
		return nil, fmt.Errorf("load list schema: %w", err)
	}
	schema, err := compiler.Compile(listSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile list schema: %w", err)
	}
	return &listValidator{schema: schema}, nil
}

// validate checks a raw list response against the schema.
func (v *listValidator) validate(data []byte) error {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if err := v.schema.Validate(doc); err != nil {
		return fmt.Errorf("invalid response: %s", schemaMessage(err))
	}
	return nil
}

// schemaMessage flattens a validation error to its first leaf cause.
func schemaMessage(err error) string {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return err.Error()
	}
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	if ve.InstanceLocation == "" {
		return ve.Message
	}
	return fmt.Sprintf("%s: %s", ve.InstanceLocation, ve.Message)
}
