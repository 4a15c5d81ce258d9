package model

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// visibilitySchema is the JSON Schema a persisted visibility snapshot must
// satisfy before it is trusted. Anything that fails here is handled as
// "no saved preferences" by the caller, not as a hard error.
const visibilitySchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["resumeId", "personalDetails"],
  "properties": {
    "resumeId": { "type": "string", "minLength": 1 },
    "personalDetails": {
      "type": "object",
      "required": ["enabled", "expanded", "fields"],
      "properties": {
        "enabled":  { "type": "boolean" },
        "expanded": { "type": "boolean" },
        "fields": {
          "type": "object",
          "required": ["image", "email", "phone", "summary", "url", "location", "profiles"],
          "properties": {
            "image":   { "type": "boolean" },
            "email":   { "type": "boolean" },
            "phone":   { "type": "boolean" },
            "summary": { "type": "boolean" },
            "url":     { "type": "boolean" },
            "location": {
              "type": "object",
              "required": ["address", "city", "postalCode", "countryCode", "region"],
              "additionalProperties": { "type": "boolean" }
            },
            "profiles": {
              "type": "object",
              "additionalProperties": { "type": "boolean" }
            }
          }
        }
      }
    }
  },
  "additionalProperties": {
    "type": "object",
    "required": ["enabled", "expanded", "items"],
    "properties": {
      "enabled":  { "type": "boolean" },
      "expanded": { "type": "boolean" },
      "items":    { "type": "array", "items": { "type": "boolean" } }
    }
  }
}`

// ValidateVisibilityPayload validates a raw serialized visibility snapshot
// against the embedded schema.
func ValidateVisibilityPayload(payload []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(visibilitySchema)
	docLoader := gojsonschema.NewBytesLoader(payload)

	res, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}
	// collect errors
	msgs := ""
	for _, e := range res.Errors() {
		msgs += fmt.Sprintf("%s; ", e.String())
	}
	return fmt.Errorf("visibility snapshot invalid: %s", msgs)
}
