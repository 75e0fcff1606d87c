package api

import (
	"github.com/xeipuuv/gojsonschema"
)

// List endpoints are schema-checked before decoding so a shape violation
// surfaces as a DataError instead of silently decoding to zero values.

const applicationListSchema = `{
	"type": "array",
	"items": {
		"type": "object",
		"required": ["id", "company", "job_title", "status", "created_at"],
		"properties": {
			"id": {"type": "integer"},
			"company": {"type": "string"},
			"job_title": {"type": "string"},
			"status": {"type": "string"},
			"match_score": {"type": ["integer", "null"], "minimum": 0, "maximum": 100},
			"applied_at": {"type": ["string", "null"]},
			"created_at": {"type": "string"}
		}
	}
}`

const resumeListSchema = `{
	"type": "array",
	"items": {
		"type": "object",
		"required": ["id", "last_score", "created_at"],
		"properties": {
			"id": {"type": "integer"},
			"title": {"type": "string"},
			"last_score": {"type": "integer", "minimum": 0, "maximum": 100},
			"created_at": {"type": "string"}
		}
	}
}`

// validatePayload checks a response body against a schema and reports
// field-level problems as a DataError.
func validatePayload(endpoint, schema string, body []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewBytesLoader(body),
	)
	if err != nil {
		return &DataError{Endpoint: endpoint, Cause: err}
	}
	if result.Valid() {
		return nil
	}

	problems := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		problems = append(problems, field+": "+desc.Description())
	}
	return &DataError{Endpoint: endpoint, Problems: problems}
}
