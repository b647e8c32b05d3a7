package aigen

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// schemaCache caches compiled JSON schemas by name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

var optionSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":        map[string]any{"type": "string"},
		"text":      map[string]any{"type": "string", "minLength": 1},
		"isCorrect": map[string]any{"type": "boolean"},
	},
	"required": []any{"id", "text"},
}

// multipleChoiceSchema validates generated questions answered by
// picking from options.
var multipleChoiceSchema = namedSchema{
	name: "multiple-choice",
	definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{"type": "string", "minLength": 1},
			"options": map[string]any{
				"type":     "array",
				"items":    optionSchema,
				"minItems": 2,
			},
			"correctAnswer":  map[string]any{"type": "string"},
			"explanation":    map[string]any{"type": "string"},
			"hint":           map[string]any{"type": "string"},
			"readingPassage": map[string]any{"type": "string"},
			"tags": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{"question", "options"},
	},
}

// freeResponseSchema validates generated questions answered by typing,
// including ungraded creative prompts where correctAnswer stays empty.
var freeResponseSchema = namedSchema{
	name: "free-response",
	definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question":      map[string]any{"type": "string", "minLength": 1},
			"correctAnswer": map[string]any{"type": "string"},
			"explanation":   map[string]any{"type": "string"},
			"hint":          map[string]any{"type": "string"},
			"tags": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{"question"},
	},
}

type namedSchema struct {
	name       string
	definition map[string]any
}

// compiled returns the cached compiled schema, compiling on first use.
func (s namedSchema) compiled() (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(s.name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The compiler wants a parsed JSON value. Round-trip the
	// definition to normalize Go types into plain any values.
	defBytes, err := json.Marshal(s.definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s.json", s.name)
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(s.name, compiled)
	return compiled, nil
}

// validateSchema checks parsed JSON output against the schema for its
// answer shape.
func (s namedSchema) validate(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	compiled, err := s.compiled()
	if err != nil {
		return fmt.Errorf("compile schema %q: %w", s.name, err)
	}
	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
