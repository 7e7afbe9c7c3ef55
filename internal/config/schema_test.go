package config_test

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

func TestWorldSchema_ValidateSamples(t *testing.T) {
	schemaPath := filepath.Join("..", "..", "schemas", "world.schema.json")
	s, err := jsonschema.Compile(schemaPath)
	if err != nil {
		t.Fatalf("compile %s: %v", schemaPath, err)
	}

	unmarshal := func(doc string) any {
		t.Helper()
		var v any
		if err := json.Unmarshal([]byte(doc), &v); err != nil {
			t.Fatalf("unmarshal sample: %v", err)
		}
		return v
	}

	valid := unmarshal(`{
	  "chunk_size": 512,
	  "seed": 1337,
	  "seed_gradient": true,
	  "water_level": 0.4,
	  "max_chunks_in_memory": 100,
	  "normalize": "chunk",
	  "octaves": [
	    {"scale": 30, "weight": 1.0},
	    {"scale": 100, "weight": 0.8}
	  ]
	}`)
	if err := s.Validate(valid); err != nil {
		t.Fatalf("valid sample rejected: %v", err)
	}

	invalid := map[string]string{
		"zero chunk_size":     `{"chunk_size": 0}`,
		"water_level above 1": `{"water_level": 1.5}`,
		"bad normalize":       `{"normalize": "percell"}`,
		"empty octaves":       `{"octaves": []}`,
		"zero octave scale":   `{"octaves": [{"scale": 0, "weight": 1}]}`,
		"unknown field":       `{"chunk_sise": 512}`,
	}
	for name, doc := range invalid {
		if err := s.Validate(unmarshal(doc)); err == nil {
			t.Fatalf("%s: expected schema violation", name)
		}
	}
}
