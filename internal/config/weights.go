package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mreyes/campus-match/internal/matching"
	"github.com/mreyes/campus-match/internal/schemas"
)

// LoadWeights returns the weight vector used by the aggregator. With an empty
// path it returns the built-in defaults; otherwise the file is validated
// against the weights JSON schema, decoded, and checked for sum-to-one.
func LoadWeights(path string) (matching.Weights, error) {
	if path == "" {
		return matching.DefaultWeights(), nil
	}

	schemaPath := schemas.ResolveSchemaPath(schemas.WeightsSchemaPath)
	if schemaPath == "" {
		return matching.Weights{}, fmt.Errorf("weights schema not found: %s", schemas.WeightsSchemaPath)
	}
	if err := schemas.ValidateJSON(schemaPath, path); err != nil {
		return matching.Weights{}, fmt.Errorf("invalid weights file %s: %w", path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return matching.Weights{}, fmt.Errorf("failed to read weights file: %w", err)
	}

	var w matching.Weights
	if err := json.Unmarshal(data, &w); err != nil {
		return matching.Weights{}, fmt.Errorf("failed to parse weights file: %w", err)
	}
	if err := w.Validate(); err != nil {
		return matching.Weights{}, fmt.Errorf("invalid weights file %s: %w", path, err)
	}
	return w, nil
}
