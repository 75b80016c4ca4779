package tailorcss

import (
	"encoding/json"
	"io"
)

// JSONOutput is the structured JSON export of a generation run
type JSONOutput struct {
	Minified  string             `json:"minified"`
	Formatted string             `json:"formatted"`
	Object    map[string]RuleSet `json:"object"`
	Stats     JSONStats          `json:"stats"`
}

// JSONStats summarizes the run
type JSONStats struct {
	Rules     int `json:"rules"`     // Rules emitted, repeats included
	Selectors int `json:"selectors"` // Distinct selectors
}

// WriteJSON writes the result as indented JSON
func WriteJSON(w io.Writer, result *Result) error {
	if result == nil {
		result = &Result{}
	}

	object := result.Object
	if object == nil {
		object = map[string]RuleSet{}
	}

	output := JSONOutput{
		Minified:  result.Minified,
		Formatted: result.Formatted,
		Object:    object,
		Stats: JSONStats{
			Rules:     len(result.Rules),
			Selectors: len(object),
		},
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
