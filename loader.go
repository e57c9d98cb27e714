package schema

import (
	"encoding/json"

	"github.com/goccy/go-yaml"
)

// LoadSchema parses a schema document authored as either JSON or YAML.
// JSON is valid YAML, but documents actually written by hand often use
// YAML's bare syntax; decoding through goccy/go-yaml first and
// re-encoding to JSON keeps a single ParseSchema code path for both.
func LoadSchema(data []byte) (*Schema, error) {
	var generic any
	if err := yaml.Unmarshal(data, &generic); err != nil {
		return nil, err
	}
	jsonData, err := json.Marshal(generic)
	if err != nil {
		return nil, err
	}
	return ParseSchema(jsonData)
}
