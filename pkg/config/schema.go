package config

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
	"gopkg.in/yaml.v3"
)

// Schema returns the JSON schema of the config file.
func Schema() ([]byte, error) {
	r := &jsonschema.Reflector{
		DoNotReference: true,
	}
	schema := r.Reflect(&Config{})
	schema.Title = "fileman configuration"
	return json.MarshalIndent(schema, "", "  ")
}

// Marshal renders the effective config as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
