package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/invopop/jsonschema"
)

//go:embed schema.json
var embeddedSchema string

// schemaNode is the subset of a json schema document needed to walk config properties
type schemaNode struct {
	Ref        string                 `json:"$ref"`
	Defs       map[string]*schemaNode `json:"$defs"`
	Properties map[string]*schemaNode `json:"properties"`
	Type       string                 `json:"type"`
}

// VerifyAgainstEmbeddedSchema validates the config against the embedded JSON schema.
// It checks that every section and key of the config is declared by the schema.
func VerifyAgainstEmbeddedSchema(cfg *Config) error {
	var schema schemaNode
	if err := json.Unmarshal([]byte(embeddedSchema), &schema); err != nil {
		return fmt.Errorf("parse embedded schema: %w", err)
	}

	// convert config to JSON for validation
	configData, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	var configMap map[string]interface{}
	if err := json.Unmarshal(configData, &configMap); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	if err := checkProperties(&schema, schema.resolve(&schema), configMap, ""); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	// basic validation - check required fields
	if err := validateRequiredFields(cfg); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	return nil
}

// resolve follows a local $ref like "#/$defs/Config"
func (n *schemaNode) resolve(root *schemaNode) *schemaNode {
	if n == nil || n.Ref == "" {
		return n
	}
	name := strings.TrimPrefix(n.Ref, "#/$defs/")
	if def, ok := root.Defs[name]; ok {
		return def
	}
	return n
}

// checkProperties reports config keys not declared in the schema object
func checkProperties(root, node *schemaNode, values map[string]interface{}, prefix string) error {
	if node == nil || node.Properties == nil {
		return nil
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		prop, ok := node.Properties[key]
		if !ok {
			return fmt.Errorf("unknown config key %s%s", prefix, key)
		}
		if nested, ok := values[key].(map[string]interface{}); ok {
			if err := checkProperties(root, prop.resolve(root), nested, prefix+key+"."); err != nil {
				return err
			}
		}
	}
	return nil
}

// validateRequiredFields performs basic validation of required fields
func validateRequiredFields(cfg *Config) error {
	if cfg.Server.Listen == "" {
		return fmt.Errorf("server.listen is required")
	}
	if cfg.Server.Timeout == 0 {
		return fmt.Errorf("server.timeout is required")
	}
	if cfg.Feed.Timeout == 0 {
		return fmt.Errorf("feed.timeout is required")
	}
	if len(cfg.Categories) == 0 {
		return fmt.Errorf("categories are required")
	}
	if cfg.Quiz.Questions == 0 {
		return fmt.Errorf("quiz.questions is required")
	}
	return nil
}

// GenerateSchema generates a JSON schema for the Config struct
func GenerateSchema() (*jsonschema.Schema, error) {
	return jsonschema.Reflect(&Config{}), nil
}
