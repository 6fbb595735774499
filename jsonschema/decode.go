package jsonschema

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// DecodeJSON parses a JSON schema document.
func DecodeJSON(data []byte) (*Document, error) {
	doc := &Document{}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("jsonschema: decoding JSON document: %w", err)
	}
	return doc, nil
}

// DecodeYAML parses a YAML schema document.
func DecodeYAML(data []byte) (*Document, error) {
	doc := &Document{}
	if err := yaml.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("jsonschema: decoding YAML document: %w", err)
	}
	return doc, nil
}

// DecodeFile reads and parses a schema document, choosing the decoder by file
// extension (.yaml/.yml for YAML, anything else JSON).
func DecodeFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return DecodeYAML(data)
	default:
		return DecodeJSON(data)
	}
}

// UnmarshalJSON decodes an object into an ordered property list. The generic
// map decoder would lose key order, so this walks the token stream instead.
func (ps *Properties) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("jsonschema: properties must be an object, got %v", tok)
	}
	out := Properties{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("jsonschema: property key must be a string, got %v", keyTok)
		}
		s := &Schema{}
		if err := dec.Decode(s); err != nil {
			return fmt.Errorf("jsonschema: decoding property %q: %w", key, err)
		}
		out = append(out, Property{Name: key, Schema: s})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*ps = out
	return nil
}

// UnmarshalYAML decodes a mapping node into an ordered property list.
// yaml.Node keeps document order in Content, alternating keys and values.
func (ps *Properties) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("jsonschema: properties must be a mapping (line %d)", value.Line)
	}
	out := make(Properties, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		keyNode, valNode := value.Content[i], value.Content[i+1]
		s := &Schema{}
		if err := valNode.Decode(s); err != nil {
			return fmt.Errorf("jsonschema: decoding property %q: %w", keyNode.Value, err)
		}
		out = append(out, Property{Name: keyNode.Value, Schema: s})
	}
	*ps = out
	return nil
}
