package jsonschema

import "strings"

// Package jsonschema holds the parsed form of a schema document: a map of
// named definitions, each an object/array/primitive shape with optional
// oneOf/anyOf variant references. It is the input side of the generator; the
// walker in the root package consumes it.
//
// Object property order is significant (it drives the field order of
// generated structs), so Properties is an ordered slice rather than a map;
// see decode.go for the order-preserving JSON and YAML decoding.

// Document is a schema document: the named definitions a registry selects
// from.
type Document struct {
	Definitions map[string]*Schema `json:"definitions" yaml:"definitions"`
}

// Schema is one schema node. The same shape serves top-level definitions,
// object properties, and array item schemas.
type Schema struct {
	Type        string     `json:"type,omitempty" yaml:"type,omitempty"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`
	Properties  Properties `json:"properties,omitempty" yaml:"properties,omitempty"`
	OneOf       []Ref      `json:"oneOf,omitempty" yaml:"oneOf,omitempty"`
	AnyOf       []Ref      `json:"anyOf,omitempty" yaml:"anyOf,omitempty"`
	Items       *Schema    `json:"items,omitempty" yaml:"items,omitempty"`
}

// VariantRefs returns the schema's permitted-variant references: oneOf when
// present, anyOf otherwise, nil when the schema declares neither.
func (s *Schema) VariantRefs() []Ref {
	if len(s.OneOf) > 0 {
		return s.OneOf
	}
	if len(s.AnyOf) > 0 {
		return s.AnyOf
	}
	return nil
}

// Property is a named object property. Order within Properties is the
// insertion order of the source document.
type Property struct {
	Name   string
	Schema *Schema
}

// Properties is the ordered property list of an object schema.
type Properties []Property

// Lookup returns the property schema for name, or nil when absent.
func (ps Properties) Lookup(name string) *Schema {
	for _, p := range ps {
		if p.Name == name {
			return p.Schema
		}
	}
	return nil
}

// Ref is a structured reference inside oneOf/anyOf. Only local definition
// references of the form "#/definitions/<name>" occur in practice; Target
// extracts the trailing name.
type Ref struct {
	Ref string `json:"$ref,omitempty" yaml:"$ref,omitempty"`
}

// Target returns the last path segment of the reference, or "" when the
// entry carries no $ref at all.
func (r Ref) Target() string {
	if r.Ref == "" {
		return ""
	}
	if i := strings.LastIndex(r.Ref, "/"); i >= 0 {
		return r.Ref[i+1:]
	}
	return r.Ref
}
