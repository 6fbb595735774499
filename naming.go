package typegen

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Naming projections. Wire names, model names, and wire tags are each derived
// by exactly one function so that the emitted struct tags and the decode
// dispatch tables can never drift apart.

// ModelName projects a schema-level name onto the exported Go type or field
// name used in generated source: the first rune is upper-cased, the rest is
// kept as-is.
func ModelName(name string) string {
	if name == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError && size <= 1 {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}

// WireName projects a field name onto the JSON key it travels under: the
// whole name lower-cased.
func WireName(field string) string {
	return strings.ToLower(field)
}

// WireTag derives the discriminator value for a model name. Tags must be
// unique across a run; the walker enforces that after the walk completes.
func WireTag(modelName string) string {
	return strings.ToLower(modelName)
}

// ItemName derives the deterministic name of a synthesized array item model
// from its parent model and the array property.
func ItemName(parent, property string) string {
	return ModelName(parent) + ModelName(property) + "Item"
}
