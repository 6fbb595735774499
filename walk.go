package typegen

import (
	"fmt"

	ir "github.com/gofed/typegen/internal/ir"
	js "github.com/gofed/typegen/jsonschema"
)

// omitMarker is the sentinel description flagging a field as write-only: it
// exists in memory but is never emitted on the wire.
const omitMarker = "!!omit"

// compile walks the schema document and produces one node model per registry
// member whose definition is object-typed, plus synthesized item models for
// anonymous array element schemas. Any schema error aborts the whole run; no
// partial model set is returned.
func compile(doc *js.Document, reg Registry) (*ir.ModelSet, error) {
	w := &walker{doc: doc, models: ir.NewModelSet()}
	for _, name := range reg.Names() {
		def, ok := doc.Definitions[name]
		if !ok || def == nil {
			continue
		}
		if def.Type != "object" {
			continue
		}
		if _, err := w.walkDefinition(ModelName(name), def, false, "/definitions/"+name); err != nil {
			return nil, err
		}
	}
	if err := w.finish(); err != nil {
		return nil, err
	}
	return w.models, nil
}

type walker struct {
	doc    *js.Document
	models *ir.ModelSet
}

// walkDefinition builds the model for one object-typed definition and
// registers it. Synthesized item models recurse through here as well, so the
// derived-name uniqueness gate applies to both.
func (w *walker) walkDefinition(name string, def *js.Schema, synthesized bool, path string) (*ir.Model, error) {
	if name == ir.NilName {
		return nil, Issues{{
			Path:    path,
			Code:    CodeNameCollision,
			Message: fmt.Sprintf("model name %s is reserved for the empty node", ir.NilName),
		}}
	}
	b := ir.NewBuilder(name, WireTag(name))
	if synthesized {
		b.MarkSynthesized()
	}
	for _, p := range def.Properties {
		if err := w.walkProperty(b, name, p, path+"/properties/"+p.Name); err != nil {
			return nil, err
		}
	}
	m := b.Build()
	if !w.models.Insert(m) {
		return nil, Issues{{
			Path:    path,
			Code:    CodeNameCollision,
			Message: fmt.Sprintf("model name %s is already taken", name),
			Hint:    "rename the definition or the array property the item name derives from",
		}}
	}
	return m, nil
}

// walkProperty classifies one property of an object-typed definition as
// atomic, polymorphic, or array, per the wire protocol's field taxonomy.
func (w *walker) walkProperty(b *ir.Builder, parent string, p js.Property, path string) error {
	s := p.Schema
	if s == nil {
		return Issues{{Path: path, Code: CodeInvalidSchema, Message: "property has no schema"}}
	}
	if p.Name == "type" {
		// reserved for the discriminator, never a user field
		return nil
	}
	switch s.Type {
	case "string", "boolean":
		kind := ir.KindString
		if s.Type == "boolean" {
			kind = ir.KindBool
		}
		return w.addField(b, path, b.AddAtomic(ir.AtomicField{
			Name: ModelName(p.Name),
			Wire: WireName(p.Name),
			Kind: kind,
			Omit: s.Description == omitMarker,
		}))

	case "object":
		refs := s.VariantRefs()
		if refs == nil {
			return Issues{{
				Path:    path,
				Code:    CodeMissingVariants,
				Message: "polymorphic property declares neither oneOf nor anyOf",
				Hint:    "list the permitted variants as $ref entries",
			}}
		}
		variants, err := w.resolveRefs(refs, path)
		if err != nil {
			return err
		}
		return w.addField(b, path, b.AddPolymorphic(ir.PolymorphicField{
			Name:     ModelName(p.Name),
			Wire:     WireName(p.Name),
			Variants: variants,
		}))

	case "array":
		items := s.Items
		if items == nil {
			return Issues{{Path: path, Code: CodeInvalidSchema, Message: "array property has no items schema"}}
		}
		if items.Type == "object" && len(items.Properties) == 0 {
			// heterogeneous elements: existing union members by reference
			refs := items.VariantRefs()
			if refs == nil {
				return Issues{{
					Path:    path + "/items",
					Code:    CodeMissingVariants,
					Message: "array of union members declares neither oneOf nor anyOf",
					Hint:    "list the permitted variants as $ref entries",
				}}
			}
			variants, err := w.resolveRefs(refs, path+"/items")
			if err != nil {
				return err
			}
			return w.addField(b, path, b.AddArray(ir.ArrayField{
				Name:     ModelName(p.Name),
				Wire:     WireName(p.Name),
				Variants: variants,
			}))
		}
		if items.Type != "object" {
			return Issues{{
				Path:    path + "/items",
				Code:    CodeUnsupportedKind,
				Message: fmt.Sprintf("array item type %q cannot be synthesized", items.Type),
			}}
		}
		// anonymous concrete shape: synthesize a dedicated item model and
		// copy elements by value, since the item has exactly one legal shape
		itemName := ItemName(parent, p.Name)
		if _, err := w.walkDefinition(itemName, items, true, path+"/items"); err != nil {
			return err
		}
		return w.addField(b, path, b.AddArray(ir.ArrayField{
			Name:     ModelName(p.Name),
			Wire:     WireName(p.Name),
			Elem:     itemName,
			Variants: []string{itemName},
			ByValue:  true,
		}))

	default:
		return Issues{{
			Path:    path,
			Code:    CodeUnsupportedKind,
			Message: fmt.Sprintf("unrecognized property type %q", s.Type),
		}}
	}
}

// addField maps a builder rejection (duplicate field name) onto the schema
// error taxonomy.
func (w *walker) addField(b *ir.Builder, path string, err error) error {
	if err == nil {
		return nil
	}
	return Issues{{Path: path, Code: CodeInvalidSchema, Message: err.Error()}}
}

// resolveRefs turns oneOf/anyOf entries into normalized variant model names.
// An entry without a $ref is a fatal schema error: a field claiming
// polymorphism must declare all of its possibilities.
func (w *walker) resolveRefs(refs []js.Ref, path string) ([]string, error) {
	out := make([]string, 0, len(refs))
	for i, r := range refs {
		t := r.Target()
		if t == "" {
			return nil, Issues{{
				Path:    fmt.Sprintf("%s/%d", path, i),
				Code:    CodeBadReference,
				Message: "variant entry carries no $ref",
			}}
		}
		out = append(out, ModelName(t))
	}
	return out, nil
}

// finish validates cross-model invariants once the walk is complete: every
// permitted variant resolves to a model, and wire tags are unique across the
// run (the Nil tag is reserved up front by walkDefinition's name gate plus
// the seeded tag table here).
func (w *walker) finish() error {
	var iss Issues
	for _, m := range w.models.Models() {
		for _, v := range m.Variants() {
			if _, ok := w.models.Lookup(v); !ok {
				iss = AppendIssues(iss, Issue{
					Path:    "/definitions",
					Code:    CodeDanglingVariant,
					Message: fmt.Sprintf("%s permits variant %s which has no node model", m.Name, v),
				})
			}
		}
	}
	tags := map[string]string{ir.NilTag: ir.NilName}
	for _, m := range w.models.Models() {
		if prev, dup := tags[m.Tag]; dup {
			iss = AppendIssues(iss, Issue{
				Path:    "/definitions",
				Code:    CodeTagCollision,
				Message: fmt.Sprintf("models %s and %s share wire tag %q", prev, m.Name, m.Tag),
			})
			continue
		}
		tags[m.Tag] = m.Name
	}
	if len(iss) > 0 {
		return iss
	}
	return nil
}
