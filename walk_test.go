package typegen

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	ir "github.com/gofed/typegen/internal/ir"
	js "github.com/gofed/typegen/jsonschema"
)

func obj(props ...js.Property) *js.Schema {
	return &js.Schema{Type: "object", Properties: props}
}

func prop(name string, s *js.Schema) js.Property {
	return js.Property{Name: name, Schema: s}
}

func str() *js.Schema { return &js.Schema{Type: "string"} }

func boolS() *js.Schema { return &js.Schema{Type: "boolean"} }

func union(targets ...string) *js.Schema {
	s := &js.Schema{Type: "object"}
	for _, t := range targets {
		s.AnyOf = append(s.AnyOf, js.Ref{Ref: "#/definitions/" + t})
	}
	return s
}

func mustCompile(t *testing.T, doc *js.Document, names ...string) *ir.ModelSet {
	t.Helper()
	reg := MustRegistry(names...)
	models, err := compile(doc, reg)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	return models
}

func compileErr(t *testing.T, doc *js.Document, names ...string) Issues {
	t.Helper()
	reg := MustRegistry(names...)
	models, err := compile(doc, reg)
	if err == nil {
		t.Fatalf("expected compile error, got %d models", models.Len())
	}
	iss, ok := AsIssues(err)
	if !ok {
		t.Fatalf("expected Issues, got %T: %v", err, err)
	}
	return iss
}

func TestCompile_ClassifiesFields(t *testing.T) {
	doc := &js.Document{Definitions: map[string]*js.Schema{
		"identifier": obj(
			prop("type", str()),
			prop("def", str()),
			prop("exported", boolS()),
		),
		"slice": obj(
			prop("type", str()),
			prop("elmtype", union("identifier", "slice")),
		),
	}}
	models := mustCompile(t, doc, "identifier", "slice")

	id, ok := models.Lookup("Identifier")
	if !ok {
		t.Fatalf("Identifier model missing")
	}
	wantAtomic := []ir.AtomicField{
		{Name: "Def", Wire: "def", Kind: ir.KindString},
		{Name: "Exported", Wire: "exported", Kind: ir.KindBool},
	}
	if diff := cmp.Diff(wantAtomic, id.Atomic); diff != "" {
		t.Fatalf("atomic fields mismatch (-want +got):\n%s", diff)
	}

	sl, ok := models.Lookup("Slice")
	if !ok {
		t.Fatalf("Slice model missing")
	}
	wantPoly := []ir.PolymorphicField{
		{Name: "Elmtype", Wire: "elmtype", Variants: []string{"Identifier", "Slice"}},
	}
	if diff := cmp.Diff(wantPoly, sl.Poly); diff != "" {
		t.Fatalf("polymorphic fields mismatch (-want +got):\n%s", diff)
	}
	if sl.Tag != "slice" || id.Tag != "identifier" {
		t.Fatalf("wire tags mismatch: %q, %q", id.Tag, sl.Tag)
	}
}

func TestCompile_TypePropertyReserved(t *testing.T) {
	doc := &js.Document{Definitions: map[string]*js.Schema{
		"identifier": obj(prop("type", str()), prop("def", str())),
	}}
	models := mustCompile(t, doc, "identifier")
	id, _ := models.Lookup("Identifier")
	for _, f := range id.Atomic {
		if f.Name == "Type" {
			t.Fatalf("reserved type property became a user field")
		}
	}
	if len(id.Atomic) != 1 {
		t.Fatalf("atomic fields = %d, want 1", len(id.Atomic))
	}
}

func TestCompile_TypePropertySkippedForAnyKind(t *testing.T) {
	// the discriminator key is reserved whatever shape the schema gives it
	doc := &js.Document{Definitions: map[string]*js.Schema{
		"identifier": obj(prop("def", str())),
		"selector": obj(
			prop("type", union("identifier")),
			prop("prefix", union("identifier")),
		),
	}}
	models := mustCompile(t, doc, "identifier", "selector")
	sel, _ := models.Lookup("Selector")
	if len(sel.Poly) != 1 || sel.Poly[0].Name != "Prefix" {
		t.Fatalf("poly fields = %+v, want only Prefix", sel.Poly)
	}
	for _, f := range sel.Poly {
		if f.Wire == "type" {
			t.Fatalf("reserved type property became a wire field")
		}
	}
}

func TestCompile_OmitMarker(t *testing.T) {
	doc := &js.Document{Definitions: map[string]*js.Schema{
		"identifier": obj(
			prop("def", str()),
			prop("comment", &js.Schema{Type: "string", Description: "!!omit"}),
		),
	}}
	models := mustCompile(t, doc, "identifier")
	id, _ := models.Lookup("Identifier")
	if len(id.Atomic) != 2 {
		t.Fatalf("atomic fields = %d, want 2", len(id.Atomic))
	}
	if id.Atomic[0].Omit || !id.Atomic[1].Omit {
		t.Fatalf("omit flags mismatch: %+v", id.Atomic)
	}
}

func TestCompile_ArrayOfUnionMembers(t *testing.T) {
	items := union("identifier", "slice")
	doc := &js.Document{Definitions: map[string]*js.Schema{
		"identifier": obj(prop("def", str())),
		"slice":      obj(prop("elmtype", union("identifier"))),
		"function": obj(
			prop("params", &js.Schema{Type: "array", Items: items}),
		),
	}}
	models := mustCompile(t, doc, "identifier", "slice", "function")
	fn, _ := models.Lookup("Function")
	want := []ir.ArrayField{
		{Name: "Params", Wire: "params", Variants: []string{"Identifier", "Slice"}},
	}
	if diff := cmp.Diff(want, fn.Array); diff != "" {
		t.Fatalf("array fields mismatch (-want +got):\n%s", diff)
	}
}

func TestCompile_SynthesizesItemModel(t *testing.T) {
	doc := &js.Document{Definitions: map[string]*js.Schema{
		"identifier": obj(prop("def", str())),
		"struct": obj(
			prop("fields", &js.Schema{Type: "array", Items: obj(
				prop("name", str()),
				prop("def", union("identifier")),
			)}),
		),
	}}
	models := mustCompile(t, doc, "identifier", "struct")

	item, ok := models.Lookup("StructFieldsItem")
	if !ok {
		t.Fatalf("synthesized item model missing")
	}
	if !item.Synthesized {
		t.Fatalf("item model not flagged as synthesized")
	}
	if item.Tag != "structfieldsitem" {
		t.Fatalf("item tag = %q", item.Tag)
	}

	st, _ := models.Lookup("Struct")
	want := []ir.ArrayField{
		{Name: "Fields", Wire: "fields", Elem: "StructFieldsItem", Variants: []string{"StructFieldsItem"}, ByValue: true},
	}
	if diff := cmp.Diff(want, st.Array); diff != "" {
		t.Fatalf("array fields mismatch (-want +got):\n%s", diff)
	}

	// the item model is registered the moment it is discovered, before its
	// parent completes
	var order []string
	for _, m := range models.Models() {
		order = append(order, m.Name)
	}
	wantOrder := []string{"Identifier", "StructFieldsItem", "Struct"}
	if diff := cmp.Diff(wantOrder, order); diff != "" {
		t.Fatalf("model order mismatch (-want +got):\n%s", diff)
	}

	// synthesized models never join the envelope dispatch
	for _, m := range models.Named() {
		if m.Name == "StructFieldsItem" {
			t.Fatalf("synthesized model leaked into named set")
		}
	}
}

func TestCompile_MissingVariantsIsFatal(t *testing.T) {
	doc := &js.Document{Definitions: map[string]*js.Schema{
		"slice": obj(prop("elmtype", &js.Schema{Type: "object"})),
	}}
	iss := compileErr(t, doc, "slice")
	if iss[0].Code != CodeMissingVariants {
		t.Fatalf("code = %q, want %q", iss[0].Code, CodeMissingVariants)
	}
}

func TestCompile_MissingVariantsOnArrayItemsIsFatal(t *testing.T) {
	doc := &js.Document{Definitions: map[string]*js.Schema{
		"function": obj(prop("params", &js.Schema{
			Type:  "array",
			Items: &js.Schema{Type: "object"},
		})),
	}}
	iss := compileErr(t, doc, "function")
	if iss[0].Code != CodeMissingVariants {
		t.Fatalf("code = %q, want %q", iss[0].Code, CodeMissingVariants)
	}
}

func TestCompile_UnsupportedKindIsFatal(t *testing.T) {
	doc := &js.Document{Definitions: map[string]*js.Schema{
		"identifier": obj(prop("count", &js.Schema{Type: "integer"})),
	}}
	iss := compileErr(t, doc, "identifier")
	if iss[0].Code != CodeUnsupportedKind {
		t.Fatalf("code = %q, want %q", iss[0].Code, CodeUnsupportedKind)
	}
	if iss[0].Path != "/definitions/identifier/properties/count" {
		t.Fatalf("path = %q", iss[0].Path)
	}
}

func TestCompile_BadReferenceIsFatal(t *testing.T) {
	doc := &js.Document{Definitions: map[string]*js.Schema{
		"slice": obj(prop("elmtype", &js.Schema{
			Type:  "object",
			AnyOf: []js.Ref{{Ref: ""}},
		})),
	}}
	iss := compileErr(t, doc, "slice")
	if iss[0].Code != CodeBadReference {
		t.Fatalf("code = %q, want %q", iss[0].Code, CodeBadReference)
	}
}

func TestCompile_DanglingVariantIsFatal(t *testing.T) {
	doc := &js.Document{Definitions: map[string]*js.Schema{
		"slice": obj(prop("elmtype", union("phantom"))),
	}}
	iss := compileErr(t, doc, "slice")
	if iss[0].Code != CodeDanglingVariant {
		t.Fatalf("code = %q, want %q", iss[0].Code, CodeDanglingVariant)
	}
}

func TestCompile_ItemNameCollisionIsFatal(t *testing.T) {
	// fooBarItem walks first and claims the name a synthesized item derives
	doc := &js.Document{Definitions: map[string]*js.Schema{
		"fooBarItem": obj(prop("def", str())),
		"foo": obj(
			prop("bar", &js.Schema{Type: "array", Items: obj(prop("def", str()))}),
		),
	}}
	iss := compileErr(t, doc, "fooBarItem", "foo")
	if iss[0].Code != CodeNameCollision {
		t.Fatalf("code = %q, want %q", iss[0].Code, CodeNameCollision)
	}
}

func TestCompile_ReservedNilNameIsFatal(t *testing.T) {
	doc := &js.Document{Definitions: map[string]*js.Schema{
		"nil": obj(prop("def", str())),
	}}
	iss := compileErr(t, doc, "nil")
	if iss[0].Code != CodeNameCollision {
		t.Fatalf("code = %q, want %q", iss[0].Code, CodeNameCollision)
	}
}

func TestCompile_DuplicatePropertyIsFatal(t *testing.T) {
	doc := &js.Document{Definitions: map[string]*js.Schema{
		"identifier": obj(prop("def", str()), prop("def", str())),
	}}
	iss := compileErr(t, doc, "identifier")
	if iss[0].Code != CodeInvalidSchema {
		t.Fatalf("code = %q, want %q", iss[0].Code, CodeInvalidSchema)
	}
}

func TestCompile_SkipsAbsentAndNonObjectMembers(t *testing.T) {
	doc := &js.Document{Definitions: map[string]*js.Schema{
		"identifier": obj(prop("def", str())),
		"alias":      {Type: "string"},
	}}
	models := mustCompile(t, doc, "identifier", "alias", "phantom")
	if models.Len() != 1 {
		t.Fatalf("models = %d, want 1", models.Len())
	}
}

func TestCompile_RegistryOrderPreserved(t *testing.T) {
	doc := &js.Document{Definitions: map[string]*js.Schema{
		"a": obj(prop("def", str())),
		"b": obj(prop("def", str())),
		"c": obj(prop("def", str())),
	}}
	models := mustCompile(t, doc, "c", "a", "b")
	var order []string
	for _, m := range models.Models() {
		order = append(order, m.Name)
	}
	if diff := cmp.Diff([]string{"C", "A", "B"}, order); diff != "" {
		t.Fatalf("model order mismatch (-want +got):\n%s", diff)
	}
}

func TestCompile_OneOfPreferredOverAnyOf(t *testing.T) {
	doc := &js.Document{Definitions: map[string]*js.Schema{
		"identifier": obj(prop("def", str())),
		"pointer": obj(prop("def", &js.Schema{
			Type:  "object",
			OneOf: []js.Ref{{Ref: "#/definitions/identifier"}},
			AnyOf: []js.Ref{{Ref: "#/definitions/phantom"}},
		})),
	}}
	models := mustCompile(t, doc, "identifier", "pointer")
	p, _ := models.Lookup("Pointer")
	if diff := cmp.Diff([]string{"Identifier"}, p.Poly[0].Variants); diff != "" {
		t.Fatalf("variants mismatch (-want +got):\n%s", diff)
	}
}
