package typegen_test

import (
	"os"
	"strings"
	"testing"

	typegen "github.com/gofed/typegen"
	js "github.com/gofed/typegen/jsonschema"
)

func miniDoc() *js.Document {
	all := []js.Ref{
		{Ref: "#/definitions/identifier"},
		{Ref: "#/definitions/slice"},
	}
	return &js.Document{Definitions: map[string]*js.Schema{
		"identifier": {Type: "object", Properties: js.Properties{
			{Name: "type", Schema: &js.Schema{Type: "string"}},
			{Name: "def", Schema: &js.Schema{Type: "string"}},
			{Name: "comment", Schema: &js.Schema{Type: "string", Description: "!!omit"}},
		}},
		"slice": {Type: "object", Properties: js.Properties{
			{Name: "type", Schema: &js.Schema{Type: "string"}},
			{Name: "elmtype", Schema: &js.Schema{Type: "object", AnyOf: all}},
			{Name: "tags", Schema: &js.Schema{Type: "array", Items: &js.Schema{Type: "object", AnyOf: all}}},
		}},
	}}
}

func TestGenerate_TypesFileShape(t *testing.T) {
	out, err := typegen.Generate(miniDoc(), typegen.MustRegistry("identifier", "slice"), typegen.Options{
		TypesImportPath: "example.com/demo/gotypes",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	types := string(out.Types)

	for _, want := range []string{
		"package gotypes",
		"type DataType interface {",
		`const NilType = "nil"`,
		`const IdentifierType = "identifier"`,
		`const SliceType = "slice"`,
		"func (o *Slice) GetType() string {",
		"func (o *Slice) MarshalJSON() ([]byte, error) {",
		"func (o *Slice) UnmarshalJSON(b []byte) error {",
		"Type string `json:\"type\"`",
		"Comment string `json:\"-\"`",
		`Elmtype DataType`,
		"Tags    []DataType `json:\"tags\"`",
		"case IdentifierType:",
		"case SliceType:",
	} {
		if !strings.Contains(types, want) {
			t.Fatalf("types file missing %q:\n%s", want, types)
		}
	}
	// the omitted field never shows up in the decode path
	if strings.Contains(types, `objMap["comment"]`) {
		t.Fatalf("omitted field decoded from the wire:\n%s", types)
	}
}

func TestGenerate_SymbolsFileShape(t *testing.T) {
	out, err := typegen.Generate(miniDoc(), typegen.MustRegistry("identifier", "slice"), typegen.Options{
		TypesImportPath: "example.com/demo/gotypes",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	symbols := string(out.Symbols)

	for _, want := range []string{
		"package symbols",
		`gotypes "example.com/demo/gotypes"`,
		"type SymbolDef struct {",
		"Def     gotypes.DataType `json:\"def\"`",
		"case gotypes.IdentifierType:",
		"case gotypes.SliceType:",
		"case gotypes.NilType:",
		"o.Def = &gotypes.Nil{}",
	} {
		if !strings.Contains(symbols, want) {
			t.Fatalf("symbols file missing %q:\n%s", want, symbols)
		}
	}
}

func TestGenerate_PackageOverrides(t *testing.T) {
	out, err := typegen.Generate(miniDoc(), typegen.MustRegistry("identifier", "slice"), typegen.Options{
		TypesPackage:    "nodes",
		SymbolsPackage:  "syms",
		TypesImportPath: "example.com/demo/nodes",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(string(out.Types), "package nodes") {
		t.Fatalf("types package override ignored")
	}
	if !strings.Contains(string(out.Symbols), "package syms") {
		t.Fatalf("symbols package override ignored")
	}
}

func TestGenerate_RequiresImportPath(t *testing.T) {
	_, err := typegen.Generate(miniDoc(), typegen.MustRegistry("identifier", "slice"), typegen.Options{})
	if err != typegen.ErrMissingImportPath {
		t.Fatalf("err = %v, want ErrMissingImportPath", err)
	}
}

func TestGenerate_SchemaErrorsAbortWholeRun(t *testing.T) {
	doc := miniDoc()
	doc.Definitions["broken"] = &js.Schema{Type: "object", Properties: js.Properties{
		{Name: "payload", Schema: &js.Schema{Type: "object"}},
	}}
	out, err := typegen.Generate(doc, typegen.MustRegistry("identifier", "slice", "broken"), typegen.Options{
		TypesImportPath: "example.com/demo/gotypes",
	})
	if err == nil {
		t.Fatalf("expected schema error")
	}
	if out != nil {
		t.Fatalf("expected no partial output, got %v", out)
	}
	iss, ok := typegen.AsIssues(err)
	if !ok {
		t.Fatalf("expected Issues, got %T", err)
	}
	if iss[0].Code != typegen.CodeMissingVariants {
		t.Fatalf("code = %q, want %q", iss[0].Code, typegen.CodeMissingVariants)
	}
	if !strings.Contains(err.Error(), typegen.CodeMissingVariants) {
		t.Fatalf("summary missing code: %q", err.Error())
	}
}

// TestGenerate_CanonicalSchema compiles the checked-in schema the gotypes and
// symbols packages were generated from.
func TestGenerate_CanonicalSchema(t *testing.T) {
	data, err := os.ReadFile("schema/golang-types.json")
	if err != nil {
		t.Fatalf("reading canonical schema: %v", err)
	}
	doc, err := js.DecodeJSON(data)
	if err != nil {
		t.Fatalf("decoding canonical schema: %v", err)
	}
	out, err := typegen.Generate(doc, typegen.DefaultRegistry, typegen.Options{
		TypesImportPath: "github.com/gofed/typegen/gotypes",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	types := string(out.Types)
	for _, want := range []string{
		`const StructType = "struct"`,
		`const InterfaceMethodsItemType = "interfacemethodsitem"`,
		"Fields []StructFieldsItem `json:\"fields\"`",
		"o.Methods = append(o.Methods, *r)",
		"o.Params = append(o.Params, r)",
	} {
		if !strings.Contains(types, want) {
			t.Fatalf("canonical types output missing %q", want)
		}
	}
	if !strings.Contains(string(out.Symbols), "case gotypes.StructType:") {
		t.Fatalf("canonical symbols output missing struct dispatch")
	}
}
