package gen

import (
	"strings"
	"testing"

	ir "github.com/gofed/typegen/internal/ir"
)

func sampleModels() []*ir.Model {
	return []*ir.Model{
		{
			Name: "Identifier",
			Tag:  "identifier",
			Atomic: []ir.AtomicField{
				{Name: "Def", Wire: "def", Kind: ir.KindString},
				{Name: "Comment", Wire: "comment", Kind: ir.KindString, Omit: true},
				{Name: "Exported", Wire: "exported", Kind: ir.KindBool},
			},
		},
		{
			Name: "Slice",
			Tag:  "slice",
			Poly: []ir.PolymorphicField{
				{Name: "Elmtype", Wire: "elmtype", Variants: []string{"Identifier", "Slice"}},
			},
		},
		{
			Name:        "StructFieldsItem",
			Tag:         "structfieldsitem",
			Synthesized: true,
			Atomic:      []ir.AtomicField{{Name: "Name", Wire: "name", Kind: ir.KindString}},
			Poly:        []ir.PolymorphicField{{Name: "Def", Wire: "def", Variants: []string{"Identifier"}}},
		},
		{
			Name: "Struct",
			Tag:  "struct",
			Array: []ir.ArrayField{
				{Name: "Fields", Wire: "fields", Elem: "StructFieldsItem", Variants: []string{"StructFieldsItem"}, ByValue: true},
			},
		},
		{
			Name: "Function",
			Tag:  "function",
			Array: []ir.ArrayField{
				{Name: "Params", Wire: "params", Variants: []string{"Identifier", "Slice"}},
			},
		},
	}
}

func TestRenderTypes_WireProtocol(t *testing.T) {
	out, err := RenderTypes("gotypes", sampleModels())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	code := string(out)

	for _, want := range []string{
		"package gotypes",
		`import "encoding/json"`,
		// union interface plus the always-present empty node
		"type DataType interface {",
		`const NilType = "nil"`,
		"func (o *Nil) MarshalJSON() ([]byte, error) {",
		// tag constants
		`const IdentifierType = "identifier"`,
		`const StructFieldsItemType = "structfieldsitem"`,
		// discriminator injection via the shadow type
		"type Copy Identifier",
		"Copy: (*Copy)(o),",
		// omitted field is write-only
		"Comment  string `json:\"-\"`",
		// two-phase decode, tolerating null array elements
		"var objMap map[string]*json.RawMessage",
		"if item == nil {",
		`switch dataType := m["type"]; dataType {`,
		// dispatch per permitted set
		"case IdentifierType:",
		"case SliceType:",
		// value vs reference append semantics
		"o.Fields = append(o.Fields, *r)",
		"o.Params = append(o.Params, r)",
		// element types
		"Fields []StructFieldsItem `json:\"fields\"`",
		"Params []DataType `json:\"params\"`",
	} {
		if !strings.Contains(code, want) {
			t.Fatalf("types output missing %q:\n%s", want, code)
		}
	}

	if strings.Contains(code, `objMap["comment"]`) {
		t.Fatalf("omitted field must not be decoded:\n%s", code)
	}
}

func TestRenderTypes_GofmtClean(t *testing.T) {
	out, err := RenderTypes("gotypes", sampleModels())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	// RenderTypes runs the output through go/format; formatting again must be
	// a fixed point
	again, err := gofmt(out)
	if err != nil {
		t.Fatalf("reformat: %v", err)
	}
	if string(again) != string(out) {
		t.Fatalf("output is not gofmt-stable")
	}
}

func TestRenderSymbols_EnvelopeDispatch(t *testing.T) {
	var named []*ir.Model
	for _, m := range sampleModels() {
		if !m.Synthesized {
			named = append(named, m)
		}
	}
	out, err := RenderSymbols("symbols", "example.com/demo/gotypes", named)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	code := string(out)

	for _, want := range []string{
		"package symbols",
		`gotypes "example.com/demo/gotypes"`,
		"type SymbolDef struct {",
		"func (o *SymbolDef) UnmarshalJSON(b []byte) error {",
		"case gotypes.IdentifierType:",
		"case gotypes.SliceType:",
		"case gotypes.StructType:",
		"case gotypes.FunctionType:",
		"case gotypes.NilType:",
		"o.Def = &gotypes.Nil{}",
	} {
		if !strings.Contains(code, want) {
			t.Fatalf("symbols output missing %q:\n%s", want, code)
		}
	}

	// synthesized item models never join the envelope dispatch
	if strings.Contains(code, "StructFieldsItem") {
		t.Fatalf("synthesized model leaked into envelope:\n%s", code)
	}
}

func TestRenderTypes_EmptyModelSetStillValid(t *testing.T) {
	out, err := RenderTypes("gotypes", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(out), "type Nil struct{}") {
		t.Fatalf("empty run must still emit the union scaffolding:\n%s", out)
	}
}
