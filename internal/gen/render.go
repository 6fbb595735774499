package gen

// Package gen renders Go source from the node-model IR: one types file
// holding every concrete variant with its discriminated-union wire protocol,
// and one symbols file holding the SymbolDef envelope. Output is gofmt'd;
// callers only decide where it is written.

import (
	"bytes"
	"fmt"
	"go/format"
	"text/template"

	ir "github.com/gofed/typegen/internal/ir"
)

// RenderTypes renders the types file: the union interface, the reserved Nil
// variant, and every model in insertion order.
func RenderTypes(pkg string, models []*ir.Model) ([]byte, error) {
	var buf bytes.Buffer
	err := typesTmpl.Execute(&buf, struct {
		Package string
		Models  []*ir.Model
	}{Package: pkg, Models: models})
	if err != nil {
		return nil, fmt.Errorf("gen: rendering types file: %w", err)
	}
	return gofmt(buf.Bytes())
}

// RenderSymbols renders the symbols file. Variants are the named union
// members the envelope dispatches over; synthesized item models never appear
// here, they are reachable only through their parent's array field.
func RenderSymbols(pkg, typesImportPath string, variants []*ir.Model) ([]byte, error) {
	var buf bytes.Buffer
	err := symbolsTmpl.Execute(&buf, struct {
		Package         string
		TypesImportPath string
		Variants        []*ir.Model
	}{Package: pkg, TypesImportPath: typesImportPath, Variants: variants})
	if err != nil {
		return nil, fmt.Errorf("gen: rendering symbols file: %w", err)
	}
	return gofmt(buf.Bytes())
}

func gofmt(src []byte) ([]byte, error) {
	out, err := format.Source(src)
	if err != nil {
		return nil, fmt.Errorf("gen: formatting generated source: %w", err)
	}
	return out, nil
}

var funcs = template.FuncMap{
	// jsontag renders a struct tag for a wire key; fieldtag additionally
	// redacts omitted fields to json:"-". Tags are built here because raw
	// template literals cannot contain backquotes.
	"jsontag": func(wire string) string {
		return "`json:\"" + wire + "\"`"
	},
	"fieldtag": func(wire string, omit bool) string {
		if omit {
			wire = "-"
		}
		return "`json:\"" + wire + "\"`"
	},
	// elem resolves an array field's element type: the synthesized item
	// model when present, the union interface otherwise.
	"elem": func(f ir.ArrayField) string {
		if f.Elem != "" {
			return f.Elem
		}
		return "DataType"
	},
}

var typesTmpl = template.Must(template.New("types").Funcs(funcs).Parse(`// Code generated by typegen. DO NOT EDIT.

package {{.Package}}

import "encoding/json"

// DataType is implemented by every node type; GetType reports the wire tag
// identifying the concrete variant inside an encoded payload.
type DataType interface {
	GetType() string
}

// NilType is the wire tag of the empty node.
const NilType = "nil"

// Nil is the empty node, used where a definition is absent.
type Nil struct{}

func (o *Nil) GetType() string {
	return NilType
}

func (o *Nil) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Type string {{jsontag "type"}}
	}{
		Type: NilType,
	})
}

func (o *Nil) UnmarshalJSON(b []byte) error {
	var objMap map[string]*json.RawMessage
	return json.Unmarshal(b, &objMap)
}
{{range .Models}}{{$m := .}}
// {{$m.Name}}Type is the wire tag of {{$m.Name}}.
const {{$m.Name}}Type = "{{$m.Tag}}"

type {{$m.Name}} struct {
{{- range .Atomic}}
	{{.Name}} {{.Kind}} {{fieldtag .Wire .Omit}}
{{- end}}
{{- range .Poly}}
	{{.Name}} DataType {{jsontag .Wire}}
{{- end}}
{{- range .Array}}
	{{.Name}} []{{elem .}} {{jsontag .Wire}}
{{- end}}
}

func (o *{{$m.Name}}) GetType() string {
	return {{$m.Name}}Type
}

func (o *{{$m.Name}}) MarshalJSON() ([]byte, error) {
	type Copy {{$m.Name}}
	return json.Marshal(&struct {
		Type string {{jsontag "type"}}
		*Copy
	}{
		Type: {{$m.Name}}Type,
		Copy: (*Copy)(o),
	})
}

func (o *{{$m.Name}}) UnmarshalJSON(b []byte) error {
	var objMap map[string]*json.RawMessage
	if err := json.Unmarshal(b, &objMap); err != nil {
		return err
	}
{{- range .Atomic}}{{if not .Omit}}
	if raw, ok := objMap["{{.Wire}}"]; ok && raw != nil {
		if err := json.Unmarshal(*raw, &o.{{.Name}}); err != nil {
			return err
		}
	}
{{- end}}{{end}}
{{- range .Poly}}{{$f := .}}
	if raw, ok := objMap["{{$f.Wire}}"]; ok && raw != nil {
		var m map[string]interface{}
		if err := json.Unmarshal(*raw, &m); err != nil {
			return err
		}
		switch dataType := m["type"]; dataType {
{{- range $f.Variants}}
		case {{.}}Type:
			r := &{{.}}{}
			if err := json.Unmarshal(*raw, r); err != nil {
				return err
			}
			o.{{$f.Name}} = r
{{- end}}
		}
	}
{{- end}}
{{- range .Array}}{{$f := .}}
	if raw, ok := objMap["{{$f.Wire}}"]; ok && raw != nil {
		var elems []*json.RawMessage
		if err := json.Unmarshal(*raw, &elems); err != nil {
			return err
		}
		o.{{$f.Name}} = make([]{{elem $f}}, 0, len(elems))
		for _, item := range elems {
			if item == nil {
				continue
			}
			var m map[string]interface{}
			if err := json.Unmarshal(*item, &m); err != nil {
				return err
			}
			switch dataType := m["type"]; dataType {
{{- range $f.Variants}}
			case {{.}}Type:
				r := &{{.}}{}
				if err := json.Unmarshal(*item, r); err != nil {
					return err
				}
				o.{{$f.Name}} = append(o.{{$f.Name}}, {{if $f.ByValue}}*r{{else}}r{{end}})
{{- end}}
			}
		}
	}
{{- end}}
	return nil
}
{{end}}`))

var symbolsTmpl = template.Must(template.New("symbols").Funcs(funcs).Parse(`// Code generated by typegen. DO NOT EDIT.

package {{.Package}}

import (
	"encoding/json"

	gotypes "{{.TypesImportPath}}"
)

// SymbolDef couples a symbol's identity and position with its type
// definition, one node of the type-descriptor union. Def falls back to
// gotypes.Nil when the payload carries no definition.
type SymbolDef struct {
	Pos     string           {{jsontag "pos"}}
	Name    string           {{jsontag "name"}}
	Package string           {{jsontag "package"}}
	Def     gotypes.DataType {{jsontag "def"}}
	Block   int              {{jsontag "block"}}
}

func (o *SymbolDef) UnmarshalJSON(b []byte) error {
	var objMap map[string]*json.RawMessage
	if err := json.Unmarshal(b, &objMap); err != nil {
		return err
	}

	if raw, ok := objMap["pos"]; ok && raw != nil {
		if err := json.Unmarshal(*raw, &o.Pos); err != nil {
			return err
		}
	}
	if raw, ok := objMap["name"]; ok && raw != nil {
		if err := json.Unmarshal(*raw, &o.Name); err != nil {
			return err
		}
	}
	if raw, ok := objMap["package"]; ok && raw != nil {
		if err := json.Unmarshal(*raw, &o.Package); err != nil {
			return err
		}
	}
	if raw, ok := objMap["block"]; ok && raw != nil {
		if err := json.Unmarshal(*raw, &o.Block); err != nil {
			return err
		}
	}

	raw, ok := objMap["def"]
	if !ok || raw == nil {
		o.Def = &gotypes.Nil{}
		return nil
	}
	var m map[string]interface{}
	if err := json.Unmarshal(*raw, &m); err != nil {
		return err
	}
	switch dataType := m["type"]; dataType {
{{- range .Variants}}
	case gotypes.{{.Name}}Type:
		r := &gotypes.{{.Name}}{}
		if err := json.Unmarshal(*raw, r); err != nil {
			return err
		}
		o.Def = r
{{- end}}
	case gotypes.NilType:
		r := &gotypes.Nil{}
		if err := json.Unmarshal(*raw, r); err != nil {
			return err
		}
		o.Def = r
	}
	return nil
}
`))
