package typegen

// Package typegen compiles a schema describing a closed family of node types
// (a type-descriptor hierarchy: identifiers, structs, slices, maps, pointers,
// functions, interfaces, ...) into Go source that can serialize and
// deserialize instances of that hierarchy as JSON, including polymorphic
// fields whose concrete variant is only known at decode time.
//
// The pipeline has two stages:
//
//   - a schema walker that turns each registry member's definition into an
//     immutable node model (atomic fields, polymorphic fields, array fields),
//     synthesizing nested item models for anonymous array element schemas;
//   - a protocol synthesizer that derives, per model, the discriminated-union
//     wire protocol: MarshalJSON injects the wire tag, UnmarshalJSON locates
//     the tag in a raw key map and dispatches to the concrete variant.
//
// Design policy:
// - Keep only public APIs in the root package; put the node-model IR and the
//   source renderer under internal/.
// - Place the schema document model under jsonschema/ and the CLI under
//   cmd/typegen.
// - Prefer black-box testing against public APIs; protocol-level properties
//   are exercised against the committed generator output in gotypes/ and
//   symbols/.
//
// Typical usage:
//
//	doc, err := jsonschema.DecodeJSON(data)
//	out, err := typegen.Generate(doc, typegen.DefaultRegistry, typegen.Options{
//		TypesImportPath: "github.com/gofed/typegen/gotypes",
//	})
//	os.WriteFile("gotypes/types.go", out.Types, 0o644)
//	os.WriteFile("symbols/symbols.go", out.Symbols, 0o644)
