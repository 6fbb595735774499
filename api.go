package typegen

import (
	"errors"

	gen "github.com/gofed/typegen/internal/gen"
	js "github.com/gofed/typegen/jsonschema"
)

// Options configures one generation run. The registry is passed separately
// because it is the semantic input; Options only shapes the emitted source.
type Options struct {
	// TypesPackage is the package name of the generated types file.
	// Defaults to "gotypes".
	TypesPackage string
	// SymbolsPackage is the package name of the generated symbols file.
	// Defaults to "symbols".
	SymbolsPackage string
	// TypesImportPath is the import path of the generated types package,
	// referenced by the symbols file. Required.
	TypesImportPath string
}

// Output holds the two generated source files.
type Output struct {
	Types   []byte // concrete node types with their wire protocol
	Symbols []byte // the SymbolDef envelope dispatching over the whole union
}

// ErrMissingImportPath is returned when Options.TypesImportPath is empty.
var ErrMissingImportPath = errors.New("typegen: Options.TypesImportPath is required")

// Generate compiles the schema document against the registry and renders
// both generated files. Schema errors abort the run with Issues; nothing is
// rendered on error.
func Generate(doc *js.Document, reg Registry, opts Options) (*Output, error) {
	if opts.TypesPackage == "" {
		opts.TypesPackage = "gotypes"
	}
	if opts.SymbolsPackage == "" {
		opts.SymbolsPackage = "symbols"
	}
	if opts.TypesImportPath == "" {
		return nil, ErrMissingImportPath
	}

	models, err := compile(doc, reg)
	if err != nil {
		return nil, err
	}

	types, err := gen.RenderTypes(opts.TypesPackage, models.Models())
	if err != nil {
		return nil, err
	}
	symbols, err := gen.RenderSymbols(opts.SymbolsPackage, opts.TypesImportPath, models.Named())
	if err != nil {
		return nil, err
	}
	return &Output{Types: types, Symbols: symbols}, nil
}
