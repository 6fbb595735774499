// Command typegen compiles a schema document into the Go source for a
// discriminated-union type hierarchy: a types file with one concrete type per
// union member and a symbols file with the SymbolDef envelope.
//
// Usage:
//
//	typegen --schema schema/golang-types.json \
//	        --types-out gotypes/types.go \
//	        --symbols-out symbols/symbols.go \
//	        --types-import github.com/gofed/typegen/gotypes
package main

import (
	goflag "flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"k8s.io/klog/v2"

	typegen "github.com/gofed/typegen"
	"github.com/gofed/typegen/jsonschema"
)

func main() {
	klog.InitFlags(nil)

	schemaPath := pflag.String("schema", "", "schema document to compile (JSON, or YAML by extension)")
	typesOut := pflag.String("types-out", "", "output path of the generated types file")
	symbolsOut := pflag.String("symbols-out", "", "output path of the generated symbols file (omit to skip)")
	typesPackage := pflag.String("types-package", "gotypes", "package name of the generated types file")
	symbolsPackage := pflag.String("symbols-package", "symbols", "package name of the generated symbols file")
	typesImport := pflag.String("types-import", "", "import path of the generated types package")
	dataTypes := pflag.StringSlice("data-types", typegen.DefaultRegistry.Names(), "ordered definition names forming the union")

	pflag.CommandLine.AddGoFlagSet(goflag.CommandLine)
	pflag.Parse()

	if *schemaPath == "" || *typesOut == "" || *typesImport == "" {
		fmt.Fprintln(os.Stderr, "typegen: --schema, --types-out and --types-import are required")
		pflag.Usage()
		os.Exit(2)
	}

	doc, err := jsonschema.DecodeFile(*schemaPath)
	if err != nil {
		klog.Fatalf("reading schema: %v", err)
	}
	reg, err := typegen.NewRegistry(*dataTypes...)
	if err != nil {
		klog.Fatalf("building registry: %v", err)
	}
	klog.V(2).Infof("compiling %d union members from %s", reg.Len(), *schemaPath)

	out, err := typegen.Generate(doc, reg, typegen.Options{
		TypesPackage:    *typesPackage,
		SymbolsPackage:  *symbolsPackage,
		TypesImportPath: *typesImport,
	})
	if err != nil {
		klog.Fatalf("generating: %v", err)
	}

	if err := writeFile(*typesOut, out.Types); err != nil {
		klog.Fatalf("writing %s: %v", *typesOut, err)
	}
	klog.V(2).Infof("wrote %s", *typesOut)
	if *symbolsOut != "" {
		if err := writeFile(*symbolsOut, out.Symbols); err != nil {
			klog.Fatalf("writing %s: %v", *symbolsOut, err)
		}
		klog.V(2).Infof("wrote %s", *symbolsOut)
	}
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}
