// Package gotypes holds the generated type-descriptor hierarchy for the Go
// language: one concrete node type per union member, each carrying its
// discriminated-union wire protocol. The source of truth is
// schema/golang-types.json; types.go is generator output and must not be
// edited by hand.
package gotypes

//go:generate go run github.com/gofed/typegen/cmd/typegen --schema ../schema/golang-types.json --types-out types.go --symbols-out ../symbols/symbols.go --types-import github.com/gofed/typegen/gotypes
