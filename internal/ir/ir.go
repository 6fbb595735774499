package ir

// Package ir defines the node-model intermediate representation sitting
// between the schema walker and the source renderer. This package is internal
// and not part of the public API. Models are built once during the walk and
// never mutated afterwards; the renderer only reads them.

import "fmt"

// NilName and NilTag identify the reserved empty-node variant every run
// emits; no walked or synthesized model may claim either.
const (
	NilName = "Nil"
	NilTag  = "nil"
)

// AtomicKind is the primitive kind of an atomic field.
type AtomicKind string

const (
	KindString AtomicKind = "string"
	KindBool   AtomicKind = "bool"
)

// AtomicField is a primitive-valued field.
type AtomicField struct {
	Name string     // exported Go field name
	Wire string     // lower-cased JSON key
	Kind AtomicKind // Go type of the field
	Omit bool       // write-only in memory, absent on the wire (json:"-")
}

// PolymorphicField holds exactly one instance of one permitted variant,
// resolved at decode time by the nested discriminator.
type PolymorphicField struct {
	Name     string
	Wire     string
	Variants []string // permitted variant model names, in declaration order
}

// ArrayField is a sequence whose elements dispatch on the discriminator.
// Elem is the synthesized item model name; it is empty when elements are
// heterogeneous union members (the renderer then uses the union interface).
// ByValue elements are copied into the slice; otherwise elements are stored
// by reference.
type ArrayField struct {
	Name     string
	Wire     string
	Elem     string
	Variants []string
	ByValue  bool
}

// Model is one concrete node type of the union.
type Model struct {
	Name        string // normalized Go type name, unique per run
	Tag         string // wire discriminator, unique per run
	Synthesized bool   // true for array item models invented during the walk

	Atomic []AtomicField
	Poly   []PolymorphicField
	Array  []ArrayField
}

// Variants returns every permitted-variant name referenced by the model's
// polymorphic and array fields.
func (m *Model) Variants() []string {
	var out []string
	for _, f := range m.Poly {
		out = append(out, f.Variants...)
	}
	for _, f := range m.Array {
		out = append(out, f.Variants...)
	}
	return out
}

// Builder accumulates field descriptors for one model while the walker
// visits its properties. A field name may appear in at most one of the three
// field groups; Build seals the model.
type Builder struct {
	model *Model
	seen  map[string]struct{}
}

// NewBuilder starts a model with its normalized name and wire tag.
func NewBuilder(name, tag string) *Builder {
	return &Builder{
		model: &Model{Name: name, Tag: tag},
		seen:  map[string]struct{}{},
	}
}

// MarkSynthesized flags the model as an invented array item type.
func (b *Builder) MarkSynthesized() { b.model.Synthesized = true }

func (b *Builder) claim(name string) error {
	if _, dup := b.seen[name]; dup {
		return fmt.Errorf("field %s declared twice on %s", name, b.model.Name)
	}
	b.seen[name] = struct{}{}
	return nil
}

// AddAtomic records a primitive field.
func (b *Builder) AddAtomic(f AtomicField) error {
	if err := b.claim(f.Name); err != nil {
		return err
	}
	b.model.Atomic = append(b.model.Atomic, f)
	return nil
}

// AddPolymorphic records a single-valued polymorphic field.
func (b *Builder) AddPolymorphic(f PolymorphicField) error {
	if err := b.claim(f.Name); err != nil {
		return err
	}
	b.model.Poly = append(b.model.Poly, f)
	return nil
}

// AddArray records an array field.
func (b *Builder) AddArray(f ArrayField) error {
	if err := b.claim(f.Name); err != nil {
		return err
	}
	b.model.Array = append(b.model.Array, f)
	return nil
}

// Build returns the finished model. The builder must not be reused.
func (b *Builder) Build() *Model { return b.model }

// ModelSet is the append-only collection of models produced by one run.
// Insertion order is preserved; insert-if-absent keyed by model name is the
// uniqueness gate for synthesized names.
type ModelSet struct {
	ordered []*Model
	byName  map[string]*Model
}

// NewModelSet returns an empty set.
func NewModelSet() *ModelSet {
	return &ModelSet{byName: map[string]*Model{}}
}

// Insert adds m unless a model of the same name is already present. It
// reports whether the model was inserted.
func (s *ModelSet) Insert(m *Model) bool {
	if _, dup := s.byName[m.Name]; dup {
		return false
	}
	s.byName[m.Name] = m
	s.ordered = append(s.ordered, m)
	return true
}

// Lookup returns the model registered under name.
func (s *ModelSet) Lookup(name string) (*Model, bool) {
	m, ok := s.byName[name]
	return m, ok
}

// Models returns every model in insertion order. The returned slice is
// shared; callers must not mutate it.
func (s *ModelSet) Models() []*Model { return s.ordered }

// Named returns the non-synthesized models in insertion order; these are the
// union members an envelope dispatches over.
func (s *ModelSet) Named() []*Model {
	var out []*Model
	for _, m := range s.ordered {
		if !m.Synthesized {
			out = append(out, m)
		}
	}
	return out
}

// Len returns the number of models.
func (s *ModelSet) Len() int { return len(s.ordered) }
