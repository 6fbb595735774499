package typegen

// Registry is the ordered, closed set of schema definition names eligible to
// participate in the discriminated union. It is supplied by the caller once
// per run and never mutated by the walker; everything else in the schema
// document is inert data.
type Registry struct {
	names []string
}

// NewRegistry builds a registry from the given definition names, preserving
// order. A duplicate entry is a name collision and aborts registry
// construction.
func NewRegistry(names ...string) (Registry, error) {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	var iss Issues
	for _, n := range names {
		if _, dup := seen[n]; dup {
			iss = AppendIssues(iss, Issue{
				Path:    "/registry/" + n,
				Code:    CodeNameCollision,
				Message: "duplicate registry member: " + n,
			})
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	if len(iss) > 0 {
		return Registry{}, iss
	}
	return Registry{names: out}, nil
}

// MustRegistry is NewRegistry for static registries known to be collision
// free; it panics on error.
func MustRegistry(names ...string) Registry {
	r, err := NewRegistry(names...)
	if err != nil {
		panic(err)
	}
	return r
}

// Names returns the members in registration order. The returned slice is a
// copy.
func (r Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Contains reports whether name is a registry member.
func (r Registry) Contains(name string) bool {
	for _, n := range r.names {
		if n == name {
			return true
		}
	}
	return false
}

// Len returns the number of members.
func (r Registry) Len() int { return len(r.names) }

// DefaultRegistry lists the Go type-descriptor hierarchy the generator was
// built for. Callers with a different schema supply their own registry.
var DefaultRegistry = MustRegistry(
	"identifier",
	"builtin",
	"constant",
	"packagequalifier",
	"selector",
	"channel",
	"slice",
	"array",
	"map",
	"pointer",
	"ellipsis",
	"function",
	"method",
	"interface",
	"struct",
)
