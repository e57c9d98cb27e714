package validator

import (
	"fmt"

	rootschema "github.com/kestrelschema/jsonschema"
)

// CompileBatch compiles every schema in schemas together, registering the
// whole batch as remotes before compiling any single member, so
// cross-references between batch entries resolve regardless of compile
// order. Useful when a set of schemas reference each other by $id and
// none of them is a natural "root" to Compile individually.
//
// A schema missing an $id is keyed under its map id for remote lookup
// purposes only; its own compiled form still validates relative to
// whatever base URI it declares (or none).
func CompileBatch(schemas map[string]*rootschema.Schema, opts ...rootschema.CompileOption) (map[string]*CompiledSchema, error) {
	remotes := make(map[string]*rootschema.Schema, len(schemas))
	for id, s := range schemas {
		key := id
		if s.ID() != "" {
			key = s.ID()
		}
		remotes[key] = s
	}

	out := make(map[string]*CompiledSchema, len(schemas))
	for id, s := range schemas {
		batchOpts := append([]rootschema.CompileOption{rootschema.WithRemotes(remotes)}, opts...)
		compiled, err := Compile(s, batchOpts...)
		if err != nil {
			return nil, fmt.Errorf("jsonschema: compiling batch member %q: %w", id, err)
		}
		out[id] = compiled
	}
	return out, nil
}
