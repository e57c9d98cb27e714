package schema

import (
	"encoding/json"
	"fmt"

	"github.com/lestrrat-go/jsref/v2"
)

// remoteResolver resolves JSON-pointer fragments against raw (not yet
// parsed into *Schema) remote documents. It backs LoadRemoteFragment, which
// accepts schemas as generic any values before they are unmarshaled,
// mirroring how the teacher's Resolver leans on jsref for the same
// arbitrary-JSON-pointer-resolution job rather than hand-rolling it twice.
type remoteResolver struct {
	resolver *jsref.StackedResolver
}

func newRemoteResolver() *remoteResolver {
	r := jsref.New()
	r.AddResolver(jsref.NewObjectResolver())
	return &remoteResolver{resolver: r}
}

// resolvePointerInDocument resolves a "#/a/b" style pointer against an
// already-decoded JSON document (map[string]any / []any tree).
func (r *remoteResolver) resolvePointerInDocument(doc any, pointer string) (any, error) {
	if pointer == "" || pointer == "#" {
		return doc, nil
	}
	var resolved any
	if err := r.resolver.Resolve(&resolved, doc, pointer); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnresolvedReference, pointer)
	}
	return resolved, nil
}

// LoadRemoteFragment decodes a raw remote JSON document (any shape, not
// necessarily itself a schema; YAML is not accepted) and extracts just the fragment
// named by pointer as a *Schema. It exists for the case where a $ref
// names a JSON Pointer into a large document that is not worth parsing
// into *Schema in full just to reach one definition, e.g.
// "https://example.com/catalog.json#/components/schemas/Widget".
func LoadRemoteFragment(doc []byte, pointer string) (*Schema, error) {
	var generic any
	if err := json.Unmarshal(doc, &generic); err != nil {
		return nil, err
	}
	fragment, err := newRemoteResolver().resolvePointerInDocument(generic, pointer)
	if err != nil {
		return nil, err
	}
	fragmentJSON, err := json.Marshal(fragment)
	if err != nil {
		return nil, err
	}
	return ParseSchema(fragmentJSON)
}
