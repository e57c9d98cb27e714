// Package format defines the standalone predicates the "format" keyword
// dispatches to. Every predicate has signature func(string) bool and
// returns true for non-matching input types at the call site, not here:
// the registry only ever sees strings, because the compiled procedure
// guards the call on the value already being a string.
package format

import (
	"sync"
)

// Func is a format validator. It reports whether s conforms to the named
// format.
type Func func(s string) bool

// Registry is a lookup table from format name to validator. The zero
// value is empty; use Default() for the registry seeded with every
// format named in the data model's format registry list.
type Registry struct {
	mu    sync.RWMutex
	funcs map[string]Func
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{funcs: map[string]Func{}}
}

// Register adds or replaces the validator for name.
func (r *Registry) Register(name string, fn Func) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.funcs[name] = fn
}

// Lookup returns the validator for name and whether one is registered.
// An unregistered name is a no-op at the call site, per §4.4.13.
func (r *Registry) Lookup(name string) (Func, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.funcs[name]
	return fn, ok
}

// Clone returns an independent copy of r, so that a compile-time
// WithFormat override doesn't mutate the shared default registry.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := NewRegistry()
	for name, fn := range r.funcs {
		out.funcs[name] = fn
	}
	return out
}

var defaultRegistry = buildDefaultRegistry()

// RegisterDefault adds or replaces a validator in the shared default
// registry, affecting every future Default()/Fast() call.
func RegisterDefault(name string, fn Func) { defaultRegistry.Register(name, fn) }

// Default returns a fresh copy of the built-in registry: date, time,
// date-time, duration, email, idn-email, hostname, idn-hostname, ipv4,
// ipv6, uri, uri-reference, uri-template, iri, iri-reference, uuid,
// json-pointer, relative-json-pointer, regex.
func Default() *Registry { return defaultRegistry.Clone() }

// Fast returns a copy of the default registry with the accurate
// date/time/date-time validators swapped for cheap regex approximations,
// per the data model's "fast mode" note in §6.
func Fast() *Registry {
	r := Default()
	r.Register("date", fastDateFormat)
	r.Register("time", fastTimeFormat)
	r.Register("date-time", fastDateTimeFormat)
	return r
}

func buildDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("date", dateFormat)
	r.Register("time", timeFormat)
	r.Register("date-time", dateTimeFormat)
	r.Register("duration", durationFormat)
	r.Register("email", emailFormat)
	r.Register("idn-email", idnEmailFormat)
	r.Register("hostname", hostnameFormat)
	r.Register("idn-hostname", idnHostnameFormat)
	r.Register("ipv4", ipv4Format)
	r.Register("ipv6", ipv6Format)
	r.Register("uri", uriFormat)
	r.Register("uri-reference", uriReferenceFormat)
	r.Register("uri-template", uriTemplateFormat)
	r.Register("iri", iriFormat)
	r.Register("iri-reference", iriReferenceFormat)
	r.Register("uuid", uuidFormat)
	r.Register("json-pointer", jsonPointerFormat)
	r.Register("relative-json-pointer", relativeJSONPointerFormat)
	r.Register("regex", regexFormat)
	return r
}
