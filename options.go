package schema

// CoerceOptions controls per-type loose coercion performed before a value
// is checked against "type". Each flag, when true, allows a value of a
// different but JSON-adjacent type to stand in (e.g. the string "42" for
// an integer schema).
type CoerceOptions struct {
	String  bool
	Number  bool
	Integer bool
	Boolean bool
	Null    bool
	Array   bool
}

// anyCoerceEnabled reports whether at least one per-type flag is set.
func (c CoerceOptions) anyCoerceEnabled() bool {
	return c.String || c.Number || c.Integer || c.Boolean || c.Null || c.Array
}

// Options is the compile-time configuration record from the data model:
// format/content assertion toggles, legacy-ref mode, the remotes map, the
// fallback dialect, and coercion. All fields default to "auto", resolved
// against the detected dialect once Compile sees the schema's $schema.
type Options struct {
	formatAssertion  *bool
	contentAssertion *bool
	legacyRef        *bool
	remotes          map[string]*Schema
	defaultMeta      string
	coerce           CoerceOptions
	coerceSet        bool
	formats          map[string]FormatFunc
}

// CompileOption configures a Compile call. Functional options, the way
// the teacher's generated schema builders accept a variadic option list.
type CompileOption interface {
	applyCompileOption(*Options)
}

type compileOptionFunc func(*Options)

func (f compileOptionFunc) applyCompileOption(o *Options) { f(o) }

// WithFormatAssertion forces format validation on or off, overriding the
// dialect's auto default (true for legacy drafts, false for 2019-09+).
func WithFormatAssertion(enabled bool) CompileOption {
	return compileOptionFunc(func(o *Options) { o.formatAssertion = &enabled })
}

// WithContentAssertion forces contentEncoding/contentMediaType validation
// on or off, overriding the dialect's auto default.
func WithContentAssertion(enabled bool) CompileOption {
	return compileOptionFunc(func(o *Options) { o.contentAssertion = &enabled })
}

// WithLegacyRef forces legacy $ref-dominates-siblings semantics on or off,
// overriding the dialect's auto default (true for drafts ≤ 07).
func WithLegacyRef(enabled bool) CompileOption {
	return compileOptionFunc(func(o *Options) { o.legacyRef = &enabled })
}

// WithRemote registers a schema document under an absolute URI so that a
// $ref naming that URI resolves without a network or filesystem fetch.
func WithRemote(uri string, doc *Schema) CompileOption {
	return compileOptionFunc(func(o *Options) {
		if o.remotes == nil {
			o.remotes = map[string]*Schema{}
		}
		o.remotes[uri] = doc
	})
}

// WithRemotes registers every entry of docs, as WithRemote.
func WithRemotes(docs map[string]*Schema) CompileOption {
	return compileOptionFunc(func(o *Options) {
		if o.remotes == nil {
			o.remotes = map[string]*Schema{}
		}
		for uri, doc := range docs {
			o.remotes[uri] = doc
		}
	})
}

// WithDefaultMeta sets the dialect used when a schema omits "$schema".
func WithDefaultMeta(uri string) CompileOption {
	return compileOptionFunc(func(o *Options) { o.defaultMeta = uri })
}

// WithCoerce enables or disables every coercion flag at once.
func WithCoerce(enabled bool) CompileOption {
	return compileOptionFunc(func(o *Options) {
		o.coerce = CoerceOptions{String: enabled, Number: enabled, Integer: enabled, Boolean: enabled, Null: enabled, Array: enabled}
		o.coerceSet = true
	})
}

// WithCoerceOptions sets per-type coercion flags individually.
func WithCoerceOptions(c CoerceOptions) CompileOption {
	return compileOptionFunc(func(o *Options) { o.coerce = c; o.coerceSet = true })
}

// WithFormat registers a custom format validator under name, shadowing or
// extending the default registry for this compile call only. Grounded on
// kaptinlin-jsonschema's Compiler.RegisterFormat.
func WithFormat(name string, fn FormatFunc) CompileOption {
	return compileOptionFunc(func(o *Options) {
		if o.formats == nil {
			o.formats = map[string]FormatFunc{}
		}
		o.formats[name] = fn
	})
}

// NewOptions resolves a CompileOption list into an Options record, the
// way Compile does internally before it starts walking the schema.
func NewOptions(opts []CompileOption) *Options {
	o := &Options{defaultMeta: Version}
	for _, opt := range opts {
		opt.applyCompileOption(o)
	}
	return o
}

// DefaultMeta returns the dialect URI used when a schema omits $schema.
func (o *Options) DefaultMeta() string { return o.defaultMeta }

// Remotes returns the registered remotes map (possibly nil).
func (o *Options) Remotes() map[string]*Schema { return o.remotes }

// Formats returns any per-call format overrides (possibly nil).
func (o *Options) Formats() map[string]FormatFunc { return o.formats }

// Coerce returns the resolved coercion flags and whether the caller set
// them explicitly (as opposed to leaving every flag at its zero value).
func (o *Options) Coerce() (CoerceOptions, bool) { return o.coerce, o.coerceSet }

// ResolvedFormatAssertion applies the dialect's auto default when the
// caller did not explicitly set the option.
func (o *Options) ResolvedFormatAssertion(d Dialect) bool {
	if o.formatAssertion != nil {
		return *o.formatAssertion
	}
	return d.DefaultFormatAssertion()
}

// ResolvedContentAssertion applies the dialect's auto default when the
// caller did not explicitly set the option.
func (o *Options) ResolvedContentAssertion(d Dialect) bool {
	if o.contentAssertion != nil {
		return *o.contentAssertion
	}
	return d.DefaultContentAssertion()
}

// ResolvedLegacyRef applies the dialect's auto default when the caller
// did not explicitly set the option.
func (o *Options) ResolvedLegacyRef(d Dialect) bool {
	if o.legacyRef != nil {
		return *o.legacyRef
	}
	return d.LegacyRef()
}
