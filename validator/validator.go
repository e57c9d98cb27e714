// Package validator holds the compiled procedure runtime (C8): the
// Interface every compiled schema node presents, the per-call Context
// threaded through sub-calls, and the dynamic-scope stack $dynamicRef
// needs. The compiler itself (C6) and its keyword emitters (C5) also live
// here, next to the runtime they produce.
package validator

import (
	"fmt"
	"strconv"
	"strings"
)

// Interface is the procedure every compiled schema node presents. A
// top-level Validate call owns ctx.Scope; nested calls reuse it, pushing
// and popping resource frames as resources are entered and left.
type Interface interface {
	Validate(ctx *Context) bool
}

// Func adapts a plain function to Interface.
type Func func(ctx *Context) bool

func (f Func) Validate(ctx *Context) bool { return f(ctx) }

// PathElem is one segment of the path to an offending value: either a
// property name or an array index.
type PathElem struct {
	Key      string
	Index    int
	IsIndex  bool
}

// Path renders a slice of PathElem the way §6 specifies: ".name" for
// object keys, "[index]" for array indices, relative to the root value.
func Path(elems []PathElem) string {
	var b strings.Builder
	for _, e := range elems {
		if e.IsIndex {
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(e.Index))
			b.WriteByte(']')
		} else {
			b.WriteByte('.')
			b.WriteString(e.Key)
		}
	}
	if b.Len() == 0 {
		return "$"
	}
	return b.String()
}

// ErrorRecord is one validation failure, per the error record shape in §6.
type ErrorRecord struct {
	Path    string
	Message string
	Keyword string
	Value   any
}

func (e ErrorRecord) Error() string {
	return fmt.Sprintf("%s: %s (keyword %q)", e.Path, e.Message, e.Keyword)
}

// Sink collects ErrorRecords. Per §7, a procedure called with a sink
// still returns false on the first failing check, appending exactly one
// record for that call; nested dedicated procedures (anyOf/oneOf/not/if
// branches) run with no sink (see silent), so a probe failure doesn't
// pollute the caller's sink.
type Sink struct {
	Errors []ErrorRecord
}

func (s *Sink) report(path []PathElem, message, keyword string, value any) {
	if s == nil {
		return
	}
	s.Errors = append(s.Errors, ErrorRecord{Path: Path(path), Message: message, Keyword: keyword, Value: value})
}

// Context is threaded through every Validate call: the value under test,
// an optional error sink, the path accumulated so far, and the dynamic
// scope stack used by $dynamicRef.
type Context struct {
	Value any
	Sink  *Sink
	Path  []PathElem
	Scope *DynamicScope
}

// fail reports message/keyword to ctx.Sink (if any) and returns false,
// implementing the short-circuit-on-first-failure policy.
func (ctx *Context) fail(message, keyword string) bool {
	ctx.Sink.report(ctx.Path, message, keyword, ctx.Value)
	return false
}

// child returns a Context for a nested value, appending a path segment.
func (ctx *Context) child(value any, elem PathElem) *Context {
	path := make([]PathElem, len(ctx.Path)+1)
	copy(path, ctx.Path)
	path[len(path)-1] = elem
	return &Context{Value: value, Sink: ctx.Sink, Path: path, Scope: ctx.Scope}
}

// silent returns a Context sharing Value/Path/Scope but with no sink,
// used for probe calls (anyOf/oneOf/if/not) whose failure must not
// surface in the caller's error list.
func (ctx *Context) silent() *Context {
	return &Context{Value: ctx.Value, Sink: nil, Path: ctx.Path, Scope: ctx.Scope}
}

// alwaysTrue is the compiled form of the boolean schema `true`.
var alwaysTrue Interface = Func(func(ctx *Context) bool { return true })

// alwaysFalse is the compiled form of the boolean schema `false`.
var alwaysFalse Interface = Func(func(ctx *Context) bool {
	return ctx.fail("value rejected by a false schema", "false")
})
