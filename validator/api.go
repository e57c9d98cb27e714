package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lestrrat-go/blackmagic"
)

// Result is what Parse returns (§6): either the value validated cleanly,
// or the full list of ErrorRecords collected along the way.
type Result struct {
	Valid  bool
	Errors []ErrorRecord
}

// ValidationError aggregates every ErrorRecord a failed Assert call
// produced, rendered one per line.
type ValidationError struct {
	Errors []ErrorRecord
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	for i, rec := range e.Errors {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(rec.Error())
	}
	return b.String()
}

// Validate reports whether value satisfies the compiled schema, per §6's
// validate(value) -> boolean. No error sink is attached, so validation
// stops at the first failing check without building an error list.
func (cs *CompiledSchema) Validate(value any) bool {
	ctx := &Context{Value: value, Scope: NewDynamicScope()}
	return cs.proc.Validate(ctx)
}

// Assert implements §6's assert(value) -> value: nil on success, a
// *ValidationError carrying every collected failure otherwise.
func (cs *CompiledSchema) Assert(value any) error {
	result := cs.Parse(value)
	if result.Valid {
		return nil
	}
	return &ValidationError{Errors: result.Errors}
}

// Parse implements §6's parse(value) -> ok(value) | error([errors]). Per
// §7's short-circuit propagation policy, a failing call stops at the
// first failing keyword anywhere in the tree and the returned Result
// carries that single ErrorRecord, not a full multi-error report.
func (cs *CompiledSchema) Parse(value any) *Result {
	sink := &Sink{}
	ctx := &Context{Value: value, Sink: sink, Scope: NewDynamicScope()}
	ok := cs.proc.Validate(ctx)
	return &Result{Valid: ok, Errors: sink.Errors}
}

// Decode validates value and, on success, assigns it into dst (a
// pointer), the way encoding/json.Unmarshal's caller-supplied
// destination works. Assignment goes through blackmagic.AssignIfCompatible
// rather than a plain type assertion, since value's dynamic type (a
// decoded JSON tree of map[string]any/[]any/float64/...) only sometimes
// matches dst's pointed-to type exactly.
func (cs *CompiledSchema) Decode(value any, dst any) error {
	if err := cs.Assert(value); err != nil {
		return err
	}
	if err := blackmagic.AssignIfCompatible(dst, value); err != nil {
		return fmt.Errorf("jsonschema: decoding validated value: %w", err)
	}
	return nil
}

// AsValidationError unwraps err into its *ValidationError form, if any,
// the way a caller inspecting an Assert failure would.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}
