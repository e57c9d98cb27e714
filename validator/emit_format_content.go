package validator

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	rootschema "github.com/kestrelschema/jsonschema"
)

// emitFormat implements §4.4.13. With format assertion disabled for the
// active dialect, the keyword is still recorded as an annotation by the
// data model but produces no check; callers that never enable assertion
// (2019-09+'s default) get a no-op here.
func (c *Compiler) emitFormat(node *rootschema.Schema, dialect rootschema.Dialect) Interface {
	name := node.Format()
	if name == "" || !c.opts.ResolvedFormatAssertion(dialect) {
		return nil
	}
	if !keywordEnabled(dialect, "format") {
		return nil
	}
	fn, ok := c.formats.Lookup(name)
	if !ok {
		return nil
	}
	return Func(func(ctx *Context) bool {
		s, ok := ctx.Value.(string)
		if !ok {
			return true
		}
		if !fn(s) {
			return ctx.fail(fmt.Sprintf("value does not match format %q", name), "format")
		}
		return true
	})
}

// emitContent implements contentEncoding/contentMediaType/contentSchema
// (§4.4.14). Only base64 decoding and application/json media-type
// parsing are implemented, matching the data model's required subset;
// an unrecognized encoding or media type is a no-op, not an error.
func (c *Compiler) emitContent(node *rootschema.Schema, dialect rootschema.Dialect) Interface {
	encoding := node.ContentEncoding()
	mediaType := node.ContentMediaType()
	contentSchema := node.ContentSchema()
	if encoding == "" && mediaType == "" && contentSchema == nil {
		return nil
	}
	if !c.opts.ResolvedContentAssertion(dialect) {
		return nil
	}
	if !keywordEnabled(dialect, "contentMediaType") {
		return nil
	}

	var schemaProc Interface
	if contentSchema != nil {
		schemaProc = c.compileNode(contentSchema, dialect)
	}

	return Func(func(ctx *Context) bool {
		s, ok := ctx.Value.(string)
		if !ok {
			return true
		}

		decoded := []byte(s)
		if encoding == "base64" {
			d, err := base64.StdEncoding.DecodeString(s)
			if err != nil {
				return ctx.fail("value is not valid base64", "contentEncoding")
			}
			decoded = d
		}

		if mediaType == "application/json" {
			var parsed any
			if err := json.Unmarshal(decoded, &parsed); err != nil {
				return ctx.fail("decoded content is not valid JSON", "contentMediaType")
			}
			if schemaProc != nil {
				nested := &Context{Value: parsed, Sink: ctx.Sink, Path: ctx.Path, Scope: ctx.Scope}
				if !schemaProc.Validate(nested) {
					return false
				}
			}
		}
		return true
	})
}
