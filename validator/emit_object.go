package validator

import (
	"fmt"
	"regexp"

	rootschema "github.com/kestrelschema/jsonschema"
)

func (c *Compiler) emitObjectConstraints(node *rootschema.Schema) Interface {
	required := node.Required()
	minProps := node.MinProperties()
	maxProps := node.MaxProperties()
	if len(required) == 0 && minProps == nil && maxProps == nil {
		return nil
	}

	return Func(func(ctx *Context) bool {
		obj, ok := ctx.Value.(map[string]any)
		if !ok {
			return true
		}
		for _, key := range required {
			if _, ok := obj[key]; !ok {
				return ctx.fail(fmt.Sprintf("missing required property %q", key), "required")
			}
		}
		if minProps != nil && len(obj) < *minProps {
			return ctx.fail(fmt.Sprintf("object has %d properties, want at least %d", len(obj), *minProps), "minProperties")
		}
		if maxProps != nil && len(obj) > *maxProps {
			return ctx.fail(fmt.Sprintf("object has %d properties, want at most %d", len(obj), *maxProps), "maxProperties")
		}
		return true
	})
}

// emitProperties handles properties, patternProperties, and
// additionalProperties together (§4.4.9) since additionalProperties'
// scope is defined as "every key not claimed by properties or
// patternProperties".
func (c *Compiler) emitProperties(node *rootschema.Schema, dialect rootschema.Dialect) Interface {
	properties := node.Properties()
	patternProperties := node.PatternProperties()
	additional := node.AdditionalProperties()

	if len(properties) == 0 && len(patternProperties) == 0 && additional == nil {
		return nil
	}

	propProcs := make(map[string]Interface, len(properties))
	for name, sub := range properties {
		propProcs[name] = c.compileNode(sub, dialect)
	}

	type patternProc struct {
		re   *regexp.Regexp
		proc Interface
	}
	patProcs := make([]patternProc, 0, len(patternProperties))
	for pattern, sub := range patternProperties {
		re, err := regexp.Compile(pattern)
		if err != nil {
			continue
		}
		patProcs = append(patProcs, patternProc{re: re, proc: c.compileNode(sub, dialect)})
	}

	rejectsAdditional := additional != nil && additional.IsBoolean() && !additional.BoolValue()
	var additionalProc Interface
	if additional != nil {
		additionalProc = c.compileNode(additional, dialect)
	}

	return Func(func(ctx *Context) bool {
		obj, ok := ctx.Value.(map[string]any)
		if !ok {
			return true
		}
		for key, val := range obj {
			claimed := false
			if proc, ok := propProcs[key]; ok {
				claimed = true
				child := ctx.child(val, PathElem{Key: key})
				if !proc.Validate(child) {
					return false
				}
			}
			for _, pp := range patProcs {
				if pp.re.MatchString(key) {
					claimed = true
					child := ctx.child(val, PathElem{Key: key})
					if !pp.proc.Validate(child) {
						return false
					}
				}
			}
			if claimed || additionalProc == nil {
				continue
			}
			child := ctx.child(val, PathElem{Key: key})
			if rejectsAdditional {
				return child.fail(fmt.Sprintf("additional property %q is not allowed", key), "additionalProperties")
			}
			if !additionalProc.Validate(child) {
				return false
			}
		}
		return true
	})
}

func (c *Compiler) emitPropertyNames(node *rootschema.Schema, dialect rootschema.Dialect) Interface {
	propertyNames := node.PropertyNames()
	if propertyNames == nil {
		return nil
	}
	proc := c.compileNode(propertyNames, dialect)
	return Func(func(ctx *Context) bool {
		obj, ok := ctx.Value.(map[string]any)
		if !ok {
			return true
		}
		for key := range obj {
			child := ctx.child(key, PathElem{Key: key})
			if !proc.Validate(child) {
				return false
			}
		}
		return true
	})
}

func (c *Compiler) emitDependentRequired(node *rootschema.Schema) Interface {
	dep := node.DependentRequired()
	if len(dep) == 0 {
		return nil
	}
	return Func(func(ctx *Context) bool {
		obj, ok := ctx.Value.(map[string]any)
		if !ok {
			return true
		}
		for trigger, required := range dep {
			if _, present := obj[trigger]; !present {
				continue
			}
			for _, key := range required {
				if _, ok := obj[key]; !ok {
					return ctx.fail(fmt.Sprintf("property %q requires property %q", trigger, key), "dependentRequired")
				}
			}
		}
		return true
	})
}

func (c *Compiler) emitDependentSchemas(node *rootschema.Schema, dialect rootschema.Dialect) Interface {
	dep := node.DependentSchemas()
	if len(dep) == 0 {
		return nil
	}
	procs := make(map[string]Interface, len(dep))
	for trigger, sub := range dep {
		procs[trigger] = c.compileNode(sub, dialect)
	}
	return Func(func(ctx *Context) bool {
		obj, ok := ctx.Value.(map[string]any)
		if !ok {
			return true
		}
		for trigger, proc := range procs {
			if _, present := obj[trigger]; !present {
				continue
			}
			if !proc.Validate(ctx) {
				return false
			}
		}
		return true
	})
}
