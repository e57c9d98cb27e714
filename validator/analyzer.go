package validator

import (
	"regexp"

	rootschema "github.com/kestrelschema/jsonschema"
	"github.com/kestrelschema/jsonschema/internal/field"
)

// evaluationSummary is the static approximation the evaluation analyzer
// (C4) produces for a node's unevaluatedProperties/unevaluatedItems
// emitters: which property names and patterns are already claimed by
// sibling and composed applicators, and how many leading array positions
// are claimed by a tuple prefix.
//
// It is a conservative union, not an exact per-branch evaluation: a name
// claimed by any anyOf/oneOf branch counts as claimed even on a call
// where that branch did not end up matching. This trades perfect
// unevaluatedProperties rejection of a few adversarial schemas for a
// compile-time-only analysis with no per-call bookkeeping.
type evaluationSummary struct {
	names          map[string]bool
	patterns       []*regexp.Regexp
	maxPrefixCount int

	// conditionalNames/conditionalPatterns/conditionalPrefix hold the
	// claims contributed by a dependentSchemas branch, keyed by the
	// trigger property name: that branch only claims anything on a call
	// where the trigger is actually present in the instance, since
	// dependentSchemas itself never applies otherwise.
	conditionalNames    map[string]map[string]bool
	conditionalPatterns map[string][]*regexp.Regexp
	conditionalPrefix   map[string]int
}

func newEvaluationSummary() *evaluationSummary {
	return &evaluationSummary{
		names:               map[string]bool{},
		conditionalNames:    map[string]map[string]bool{},
		conditionalPatterns: map[string][]*regexp.Regexp{},
		conditionalPrefix:   map[string]int{},
	}
}

// claimsName reports whether name is claimed unconditionally, or by a
// dependentSchemas branch whose trigger is present in obj.
func (s *evaluationSummary) claimsName(name string, obj map[string]any) bool {
	if s.names[name] {
		return true
	}
	for _, re := range s.patterns {
		if re.MatchString(name) {
			return true
		}
	}
	for trigger, names := range s.conditionalNames {
		if _, present := obj[trigger]; present && names[name] {
			return true
		}
	}
	for trigger, patterns := range s.conditionalPatterns {
		if _, present := obj[trigger]; !present {
			continue
		}
		for _, re := range patterns {
			if re.MatchString(name) {
				return true
			}
		}
	}
	return false
}

// claimedPrefixCount returns maxPrefixCount widened by any
// dependentSchemas branch whose trigger is present in obj. obj is nil
// when the instance isn't an object, in which case no dependentSchemas
// branch ever applies and only maxPrefixCount counts.
func (s *evaluationSummary) claimedPrefixCount(obj map[string]any) int {
	claimed := s.maxPrefixCount
	for trigger, n := range s.conditionalPrefix {
		if _, present := obj[trigger]; present && n > claimed {
			claimed = n
		}
	}
	return claimed
}

// analyzeProperties walks node and the composition keywords that apply to
// the same instance (allOf, $ref/$dynamicRef, if/then/else, anyOf, oneOf)
// collecting every statically-known property name and pattern claimed
// anywhere in that reachable set.
func (c *Compiler) analyzeProperties(node *rootschema.Schema, visited map[*rootschema.Schema]bool) *evaluationSummary {
	out := newEvaluationSummary()
	c.collectProperties(node, visited, out)
	return out
}

func (c *Compiler) collectProperties(node *rootschema.Schema, visited map[*rootschema.Schema]bool, out *evaluationSummary) {
	if node == nil || node.IsBoolean() || visited[node] {
		return
	}
	visited[node] = true

	for name := range node.Properties() {
		out.names[name] = true
	}
	for pattern := range node.PatternProperties() {
		if re, err := regexp.Compile(pattern); err == nil {
			out.patterns = append(out.patterns, re)
		}
	}

	for _, sub := range node.AllOf() {
		c.collectProperties(sub, visited, out)
	}
	for _, sub := range node.AnyOf() {
		c.collectProperties(sub, visited, out)
	}
	for _, sub := range node.OneOf() {
		c.collectProperties(sub, visited, out)
	}
	if then := node.ThenSchema(); then != nil {
		c.collectProperties(then, visited, out)
	}
	if els := node.ElseSchema(); els != nil {
		c.collectProperties(els, visited, out)
	}
	if node.Has(field.Reference) {
		if target, err := c.idx.ResolveRef(node, node.Reference()); err == nil {
			c.collectProperties(target, visited, out)
		}
	}
	if node.Has(field.DynamicReference) {
		if target, _, err := c.idx.ResolveDynamicRef(node, node.DynamicReference()); err == nil {
			c.collectProperties(target, visited, out)
		}
	}
	for trigger, sub := range node.DependentSchemas() {
		branch := newEvaluationSummary()
		c.collectProperties(sub, map[*rootschema.Schema]bool{}, branch)
		if len(branch.names) > 0 {
			if out.conditionalNames[trigger] == nil {
				out.conditionalNames[trigger] = map[string]bool{}
			}
			for name := range branch.names {
				out.conditionalNames[trigger][name] = true
			}
		}
		if len(branch.patterns) > 0 {
			out.conditionalPatterns[trigger] = append(out.conditionalPatterns[trigger], branch.patterns...)
		}
	}
}

// analyzeItems mirrors analyzeProperties for prefixItems: the widest
// tuple prefix claimed anywhere in the reachable composition set.
func (c *Compiler) analyzeItems(node *rootschema.Schema, visited map[*rootschema.Schema]bool) *evaluationSummary {
	out := newEvaluationSummary()
	c.collectItems(node, visited, out)
	return out
}

func (c *Compiler) collectItems(node *rootschema.Schema, visited map[*rootschema.Schema]bool, out *evaluationSummary) {
	if node == nil || node.IsBoolean() || visited[node] {
		return
	}
	visited[node] = true

	if n := len(node.PrefixItems()); n > out.maxPrefixCount {
		out.maxPrefixCount = n
	}

	for _, sub := range node.AllOf() {
		c.collectItems(sub, visited, out)
	}
	for _, sub := range node.AnyOf() {
		c.collectItems(sub, visited, out)
	}
	for _, sub := range node.OneOf() {
		c.collectItems(sub, visited, out)
	}
	if then := node.ThenSchema(); then != nil {
		c.collectItems(then, visited, out)
	}
	if els := node.ElseSchema(); els != nil {
		c.collectItems(els, visited, out)
	}
	if node.Has(field.Reference) {
		if target, err := c.idx.ResolveRef(node, node.Reference()); err == nil {
			c.collectItems(target, visited, out)
		}
	}
	if node.Has(field.DynamicReference) {
		if target, _, err := c.idx.ResolveDynamicRef(node, node.DynamicReference()); err == nil {
			c.collectItems(target, visited, out)
		}
	}
	for trigger, sub := range node.DependentSchemas() {
		branch := newEvaluationSummary()
		c.collectItems(sub, map[*rootschema.Schema]bool{}, branch)
		if branch.maxPrefixCount > 0 {
			if branch.maxPrefixCount > out.conditionalPrefix[trigger] {
				out.conditionalPrefix[trigger] = branch.maxPrefixCount
			}
		}
	}
}
