// Package rewrite implements the rule-based text rewriter that drives every
// conversion convertrc performs. A Rule pairs a predicate with a transform;
// a RuleSet applies its rules in order, each rule seeing the text as left by
// the rules before it. The engine is pure text-to-text: persistence is the
// caller's job.
package rewrite

import (
	"context"

	"github.com/rs/zerolog"
)

// 🧩 Rule is a single predicate/transform pair.
type Rule struct {
	// Name identifies the rule in logs and reports
	Name string
	// Matches reports whether the rule should fire on the given text.
	// Predicates may only inspect the text itself.
	Matches func(text string) bool
	// Apply rewrites the text. Only called when Matches returned true.
	Apply func(text string) string
}

// 📋 Result is the outcome of applying a RuleSet to a block of text
type Result struct {
	Text    string   // possibly-modified text
	Changed bool     // whether any rule fired
	Fired   []string // names of the rules that fired, in order
}

// 📚 RuleSet is an ordered sequence of rules
type RuleSet struct {
	rules []Rule
}

// 🏭 NewRuleSet creates a rule set that applies rules in the given order
func NewRuleSet(rules ...Rule) *RuleSet {
	return &RuleSet{rules: rules}
}

// 📏 Len returns the number of rules in the set
func (rs *RuleSet) Len() int {
	return len(rs.rules)
}

// 🏃 Apply evaluates each rule in order against the current text. A firing
// rule rewrites the text and later rules see the updated text. Rules are not
// mutually exclusive: one cell may match several.
func (rs *RuleSet) Apply(ctx context.Context, text string) Result {
	result := Result{Text: text}

	for _, rule := range rs.rules {
		if rule.Matches == nil || rule.Apply == nil {
			continue
		}
		if !rule.Matches(result.Text) {
			continue
		}

		result.Text = rule.Apply(result.Text)
		result.Changed = true
		result.Fired = append(result.Fired, rule.Name)

		zerolog.Ctx(ctx).Trace().
			Str("rule", rule.Name).
			Msg("rule fired")
	}

	return result
}
