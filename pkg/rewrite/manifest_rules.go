package rewrite

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// strandsSpecifier matches a strands-agents requirement line that does
	// not yet carry the [openai] extra, pinned or not
	strandsSpecifier = regexp.MustCompile(`(?m)^strands-agents(==\S+)?[ \t]*$`)

	// openaiPinned matches an existing openai pin anywhere in the manifest
	openaiPinned = regexp.MustCompile(`(?m)^openai==`)
)

// 🏭 ManifestRules builds the ordered rule set applied to a requirements
// manifest as a whole. The first rule rewrites lines, the append rules add
// missing pins at the end.
func ManifestRules(tpl Templates) *RuleSet {
	return NewRuleSet(
		strandsExtraRule(),
		appendOpenAIRule(tpl),
		appendToolsRule(tpl),
	)
}

// strandsExtraRule rewrites `strands-agents==X` to
// `strands-agents[openai]==X`. Already-converted lines contain the extra and
// no longer match.
func strandsExtraRule() Rule {
	return Rule{
		Name: "strands-openai-extra",
		Matches: func(text string) bool {
			return strandsSpecifier.MatchString(text)
		},
		Apply: func(text string) string {
			return strandsSpecifier.ReplaceAllString(text, "strands-agents[openai]$1")
		},
	}
}

// appendOpenAIRule appends the pinned openai client when the manifest uses
// strands-agents but carries no openai pin of its own.
func appendOpenAIRule(tpl Templates) Rule {
	return Rule{
		Name: "append-openai",
		Matches: func(text string) bool {
			return strings.Contains(text, "strands-agents") &&
				!openaiPinned.MatchString(text)
		},
		Apply: func(text string) string {
			return appendLine(text, fmt.Sprintf("openai==%s", tpl.OpenAIVersion))
		},
	}
}

// appendToolsRule appends the pinned strands-agents-tools package alongside
// strands-agents when it is missing.
func appendToolsRule(tpl Templates) Rule {
	return Rule{
		Name: "append-strands-tools",
		Matches: func(text string) bool {
			return strings.Contains(text, "strands-agents") &&
				!strings.Contains(text, "strands-agents-tools")
		},
		Apply: func(text string) string {
			return appendLine(text, fmt.Sprintf("strands-agents-tools==%s", tpl.ToolsVersion))
		},
	}
}

// appendLine adds a line to the end of the manifest, keeping it
// newline-terminated.
func appendLine(text, line string) string {
	if text != "" && !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	return text + line + "\n"
}
