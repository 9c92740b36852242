package rewrite

import (
	"regexp"
	"strings"
)

const (
	legacyImport          = "from strands.models import BedrockModel"
	legacySubmoduleImport = "from strands.models.bedrock import BedrockModel"
	openaiImport          = "from strands.models.openai import OpenAIModel"
)

var (
	// bedrockCall matches a full legacy construction with a model_id
	// argument. [^)]* spans newlines, so multi-line calls match too.
	bedrockCall = regexp.MustCompile(`BedrockModel\s*\(\s*model_id\s*=\s*["']([^"']+)["']([^)]*)\)`)

	// bedrockLoose matches any legacy construction, used both as the
	// predicate and as the fallback when the call carries no model_id
	bedrockLoose = regexp.MustCompile(`BedrockModel\s*\(`)

	// temperatureArg captures the numeric temperature literal
	temperatureArg = regexp.MustCompile(`temperature\s*=\s*([0-9.]+)`)

	// guardrailArgs are provider-specific parameters with no equivalent on
	// the target endpoint; they are deleted from the captured argument list
	guardrailArgs = []*regexp.Regexp{
		regexp.MustCompile(`,?\s*guardrail_identifier\s*=\s*[^,)]+`),
		regexp.MustCompile(`,?\s*guardrail_version\s*=\s*[^,)]+`),
		regexp.MustCompile(`,?\s*guardrailConfig\s*=\s*\{[^}]+\}`),
	}
)

// 🏭 NotebookRules builds the ordered rule set applied to every code cell.
// The extras slice lists additional packages to pin into a rewritten install
// cell; callers detect them from the notebook before building the set (see
// DetectExtras), so the rules themselves stay pure.
func NotebookRules(tpl Templates, extras []string) *RuleSet {
	return NewRuleSet(
		installCellRule(tpl, extras),
		importRule(),
		submoduleImportRule(),
		modelRule(tpl),
		osImportRule(tpl),
	)
}

// 🏭 InstallOnlyRules builds the rule set for hosted-notebook compatibility
// runs, which rewrite the dependency-install cell and nothing else.
func InstallOnlyRules(tpl Templates, extras []string) *RuleSet {
	return NewRuleSet(installCellRule(tpl, extras))
}

// installCellRule replaces a "pip install -r requirements.txt" cell with the
// inline install cell. The rewritten cell no longer mentions
// requirements.txt, so the predicate cannot fire twice.
func installCellRule(tpl Templates, extras []string) Rule {
	return Rule{
		Name: "install-cell",
		Matches: func(text string) bool {
			return strings.Contains(text, "requirements.txt") &&
				strings.Contains(text, "pip install")
		},
		Apply: func(text string) string {
			return tpl.InstallCell(extras)
		},
	}
}

// importRule swaps the legacy import for the OpenAI-compatible one and pulls
// in os for the env-var lookup the new construction needs.
func importRule() Rule {
	return Rule{
		Name: "bedrock-import",
		Matches: func(text string) bool {
			return strings.Contains(text, legacyImport)
		},
		Apply: func(text string) string {
			return strings.ReplaceAll(text, legacyImport, openaiImport+"\nimport os")
		},
	}
}

// submoduleImportRule handles the `strands.models.bedrock` import form
func submoduleImportRule() Rule {
	return Rule{
		Name: "bedrock-submodule-import",
		Matches: func(text string) bool {
			return strings.Contains(text, legacySubmoduleImport)
		},
		Apply: func(text string) string {
			return strings.ReplaceAll(text, legacySubmoduleImport, openaiImport)
		},
	}
}

// modelRule replaces a legacy model construction with the fixed-shape
// OpenAIModel block. Guardrail parameters are stripped from the captured
// argument list first; the temperature and every remaining parameter are
// carried into the params map, with temperature defaulting to the
// configured literal when absent.
func modelRule(tpl Templates) Rule {
	return Rule{
		Name: "bedrock-model",
		Matches: func(text string) bool {
			return bedrockLoose.MatchString(text)
		},
		Apply: func(text string) string {
			if bedrockCall.MatchString(text) {
				// In-place call replacement preserves any surrounding
				// assignment and the rest of the cell.
				return bedrockCall.ReplaceAllStringFunc(text, func(call string) string {
					m := bedrockCall.FindStringSubmatch(call)
					args := m[2]
					for _, re := range guardrailArgs {
						args = re.ReplaceAllString(args, "")
					}
					temperature, carried := parseParams(args)
					return tpl.ModelBlock(temperature, carried)
				})
			}

			// No model_id argument to anchor on: replace the whole cell,
			// keeping whatever temperature it declared.
			return "cohere_model = " + tpl.ModelBlock(extractTemperature(text), nil)
		},
	}
}

// osImportRule prepends `import os` when the rewritten cell reads the API
// key from the environment but never imports os.
func osImportRule(tpl Templates) Rule {
	return Rule{
		Name: "os-import",
		Matches: func(text string) bool {
			return strings.Contains(text, tpl.APIKeyEnv) &&
				!strings.Contains(text, "import os")
		},
		Apply: func(text string) string {
			return "import os\n" + text
		},
	}
}

// extractTemperature returns the captured temperature literal, or "" when
// the text carries none (the template substitutes its default).
func extractTemperature(text string) string {
	if m := temperatureArg.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}

// parseParams splits a captured keyword-argument list into the temperature
// literal and the remaining parameters, which survive into the rewritten
// params map.
func parseParams(args string) (temperature string, carried []Param) {
	for _, segment := range splitArgs(args) {
		name, value, ok := strings.Cut(segment, "=")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		value = strings.TrimSpace(value)
		if name == "" || value == "" {
			continue
		}
		if name == "temperature" {
			temperature = value
			continue
		}
		carried = append(carried, Param{Name: name, Value: value})
	}
	return temperature, carried
}

// splitArgs splits an argument list on top-level commas, leaving commas
// inside brackets or string literals alone.
func splitArgs(args string) []string {
	var (
		segments []string
		start    int
		depth    int
		quote    rune
	)

	flush := func(end int) {
		if segment := strings.TrimSpace(args[start:end]); segment != "" {
			segments = append(segments, segment)
		}
		start = end + 1
	}

	for i, r := range args {
		if quote != 0 {
			if r == quote {
				quote = 0
			}
			continue
		}
		switch r {
		case '\'', '"':
			quote = r
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		case ',':
			if depth == 0 {
				flush(i)
			}
		}
	}
	flush(len(args))

	return segments
}

// 🔍 DetectExtras reports which candidate packages a notebook references,
// in candidate order. Used to pin notebook-specific packages (plotting,
// market data) into the rewritten install cell.
func DetectExtras(notebookText string, candidates []string) []string {
	var extras []string
	for _, pkg := range candidates {
		if strings.Contains(notebookText, pkg) {
			extras = append(extras, pkg)
		}
	}
	return extras
}
