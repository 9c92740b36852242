package rewrite

import (
	"fmt"
	"strings"
)

// 🔧 Templates holds the substitution values the built-in rules interpolate.
// A Templates value is built once per run (normally from the loaded config)
// and passed into the rule constructors; the rules themselves hold no mutable
// state.
type Templates struct {
	ModelID           string // target model identifier
	BaseURL           string // OpenAI-compatible endpoint
	APIKeyEnv         string // environment variable holding the API key
	APIKeyPlaceholder string // fallback shown when the env var is unset

	AgentsVersion string // pinned strands-agents version for install cells
	ToolsVersion  string // pinned strands-agents-tools version
	OpenAIVersion string // pinned openai client version

	// DefaultTemperature is the literal emitted when the original model
	// construction carries no temperature parameter.
	DefaultTemperature string
}

// 📦 DefaultExtraCandidates are the notebook-specific packages probed for
// when rewriting an install cell
var DefaultExtraCandidates = []string{"yfinance", "matplotlib", "pandas", "pydantic"}

// 🏭 DefaultTemplates returns the Cohere migration profile
func DefaultTemplates() Templates {
	return Templates{
		ModelID:            "command-a-03-2025",
		BaseURL:            "https://api.cohere.ai/compatibility/v1",
		APIKeyEnv:          "COHERE_API_KEY",
		APIKeyPlaceholder:  "<COHERE_API_KEY>",
		AgentsVersion:      "1.7.1",
		ToolsVersion:       "0.2.6",
		OpenAIVersion:      "1.59.7",
		DefaultTemperature: "0.0",
	}
}

// 📎 Param is one model parameter carried over from the original
// construction into the params map.
type Param struct {
	Name  string
	Value string
}

// 📝 ModelBlock renders the replacement model construction. The shape is
// fixed: the temperature and any carried-over parameters land in the params
// map, everything else is template values.
func (t Templates) ModelBlock(temperature string, carried []Param) string {
	if temperature == "" {
		temperature = t.DefaultTemperature
	}

	var params strings.Builder
	fmt.Fprintf(&params, "        \"temperature\": %s,\n", temperature)
	params.WriteString("        \"stream_options\": None")
	for _, p := range carried {
		fmt.Fprintf(&params, ",\n        %q: %s", p.Name, p.Value)
	}

	return fmt.Sprintf(`OpenAIModel(
    client_args={
        "api_key": os.environ.get(%q, %q),
        "base_url": %q,
    },
    model_id=%q,
    params={
%s
    }
)`, t.APIKeyEnv, t.APIKeyPlaceholder, t.BaseURL, t.ModelID, params.String())
}

// 📝 InstallCell renders the inline pip-install cell that replaces a
// "pip install -r requirements.txt" cell in hosted-notebook conversions.
// Extra packages are appended one per continuation line.
func (t Templates) InstallCell(extras []string) string {
	var b strings.Builder
	b.WriteString("# Install required dependencies for Google Colab\n")
	fmt.Fprintf(&b, "!pip install -q strands-agents[openai]==%s \\\n", t.AgentsVersion)
	fmt.Fprintf(&b, "             strands-agents-tools==%s \\\n", t.ToolsVersion)
	fmt.Fprintf(&b, "             openai==%s", t.OpenAIVersion)
	for _, pkg := range extras {
		fmt.Fprintf(&b, " \\\n             %s", pkg)
	}
	b.WriteString("\n\nprint(\"✓ All packages installed successfully!\")")
	return b.String()
}
