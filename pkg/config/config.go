// Package config loads the conversion profile for a run. The defaults
// reproduce the Bedrock-to-Cohere migration exactly; a config file only
// needs to state what differs.
package config

import (
	"path/filepath"

	"gitlab.com/tozd/go/errors"

	"github.com/walteh/convertrc/pkg/rewrite"
)

// 📚 Config is the complete run configuration
type Config struct {
	Root            string   `json:"root,omitempty" yaml:"root,omitempty" hcl:"root,optional"`
	Excludes        []string `json:"excludes,omitempty" yaml:"excludes,omitempty" hcl:"excludes,optional"`
	ReportPath      string   `json:"report_path,omitempty" yaml:"report_path,omitempty" hcl:"report_path,optional"`
	ConvertedSuffix string   `json:"converted_suffix,omitempty" yaml:"converted_suffix,omitempty" hcl:"converted_suffix,optional"`
	DryRun          bool     `json:"dry_run,omitempty" yaml:"dry_run,omitempty" hcl:"dry_run,optional"`
	Async           bool     `json:"async,omitempty" yaml:"async,omitempty" hcl:"async,optional"`

	Profile *Profile `json:"profile,omitempty" yaml:"profile,omitempty" hcl:"profile,block"`
	Install *Install `json:"install,omitempty" yaml:"install,omitempty" hcl:"install,block"`

	location string // path the config was loaded from, if any
}

// 🎛️ Profile describes the target model endpoint and pinned versions
type Profile struct {
	ModelID            string `json:"model_id,omitempty" yaml:"model_id,omitempty" hcl:"model_id,optional"`
	BaseURL            string `json:"base_url,omitempty" yaml:"base_url,omitempty" hcl:"base_url,optional"`
	APIKeyEnv          string `json:"api_key_env,omitempty" yaml:"api_key_env,omitempty" hcl:"api_key_env,optional"`
	APIKeyPlaceholder  string `json:"api_key_placeholder,omitempty" yaml:"api_key_placeholder,omitempty" hcl:"api_key_placeholder,optional"`
	AgentsVersion      string `json:"agents_version,omitempty" yaml:"agents_version,omitempty" hcl:"agents_version,optional"`
	ToolsVersion       string `json:"tools_version,omitempty" yaml:"tools_version,omitempty" hcl:"tools_version,optional"`
	OpenAIVersion      string `json:"openai_version,omitempty" yaml:"openai_version,omitempty" hcl:"openai_version,optional"`
	DefaultTemperature string `json:"default_temperature,omitempty" yaml:"default_temperature,omitempty" hcl:"default_temperature,optional"`
}

// 📦 Install configures install-cell rewriting
type Install struct {
	// ExtraCandidates are package names probed for in each notebook and
	// pinned into its rewritten install cell when referenced
	ExtraCandidates []string `json:"extra_candidates,omitempty" yaml:"extra_candidates,omitempty" hcl:"extra_candidates,optional"`
}

// 🏭 Default returns the configuration of the original Cohere migration
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Location returns the path the config was loaded from, or "" for defaults
func (cfg *Config) Location() string {
	return cfg.location
}

// 🔍 Validate checks the configuration and fills in defaults
func (cfg *Config) Validate() error {
	cfg.applyDefaults()

	if cfg.Profile.ModelID == "" {
		return errors.New("profile.model_id is required")
	}
	if cfg.Profile.BaseURL == "" {
		return errors.New("profile.base_url is required")
	}
	if cfg.Profile.APIKeyEnv == "" {
		return errors.New("profile.api_key_env is required")
	}

	cfg.Root = filepath.Clean(cfg.Root)
	return nil
}

func (cfg *Config) applyDefaults() {
	if cfg.Root == "" {
		cfg.Root = "."
	}
	if cfg.ConvertedSuffix == "" {
		cfg.ConvertedSuffix = "_cohere"
	}
	if cfg.ReportPath == "" {
		cfg.ReportPath = "COHERE_CONVERSION_REPORT.md"
	}
	if cfg.Profile == nil {
		cfg.Profile = &Profile{}
	}
	if cfg.Install == nil {
		cfg.Install = &Install{}
	}

	tpl := rewrite.DefaultTemplates()
	defaultStr(&cfg.Profile.ModelID, tpl.ModelID)
	defaultStr(&cfg.Profile.BaseURL, tpl.BaseURL)
	defaultStr(&cfg.Profile.APIKeyEnv, tpl.APIKeyEnv)
	defaultStr(&cfg.Profile.APIKeyPlaceholder, tpl.APIKeyPlaceholder)
	defaultStr(&cfg.Profile.AgentsVersion, tpl.AgentsVersion)
	defaultStr(&cfg.Profile.ToolsVersion, tpl.ToolsVersion)
	defaultStr(&cfg.Profile.OpenAIVersion, tpl.OpenAIVersion)
	defaultStr(&cfg.Profile.DefaultTemperature, tpl.DefaultTemperature)

	if cfg.Install.ExtraCandidates == nil {
		cfg.Install.ExtraCandidates = rewrite.DefaultExtraCandidates
	}
}

func defaultStr(field *string, fallback string) {
	if *field == "" {
		*field = fallback
	}
}

// 🎯 Templates builds the immutable template values the rewrite rules use
func (cfg *Config) Templates() rewrite.Templates {
	return rewrite.Templates{
		ModelID:            cfg.Profile.ModelID,
		BaseURL:            cfg.Profile.BaseURL,
		APIKeyEnv:          cfg.Profile.APIKeyEnv,
		APIKeyPlaceholder:  cfg.Profile.APIKeyPlaceholder,
		AgentsVersion:      cfg.Profile.AgentsVersion,
		ToolsVersion:       cfg.Profile.ToolsVersion,
		OpenAIVersion:      cfg.Profile.OpenAIVersion,
		DefaultTemperature: cfg.Profile.DefaultTemperature,
	}
}
