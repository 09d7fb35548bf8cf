package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"auto_blog_generator/generator"
)

// Config holds resolved configuration after merging file, env, and flags.
type Config struct {
	LLM        LLMConfig `json:"llm"`
	ServerAddr string    `json:"server_addr,omitempty"`
	LogLevel   string    `json:"log_level,omitempty"`
}

// LLMConfig selects the model endpoint. The API key is never read from the file.
type LLMConfig struct {
	Provider string `json:"provider,omitempty"`
	Model    string `json:"model,omitempty"`
	BaseURL  string `json:"base_url,omitempty"`

	APIKey string `json:"-"`
}

// Overrides are optional values from env or flags; only non-nil pointers apply.
type Overrides struct {
	Provider   *string
	Model      *string
	BaseURL    *string
	ServerAddr *string
	LogLevel   *string
}

func Default() Config {
	return Config{
		LLM: LLMConfig{
			Provider: generator.ProviderGroq,
			Model:    generator.DefaultModel,
		},
		ServerAddr: ":8080",
		LogLevel:   "info",
	}
}

// LoadFile reads a JSON config. A missing file yields the defaults.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config file: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config file: %w", err)
	}
	return cfg, nil
}

func lookup(name string) *string {
	if v, ok := os.LookupEnv(name); ok {
		return &v
	}
	return nil
}

// FromEnv reads BLOG_* overrides. The credential is returned separately so callers
// hand it to the client constructor explicitly.
func FromEnv() (Overrides, string) {
	ov := Overrides{
		Provider:   lookup("BLOG_PROVIDER"),
		Model:      lookup("BLOG_MODEL"),
		BaseURL:    lookup("BLOG_BASE_URL"),
		ServerAddr: lookup("BLOG_SERVER_ADDR"),
		LogLevel:   lookup("BLOG_LOG_LEVEL"),
	}
	provider := generator.ProviderGroq
	if ov.Provider != nil {
		provider = *ov.Provider
	}
	return ov, APIKeyFromEnv(provider)
}

// APIKeyFromEnv returns GROQ_API_KEY, or OPENAI_API_KEY for the openai provider.
func APIKeyFromEnv(provider string) string {
	if strings.EqualFold(provider, generator.ProviderOpenAI) {
		if v := os.Getenv("OPENAI_API_KEY"); v != "" {
			return v
		}
	}
	return os.Getenv("GROQ_API_KEY")
}

// Merge applies overrides in order: file -> env -> flags.
func Merge(fileCfg Config, env Overrides, flags Overrides, apiKey string) Config {
	cfg := fileCfg

	apply := func(ov Overrides) {
		if ov.Provider != nil {
			cfg.LLM.Provider = strings.ToLower(strings.TrimSpace(*ov.Provider))
		}
		if ov.Model != nil {
			cfg.LLM.Model = *ov.Model
		}
		if ov.BaseURL != nil {
			cfg.LLM.BaseURL = *ov.BaseURL
		}
		if ov.ServerAddr != nil {
			cfg.ServerAddr = *ov.ServerAddr
		}
		if ov.LogLevel != nil {
			cfg.LogLevel = *ov.LogLevel
		}
	}
	apply(env)
	apply(flags)

	cfg.LLM.APIKey = apiKey
	return cfg
}

// Resolve merges file, env and flags, then picks the credential for the provider
// that won the merge.
func Resolve(fileCfg Config, flags Overrides) Config {
	env, _ := FromEnv()
	cfg := Merge(fileCfg, env, flags, "")
	cfg.LLM.APIKey = APIKeyFromEnv(cfg.LLM.Provider)
	return cfg
}

// Validate checks what is needed to build a model client.
func Validate(cfg Config) error {
	switch cfg.LLM.Provider {
	case generator.ProviderMock:
		return nil
	case generator.ProviderGroq, generator.ProviderOpenAI:
	default:
		return &generator.ConfigurationError{Msg: fmt.Sprintf("llm provider %q not supported", cfg.LLM.Provider)}
	}
	if cfg.LLM.APIKey == "" {
		if cfg.LLM.Provider == generator.ProviderOpenAI {
			return &generator.ConfigurationError{Msg: "OPENAI_API_KEY is required"}
		}
		return &generator.ConfigurationError{Msg: "GROQ_API_KEY is required"}
	}
	if cfg.LLM.Model == "" {
		return &generator.ConfigurationError{Msg: "llm model is required"}
	}
	return nil
}

// Settings converts the LLM section for generator constructors.
func (c Config) Settings() generator.LLMSettings {
	return generator.LLMSettings{
		Provider: c.LLM.Provider,
		Model:    c.LLM.Model,
		APIKey:   c.LLM.APIKey,
		BaseURL:  c.LLM.BaseURL,
	}
}
