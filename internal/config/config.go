package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file used when none is given.
const DefaultPath = "vaplan.yaml"

// Config is the root configuration for vaplan.
type Config struct {
	AI     AIConfig
	Server ServerConfig
	Export ExportConfig
	Fetch  FetchConfig
}

// AIConfig selects and configures the model endpoint.
type AIConfig struct {
	Provider  string        // "anthropic" or "openai"
	BaseURL   string        // defaults per provider
	Model     string        // e.g. "claude-sonnet-4-20250514"
	APIKey    string        // expanded from env var by Load
	MaxTokens int           // response token cap
	Timeout   time.Duration // per-request timeout
}

// ServerConfig controls the web front end.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// ExportConfig controls where the terminal front end saves documents.
type ExportConfig struct {
	Dir string `yaml:"dir"`
}

// FetchConfig controls resolving pasted job URLs.
type FetchConfig struct {
	Enabled  bool
	Timeout  time.Duration
	MaxChars int
	// AllowPrivate permits fetching loopback, private and link-local hosts.
	AllowPrivate bool
}

const (
	ProviderAnthropic = "anthropic"
	ProviderOpenAI    = "openai"

	defaultAnthropicBaseURL = "https://api.anthropic.com"
	defaultOpenAIBaseURL    = "https://api.openai.com/v1"
	defaultAnthropicModel   = "claude-sonnet-4-20250514"
	defaultOpenAIModel      = "gpt-4o-mini"
	defaultMaxTokens        = 8000
	defaultAITimeout        = 120 * time.Second
	defaultAddr             = ":8080"
	defaultFetchTimeout     = 30 * time.Second
	defaultMaxChars         = 20000
)

// apiKeyEnv names the environment variable read when api_key is empty.
var apiKeyEnv = map[string]string{
	ProviderAnthropic: "ANTHROPIC_API_KEY",
	ProviderOpenAI:    "OPENAI_API_KEY",
}

// rawConfig is used for YAML unmarshaling (snake_case fields and duration as string).
type rawConfig struct {
	AI     rawAIConfig    `yaml:"ai"`
	Server ServerConfig   `yaml:"server"`
	Export ExportConfig   `yaml:"export"`
	Fetch  rawFetchConfig `yaml:"fetch"`
}

type rawAIConfig struct {
	Provider  string `yaml:"provider"`
	BaseURL   string `yaml:"base_url"`
	Model     string `yaml:"model"`
	APIKey    string `yaml:"api_key"`
	MaxTokens int    `yaml:"max_tokens"`
	Timeout   string `yaml:"timeout"`
}

type rawFetchConfig struct {
	Enabled      *bool  `yaml:"enabled"`
	Timeout      string `yaml:"timeout"`
	MaxChars     int    `yaml:"max_chars"`
	AllowPrivate bool   `yaml:"allow_private"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	cfg, err := build(rawConfig{})
	if err != nil {
		// The zero raw config always builds.
		panic(err)
	}
	return cfg
}

// Load reads and parses the YAML config file at path, validates it, and returns Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	// Expand environment variables
	expanded := os.ExpandEnv(string(data))

	var raw rawConfig
	if err := yaml.Unmarshal([]byte(expanded), &raw); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg, err := build(raw)
	if err != nil {
		return nil, err
	}
	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault loads path. A missing file falls back to Default unless the
// path was given explicitly.
func LoadOrDefault(path string, explicit bool) (*Config, error) {
	cfg, err := Load(path)
	if err != nil && !explicit && errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

func build(raw rawConfig) (*Config, error) {
	provider := raw.AI.Provider
	if provider == "" {
		provider = ProviderAnthropic
	}

	baseURL, model := raw.AI.BaseURL, raw.AI.Model
	switch provider {
	case ProviderAnthropic:
		baseURL = orDefault(baseURL, defaultAnthropicBaseURL)
		model = orDefault(model, defaultAnthropicModel)
	case ProviderOpenAI:
		baseURL = orDefault(baseURL, defaultOpenAIBaseURL)
		model = orDefault(model, defaultOpenAIModel)
	}

	apiKey := raw.AI.APIKey
	if apiKey == "" {
		if env, ok := apiKeyEnv[provider]; ok {
			apiKey = os.Getenv(env)
		}
	}

	maxTokens := raw.AI.MaxTokens
	if maxTokens == 0 {
		maxTokens = defaultMaxTokens
	}

	var err error
	aiTimeout := defaultAITimeout
	if raw.AI.Timeout != "" {
		aiTimeout, err = time.ParseDuration(raw.AI.Timeout)
		if err != nil {
			return nil, fmt.Errorf("parse ai.timeout %q: %w", raw.AI.Timeout, err)
		}
	}

	fetchTimeout := defaultFetchTimeout
	if raw.Fetch.Timeout != "" {
		fetchTimeout, err = time.ParseDuration(raw.Fetch.Timeout)
		if err != nil {
			return nil, fmt.Errorf("parse fetch.timeout %q: %w", raw.Fetch.Timeout, err)
		}
	}

	fetchEnabled := true
	if raw.Fetch.Enabled != nil {
		fetchEnabled = *raw.Fetch.Enabled
	}

	maxChars := raw.Fetch.MaxChars
	if maxChars == 0 {
		maxChars = defaultMaxChars
	}

	return &Config{
		AI: AIConfig{
			Provider:  provider,
			BaseURL:   baseURL,
			Model:     model,
			APIKey:    apiKey,
			MaxTokens: maxTokens,
			Timeout:   aiTimeout,
		},
		Server: ServerConfig{Addr: orDefault(raw.Server.Addr, defaultAddr)},
		Export: ExportConfig{Dir: orDefault(raw.Export.Dir, ".")},
		Fetch: FetchConfig{
			Enabled:      fetchEnabled,
			Timeout:      fetchTimeout,
			MaxChars:     maxChars,
			AllowPrivate: raw.Fetch.AllowPrivate,
		},
	}, nil
}

func validate(cfg *Config) error {
	if _, ok := apiKeyEnv[cfg.AI.Provider]; !ok {
		return fmt.Errorf("ai.provider must be %q or %q, got %q", ProviderAnthropic, ProviderOpenAI, cfg.AI.Provider)
	}
	if cfg.AI.MaxTokens <= 0 {
		return fmt.Errorf("ai.max_tokens must be positive, got %d", cfg.AI.MaxTokens)
	}
	if cfg.AI.Timeout <= 0 {
		return fmt.Errorf("ai.timeout must be positive, got %v", cfg.AI.Timeout)
	}
	if cfg.Fetch.Timeout <= 0 {
		return fmt.Errorf("fetch.timeout must be positive, got %v", cfg.Fetch.Timeout)
	}
	if cfg.Fetch.MaxChars < 0 {
		return fmt.Errorf("fetch.max_chars must not be negative, got %d", cfg.Fetch.MaxChars)
	}
	return nil
}

// RequireCredentials reports whether the model endpoint can be called. Only
// commands that reach the model call it.
func (c AIConfig) RequireCredentials() error {
	if c.APIKey == "" {
		return fmt.Errorf("ai.api_key is required (or set %s)", apiKeyEnv[c.Provider])
	}
	if c.BaseURL == "" {
		return fmt.Errorf("ai.base_url is required")
	}
	if c.Model == "" {
		return fmt.Errorf("ai.model is required")
	}
	return nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
