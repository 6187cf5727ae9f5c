package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Model runtime profiles. Exactly one is active per deployment; switching
// requires a restart with a different MODEL_PROFILE.
const (
	ProfileOllama = "ollama"
	ProfileProxy  = "proxy"
)

const (
	defaultOllamaModel = "mistral"
	defaultProxyModel  = "gemini-flash"
)

// Config holds all process-wide settings, read once from the environment at
// startup and never mutated afterward.
type Config struct {
	Profile        string `env:"MODEL_PROFILE"     envDefault:"ollama"`
	ModelName      string `env:"MODEL_NAME"`
	OllamaBaseURL  string `env:"OLLAMA_BASE_URL"   envDefault:"http://localhost:11434"`
	ProxyURL       string `env:"LITELLM_PROXY_URL" envDefault:"http://localhost:4000"`
	ProxyMasterKey string `env:"LITELLM_MASTER_KEY"`
	MaxFileSizeMB  int    `env:"MAX_FILE_SIZE_MB"  envDefault:"10"`
	Host           string `env:"BACKEND_HOST"      envDefault:"0.0.0.0"`
	Port           int    `env:"BACKEND_PORT"      envDefault:"8000"`
}

// Load parses configuration from the environment and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.ModelName == "" {
		switch cfg.Profile {
		case ProfileOllama:
			cfg.ModelName = defaultOllamaModel
		case ProfileProxy:
			cfg.ModelName = defaultProxyModel
		}
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Profile {
	case ProfileOllama:
		if c.OllamaBaseURL == "" {
			return fmt.Errorf("OLLAMA_BASE_URL is required when MODEL_PROFILE=%s", ProfileOllama)
		}
	case ProfileProxy:
		if c.ProxyURL == "" {
			return fmt.Errorf("LITELLM_PROXY_URL is required when MODEL_PROFILE=%s", ProfileProxy)
		}
		if c.ProxyMasterKey == "" {
			return fmt.Errorf("LITELLM_MASTER_KEY is required when MODEL_PROFILE=%s", ProfileProxy)
		}
	default:
		return fmt.Errorf("unknown MODEL_PROFILE %q (expected %q or %q)", c.Profile, ProfileOllama, ProfileProxy)
	}
	if c.MaxFileSizeMB <= 0 {
		return fmt.Errorf("MAX_FILE_SIZE_MB must be positive, got %d", c.MaxFileSizeMB)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("BACKEND_PORT out of range: %d", c.Port)
	}
	return nil
}

// ModelBaseURL returns the OpenAI-compatible endpoint of the active profile.
// Ollama serves its OpenAI-compatible API under /v1.
func (c *Config) ModelBaseURL() string {
	if c.Profile == ProfileProxy {
		return strings.TrimRight(c.ProxyURL, "/")
	}
	return strings.TrimRight(c.OllamaBaseURL, "/") + "/v1"
}

// ModelAPIKey returns the credential for the active profile. Ollama ignores
// authentication, so a placeholder key keeps the client happy.
func (c *Config) ModelAPIKey() string {
	if c.Profile == ProfileProxy {
		return c.ProxyMasterKey
	}
	return "ollama"
}

// MaxUploadBytes converts the configured megabyte limit to bytes.
func (c *Config) MaxUploadBytes() int64 {
	return int64(c.MaxFileSizeMB) << 20
}

// Addr returns the bind address for the HTTP server.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
