package config

import (
	"fmt"
	"os"
	"time"

	"comment-sentiment/internal/llm"

	"gopkg.in/yaml.v3"
)

// Config holds application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`

	YouTube struct {
		APIKey   string `yaml:"api_key"`
		PageSize int64  `yaml:"page_size"`
	} `yaml:"youtube"`

	Scorer llm.ScorerConfig `yaml:"scorer"`

	Log struct {
		Production bool `yaml:"production"`
	} `yaml:"log"`
}

// LoadConfig loads configuration from YAML file
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}

	file, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(config); err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}

	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == "" {
		c.Server.Port = "8501"
	}

	if c.YouTube.PageSize == 0 {
		c.YouTube.PageSize = 100
	}

	if c.Scorer.Type == "" {
		c.Scorer.Type = llm.ProviderVader
	}

	if c.Scorer.Gemini.ModelName == "" {
		c.Scorer.Gemini.ModelName = "gemini-2.0-flash-exp"
	}

	if c.Scorer.Gemini.MaxRetries == 0 {
		c.Scorer.Gemini.MaxRetries = 3
	}

	if c.Scorer.Gemini.RetryDelay == 0 {
		c.Scorer.Gemini.RetryDelay = 2 * time.Second
	}

	if c.Scorer.Gemini.RequestsPerMinute == 0 {
		c.Scorer.Gemini.RequestsPerMinute = 8
	}

	// Expand environment variables in API keys
	c.YouTube.APIKey = os.ExpandEnv(c.YouTube.APIKey)
	c.Scorer.Gemini.APIKey = os.ExpandEnv(c.Scorer.Gemini.APIKey)
}

// Validate checks settings that have no usable default
func (c *Config) Validate() error {
	if c.YouTube.PageSize < 1 || c.YouTube.PageSize > 100 {
		return fmt.Errorf("youtube.page_size must be between 1 and 100, got %d", c.YouTube.PageSize)
	}

	switch c.Scorer.Type {
	case llm.ProviderVader, llm.ProviderGemini:
	default:
		return fmt.Errorf("unknown scorer type %q", c.Scorer.Type)
	}

	return nil
}
