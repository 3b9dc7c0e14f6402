package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/shubhamsWEB/uifinityai/internal/core/components"
)

type FigmaConfig struct {
	APIToken      string `toml:"api_token"`
	BaseURL       string `toml:"base_url"`
	NodeBatchSize int    `toml:"node_batch_size"`
}

type LLMConfig struct {
	Provider       string `toml:"provider"`
	Model          string `toml:"model"`
	EmbeddingModel string `toml:"embedding_model"`
	APIKey         string `toml:"api_key"`
	BaseURL        string `toml:"base_url"`
}

type StoreConfig struct {
	Kind     string `toml:"kind"` // memgraph, memory
	URI      string `toml:"uri"`
	User     string `toml:"user"`
	Password string `toml:"password"`
}

type MatchingConfig struct {
	EmbeddingCacheSize int                             `toml:"embedding_cache_size"`
	Rules              []components.ClassificationRule `toml:"rules"`
}

type Config struct {
	Figma    FigmaConfig    `toml:"figma"`
	LLM      LLMConfig      `toml:"llm"`
	Store    StoreConfig    `toml:"store"`
	Matching MatchingConfig `toml:"matching"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	return &cfg, nil
}
