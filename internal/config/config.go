package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	AI struct {
		Model  string `yaml:"model"`
		APIKey string `yaml:"api_key"`
	} `yaml:"ai"`
	Data struct {
		Dir       string `yaml:"dir"`        // lookup JSON documents
		StaticDir string `yaml:"static_dir"` // logo and other assets
	} `yaml:"data"`
	Session struct {
		Lifetime time.Duration `yaml:"lifetime"`
	} `yaml:"session"`
}

func LoadConfig(path string) (*Config, error) {
	// 1. Load .env if exists
	_ = godotenv.Load()

	// 2. Load YAML config
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(file, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// 3. Override with Environment Variables if present
	if apiKey := os.Getenv("FORMALGEN_API_KEY"); apiKey != "" {
		cfg.AI.APIKey = apiKey
	}
	if addr := os.Getenv("FORMALGEN_ADDR"); addr != "" {
		cfg.Server.Addr = addr
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.AI.Model == "" {
		c.AI.Model = "gemini-2.5-flash-lite"
	}
	if c.Data.Dir == "" {
		c.Data.Dir = "data"
	}
	if c.Data.StaticDir == "" {
		c.Data.StaticDir = "static"
	}
	if c.Session.Lifetime <= 0 {
		c.Session.Lifetime = 24 * time.Hour
	}
}
