package app

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultFile         = "words.txt"
	DefaultLogLevel     = "info"
	DefaultMaxTokenSize = 16 << 20
)

type Config struct {
	File         string `yaml:"file"`
	LogLevel     string `yaml:"log_level"`
	MaxTokenSize int    `yaml:"max_token_size"`
	Progress     bool   `yaml:"progress"`
	Dump         string `yaml:"dump,omitempty"`
	Top          int    `yaml:"top,omitempty"`
}

func Default() Config {
	return Config{
		File:         DefaultFile,
		LogLevel:     DefaultLogLevel,
		MaxTokenSize: DefaultMaxTokenSize,
	}
}

// LoadConfig reads a YAML file on top of Default. Unknown keys are an error.
func LoadConfig(path string) (Config, error) {
	cfg := Default()

	f, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.File == "" {
		return errors.New("config: file must not be empty")
	}
	if c.MaxTokenSize <= 0 {
		return fmt.Errorf("config: max_token_size must be positive, got %d", c.MaxTokenSize)
	}
	if c.Top < 0 {
		return fmt.Errorf("config: top must not be negative, got %d", c.Top)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
